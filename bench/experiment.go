package bench

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownExperiment = errors.New("unknown experiment")

// Case is one parameter point of an experiment.
type Case struct {
	Label string
	Spec  Spec
}

// Experiment is a named series of cases written to one CSV file.
type Experiment struct {
	Name  string // selector used on the command line
	File  string // CSV file name
	Param string // header of the first CSV column
	Cases []Case
}

const (
	defaultQueries = 50000
	defaultChance  = 50
)

func balanced(words, minLen, maxLen int) Spec {
	return Spec{
		NumWords:     words,
		MinLen:       minLen,
		MaxLen:       maxLen,
		Inserts:      defaultQueries,
		Contains:     defaultQueries,
		Removes:      defaultQueries,
		RandomChance: defaultChance,
	}
}

func mixed(inserts, removes, contains int) Spec {
	s := balanced(50000, 8, 16)
	s.Inserts, s.Removes, s.Contains = inserts, removes, contains
	return s
}

// Experiments returns the built-in experiments in run order.
func Experiments() []Experiment {
	return []Experiment{
		{
			Name:  "fill",
			File:  "experiment_fill_factor_results.csv",
			Param: "num_words",
			Cases: []Case{
				{"10000", balanced(10000, 8, 16)},
				{"50000", balanced(50000, 8, 16)},
				{"100000", balanced(100000, 8, 16)},
				{"200000", balanced(200000, 8, 16)},
			},
		},
		{
			Name:  "length",
			File:  "experiment_word_length_results.csv",
			Param: "WordRange",
			Cases: []Case{
				{"3-5", balanced(50000, 3, 5)},
				{"8-16", balanced(50000, 8, 16)},
				{"20-30", balanced(50000, 20, 30)},
			},
		},
		{
			Name:  "mix",
			File:  "experiment_operation_mix_results.csv",
			Param: "MixType",
			Cases: []Case{
				{"Balanced", mixed(50000, 50000, 50000)},
				{"Insert Heavy", mixed(50000, 5000, 5000)},
				{"Lookup Heavy", mixed(5000, 5000, 50000)},
			},
		},
		{
			Name:  "size",
			File:  "experiment_instance_size_results.csv",
			Param: "InstanceSize",
			Cases: []Case{
				{"Small", balanced(10000, 8, 16)},
				{"Medium", balanced(50000, 8, 16)},
				{"Large", balanced(100000, 8, 16)},
				{"Extra Large", balanced(200000, 8, 16)},
				{"Ultra Large", balanced(500000, 8, 16)},
				{"Mega Large", balanced(1000000, 8, 16)},
			},
		},
		{
			Name:  "isolation",
			File:  "experiment_operation_isolation_results.csv",
			Param: "OperationType",
			Cases: []Case{
				{"Insert Only", mixed(100000, 0, 0)},
				{"Remove Only", mixed(0, 100000, 0)},
				{"Lookup Only", mixed(0, 0, 100000)},
			},
		},
	}
}

// Select resolves a comma separated list of experiment names. "all" or an
// empty string selects every experiment.
func Select(names string) ([]Experiment, error) {
	all := Experiments()
	names = strings.TrimSpace(names)
	if names == "" || names == "all" {
		return all, nil
	}

	var out []Experiment
	for _, n := range strings.Split(names, ",") {
		n = strings.ToLower(strings.TrimSpace(n))
		found := false
		for _, e := range all {
			if e.Name == n {
				out = append(out, e)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownExperiment, n)
		}
	}
	return out, nil
}
