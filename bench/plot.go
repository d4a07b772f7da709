package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var ErrUnknownPlot = errors.New("unknown plot")

// Point is one x value of a plot. Keys fill the columns before the
// variant column.
type Point struct {
	Keys []string
	Spec Spec
}

// Plot is a parameter sweep written to a long-format CSV:
// <keys...>,variant,<values...>.
type Plot struct {
	Name   string
	File   string
	Header []string // full CSV header
	Runs   int      // repetitions per point
	Points []Point
	Values func(Result) []string
}

// PlotRow is the averaged result of one layout at one point.
type PlotRow struct {
	Keys []string
	Result
}

func ns(d time.Duration) string { return strconv.FormatInt(d.Nanoseconds(), 10) }

func queryTime(r Result) []string        { return []string{ns(r.Query)} }
func constructionTime(r Result) []string { return []string{ns(r.Construction)} }
func constructionSize(r Result) []string { return []string{strconv.Itoa(r.FinalSize)} }
func fullResult(r Result) []string {
	return []string{ns(r.Construction), ns(r.Query), strconv.Itoa(r.FinalSize)}
}

func single(n int) string { return strconv.Itoa(n) }

// fillFactor sweeps the word count with 100k queries of one kind.
func fillFactor(op string) Plot {
	p := Plot{
		Name:   "fill_factor_" + op,
		File:   "plot_fill_factor_" + op + ".csv",
		Header: []string{"num_words", "variant", "query_time_ns"},
		Runs:   5,
		Values: queryTime,
	}
	for _, n := range []int{25000, 50000, 100000, 200000, 400000} {
		s := Spec{NumWords: n, MinLen: 4, MaxLen: 24, RandomChance: 50}
		switch op {
		case "insert":
			s.Inserts = 100000
		case "contains":
			s.Contains = 100000
		case "remove":
			s.Removes = 100000
		}
		p.Points = append(p.Points, Point{Keys: []string{single(n)}, Spec: s})
	}
	return p
}

// wordLength sweeps a fixed word length 4..32 over 200k words.
func wordLength(name, header string, runs int, values func(Result) []string) Plot {
	p := Plot{
		Name:   "word_length_" + name,
		File:   "plot_word_length_" + name + ".csv",
		Header: []string{"word_length", "variant", header},
		Runs:   runs,
		Values: values,
	}
	for wl := 4; wl <= 32; wl += 4 {
		p.Points = append(p.Points, Point{
			Keys: []string{single(wl)},
			Spec: Spec{NumWords: 200000, MinLen: wl, MaxLen: wl},
		})
	}
	return p
}

func operationMix() Plot {
	const total = 300000
	p := Plot{
		Name:   "operation_mix",
		File:   "plot_operation_mix.csv",
		Header: []string{"lookup_ratio", "variant", "query_time_ns"},
		Runs:   5,
		Values: queryTime,
	}
	for ratio := 0; ratio <= 100; ratio += 5 {
		lookups := total * ratio / 100
		rest := (total - lookups) / 2
		p.Points = append(p.Points, Point{
			Keys: []string{single(ratio)},
			Spec: Spec{NumWords: 200000, MinLen: 4, MaxLen: 24, Inserts: rest, Contains: lookups, Removes: rest, RandomChance: 50},
		})
	}
	return p
}

func instanceSize() Plot {
	p := Plot{
		Name:   "instance_size",
		File:   "plot_instance_size.csv",
		Header: []string{"num_words", "variant", "construction_time_ns", "query_time_ns", "final_size"},
		Runs:   3,
		Values: fullResult,
	}
	for _, n := range []int{25000, 50000, 100000, 250000, 500000, 1000000, 2500000} {
		p.Points = append(p.Points, Point{
			Keys: []string{single(n)},
			Spec: Spec{NumWords: n, MinLen: 1, MaxLen: 12, Inserts: 50000, Contains: 50000, Removes: 50000, RandomChance: 50},
		})
	}
	return p
}

func operationIsolation() Plot {
	p := Plot{
		Name:   "operation_isolation",
		File:   "plot_operation_isolation.csv",
		Header: []string{"operation_type", "query_count", "variant", "construction_time_ns", "query_time_ns", "final_size"},
		Runs:   3,
		Values: fullResult,
	}
	for _, op := range []string{"Insert", "Remove", "Lookup"} {
		for q := 10000; q <= 100000; q += 10000 {
			s := Spec{NumWords: 250000, MinLen: 1, MaxLen: 12, RandomChance: 50}
			switch op {
			case "Insert":
				s.Inserts = q
			case "Remove":
				s.Removes = q
			case "Lookup":
				s.Contains = q
			}
			p.Points = append(p.Points, Point{Keys: []string{op, single(q)}, Spec: s})
		}
	}
	return p
}

// Plots returns every parameter sweep in run order.
func Plots() []Plot {
	return []Plot{
		fillFactor("insert"),
		fillFactor("contains"),
		fillFactor("remove"),
		wordLength("construction_time", "construction_time_ns", 5, constructionTime),
		wordLength("construction_size", "construction_size", 1, constructionSize),
		operationMix(),
		instanceSize(),
		operationIsolation(),
	}
}

// DefaultPlots is the sweep run when none is named.
const DefaultPlots = "word_length"

// SelectPlots resolves a comma separated list. A name selects the plot of
// that name and every plot it prefixes, so "fill_factor" selects the
// insert, contains and remove sweeps. "all" selects every plot.
func SelectPlots(names string) ([]Plot, error) {
	all := Plots()
	names = strings.TrimSpace(names)
	if names == "all" {
		return all, nil
	}
	if names == "" {
		names = DefaultPlots
	}

	var out []Plot
	seen := make(map[string]bool)
	for _, n := range strings.Split(names, ",") {
		n = strings.ToLower(strings.TrimSpace(n))
		found := false
		for _, p := range all {
			if p.Name != n && !strings.HasPrefix(p.Name, n+"_") {
				continue
			}
			found = true
			if !seen[p.Name] {
				seen[p.Name] = true
				out = append(out, p)
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPlot, n)
		}
	}
	return out, nil
}

// PlotVariant is the variant column value: VectorTrie, ArrayTrie or HashTrie.
func PlotVariant(r Result) string {
	a := r.Variant.Alias()
	return strings.ToUpper(a[:1]) + a[1:] + "Trie"
}

// Plot measures every point of p. Each point gets a fresh instance shared
// by all layouts.
func (r *Runner) Plot(ctx context.Context, p Plot) ([]PlotRow, error) {
	runs := p.Runs
	if runs <= 0 {
		runs = r.Runs
	}
	rng := rand.New(rand.NewPCG(r.Seed, uint64(len(p.Name))))
	rows := make([]PlotRow, 0, len(p.Points)*len(r.Variants))

	for _, pt := range p.Points {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		inst := NewInstance(rng, pt.Spec.Scaled(r.Scale))
		r.Log.Info().
			Str("plot", p.Name).
			Strs("point", pt.Keys).
			Int("words", len(inst.Words)).
			Int("queries", len(inst.Queries)).
			Msg("running point")

		for _, v := range r.Variants {
			res, err := RunAverage(v, inst, runs)
			if err != nil {
				return rows, fmt.Errorf("%s/%s: %w", p.Name, strings.Join(pt.Keys, "/"), err)
			}
			rows = append(rows, PlotRow{Keys: pt.Keys, Result: res})
		}
	}
	return rows, nil
}

// WritePlotCSV writes the rows of p under p.Header.
func WritePlotCSV(w io.Writer, p Plot, rows []PlotRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(p.Header); err != nil {
		return err
	}
	for _, r := range rows {
		rec := append(append(append([]string{}, r.Keys...), PlotVariant(r.Result)), p.Values(r.Result)...)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SavePlotCSV writes p's rows to dir/p.File and returns the path.
func SavePlotCSV(dir string, p Plot, rows []PlotRow) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, p.File)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePlotCSV(f, p, rows); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}

// Rows flattens plot rows for the store and the summary table. The keys
// are joined into the parameter column.
func (p Plot) Rows(rows []PlotRow) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = Row{Experiment: p.Name, Param: strings.Join(r.Keys, " "), Result: r.Result}
	}
	return out
}
