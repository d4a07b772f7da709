package bench

import (
	"fmt"
	"math/rand/v2"

	"github.com/rskv-p/xtrie/pkg/x_trie"
	"github.com/rskv-p/xtrie/query"
)

// CheckConfig drives a differential run across layouts.
type CheckConfig struct {
	Words        int
	Queries      int
	MinLen       int
	MaxLen       int
	RandomChance int
	Seed         uint64
}

// DefaultCheck mirrors the long random-query test: 5000 words and half a
// million queries, 10% of them on fresh words.
func DefaultCheck() CheckConfig {
	return CheckConfig{
		Words:        5000,
		Queries:      500000,
		MinLen:       1,
		MaxLen:       32,
		RandomChance: 10,
		Seed:         1,
	}
}

// Mismatch reports the first operation on which two layouts disagreed.
type Mismatch struct {
	Step    int
	Query   query.Query
	Results map[x_trie.Variant]bool
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("step %d: %s %q diverged: %v", m.Step, m.Query.Op, m.Query.Word, m.Results)
}

// CheckReport summarises a differential run.
type CheckReport struct {
	Operations int
	Len        int
}

// Check feeds the same random stream to every layout in variants and
// returns a *Mismatch error on the first diverging answer. Structural
// verification runs on each trie at the end.
func Check(cfg CheckConfig, variants ...x_trie.Variant) (CheckReport, error) {
	if len(variants) == 0 {
		variants = x_trie.Variants()
	}
	tries := make([]x_trie.Trie, len(variants))
	for i, v := range variants {
		t, err := x_trie.New(v)
		if err != nil {
			return CheckReport{}, err
		}
		tries[i] = t
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, 0x7472))
	words := make([]string, cfg.Words)
	for i := range words {
		words[i] = RandomWord(rng, cfg.MinLen, cfg.MaxLen)
	}

	var rep CheckReport
	step := func(q query.Query) error {
		rep.Operations++
		var first bool
		results := make(map[x_trie.Variant]bool, len(tries))
		diverged := false
		for i, t := range tries {
			ok, err := query.Apply(t, q)
			if err != nil {
				return err
			}
			results[variants[i]] = ok
			if i == 0 {
				first = ok
			} else if ok != first {
				diverged = true
			}
		}
		if diverged {
			return &Mismatch{Step: rep.Operations, Query: q, Results: results}
		}
		return nil
	}

	for _, w := range words {
		if err := step(query.Query{Word: w, Op: query.OpInsert}); err != nil {
			return rep, err
		}
	}

	ops := []query.Op{query.OpInsert, query.OpRemove, query.OpContains}
	for i := 0; i < cfg.Queries; i++ {
		var w string
		if len(words) == 0 || rng.IntN(100) < cfg.RandomChance {
			w = RandomWord(rng, cfg.MinLen, cfg.MaxLen)
		} else {
			w = words[rng.IntN(len(words))]
		}
		if err := step(query.Query{Word: w, Op: ops[rng.IntN(len(ops))]}); err != nil {
			return rep, err
		}
	}

	rep.Len = tries[0].Len()
	for _, t := range tries {
		if t.Len() != rep.Len {
			return rep, fmt.Errorf("%s holds %d words, %s holds %d", t.Variant(), t.Len(), tries[0].Variant(), rep.Len)
		}
		if err := x_trie.Verify(t); err != nil {
			return rep, fmt.Errorf("%s: %w", t.Variant(), err)
		}
	}
	return rep, nil
}
