// Package bench generates random workloads and measures the trie layouts
// against them.
package bench

import (
	"math/rand/v2"

	"github.com/rskv-p/xtrie/pkg/x_trie"
	"github.com/rskv-p/xtrie/query"
)

const wordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Spec describes one workload.
type Spec struct {
	NumWords     int
	MinLen       int
	MaxLen       int
	Inserts      int
	Contains     int
	Removes      int
	RandomChance int // percent of queries drawing a fresh random word
}

// Instance is a generated workload: the construction words and a shuffled
// query sequence.
type Instance struct {
	Spec    Spec
	Words   []string
	Queries []query.Query
}

// RandomWord returns minLen..maxLen alphanumeric bytes followed by the
// terminator.
func RandomWord(rng *rand.Rand, minLen, maxLen int) string {
	n := minLen
	if maxLen > minLen {
		n += rng.IntN(maxLen - minLen + 1)
	}
	b := make([]byte, n, n+1)
	for i := range b {
		b[i] = wordChars[rng.IntN(len(wordChars))]
	}
	return string(append(b, x_trie.Terminator))
}

// NewInstance builds the words and queries for s from rng.
func NewInstance(rng *rand.Rand, s Spec) Instance {
	inst := Instance{
		Spec:    s,
		Words:   make([]string, s.NumWords),
		Queries: make([]query.Query, 0, s.Inserts+s.Contains+s.Removes),
	}
	for i := range inst.Words {
		inst.Words[i] = RandomWord(rng, s.MinLen, s.MaxLen)
	}

	pick := func() string {
		if len(inst.Words) == 0 || rng.IntN(100) < s.RandomChance {
			return RandomWord(rng, s.MinLen, s.MaxLen)
		}
		return inst.Words[rng.IntN(len(inst.Words))]
	}
	for _, part := range []struct {
		op query.Op
		n  int
	}{
		{query.OpInsert, s.Inserts},
		{query.OpRemove, s.Removes},
		{query.OpContains, s.Contains},
	} {
		for i := 0; i < part.n; i++ {
			inst.Queries = append(inst.Queries, query.Query{Word: pick(), Op: part.op})
		}
	}
	rng.Shuffle(len(inst.Queries), func(i, j int) {
		inst.Queries[i], inst.Queries[j] = inst.Queries[j], inst.Queries[i]
	})
	return inst
}

// Scaled shrinks every count in s by f, keeping at least one word.
func (s Spec) Scaled(f float64) Spec {
	if f <= 0 || f == 1 {
		return s
	}
	scale := func(n int) int { return int(float64(n) * f) }
	s.NumWords = max(1, scale(s.NumWords))
	s.Inserts = scale(s.Inserts)
	s.Contains = scale(s.Contains)
	s.Removes = scale(s.Removes)
	return s
}
