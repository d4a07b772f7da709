package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"github.com/rskv-p/xtrie/pkg/x_trie"
	"github.com/rskv-p/xtrie/query"
)

// Result is the measurement of one layout on one instance.
type Result struct {
	Variant      x_trie.Variant
	Construction time.Duration
	Query        time.Duration
	FinalSize    int // footprint after construction, in bytes
	Words        int // stored words after construction
}

// Row is a Result tagged with the experiment and parameter it belongs to.
type Row struct {
	Experiment string
	Param      string
	Result
}

// RunOnce builds a fresh trie of layout v from inst.Words and replays
// inst.Queries against it.
func RunOnce(v x_trie.Variant, inst Instance) (Result, error) {
	t, err := x_trie.New(v)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()
	for _, w := range inst.Words {
		if _, err := t.Insert(w); err != nil {
			return Result{}, fmt.Errorf("construct %s: %w", v, err)
		}
	}
	res := Result{
		Variant:      v,
		Construction: time.Since(start),
		FinalSize:    t.Footprint(),
		Words:        t.Len(),
	}

	var sink bool
	start = time.Now()
	for _, q := range inst.Queries {
		ok, err := query.Apply(t, q)
		if err != nil {
			return Result{}, fmt.Errorf("query %s: %w", v, err)
		}
		sink = sink != ok
	}
	res.Query = time.Since(start)
	_ = sink
	return res, nil
}

// RunAverage repeats RunOnce runs times and averages every field.
func RunAverage(v x_trie.Variant, inst Instance, runs int) (Result, error) {
	if runs <= 0 {
		runs = 1
	}
	var sum Result
	for i := 0; i < runs; i++ {
		r, err := RunOnce(v, inst)
		if err != nil {
			return Result{}, err
		}
		sum.Construction += r.Construction
		sum.Query += r.Query
		sum.FinalSize += r.FinalSize
		sum.Words += r.Words
	}
	n := time.Duration(runs)
	return Result{
		Variant:      v,
		Construction: sum.Construction / n,
		Query:        sum.Query / n,
		FinalSize:    sum.FinalSize / runs,
		Words:        sum.Words / runs,
	}, nil
}

// Runner executes experiments. Every layout sees the same instance.
type Runner struct {
	Runs     int
	Seed     uint64
	Scale    float64 // shrinks every case, 1 keeps the full sizes
	Variants []x_trie.Variant
	Log      zerolog.Logger
}

// NewRunner returns a runner over every layout.
func NewRunner(runs int, seed uint64, log zerolog.Logger) *Runner {
	return &Runner{
		Runs:     runs,
		Seed:     seed,
		Scale:    1,
		Variants: x_trie.Variants(),
		Log:      log,
	}
}

// Run measures every case of e. It stops between cases when ctx is done.
func (r *Runner) Run(ctx context.Context, e Experiment) ([]Row, error) {
	rng := rand.New(rand.NewPCG(r.Seed, uint64(len(e.Name))))
	rows := make([]Row, 0, len(e.Cases)*len(r.Variants))

	for _, c := range e.Cases {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		inst := NewInstance(rng, c.Spec.Scaled(r.Scale))
		r.Log.Info().
			Str("experiment", e.Name).
			Str("param", c.Label).
			Int("words", len(inst.Words)).
			Int("queries", len(inst.Queries)).
			Msg("running case")

		for _, v := range r.Variants {
			res, err := RunAverage(v, inst, r.Runs)
			if err != nil {
				return rows, fmt.Errorf("%s/%s: %w", e.Name, c.Label, err)
			}
			r.Log.Debug().
				Str("variant", v.String()).
				Dur("construction", res.Construction).
				Dur("query", res.Query).
				Int("footprint", res.FinalSize).
				Msg("measured")
			rows = append(rows, Row{Experiment: e.Name, Param: c.Label, Result: res})
		}
	}
	return rows, nil
}
