package cmd_trie

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rskv-p/xtrie/config"
	"github.com/rskv-p/xtrie/pkg/x_log"
	"github.com/rskv-p/xtrie/pkg/x_trie"
	"github.com/rskv-p/xtrie/query"

	"github.com/spf13/cobra"
)

// NewRunCmd builds `xtrie run`: load a word list, replay a query file and
// report timings.
func NewRunCmd() *cobra.Command {
	var (
		variant string
		out     string
	)

	c := &cobra.Command{
		Use:   "run --variant=<1|2|3> <words> <queries>",
		Short: "Build a trie from a word file and replay a query file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if variant == "" {
				variant = cfg.Variant
			}
			v, err := x_trie.ParseVariant(variant)
			if err != nil {
				return err
			}
			log := x_log.New("run").With().Str("variant", v.String()).Logger()

			words, err := readWords(args[0])
			if err != nil {
				return err
			}
			queries, err := readQueries(args[1])
			if err != nil {
				return err
			}
			log.Debug().Int("words", len(words)).Int("queries", len(queries)).Msg("inputs loaded")

			t := x_trie.MustNew(v)
			start := time.Now()
			for _, w := range words {
				ok, err := t.Insert(w)
				if err != nil {
					return fmt.Errorf("insert %q: %w", w, err)
				}
				if !ok {
					return fmt.Errorf("error inserting %q: already present", w)
				}
			}
			construction := time.Since(start)
			memMiB := float64(t.Footprint()) / (1 << 20)

			if out == "" {
				out = "result_" + filepath.Base(args[0]) + ".txt"
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("open %s: %w", out, err)
			}

			start = time.Now()
			err = query.Run(t, queries, f)
			queryTime := time.Since(start)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}

			log.Info().Str("file", out).Int("len", t.Len()).Msg("results written")
			fmt.Fprintf(cmd.OutOrStdout(),
				"RESULT trie_variant=%s trie_construction_time=%d trie_construction_memory=%.2f query_time=%d\n",
				resultName(v), construction.Milliseconds(), memMiB, queryTime.Milliseconds())
			return nil
		},
	}

	c.Flags().StringVar(&variant, "variant", "", "layout: 1|listed, 2|indexed, 3|hashed (default from config)")
	c.Flags().StringVarP(&out, "out", "o", "", "result file (default result_<words>.txt)")
	return c
}

// resultName is the layout name printed on the RESULT line: vector_trie,
// array_trie or hash_trie.
func resultName(v x_trie.Variant) string {
	return v.Alias() + "_trie"
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return query.ReadWords(f)
}

func readQueries(path string) ([]query.Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	qs, err := query.ReadQueries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return qs, nil
}
