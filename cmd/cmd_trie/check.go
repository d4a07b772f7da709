package cmd_trie

import (
	"errors"
	"fmt"

	"github.com/rskv-p/xtrie/bench"
	"github.com/rskv-p/xtrie/pkg/x_log"

	"github.com/spf13/cobra"
)

// NewCheckCmd builds `xtrie check`: replay one random operation stream on
// every layout and fail on the first diverging answer.
func NewCheckCmd() *cobra.Command {
	cc := bench.DefaultCheck()

	c := &cobra.Command{
		Use:   "check",
		Short: "Differential test of the three layouts on a random stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := x_log.New("check")
			log.Info().
				Int("words", cc.Words).
				Int("queries", cc.Queries).
				Uint64("seed", cc.Seed).
				Msg("differential run")

			rep, err := bench.Check(cc)
			var m *bench.Mismatch
			if errors.As(err, &m) {
				log.Error().Int("step", m.Step).Str("word", m.Query.Word).Str("op", m.Query.Op.String()).Msg("layouts diverged")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK operations=%d words=%d\n", rep.Operations, rep.Len)
			return nil
		},
	}

	c.Flags().IntVar(&cc.Words, "words", cc.Words, "number of generated words")
	c.Flags().IntVar(&cc.Queries, "queries", cc.Queries, "number of random operations")
	c.Flags().IntVar(&cc.MinLen, "min-len", cc.MinLen, "minimum word length")
	c.Flags().IntVar(&cc.MaxLen, "max-len", cc.MaxLen, "maximum word length")
	c.Flags().IntVar(&cc.RandomChance, "random-chance", cc.RandomChance, "percent of operations on fresh random words")
	c.Flags().Uint64Var(&cc.Seed, "seed", cc.Seed, "random seed")
	return c
}
