package cmd_trie

import (
	"fmt"

	"github.com/rskv-p/xtrie/config"
	"github.com/rskv-p/xtrie/pkg/x_trie"

	"github.com/spf13/cobra"
)

// NewDumpCmd builds `xtrie dump`: print the tree built from a word file.
func NewDumpCmd() *cobra.Command {
	var (
		variant string
		words   bool
	)

	c := &cobra.Command{
		Use:   "dump <words>",
		Short: "Print the tree (or the sorted word list) built from a word file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if variant == "" {
				variant = config.FromContext(cmd.Context()).Variant
			}
			v, err := x_trie.ParseVariant(variant)
			if err != nil {
				return err
			}
			list, err := readWords(args[0])
			if err != nil {
				return err
			}

			t := x_trie.MustNew(v)
			for _, w := range list {
				if _, err := t.Insert(w); err != nil {
					return fmt.Errorf("insert %q: %w", w, err)
				}
			}
			if err := x_trie.Verify(t); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if words {
				for _, w := range x_trie.Words(t) {
					fmt.Fprintln(out, w)
				}
				return nil
			}
			t.(x_trie.Inspector).Dump(out)
			return nil
		},
	}

	c.Flags().StringVar(&variant, "variant", "", "layout: 1|listed, 2|indexed, 3|hashed (default from config)")
	c.Flags().BoolVar(&words, "words", false, "print the stored words in order instead of the tree")
	return c
}
