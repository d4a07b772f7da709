package cmd_serv

import (
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rskv-p/xtrie/config"
	"github.com/rskv-p/xtrie/query"
	"github.com/rskv-p/xtrie/servs/s_trie/trie_client"

	"github.com/spf13/cobra"
)

// NewQueryCmd builds `xtrie query`: send one request to a running service
// over NATS.
func NewQueryCmd() *cobra.Command {
	var (
		url     string
		subject string
		timeout time.Duration
	)

	c := &cobra.Command{
		Use:   "query <op> <word> | query stats",
		Short: "Ask a running service over NATS",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context()).NATS
			if url == "" {
				url = cfg.URL
			}
			if subject == "" {
				subject = cfg.Subject
			}
			if timeout <= 0 {
				timeout = cfg.Timeout
			}

			nc, err := nats.Connect(url, nats.Name("xtrie-query"))
			if err != nil {
				return fmt.Errorf("connect %s: %w", url, err)
			}
			defer nc.Close()

			cl := trie_client.NewWithTimeout(nc, subject, timeout)
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if strings.EqualFold(args[0], "stats") {
				if len(args) != 1 {
					return fmt.Errorf("stats takes no word")
				}
				st, err := cl.Stats(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "variant=%s len=%d footprint=%d\n", st.Variant, st.Len, st.Footprint)
				return nil
			}

			if len(args) != 2 {
				return fmt.Errorf("%s needs a word", args[0])
			}
			op, err := query.ParseOp(args[0])
			if err != nil {
				return err
			}
			var ok bool
			switch op {
			case query.OpInsert:
				ok, err = cl.Insert(ctx, args[1])
			case query.OpContains:
				ok, err = cl.Contains(ctx, args[1])
			case query.OpRemove:
				ok, err = cl.Remove(ctx, args[1])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ok)
			return nil
		},
	}

	c.Flags().StringVar(&url, "nats", "", "NATS server URL (default from config)")
	c.Flags().StringVar(&subject, "subject", "", "service subject prefix (default from config)")
	c.Flags().DurationVar(&timeout, "timeout", 0, "request timeout (default from config)")
	return c
}
