package cmd_serv

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rskv-p/xtrie/config"
	"github.com/rskv-p/xtrie/pkg/x_log"
	"github.com/rskv-p/xtrie/servs/s_trie/trie_serv"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// NewServeCmd builds `xtrie serve`: expose one trie over HTTP and NATS
// until interrupted.
func NewServeCmd() *cobra.Command {
	var (
		variant  string
		addr     string
		natsURL  string
		embedded bool
		noHTTP   bool
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve a trie over HTTP, WebSocket and NATS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *config.FromContext(cmd.Context())
			flags := cmd.Flags()
			if flags.Changed("variant") {
				cfg.Variant = variant
			}
			if flags.Changed("addr") {
				cfg.HTTP.Addr = addr
			}
			if noHTTP {
				cfg.HTTP.Enabled = false
			}
			if flags.Changed("nats") {
				cfg.NATS.Enabled = true
				cfg.NATS.URL = natsURL
			}
			if embedded {
				cfg.NATS.Enabled = true
				cfg.NATS.Embedded = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := x_log.New("serve")
			svc, err := trie_serv.New(cfg)
			if err != nil {
				return err
			}
			if err := svc.Start(); err != nil {
				return err
			}
			log.Info().
				Str("http", svc.HTTPAddr()).
				Str("nats", svc.NATSURL()).
				Msg("serving")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			log.Info().Msg("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return svc.Stop(sctx)
		},
	}

	c.Flags().StringVar(&variant, "variant", "", "layout: 1|listed, 2|indexed, 3|hashed")
	c.Flags().StringVar(&addr, "addr", "", "HTTP listen address")
	c.Flags().BoolVar(&noHTTP, "no-http", false, "disable the HTTP front end")
	c.Flags().StringVar(&natsURL, "nats", "", "connect to this NATS server")
	c.Flags().BoolVar(&embedded, "embedded-nats", false, "start an in-process NATS server")
	return c
}
