package cmd

import (
	"context"
	"os"

	"github.com/rskv-p/xtrie/cmd/cmd_bench"
	"github.com/rskv-p/xtrie/cmd/cmd_serv"
	"github.com/rskv-p/xtrie/cmd/cmd_trie"
	"github.com/rskv-p/xtrie/config"
	"github.com/rskv-p/xtrie/pkg/x_log"

	"github.com/spf13/cobra"
)

// NewRootCmd assembles the xtrie command tree.
func NewRootCmd() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
	)

	rootCmd := &cobra.Command{
		Use:           "xtrie",
		Short:         "Prefix tree engine with three interchangeable node layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(cfgPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			x_log.InitWithConfig(&cfg.Log, "xtrie")
			cmd.SetContext(config.WithContext(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = x_log.Close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $XTRIE_CONFIG or XTRIE_* env)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	rootCmd.AddCommand(cmd_trie.NewRunCmd())
	rootCmd.AddCommand(cmd_trie.NewCheckCmd())
	rootCmd.AddCommand(cmd_trie.NewDumpCmd())
	rootCmd.AddCommand(cmd_bench.NewCmd())
	rootCmd.AddCommand(cmd_serv.NewServeCmd())
	rootCmd.AddCommand(cmd_serv.NewQueryCmd())
	return rootCmd
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		x_log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
