package cmd_bench

import (
	"fmt"

	"github.com/rskv-p/xtrie/bench"
	"github.com/rskv-p/xtrie/config"
	"github.com/rskv-p/xtrie/pkg/x_db"
	"github.com/rskv-p/xtrie/pkg/x_log"

	"github.com/spf13/cobra"
)

// NewCmd builds `xtrie bench`.
func NewCmd() *cobra.Command {
	var (
		experiment string
		plots      string
		runs       int
		outDir     string
		store      bool
		scale      float64
		seed       uint64
	)

	c := &cobra.Command{
		Use:   "bench",
		Short: "Run the layout experiments (or the --plot sweeps) and write CSV results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context()).Bench
			flags := cmd.Flags()
			if !flags.Changed("runs") {
				runs = cfg.Runs
			}
			if !flags.Changed("out") {
				outDir = cfg.OutDir
			}
			if !flags.Changed("seed") {
				seed = cfg.Seed
			}
			if !flags.Changed("store") {
				store = cfg.Store
			}
			if runs <= 0 {
				return fmt.Errorf("runs must be positive, got %d", runs)
			}
			if scale <= 0 || scale > 1 {
				return fmt.Errorf("scale must be in (0, 1], got %g", scale)
			}

			plotMode := flags.Changed("plot")
			var (
				exps  []bench.Experiment
				sweep []bench.Plot
				err   error
			)
			if plotMode {
				sweep, err = bench.SelectPlots(plots)
			} else {
				exps, err = bench.Select(experiment)
			}
			if err != nil {
				return err
			}

			log := x_log.New("bench")
			r := bench.NewRunner(runs, seed, log)
			r.Scale = scale

			var (
				st    *bench.Store
				runID string
			)
			if store {
				dialect, err := x_db.ParseDialect(cfg.DBDialect)
				if err != nil {
					return err
				}
				st, err = bench.OpenStore(x_db.Config{Type: dialect, DSN: cfg.DSN})
				if err != nil {
					return err
				}
				defer st.Close()
				runID = bench.NewRunID()
				log.Info().Str("run_id", runID).Str("dialect", string(dialect)).Msg("storing results")
			}

			out := cmd.OutOrStdout()
			for _, p := range sweep {
				if flags.Changed("runs") {
					p.Runs = runs
				}
				rows, err := r.Plot(cmd.Context(), p)
				if err != nil {
					return err
				}
				path, err := bench.SavePlotCSV(outDir, p, rows)
				if err != nil {
					return err
				}
				log.Info().Str("plot", p.Name).Str("file", path).Msg("plot data written")
				flat := p.Rows(rows)
				if st != nil {
					if err := st.Save(runID, p.Runs, flat); err != nil {
						return err
					}
				}
				fmt.Fprintln(out, bench.Summary(p.Name, p.Header[0], flat))
			}
			for _, e := range exps {
				rows, err := r.Run(cmd.Context(), e)
				if err != nil {
					return err
				}
				path, err := bench.SaveCSV(outDir, e, rows)
				if err != nil {
					return err
				}
				log.Info().Str("experiment", e.Name).Str("file", path).Msg("results written")
				if st != nil {
					if err := st.Save(runID, runs, rows); err != nil {
						return err
					}
				}
				fmt.Fprintln(out, bench.Summary(e.Name, e.Param, rows))
			}
			if st != nil {
				fmt.Fprintf(out, "run_id=%s\n", runID)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&experiment, "experiment", "e", "all", "comma separated experiments (fill, length, mix, size, isolation) or all")
	c.Flags().StringVar(&plots, "plot", bench.DefaultPlots, "run parameter sweeps instead of experiments: comma separated (fill_factor, word_length, operation_mix, instance_size, operation_isolation, or full plot names) or all")
	c.Flags().Lookup("plot").NoOptDefVal = bench.DefaultPlots
	c.Flags().IntVar(&runs, "runs", 3, "repetitions averaged per case (default from config)")
	c.Flags().StringVarP(&outDir, "out", "o", ".", "directory for CSV files (default from config)")
	c.Flags().BoolVar(&store, "store", false, "also persist rows to the configured database")
	c.Flags().Float64Var(&scale, "scale", 1, "shrink every case by this factor")
	c.Flags().Uint64Var(&seed, "seed", 1, "random seed (default from config)")
	return c
}
