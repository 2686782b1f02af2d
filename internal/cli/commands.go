package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"straddle-backtest/internal/backtest"
	"straddle-backtest/internal/config"
	"straddle-backtest/internal/logger"
	"straddle-backtest/internal/model"
	"straddle-backtest/internal/simulator"
	"straddle-backtest/internal/strategy"
	"straddle-backtest/internal/trace"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:   "straddle-backtest",
		Short: "Backtest short and long straddles with the options simulator",
		Long: `straddle-backtest drives the external options simulator, turns its trade log
into structured trades and reports net P&L, win rate and per-day P&L for the
short straddle, the long protection straddle, or both combined.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Server config file (env vars override it)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	loadServer := func() (*config.Server, *zap.Logger, error) {
		cfg, err := config.LoadServer(configPath)
		if err != nil {
			return nil, nil, err
		}
		level := cfg.LogLevel
		if debug {
			level = "debug"
		}
		zl, err := logger.Init(level, false)
		if err != nil {
			return nil, nil, err
		}
		return cfg, zl, nil
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newRunCmd(loadServer))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newValidateCmd())

	return rootCmd
}

func newParseCmd() *cobra.Command {
	var (
		legName string
		days    int
		csvPath string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "parse [FILE]",
		Short: "Summarize saved simulator output",
		Long: `Read simulator stdout from FILE (or stdin when FILE is "-") and print the
extracted trades and metrics. Example: straddle-backtest parse long.log --leg long --days 30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leg, ok := model.ParseLeg(legName)
			if !ok {
				return fmt.Errorf("invalid --leg %q: want short, long or empty", legName)
			}
			if days < 0 {
				return fmt.Errorf("--days must be >= 0")
			}
			raw, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			res := backtest.ParseOutput(string(raw), leg, days)
			out := cmd.OutOrStdout()
			printLeg(out, res)
			printTrades(out, res.Trades, limit)
			if csvPath != "" {
				return writeCSV(out, csvPath, res.Trades)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&legName, "leg", "", "Leg that produced the output: short, long or empty")
	cmd.Flags().IntVar(&days, "days", 0, "Simulated days, for per-day P&L")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Optional: write the trade ledger to this CSV path")
	cmd.Flags().IntVar(&limit, "n", 20, "Trades to print (0=all)")
	return cmd
}

func newRunCmd(loadServer func() (*config.Server, *zap.Logger, error)) *cobra.Command {
	var (
		name    string
		p       = strategy.DefaultParams()
		csvPath string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a preset through the simulator",
		Long: `Run the simulator for a preset and print the results.
Example: straddle-backtest run --strategy combined --days 60 --seed 7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := strategy.Lookup(name)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			cfg, zl, err := loadServer()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := trace.Init(cfg.Tracing); err != nil {
				return fmt.Errorf("init tracing: %w", err)
			}
			defer func() { _ = trace.Shutdown(context.Background()) }()

			runner := simulator.NewRunner(cfg.SimulatorBin, cfg.WorkDir, cfg.SimulatorTimeout, zl)
			res, err := backtest.New(runner, zl).Run(cmd.Context(), strat, p, backtest.Options{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printResult(out, res)
			printTrades(out, res.Trades, limit)
			if csvPath != "" {
				return writeCSV(out, csvPath, res.Trades)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "strategy", strategy.NameStraddle, "Preset: straddle, long_protection or combined")
	addParamFlags(cmd, &p)
	cmd.Flags().StringVar(&csvPath, "csv", "", "Optional: write the trade ledger to this CSV path")
	cmd.Flags().IntVar(&limit, "n", 20, "Trades to print (0=all)")
	return cmd
}

func newConfigCmd() *cobra.Command {
	var (
		name string
		p    = strategy.DefaultParams()
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the simulator config YAML a preset generates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strat, err := strategy.Lookup(name)
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, leg := range strat.Legs(p) {
				raw, err := leg.Config.Render()
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out, "---")
				}
				fmt.Fprintf(out, "# %s leg\n", leg.Config.Strategy.Side)
				if _, err := out.Write(raw); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "strategy", strategy.NameStraddle, "Preset: straddle, long_protection or combined")
	addParamFlags(cmd, &p)
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a simulator config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(args[0])
			if err != nil {
				return err
			}
			side := "short"
			if c.IsLong() {
				side = "long"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s %s, %d days, entry %dDTE)\n",
				args[0], side, c.Strategy.StrategyType, c.Simulation.Days, c.Strategy.EntryDTE)
			return nil
		},
	}
}

func addParamFlags(cmd *cobra.Command, p *strategy.Params) {
	cmd.Flags().IntVar(&p.Days, "days", p.Days, "Trading days to simulate")
	cmd.Flags().Float64Var(&p.InitialPrice, "initial-price", p.InitialPrice, "Starting underlying price")
	cmd.Flags().Float64Var(&p.Volatility, "volatility", p.Volatility, "Annualized volatility")
	cmd.Flags().Float64Var(&p.VRP, "vrp", p.VRP, "Volatility risk premium")
	cmd.Flags().Uint64Var(&p.Seed, "seed", p.Seed, "Random seed for the price path")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulator output (%s): %w", path, err)
	}
	return raw, nil
}

func writeCSV(out io.Writer, path string, trades []model.TradeEvent) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := backtest.WriteTradesCSV(path, trades); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d trades to %s\n", len(trades), path)
	return nil
}
