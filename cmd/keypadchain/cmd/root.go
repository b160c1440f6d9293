// Package cmd provides the CLI commands for keypadchain.
package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/logging"
	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/presscost"
)

const version = "0.1.0"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	cfgFile string
	verbose bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "keypadchain",
		Short: "Count the fewest button presses through a chain of robot keypads",
		Long: `keypadchain finds the minimum number of presses a human must make on a
directional keypad so that a chain of robots ends up typing door codes on a
numeric keypad.

Examples:
  keypadchain solve codes.txt
  keypadchain solve --depth 2 --depth 25 --commas codes.txt
  cat codes.txt | keypadchain solve --format json
  keypadchain trace --depth 2 029A
  keypadchain --config kc.hcl config init kc.json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.initConfig()
		},
	}

	root.PersistentFlags().StringVar(&g.cfgFile, "config", "", "config file, .hcl or .json (default: built-in settings)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	if err := NewRootCmd().Execute(); err != nil {
		logging.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}

func (g *globalOptions) initConfig() error {
	cfg := config.Default()
	if g.cfgFile != "" {
		loaded, err := config.Load(g.cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	config.Set(cfg)

	// Initialize logging
	lc := *cfg.Logging
	if g.verbose {
		lc.Level = "debug"
	}
	if err := logging.Initialize(lc); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// newSolver builds a solver over the built-in keypads.
func newSolver(workers int, traceLimit uint64) (*presscost.Solver, error) {
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return presscost.New(keypad.Numeric(), keypad.Directional(),
		presscost.WithWorkers(workers),
		presscost.WithMaxTraceLength(traceLimit),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "keypadchain version %s\n", version)
		},
	}
}
