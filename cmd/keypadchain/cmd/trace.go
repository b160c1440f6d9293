// Package cmd - trace command
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/input"
	"github.com/katalvlaran/keypadchain/internal/logging"
	"github.com/katalvlaran/keypadchain/presscost"
)

func newTraceCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "trace CODE...",
		Short: "Print a cheapest human press sequence for each code",
		Long: `Print one shortest sequence of human presses that makes the robot chain
type each code. The sequence grows about 2.5x per layer, so only shallow
depths are practical; the config trace_limit caps its length.

Examples:
  keypadchain trace 029A
  keypadchain trace --depth 0 029A 980A`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			solver, err := newSolver(cfg.Workers, cfg.TraceLimit)
			if err != nil {
				return err
			}
			for _, arg := range args {
				code, err := input.Parse(arg)
				if err != nil {
					return err
				}
				presses, err := solver.CodePresses(code, depth)
				if errors.Is(err, presscost.ErrTraceTooLong) {
					logging.Warn("trace refused",
						zap.Stringer("code", code),
						zap.Int("depth", depth),
						zap.Uint64("trace_limit", cfg.TraceLimit),
					)
				}
				if err != nil {
					return err
				}
				logging.Debug("traced", zap.Stringer("code", code), zap.Int("depth", depth), zap.Int("presses", len(presses)))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", code, presses)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 2, "robot chain depth")
	return cmd
}
