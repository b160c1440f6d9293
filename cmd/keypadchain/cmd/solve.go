// Package cmd - solve command
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/input"
	"github.com/katalvlaran/keypadchain/internal/logging"
	"github.com/katalvlaran/keypadchain/presscost"
)

type solveOptions struct {
	depths    []int
	workers   int
	format    string
	commas    bool
	breakdown bool
}

func newSolveCmd() *cobra.Command {
	o := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Sum code complexities for each chain depth",
		Long: `Read door codes ("029A"), one per line, from file or standard input and
print, for every depth, the sum over codes of presses × numeric value.

Examples:
  keypadchain solve codes.txt
  keypadchain solve -d 2 -d 25 --breakdown codes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			o.merge(cmd, cfg)
			return runSolve(cmd, args, cfg, o)
		},
	}

	cmd.Flags().IntSliceVarP(&o.depths, "depth", "d", nil, "robot chain depth, repeatable (default from config: 2,25)")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", 0, "codes evaluated concurrently (0 = one per CPU)")
	cmd.Flags().StringVarP(&o.format, "format", "f", config.FormatText, "output format (text, json)")
	cmd.Flags().BoolVar(&o.commas, "commas", false, "group digits with thousands separators")
	cmd.Flags().BoolVar(&o.breakdown, "breakdown", false, "print per-code presses and complexity")
	return cmd
}

// merge fills unset flags from the configuration.
func (o *solveOptions) merge(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("depth") {
		o.depths = cfg.Depths
	}
	if !cmd.Flags().Changed("workers") {
		o.workers = cfg.Workers
	}
	if !cmd.Flags().Changed("format") {
		o.format = cfg.Format
	}
	if !cmd.Flags().Changed("commas") {
		o.commas = cfg.Commas
	}
}

func runSolve(cmd *cobra.Command, args []string, cfg *config.Config, o *solveOptions) error {
	check := *cfg
	check.Depths, check.Workers, check.Format = o.depths, o.workers, o.format
	if err := check.Validate(); err != nil {
		return err
	}

	codes, err := readCodes(cmd, args)
	if err != nil {
		return err
	}
	logging.Debug("codes loaded", zap.Int("count", len(codes)))

	solver, err := newSolver(o.workers, cfg.TraceLimit)
	if err != nil {
		return err
	}

	start := time.Now()
	rep, err := solver.Report(cmd.Context(), codes, o.depths)
	if err != nil {
		return err
	}
	logging.Info("solved",
		zap.Ints("depths", o.depths),
		zap.Int("codes", len(codes)),
		zap.Int("cache_entries", rep.CacheEntries),
		zap.Duration("elapsed", time.Since(start)),
	)
	for _, d := range rep.Depths {
		logging.With(zap.Int("depth", d.Depth)).Debug("depth solved",
			zap.Uint64("total", d.Total),
			zap.Int("codes", len(d.Codes)),
		)
	}

	out := cmd.OutOrStdout()
	if o.format == config.FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	printReport(out, rep, o)
	return nil
}

func readCodes(cmd *cobra.Command, args []string) ([]presscost.Code, error) {
	if len(args) == 0 {
		return input.Read(cmd.InOrStdin())
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return input.Read(f)
}

func printReport(w io.Writer, rep *presscost.Report, o *solveOptions) {
	num := func(v uint64) string {
		if o.commas {
			return humanize.BigComma(new(big.Int).SetUint64(v))
		}
		return fmt.Sprint(v)
	}
	for _, d := range rep.Depths {
		fmt.Fprintf(w, "depth %d: %s\n", d.Depth, num(d.Total))
		if !o.breakdown {
			continue
		}
		for _, c := range d.Codes {
			fmt.Fprintf(w, "  %-8s presses=%s value=%s complexity=%s\n",
				c.Code, num(c.Presses), num(c.Value), num(c.Complexity))
		}
	}
}
