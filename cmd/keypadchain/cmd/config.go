// Package cmd - config command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/keypadchain/internal/config"
	"github.com/katalvlaran/keypadchain/internal/logging"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init FILE.json",
		Short: "Write the effective configuration as JSON",
		Long: `Write the configuration in effect (built-in defaults, or the file given
with --config) to FILE.json, ready to edit and pass back with --config.

Examples:
  keypadchain config init keypadchain.json
  keypadchain --config old.hcl config init new.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Get().Save(args[0]); err != nil {
				return err
			}
			logging.Info("config written", zap.String("path", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
