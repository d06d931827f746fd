package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init PATH",
		Short: "Write the current settings to PATH (.yaml, .yml or .toml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if err := a.cfg.Save(path); err != nil {
				return err
			}
			a.logger.Info("wrote config", zap.String("path", path))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
