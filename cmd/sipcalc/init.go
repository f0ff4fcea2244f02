package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/output"
	"github.com/spf13/cobra"
)

func newInitCmd(_ *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example plan file (YAML, or TOML for .toml paths)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sipcalc.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Wrote example plan to %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
