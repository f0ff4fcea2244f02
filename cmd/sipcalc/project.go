package main

import (
	"fmt"

	"github.com/finconsult/sipcalc/internal/output"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	var saveDir string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project maturity, tax and withdrawal sustainability for a plan",
		Example: "  sipcalc project --monthly 10000 --step-up 10 --years 20 --return 12\n" +
			"  sipcalc project -c plan.yaml -f schedule-csv",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfiguration(cmd)
			if err != nil {
				return err
			}

			report, err := a.engine.RunPlan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if saveDir == "" {
				return output.GenerateReport(cmd.OutOrStdout(), report, a.format)
			}
			f := output.GetFormatterByName(a.format)
			if f == nil {
				return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, a.format)
			}
			name, err := output.WriteFormatted(f, report, saveDir)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "Report saved to %s", name)
			return nil
		},
	}

	addPlanFlags(cmd, &a.plan)
	cmd.Flags().StringVar(&saveDir, "save-dir", "", "Write the report to a timestamped file in this directory")
	return cmd
}
