package main

import (
	"strings"

	"github.com/finconsult/sipcalc/internal/advisor"
	"github.com/spf13/cobra"
)

func newAskCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ask <question>",
		Short:   "Ask the canned advisor about tax, retirement or allocation",
		Example: `  sipcalc ask "how much tax will I pay?"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(cmd)
			if err != nil {
				return err
			}
			report, err := a.engine.RunPlan(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			resp, err := advisor.Respond(strings.Join(args, " "), report)
			if err != nil {
				return err
			}
			a.log.Debugf("question matched intent %s", resp.Intent)
			writeLine(cmd.OutOrStdout(), "%s", resp.Text)
			return nil
		},
	}

	addPlanFlags(cmd, &a.plan)
	return cmd
}
