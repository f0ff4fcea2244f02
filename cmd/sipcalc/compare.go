package main

import (
	"encoding/json"
	"fmt"

	"github.com/finconsult/sipcalc/internal/calculation"
	"github.com/finconsult/sipcalc/internal/output"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	var alt string

	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare the plan's maturity under an alternate return rate",
		Example: "  sipcalc compare --return 12 --alt 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfiguration(cmd)
			if err != nil {
				return err
			}
			altRate, err := parseAmount("alt", alt, true)
			if err != nil {
				return err
			}

			cmp, err := calculation.CompareRates(cfg.Plan, cfg.Assumptions.AnnualReturnRate, altRate)
			if err != nil {
				return err
			}
			a.log.Debugf("compared %s against %s", cmp.BaseRate, cmp.AlternateRate)

			w := cmd.OutOrStdout()
			if output.NormalizeFormatName(a.format) == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(cmp)
			}

			base := calculation.Summarize(cmp.BaseResult, calculation.ApplyCapitalGainsTax(cmp.BaseResult.TotalInvested, cmp.BaseResult.MaturityValue, cfg.Tax))
			other := calculation.Summarize(cmp.AlternateResult, calculation.ApplyCapitalGainsTax(cmp.AlternateResult.TotalInvested, cmp.AlternateResult.MaturityValue, cfg.Tax))

			writeLine(w, "%s\n", output.RenderTitle("RATE COMPARISON"))
			fmt.Fprint(w, output.RenderTable(output.Table{
				Headers: []string{"", "Base", "Alternate"},
				Rows: [][]string{
					{"Annual return", output.FormatRate(cmp.BaseRate), output.FormatRate(cmp.AlternateRate)},
					{"Invested", output.FormatCurrency(base.Invested), output.FormatCurrency(other.Invested)},
					{"Maturity", output.FormatCurrency(base.Maturity), output.FormatCurrency(other.Maturity)},
					{"LTCG tax", output.FormatCurrency(base.Tax), output.FormatCurrency(other.Tax)},
					{"Post-tax", output.FormatCurrency(base.Net), output.FormatCurrency(other.Net)},
				},
			}))
			writeLine(w, "  Difference in maturity: %s", output.FormatSignedCurrency(cmp.Delta))
			return nil
		},
	}

	addPlanFlags(cmd, &a.plan)
	cmd.Flags().StringVar(&alt, "alt", "", "Alternate annual return in percent")
	_ = cmd.MarkFlagRequired("alt")
	return cmd
}
