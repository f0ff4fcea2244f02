package main

import (
	"encoding/json"
	"fmt"

	"github.com/finconsult/sipcalc/internal/calculation"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/finconsult/sipcalc/internal/output"
	"github.com/finconsult/sipcalc/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type withdrawResult struct {
	StartingCorpus decimal.Decimal             `json:"starting_corpus"`
	Plan           domain.WithdrawalPlan       `json:"plan"`
	Result         domain.SustainabilityResult `json:"result"`
	TargetMonths   int                         `json:"target_months,omitempty"`
}

func newWithdrawCmd(a *app) *cobra.Command {
	var (
		corpus       string
		targetMonths int
	)

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Simulate a fixed monthly withdrawal (SWP) from a corpus",
		Long: "Simulate a fixed monthly withdrawal from a corpus. Without --corpus the plan is\n" +
			"projected first and its post-tax value is used. With --target-months the largest\n" +
			"withdrawal lasting at least that long is searched for instead.",
		Example: "  sipcalc withdraw --corpus 10000000 --withdrawal 80000\n" +
			"  sipcalc withdraw -c plan.yaml --target-months 360",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfiguration(cmd)
			if err != nil {
				return err
			}
			wp := cfg.Withdrawal.Plan()

			var start decimal.Decimal
			if corpus != "" {
				if start, err = parseAmount("corpus", corpus, false); err != nil {
					return err
				}
			} else {
				report, err := a.engine.RunPlan(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				start = report.Tax.PostTaxValue
				if !cfg.Plan.StartDate.IsZero() {
					wp.StartDate = dateutil.AddMonths(cfg.Plan.StartDate, cfg.Plan.TotalMonths())
				}
			}

			res := withdrawResult{StartingCorpus: start, TargetMonths: targetMonths}
			if targetMonths > 0 {
				best, sim, err := calculation.MaxSustainableWithdrawal(start, wp, targetMonths)
				if err != nil {
					return err
				}
				wp.MonthlyWithdrawal = best
				res.Result = sim
			} else {
				if !cfg.Withdrawal.Enabled() {
					return fmt.Errorf("%w: set --withdrawal or --target-months", domain.ErrInvalidInput)
				}
				if res.Result, err = calculation.SimulateWithdrawals(start, wp); err != nil {
					return err
				}
			}
			res.Plan = wp

			w := cmd.OutOrStdout()
			if output.NormalizeFormatName(a.format) == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printWithdrawal(cmd, res)
			return nil
		},
	}

	addPlanFlags(cmd, &a.plan)
	cmd.Flags().StringVar(&corpus, "corpus", "", "Starting corpus (defaults to the plan's post-tax value)")
	cmd.Flags().IntVar(&targetMonths, "target-months", 0, "Find the largest withdrawal lasting this many months")
	return cmd
}

func printWithdrawal(cmd *cobra.Command, res withdrawResult) {
	w := cmd.OutOrStdout()
	r := res.Result

	lasts := output.FormatMonths(r.MonthsLasted)
	if r.IsPerpetual {
		lasts = fmt.Sprintf("%s or more (perpetual)", output.FormatMonths(r.MaxMonths))
	}
	rows := [][]string{
		{"Starting corpus", output.FormatCurrency(res.StartingCorpus)},
		{"Monthly withdrawal", output.FormatCurrency(res.Plan.MonthlyWithdrawal)},
		{"Assumed yield", output.FormatRate(res.Plan.AssumedMonthlyRate.Mul(decimal.NewFromInt(domain.MonthsPerYear)))},
		{"Lasts", lasts},
		{"Total withdrawn", output.FormatCurrency(r.TotalWithdrawn)},
		{"Ending corpus", output.FormatCurrency(r.EndingCorpus)},
	}
	if !r.DepletionDate.IsZero() {
		rows = append(rows, []string{"Runs out", r.DepletionDate.Format("Jan 2006")})
	}

	title := "Withdrawal simulation"
	if res.TargetMonths > 0 {
		title = fmt.Sprintf("Largest withdrawal lasting %s", output.FormatMonths(res.TargetMonths))
	}
	fmt.Fprint(w, output.RenderTable(output.Table{Title: title, Headers: []string{"Metric", "Value"}, Rows: rows}))
}
