package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/finconsult/sipcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// formValues holds the interactive answers as typed text.
type formValues struct {
	monthly    string
	stepUp     string
	years      string
	returnRate string
	age        string
	withdrawal string
	save       bool
	savePath   string
}

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Fill in a plan with an interactive form and project it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parser := config.NewInputParser()
			cfg := parser.CreateExampleConfiguration()
			v := defaultFormValues(cfg)

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("Starting monthly SIP (₹)").Value(&v.monthly).Validate(validateDecimal),
					huh.NewInput().Title("Annual step-up (%)").Value(&v.stepUp).Validate(validateDecimal),
					huh.NewInput().Title("Horizon (years)").Value(&v.years).Validate(validateInt),
					huh.NewInput().Title("Expected annual return (%)").Value(&v.returnRate).Validate(validateDecimal),
				),
				huh.NewGroup(
					huh.NewInput().Title("Your age").Value(&v.age).Validate(validateInt),
					huh.NewInput().Title("Monthly withdrawal after the horizon (₹, 0 to skip)").Value(&v.withdrawal).Validate(validateDecimal),
					huh.NewConfirm().Title("Save these answers as a plan file?").Value(&v.save),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}

			if err := v.applyTo(cfg); err != nil {
				return err
			}
			if err := parser.ValidateConfiguration(cfg); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			report, err := a.engine.RunPlan(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if err := output.GenerateReport(cmd.OutOrStdout(), report, a.format); err != nil {
				return err
			}

			if v.save {
				if err := output.SaveConfiguration(cfg, v.savePath); err != nil {
					return err
				}
				writeLine(cmd.OutOrStdout(), "Saved plan to %s", v.savePath)
			}
			return nil
		},
	}
}

func defaultFormValues(cfg *domain.Configuration) *formValues {
	return &formValues{
		monthly:    cfg.Plan.StartingMonthlyAmount.String(),
		stepUp:     cfg.Plan.AnnualStepUpRate.Mul(hundred).String(),
		years:      strconv.Itoa(cfg.Plan.HorizonYears),
		returnRate: cfg.Assumptions.AnnualReturnRate.Mul(hundred).String(),
		age:        strconv.Itoa(cfg.Investor.Age),
		withdrawal: cfg.Withdrawal.MonthlyWithdrawal.String(),
		savePath:   "sipcalc.yaml",
	}
}

// applyTo copies the answers into cfg; rates are entered in percent.
func (v *formValues) applyTo(cfg *domain.Configuration) error {
	var err error
	if cfg.Plan.StartingMonthlyAmount, err = parseAmount("monthly", v.monthly, false); err != nil {
		return err
	}
	if cfg.Plan.AnnualStepUpRate, err = parseAmount("step-up", v.stepUp, true); err != nil {
		return err
	}
	if cfg.Assumptions.AnnualReturnRate, err = parseAmount("return", v.returnRate, true); err != nil {
		return err
	}
	if cfg.Withdrawal.MonthlyWithdrawal, err = parseAmount("withdrawal", v.withdrawal, false); err != nil {
		return err
	}
	if cfg.Plan.HorizonYears, err = strconv.Atoi(strings.TrimSpace(v.years)); err != nil {
		return fmt.Errorf("invalid horizon %q: %w", v.years, err)
	}
	if cfg.Investor.Age, err = strconv.Atoi(strings.TrimSpace(v.age)); err != nil {
		return fmt.Errorf("invalid age %q: %w", v.age, err)
	}
	return nil
}

func validateDecimal(s string) error {
	if _, err := decimal.NewFromString(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
