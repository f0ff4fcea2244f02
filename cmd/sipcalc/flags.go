package main

import (
	"fmt"
	"time"

	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var hundred = decimal.NewFromInt(100)

// planFlags override plan-file values. Rates are given in percent.
type planFlags struct {
	monthly    string
	stepUp     string
	years      int
	returnRate string
	age        int
	start      string
	withdrawal string
	yield      string
	maxMonths  int
	taxRate    string
	exemption  string
}

func addPlanFlags(cmd *cobra.Command, p *planFlags) {
	f := cmd.Flags()
	f.StringVar(&p.monthly, "monthly", "", "Starting monthly SIP amount")
	f.StringVar(&p.stepUp, "step-up", "", "Annual step-up in percent")
	f.IntVar(&p.years, "years", 0, "Investment horizon in years")
	f.StringVar(&p.returnRate, "return", "", "Expected annual return in percent")
	f.IntVar(&p.age, "age", 0, "Investor age for the allocation split")
	f.StringVar(&p.start, "start", "", "First contribution month (YYYY-MM-DD)")
	f.StringVar(&p.withdrawal, "withdrawal", "", "Monthly withdrawal after the horizon (0 disables)")
	f.StringVar(&p.yield, "yield", "", "Annual yield during withdrawals in percent")
	f.IntVar(&p.maxMonths, "max-months", 0, "Cap on simulated withdrawal months")
	f.StringVar(&p.taxRate, "tax-rate", "", "LTCG rate in percent")
	f.StringVar(&p.exemption, "exemption", "", "LTCG exemption threshold")
}

// loadConfiguration reads the plan file (or the example plan), applies any
// flags the user set and validates the result.
func (a *app) loadConfiguration(cmd *cobra.Command) (*domain.Configuration, error) {
	parser := config.NewInputParser()

	var cfg *domain.Configuration
	if a.configPath != "" {
		data, err := parser.LoadFromFile(a.configPath)
		if err != nil {
			return nil, err
		}
		cfg = data
	} else {
		cfg = parser.CreateExampleConfiguration()
	}

	if err := a.plan.apply(cmd, cfg); err != nil {
		return nil, err
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (p *planFlags) apply(cmd *cobra.Command, cfg *domain.Configuration) error {
	changed := cmd.Flags().Changed
	var err error

	set := func(name, raw string, percent bool, dst *decimal.Decimal) {
		if err != nil || !changed(name) {
			return
		}
		var v decimal.Decimal
		v, err = parseAmount(name, raw, percent)
		if err == nil {
			*dst = v
		}
	}

	set("monthly", p.monthly, false, &cfg.Plan.StartingMonthlyAmount)
	set("step-up", p.stepUp, true, &cfg.Plan.AnnualStepUpRate)
	set("return", p.returnRate, true, &cfg.Assumptions.AnnualReturnRate)
	set("withdrawal", p.withdrawal, false, &cfg.Withdrawal.MonthlyWithdrawal)
	var yield decimal.Decimal
	set("yield", p.yield, true, &yield)
	set("tax-rate", p.taxRate, true, &cfg.Tax.Rate)
	set("exemption", p.exemption, false, &cfg.Tax.ExemptionThreshold)
	if err != nil {
		return err
	}

	if changed("yield") {
		cfg.Withdrawal.AnnualYield = &yield
	}
	if changed("years") {
		cfg.Plan.HorizonYears = p.years
	}
	if changed("age") {
		cfg.Investor.Age = p.age
	}
	if changed("max-months") {
		maxMonths := p.maxMonths
		cfg.Withdrawal.MaxMonths = &maxMonths
	}
	if changed("start") {
		t, perr := time.Parse("2006-01-02", p.start)
		if perr != nil {
			return fmt.Errorf("invalid --start: %w", perr)
		}
		cfg.Plan.StartDate = t
	}
	return nil
}

// parseAmount parses a flag value; percentages are divided by 100.
func parseAmount(name, raw string, percent bool) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	if percent {
		v = v.Div(hundred)
	}
	return v, nil
}
