package calculation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/finconsult/sipcalc/internal/store"
	"github.com/finconsult/sipcalc/pkg/dateutil"
)

// PlanningEngine runs the full pipeline for a plan file: schedule,
// accumulation, tax, withdrawal sustainability and rate scenarios.
// Reports are memoised in Cache when one is set; a cache failure is logged
// and never fails a run. A cached report is stamped with a fresh RunID and
// GeneratedAt. The zero value is usable.
type PlanningEngine struct {
	Cache  store.Cache
	Logger Logger
}

// NewPlanningEngine creates an engine without a cache.
func NewPlanningEngine() *PlanningEngine {
	return &PlanningEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// log returns the configured logger, or a no-op logger for a zero-value engine.
func (pe *PlanningEngine) log() Logger {
	if pe.Logger == nil {
		return NopLogger{}
	}
	return pe.Logger
}

// SetCache sets the report cache; nil disables memoisation.
func (pe *PlanningEngine) SetCache(c store.Cache) {
	pe.Cache = c
}

// RunPlan produces the report for a configuration.
func (pe *PlanningEngine) RunPlan(ctx context.Context, cfg *domain.Configuration) (*domain.PlanReport, error) {
	if cfg == nil {
		return nil, invalidf("configuration is nil")
	}

	key, err := store.Key("plan", cfg)
	if err != nil {
		return nil, err
	}
	if cached := pe.lookup(ctx, key); cached != nil {
		cached.RunID = runIDFunc()
		cached.GeneratedAt = nowFunc()
		return cached, nil
	}

	report, err := pe.buildReport(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pe.remember(ctx, key, report)
	return report, nil
}

func (pe *PlanningEngine) buildReport(ctx context.Context, cfg *domain.Configuration) (*domain.PlanReport, error) {
	if err := ValidateTaxPolicy(cfg.Tax); err != nil {
		return nil, err
	}

	schedule, err := GenerateSchedule(cfg.Plan)
	if err != nil {
		return nil, fmt.Errorf("contribution schedule: %w", err)
	}

	baseRate := cfg.Assumptions.AnnualReturnRate
	acc, err := Accumulate(schedule, baseRate)
	if err != nil {
		return nil, fmt.Errorf("accumulation: %w", err)
	}

	tax := ApplyCapitalGainsTax(acc.TotalInvested, acc.MaturityValue, cfg.Tax)
	summary := Summarize(acc, tax)

	report := &domain.PlanReport{
		RunID:            runIDFunc(),
		GeneratedAt:      nowFunc(),
		Plan:             cfg.Plan,
		AnnualReturnRate: baseRate,
		TaxPolicy:        cfg.Tax,
		Schedule:         schedule,
		Accumulation:     acc,
		Tax:              tax,
		Summary:          summary,
		StepUpUplift:     StepUpUplift(cfg.Plan, summary),
	}
	pe.log().Infof("projection %s: invested=%s maturity=%s tax=%s net=%s",
		report.RunID, summary.Invested, summary.Maturity, summary.Tax, summary.Net)

	if cfg.Investor.Age > 0 {
		alloc, err := AllocateByAge(cfg.Investor.Age, cfg.Plan.StartingMonthlyAmount)
		if err != nil {
			return nil, fmt.Errorf("allocation: %w", err)
		}
		report.Allocation = &alloc
	}

	if cfg.Withdrawal.Enabled() {
		wp := cfg.Withdrawal.Plan()
		if !cfg.Plan.StartDate.IsZero() {
			wp.StartDate = dateutil.AddMonths(cfg.Plan.StartDate, cfg.Plan.TotalMonths())
		}
		sustain, err := SimulateWithdrawals(tax.PostTaxValue, wp)
		if err != nil {
			return nil, fmt.Errorf("withdrawal simulation: %w", err)
		}
		report.Withdrawal = &wp
		report.Sustainability = &sustain
		pe.log().Debugf("withdrawal of %s lasted %d months (perpetual=%t)",
			wp.MonthlyWithdrawal, sustain.MonthsLasted, sustain.IsPerpetual)
	}

	for _, sc := range cfg.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cmp, err := compareSchedule(schedule, baseRate, sc.AnnualReturnRate)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		report.Scenarios = append(report.Scenarios, domain.ScenarioOutcome{
			Name:       sc.Name,
			Comparison: cmp,
			Tax:        ApplyCapitalGainsTax(cmp.AlternateResult.TotalInvested, cmp.AlternateResult.MaturityValue, cfg.Tax),
		})
	}

	return report, nil
}

func (pe *PlanningEngine) lookup(ctx context.Context, key string) *domain.PlanReport {
	if pe.Cache == nil {
		return nil
	}
	payload, ok, err := pe.Cache.Get(ctx, key)
	if err != nil {
		pe.log().Warnf("cache read failed for %s: %v", key, err)
		return nil
	}
	if !ok {
		pe.log().Debugf("cache miss %s", key)
		return nil
	}
	var report domain.PlanReport
	if err := json.Unmarshal([]byte(payload), &report); err != nil {
		pe.log().Warnf("discarding unreadable cache entry %s: %v", key, err)
		return nil
	}
	pe.log().Debugf("cache hit %s", key)
	return &report
}

func (pe *PlanningEngine) remember(ctx context.Context, key string, report *domain.PlanReport) {
	if pe.Cache == nil {
		return
	}
	b, err := json.Marshal(report)
	if err != nil {
		pe.log().Warnf("encoding report for cache: %v", err)
		return
	}
	if err := pe.Cache.Set(ctx, key, string(b)); err != nil {
		pe.log().Warnf("cache write failed for %s: %v", key, err)
	}
}
