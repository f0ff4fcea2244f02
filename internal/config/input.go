package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/finconsult/sipcalc/internal/calculation"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML or TOML file, chosen by extension.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, FormatFromPath(filename))
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Parse decodes plan data without validating it.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case "toml":
		if _, err := toml.Decode(string(data), &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return &config, nil
}

// FormatFromPath returns "toml" for .toml files and "yaml" otherwise.
func FormatFromPath(filename string) string {
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return "toml"
	}
	return "yaml"
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return fmt.Errorf("%w: no configuration provided", domain.ErrInvalidInput)
	}

	if err := ip.validateInvestor(&config.Investor); err != nil {
		return fmt.Errorf("investor validation failed: %w", err)
	}

	if err := calculation.ValidateContributionPlan(config.Plan); err != nil {
		return fmt.Errorf("plan validation failed: %w", err)
	}

	if err := calculation.ValidateAnnualRate(config.Assumptions.AnnualReturnRate); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if err := calculation.ValidateTaxPolicy(config.Tax); err != nil {
		return fmt.Errorf("tax validation failed: %w", err)
	}

	if err := ip.validateWithdrawal(&config.Withdrawal); err != nil {
		return fmt.Errorf("withdrawal validation failed: %w", err)
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		key := strings.ToLower(scenario.Name)
		if seen[key] {
			return fmt.Errorf("scenario %d validation failed: %w: duplicate name %q", i, domain.ErrInvalidInput, scenario.Name)
		}
		seen[key] = true
	}

	return nil
}

func (ip *InputParser) validateInvestor(investor *domain.Investor) error {
	if investor.Age < 0 || investor.Age > 100 {
		return fmt.Errorf("%w: age must be between 0 and 100, got %d", domain.ErrInvalidInput, investor.Age)
	}
	return nil
}

// validateWithdrawal accepts an empty block, which disables the withdrawal phase.
func (ip *InputParser) validateWithdrawal(w *domain.WithdrawalSettings) error {
	if w.MonthlyWithdrawal.IsNegative() {
		return fmt.Errorf("%w: monthly withdrawal cannot be negative", domain.ErrInvalidInput)
	}
	if w.MaxMonths != nil && *w.MaxMonths < 0 {
		return fmt.Errorf("%w: max months cannot be negative", domain.ErrInvalidInput)
	}
	if !w.Enabled() {
		return nil
	}
	return calculation.ValidateWithdrawalPlan(w.Plan())
}

func (ip *InputParser) validateScenario(scenario *domain.RateScenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("%w: scenario name is required", domain.ErrInvalidInput)
	}
	return calculation.ValidateAnnualRate(scenario.AnnualReturnRate)
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startDate, _ := time.Parse("2006-01-02", "2026-01-01")
	yield := domain.DefaultWithdrawalYield
	maxMonths := domain.DefaultMaxMonths

	return &domain.Configuration{
		Investor: domain.Investor{
			Name: "Example Investor",
			Age:  30,
		},
		Plan: domain.ContributionPlan{
			StartingMonthlyAmount: decimal.NewFromInt(10000),
			AnnualStepUpRate:      decimal.NewFromFloat(0.10),
			HorizonYears:          20,
			StartDate:             startDate,
		},
		Assumptions: domain.Assumptions{
			AnnualReturnRate: decimal.NewFromFloat(0.12),
		},
		Tax: domain.DefaultTaxPolicy(),
		Withdrawal: domain.WithdrawalSettings{
			MonthlyWithdrawal: decimal.NewFromInt(100000),
			AnnualYield:       &yield,
			MaxMonths:         &maxMonths,
		},
		Scenarios: []domain.RateScenario{
			{Name: "Conservative", AnnualReturnRate: decimal.NewFromFloat(0.08)},
			{Name: "Optimistic", AnnualReturnRate: decimal.NewFromFloat(0.15)},
		},
	}
}
