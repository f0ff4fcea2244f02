package output_test

import (
	"path/filepath"
	"testing"

	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveConfigurationRoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()

	for _, name := range []string{"plan.yaml", "plan.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, output.SaveConfiguration(cfg, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)
			assert.True(t, cfg.Plan.StartingMonthlyAmount.Equal(loaded.Plan.StartingMonthlyAmount))
			assert.True(t, cfg.Plan.AnnualStepUpRate.Equal(loaded.Plan.AnnualStepUpRate))
			assert.Equal(t, cfg.Plan.HorizonYears, loaded.Plan.HorizonYears)
			assert.True(t, cfg.Plan.StartDate.Equal(loaded.Plan.StartDate))
			assert.True(t, cfg.Tax.Rate.Equal(loaded.Tax.Rate))
			assert.True(t, cfg.Withdrawal.MonthlyWithdrawal.Equal(loaded.Withdrawal.MonthlyWithdrawal))
			assert.Len(t, loaded.Scenarios, len(cfg.Scenarios))
		})
	}
}

func TestSaveConfigurationBadPath(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	err := output.SaveConfiguration(cfg, filepath.Join(t.TempDir(), "missing", "plan.yaml"))
	assert.Error(t, err)
}
