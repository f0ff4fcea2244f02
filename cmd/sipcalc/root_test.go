package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/domain"
	"github.com/finconsult/sipcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("SIPCALC_CACHE", "none")
	t.Setenv("SIPCALC_LOG_LEVEL", "warn")

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

var oneYear = []string{"--monthly", "1000", "--years", "1", "--step-up", "0", "--return", "12", "--withdrawal", "0"}

func TestProjectCSV(t *testing.T) {
	out, _, err := run(t, append([]string{"project", "-f", "csv"}, oneYear...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,AnnualReturnRate,TotalInvested"))
	assert.True(t, strings.HasPrefix(lines[1], "Base,0.12,12000,12809,809,0,12809"), lines[1])
}

func TestProjectConsoleAndJSON(t *testing.T) {
	out, _, err := run(t, "project")
	require.NoError(t, err)
	assert.Contains(t, out, "Run ")
	assert.Contains(t, out, "Conservative")

	out, _, err = run(t, append([]string{"project", "-f", "json"}, oneYear...)...)
	require.NoError(t, err)
	var report domain.PlanReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "12000", report.Summary.Invested.String())
	assert.Nil(t, report.Sustainability)
}

func TestProjectUnsupportedFormat(t *testing.T) {
	_, _, err := run(t, "project", "-f", "pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestProjectSaveDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, append([]string{"project", "-f", "json", "--save-dir", dir}, oneYear...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved to")

	matches, err := filepath.Glob(filepath.Join(dir, "sip_report_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestProjectInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative monthly", []string{"--monthly", "-1"}},
		{"zero years", []string{"--years", "0"}},
		{"return at minus 100 percent", []string{"--return", "-100"}},
		{"age over 100", []string{"--age", "101"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"project"}, tt.args...)...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, _, err := run(t, "project", "--monthly", "lots")
	assert.ErrorContains(t, err, "invalid --monthly")
	_, _, err = run(t, "project", "--start", "01/02/2026")
	assert.ErrorContains(t, err, "invalid --start")
}

func TestCompare(t *testing.T) {
	out, _, err := run(t, append([]string{"compare", "--alt", "0", "-f", "json"}, oneYear...)...)
	require.NoError(t, err)

	var cmp domain.RateComparison
	require.NoError(t, json.Unmarshal([]byte(out), &cmp))
	assert.True(t, cmp.BaseRate.Equal(decimal.RequireFromString("0.12")))
	assert.True(t, cmp.AlternateResult.MaturityValue.Equal(decimal.NewFromInt(12000)))
	assert.True(t, cmp.Delta.IsNegative())

	out, _, err = run(t, append([]string{"compare", "--alt", "15"}, oneYear...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "RATE COMPARISON")
	assert.Contains(t, out, "Difference in maturity: +")
}

func TestCompareRequiresAlt(t *testing.T) {
	_, _, err := run(t, "compare")
	assert.ErrorContains(t, err, `"alt" not set`)
}

func TestWithdrawDepletes(t *testing.T) {
	out, _, err := run(t, "withdraw", "-f", "json", "--corpus", "100000", "--withdrawal", "50000", "--yield", "8")
	require.NoError(t, err)

	var res withdrawResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 2, res.Result.MonthsLasted)
	assert.False(t, res.Result.IsPerpetual)
	assert.True(t, res.Result.TotalWithdrawn.Equal(decimal.NewFromInt(100000)))
}

func TestWithdrawExplicitZeroYield(t *testing.T) {
	out, _, err := run(t, "withdraw", "-f", "json", "--corpus", "100000", "--withdrawal", "25000", "--yield", "0")
	require.NoError(t, err)

	var res withdrawResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Plan.AssumedMonthlyRate.IsZero(), res.Plan.AssumedMonthlyRate.String())
	assert.Equal(t, 4, res.Result.MonthsLasted)
	assert.True(t, res.Result.EndingCorpus.IsZero(), res.Result.EndingCorpus.String())
}

func TestWithdrawTargetMonths(t *testing.T) {
	out, _, err := run(t, "withdraw", "-f", "json", "--corpus", "1000000", "--yield", "8", "--target-months", "1200")
	require.NoError(t, err)

	var res withdrawResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	best := res.Plan.MonthlyWithdrawal
	assert.True(t, best.GreaterThan(decimal.RequireFromString("6666.66")), best.String())
	assert.True(t, best.LessThan(decimal.NewFromInt(6700)), best.String())
	assert.True(t, res.Result.IsPerpetual)
}

func TestWithdrawFromPlan(t *testing.T) {
	out, _, err := run(t, "withdraw", "--withdrawal", "100000")
	require.NoError(t, err)
	assert.Contains(t, out, "Withdrawal simulation")
	assert.Contains(t, out, "Starting corpus")
}

func TestWithdrawNeedsAmount(t *testing.T) {
	_, _, err := run(t, "withdraw", "--corpus", "100000", "--withdrawal", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAsk(t *testing.T) {
	out, _, err := run(t, "ask", "how", "much", "TAX?")
	require.NoError(t, err)
	assert.Contains(t, out, "LTCG is taxed at 12.5%")

	out, _, err = run(t, "ask", "am I ready for retirement")
	require.NoError(t, err)
	assert.Contains(t, out, "Crore")

	out, _, err = run(t, "ask", "what should I buy", "--age", "40")
	require.NoError(t, err)
	assert.Contains(t, out, "60% index funds and 40% debt/gold")

	_, _, err = run(t, "ask")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	for _, name := range []string{"plan.yaml", "plan.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			out, _, err := run(t, "init", path)
			require.NoError(t, err)
			assert.Contains(t, out, "Wrote example plan to")

			cfg, err := config.NewInputParser().LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, 20, cfg.Plan.HorizonYears)
			assert.Len(t, cfg.Scenarios, 2)

			_, _, err = run(t, "init", path)
			assert.ErrorContains(t, err, "already exists")

			_, _, err = run(t, "init", "--force", path)
			assert.NoError(t, err)
		})
	}
}

func TestConfigFileWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	_, _, err := run(t, "init", path)
	require.NoError(t, err)

	out, _, err := run(t, "project", "-c", path, "-f", "csv", "--years", "1", "--step-up", "0", "--monthly", "1000", "--withdrawal", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Base,0.12,12000,12809")

	_, _, err = run(t, "project", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnknownCacheFlagRunsUncached(t *testing.T) {
	_, stderr, err := run(t, append([]string{"project", "--cache", "memcached"}, oneYear...)...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "cache unavailable")
}

func TestMemoryCacheFlag(t *testing.T) {
	_, _, err := run(t, append([]string{"project", "--cache", "memory", "--log-level", "debug"}, oneYear...)...)
	assert.NoError(t, err)
}

func TestFormValuesApply(t *testing.T) {
	cfg := config.NewInputParser().CreateExampleConfiguration()
	v := defaultFormValues(cfg)
	assert.Equal(t, "10000", v.monthly)
	assert.Equal(t, "10", v.stepUp)
	assert.Equal(t, "12", v.returnRate)

	v.monthly = "5000"
	v.stepUp = "5"
	v.years = "15"
	v.returnRate = "11.5"
	v.age = "45"
	v.withdrawal = "0"
	require.NoError(t, v.applyTo(cfg))

	assert.True(t, cfg.Plan.StartingMonthlyAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, cfg.Plan.AnnualStepUpRate.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, cfg.Assumptions.AnnualReturnRate.Equal(decimal.RequireFromString("0.115")))
	assert.Equal(t, 15, cfg.Plan.HorizonYears)
	assert.Equal(t, 45, cfg.Investor.Age)
	assert.False(t, cfg.Withdrawal.Enabled())

	v.years = "fifteen"
	assert.ErrorContains(t, v.applyTo(cfg), "invalid horizon")
}

func TestFormValidators(t *testing.T) {
	assert.NoError(t, validateDecimal(" 12.5 "))
	assert.Error(t, validateDecimal("abc"))
	assert.NoError(t, validateInt("30"))
	assert.Error(t, validateInt("3.5"))
}
