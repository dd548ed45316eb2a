package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantdash/retirement-planner/internal/calculation"
	"github.com/quantdash/retirement-planner/internal/domain"
)

func testComparison(t *testing.T) *domain.PlanComparison {
	t.Helper()
	thin := decimal.NewFromFloat(0.02)
	config := &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Solved", Params: domain.PlanParams{
				Salary:           decimal.NewFromInt(60000),
				CurrentAge:       30,
				RetirementAge:    65,
				MaxAge:           100,
				RetirementIncome: decimal.NewFromInt(120000),
				AccumulationRate: decimal.NewFromFloat(0.12),
				DistributionRate: decimal.NewFromFloat(0.05),
			}},
			{Name: "Thin", Params: domain.PlanParams{
				Salary:             decimal.NewFromInt(60000),
				CurrentAge:         30,
				RetirementAge:      65,
				MaxAge:             100,
				RetirementIncome:   decimal.NewFromInt(120000),
				AccumulationRate:   decimal.NewFromFloat(0.12),
				DistributionRate:   decimal.NewFromFloat(0.05),
				InvestmentFraction: &thin,
			}},
		},
	}
	comparison, err := calculation.NewPlanEngine().RunScenarios(config)
	require.NoError(t, err)
	return comparison
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("csv"))
	assert.NotNil(t, GetFormatterByName("detailed-csv"))
	assert.NotNil(t, GetFormatterByName("json"))
	assert.NotNil(t, GetFormatterByName("html"))
	assert.NotNil(t, GetFormatterByName("pdf"))
	assert.Nil(t, GetFormatterByName("xml"))

	// Aliases resolve to canonical formatters.
	assert.Equal(t, "detailed-csv", GetFormatterByName("trajectory").Name())
	assert.Equal(t, "console", GetFormatterByName("TXT").Name())
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(testComparison(t))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "Solved")
	assert.Contains(t, out, "Thin")
	assert.Contains(t, out, "DEPLETED at age 71")
	assert.Contains(t, out, "Recommended: Solved")
}

func TestCSVSummarizer(t *testing.T) {
	data, err := CSVSummarizer{}.Format(testComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Scenario", records[0][0])
	// Rows are sorted by scenario name.
	assert.Equal(t, "Solved", records[1][0])
	assert.Equal(t, "Thin", records[2][0])
	assert.Equal(t, "", records[1][5], "no depletion age for the funded plan")
	assert.Equal(t, "71", records[2][5])
}

func TestCSVDetailedExporter(t *testing.T) {
	data, err := CSVDetailedExporter{}.Format(testComparison(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	// Header plus 71 ages for each of the two scenarios.
	assert.Len(t, records, 1+71*2)
	assert.Equal(t, []string{"Scenario", "Age", "Phase", "Value", "Contribution", "Withdrawal"}, records[0])
	assert.Equal(t, "30", records[1][1])
	assert.Equal(t, "accumulation", records[1][2])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(testComparison(t))
	require.NoError(t, err)

	var decoded domain.PlanComparison
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.Len(t, decoded.Scenarios[0].Results.ChartData, 71)
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(testComparison(t))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "Solved")
	assert.Contains(t, out, "Capital depleted at age 71")
}

func TestPDFFormatter(t *testing.T) {
	data, err := PDFFormatter{}.Format(testComparison(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "expected a PDF header")
}

func TestGenerateReport_WritesFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	require.NoError(t, GenerateReport(testComparison(t), "csv"))
	matches, err := filepath.Glob("retirement_plan_*.csv")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestGenerateReport_UnsupportedFormat(t *testing.T) {
	err := GenerateReport(testComparison(t), "carrier-pigeon")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console")
}
