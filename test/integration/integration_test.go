package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantdash/retirement-planner/internal/calculation"
	"github.com/quantdash/retirement-planner/internal/config"
	"github.com/quantdash/retirement-planner/internal/output"
)

// Full round trip: example config written to disk, reloaded, simulated, and
// rendered by every formatter.
func TestEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")

	parser := config.NewInputParser()
	require.NoError(t, output.SaveConfiguration(parser.CreateExampleConfiguration(), path))

	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, cfg.Scenarios, 2)

	engine := calculation.NewPlanEngine()
	results, err := engine.RunScenarios(cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 2)

	for _, sc := range results.Scenarios {
		r := sc.Results
		assert.Len(t, r.ChartData, r.Params.MaxAge-r.Params.CurrentAge+1)
		assert.True(t, r.InvestmentFraction.IsPositive())
		assert.True(t, r.FinalAccumulation.IsPositive())
	}

	// Report generation writes into the working directory; run it from the
	// temp dir to keep the repo clean.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	for _, format := range []string{"console", "csv", "detailed-csv", "json", "html", "pdf"} {
		assert.NoError(t, output.GenerateReport(results, format), "format %s", format)
	}
}
