package output

import (
	"bytes"
	"encoding/csv"
	"sort"
	"strconv"

	"github.com/quantdash/retirement-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "InvestmentFraction", "FinalAccumulation", "TotalContributed", "InvestmentReturns", "DepletionAge", "DistributionEndingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		r := sc.Results
		depletion := ""
		if r.Depleted() {
			depletion = strconv.Itoa(*r.DepletionAge)
		}
		row := []string{
			sc.Name,
			r.InvestmentFraction.StringFixed(6),
			r.FinalAccumulation.StringFixed(2),
			r.TotalContributed.StringFixed(2),
			r.InvestmentReturns.StringFixed(2),
			depletion,
			r.DistributionEndingBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
