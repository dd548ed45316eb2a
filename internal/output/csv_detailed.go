package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/quantdash/retirement-planner/internal/domain"
)

// CSVDetailedExporter writes one row per simulated age per scenario, in
// trajectory order, suitable for charting.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "Phase", "Value", "Contribution", "Withdrawal"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		for _, p := range sc.Results.ChartData {
			row := []string{
				sc.Name,
				strconv.Itoa(p.Age),
				string(p.Phase),
				p.Value.StringFixed(2),
				p.Contribution.StringFixed(2),
				p.Withdrawal.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
