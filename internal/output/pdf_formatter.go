package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"github.com/quantdash/retirement-planner/internal/domain"
)

// PDFFormatter renders one page per scenario: summary block plus a sampled
// trajectory table.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

// trajectorySampleStep keeps the table to a page: one row every N ages plus
// the retirement-age and final rows.
const trajectorySampleStep = 5

func (p PDFFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Retirement Plan Report", false)

	for _, sc := range results.Scenarios {
		r := sc.Results
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 16)
		pdf.CellFormat(0, 10, sc.Name, "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "", 11)
		summary := [][2]string{
			{"Investment fraction", FormatFraction(r.InvestmentFraction)},
			{"Annual contribution", FormatCurrency(r.InvestmentFraction.Mul(r.Params.Salary))},
			{fmt.Sprintf("Capital at retirement (age %d)", r.Params.RetirementAge), FormatCurrency(r.FinalAccumulation)},
			{"Total contributed", FormatCurrency(r.TotalContributed)},
			{"Investment returns", FormatCurrency(r.InvestmentReturns)},
			{fmt.Sprintf("Ending balance (age %d)", r.Params.MaxAge), FormatCurrency(r.DistributionEndingBalance)},
		}
		if r.Depleted() {
			summary = append(summary, [2]string{"Depleted at age", strconv.Itoa(*r.DepletionAge)})
		}
		for _, row := range summary {
			pdf.CellFormat(90, 7, row[0], "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, row[1], "", 1, "R", false, 0, "")
		}
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(25, 7, "Age", "B", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, "Phase", "B", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, "Balance", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, point := range sampleTrajectory(r) {
			pdf.CellFormat(25, 6, strconv.Itoa(point.Age), "", 0, "L", false, 0, "")
			pdf.CellFormat(40, 6, string(point.Phase), "", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, FormatCurrency(point.Value), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sampleTrajectory(r *domain.PlanResults) []domain.DataPoint {
	var sampled []domain.DataPoint
	last := len(r.ChartData) - 1
	for i, point := range r.ChartData {
		if i%trajectorySampleStep == 0 || point.Age == r.Params.RetirementAge || i == last {
			sampled = append(sampled, point)
		}
	}
	return sampled
}
