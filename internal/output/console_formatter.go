package output

import (
	"bytes"
	"fmt"

	"github.com/quantdash/retirement-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PLAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range results.Scenarios {
		r := sc.Results
		fmt.Fprintf(&buf, "%s: Fraction=%s Contribution=%s/yr\n",
			sc.Name,
			FormatFraction(r.InvestmentFraction),
			FormatCurrency(r.InvestmentFraction.Mul(r.Params.Salary)),
		)
		fmt.Fprintf(&buf, "  AtRetirement=%s Contributed=%s Returns=%s\n",
			FormatCurrency(r.FinalAccumulation),
			FormatCurrency(r.TotalContributed),
			FormatCurrency(r.InvestmentReturns),
		)
		if r.Depleted() {
			fmt.Fprintf(&buf, "  DEPLETED at age %d (target %d)\n", *r.DepletionAge, r.Params.MaxAge)
		} else {
			fmt.Fprintf(&buf, "  Funded to age %d, ending balance %s\n",
				r.Params.MaxAge, FormatCurrency(r.DistributionEndingBalance))
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (fraction %s)\n", rec.ScenarioName, FormatFraction(rec.InvestmentFraction))
	}
	return buf.Bytes(), nil
}
