package output

import (
	"github.com/quantdash/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName       string
	InvestmentFraction decimal.Decimal
	DepletionAge       *int
}

// AnalyzeScenarios determines the preferred scenario: among plans that never
// deplete, the one demanding the smallest investment fraction; if every plan
// depletes, the one that lasts longest. Extracted from the console formatter
// for testability.
func AnalyzeScenarios(results *domain.PlanComparison) Recommendation {
	var best *domain.ScenarioSummary
	for i := range results.Scenarios {
		sc := &results.Scenarios[i]
		if sc.Results == nil {
			continue
		}
		if best == nil {
			best = sc
			continue
		}
		bestDepleted, scDepleted := best.Results.Depleted(), sc.Results.Depleted()
		switch {
		case bestDepleted && !scDepleted:
			best = sc
		case !bestDepleted && scDepleted:
			// keep best
		case !bestDepleted && !scDepleted:
			if sc.Results.InvestmentFraction.LessThan(best.Results.InvestmentFraction) {
				best = sc
			}
		default:
			if *sc.Results.DepletionAge > *best.Results.DepletionAge {
				best = sc
			}
		}
	}
	if best == nil {
		return Recommendation{}
	}
	return Recommendation{
		ScenarioName:       best.Name,
		InvestmentFraction: best.Results.InvestmentFraction,
		DepletionAge:       best.Results.DepletionAge,
	}
}
