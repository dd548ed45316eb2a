package calculation

import (
	"fmt"

	"github.com/quantdash/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// PlanEngine runs the two-phase retirement plan simulation. It holds no
// per-calculation state, so a single engine may be shared by concurrent
// callers.
type PlanEngine struct {
	Logger Logger
}

// NewPlanEngine creates a plan engine with a no-op logger.
func NewPlanEngine() *PlanEngine {
	return &PlanEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *PlanEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// CalculatePlan validates the parameters and produces the full capital
// trajectory from current_age to max_age plus summary statistics. Either the
// complete results are returned or a *domain.ParamError before any simulation
// work begins.
func (pe *PlanEngine) CalculatePlan(params domain.PlanParams) (*domain.PlanResults, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var fraction decimal.Decimal
	if params.InvestmentFraction != nil {
		fraction = *params.InvestmentFraction
	} else {
		fraction = ExactInvestmentFraction(
			params.RetirementIncome, params.AccumulationRate, params.DistributionRate,
			params.Salary, params.CurrentAge, params.RetirementAge, params.MaxAge)
		pe.Logger.Debugf("solved investment fraction: %s", fraction.String())
	}

	accumulationYears := params.AccumulationYears()
	distributionYears := params.DistributionYears()
	annualContribution := fraction.Mul(params.Salary)
	accumulationFactor := one.Add(params.AccumulationRate)

	chart := make([]domain.DataPoint, 0, accumulationYears+distributionYears+1)

	// Accumulation: the balance is sampled before each year's contribution,
	// and the contribution lands at the end of the year (ordinary annuity).
	current := params.InitialCapital
	totalContributed := decimal.Zero
	for year := 0; year <= accumulationYears; year++ {
		contribution := decimal.Zero
		if year < accumulationYears {
			contribution = annualContribution
		}
		chart = append(chart, domain.DataPoint{
			Age:          params.CurrentAge + year,
			Value:        current,
			Phase:        domain.PhaseAccumulation,
			Contribution: contribution,
		})
		if year < accumulationYears {
			current = current.Mul(accumulationFactor).Add(annualContribution)
			totalContributed = totalContributed.Add(annualContribution)
		}
	}
	finalAccumulation := current

	// The retirement-age point is shared between the phases: annotate the last
	// accumulation point with the first withdrawal instead of pushing a
	// duplicate age.
	chart[len(chart)-1].Withdrawal = params.RetirementIncome

	// Distribution: each withdrawal is taken at the start of its year and the
	// remainder compounds (annuity-due), mirroring NeededCapital. Once the
	// balance reaches zero it is clamped and stays there.
	distributionFactor := one.Add(params.DistributionRate)
	remaining := finalAccumulation
	var depletionAge *int
	for year := 1; year <= distributionYears; year++ {
		age := params.RetirementAge + year
		withdrawal := decimal.Zero
		if year < distributionYears {
			withdrawal = params.RetirementIncome
		}
		chart = append(chart, domain.DataPoint{
			Age:        age,
			Value:      remaining,
			Phase:      domain.PhaseDistribution,
			Withdrawal: withdrawal,
		})
		if year < distributionYears && depletionAge == nil {
			remaining = remaining.Sub(params.RetirementIncome).Mul(distributionFactor)
			if remaining.LessThanOrEqual(decimal.Zero) {
				depleted := age + 1
				depletionAge = &depleted
				remaining = decimal.Zero
				pe.Logger.Debugf("capital depleted at age %d", depleted)
			}
		}
	}

	return &domain.PlanResults{
		ChartData:                 chart,
		InvestmentFraction:        fraction,
		FinalAccumulation:         finalAccumulation,
		TotalContributed:          totalContributed,
		InvestmentReturns:         finalAccumulation.Sub(totalContributed),
		DistributionEndingBalance: remaining,
		DepletionAge:              depletionAge,
		Params:                    params,
	}, nil
}

// RunScenario calculates the plan for a single named scenario.
func (pe *PlanEngine) RunScenario(scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	results, err := pe.CalculatePlan(scenario.Params)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}
	return &domain.ScenarioSummary{Name: scenario.Name, Results: results}, nil
}

// RunScenarios runs every scenario in the configuration and returns a
// comparison in input order.
func (pe *PlanEngine) RunScenarios(config *domain.Configuration) (*domain.PlanComparison, error) {
	summaries := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := pe.RunScenario(&config.Scenarios[i])
		if err != nil {
			return nil, err
		}
		summaries[i] = *summary
	}
	return &domain.PlanComparison{Scenarios: summaries}, nil
}
