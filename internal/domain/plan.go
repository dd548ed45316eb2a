package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Phase identifies which side of retirement a trajectory point belongs to.
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseDistribution Phase = "distribution"
)

// PlanParams are the inputs to a single plan calculation. A zero
// InitialCapital means no starting balance; a nil InvestmentFraction asks the
// engine to solve for the fraction that funds the full distribution phase.
type PlanParams struct {
	Salary             decimal.Decimal  `json:"salary" yaml:"salary"`
	CurrentAge         int              `json:"current_age" yaml:"current_age"`
	RetirementAge      int              `json:"retirement_age" yaml:"retirement_age"`
	MaxAge             int              `json:"max_age" yaml:"max_age"`
	RetirementIncome   decimal.Decimal  `json:"retirement_income" yaml:"retirement_income"`
	AccumulationRate   decimal.Decimal  `json:"accumulation_rate" yaml:"accumulation_rate"`
	DistributionRate   decimal.Decimal  `json:"distribution_rate" yaml:"distribution_rate"`
	InitialCapital     decimal.Decimal  `json:"initial_capital" yaml:"initial_capital"`
	InvestmentFraction *decimal.Decimal `json:"investment_fraction,omitempty" yaml:"investment_fraction,omitempty"`
}

// AccumulationYears returns the number of contribution years.
func (p *PlanParams) AccumulationYears() int { return p.RetirementAge - p.CurrentAge }

// DistributionYears returns the number of withdrawal years.
func (p *PlanParams) DistributionYears() int { return p.MaxAge - p.RetirementAge }

// ParamError reports a parameter that violates its constraint. It carries the
// field name and the constraint text so a caller can render a corrective
// message next to the offending input.
type ParamError struct {
	Field      string
	Constraint string
	Value      string
}

func (e *ParamError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Constraint)
	}
	return fmt.Sprintf("invalid parameter %s: %s (got %s)", e.Field, e.Constraint, e.Value)
}

// ErrDegenerateRate is returned when the investment fraction must be solved
// for but the accumulation rate is exactly zero. The annuity inversion divides
// by (1+i)^n - 1, which is zero in that case; supplying investment_fraction
// explicitly makes a zero rate acceptable.
var ErrDegenerateRate = &ParamError{
	Field:      "accumulation_rate",
	Constraint: "must be non-zero when investment_fraction is not supplied",
}

var minusOne = decimal.NewFromInt(-1)

// Validate checks every parameter constraint up front. The engine refuses to
// run on invalid input rather than letting degenerate values propagate through
// the arithmetic.
func (p *PlanParams) Validate() error {
	if p.Salary.LessThanOrEqual(decimal.Zero) {
		return &ParamError{Field: "salary", Constraint: "must be positive", Value: p.Salary.String()}
	}
	if p.CurrentAge < 0 {
		return &ParamError{Field: "current_age", Constraint: "cannot be negative", Value: fmt.Sprintf("%d", p.CurrentAge)}
	}
	if p.RetirementAge <= p.CurrentAge {
		return &ParamError{Field: "retirement_age", Constraint: "must be greater than current_age", Value: fmt.Sprintf("%d", p.RetirementAge)}
	}
	if p.MaxAge <= p.RetirementAge {
		return &ParamError{Field: "max_age", Constraint: "must be greater than retirement_age", Value: fmt.Sprintf("%d", p.MaxAge)}
	}
	if p.RetirementIncome.LessThanOrEqual(decimal.Zero) {
		return &ParamError{Field: "retirement_income", Constraint: "must be positive", Value: p.RetirementIncome.String()}
	}
	if p.AccumulationRate.LessThanOrEqual(minusOne) {
		return &ParamError{Field: "accumulation_rate", Constraint: "must be greater than -100%", Value: p.AccumulationRate.String()}
	}
	if p.DistributionRate.LessThanOrEqual(minusOne) {
		return &ParamError{Field: "distribution_rate", Constraint: "must be greater than -100%", Value: p.DistributionRate.String()}
	}
	if p.InitialCapital.LessThan(decimal.Zero) {
		return &ParamError{Field: "initial_capital", Constraint: "cannot be negative", Value: p.InitialCapital.String()}
	}
	if p.InvestmentFraction != nil {
		f := *p.InvestmentFraction
		if f.LessThanOrEqual(decimal.Zero) || f.GreaterThan(decimal.NewFromInt(1)) {
			return &ParamError{Field: "investment_fraction", Constraint: "must be in (0, 1]", Value: f.String()}
		}
	} else if p.AccumulationRate.IsZero() {
		return ErrDegenerateRate
	}
	return nil
}

// DataPoint is one simulated age on the capital trajectory. Value is the
// balance before that year's cash flow; Contribution and Withdrawal are the
// amounts moved during the year following the sample (zero in each phase's
// final year).
type DataPoint struct {
	Age          int             `json:"age"`
	Value        decimal.Decimal `json:"value"`
	Phase        Phase           `json:"phase"`
	Contribution decimal.Decimal `json:"contribution"`
	Withdrawal   decimal.Decimal `json:"withdrawal"`
}

// PlanResults is the full output of one plan calculation. ChartData holds one
// point per integer age from current_age to max_age; the retirement_age point
// appears exactly once, carrying both the end-of-accumulation value and the
// first withdrawal.
type PlanResults struct {
	ChartData                 []DataPoint     `json:"chart_data"`
	InvestmentFraction        decimal.Decimal `json:"investment_fraction"`
	FinalAccumulation         decimal.Decimal `json:"final_accumulation"`
	TotalContributed          decimal.Decimal `json:"total_contributed"`
	InvestmentReturns         decimal.Decimal `json:"investment_returns"`
	DistributionEndingBalance decimal.Decimal `json:"distribution_ending_balance"`
	DepletionAge              *int            `json:"depletion_age"`
	Params                    PlanParams      `json:"params"`
}

// Depleted reports whether the capital ran out before max_age.
func (r *PlanResults) Depleted() bool { return r.DepletionAge != nil }

// PointAt returns the chart point for a given age.
func (r *PlanResults) PointAt(age int) (DataPoint, bool) {
	idx := age - r.Params.CurrentAge
	if idx < 0 || idx >= len(r.ChartData) {
		return DataPoint{}, false
	}
	return r.ChartData[idx], true
}
