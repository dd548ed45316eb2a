package calculation

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// NeededCapital computes the capital required at the start of the distribution
// phase to fund years equal withdrawals of amount, each taken at the start of
// its year (annuity-due), with the remainder compounding at rate in between,
// such that the balance reaches exactly zero after the final withdrawal.
//
// The backward recursion unwinds the annuity-due present value one year at a
// time; it is numerically equivalent to the closed form and shares its shape
// with the forward simulation in the engine. Assumes rate > -1.
func NeededCapital(amount, rate decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return decimal.Zero
	}
	onePlusRate := one.Add(rate)
	capital := amount
	for year := 0; year < years-1; year++ {
		capital = amount.Add(capital.Div(onePlusRate))
	}
	return capital
}

// ExactInvestmentFraction computes the fraction of annual salary that must be
// invested at the end of each accumulation year (ordinary annuity) at
// accumulationRate so that the capital at retirementAge funds
// maxAge-retirementAge withdrawals of income at distributionRate.
//
// Assumes pre-validated input: retirementAge > currentAge and a non-zero
// accumulationRate, otherwise (1+i)^n - 1 is zero and the inversion divides
// by zero.
func ExactInvestmentFraction(income, accumulationRate, distributionRate, salary decimal.Decimal, currentAge, retirementAge, maxAge int) decimal.Decimal {
	accumulationYears := retirementAge - currentAge
	distributionYears := maxAge - retirementAge

	needed := NeededCapital(income, distributionRate, distributionYears)

	// Future value of an ordinary annuity: contribution * ((1+i)^n - 1) / i.
	growth := one.Add(accumulationRate).Pow(decimal.NewFromInt(int64(accumulationYears))).Sub(one)
	contribution := needed.Mul(accumulationRate).Div(growth)

	return contribution.Div(salary)
}
