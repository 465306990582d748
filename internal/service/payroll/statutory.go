package payroll

import "github.com/shopspring/decimal"

// Statutory contribution and withholding tables. The brackets are simplified
// approximations of the published Philippine schedules, kept intentionally
// small; they are not a certified reference. Every function takes a
// monthly-equivalent salary and returns the full monthly amount, which the
// engine halves per semi-monthly period.

type sssBracket struct {
	ceiling      decimal.Decimal
	contribution decimal.Decimal
}

var sssBrackets = []sssBracket{
	{decimal.NewFromInt(3250), decimal.RequireFromString("135")},
	{decimal.NewFromInt(3750), decimal.RequireFromString("157.50")},
	{decimal.NewFromInt(4250), decimal.RequireFromString("180")},
	{decimal.NewFromInt(4750), decimal.RequireFromString("202.50")},
	{decimal.NewFromInt(5250), decimal.RequireFromString("225")},
	{decimal.NewFromInt(5750), decimal.RequireFromString("247.50")},
}

// Above the highest defined bracket the contribution falls back to a flat
// percentage of the monthly salary.
var sssFallbackRate = decimal.RequireFromString("0.045")

func SSS(monthlySalary decimal.Decimal) decimal.Decimal {
	for _, b := range sssBrackets {
		if monthlySalary.LessThanOrEqual(b.ceiling) {
			return b.contribution
		}
	}
	return monthlySalary.Mul(sssFallbackRate)
}

var (
	philHealthRate  = decimal.RequireFromString("0.03")
	philHealthFloor = decimal.NewFromInt(300)
	philHealthCap   = decimal.NewFromInt(1800)
)

func PhilHealth(monthlySalary decimal.Decimal) decimal.Decimal {
	contribution := monthlySalary.Mul(philHealthRate)
	if contribution.LessThan(philHealthFloor) {
		return philHealthFloor
	}
	if contribution.GreaterThan(philHealthCap) {
		return philHealthCap
	}
	return contribution
}

var (
	pagIbigRate = decimal.RequireFromString("0.02")
	pagIbigCap  = decimal.NewFromInt(100)
)

func PagIbig(monthlySalary decimal.Decimal) decimal.Decimal {
	contribution := monthlySalary.Mul(pagIbigRate)
	if contribution.GreaterThan(pagIbigCap) {
		return pagIbigCap
	}
	return contribution
}

// taxBracket holds the lower threshold of a marginal band, the cumulative tax
// owed at that threshold, and the rate applied to the excess above it.
type taxBracket struct {
	threshold decimal.Decimal
	base      decimal.Decimal
	rate      decimal.Decimal
}

// Ordered highest band first; WithholdingTax picks the first band the salary
// exceeds.
var taxBrackets = []taxBracket{
	{decimal.NewFromInt(666666), decimal.RequireFromString("183541.80"), decimal.RequireFromString("0.35")},
	{decimal.NewFromInt(166666), decimal.RequireFromString("33541.80"), decimal.RequireFromString("0.30")},
	{decimal.NewFromInt(66666), decimal.RequireFromString("8541.80"), decimal.RequireFromString("0.25")},
	{decimal.NewFromInt(33332), decimal.RequireFromString("1875"), decimal.RequireFromString("0.20")},
	{decimal.NewFromInt(20833), decimal.Zero, decimal.RequireFromString("0.15")},
}

func WithholdingTax(monthlySalary decimal.Decimal) decimal.Decimal {
	for _, b := range taxBrackets {
		if monthlySalary.GreaterThan(b.threshold) {
			return b.base.Add(monthlySalary.Sub(b.threshold).Mul(b.rate))
		}
	}
	return decimal.Zero
}
