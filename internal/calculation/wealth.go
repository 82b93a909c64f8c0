// Package calculation implements the geometric-mean-of-outcomes engine.
//
// Plans are scored by the fraction of disposable income retained in each
// outcome scenario, aggregated with a geometric mean. The geometric mean is
// dominated by the minimum outcome: a single catastrophic scenario that
// consumes all disposable income drives the aggregate to exactly zero.
// Arithmetic means hide that tail; this engine is built so it cannot.
//
// Scenario probabilities are stored for reference only. Aggregation is
// equal-weighted across the named scenarios.
package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/domain"
)

// DisposableIncome resolves the income basis and subtracts baseline spend.
//
// After-tax income takes precedence over gross income with a tax rate. When
// no income is supplied at all, the result is -baselineSpend: a sentinel
// meaning "no income basis", not an error. No floor is applied; the result
// may be zero or negative and downstream functions treat that as ruin.
func DisposableIncome(basis domain.IncomeBasis, baselineSpend decimal.Decimal) decimal.Decimal {
	afterTax, ok := basis.Resolve()
	if !ok {
		return baselineSpend.Neg()
	}
	return afterTax.Sub(baselineSpend)
}

// WealthRatio returns the fraction of disposable income retained after
// paying the year's premiums and a scenario's out-of-pocket costs.
//
// The ratio is (disposable - premium - oop) / disposable, floored at zero.
// Non-positive disposable income returns exactly zero, which also guards
// the division. With non-negative premium and OOP the ratio cannot exceed
// one.
func WealthRatio(disposableIncome, totalPremium, scenarioOOP decimal.Decimal) decimal.Decimal {
	if disposableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	remaining := disposableIncome.Sub(totalPremium).Sub(scenarioOOP)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return remaining.Div(disposableIncome)
}

// GeometricMean returns the nth root of the product of n values.
//
// An empty input returns zero. Any value at or below zero short-circuits to
// exactly zero: one ruined outcome collapses the whole aggregate, which is
// the property the ranking is built on.
func GeometricMean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}

	product := 1.0
	for _, v := range values {
		if v.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero
		}
		product *= v.InexactFloat64()
	}

	return decimal.NewFromFloat(math.Pow(product, 1.0/float64(len(values))))
}

// ScenarioWealthRatios computes the wealth ratio for each scenario under a
// plan, with any add-on premiums folded into the total premium and add-on
// expected OOP added to every scenario's out-of-pocket.
func ScenarioWealthRatios(
	disposableIncome decimal.Decimal,
	plan *domain.MedicalPlan,
	scenarios []domain.Scenario,
	addons domain.Addons,
) []decimal.Decimal {
	premium := domain.TotalAnnualPremium(plan, addons)
	addonOOP := addons.ExpectedOOPTotal()

	ratios := make([]decimal.Decimal, 0, len(scenarios))
	for i := range scenarios {
		totalOOP := scenarios[i].TotalOOP().Add(addonOOP)
		ratios = append(ratios, WealthRatio(disposableIncome, premium, totalOOP))
	}
	return ratios
}

// ExpectedLogWealth returns the equal-weighted mean of the natural logs of
// the per-scenario wealth ratios: E[log(W/W0)].
//
// Non-positive disposable income returns negative infinity, as does any
// scenario with a zero ratio (log of zero). An empty scenario set returns
// zero, which is distinct from ruin: no modeled outcomes means the full
// disposable income is retained by definition.
func ExpectedLogWealth(
	plan *domain.MedicalPlan,
	scenarios []domain.Scenario,
	baselineSpend decimal.Decimal,
	basis domain.IncomeBasis,
	addons domain.Addons,
) float64 {
	disposable := DisposableIncome(basis, baselineSpend)
	if disposable.LessThanOrEqual(decimal.Zero) {
		return math.Inf(-1)
	}

	ratios := ScenarioWealthRatios(disposable, plan, scenarios, addons)
	if len(ratios) == 0 {
		return 0
	}

	logSum := 0.0
	for _, r := range ratios {
		if r.LessThanOrEqual(decimal.Zero) {
			return math.Inf(-1)
		}
		logSum += math.Log(r.InexactFloat64())
	}
	return logSum / float64(len(ratios))
}

// GeometricMeanWealth returns the currency-denominated geometric mean:
// exp(E[log(W/W0)]) x disposable income. It is the certain dollar amount
// with the same log-utility as the uncertain scenario outcomes. Ruin
// (negative-infinity expected log wealth) returns exactly zero.
func GeometricMeanWealth(
	plan *domain.MedicalPlan,
	scenarios []domain.Scenario,
	baselineSpend decimal.Decimal,
	basis domain.IncomeBasis,
	addons domain.Addons,
) decimal.Decimal {
	expectedLog := ExpectedLogWealth(plan, scenarios, baselineSpend, basis, addons)
	if math.IsInf(expectedLog, -1) {
		return decimal.Zero
	}

	disposable := DisposableIncome(basis, baselineSpend)
	return decimal.NewFromFloat(math.Exp(expectedLog)).Mul(disposable)
}
