package compare

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/calculation"
	"github.com/rgehrsitz/planrank/internal/domain"
)

// Engine ranks medical plans by geometric-mean retained wealth.
type Engine struct{}

// NewEngine creates a new comparison engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Compare evaluates every plan against the shared household parameters and
// returns results sorted by geometric-mean wealth, best first.
//
// Disposable income is computed once: income and baseline spend are not
// plan-dependent. Each plan gets its own derived scenario set unless the
// input supplies an override list, in which case all plans are evaluated
// against that identical set. Ties keep their input order; the sort is
// stable. A plan whose costs guarantee ruin in every scenario is not an
// error, it simply ranks at geometric-mean zero.
func (e *Engine) Compare(plans []domain.MedicalPlan, input CompareInput) *ComparisonSet {
	disposable := calculation.DisposableIncome(input.Income, input.BaselineSpend)

	results := make([]domain.PlanComparisonResult, 0, len(plans))
	for i := range plans {
		results = append(results, e.evaluatePlan(&plans[i], disposable, input))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].GeometricMean.GreaterThan(results[j].GeometricMean)
	})

	cs := &ComparisonSet{
		DisposableIncome: disposable,
		Results:          results,
	}
	cs.Recommendations = GenerateRecommendations(cs)
	return cs
}

// evaluatePlan computes all metrics for a single plan.
func (e *Engine) evaluatePlan(
	plan *domain.MedicalPlan,
	disposable decimal.Decimal,
	input CompareInput,
) domain.PlanComparisonResult {
	scenarios := input.Scenarios
	if len(scenarios) == 0 {
		scenarios = calculation.BuildScenariosForPlan(plan)
	}

	expectedLog := calculation.ExpectedLogWealth(plan, scenarios, input.BaselineSpend, input.Income, input.Addons)
	gmWealth := calculation.GeometricMeanWealth(plan, scenarios, input.BaselineSpend, input.Income, input.Addons)

	totalPremium := domain.TotalAnnualPremium(plan, input.Addons)
	ratios := calculation.ScenarioWealthRatios(disposable, plan, scenarios, input.Addons)

	scenarioWealth := make(map[string]domain.ScenarioOutcome, len(scenarios))
	scenarioOrder := make([]string, 0, len(scenarios))
	for i := range scenarios {
		scenarioOrder = append(scenarioOrder, scenarios[i].Name)
		scenarioWealth[scenarios[i].Name] = domain.ScenarioOutcome{
			Wealth: ratios[i].Mul(disposable),
			Ratio:  ratios[i],
		}
	}

	return domain.PlanComparisonResult{
		PlanName:           plan.Name,
		AnnualPremium:      plan.AnnualPremium,
		TotalAnnualPremium: totalPremium,
		InNetworkOOPMax:    plan.InNetworkOOPMax,
		ExpectedLogWealth:  domain.LogWealth(expectedLog),
		GeometricMean:      gmWealth,
		ScenarioWealth:     scenarioWealth,
		ScenarioOrder:      scenarioOrder,
	}
}
