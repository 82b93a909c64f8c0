package compare

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/domain"
)

// CompareInput carries the household parameters shared by every plan in a
// comparison run: the income basis, baseline spend, optional add-ons, and
// an optional override scenario list. When Scenarios is non-empty, every
// plan is evaluated against that identical set instead of its own derived
// scenarios.
type CompareInput struct {
	Income        domain.IncomeBasis `yaml:"income" json:"income"`
	BaselineSpend decimal.Decimal    `yaml:"baseline_spend" json:"baseline_spend"`
	Addons        domain.Addons      `yaml:"addons" json:"addons"`
	Scenarios     []domain.Scenario  `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// ComparisonSet is the ranked output of a comparison run.
type ComparisonSet struct {
	DisposableIncome decimal.Decimal               `json:"disposableIncome"`
	Results          []domain.PlanComparisonResult `json:"results"`
	Recommendations  []string                      `json:"recommendations"`
}

// Best returns the top-ranked result, or nil for an empty set.
func (cs *ComparisonSet) Best() *domain.PlanComparisonResult {
	if len(cs.Results) == 0 {
		return nil
	}
	return &cs.Results[0]
}

// GenerateRecommendations derives short human-readable findings from a
// ranked comparison set.
func GenerateRecommendations(cs *ComparisonSet) []string {
	recommendations := []string{}

	if len(cs.Results) == 0 {
		return recommendations
	}

	best := cs.Results[0]
	if !best.GeometricMean.IsZero() {
		recommendations = append(recommendations,
			"Best Protection: "+best.PlanName+" retains $"+best.GeometricMean.StringFixed(0)+
				" geometric-mean wealth")
	}

	// Lowest total premium
	cheapest := cs.Results[0]
	for _, r := range cs.Results[1:] {
		if r.TotalAnnualPremium.LessThan(cheapest.TotalAnnualPremium) {
			cheapest = r
		}
	}
	if cheapest.PlanName != best.PlanName {
		premiumGap := best.TotalAnnualPremium.Sub(cheapest.TotalAnnualPremium)
		recommendations = append(recommendations,
			"Lowest Premium: "+cheapest.PlanName+" costs $"+premiumGap.StringFixed(0)+
				" less per year than the top-ranked plan")
	}

	// Ruin warnings: any plan with a zero-ratio scenario
	for _, r := range cs.Results {
		for _, name := range r.ScenarioOrder {
			if r.ScenarioWealth[name].Ratio.IsZero() {
				recommendations = append(recommendations,
					fmt.Sprintf("Ruin Risk: %s retains nothing in the %s scenario", r.PlanName, name))
				break
			}
		}
	}

	return recommendations
}
