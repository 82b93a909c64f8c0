package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/domain"
)

// BuildScenariosForPlan derives the four canonical yearly outcome scenarios
// from a plan's cost-sharing structure:
//
//  1. no_use: $0 medical OOP (healthy year)
//  2. minor_use: the plan's expected minor-usage OOP (typical year)
//  3. cat_in_network: the in-network OOP max (surgery, hospitalization)
//  4. cat_oon_emergency: out-of-network catastrophe
//
// For the out-of-network catastrophe, the emergency portion is billed at
// in-network cost sharing when the plan honors emergency parity; otherwise
// a conservative doubling of the in-network OOP max stands in for an
// unmodeled separate out-of-network maximum. Extra exposure covers
// post-stabilization care (when not covered) plus ground transport, which
// has no balance-billing protection. Ground transport lives here and only
// here; callers must not add it again.
//
// Pure function of the plan's fields. No side effects.
func BuildScenariosForPlan(plan *domain.MedicalPlan) []domain.Scenario {
	emergencyOOP := plan.InNetworkOOPMax
	if !plan.OONEmergencyAsInNetwork {
		emergencyOOP = plan.InNetworkOOPMax.Mul(decimal.NewFromInt(2))
	}

	postStabExtra := decimal.Zero
	if !plan.PostStabilizationCovered {
		postStabExtra = plan.PostStabilizationExposure
	}

	return []domain.Scenario{
		{
			Name:        domain.ScenarioNoUse,
			Probability: domain.DefaultProbabilities[domain.ScenarioNoUse],
			MedicalOOP:  decimal.Zero,
			ExtraOON:    decimal.Zero,
		},
		{
			Name:        domain.ScenarioMinorUse,
			Probability: domain.DefaultProbabilities[domain.ScenarioMinorUse],
			MedicalOOP:  plan.ExpectedMinorOOP,
			ExtraOON:    decimal.Zero,
		},
		{
			Name:        domain.ScenarioCatInNetwork,
			Probability: domain.DefaultProbabilities[domain.ScenarioCatInNetwork],
			MedicalOOP:  plan.InNetworkOOPMax,
			ExtraOON:    decimal.Zero,
		},
		{
			Name:        domain.ScenarioCatOONEmergency,
			Probability: domain.DefaultProbabilities[domain.ScenarioCatOONEmergency],
			MedicalOOP:  emergencyOOP,
			ExtraOON:    postStabExtra.Add(plan.GroundTransportExposure),
		},
	}
}
