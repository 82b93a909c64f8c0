package config

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/domain"
)

// ExampleConfiguration returns a ready-to-run configuration built from 2026
// Covered California research: four HMOs, two PPOs, and dental/vision
// add-ons, priced for an SF couple at $240k gross, 30% effective tax, and
// $80k baseline spend. Written out by the `init` command as a starting
// point for customization.
func ExampleConfiguration() *Configuration {
	gross := decimal.NewFromInt(240000)
	taxRate := decimal.NewFromFloat(0.30)

	return &Configuration{
		Household: Household{
			Income:        domain.GrossBasis(gross, taxRate),
			BaselineSpend: decimal.NewFromInt(80000),
		},
		Plans: []domain.MedicalPlan{
			hmoPlan("Kaiser Gold HMO", 18456, 18400, 400),
			hmoPlan("Kaiser Platinum HMO", 19824, 10000, 200),
			hmoPlan("Blue Shield Trio Gold HMO", 18600, 18400, 400),
			hmoPlan("Blue Shield Trio Platinum HMO", 21672, 10000, 200),
			ppoPlan("Blue Shield Gold 80 PPO", 27168, 18400, 400, 15000),
			ppoPlan("Blue Shield Platinum 90 PPO", 36936, 10000, 200, 10000),
		},
		Addons: domain.Addons{
			Dental: &domain.AddonPlan{
				Name:          "Delta Dental PPO",
				AnnualPremium: decimal.NewFromInt(800),
				ExpectedOOP:   decimal.NewFromInt(200),
			},
			Vision: &domain.AddonPlan{
				Name:          "VSP Vision",
				AnnualPremium: decimal.NewFromInt(300),
				ExpectedOOP:   decimal.NewFromInt(50),
			},
		},
	}
}

// hmoPlan builds an exchange HMO: no out-of-network coverage beyond
// emergencies, post-stabilization not covered.
func hmoPlan(name string, premium, oopMax, minorOOP int64) domain.MedicalPlan {
	return domain.MedicalPlan{
		Name:                      name,
		AnnualPremium:             decimal.NewFromInt(premium),
		InNetworkOOPMax:           decimal.NewFromInt(oopMax),
		NetworkType:               domain.NetworkHMO,
		Deductible:                decimal.Zero,
		ExpectedMinorOOP:          decimal.NewFromInt(minorOOP),
		OONEmergencyAsInNetwork:   true,
		PostStabilizationCovered:  false,
		PostStabilizationExposure: decimal.NewFromInt(15000),
		OONDeductible:             decimal.Zero,
		OONOOPMax:                 decimal.Zero,
		OONCoinsurance:            decimal.NewFromInt(1),
		GroundTransportExposure:   decimal.NewFromInt(1500),
	}
}

// ppoPlan builds an exchange PPO with partial out-of-network coverage.
func ppoPlan(name string, premium, oopMax, minorOOP, postStabExposure int64) domain.MedicalPlan {
	return domain.MedicalPlan{
		Name:                      name,
		AnnualPremium:             decimal.NewFromInt(premium),
		InNetworkOOPMax:           decimal.NewFromInt(oopMax),
		NetworkType:               domain.NetworkPPO,
		Deductible:                decimal.Zero,
		ExpectedMinorOOP:          decimal.NewFromInt(minorOOP),
		OONEmergencyAsInNetwork:   true,
		PostStabilizationCovered:  true,
		PostStabilizationExposure: decimal.NewFromInt(postStabExposure),
		OONDeductible:             decimal.NewFromInt(5500),
		OONOOPMax:                 decimal.NewFromInt(50000),
		OONCoinsurance:            decimal.NewFromFloat(0.50),
		GroundTransportExposure:   decimal.NewFromInt(1500),
	}
}
