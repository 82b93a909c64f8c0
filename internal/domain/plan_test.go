package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func validPlan() MedicalPlan {
	return MedicalPlan{
		Name:                      "Test Gold HMO",
		AnnualPremium:             decimal.NewFromInt(18456),
		InNetworkOOPMax:           decimal.NewFromInt(18400),
		NetworkType:               NetworkHMO,
		ExpectedMinorOOP:          decimal.NewFromInt(400),
		OONEmergencyAsInNetwork:   true,
		PostStabilizationExposure: decimal.NewFromInt(15000),
		OONCoinsurance:            decimal.NewFromInt(1),
		GroundTransportExposure:   decimal.NewFromInt(1500),
	}
}

func TestMedicalPlanValidate(t *testing.T) {
	plan := validPlan()
	if err := plan.Validate(); err != nil {
		t.Fatalf("Expected valid plan, got %v", err)
	}
}

func TestMedicalPlanValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MedicalPlan)
	}{
		{"empty name", func(p *MedicalPlan) { p.Name = "" }},
		{"negative premium", func(p *MedicalPlan) { p.AnnualPremium = decimal.NewFromInt(-1) }},
		{"negative oop max", func(p *MedicalPlan) { p.InNetworkOOPMax = decimal.NewFromInt(-100) }},
		{"unknown network type", func(p *MedicalPlan) { p.NetworkType = "pos" }},
		{"negative deductible", func(p *MedicalPlan) { p.Deductible = decimal.NewFromInt(-50) }},
		{"negative minor oop", func(p *MedicalPlan) { p.ExpectedMinorOOP = decimal.NewFromInt(-1) }},
		{"coinsurance above one", func(p *MedicalPlan) { p.OONCoinsurance = decimal.NewFromFloat(1.5) }},
		{"negative ground transport", func(p *MedicalPlan) { p.GroundTransportExposure = decimal.NewFromInt(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := validPlan()
			tt.mutate(&plan)
			if err := plan.Validate(); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestNetworkTypeValid(t *testing.T) {
	for _, nt := range []NetworkType{NetworkHMO, NetworkPPO, NetworkEPO} {
		if !nt.Valid() {
			t.Errorf("Expected %s to be valid", nt)
		}
	}
	if NetworkType("pos").Valid() {
		t.Error("Expected unknown network type to be invalid")
	}
}

func TestAddonsTotals_BothPresent(t *testing.T) {
	addons := Addons{
		Dental: &AddonPlan{Name: "Delta Dental PPO", AnnualPremium: decimal.NewFromInt(800), ExpectedOOP: decimal.NewFromInt(200)},
		Vision: &AddonPlan{Name: "VSP Vision", AnnualPremium: decimal.NewFromInt(300), ExpectedOOP: decimal.NewFromInt(50)},
	}

	if !addons.PremiumTotal().Equal(decimal.NewFromInt(1100)) {
		t.Errorf("Expected premium total 1100, got %s", addons.PremiumTotal().String())
	}
	if !addons.ExpectedOOPTotal().Equal(decimal.NewFromInt(250)) {
		t.Errorf("Expected OOP total 250, got %s", addons.ExpectedOOPTotal().String())
	}
}

func TestAddonsTotals_AbsenceContributesZero(t *testing.T) {
	if !(Addons{}).PremiumTotal().IsZero() {
		t.Error("Expected absent add-ons to contribute zero premium")
	}
	if !(Addons{}).ExpectedOOPTotal().IsZero() {
		t.Error("Expected absent add-ons to contribute zero OOP")
	}

	dentalOnly := Addons{
		Dental: &AddonPlan{Name: "Dental", AnnualPremium: decimal.NewFromInt(800), ExpectedOOP: decimal.NewFromInt(200)},
	}
	if !dentalOnly.PremiumTotal().Equal(decimal.NewFromInt(800)) {
		t.Errorf("Expected dental-only premium 800, got %s", dentalOnly.PremiumTotal().String())
	}
}

func TestTotalAnnualPremium(t *testing.T) {
	plan := validPlan()
	addons := Addons{
		Dental: &AddonPlan{Name: "Dental", AnnualPremium: decimal.NewFromInt(800)},
		Vision: &AddonPlan{Name: "Vision", AnnualPremium: decimal.NewFromInt(300)},
	}

	total := TotalAnnualPremium(&plan, addons)
	if !total.Equal(decimal.NewFromInt(19556)) {
		t.Errorf("Expected total premium 19556, got %s", total.String())
	}

	bare := TotalAnnualPremium(&plan, Addons{})
	if !bare.Equal(plan.AnnualPremium) {
		t.Errorf("Expected bare total to equal plan premium, got %s", bare.String())
	}
}

func TestIncomeBasisResolve(t *testing.T) {
	afterTax := decimal.NewFromInt(168000)
	gross := decimal.NewFromInt(240000)
	rate := decimal.NewFromFloat(0.30)

	t.Run("after-tax only", func(t *testing.T) {
		got, ok := (IncomeBasis{AfterTaxIncome: &afterTax}).Resolve()
		if !ok || !got.Equal(afterTax) {
			t.Errorf("Expected 168000, got %s (ok=%v)", got.String(), ok)
		}
	})

	t.Run("gross with rate", func(t *testing.T) {
		got, ok := (IncomeBasis{GrossIncome: &gross, TaxRate: &rate}).Resolve()
		if !ok || !got.Equal(decimal.NewFromInt(168000)) {
			t.Errorf("Expected 168000, got %s (ok=%v)", got.String(), ok)
		}
	})

	t.Run("after-tax precedence", func(t *testing.T) {
		smaller := decimal.NewFromInt(100000)
		got, ok := (IncomeBasis{AfterTaxIncome: &smaller, GrossIncome: &gross, TaxRate: &rate}).Resolve()
		if !ok || !got.Equal(smaller) {
			t.Errorf("Expected after-tax 100000 to win, got %s (ok=%v)", got.String(), ok)
		}
	})

	t.Run("neither supplied", func(t *testing.T) {
		if _, ok := (IncomeBasis{}).Resolve(); ok {
			t.Error("Expected ok=false with no income basis")
		}
	})
}
