package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NetworkType identifies a health plan's network category.
//
// The category determines how out-of-network care is handled:
//   - HMO: referrals required, OON coverage for emergencies only
//   - PPO: no referrals, partial OON coverage (limited on exchange plans)
//   - EPO: no referrals, no OON coverage except emergencies
//
// Emergency OON protection is equal across all three per the No
// Surprises Act; the difference is post-stabilization care.
type NetworkType string

const (
	NetworkHMO NetworkType = "hmo"
	NetworkPPO NetworkType = "ppo"
	NetworkEPO NetworkType = "epo"
)

// Valid reports whether the network type is one of the known categories.
func (nt NetworkType) Valid() bool {
	switch nt {
	case NetworkHMO, NetworkPPO, NetworkEPO:
		return true
	}
	return false
}

// MedicalPlan represents a medical insurance plan with its premium and
// cost-sharing structure. Plans are immutable value records: they are
// built once by the catalog (config file or built-in data) and never
// mutated during a comparison run.
type MedicalPlan struct {
	Name             string          `yaml:"name" json:"name"`
	AnnualPremium    decimal.Decimal `yaml:"annual_premium" json:"annual_premium"`
	InNetworkOOPMax  decimal.Decimal `yaml:"in_network_oop_max" json:"in_network_oop_max"`
	NetworkType      NetworkType     `yaml:"network_type" json:"network_type"`
	Deductible       decimal.Decimal `yaml:"deductible" json:"deductible"`
	ExpectedMinorOOP decimal.Decimal `yaml:"expected_minor_oop" json:"expected_minor_oop"`

	// Out-of-network emergency handling. Emergencies are billed at
	// in-network cost sharing per the No Surprises Act; the flag exists so
	// the conservative non-parity case can still be modeled.
	OONEmergencyAsInNetwork bool `yaml:"oon_emergency_as_in_network" json:"oon_emergency_as_in_network"`

	// Post-stabilization care after an out-of-network emergency. Exposure
	// applies only when the coverage flag is false.
	PostStabilizationCovered  bool            `yaml:"post_stabilization_covered" json:"post_stabilization_covered"`
	PostStabilizationExposure decimal.Decimal `yaml:"post_stabilization_exposure" json:"post_stabilization_exposure"`

	// Partial out-of-network coverage terms (PPO plans).
	OONDeductible  decimal.Decimal `yaml:"oon_deductible" json:"oon_deductible"`
	OONOOPMax      decimal.Decimal `yaml:"oon_oop_max" json:"oon_oop_max"`
	OONCoinsurance decimal.Decimal `yaml:"oon_coinsurance" json:"oon_coinsurance"`

	// Ground transport has no federal balance-billing protection, so this
	// exposure always lands in the out-of-network catastrophe scenario.
	GroundTransportExposure decimal.Decimal `yaml:"ground_transport_exposure" json:"ground_transport_exposure"`
}

// Validate checks the plan for malformed fields. Validation happens at
// construction time (config load); the calculation engine assumes
// well-formed plans.
func (mp *MedicalPlan) Validate() error {
	if mp.Name == "" {
		return fmt.Errorf("plan name is required")
	}
	if mp.AnnualPremium.IsNegative() {
		return fmt.Errorf("annual premium cannot be negative")
	}
	if mp.InNetworkOOPMax.IsNegative() {
		return fmt.Errorf("in-network OOP max cannot be negative")
	}
	if !mp.NetworkType.Valid() {
		return fmt.Errorf("unknown network type %q (want hmo, ppo, or epo)", mp.NetworkType)
	}
	if mp.Deductible.IsNegative() {
		return fmt.Errorf("deductible cannot be negative")
	}
	if mp.ExpectedMinorOOP.IsNegative() {
		return fmt.Errorf("expected minor OOP cannot be negative")
	}
	if mp.PostStabilizationExposure.IsNegative() {
		return fmt.Errorf("post-stabilization exposure cannot be negative")
	}
	if mp.OONDeductible.IsNegative() || mp.OONOOPMax.IsNegative() {
		return fmt.Errorf("out-of-network deductible and OOP max cannot be negative")
	}
	if mp.OONCoinsurance.IsNegative() || mp.OONCoinsurance.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("out-of-network coinsurance must be between 0 and 1")
	}
	if mp.GroundTransportExposure.IsNegative() {
		return fmt.Errorf("ground transport exposure cannot be negative")
	}
	return nil
}

// AddonPlan represents a dental or vision add-on. Add-ons are optional
// participants in every plan's total premium and out-of-pocket; a nil
// *AddonPlan contributes exactly zero to both.
type AddonPlan struct {
	Name          string          `yaml:"name" json:"name"`
	AnnualPremium decimal.Decimal `yaml:"annual_premium" json:"annual_premium"`
	ExpectedOOP   decimal.Decimal `yaml:"expected_oop" json:"expected_oop"`
}

// Validate checks the add-on for malformed fields.
func (ap *AddonPlan) Validate() error {
	if ap.Name == "" {
		return fmt.Errorf("add-on name is required")
	}
	if ap.AnnualPremium.IsNegative() {
		return fmt.Errorf("add-on annual premium cannot be negative")
	}
	if ap.ExpectedOOP.IsNegative() {
		return fmt.Errorf("add-on expected OOP cannot be negative")
	}
	return nil
}

// Addons groups the optional dental and vision add-ons shared by every
// plan in a comparison. Either pointer may be nil.
type Addons struct {
	Dental *AddonPlan `yaml:"dental,omitempty" json:"dental,omitempty"`
	Vision *AddonPlan `yaml:"vision,omitempty" json:"vision,omitempty"`
}

// PremiumTotal returns the combined annual premium of the present add-ons.
func (a Addons) PremiumTotal() decimal.Decimal {
	total := decimal.Zero
	if a.Dental != nil {
		total = total.Add(a.Dental.AnnualPremium)
	}
	if a.Vision != nil {
		total = total.Add(a.Vision.AnnualPremium)
	}
	return total
}

// ExpectedOOPTotal returns the combined expected out-of-pocket of the
// present add-ons. This amount is added to every scenario's total OOP.
func (a Addons) ExpectedOOPTotal() decimal.Decimal {
	total := decimal.Zero
	if a.Dental != nil {
		total = total.Add(a.Dental.ExpectedOOP)
	}
	if a.Vision != nil {
		total = total.Add(a.Vision.ExpectedOOP)
	}
	return total
}

// TotalAnnualPremium returns the medical premium plus any add-on premiums.
func TotalAnnualPremium(medical *MedicalPlan, addons Addons) decimal.Decimal {
	return medical.AnnualPremium.Add(addons.PremiumTotal())
}
