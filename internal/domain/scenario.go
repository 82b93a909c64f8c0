package domain

import (
	"github.com/shopspring/decimal"
)

// Canonical scenario identifiers. Every plan's scenario set contains
// exactly these four, in this order.
const (
	ScenarioNoUse           = "no_use"
	ScenarioMinorUse        = "minor_use"
	ScenarioCatInNetwork    = "cat_in_network"
	ScenarioCatOONEmergency = "cat_oon_emergency"
)

// CanonicalScenarioNames lists the four scenario identifiers in display order.
var CanonicalScenarioNames = []string{
	ScenarioNoUse,
	ScenarioMinorUse,
	ScenarioCatInNetwork,
	ScenarioCatOONEmergency,
}

// DefaultProbabilities holds the reference probability for each canonical
// scenario. These are documentation only: the aggregation is equal-weighted
// and never consults them.
var DefaultProbabilities = map[string]decimal.Decimal{
	ScenarioNoUse:           decimal.NewFromFloat(0.70),
	ScenarioMinorUse:        decimal.NewFromFloat(0.25),
	ScenarioCatInNetwork:    decimal.NewFromFloat(0.03),
	ScenarioCatOONEmergency: decimal.NewFromFloat(0.02),
}

// Scenario represents one possible healthcare outcome for a year.
//
// Scenarios are built fresh per plan because the out-of-pocket figures are
// plan-specific; they are never shared or mutated across plans. The
// Probability field is for reference only.
type Scenario struct {
	Name        string          `yaml:"name" json:"name"`
	Probability decimal.Decimal `yaml:"probability" json:"probability"`
	MedicalOOP  decimal.Decimal `yaml:"medical_oop" json:"medical_oop"`
	ExtraOON    decimal.Decimal `yaml:"extra_oon" json:"extra_oon"`
}

// TotalOOP returns the scenario's full out-of-pocket exposure: the medical
// amount plus any extra out-of-network exposure.
func (s *Scenario) TotalOOP() decimal.Decimal {
	return s.MedicalOOP.Add(s.ExtraOON)
}
