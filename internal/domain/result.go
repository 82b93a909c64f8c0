package domain

import (
	"math"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// LogWealth is an expected log-wealth value. Negative infinity marks ruin
// (some scenario consumed all disposable income). JSON cannot represent
// infinities, so the ruin value serializes as null.
type LogWealth float64

// RuinLogWealth is the expected log-wealth of a plan with at least one
// zero-ratio scenario.
func RuinLogWealth() LogWealth {
	return LogWealth(math.Inf(-1))
}

// IsRuin reports whether the value is the negative-infinity ruin sentinel.
func (lw LogWealth) IsRuin() bool {
	return math.IsInf(float64(lw), -1)
}

// MarshalJSON implements json.Marshaler.
func (lw LogWealth) MarshalJSON() ([]byte, error) {
	if lw.IsRuin() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(lw))
}

// UnmarshalJSON implements json.Unmarshaler. A null value decodes back to
// the ruin sentinel.
func (lw *LogWealth) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*lw = RuinLogWealth()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*lw = LogWealth(f)
	return nil
}

// ScenarioOutcome holds the wealth retained in one scenario, both as a
// currency amount and as a fraction of disposable income in [0, 1].
type ScenarioOutcome struct {
	Wealth decimal.Decimal `json:"wealth"`
	Ratio  decimal.Decimal `json:"ratio"`
}

// PlanComparisonResult is the per-plan output of a comparison run. Results
// are produced once per comparator invocation and read-only thereafter.
type PlanComparisonResult struct {
	PlanName           string          `json:"planName"`
	AnnualPremium      decimal.Decimal `json:"annualPremium"`
	TotalAnnualPremium decimal.Decimal `json:"totalAnnualPremium"`
	InNetworkOOPMax    decimal.Decimal `json:"inNetworkOopMax"`
	ExpectedLogWealth  LogWealth       `json:"expectedLogWealth"`
	GeometricMean      decimal.Decimal `json:"geometricMean"`

	// ScenarioWealth maps scenario name to its outcome; ScenarioOrder
	// preserves the evaluation order for rendering.
	ScenarioWealth map[string]ScenarioOutcome `json:"scenarioWealth"`
	ScenarioOrder  []string                   `json:"scenarioOrder"`
}
