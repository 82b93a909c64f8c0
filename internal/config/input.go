package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/planrank/internal/compare"
	"github.com/rgehrsitz/planrank/internal/domain"
)

// Configuration is the full input to a comparison run: the household
// income parameters, the medical plan catalog, optional add-ons, and an
// optional override scenario list.
type Configuration struct {
	Household Household            `yaml:"household" json:"household"`
	Plans     []domain.MedicalPlan `yaml:"plans" json:"plans"`
	Addons    domain.Addons        `yaml:"addons,omitempty" json:"addons,omitempty"`
	Scenarios []domain.Scenario    `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// Household carries the income basis and fixed non-health baseline spend.
type Household struct {
	Income        domain.IncomeBasis `yaml:"income" json:"income"`
	BaselineSpend decimal.Decimal    `yaml:"baseline_spend" json:"baseline_spend"`
}

// CompareInput converts the configuration's household parameters into the
// comparator's input form.
func (c *Configuration) CompareInput() compare.CompareInput {
	return compare.CompareInput{
		Income:        c.Household.Income,
		BaselineSpend: c.Household.BaselineSpend,
		Addons:        c.Addons,
		Scenarios:     c.Scenarios,
	}
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates a configuration from raw YAML bytes.
func (ip *InputParser) Load(data []byte) (*Configuration, error) {
	var config Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Malformed plan
// records fail here, at construction time, so the calculation engine never
// sees them.
func (ip *InputParser) ValidateConfiguration(config *Configuration) error {
	if err := ip.validateHousehold(&config.Household); err != nil {
		return fmt.Errorf("household validation failed: %w", err)
	}

	if len(config.Plans) == 0 {
		return fmt.Errorf("no plans provided")
	}

	seen := make(map[string]bool, len(config.Plans))
	for i := range config.Plans {
		plan := &config.Plans[i]
		if err := plan.Validate(); err != nil {
			return fmt.Errorf("plan %d (%s) validation failed: %w", i, plan.Name, err)
		}
		if seen[plan.Name] {
			return fmt.Errorf("duplicate plan name %q", plan.Name)
		}
		seen[plan.Name] = true
	}

	if config.Addons.Dental != nil {
		if err := config.Addons.Dental.Validate(); err != nil {
			return fmt.Errorf("dental add-on validation failed: %w", err)
		}
	}
	if config.Addons.Vision != nil {
		if err := config.Addons.Vision.Validate(); err != nil {
			return fmt.Errorf("vision add-on validation failed: %w", err)
		}
	}

	for i := range config.Scenarios {
		if err := ip.validateScenario(i, &config.Scenarios[i]); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
	}

	return nil
}

// validateHousehold validates the income basis and baseline spend.
func (ip *InputParser) validateHousehold(h *Household) error {
	if h.Income.AfterTaxIncome == nil && h.Income.GrossIncome == nil {
		return fmt.Errorf("either after_tax_income or gross_income is required")
	}
	if h.Income.AfterTaxIncome != nil && h.Income.AfterTaxIncome.IsNegative() {
		return fmt.Errorf("after-tax income cannot be negative")
	}
	if h.Income.GrossIncome != nil && h.Income.GrossIncome.IsNegative() {
		return fmt.Errorf("gross income cannot be negative")
	}
	if h.Income.TaxRate != nil {
		if h.Income.TaxRate.IsNegative() || h.Income.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("tax rate must be between 0 and 1")
		}
	}
	if h.BaselineSpend.IsNegative() {
		return fmt.Errorf("baseline spend cannot be negative")
	}
	return nil
}

// validateScenario validates a single override scenario.
func (ip *InputParser) validateScenario(index int, s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.Probability.IsNegative() || s.Probability.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("probability must be between 0 and 1")
	}
	if s.MedicalOOP.IsNegative() {
		return fmt.Errorf("medical OOP cannot be negative")
	}
	if s.ExtraOON.IsNegative() {
		return fmt.Errorf("extra out-of-network exposure cannot be negative")
	}
	return nil
}
