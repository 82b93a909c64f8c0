package compare

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/rgehrsitz/planrank/internal/domain"
)

// CSVFormatter formats comparison results as CSV.
type CSVFormatter struct{}

// Format generates CSV output for a comparison set. Scenario columns follow
// the canonical scenario order of the first result.
func (cf *CSVFormatter) Format(cs *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	scenarioNames := domain.CanonicalScenarioNames
	if len(cs.Results) > 0 && len(cs.Results[0].ScenarioOrder) > 0 {
		scenarioNames = cs.Results[0].ScenarioOrder
	}

	header := []string{
		"Rank",
		"Plan",
		"Annual Premium",
		"Total Annual Premium",
		"In-Network OOP Max",
		"Geometric Mean Wealth",
		"Expected Log Wealth",
	}
	for _, name := range scenarioNames {
		header = append(header, name+" wealth", name+" ratio")
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for i, r := range cs.Results {
		row := []string{
			fmt.Sprintf("%d", i+1),
			r.PlanName,
			r.AnnualPremium.StringFixed(2),
			r.TotalAnnualPremium.StringFixed(2),
			r.InNetworkOOPMax.StringFixed(2),
			r.GeometricMean.StringFixed(2),
		}
		if r.ExpectedLogWealth.IsRuin() {
			row = append(row, "-inf")
		} else {
			row = append(row, fmt.Sprintf("%.6f", float64(r.ExpectedLogWealth)))
		}
		for _, name := range scenarioNames {
			outcome, ok := r.ScenarioWealth[name]
			if !ok {
				row = append(row, "", "")
				continue
			}
			row = append(row, outcome.Wealth.StringFixed(2), outcome.Ratio.StringFixed(4))
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
