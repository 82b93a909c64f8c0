package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table.
type TableFormatter struct {
	// Verbose adds a per-scenario wealth breakdown for each plan.
	Verbose bool
}

// Format generates a formatted ranking table for a comparison set.
func (tf *TableFormatter) Format(cs *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("HEALTH PLAN COMPARISON (geometric-mean ranking)\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Disposable Income: $%s\n", tf.formatDecimal(cs.DisposableIncome)))
	sb.WriteString("\n")

	nameWidth := 30
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-4s %-*s %*s %*s %*s %*s\n",
		"Rank",
		nameWidth, "Plan",
		numWidth, "Premium",
		numWidth, "OOP Max",
		numWidth, "GM Wealth",
		numWidth, "E[log W]"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for i, r := range cs.Results {
		logStr := "-inf"
		if !r.ExpectedLogWealth.IsRuin() {
			logStr = fmt.Sprintf("%.4f", float64(r.ExpectedLogWealth))
		}

		sb.WriteString(fmt.Sprintf("%-4d %-*s %*s %*s %*s %*s\n",
			i+1,
			nameWidth, tf.truncate(r.PlanName, nameWidth),
			numWidth, "$"+tf.formatDecimal(r.TotalAnnualPremium),
			numWidth, "$"+tf.formatDecimal(r.InNetworkOOPMax),
			numWidth, "$"+tf.formatDecimal(r.GeometricMean),
			numWidth, logStr))
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if tf.Verbose {
		for _, r := range cs.Results {
			sb.WriteString(fmt.Sprintf("\n%s - Scenario Breakdown\n", r.PlanName))
			sb.WriteString(strings.Repeat("-", 60) + "\n")
			for _, name := range r.ScenarioOrder {
				outcome := r.ScenarioWealth[name]
				sb.WriteString(fmt.Sprintf("  %-22s $%12s  (%s%% retained)\n",
					name,
					tf.formatDecimal(outcome.Wealth),
					outcome.Ratio.Mul(decimal.NewFromInt(100)).StringFixed(1)))
			}
		}
		sb.WriteString("\n")
	}

	if len(cs.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range cs.Recommendations {
			sb.WriteString(fmt.Sprintf("* %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatDecimal renders a currency amount with thousands separators.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// truncate shortens a string to fit a column width, counting runes so
// multi-byte plan names are never cut mid-character.
func (tf *TableFormatter) truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
