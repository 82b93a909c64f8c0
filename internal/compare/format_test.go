package compare

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/domain"
)

func sampleComparisonSet() *ComparisonSet {
	engine := NewEngine()
	plans := []domain.MedicalPlan{
		catalogPlan("Kaiser Gold HMO", 18456, 18400),
		catalogPlan("Blue Shield Platinum PPO", 36936, 10000),
	}
	return engine.Compare(plans, householdInput())
}

func TestTableFormatter(t *testing.T) {
	tf := &TableFormatter{}
	out := tf.Format(sampleComparisonSet())

	for _, want := range []string{
		"HEALTH PLAN COMPARISON",
		"Kaiser Gold HMO",
		"Blue Shield Platinum PPO",
		"Disposable Income: $88,000",
		"GM Wealth",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Table output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "Scenario Breakdown") {
		t.Error("Non-verbose table should not include scenario breakdowns")
	}
}

func TestTableFormatter_Verbose(t *testing.T) {
	tf := &TableFormatter{Verbose: true}
	out := tf.Format(sampleComparisonSet())

	if !strings.Contains(out, "Scenario Breakdown") {
		t.Error("Verbose table should include scenario breakdowns")
	}
	for _, name := range domain.CanonicalScenarioNames {
		if !strings.Contains(out, name) {
			t.Errorf("Verbose table missing scenario %s", name)
		}
	}
}

func TestCSVFormatter(t *testing.T) {
	cf := &CSVFormatter{}
	out, err := cf.Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("CSV format failed: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	// 7 fixed columns plus wealth+ratio per scenario
	wantCols := 7 + 2*len(domain.CanonicalScenarioNames)
	if len(records[0]) != wantCols {
		t.Errorf("Expected %d columns, got %d", wantCols, len(records[0]))
	}

	if records[1][0] != "1" || records[2][0] != "2" {
		t.Errorf("Expected rank column 1, 2; got %s, %s", records[1][0], records[2][0])
	}
}

func TestJSONFormatter(t *testing.T) {
	jf := &JSONFormatter{Pretty: true}
	out, err := jf.Format(sampleComparisonSet())
	if err != nil {
		t.Fatalf("JSON format failed: %v", err)
	}

	var decoded ComparisonSet
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(decoded.Results) != 2 {
		t.Fatalf("Expected 2 results after round trip, got %d", len(decoded.Results))
	}
	if decoded.Results[0].PlanName == "" {
		t.Error("Plan name lost in round trip")
	}
}

func TestJSONFormatter_RuinSerializesAsNull(t *testing.T) {
	engine := NewEngine()
	cs := engine.Compare([]domain.MedicalPlan{catalogPlan("Ruinous", 90000, 18400)}, householdInput())

	jf := &JSONFormatter{}
	out, err := jf.Format(cs)
	if err != nil {
		t.Fatalf("JSON format failed with a ruined plan: %v", err)
	}

	if !strings.Contains(out, `"expectedLogWealth":null`) {
		t.Errorf("Expected ruin log wealth to serialize as null:\n%s", out)
	}

	var decoded ComparisonSet
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("Round trip failed: %v", err)
	}
	if !decoded.Results[0].ExpectedLogWealth.IsRuin() {
		t.Error("Expected null to decode back to the ruin sentinel")
	}
}

func TestTableFormatterTruncate(t *testing.T) {
	tf := &TableFormatter{}

	if got := tf.truncate("Kaiser Gold HMO", 30); got != "Kaiser Gold HMO" {
		t.Errorf("Short names must pass through, got %q", got)
	}
	if got := tf.truncate("Blue Shield Trio Platinum HMO Extra", 30); got != "Blue Shield Trio Platinum H..." {
		t.Errorf("Expected ellipsis truncation, got %q", got)
	}

	// Rune-counted: multi-byte names must never be cut mid-character.
	name := "Krankenkasse Münchener Rückversicherung Gold"
	got := tf.truncate(name, 20)
	if len([]rune(got)) != 20 {
		t.Errorf("Expected 20 runes, got %d (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
	if got != string([]rune(name)[:17])+"..." {
		t.Errorf("Truncation landed mid-rune: %q", got)
	}
}

func TestTableFormatterFormatDecimal(t *testing.T) {
	tf := &TableFormatter{}

	cases := map[string]decimal.Decimal{
		"0":         decimal.Zero,
		"950":       decimal.NewFromInt(950),
		"88,000":    decimal.NewFromInt(88000),
		"1,234,567": decimal.NewFromInt(1234567),
		"-1,500":    decimal.NewFromInt(-1500),
	}

	for want, d := range cases {
		if got := tf.formatDecimal(d); got != want {
			t.Errorf("formatDecimal(%s): expected %s, got %s", d.String(), want, got)
		}
	}
}
