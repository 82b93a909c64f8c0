package domain

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
)

func TestLogWealthJSON(t *testing.T) {
	data, err := json.Marshal(LogWealth(-0.3099))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "-0.3099" {
		t.Errorf("Expected -0.3099, got %s", data)
	}

	// JSON has no infinities; ruin serializes as null and decodes back.
	data, err = json.Marshal(RuinLogWealth())
	if err != nil {
		t.Fatalf("Marshal of ruin value failed: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Expected null for ruin, got %s", data)
	}

	var lw LogWealth
	if err := json.Unmarshal([]byte("null"), &lw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !lw.IsRuin() {
		t.Errorf("Expected null to decode to ruin, got %v", float64(lw))
	}
}

func TestLogWealthIsRuin(t *testing.T) {
	if !RuinLogWealth().IsRuin() {
		t.Error("Expected ruin sentinel to report ruin")
	}
	if LogWealth(-100).IsRuin() {
		t.Error("Finite value must not report ruin")
	}
	if LogWealth(math.Inf(1)).IsRuin() {
		t.Error("Positive infinity must not report ruin")
	}
}
