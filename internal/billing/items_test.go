package billing_test

import (
	"testing"

	"github.com/sangkips/hospitality-pos/internal/billing"
)

func TestNormalizeItems(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantCount int
		wantTotal string
	}{
		{"array", `[{"menuItemId":"a1","name":"Dosa","price":120,"quantity":2}]`, 1, "240"},
		{"serialized string", `"[{\"menuItemId\":7,\"name\":\"Idli\",\"price\":\"40.50\",\"quantity\":\"3\"}]"`, 1, "121.5"},
		{"empty input", ``, 0, "0"},
		{"null", `null`, 0, "0"},
		{"malformed", `[{"name":`, 0, "0"},
		{"object instead of list", `{"name":"Vada"}`, 0, "0"},
		{"string without list", `"hello"`, 0, "0"},
		{"zero quantity dropped", `[{"name":"Tea","price":20,"quantity":0},{"name":"Coffee","price":30,"quantity":1}]`, 1, "30"},
		{"negative price dropped", `[{"name":"Refund","price":-20,"quantity":1}]`, 0, "0"},
		{"fractional quantity dropped", `[{"name":"Lassi","price":"100","quantity":2.7},{"name":"Chai","price":50,"quantity":1}]`, 1, "50"},
		{"fractional quantity string dropped", `[{"name":"Lassi","price":"100","quantity":"2.5"}]`, 0, "0"},
		{"huge quantity dropped", `[{"name":"Lassi","price":"100","quantity":1e19},{"name":"Chai","price":50,"quantity":1}]`, 1, "50"},
		{"integral float quantity kept", `[{"name":"Chai","price":50,"quantity":2.0}]`, 1, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := billing.NormalizeItems([]byte(tt.raw))
			if items == nil {
				t.Fatal("items must never be nil")
			}
			if len(items) != tt.wantCount {
				t.Fatalf("count: got %d, want %d", len(items), tt.wantCount)
			}
			total := dec("0")
			for _, it := range items {
				total = total.Add(it.LineTotal())
			}
			expectAmount(t, "total", total, tt.wantTotal)
		})
	}
}

func TestNormalizeItems_KeepsOptionalFields(t *testing.T) {
	items := billing.NormalizeItemString(`[{"menuItemId":"m9","name":"Pizza","price":450,"quantity":1,"selectedPortion":"Large","note":"no olives","currentCalculatedCost":150}]`)
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	it := items[0]
	if it.MenuItemID != "m9" || it.SelectedPortion != "Large" || it.Note != "no olives" {
		t.Errorf("got %+v", it)
	}
	if it.CalculatedCost == nil || !it.CalculatedCost.Equal(dec("150")) {
		t.Errorf("cost: got %v", it.CalculatedCost)
	}

	round := billing.NormalizeItemString(billing.EncodeItems(items))
	if len(round) != 1 || round[0].Name != "Pizza" {
		t.Errorf("encoded items did not normalize back: %+v", round)
	}
}
