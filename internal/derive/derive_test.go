package derive

import (
	"math"
	"testing"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
)

func TestStockStatus_Boundaries(t *testing.T) {
	const min = 50

	if got := StockStatus(0, min); got != model.StockOut {
		t.Fatalf("quantity=0: got %q", got)
	}
	// Every quantity in (0, min] is low stock.
	for _, q := range []int{1, 25, 49, 50} {
		if got := StockStatus(q, min); got != model.StockLow {
			t.Fatalf("quantity=%d: got %q, want low stock", q, got)
		}
	}
	for _, q := range []int{51, 100, 10000} {
		if got := StockStatus(q, min); got != model.StockInStock {
			t.Fatalf("quantity=%d: got %q, want in stock", q, got)
		}
	}
}

func TestStockStatus_LowStockScenario(t *testing.T) {
	// 15 on hand against a minimum of 50.
	if got := StockStatus(15, 50); got != model.StockLow {
		t.Fatalf("got %q, want %q", got, model.StockLow)
	}
}

func TestNumber_GarbageIsZero(t *testing.T) {
	for _, s := range []string{"", "  ", "abc", "12x", "NaN", "Inf", "-Inf"} {
		if got := Number(s); got != 0 {
			t.Fatalf("Number(%q) = %v, want 0", s, got)
		}
	}
	if got := Number(" 30 "); got != 30 {
		t.Fatalf("Number(\" 30 \") = %v", got)
	}
	if got := Number("2.5"); got != 2.5 {
		t.Fatalf("Number(\"2.5\") = %v", got)
	}
}

func TestOrderTotal_Linearity(t *testing.T) {
	if got := OrderTotal("200", 1.25); got != 250 {
		t.Fatalf("got %v, want 250", got)
	}
	if got := OrderTotal("", 9.99); got != 0 {
		t.Fatalf("empty quantity: got %v, want 0", got)
	}
	if got := OrderTotal("3", 0.333); got != 1.0 {
		t.Fatalf("rounding: got %v, want 1.0", got)
	}
}

func TestEstimatedDeliveryDate(t *testing.T) {
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		priority model.Priority
		want     string
	}{
		{model.PriorityUrgent, "2024-01-03"},
		{model.PriorityHigh, "2024-01-05"},
		{model.PriorityNormal, "2024-01-08"},
		{model.PriorityLow, "2024-01-15"},
		{model.Priority("unknown"), "2024-01-08"}, // falls back to normal
	}
	for _, c := range cases {
		got := EstimatedDeliveryDate(today, c.priority).Format("2006-01-02")
		if got != c.want {
			t.Fatalf("priority=%s: got %s, want %s", c.priority, got, c.want)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	if got := CompletionPercent(nil); got != 0 {
		t.Fatalf("empty: got %d", got)
	}
	fields := []any{"John", "", "Lisinopril", true, false, "  "}
	// 3 of 6 filled.
	if got := CompletionPercent(fields); got != 50 {
		t.Fatalf("got %d, want 50", got)
	}
	if got := CompletionPercent([]any{"a", "b", "c"}); got != 100 {
		t.Fatalf("got %d, want 100", got)
	}
	// Rounds, not truncates: 1/3 => 33, 2/3 => 67.
	if got := CompletionPercent([]any{"a", "", ""}); got != 33 {
		t.Fatalf("got %d, want 33", got)
	}
	if got := CompletionPercent([]any{"a", "b", ""}); got != 67 {
		t.Fatalf("got %d, want 67", got)
	}
}

func TestPurchaseOrderTotals_TaxInvariant(t *testing.T) {
	items := []model.LineItem{
		{Description: "Lisinopril 10mg", Quantity: 200, UnitPrice: 0.85},
		{Description: "Metformin 500mg", Quantity: 120, UnitPrice: 1.1},
		{Description: "Amoxicillin 250mg", Quantity: 60, UnitPrice: 2.4},
	}
	fin := PurchaseOrderTotals(items)

	wantSubtotal := 200*0.85 + 120*1.1 + 60*2.4
	if math.Abs(fin.Subtotal-wantSubtotal) > 1e-6 {
		t.Fatalf("subtotal: got %v, want %v", fin.Subtotal, wantSubtotal)
	}
	if math.Abs(fin.Total-fin.Subtotal*1.08) > 1e-6 {
		t.Fatalf("total %v != subtotal*1.08 (%v)", fin.Total, fin.Subtotal*1.08)
	}
	if math.Abs(fin.Subtotal+fin.Tax-fin.Total) > 1e-6 {
		t.Fatalf("subtotal+tax != total")
	}
}

func TestPurchaseOrderTotals_Empty(t *testing.T) {
	fin := PurchaseOrderTotals(nil)
	if fin.Subtotal != 0 || fin.Tax != 0 || fin.Total != 0 {
		t.Fatalf("empty order should be all zero: %+v", fin)
	}
}

func TestStatusColor(t *testing.T) {
	if StatusColor(model.StockOut) != "red" {
		t.Fatalf("out of stock should be red")
	}
	if StatusColor(model.StockLow) != "yellow" {
		t.Fatalf("low stock should be yellow")
	}
	if StatusColor(model.StockInStock) != "green" {
		t.Fatalf("in stock should be green")
	}
}
