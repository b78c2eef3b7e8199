package derive

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
)

// Derivation rules are pure functions over raw entity fields. They never
// store state and never return NaN: malformed numeric input degrades to 0.

// StockStatus classifies an item purely by quantity vs minimum stock.
// Expiry is tracked separately (InventoryItem.ExpiringSoon); callers that
// want an expiry badge must render it independently.
func StockStatus(quantity, minStock int) model.StockStatus {
	switch {
	case quantity <= 0:
		return model.StockOut
	case quantity <= minStock:
		return model.StockLow
	default:
		return model.StockInStock
	}
}

// StatusColor maps a stock status to a semantic color name used by the TUI
// and the CLI output.
func StatusColor(s model.StockStatus) string {
	switch s {
	case model.StockOut:
		return "red"
	case model.StockLow:
		return "yellow"
	case model.StockExpiring:
		return "orange"
	default:
		return "green"
	}
}

// Number parses a lenient numeric field. Empty or garbage input is 0.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Round2 rounds to 2 decimals for display. Not for ledger arithmetic.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// OrderTotal is quantity × unit cost, rounded for display.
// Quantity arrives as a raw form field and may be empty or unparsable.
func OrderTotal(quantity string, unitCost float64) float64 {
	return Round2(Number(quantity) * unitCost)
}

// EstimatedDeliveryDate adds pure calendar days based on priority.
// No business-day awareness, no timezone handling.
func EstimatedDeliveryDate(today time.Time, priority model.Priority) time.Time {
	days := 7
	switch priority {
	case model.PriorityUrgent:
		days = 2
	case model.PriorityHigh:
		days = 4
	case model.PriorityNormal:
		days = 7
	case model.PriorityLow:
		days = 14
	}
	return today.AddDate(0, 0, days)
}

// CompletionPercent reports how much of a form is filled in.
// A field counts when it is a non-empty trimmed string or the bool true.
func CompletionPercent(fields []any) int {
	if len(fields) == 0 {
		return 0
	}
	filled := 0
	for _, f := range fields {
		switch v := f.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				filled++
			}
		case bool:
			if v {
				filled++
			}
		}
	}
	return int(math.Round(100 * float64(filled) / float64(len(fields))))
}

// PurchaseOrderTaxRate is fixed; there is no jurisdiction logic.
const PurchaseOrderTaxRate = 0.08

// PurchaseOrderTotals computes subtotal, tax and total for a set of line items.
func PurchaseOrderTotals(items []model.LineItem) model.Financials {
	subtotal := 0.0
	for _, it := range items {
		subtotal += float64(it.Quantity) * it.UnitPrice
	}
	tax := subtotal * PurchaseOrderTaxRate
	return model.Financials{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// LineTotal fills the per-line computed total.
func LineTotal(it model.LineItem) float64 {
	return Round2(float64(it.Quantity) * it.UnitPrice)
}
