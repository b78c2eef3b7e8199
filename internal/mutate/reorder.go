package mutate

import (
	"strings"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

type ReorderResult struct {
	Order *model.PurchaseOrder
	Item  *model.InventoryItem
}

// Reorder creates a purchase order for an inventory item. Quantity arrives as
// a raw form field; garbage degrades to 0 and is rejected as a validation
// failure rather than producing a zero-line order. The expected date comes
// from the order priority (pure calendar-day offset from now).
func Reorder(db *store.DB, ndc, quantity string, priority model.Priority, now time.Time) (ReorderResult, error) {
	ndc = strings.TrimSpace(ndc)
	if db == nil || ndc == "" {
		return ReorderResult{}, ValidationError{Field: "ndc", Message: "required"}
	}
	item, ok := db.FindInventoryItem(ndc)
	if !ok {
		return ReorderResult{}, NotFoundError{Kind: "inventory item", ID: ndc}
	}

	qty := int(derive.Number(quantity))
	if qty <= 0 {
		return ReorderResult{}, ValidationError{Field: "quantity", Message: "must be a positive number"}
	}

	line := model.LineItem{
		Description: itemDescription(*item),
		Quantity:    qty,
		UnitPrice:   item.UnitCost,
	}
	line.Total = derive.LineTotal(line)

	po := model.PurchaseOrder{
		ID:           db.NextID(store.PrefixOrder, now),
		Vendor:       item.Vendor,
		Items:        []model.LineItem{line},
		Financials:   derive.PurchaseOrderTotals([]model.LineItem{line}),
		Status:       model.PurchaseOrderPending,
		Priority:     priority,
		OrderedAt:    now,
		ExpectedDate: derive.EstimatedDeliveryDate(now, priority).Format("2006-01-02"),
	}
	db.AddOrder(po)

	created, _ := db.FindOrder(po.ID)
	return ReorderResult{Order: created, Item: item}, nil
}

func itemDescription(item model.InventoryItem) string {
	parts := []string{item.Name}
	if item.Strength != "" {
		parts = append(parts, item.Strength)
	}
	if item.Form != "" {
		parts = append(parts, item.Form)
	}
	return strings.Join(parts, " ")
}

// ReceiveStock applies a received order quantity to the item. Used when a
// purchase order arrives; the derived stock status picks the change up on the
// next render.
func ReceiveStock(db *store.DB, ndc string, quantity int) (*model.InventoryItem, error) {
	ndc = strings.TrimSpace(ndc)
	if db == nil || ndc == "" {
		return nil, ValidationError{Field: "ndc", Message: "required"}
	}
	item, ok := db.FindInventoryItem(ndc)
	if !ok {
		return nil, NotFoundError{Kind: "inventory item", ID: ndc}
	}
	if quantity < 0 {
		return nil, ValidationError{Field: "quantity", Message: "must not be negative"}
	}
	item.Quantity += quantity
	return item, nil
}
