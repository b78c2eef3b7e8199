package mutate

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

func TestReorder_UrgentScenario(t *testing.T) {
	db := store.Seed()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	// Metformin: 15 on hand, min 50, unit cost 0.08.
	res, err := Reorder(db, "00093-7214-01", "200", model.PriorityUrgent, now)
	if err != nil {
		t.Fatalf("Reorder error: %v", err)
	}
	po := res.Order
	if po == nil {
		t.Fatalf("no order created")
	}
	if po.ExpectedDate != "2024-01-03" {
		t.Fatalf("urgent ETA = %q, want 2024-01-03", po.ExpectedDate)
	}
	if len(po.Items) != 1 {
		t.Fatalf("line items = %d", len(po.Items))
	}
	line := po.Items[0]
	if line.Quantity != 200 || line.UnitPrice != 0.08 {
		t.Fatalf("line = %+v", line)
	}
	if math.Abs(line.Total-200*0.08) > 1e-9 {
		t.Fatalf("line total = %v", line.Total)
	}
	if math.Abs(po.Financials.Total-po.Financials.Subtotal*1.08) > 1e-6 {
		t.Fatalf("tax invariant violated: %+v", po.Financials)
	}
	if po.Vendor != "Cardinal Health" {
		t.Fatalf("vendor = %q", po.Vendor)
	}
	if po.Status != model.PurchaseOrderPending {
		t.Fatalf("status = %q", po.Status)
	}
	if _, ok := db.FindOrder(po.ID); !ok {
		t.Fatalf("order not appended to canonical list")
	}
}

func TestReorder_GarbageQuantityRejected(t *testing.T) {
	db := store.Seed()
	now := time.Now()

	var ve ValidationError
	for _, q := range []string{"", "abc", "0", "-5"} {
		if _, err := Reorder(db, "00093-7214-01", q, model.PriorityNormal, now); !errors.As(err, &ve) {
			t.Fatalf("quantity %q: expected ValidationError, got %v", q, err)
		}
	}
	// Nothing appended on failure.
	if len(db.Orders) != len(store.Seed().Orders) {
		t.Fatalf("failed reorder appended an order")
	}
}

func TestReorder_UnknownNDC(t *testing.T) {
	db := store.Seed()
	var nf NotFoundError
	if _, err := Reorder(db, "99999-9999-99", "10", model.PriorityNormal, time.Now()); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReceiveStock(t *testing.T) {
	db := store.Seed()
	item, err := ReceiveStock(db, "00781-2613-01", 120)
	if err != nil {
		t.Fatalf("ReceiveStock error: %v", err)
	}
	if item.Quantity != 120 {
		t.Fatalf("quantity = %d", item.Quantity)
	}
	if _, err := ReceiveStock(db, "00781-2613-01", -1); err == nil {
		t.Fatalf("negative receive should fail")
	}
}

func TestReceiveStock_BlankNDCRejected(t *testing.T) {
	db := store.Seed()
	var ve ValidationError
	if _, err := ReceiveStock(db, "", 10); !errors.As(err, &ve) {
		t.Fatalf("blank ndc: err = %v", err)
	}
	if _, err := Reorder(db, "", "10", model.PriorityNormal, time.Now()); !errors.As(err, &ve) {
		t.Fatalf("Reorder blank ndc: err = %v", err)
	}
}
