package mutate

import (
	"errors"
	"testing"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

func TestAssignDriver_CopiesSnapshotAndAdvancesScheduled(t *testing.T) {
	db := store.Seed()

	res, err := AssignDriver(db, "DEL001", "DRV002")
	if err != nil {
		t.Fatalf("AssignDriver error: %v", err)
	}
	if !res.Changed {
		t.Fatalf("expected changed")
	}
	del, _ := db.FindDelivery("DEL001")
	if del.DriverID != "DRV002" || del.DriverName != "Maria Lopez" {
		t.Fatalf("driver snapshot missing: %+v", del)
	}
	if del.Status != model.DeliveryPreparing {
		t.Fatalf("scheduled delivery should move to preparing, got %q", del.Status)
	}

	// The copy is denormalized: renaming the driver does not touch the delivery.
	drv, _ := db.FindDriver("DRV002")
	drv.Name = "M. Lopez-Rivera"
	del, _ = db.FindDelivery("DEL001")
	if del.DriverName != "Maria Lopez" {
		t.Fatalf("delivery should keep the assignment-time name, got %q", del.DriverName)
	}

	// Re-assigning the same driver is a no-op.
	res, err = AssignDriver(db, "DEL001", "DRV002")
	if err != nil {
		t.Fatalf("AssignDriver error: %v", err)
	}
	if res.Changed {
		t.Fatalf("same driver should be a no-op")
	}
}

func TestAssignDriver_DoesNotRegressStatus(t *testing.T) {
	db := store.Seed()
	// DEL002 is already out for delivery; swapping drivers must not reset it.
	res, err := AssignDriver(db, "DEL002", "DRV003")
	if err != nil {
		t.Fatalf("AssignDriver error: %v", err)
	}
	if !res.Changed {
		t.Fatalf("expected changed")
	}
	if res.Delivery.Status != model.DeliveryOutForDelivery {
		t.Fatalf("status regressed to %q", res.Delivery.Status)
	}
}

func TestAssignDriver_UnknownIDs(t *testing.T) {
	db := store.Seed()
	var nf NotFoundError
	if _, err := AssignDriver(db, "DEL999", "DRV001"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for delivery, got %v", err)
	}
	if _, err := AssignDriver(db, "DEL001", "DRV999"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for driver, got %v", err)
	}
}

func TestSetDeliveryStatus_AnyTransitionAllowed(t *testing.T) {
	db := store.Seed()
	// The edit form enforces no state machine: Delivered back to Scheduled is allowed.
	if _, err := SetDeliveryStatus(db, "DEL002", model.DeliveryDelivered); err != nil {
		t.Fatalf("SetDeliveryStatus error: %v", err)
	}
	res, err := SetDeliveryStatus(db, "DEL002", model.DeliveryScheduled)
	if err != nil {
		t.Fatalf("SetDeliveryStatus error: %v", err)
	}
	if !res.Changed || res.Delivery.Status != model.DeliveryScheduled {
		t.Fatalf("got %+v", res.Delivery)
	}
}

func TestDeliveries_BlankIDRejected(t *testing.T) {
	db := store.Seed()
	var ve ValidationError
	if _, err := AssignDriver(db, "", "DRV001"); !errors.As(err, &ve) {
		t.Fatalf("AssignDriver blank id: err = %v", err)
	}
	if _, err := SetDeliveryStatus(db, " ", model.DeliveryDelivered); !errors.As(err, &ve) {
		t.Fatalf("SetDeliveryStatus blank id: err = %v", err)
	}
}

func TestSetDeliveryStatus_SameStatusIsNoop(t *testing.T) {
	db := store.Seed()
	orig := db.Deliveries[0]
	res, err := SetDeliveryStatus(db, orig.ID, orig.Status)
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed {
		t.Fatal("setting the current status should not report a change")
	}
}
