package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
)

func TestSeed_Lookups(t *testing.T) {
	db := Seed()

	if _, ok := db.FindPrescription("RX240101"); !ok {
		t.Fatalf("seed prescription missing")
	}
	if _, ok := db.FindPrescription("RX999999"); ok {
		t.Fatalf("unexpected prescription")
	}
	if _, ok := db.FindInventoryItem("00093-7214-01"); !ok {
		t.Fatalf("seed inventory item missing")
	}
	if _, ok := db.FindUserByEmail("DANA.WHITFIELD@pulserx.example"); !ok {
		t.Fatalf("email lookup should be case-insensitive")
	}
}

func TestReplacePrescription_MatchesByID(t *testing.T) {
	db := Seed()
	rx, _ := db.FindPrescription("RX240102")
	edited := *rx
	edited.Status = model.PrescriptionCompleted

	if !db.ReplacePrescription(edited) {
		t.Fatalf("replace failed")
	}
	got, _ := db.FindPrescription("RX240102")
	if got.Status != model.PrescriptionCompleted {
		t.Fatalf("status = %q", got.Status)
	}
	// Other entries untouched.
	other, _ := db.FindPrescription("RX240101")
	if other.Status != model.PrescriptionInProgress {
		t.Fatalf("unrelated entry mutated: %q", other.Status)
	}

	missing := edited
	missing.ID = "RX000000"
	if db.ReplacePrescription(missing) {
		t.Fatalf("replace of unknown id should fail")
	}
}

func TestAddPrescription_Appends(t *testing.T) {
	db := Seed()
	n := len(db.Prescriptions)
	db.AddPrescription(model.Prescription{ID: "RX777777", PatientName: "New Patient"})
	if len(db.Prescriptions) != n+1 {
		t.Fatalf("length = %d, want %d", len(db.Prescriptions), n+1)
	}
	if _, ok := db.FindPrescription("RX777777"); !ok {
		t.Fatalf("appended prescription not findable")
	}
}

func TestNextID_PatternAndUniqueness(t *testing.T) {
	db := Seed()
	now := time.Date(2024, 1, 1, 12, 0, 0, 123_000_000, time.UTC)

	id := db.NextID(PrefixPrescription, now)
	if !regexp.MustCompile(`^RX\d+$`).MatchString(id) {
		t.Fatalf("id %q does not match RX\\d+", id)
	}

	// Same millisecond must still produce distinct ids.
	db.AddPrescription(model.Prescription{ID: id})
	id2 := db.NextID(PrefixPrescription, now)
	if id2 == id {
		t.Fatalf("duplicate id %q", id2)
	}
	if !regexp.MustCompile(`^RX\d+$`).MatchString(id2) {
		t.Fatalf("bumped id %q does not match RX\\d+", id2)
	}
}

func TestUnreadMessageCount(t *testing.T) {
	db := Seed()
	if got := db.UnreadMessageCount(); got != 1 {
		t.Fatalf("unread = %d, want 1", got)
	}
}
