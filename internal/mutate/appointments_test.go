package mutate

import (
	"errors"
	"testing"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

func TestCheckIn(t *testing.T) {
	db := store.Seed()

	res, err := CheckIn(db, "APT001")
	if err != nil {
		t.Fatalf("CheckIn error: %v", err)
	}
	if !res.Changed || res.Appointment.Status != model.AppointmentCheckedIn {
		t.Fatalf("got %+v", res.Appointment)
	}

	// Double check-in is a no-op.
	res, err = CheckIn(db, "APT001")
	if err != nil {
		t.Fatalf("CheckIn error: %v", err)
	}
	if res.Changed {
		t.Fatalf("second check-in should not change anything")
	}

	var nf NotFoundError
	if _, err := CheckIn(db, "APT999"); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReschedule(t *testing.T) {
	db := store.Seed()

	res, err := Reschedule(db, "APT003", "2024-01-05", "10:00")
	if err != nil {
		t.Fatalf("Reschedule error: %v", err)
	}
	if !res.Changed {
		t.Fatalf("expected changed")
	}
	appt, _ := db.FindAppointment("APT003")
	if appt.Date != "2024-01-05" || appt.Time != "10:00" {
		t.Fatalf("got %s %s", appt.Date, appt.Time)
	}
	// A rescheduled appointment goes back to pending confirmation.
	if appt.Status != model.AppointmentPending {
		t.Fatalf("status = %q", appt.Status)
	}

	// Same slot => no-op.
	res, err = Reschedule(db, "APT003", "2024-01-05", "10:00")
	if err != nil {
		t.Fatalf("Reschedule error: %v", err)
	}
	if res.Changed {
		t.Fatalf("identical slot should be a no-op")
	}

	var ve ValidationError
	if _, err := Reschedule(db, "APT003", "", "10:00"); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := Reschedule(db, "APT003", "2024-01-05", ""); !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestAppointments_BlankIDRejected(t *testing.T) {
	db := store.Seed()
	var ve ValidationError
	if _, err := CheckIn(db, "  "); !errors.As(err, &ve) {
		t.Fatalf("CheckIn blank id: err = %v", err)
	}
	if _, err := Reschedule(db, "", "2024-01-05", "10:00"); !errors.As(err, &ve) {
		t.Fatalf("Reschedule blank id: err = %v", err)
	}
	if _, err := CheckIn(nil, "APT001"); !errors.As(err, &ve) {
		t.Fatalf("CheckIn nil db: err = %v", err)
	}
}
