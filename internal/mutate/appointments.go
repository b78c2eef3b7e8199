package mutate

import (
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
)

type AppointmentResult struct {
	Appointment *model.Appointment
	Changed     bool
}

// CheckIn marks an appointment checked-in. Checking in an appointment that is
// already checked in, completed or cancelled is a no-op rather than an error:
// the front desk double-clicks.
func CheckIn(db *store.DB, appointmentID string) (AppointmentResult, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	if db == nil || appointmentID == "" {
		return AppointmentResult{}, ValidationError{Field: "appointment id", Message: "required"}
	}
	appt, ok := db.FindAppointment(appointmentID)
	if !ok {
		return AppointmentResult{}, NotFoundError{Kind: "appointment", ID: appointmentID}
	}
	switch appt.Status {
	case model.AppointmentCheckedIn, model.AppointmentCompleted, model.AppointmentCancelled:
		return AppointmentResult{Appointment: appt, Changed: false}, nil
	}
	appt.Status = model.AppointmentCheckedIn
	return AppointmentResult{Appointment: appt, Changed: true}, nil
}

// Reschedule moves an appointment to a new date/time and resets it to
// pending confirmation. Both fields are required; there is no calendar
// conflict checking.
func Reschedule(db *store.DB, appointmentID, date, timeOfDay string) (AppointmentResult, error) {
	appointmentID = strings.TrimSpace(appointmentID)
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if db == nil || appointmentID == "" {
		return AppointmentResult{}, ValidationError{Field: "appointment id", Message: "required"}
	}
	if date == "" {
		return AppointmentResult{}, ValidationError{Field: "date", Message: "required"}
	}
	if timeOfDay == "" {
		return AppointmentResult{}, ValidationError{Field: "time", Message: "required"}
	}
	appt, ok := db.FindAppointment(appointmentID)
	if !ok {
		return AppointmentResult{}, NotFoundError{Kind: "appointment", ID: appointmentID}
	}
	if appt.Date == date && appt.Time == timeOfDay {
		return AppointmentResult{Appointment: appt, Changed: false}, nil
	}
	appt.Date = date
	appt.Time = timeOfDay
	appt.Status = model.AppointmentPending
	return AppointmentResult{Appointment: appt, Changed: true}, nil
}
