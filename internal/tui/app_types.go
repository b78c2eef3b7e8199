package tui

type view int

const (
	viewQueue view = iota
	viewPatients
	viewInventory
	viewAppointments
	viewDeliveries
	viewMessages
	viewUsers
)

func viewToString(v view) string {
	switch v {
	case viewQueue:
		return "queue"
	case viewPatients:
		return "patients"
	case viewInventory:
		return "inventory"
	case viewAppointments:
		return "appointments"
	case viewDeliveries:
		return "deliveries"
	case viewMessages:
		return "messages"
	case viewUsers:
		return "users"
	}
	return "queue"
}

func viewFromString(s string) (view, bool) {
	switch s {
	case "queue":
		return viewQueue, true
	case "patients":
		return viewPatients, true
	case "inventory":
		return viewInventory, true
	case "appointments":
		return viewAppointments, true
	case "deliveries":
		return viewDeliveries, true
	case "messages":
		return viewMessages, true
	case "users":
		return viewUsers, true
	}
	return viewQueue, false
}

type modalKind int

const (
	modalNone modalKind = iota
	modalIntake
	modalEditPrescription
	modalEditDelivery
	modalEditAppointment
	modalAssignDriver
	modalConfirmCheckIn
	modalReschedule
	modalReorder
	modalCompose
	modalNewUser
)

// intakeSubmitDoneMsg ends the simulated submit latency. seq guards against a
// stale timer from a previous intake session.
type intakeSubmitDoneMsg struct{ seq int }

// flashClearMsg clears the transient minibuffer notification.
type flashClearMsg struct{ seq int }
