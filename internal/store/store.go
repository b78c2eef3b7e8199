// Package store holds the canonical in-memory lists for one console session.
//
// There is deliberately no entity persistence: every launch starts from the
// static seed data. The only thing written to disk is small best-effort TUI
// state (last screen/selection), kept in a SQLite file next to the config.
package store

import (
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
)

// DB is the source of truth for every entity list. Pages own a *DB and hand
// dialogs an entity plus a commit callback; dialogs never mutate lists
// directly.
type DB struct {
	Prescriptions []model.Prescription
	Patients      []model.Patient
	Appointments  []model.Appointment
	Deliveries    []model.Delivery
	Drivers       []model.Driver
	Inventory     []model.InventoryItem
	Orders        []model.PurchaseOrder
	Users         []model.User
	Messages      []model.Message

	// nextSeq feeds display-id generation within this session.
	nextSeq map[string]int
}

func (db *DB) FindPrescription(id string) (*model.Prescription, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Prescriptions {
		if db.Prescriptions[i].ID == id {
			return &db.Prescriptions[i], true
		}
	}
	return nil, false
}

func (db *DB) FindPatient(id string) (*model.Patient, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Patients {
		if db.Patients[i].ID == id {
			return &db.Patients[i], true
		}
	}
	return nil, false
}

func (db *DB) FindAppointment(id string) (*model.Appointment, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Appointments {
		if db.Appointments[i].ID == id {
			return &db.Appointments[i], true
		}
	}
	return nil, false
}

func (db *DB) FindDelivery(id string) (*model.Delivery, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Deliveries {
		if db.Deliveries[i].ID == id {
			return &db.Deliveries[i], true
		}
	}
	return nil, false
}

func (db *DB) FindDriver(id string) (*model.Driver, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Drivers {
		if db.Drivers[i].ID == id {
			return &db.Drivers[i], true
		}
	}
	return nil, false
}

// FindInventoryItem looks up by NDC (the item's identity).
func (db *DB) FindInventoryItem(ndc string) (*model.InventoryItem, bool) {
	ndc = strings.TrimSpace(ndc)
	for i := range db.Inventory {
		if db.Inventory[i].NDC == ndc {
			return &db.Inventory[i], true
		}
	}
	return nil, false
}

func (db *DB) FindOrder(id string) (*model.PurchaseOrder, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Orders {
		if db.Orders[i].ID == id {
			return &db.Orders[i], true
		}
	}
	return nil, false
}

func (db *DB) FindUser(id string) (*model.User, bool) {
	id = strings.TrimSpace(id)
	for i := range db.Users {
		if db.Users[i].ID == id {
			return &db.Users[i], true
		}
	}
	return nil, false
}

func (db *DB) FindUserByEmail(email string) (*model.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, false
	}
	for i := range db.Users {
		if strings.ToLower(strings.TrimSpace(db.Users[i].Email)) == email {
			return &db.Users[i], true
		}
	}
	return nil, false
}

// AddPrescription implements the page side of the wizard's onAdd callback.
func (db *DB) AddPrescription(rx model.Prescription) {
	db.Prescriptions = append(db.Prescriptions, rx)
}

// ReplacePrescription implements onEdit: the entry whose id matches is
// replaced wholesale with the merged entity.
func (db *DB) ReplacePrescription(rx model.Prescription) bool {
	for i := range db.Prescriptions {
		if db.Prescriptions[i].ID == rx.ID {
			db.Prescriptions[i] = rx
			return true
		}
	}
	return false
}

func (db *DB) ReplaceAppointment(appt model.Appointment) bool {
	for i := range db.Appointments {
		if db.Appointments[i].ID == appt.ID {
			db.Appointments[i] = appt
			return true
		}
	}
	return false
}

func (db *DB) ReplaceDelivery(del model.Delivery) bool {
	for i := range db.Deliveries {
		if db.Deliveries[i].ID == del.ID {
			db.Deliveries[i] = del
			return true
		}
	}
	return false
}

func (db *DB) ReplaceInventoryItem(item model.InventoryItem) bool {
	for i := range db.Inventory {
		if db.Inventory[i].NDC == item.NDC {
			db.Inventory[i] = item
			return true
		}
	}
	return false
}

func (db *DB) ReplaceUser(u model.User) bool {
	for i := range db.Users {
		if db.Users[i].ID == u.ID {
			db.Users[i] = u
			return true
		}
	}
	return false
}

func (db *DB) AddUser(u model.User) { db.Users = append(db.Users, u) }

func (db *DB) AddOrder(po model.PurchaseOrder) { db.Orders = append(db.Orders, po) }

func (db *DB) AddMessage(msg model.Message) { db.Messages = append(db.Messages, msg) }

// MarkMessageRead clears the unread flag. Reports whether the message exists.
func (db *DB) MarkMessageRead(id string) bool {
	for i := range db.Messages {
		if db.Messages[i].ID == id {
			db.Messages[i].Unread = false
			return true
		}
	}
	return false
}

func (db *DB) UnreadMessageCount() int {
	n := 0
	for _, m := range db.Messages {
		if m.Unread {
			n++
		}
	}
	return n
}
