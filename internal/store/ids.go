package store

import (
	"fmt"
	"time"
)

// Display-id prefixes per entity kind.
const (
	PrefixPrescription = "RX"
	PrefixDelivery     = "DEL"
	PrefixOrder        = "PO"
	PrefixAppointment  = "APT"
	PrefixUser         = "USR"
	PrefixMessage      = "MSG"
)

// NewDisplayID stamps "<PREFIX><timestamp-suffix>": the prefix followed by
// the last six digits of the unix-millisecond clock. Good enough for a
// single-session console; NextID adds a collision bump against the DB.
func NewDisplayID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%06d", prefix, now.UnixMilli()%1_000_000)
}

// NextID returns a display id unique within this DB. Two commits inside the
// same millisecond bump a per-prefix sequence instead of colliding.
func (db *DB) NextID(prefix string, now time.Time) string {
	id := NewDisplayID(prefix, now)
	if !db.idExists(id) {
		return id
	}
	if db.nextSeq == nil {
		db.nextSeq = map[string]int{}
	}
	for {
		db.nextSeq[prefix]++
		candidate := fmt.Sprintf("%s%d", id, db.nextSeq[prefix])
		if !db.idExists(candidate) {
			return candidate
		}
	}
}

func (db *DB) idExists(id string) bool {
	for _, rx := range db.Prescriptions {
		if rx.ID == id {
			return true
		}
	}
	for _, d := range db.Deliveries {
		if d.ID == id {
			return true
		}
	}
	for _, o := range db.Orders {
		if o.ID == id {
			return true
		}
	}
	for _, a := range db.Appointments {
		if a.ID == id {
			return true
		}
	}
	for _, u := range db.Users {
		if u.ID == id {
			return true
		}
	}
	for _, m := range db.Messages {
		if m.ID == id {
			return true
		}
	}
	return false
}
