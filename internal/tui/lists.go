package tui

import (
	"fmt"
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own global header + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	return l
}

// newPickList is a modal variant with filtering disabled.
func newPickList(title string, items []list.Item) list.Model {
	l := newList(title, items)
	l.SetFilteringEnabled(false)
	return l
}

type prescriptionListItem struct {
	rx model.Prescription
}

func (i prescriptionListItem) FilterValue() string {
	return i.rx.ID + " " + i.rx.PatientName + " " + i.rx.Medication
}

func (i prescriptionListItem) Title() string {
	return fmt.Sprintf("%s  %s — %s %s", i.rx.ID, i.rx.PatientName, i.rx.Medication, i.rx.Strength)
}

func (i prescriptionListItem) Description() string {
	return fmt.Sprintf("%s · %s", i.rx.Status, i.rx.Priority)
}

type patientListItem struct {
	p model.Patient
}

func (i patientListItem) FilterValue() string { return i.p.FullName() + " " + i.p.ID }
func (i patientListItem) Title() string       { return fmt.Sprintf("%s  %s", i.p.ID, i.p.FullName()) }
func (i patientListItem) Description() string {
	parts := []string{}
	if i.p.DOB != "" {
		parts = append(parts, "DOB "+i.p.DOB)
	}
	if i.p.Insurance != "" {
		parts = append(parts, i.p.Insurance)
	}
	return strings.Join(parts, " · ")
}

type inventoryListItem struct {
	item model.InventoryItem
}

func (i inventoryListItem) FilterValue() string { return i.item.Name + " " + i.item.NDC }

func (i inventoryListItem) Title() string {
	return fmt.Sprintf("%s %s — qty %d (min %d)", i.item.Name, i.item.Strength, i.item.Quantity, i.item.MinStock)
}

func (i inventoryListItem) Description() string {
	st := derive.StockStatus(i.item.Quantity, i.item.MinStock)
	desc := string(st)
	// The expiry flag is independent of the quantity status; show both rather
	// than picking a winner.
	if i.item.ExpiringSoon {
		desc += " · " + string(model.StockExpiring)
	}
	return desc + " · " + i.item.NDC
}

type appointmentListItem struct {
	appt model.Appointment
}

func (i appointmentListItem) FilterValue() string {
	return i.appt.PatientName + " " + i.appt.ID + " " + i.appt.Type
}

func (i appointmentListItem) Title() string {
	return fmt.Sprintf("%s %s  %s — %s", i.appt.Date, i.appt.Time, i.appt.PatientName, i.appt.Type)
}

func (i appointmentListItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.appt.ID, i.appt.Status, i.appt.Provider)
}

type deliveryListItem struct {
	del model.Delivery
}

func (i deliveryListItem) FilterValue() string {
	return i.del.ID + " " + i.del.PatientName + " " + i.del.Address
}

func (i deliveryListItem) Title() string {
	return fmt.Sprintf("%s  %s — %s", i.del.ID, i.del.PatientName, i.del.Address)
}

func (i deliveryListItem) Description() string {
	desc := fmt.Sprintf("%s · %s", i.del.Status, i.del.Priority)
	if i.del.DriverName != "" {
		desc += " · " + i.del.DriverName
	}
	return desc
}

type messageListItem struct {
	msg model.Message
}

func (i messageListItem) FilterValue() string { return i.msg.Subject + " " + i.msg.From }

func (i messageListItem) Title() string {
	marker := "  "
	if i.msg.Unread {
		marker = "● "
	}
	return marker + i.msg.Subject
}

func (i messageListItem) Description() string {
	return fmt.Sprintf("from %s · %s", i.msg.From, i.msg.SentAt.Format("2006-01-02 15:04"))
}

type userListItem struct {
	u model.User
}

func (i userListItem) FilterValue() string { return i.u.Name + " " + i.u.Email }
func (i userListItem) Title() string       { return fmt.Sprintf("%s  %s", i.u.ID, i.u.Name) }
func (i userListItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.u.Email, i.u.Role, i.u.Status)
}

type driverPickItem struct {
	drv model.Driver
}

func (i driverPickItem) FilterValue() string { return i.drv.Name }

func (i driverPickItem) Title() string {
	duty := "off duty"
	if i.drv.OnDuty {
		duty = "on duty"
	}
	return fmt.Sprintf("%s — %s (%s)", i.drv.Name, i.drv.Vehicle, duty)
}

func (i driverPickItem) Description() string { return i.drv.Phone }
