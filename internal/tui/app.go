package tui

import (
	"context"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type appModel struct {
	db        *store.DB
	statePath string

	width  int
	height int

	view  view
	modal modalKind
	// modalForID holds the entity id the open modal targets (appointment for
	// check-in/reschedule, delivery for assign-driver, item NDC for reorder).
	modalForID string

	queueList        list.Model
	patientsList     list.Model
	inventoryList    list.Model
	appointmentsList list.Model
	deliveriesList   list.Model
	messagesList     list.Model
	usersList        list.Model
	driverList       list.Model

	intake  *intakeState
	editRx  *editFormState
	editDel *editFormState
	editApt *editFormState
	action  *actionState

	confirmFocused bool

	// showDetail toggles the right-hand detail pane.
	showDetail bool

	flashText string
	flashSeq  int
}

func newAppModel(db *store.DB, statePath string) appModel {
	m := appModel{
		db:         db,
		statePath:  statePath,
		view:       viewQueue,
		showDetail: true,
	}

	m.queueList = newList("Queue", nil)
	m.patientsList = newList("Patients", nil)
	m.inventoryList = newList("Inventory", nil)
	m.appointmentsList = newList("Appointments", nil)
	m.deliveriesList = newList("Deliveries", nil)
	m.messagesList = newList("Messages", nil)
	m.usersList = newList("Users", nil)

	m.driverList = newPickList("Drivers", nil)

	m.refreshAll()

	// Best effort: restore the last screen/selection.
	if st, err := store.LoadUIState(context.Background(), statePath); err == nil {
		m.applySavedUIState(st)
	}

	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m *appModel) applySavedUIState(st *store.UIState) {
	if st == nil {
		return
	}
	if v, ok := viewFromString(st.View); ok {
		m.view = v
	}
	m.showDetail = st.ShowDetail
	if st.SelectedPrescriptionID != "" {
		selectByID(&m.queueList, st.SelectedPrescriptionID)
	}
	if st.SelectedPatientID != "" {
		selectByID(&m.patientsList, st.SelectedPatientID)
	}
	if st.SelectedDeliveryID != "" {
		selectByID(&m.deliveriesList, st.SelectedDeliveryID)
	}
}

func (m appModel) currentUIState() *store.UIState {
	st := &store.UIState{Version: 1, View: viewToString(m.view), ShowDetail: m.showDetail}
	if it, ok := m.queueList.SelectedItem().(prescriptionListItem); ok {
		st.SelectedPrescriptionID = it.rx.ID
	}
	if it, ok := m.patientsList.SelectedItem().(patientListItem); ok {
		st.SelectedPatientID = it.p.ID
	}
	if it, ok := m.deliveriesList.SelectedItem().(deliveryListItem); ok {
		st.SelectedDeliveryID = it.del.ID
	}
	return st
}

func (m *appModel) saveUIStateBestEffort() {
	_ = store.SaveUIState(context.Background(), m.statePath, m.currentUIState())
}

func (m *appModel) refreshAll() {
	m.refreshQueue()
	m.refreshPatients()
	m.refreshInventory()
	m.refreshAppointments()
	m.refreshDeliveries()
	m.refreshMessages()
	m.refreshUsers()
}

func (m *appModel) refreshQueue() {
	curID := ""
	if it, ok := m.queueList.SelectedItem().(prescriptionListItem); ok {
		curID = it.rx.ID
	}
	var items []list.Item
	for _, rx := range m.db.Prescriptions {
		items = append(items, prescriptionListItem{rx: rx})
	}
	m.queueList.SetItems(items)
	if curID != "" {
		selectByID(&m.queueList, curID)
	}
}

func (m *appModel) refreshPatients() {
	var items []list.Item
	for _, p := range m.db.Patients {
		items = append(items, patientListItem{p: p})
	}
	m.patientsList.SetItems(items)
}

func (m *appModel) refreshInventory() {
	curNDC := ""
	if it, ok := m.inventoryList.SelectedItem().(inventoryListItem); ok {
		curNDC = it.item.NDC
	}
	var items []list.Item
	for _, it := range m.db.Inventory {
		items = append(items, inventoryListItem{item: it})
	}
	m.inventoryList.SetItems(items)
	if curNDC != "" {
		selectByID(&m.inventoryList, curNDC)
	}
}

func (m *appModel) refreshAppointments() {
	curID := ""
	if it, ok := m.appointmentsList.SelectedItem().(appointmentListItem); ok {
		curID = it.appt.ID
	}
	var items []list.Item
	for _, a := range m.db.Appointments {
		items = append(items, appointmentListItem{appt: a})
	}
	m.appointmentsList.SetItems(items)
	if curID != "" {
		selectByID(&m.appointmentsList, curID)
	}
}

func (m *appModel) refreshDeliveries() {
	curID := ""
	if it, ok := m.deliveriesList.SelectedItem().(deliveryListItem); ok {
		curID = it.del.ID
	}
	var items []list.Item
	for _, d := range m.db.Deliveries {
		items = append(items, deliveryListItem{del: d})
	}
	m.deliveriesList.SetItems(items)
	if curID != "" {
		selectByID(&m.deliveriesList, curID)
	}
}

func (m *appModel) refreshMessages() {
	var items []list.Item
	for _, msg := range m.db.Messages {
		items = append(items, messageListItem{msg: msg})
	}
	m.messagesList.SetItems(items)
}

func (m *appModel) refreshUsers() {
	var items []list.Item
	for _, u := range m.db.Users {
		items = append(items, userListItem{u: u})
	}
	m.usersList.SetItems(items)
}

func (m *appModel) refreshDrivers() {
	var items []list.Item
	for _, d := range m.db.Drivers {
		items = append(items, driverPickItem{drv: d})
	}
	m.driverList.SetItems(items)
}

func (m *appModel) activeList() *list.Model {
	switch m.view {
	case viewQueue:
		return &m.queueList
	case viewPatients:
		return &m.patientsList
	case viewInventory:
		return &m.inventoryList
	case viewAppointments:
		return &m.appointmentsList
	case viewDeliveries:
		return &m.deliveriesList
	case viewMessages:
		return &m.messagesList
	case viewUsers:
		return &m.usersList
	}
	return &m.queueList
}

func (m *appModel) resizeLists() {
	h := m.height - 6
	if h < 8 {
		h = 8
	}
	w := m.width / 2
	if !m.showDetail {
		w = m.width
		if w > maxContentW {
			w = maxContentW
		}
	}
	if w < 40 {
		w = 40
	}
	for _, l := range []*list.Model{
		&m.queueList, &m.patientsList, &m.inventoryList, &m.appointmentsList,
		&m.deliveriesList, &m.messagesList, &m.usersList,
	} {
		l.SetSize(w, h)
	}
	m.driverList.SetSize(modalBodyWidth(m.width), 8)
}

// closeAllModals drops every open dialog and its draft state.
func (m *appModel) closeAllModals() {
	m.modal = modalNone
	m.modalForID = ""
	m.intake = nil
	m.editRx = nil
	m.editDel = nil
	m.editApt = nil
	m.action = nil
	m.confirmFocused = true
}

func selectByID(l *list.Model, id string) {
	for i, item := range l.Items() {
		switch it := item.(type) {
		case prescriptionListItem:
			if it.rx.ID == id {
				l.Select(i)
				return
			}
		case patientListItem:
			if it.p.ID == id {
				l.Select(i)
				return
			}
		case inventoryListItem:
			if it.item.NDC == id {
				l.Select(i)
				return
			}
		case appointmentListItem:
			if it.appt.ID == id {
				l.Select(i)
				return
			}
		case deliveryListItem:
			if it.del.ID == id {
				l.Select(i)
				return
			}
		case userListItem:
			if it.u.ID == id {
				l.Select(i)
				return
			}
		case messageListItem:
			if it.msg.ID == id {
				l.Select(i)
				return
			}
		}
	}
}

func (m *appModel) selectedPatient() (model.Patient, bool) {
	if it, ok := m.patientsList.SelectedItem().(patientListItem); ok {
		return it.p, true
	}
	return model.Patient{}, false
}
