package tui

import (
	"strings"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/mutate"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const flashDuration = 3 * time.Second

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case intakeSubmitDoneMsg:
		if m.modal == modalIntake && m.intake != nil && msg.seq == m.intake.seq {
			if rx, ok := m.intake.finish(m.db, time.Now()); ok {
				m.db.AddPrescription(rx)
				m.refreshQueue()
				m.closeAllModals()
				m.view = viewQueue
				selectByID(&m.queueList, rx.ID)
				return m, m.flash("Queued " + rx.ID)
			}
		}
		return m, nil

	case flashClearMsg:
		if msg.seq == m.flashSeq {
			m.flashText = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.modal == modalIntake && m.intake != nil {
			cmd, _ := m.intake.update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.modal != modalNone {
			return m.updateModalKey(msg)
		}
		return m.updateGlobalKey(msg)
	}

	var cmd tea.Cmd
	l := m.activeList()
	*l, cmd = l.Update(msg)
	return m, cmd
}

// flash sets the minibuffer text and schedules its expiry. The sequence
// number keeps an old timer from wiping a newer notification.
func (m *appModel) flash(text string) tea.Cmd {
	m.flashText = text
	m.flashSeq++
	seq := m.flashSeq
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashClearMsg{seq} })
}

func (m appModel) updateModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ESC cancels every dialog; drafts are dropped, originals untouched.
	if msg.String() == "esc" {
		if m.intake != nil && m.intake.machine.Submitting() {
			return m, nil
		}
		for _, f := range []*editFormState{m.editRx, m.editDel, m.editApt} {
			if f != nil {
				f.cancel()
			}
		}
		m.closeAllModals()
		return m, nil
	}

	switch m.modal {
	case modalIntake:
		cmd, ev := m.intake.update(msg)
		if ev.flash != "" {
			return m, tea.Batch(cmd, m.flash(ev.flash))
		}
		if ev.beganCommit {
			seq := m.intake.seq
			return m, tea.Batch(cmd, tea.Tick(submitDelay, func(time.Time) tea.Msg {
				return intakeSubmitDoneMsg{seq: seq}
			}))
		}
		return m, cmd

	case modalEditPrescription:
		return m.updateEditForm(m.editRx, msg, m.refreshQueue)
	case modalEditDelivery:
		return m.updateEditForm(m.editDel, msg, m.refreshDeliveries)
	case modalEditAppointment:
		return m.updateEditForm(m.editApt, msg, m.refreshAppointments)

	case modalAssignDriver:
		if msg.String() == "enter" {
			it, ok := m.driverList.SelectedItem().(driverPickItem)
			if !ok {
				return m, nil
			}
			res, err := mutate.AssignDriver(m.db, m.modalForID, it.drv.ID)
			m.closeAllModals()
			if err != nil {
				return m, m.flash(err.Error())
			}
			m.refreshDeliveries()
			return m, m.flash("Assigned " + res.Delivery.DriverName + " to " + res.Delivery.ID)
		}
		var cmd tea.Cmd
		m.driverList, cmd = m.driverList.Update(msg)
		return m, cmd

	case modalConfirmCheckIn:
		switch msg.String() {
		case "tab", "left", "right":
			m.confirmFocused = !m.confirmFocused
			return m, nil
		case "enter":
			if !m.confirmFocused {
				m.closeAllModals()
				return m, nil
			}
			res, err := mutate.CheckIn(m.db, m.modalForID)
			m.closeAllModals()
			if err != nil {
				return m, m.flash(err.Error())
			}
			m.refreshAppointments()
			if !res.Changed {
				return m, m.flash("No change: " + string(res.Appointment.Status))
			}
			return m, m.flash("Checked in " + res.Appointment.PatientName)
		}
		return m, nil

	case modalReschedule:
		cmd, submitted := m.action.update(msg)
		if !submitted {
			return m, cmd
		}
		v := m.action.values()
		res, err := mutate.Reschedule(m.db, m.modalForID, v[0], v[1])
		m.closeAllModals()
		if err != nil {
			return m, m.flash(err.Error())
		}
		m.refreshAppointments()
		return m, m.flash("Rescheduled " + res.Appointment.ID + " to " + res.Appointment.Date + " " + res.Appointment.Time)

	case modalReorder:
		cmd, submitted := m.action.update(msg)
		if !submitted {
			return m, cmd
		}
		v := m.action.values()
		res, err := mutate.Reorder(m.db, m.modalForID, v[0], parsePriority(v[1]), time.Now())
		m.closeAllModals()
		if err != nil {
			return m, m.flash(err.Error())
		}
		m.refreshInventory()
		return m, m.flash("Ordered " + res.Order.ID + ", expected " + res.Order.ExpectedDate)

	case modalCompose:
		cmd, submitted := m.action.update(msg)
		if !submitted {
			return m, cmd
		}
		v := m.action.values()
		if v[0] == "" || v[1] == "" {
			return m, m.flash("Recipient and subject are required")
		}
		now := time.Now()
		m.db.AddMessage(model.Message{
			ID:      m.db.NextID(store.PrefixMessage, now),
			From:    "Pharmacy Desk",
			To:      v[0],
			Subject: v[1],
			Body:    v[2],
			SentAt:  now,
		})
		m.closeAllModals()
		m.refreshMessages()
		return m, m.flash("Sent to " + v[0])

	case modalNewUser:
		cmd, submitted := m.action.update(msg)
		if !submitted {
			return m, cmd
		}
		v := m.action.values()
		u, err := mutate.CreateUser(m.db, mutate.NewUser{
			Name:            v[0],
			Email:           v[1],
			Role:            parseRole(v[2]),
			Department:      v[3],
			Password:        v[4],
			ConfirmPassword: v[5],
		}, time.Now())
		if err != nil {
			// Keep the form open so the operator can fix the input.
			return m, m.flash(err.Error())
		}
		m.closeAllModals()
		m.refreshUsers()
		return m, m.flash("Created " + u.ID + " (" + u.Email + ")")
	}

	return m, nil
}

func (m appModel) updateEditForm(f *editFormState, msg tea.KeyMsg, refresh func()) (tea.Model, tea.Cmd) {
	cmd, flashText, done := f.update(msg)
	if !done {
		return m, cmd
	}
	m.closeAllModals()
	refresh()
	if flashText == "" {
		return m, nil
	}
	return m, m.flash(flashText)
}

func (m appModel) updateGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list filter prompt is open, every key belongs to the list.
	if m.activeList().FilterState() == list.Filtering {
		var cmd tea.Cmd
		l := m.activeList()
		*l, cmd = l.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.saveUIStateBestEffort()
		return m, tea.Quit

	case "1":
		m.view = viewQueue
	case "2":
		m.view = viewPatients
	case "3":
		m.view = viewInventory
	case "4":
		m.view = viewAppointments
	case "5":
		m.view = viewDeliveries
	case "6":
		m.view = viewMessages
	case "7":
		m.view = viewUsers
	case "tab":
		m.view = (m.view + 1) % 7
	case "shift+tab":
		m.view = (m.view + 6) % 7

	case "v":
		m.showDetail = !m.showDetail
		m.resizeLists()

	case "n":
		return m.openNewDialog()

	case "e":
		return m.openEditDialog()

	case "d":
		if m.view == viewDeliveries {
			if it, ok := m.deliveriesList.SelectedItem().(deliveryListItem); ok {
				m.refreshDrivers()
				m.modal = modalAssignDriver
				m.modalForID = it.del.ID
			}
		}

	case "c":
		if m.view == viewAppointments {
			if it, ok := m.appointmentsList.SelectedItem().(appointmentListItem); ok {
				m.modal = modalConfirmCheckIn
				m.modalForID = it.appt.ID
				m.confirmFocused = true
			}
		}

	case "r":
		return m.openRescheduleOrReorder()

	case "enter":
		if m.view == viewMessages {
			if it, ok := m.messagesList.SelectedItem().(messageListItem); ok && it.msg.Unread {
				m.db.MarkMessageRead(it.msg.ID)
				m.refreshMessages()
				selectByID(&m.messagesList, it.msg.ID)
			}
			return m, nil
		}

	default:
		var cmd tea.Cmd
		l := m.activeList()
		*l, cmd = l.Update(msg)
		return m, cmd
	}

	return m, nil
}

// openNewDialog opens the context-appropriate creation dialog for the
// current screen.
func (m appModel) openNewDialog() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewQueue:
		m.intake = newIntakeState(nil, m.flashSeq)
		m.modal = modalIntake
	case viewPatients:
		// Starting intake from the patient roster pre-fills the patient step.
		var prefill *model.Patient
		if p, ok := m.selectedPatient(); ok {
			prefill = &p
		}
		m.intake = newIntakeState(prefill, m.flashSeq)
		m.modal = modalIntake
	case viewMessages:
		m.action = newActionState(modalCompose, "New message", []actionField{
			{label: "To"},
			{label: "Subject"},
			{label: "Body", placeholder: "Markdown supported"},
		})
		m.modal = modalCompose
	case viewUsers:
		m.action = newActionState(modalNewUser, "New user", []actionField{
			{label: "Name"},
			{label: "Email"},
			{label: "Role", initial: "user", placeholder: "admin or user"},
			{label: "Department"},
			{label: "Password", secret: true},
			{label: "Confirm", secret: true},
		})
		m.modal = modalNewUser
	}
	return m, nil
}

func (m appModel) openEditDialog() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewQueue:
		if it, ok := m.queueList.SelectedItem().(prescriptionListItem); ok {
			m.editRx = newEditPrescriptionForm(m.db, it.rx)
			m.modal = modalEditPrescription
		}
	case viewDeliveries:
		if it, ok := m.deliveriesList.SelectedItem().(deliveryListItem); ok {
			m.editDel = newEditDeliveryForm(m.db, it.del)
			m.modal = modalEditDelivery
		}
	case viewAppointments:
		if it, ok := m.appointmentsList.SelectedItem().(appointmentListItem); ok {
			m.editApt = newEditAppointmentForm(m.db, it.appt)
			m.modal = modalEditAppointment
		}
	}
	return m, nil
}

func (m appModel) openRescheduleOrReorder() (tea.Model, tea.Cmd) {
	switch m.view {
	case viewAppointments:
		if it, ok := m.appointmentsList.SelectedItem().(appointmentListItem); ok {
			m.action = newActionState(modalReschedule, "Reschedule "+it.appt.ID, []actionField{
				{label: "Date", initial: it.appt.Date, placeholder: "YYYY-MM-DD"},
				{label: "Time", initial: it.appt.Time, placeholder: "HH:MM"},
			})
			m.modal = modalReschedule
			m.modalForID = it.appt.ID
		}
	case viewInventory:
		if it, ok := m.inventoryList.SelectedItem().(inventoryListItem); ok {
			m.action = newActionState(modalReorder, "Reorder "+it.item.Name, []actionField{
				{label: "Quantity", placeholder: "units"},
				{label: "Priority", initial: "Normal", placeholder: "Urgent/High/Normal/Low"},
			})
			m.modal = modalReorder
			m.modalForID = it.item.NDC
		}
	}
	return m, nil
}

// parsePriority is lenient: unknown input falls back to Normal, mirroring the
// delivery-estimate default.
func parsePriority(s string) model.Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urgent":
		return model.PriorityUrgent
	case "high":
		return model.PriorityHigh
	case "low":
		return model.PriorityLow
	default:
		return model.PriorityNormal
	}
}

func parseRole(s string) model.UserRole {
	if strings.EqualFold(strings.TrimSpace(s), string(model.RoleAdmin)) {
		return model.RoleAdmin
	}
	return model.RoleUser
}
