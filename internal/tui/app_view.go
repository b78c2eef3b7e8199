package tui

import (
	"fmt"
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var viewTabs = []struct {
	v     view
	label string
}{
	{viewQueue, "1 Queue"},
	{viewPatients, "2 Patients"},
	{viewInventory, "3 Inventory"},
	{viewAppointments, "4 Appointments"},
	{viewDeliveries, "5 Deliveries"},
	{viewMessages, "6 Messages"},
	{viewUsers, "7 Users"},
}

func (m appModel) View() string {
	if m.width == 0 {
		return ""
	}

	w := m.width
	if w > maxContentW {
		w = maxContentW
	}

	header := m.renderHeader(w)
	if stats := m.renderStats(); stats != "" {
		header += "\n" + normalizePane(stats, w, 1)
	}
	footer := m.renderFooter(w)

	bodyH := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyH < 4 {
		bodyH = 4
	}

	var body string
	switch {
	case m.modal != modalNone:
		body = placeCentered(w, bodyH, m.renderModal())
	case !m.showDetail:
		body = normalizePane(m.activeList().View(), w, bodyH)
	default:
		listW := w / 2
		detailW := w - listW - 1
		left := normalizePane(m.activeList().View(), listW, bodyH)
		right := normalizePane(m.renderDetail(detailW), detailW, bodyH)
		sep := strings.TrimRight(strings.Repeat("│\n", bodyH), "\n")
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, styleMuted().Render(sep), right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m appModel) renderHeader(w int) string {
	var parts []string
	for _, t := range viewTabs {
		label := t.label
		if t.v == viewMessages {
			if n := m.db.UnreadMessageCount(); n > 0 {
				label = fmt.Sprintf("%s (%d)", label, n)
			}
		}
		st := styleMuted()
		if t.v == m.view {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		parts = append(parts, st.Render(label))
	}
	tabs := strings.Join(parts, "  ")

	title := lipgloss.NewStyle().Bold(true).Render("PulseRx")
	return normalizePane(title+"  "+tabs, w, 1) + "\n" + styleMuted().Render(strings.Repeat("─", w))
}

// renderStats derives the queue dashboard line. Counts are recomputed from
// the store on every render; nothing is cached.
func (m appModel) renderStats() string {
	if m.view != viewQueue {
		return ""
	}
	ready, urgent := 0, 0
	for _, rx := range m.db.Prescriptions {
		if rx.Status == model.PrescriptionReadyForReview {
			ready++
		}
		if rx.Priority == model.PriorityUrgent {
			urgent++
		}
	}
	line := fmt.Sprintf("%d in queue · %d ready for review", len(m.db.Prescriptions), ready)
	out := styleMuted().Render(line)
	if urgent > 0 {
		out += "  " + styleBadge(colorDanger).Render(fmt.Sprintf("%d urgent", urgent))
	}
	return out
}

func (m appModel) renderFooter(w int) string {
	rule := styleMuted().Render(strings.Repeat("─", w))
	if m.flashText != "" {
		return rule + "\n" + normalizePane(lipgloss.NewStyle().Foreground(colorAccent).Render(m.flashText), w, 1)
	}
	help := m.contextHelp()
	return rule + "\n" + normalizePane(styleMuted().Render(help), w, 1)
}

func (m appModel) contextHelp() string {
	common := "1-7/tab: screen   v: detail   /: filter   q: quit"
	switch m.view {
	case viewQueue:
		return "n: new rx   e: edit   " + common
	case viewPatients:
		return "n: new rx for patient   " + common
	case viewInventory:
		return "r: reorder   " + common
	case viewAppointments:
		return "c: check in   r: reschedule   e: edit   " + common
	case viewDeliveries:
		return "d: assign driver   e: edit   " + common
	case viewMessages:
		return "n: compose   enter: mark read   " + common
	case viewUsers:
		return "n: new user   " + common
	}
	return common
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalIntake:
		return m.intake.view(m.width)
	case modalEditPrescription:
		return m.editRx.view(m.width)
	case modalEditDelivery:
		return m.editDel.view(m.width)
	case modalEditAppointment:
		return m.editApt.view(m.width)
	case modalAssignDriver:
		body := m.driverList.View() + "\n" + styleMuted().Render("enter: assign   esc: cancel")
		return renderModalBox(m.width, "Assign driver", body)
	case modalConfirmCheckIn:
		body := "Check in this appointment?"
		if appt, ok := m.db.FindAppointment(m.modalForID); ok {
			body = fmt.Sprintf("Check in %s (%s %s)?", appt.PatientName, appt.Date, appt.Time)
		}
		return renderConfirmModal(m.width, "Check in", body, "Check in", "Cancel", m.confirmFocused)
	case modalReschedule, modalReorder, modalCompose, modalNewUser:
		return m.action.view(m.width)
	}
	return ""
}

// renderDetail projects the selected entity of the active screen. Pure
// read-only rendering; selection changes are the only way it varies.
func (m appModel) renderDetail(w int) string {
	switch m.view {
	case viewQueue:
		if it, ok := m.queueList.SelectedItem().(prescriptionListItem); ok {
			return renderPrescriptionDetail(it.rx, w)
		}
	case viewPatients:
		if it, ok := m.patientsList.SelectedItem().(patientListItem); ok {
			return renderPatientDetail(it.p, w)
		}
	case viewInventory:
		if it, ok := m.inventoryList.SelectedItem().(inventoryListItem); ok {
			return renderInventoryDetail(it.item, w)
		}
	case viewAppointments:
		if it, ok := m.appointmentsList.SelectedItem().(appointmentListItem); ok {
			return renderAppointmentDetail(it.appt)
		}
	case viewDeliveries:
		if it, ok := m.deliveriesList.SelectedItem().(deliveryListItem); ok {
			return renderDeliveryDetail(it.del)
		}
	case viewMessages:
		if it, ok := m.messagesList.SelectedItem().(messageListItem); ok {
			return renderMessageDetail(it.msg, w)
		}
	case viewUsers:
		if it, ok := m.usersList.SelectedItem().(userListItem); ok {
			return renderUserDetail(it.u)
		}
	}
	return styleMuted().Render("Nothing selected")
}

func detailLine(label, value string) string {
	if value == "" {
		return ""
	}
	return styleMuted().Width(12).Render(label) + " " + value + "\n"
}

func priorityBadge(p model.Priority) string {
	c := colorNeutral
	switch p {
	case model.PriorityUrgent:
		c = colorDanger
	case model.PriorityHigh:
		c = colorWarn
	}
	return styleBadge(c).Render(string(p))
}

func stockBadge(s model.StockStatus) string {
	var c lipgloss.TerminalColor
	switch derive.StatusColor(s) {
	case "red":
		c = colorDanger
	case "yellow":
		c = colorWarn
	case "orange":
		c = colorExpiry
	default:
		c = colorOK
	}
	return styleBadge(c).Render(string(s))
}

func renderPrescriptionDetail(rx model.Prescription, w int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(rx.ID) + "  " + priorityBadge(rx.Priority) + "\n\n")
	b.WriteString(detailLine("Patient", rx.PatientName))
	b.WriteString(detailLine("DOB", rx.PatientDOB))
	b.WriteString(detailLine("Phone", rx.Phone))
	b.WriteString(detailLine("Medication", strings.TrimSpace(rx.Medication+" "+rx.Strength)))
	b.WriteString(detailLine("Quantity", rx.Quantity))
	b.WriteString(detailLine("Refills", rx.Refills))
	b.WriteString(detailLine("Directions", rx.Directions))
	b.WriteString(detailLine("Prescriber", rx.Prescriber))
	b.WriteString(detailLine("Insurance", rx.Insurance))
	b.WriteString(detailLine("Member ID", rx.MemberID))
	b.WriteString(detailLine("Status", string(rx.Status)))
	b.WriteString(detailLine("Submitted", rx.SubmittedAt.Format("2006-01-02 15:04")))
	return b.String()
}

func renderPatientDetail(p model.Patient, w int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.FullName()) + "  " + styleMuted().Render(p.ID) + "\n\n")
	b.WriteString(detailLine("DOB", p.DOB))
	b.WriteString(detailLine("Phone", p.Phone))
	b.WriteString(detailLine("Email", p.Email))
	b.WriteString(detailLine("Address", p.Address))
	b.WriteString(detailLine("Insurance", p.Insurance))
	b.WriteString(detailLine("Member ID", p.MemberID))
	if p.Allergies != "" {
		b.WriteString(styleMuted().Width(12).Render("Allergies") + " " + styleBadge(colorDanger).Render(p.Allergies) + "\n")
	}
	if p.Notes != "" {
		b.WriteString("\n" + renderMarkdown(p.Notes, w))
	}
	return b.String()
}

func renderInventoryDetail(item model.InventoryItem, w int) string {
	status := derive.StockStatus(item.Quantity, item.MinStock)
	badges := stockBadge(status)
	if item.ExpiringSoon {
		badges += "  " + stockBadge(model.StockExpiring)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(item.Name+" "+item.Strength) + "\n")
	b.WriteString(badges + "\n\n")
	b.WriteString(detailLine("NDC", item.NDC))
	b.WriteString(detailLine("Form", item.Form))
	b.WriteString(detailLine("On hand", fmt.Sprintf("%d (min %d)", item.Quantity, item.MinStock)))
	b.WriteString(detailLine("Unit cost", fmt.Sprintf("$%.2f", item.UnitCost)))
	b.WriteString(detailLine("Vendor", item.Vendor))
	b.WriteString(detailLine("Location", item.Location))
	b.WriteString(detailLine("Expiry", item.Expiry))
	return b.String()
}

func renderAppointmentDetail(appt model.Appointment) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(appt.PatientName) + "  " + styleMuted().Render(appt.ID) + "\n\n")
	b.WriteString(detailLine("When", strings.TrimSpace(appt.Date+" "+appt.Time)))
	b.WriteString(detailLine("Duration", appt.Duration))
	b.WriteString(detailLine("Type", appt.Type))
	b.WriteString(detailLine("Provider", appt.Provider))
	b.WriteString(detailLine("Phone", appt.Phone))
	b.WriteString(detailLine("Status", string(appt.Status)))
	b.WriteString(detailLine("Notes", appt.Notes))
	return b.String()
}

func renderDeliveryDetail(del model.Delivery) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(del.ID) + "  " + styleBadge(colorNeutral).Render(string(del.Priority)) + "\n\n")
	b.WriteString(detailLine("Patient", del.PatientName))
	b.WriteString(detailLine("Address", del.Address))
	b.WriteString(detailLine("Phone", del.Phone))
	b.WriteString(detailLine("Items", del.Items))
	b.WriteString(detailLine("Status", string(del.Status)))
	b.WriteString(detailLine("Window", del.Window))
	b.WriteString(detailLine("Driver", del.DriverName))
	b.WriteString(detailLine("ETA", del.EstimatedDate))
	b.WriteString(detailLine("Notes", del.Notes))
	return b.String()
}

func renderMessageDetail(msg model.Message, w int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(msg.Subject) + "\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf("from %s to %s · %s", msg.From, msg.To, msg.SentAt.Format("2006-01-02 15:04"))) + "\n\n")
	b.WriteString(renderMarkdown(msg.Body, w))
	return b.String()
}

func renderUserDetail(u model.User) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(u.Name) + "  " + styleMuted().Render(u.ID) + "\n\n")
	b.WriteString(detailLine("Email", u.Email))
	b.WriteString(detailLine("Role", string(u.Role)))
	b.WriteString(detailLine("Department", u.Department))
	b.WriteString(detailLine("Status", string(u.Status)))
	b.WriteString(detailLine("Permissions", strings.Join(u.Permissions, ", ")))
	b.WriteString(detailLine("Created", u.CreatedAt.Format("2006-01-02")))
	return b.String()
}
