package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// step drives one message through Update and returns the new model.
func step(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T, want appModel", next)
	}
	return out
}

func newTestApp(t *testing.T) appModel {
	t.Helper()
	m := newAppModel(store.Seed(), "")
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func TestIntakeWizard_CommitQueuesPrescription(t *testing.T) {
	m := newTestApp(t)
	before := len(m.db.Prescriptions)

	m = step(t, m, keyRunes("n"))
	if m.modal != modalIntake {
		t.Fatalf("modal = %v, want intake", m.modal)
	}

	enter := keyType(tea.KeyEnter)

	// Step 1: first name, last name, skip DOB and phone.
	m = step(t, m, keyRunes("John"))
	m = step(t, m, enter)
	m = step(t, m, keyRunes("Smith"))
	m = step(t, m, enter) // -> DOB
	m = step(t, m, enter) // -> phone
	m = step(t, m, enter) // -> step 2
	if got := m.intake.machine.Step(); got != 2 {
		t.Fatalf("step = %d, want 2", got)
	}

	// Step 2: medication only.
	m = step(t, m, keyRunes("Lisinopril"))
	m = step(t, m, enter)
	m = step(t, m, enter)
	m = step(t, m, enter)
	m = step(t, m, enter) // -> step 3

	// Step 3: prescriber only, then submit.
	m = step(t, m, keyRunes("Dr. Johnson"))
	m = step(t, m, enter)
	m = step(t, m, enter)
	m = step(t, m, enter) // last field of last step -> begin commit
	if !m.intake.machine.Submitting() {
		t.Fatal("machine should be submitting after terminal enter")
	}

	// Keystrokes during submission must not reach the draft.
	m = step(t, m, keyRunes("garbage"))
	if m.intake.machine.Draft().Prescriber != "Dr. Johnson" {
		t.Fatalf("draft mutated while submitting: %q", m.intake.machine.Draft().Prescriber)
	}

	m = step(t, m, intakeSubmitDoneMsg{seq: m.intake.seq})

	if m.modal != modalNone {
		t.Fatalf("modal still open after commit")
	}
	if len(m.db.Prescriptions) != before+1 {
		t.Fatalf("prescriptions = %d, want %d", len(m.db.Prescriptions), before+1)
	}
	rx := m.db.Prescriptions[len(m.db.Prescriptions)-1]
	if rx.PatientName != "John Smith" {
		t.Fatalf("patient = %q", rx.PatientName)
	}
	if rx.Medication != "Lisinopril" || rx.Prescriber != "Dr. Johnson" {
		t.Fatalf("medication/prescriber = %q/%q", rx.Medication, rx.Prescriber)
	}
	if rx.Status != model.PrescriptionReadyForReview {
		t.Fatalf("status = %q", rx.Status)
	}
	if !regexp.MustCompile(`^RX\d+$`).MatchString(rx.ID) {
		t.Fatalf("id = %q, want RX-prefixed digits", rx.ID)
	}
}

func TestIntakeWizard_IncompleteCommitRefused(t *testing.T) {
	m := newTestApp(t)
	before := len(m.db.Prescriptions)

	m = step(t, m, keyRunes("n"))
	enter := keyType(tea.KeyEnter)

	// Race to the end without filling anything.
	for range [11]int{} {
		m = step(t, m, enter)
	}
	if m.intake.machine.Submitting() {
		t.Fatal("commit must be refused with empty required fields")
	}
	if m.modal != modalIntake {
		t.Fatal("wizard should stay open")
	}
	if len(m.db.Prescriptions) != before {
		t.Fatalf("prescriptions mutated: %d", len(m.db.Prescriptions))
	}
}

func TestIntakeWizard_EscAbandonsDraft(t *testing.T) {
	m := newTestApp(t)
	before := len(m.db.Prescriptions)

	m = step(t, m, keyRunes("n"))
	m = step(t, m, keyRunes("Jane"))
	m = step(t, m, keyType(tea.KeyEsc))

	if m.modal != modalNone || m.intake != nil {
		t.Fatal("esc should close the wizard and drop its state")
	}
	if len(m.db.Prescriptions) != before {
		t.Fatal("abandoned draft leaked into the store")
	}
}

func TestEditDeliveryForm_SaveMergesDraftOverOriginal(t *testing.T) {
	db := store.Seed()
	orig := db.Deliveries[0]

	f := newEditDeliveryForm(db, orig)
	// Field 1 is the address.
	f.inputs[1].SetValue("742 Evergreen Terrace")
	f.syncDraft()
	if flash := f.save(); flash == "" {
		t.Fatal("save reported no result")
	}

	got, ok := db.FindDelivery(orig.ID)
	if !ok {
		t.Fatalf("delivery %s vanished", orig.ID)
	}
	if got.Address != "742 Evergreen Terrace" {
		t.Fatalf("address = %q", got.Address)
	}
	// Untouched fields keep their original values.
	if got.PatientName != orig.PatientName || got.Status != orig.Status {
		t.Fatalf("untouched fields changed: %+v", got)
	}
}

func TestEditDeliveryForm_CancelLeavesStoreUntouched(t *testing.T) {
	db := store.Seed()
	orig := db.Deliveries[0]

	f := newEditDeliveryForm(db, orig)
	f.inputs[1].SetValue("nowhere")
	f.syncDraft()
	f.cancel()
	f.cancel() // cancel twice; second is a no-op

	got, _ := db.FindDelivery(orig.ID)
	if got.Address != orig.Address {
		t.Fatalf("cancel mutated the store: %q", got.Address)
	}
}

func TestCheckInConfirm_ThroughUpdate(t *testing.T) {
	m := newTestApp(t)
	m = step(t, m, keyRunes("4"))
	if m.view != viewAppointments {
		t.Fatalf("view = %v", m.view)
	}

	it, ok := m.appointmentsList.SelectedItem().(appointmentListItem)
	if !ok {
		t.Fatal("no appointment selected")
	}

	m = step(t, m, keyRunes("c"))
	if m.modal != modalConfirmCheckIn || m.modalForID != it.appt.ID {
		t.Fatalf("modal = %v for %q", m.modal, m.modalForID)
	}

	m = step(t, m, keyType(tea.KeyEnter))
	got, _ := m.db.FindAppointment(it.appt.ID)
	if got.Status != model.AppointmentCheckedIn {
		t.Fatalf("status = %q, want checked-in", got.Status)
	}
	if m.modal != modalNone {
		t.Fatal("confirm dialog should close")
	}
}

func TestMarkMessageRead_ThroughUpdate(t *testing.T) {
	m := newTestApp(t)
	unreadBefore := m.db.UnreadMessageCount()
	if unreadBefore == 0 {
		t.Fatal("seed should include an unread message")
	}

	m = step(t, m, keyRunes("6"))
	// Select the first unread message.
	for i, item := range m.messagesList.Items() {
		if it, ok := item.(messageListItem); ok && it.msg.Unread {
			m.messagesList.Select(i)
			break
		}
	}
	m = step(t, m, keyType(tea.KeyEnter))

	if got := m.db.UnreadMessageCount(); got != unreadBefore-1 {
		t.Fatalf("unread = %d, want %d", got, unreadBefore-1)
	}
}

func TestView_RendersTabsAndDetail(t *testing.T) {
	m := newTestApp(t)
	out := m.View()
	if !strings.Contains(out, "PulseRx") {
		t.Fatal("missing app title")
	}
	if !strings.Contains(out, "Queue") {
		t.Fatal("missing tab labels")
	}
}

func TestConfirmModal_FocusToggle(t *testing.T) {
	m := newTestApp(t)
	m = step(t, m, keyRunes("4"))
	m = step(t, m, keyRunes("c"))
	if !m.confirmFocused {
		t.Fatal("confirm button should start focused")
	}
	m = step(t, m, keyType(tea.KeyTab))
	if m.confirmFocused {
		t.Fatal("tab should move focus to cancel")
	}
	m = step(t, m, keyType(tea.KeyEnter))
	if m.modal != modalNone {
		t.Fatal("cancel should close the dialog")
	}
	it, _ := m.appointmentsList.SelectedItem().(appointmentListItem)
	got, _ := m.db.FindAppointment(it.appt.ID)
	if got.Status == model.AppointmentCheckedIn {
		t.Fatal("cancel must not check in")
	}
}

func TestDetailPaneToggle_PersistsInUIState(t *testing.T) {
	m := newTestApp(t)
	if !m.showDetail {
		t.Fatal("detail pane should start visible")
	}

	m = step(t, m, keyRunes("v"))
	if m.showDetail {
		t.Fatal("v should hide the detail pane")
	}
	if m.currentUIState().ShowDetail {
		t.Fatal("hidden pane not carried into the saved state")
	}

	m = step(t, m, keyRunes("v"))
	if !m.showDetail {
		t.Fatal("v should bring the detail pane back")
	}

	restored := newTestApp(t)
	restored.applySavedUIState(&store.UIState{Version: 1, View: "inventory", ShowDetail: false})
	if restored.showDetail || restored.view != viewInventory {
		t.Fatalf("restore: showDetail=%v view=%v", restored.showDetail, restored.view)
	}
}
