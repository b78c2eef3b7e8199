package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/derive"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/wizard"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// submitDelay simulates submission latency so the spinner is visible.
// Nothing is awaited; there is no real backend.
const submitDelay = 600 * time.Millisecond

// intakeDraft accumulates the three wizard sections.
type intakeDraft struct {
	FirstName  string
	LastName   string
	DOB        string
	Phone      string
	Medication string
	Strength   string
	Quantity   string
	Directions string
	Prescriber string
	Insurance  string
	MemberID   string
}

type intakeField struct {
	label string
	get   func(*intakeDraft) string
	set   func(*intakeDraft, string)
}

var intakeStepTitles = []string{"Patient", "Medication", "Prescriber & Insurance"}

var intakeSteps = [][]intakeField{
	{
		{"First name", func(d *intakeDraft) string { return d.FirstName }, func(d *intakeDraft, v string) { d.FirstName = v }},
		{"Last name", func(d *intakeDraft) string { return d.LastName }, func(d *intakeDraft, v string) { d.LastName = v }},
		{"Date of birth", func(d *intakeDraft) string { return d.DOB }, func(d *intakeDraft, v string) { d.DOB = v }},
		{"Phone", func(d *intakeDraft) string { return d.Phone }, func(d *intakeDraft, v string) { d.Phone = v }},
	},
	{
		{"Medication", func(d *intakeDraft) string { return d.Medication }, func(d *intakeDraft, v string) { d.Medication = v }},
		{"Strength", func(d *intakeDraft) string { return d.Strength }, func(d *intakeDraft, v string) { d.Strength = v }},
		{"Quantity", func(d *intakeDraft) string { return d.Quantity }, func(d *intakeDraft, v string) { d.Quantity = v }},
		{"Directions", func(d *intakeDraft) string { return d.Directions }, func(d *intakeDraft, v string) { d.Directions = v }},
	},
	{
		{"Prescriber", func(d *intakeDraft) string { return d.Prescriber }, func(d *intakeDraft, v string) { d.Prescriber = v }},
		{"Insurance", func(d *intakeDraft) string { return d.Insurance }, func(d *intakeDraft, v string) { d.Insurance = v }},
		{"Member ID", func(d *intakeDraft) string { return d.MemberID }, func(d *intakeDraft, v string) { d.MemberID = v }},
	},
}

// intakeRequired feeds the aggregate commit guard. Step advancement is never
// gated; only the terminal commit checks these.
func intakeRequired(d intakeDraft) []any {
	return []any{d.FirstName, d.LastName, d.Medication, d.Prescriber}
}

func intakeValid(d intakeDraft) bool {
	return derive.CompletionPercent(intakeRequired(d)) == 100
}

type intakeState struct {
	machine *wizard.Machine[intakeDraft]
	inputs  []textinput.Model
	focus   int
	// seq invalidates submit timers from closed sessions.
	seq  int
	spin spinner.Model
}

// newIntakeState opens a fresh wizard. A pre-selected patient populates only
// the patient section; everything else starts empty.
func newIntakeState(prefill *model.Patient, seq int) *intakeState {
	st := &intakeState{
		machine: wizard.New(len(intakeSteps), func() intakeDraft { return intakeDraft{} }),
		seq:     seq,
	}
	st.spin = spinner.New()
	st.spin.Spinner = spinner.Dot
	st.applyPrefill(prefill)
	return st
}

// applyPrefill re-runs the reset-on-open behavior; called again whenever the
// pre-selected patient changes while the dialog is open.
func (st *intakeState) applyPrefill(p *model.Patient) {
	if p == nil {
		st.machine.Reset(nil)
	} else {
		patient := *p
		st.machine.Reset(func(d *intakeDraft) {
			d.FirstName = patient.FirstName
			d.LastName = patient.LastName
			d.DOB = patient.DOB
			d.Phone = patient.Phone
			d.Insurance = patient.Insurance
			d.MemberID = patient.MemberID
		})
	}
	st.buildInputs()
}

// buildInputs rebuilds the text inputs for the current step, pre-filled from
// the draft.
func (st *intakeState) buildInputs() {
	fields := intakeSteps[st.machine.Step()-1]
	st.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.label
		in.CharLimit = 120
		in.Width = 36
		in.SetValue(f.get(st.machine.Draft()))
		st.inputs[i] = in
	}
	st.focus = 0
	st.inputs[0].Focus()
}

// syncDraft writes the current step's inputs back into the draft.
func (st *intakeState) syncDraft() {
	fields := intakeSteps[st.machine.Step()-1]
	for i, f := range fields {
		f.set(st.machine.Draft(), st.inputs[i].Value())
	}
}

type intakeEvent struct {
	flash       string
	beganCommit bool
}

func (st *intakeState) update(msg tea.Msg) (tea.Cmd, intakeEvent) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if st.machine.Submitting() {
			var cmd tea.Cmd
			st.spin, cmd = st.spin.Update(msg)
			return cmd, intakeEvent{}
		}
		return nil, intakeEvent{}

	case tea.KeyMsg:
		// The machine ignores transitions while submitting; swallowing keys
		// here just keeps the inputs from drifting under the spinner.
		if st.machine.Submitting() {
			return nil, intakeEvent{}
		}

		switch msg.String() {
		case "tab", "down":
			st.syncDraft()
			st.setFocus((st.focus + 1) % len(st.inputs))
			return nil, intakeEvent{}
		case "shift+tab", "up":
			st.syncDraft()
			st.setFocus((st.focus - 1 + len(st.inputs)) % len(st.inputs))
			return nil, intakeEvent{}
		case "ctrl+b":
			st.syncDraft()
			if st.machine.Retreat() {
				st.buildInputs()
			}
			return nil, intakeEvent{}
		case "enter":
			st.syncDraft()
			if st.focus < len(st.inputs)-1 {
				st.setFocus(st.focus + 1)
				return nil, intakeEvent{}
			}
			if !st.machine.OnLastStep() {
				st.machine.Advance()
				st.buildInputs()
				return nil, intakeEvent{}
			}
			if !st.machine.BeginCommit(intakeValid) {
				return nil, intakeEvent{flash: "Missing required fields: patient name, medication, prescriber"}
			}
			return st.spin.Tick, intakeEvent{beganCommit: true}
		}
	}

	var cmd tea.Cmd
	st.inputs[st.focus], cmd = st.inputs[st.focus].Update(msg)
	// Every keystroke lands in the draft, nowhere else.
	st.syncDraft()
	return cmd, intakeEvent{}
}

func (st *intakeState) setFocus(i int) {
	st.inputs[st.focus].Blur()
	st.focus = i
	st.inputs[st.focus].Focus()
}

// finish assembles the committed payload into a prescription.
func (st *intakeState) finish(db *store.DB, now time.Time) (model.Prescription, bool) {
	d, ok := st.machine.FinishCommit()
	if !ok {
		return model.Prescription{}, false
	}
	name := strings.TrimSpace(d.FirstName + " " + d.LastName)
	rx := model.Prescription{
		ID:          db.NextID(store.PrefixPrescription, now),
		PatientName: name,
		PatientDOB:  d.DOB,
		Phone:       d.Phone,
		Medication:  d.Medication,
		Strength:    d.Strength,
		Quantity:    d.Quantity,
		Directions:  d.Directions,
		Prescriber:  d.Prescriber,
		Insurance:   d.Insurance,
		MemberID:    d.MemberID,
		Status:      model.PrescriptionReadyForReview,
		Priority:    model.PriorityNormal,
		SubmittedAt: now,
	}
	st.buildInputs()
	return rx, true
}

func (st *intakeState) view(termWidth int) string {
	step := st.machine.Step()
	title := fmt.Sprintf("New prescription — step %d/%d: %s", step, st.machine.Steps(), intakeStepTitles[step-1])

	var b strings.Builder
	labelStyle := styleMuted().Width(14)
	for i, in := range st.inputs {
		b.WriteString(labelStyle.Render(intakeSteps[step-1][i].label))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	pct := derive.CompletionPercent(intakeRequired(*st.machine.Draft()))
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(fmt.Sprintf("Required fields: %d%% complete", pct)))
	b.WriteString("\n\n")

	if st.machine.Submitting() {
		b.WriteString(st.spin.View() + " Submitting…")
	} else if st.machine.OnLastStep() {
		b.WriteString(lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("enter: submit") +
			styleMuted().Render("   ctrl+b: back   esc: cancel"))
	} else {
		b.WriteString(styleMuted().Render("enter: next   ctrl+b: back   tab: field   esc: cancel"))
	}

	return renderModalBox(termWidth, title, b.String())
}
