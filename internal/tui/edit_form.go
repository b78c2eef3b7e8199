package tui

import (
	"strings"

	"github.com/antenmanuuel/pulse-rx-sub001/internal/editsession"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/model"
	"github.com/antenmanuuel/pulse-rx-sub001/internal/store"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldSpec binds one text input to one field of an edit-session draft. The
// closures call Draft() at invocation time, so they always hit the live
// working copy and never the canonical entity.
type fieldSpec struct {
	label string
	get   func() string
	set   func(string)
}

// editFormState is the shared machinery for the entity edit dialogs. The
// entity-specific part is the field list and the save closure; everything
// else (focus cycling, draft sync, rendering) is identical across entities.
type editFormState struct {
	title  string
	fields []fieldSpec
	inputs []textinput.Model
	focus  int

	// save merges the draft over the original and writes it back to the
	// store. Returns the flash text.
	save func() string
	// cancel discards the draft; the original is untouched.
	cancel func()
}

func newEditFormState(title string, fields []fieldSpec, save func() string, cancel func()) *editFormState {
	st := &editFormState{title: title, fields: fields, save: save, cancel: cancel}
	st.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.label
		in.CharLimit = 200
		in.Width = 40
		in.SetValue(f.get())
		st.inputs[i] = in
	}
	st.inputs[0].Focus()
	return st
}

// syncDraft pushes every input's current text into the draft.
func (st *editFormState) syncDraft() {
	for i, f := range st.fields {
		f.set(st.inputs[i].Value())
	}
}

// update returns the flash text when the form was saved, "" otherwise.
func (st *editFormState) update(msg tea.Msg) (tea.Cmd, string, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			st.syncDraft()
			st.setFocus((st.focus + 1) % len(st.inputs))
			return nil, "", false
		case "shift+tab", "up":
			st.syncDraft()
			st.setFocus((st.focus - 1 + len(st.inputs)) % len(st.inputs))
			return nil, "", false
		case "ctrl+s":
			st.syncDraft()
			return nil, st.save(), true
		case "enter":
			st.syncDraft()
			if st.focus < len(st.inputs)-1 {
				st.setFocus(st.focus + 1)
				return nil, "", false
			}
			return nil, st.save(), true
		}
	}

	var cmd tea.Cmd
	st.inputs[st.focus], cmd = st.inputs[st.focus].Update(msg)
	st.syncDraft()
	return cmd, "", false
}

func (st *editFormState) setFocus(i int) {
	st.inputs[st.focus].Blur()
	st.focus = i
	st.inputs[st.focus].Focus()
}

func (st *editFormState) view(termWidth int) string {
	var b strings.Builder
	labelStyle := styleMuted().Width(12)
	for i, in := range st.inputs {
		b.WriteString(labelStyle.Render(st.fields[i].label))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("ctrl+s: save   enter: next/save   esc: cancel"))
	return renderModalBox(termWidth, st.title, b.String())
}

// newEditPrescriptionForm opens an editing session over one prescription.
func newEditPrescriptionForm(db *store.DB, rx model.Prescription) *editFormState {
	s := editsession.NewSession[model.Prescription]()
	s.Load(rx)
	s.Start()

	fields := []fieldSpec{
		{"Patient", func() string { return s.Draft().PatientName }, func(v string) { s.Draft().PatientName = v }},
		{"Phone", func() string { return s.Draft().Phone }, func(v string) { s.Draft().Phone = v }},
		{"Medication", func() string { return s.Draft().Medication }, func(v string) { s.Draft().Medication = v }},
		{"Strength", func() string { return s.Draft().Strength }, func(v string) { s.Draft().Strength = v }},
		{"Quantity", func() string { return s.Draft().Quantity }, func(v string) { s.Draft().Quantity = v }},
		{"Refills", func() string { return s.Draft().Refills }, func(v string) { s.Draft().Refills = v }},
		{"Directions", func() string { return s.Draft().Directions }, func(v string) { s.Draft().Directions = v }},
		{"Prescriber", func() string { return s.Draft().Prescriber }, func(v string) { s.Draft().Prescriber = v }},
		{"Status", func() string { return string(s.Draft().Status) },
			func(v string) {
				if v = strings.TrimSpace(v); v != "" {
					s.Draft().Status = model.PrescriptionStatus(v)
				}
			}},
		{"Priority", func() string { return string(s.Draft().Priority) },
			func(v string) {
				if v = strings.TrimSpace(v); v != "" {
					s.Draft().Priority = model.Priority(v)
				}
			}},
	}

	save := func() string {
		merged, ok := s.Save()
		if !ok {
			return ""
		}
		db.ReplacePrescription(merged)
		return "Saved " + merged.ID
	}
	return newEditFormState("Edit prescription "+rx.ID, fields, save, s.Cancel)
}

// newEditDeliveryForm opens an editing session over one delivery.
func newEditDeliveryForm(db *store.DB, del model.Delivery) *editFormState {
	s := editsession.NewSession[model.Delivery]()
	s.Load(del)
	s.Start()

	fields := []fieldSpec{
		{"Patient", func() string { return s.Draft().PatientName }, func(v string) { s.Draft().PatientName = v }},
		{"Address", func() string { return s.Draft().Address }, func(v string) { s.Draft().Address = v }},
		{"Phone", func() string { return s.Draft().Phone }, func(v string) { s.Draft().Phone = v }},
		{"Items", func() string { return s.Draft().Items }, func(v string) { s.Draft().Items = v }},
		{"Window", func() string { return s.Draft().Window }, func(v string) { s.Draft().Window = v }},
		{"Notes", func() string { return s.Draft().Notes }, func(v string) { s.Draft().Notes = v }},
		{"Status", func() string { return string(s.Draft().Status) },
			func(v string) {
				if v = strings.TrimSpace(v); v != "" {
					s.Draft().Status = model.DeliveryStatus(v)
				}
			}},
	}

	save := func() string {
		merged, ok := s.Save()
		if !ok {
			return ""
		}
		db.ReplaceDelivery(merged)
		return "Saved " + merged.ID
	}
	return newEditFormState("Edit delivery "+del.ID, fields, save, s.Cancel)
}

// newEditAppointmentForm opens an editing session over one appointment.
func newEditAppointmentForm(db *store.DB, appt model.Appointment) *editFormState {
	s := editsession.NewSession[model.Appointment]()
	s.Load(appt)
	s.Start()

	fields := []fieldSpec{
		{"Patient", func() string { return s.Draft().PatientName }, func(v string) { s.Draft().PatientName = v }},
		{"Date", func() string { return s.Draft().Date }, func(v string) { s.Draft().Date = v }},
		{"Time", func() string { return s.Draft().Time }, func(v string) { s.Draft().Time = v }},
		{"Duration", func() string { return s.Draft().Duration }, func(v string) { s.Draft().Duration = v }},
		{"Type", func() string { return s.Draft().Type }, func(v string) { s.Draft().Type = v }},
		{"Provider", func() string { return s.Draft().Provider }, func(v string) { s.Draft().Provider = v }},
		{"Notes", func() string { return s.Draft().Notes }, func(v string) { s.Draft().Notes = v }},
	}

	save := func() string {
		merged, ok := s.Save()
		if !ok {
			return ""
		}
		db.ReplaceAppointment(merged)
		return "Saved " + merged.ID
	}
	return newEditFormState("Edit appointment "+appt.ID, fields, save, s.Cancel)
}
