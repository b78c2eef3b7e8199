package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// actionField describes one input of a small single-purpose dialog
// (reorder quantity, reschedule date, compose message, new user).
type actionField struct {
	label       string
	initial     string
	placeholder string
	secret      bool
}

// actionState is a flat labeled form. Unlike the edit forms there is no
// entity session behind it; the collected values are handed to a mutate
// call when the form is submitted.
type actionState struct {
	kind   modalKind
	title  string
	fields []actionField
	inputs []textinput.Model
	focus  int
}

func newActionState(kind modalKind, title string, fields []actionField) *actionState {
	st := &actionState{kind: kind, title: title, fields: fields}
	st.inputs = make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		if in.Placeholder == "" {
			in.Placeholder = f.label
		}
		in.CharLimit = 200
		in.Width = 36
		in.SetValue(f.initial)
		if f.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '•'
		}
		st.inputs[i] = in
	}
	st.inputs[0].Focus()
	return st
}

func (st *actionState) values() []string {
	out := make([]string, len(st.inputs))
	for i := range st.inputs {
		out[i] = strings.TrimSpace(st.inputs[i].Value())
	}
	return out
}

// update reports submitted=true when the user confirmed the form; the caller
// reads values() and performs the mutation.
func (st *actionState) update(msg tea.Msg) (tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			st.setFocus((st.focus + 1) % len(st.inputs))
			return nil, false
		case "shift+tab", "up":
			st.setFocus((st.focus - 1 + len(st.inputs)) % len(st.inputs))
			return nil, false
		case "enter":
			if st.focus < len(st.inputs)-1 {
				st.setFocus(st.focus + 1)
				return nil, false
			}
			return nil, true
		}
	}

	var cmd tea.Cmd
	st.inputs[st.focus], cmd = st.inputs[st.focus].Update(msg)
	return cmd, false
}

func (st *actionState) setFocus(i int) {
	st.inputs[st.focus].Blur()
	st.focus = i
	st.inputs[st.focus].Focus()
}

func (st *actionState) view(termWidth int) string {
	var b strings.Builder
	labelStyle := styleMuted().Width(12)
	for i, in := range st.inputs {
		b.WriteString(labelStyle.Render(st.fields[i].label))
		b.WriteString(" ")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleMuted().Render("enter: confirm   tab: field   esc: cancel"))
	return renderModalBox(termWidth, st.title, b.String())
}
