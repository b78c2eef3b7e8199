// Package wizard implements the draft/commit state machine behind multi-step
// intake dialogs. A Machine accumulates one draft across an ordered sequence
// of steps and hands the assembled draft out exactly once, on commit.
package wizard

// Machine holds the step cursor and the draft for one wizard session.
// D is the draft shape (typically a struct with one group of fields per step).
//
// Transitions are plain method calls returning whether anything changed;
// rendering is the caller's concern. While a commit is in flight every
// transition is a no-op, so a re-entrant call during the submit delay cannot
// corrupt the draft.
type Machine[D any] struct {
	steps      int
	step       int
	draft      D
	empty      func() D
	submitting bool
}

// New returns a machine on step 1 with an empty draft.
// empty must return the draft's zero/default value; it is re-invoked on every
// reset so prefills never leak between sessions.
func New[D any](steps int, empty func() D) *Machine[D] {
	if steps < 1 {
		steps = 1
	}
	if empty == nil {
		empty = func() D { var d D; return d }
	}
	return &Machine[D]{steps: steps, step: 1, draft: empty(), empty: empty}
}

func (m *Machine[D]) Step() int  { return m.step }
func (m *Machine[D]) Steps() int { return m.steps }

// Draft exposes the mutable draft. Field edits go straight to the draft;
// nothing is visible outside the machine until commit.
func (m *Machine[D]) Draft() *D { return &m.draft }

func (m *Machine[D]) Submitting() bool { return m.submitting }

// OnLastStep reports whether commit is available.
func (m *Machine[D]) OnLastStep() bool { return m.step == m.steps }

// Advance moves to the next step. There is deliberately no per-step
// validation gate; only the terminal commit is guarded.
func (m *Machine[D]) Advance() bool {
	if m.submitting || m.step >= m.steps {
		return false
	}
	m.step++
	return true
}

// Retreat moves to the previous step.
func (m *Machine[D]) Retreat() bool {
	if m.submitting || m.step <= 1 {
		return false
	}
	m.step--
	return true
}

// BeginCommit starts a commit. It only succeeds on the terminal step when no
// commit is already in flight and valid(draft) passes; valid == nil means
// unconditionally valid.
func (m *Machine[D]) BeginCommit(valid func(D) bool) bool {
	if m.submitting || m.step != m.steps {
		return false
	}
	if valid != nil && !valid(m.draft) {
		return false
	}
	m.submitting = true
	return true
}

// FinishCommit ends an in-flight commit, returning the assembled draft and
// resetting the machine (empty draft, step 1). Returns ok=false when no
// commit was in flight.
func (m *Machine[D]) FinishCommit() (D, bool) {
	if !m.submitting {
		var zero D
		return zero, false
	}
	out := m.draft
	m.submitting = false
	m.draft = m.empty()
	m.step = 1
	return out, true
}

// Reset clears the machine for a fresh session: empty draft, step 1, no
// in-flight commit. prefill, when non-nil, seeds part of the fresh draft
// (e.g. a pre-selected patient populating only the patient section).
// Callers re-run Reset whenever the pre-selected entity changes while open.
func (m *Machine[D]) Reset(prefill func(*D)) {
	m.submitting = false
	m.step = 1
	m.draft = m.empty()
	if prefill != nil {
		prefill(&m.draft)
	}
}
