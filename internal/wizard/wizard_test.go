package wizard

import (
	"strings"
	"testing"
)

type intakeDraft struct {
	FirstName  string
	LastName   string
	Medication string
	Strength   string
	Quantity   string
	Prescriber string
	Insurance  string
}

func newIntake() *Machine[intakeDraft] {
	return New(3, func() intakeDraft { return intakeDraft{} })
}

func TestMachine_StepBounds(t *testing.T) {
	m := newIntake()
	if m.Step() != 1 {
		t.Fatalf("initial step = %d", m.Step())
	}
	if m.Retreat() {
		t.Fatalf("retreat from step 1 should be a no-op")
	}
	if !m.Advance() || m.Step() != 2 {
		t.Fatalf("advance failed: step=%d", m.Step())
	}
	if !m.Advance() || !m.OnLastStep() {
		t.Fatalf("expected last step, step=%d", m.Step())
	}
	if m.Advance() {
		t.Fatalf("advance past last step should be a no-op")
	}
	if !m.Retreat() || m.Step() != 2 {
		t.Fatalf("retreat failed: step=%d", m.Step())
	}
}

func TestMachine_AdvanceNotGatedOnCompleteness(t *testing.T) {
	// A user can reach the final step with required fields empty; only the
	// terminal commit is guarded.
	m := newIntake()
	m.Advance()
	m.Advance()
	if !m.OnLastStep() {
		t.Fatalf("should reach last step with empty draft")
	}
	if m.BeginCommit(func(d intakeDraft) bool { return d.FirstName != "" }) {
		t.Fatalf("commit should be blocked by validity predicate")
	}
	if m.Submitting() {
		t.Fatalf("blocked commit must not enter submitting state")
	}
}

func TestMachine_CommitAssemblesAndResets(t *testing.T) {
	m := newIntake()
	m.Draft().FirstName = "John"
	m.Draft().LastName = "Smith"
	m.Advance()
	m.Draft().Medication = "Lisinopril"
	m.Draft().Strength = "10mg"
	m.Draft().Quantity = "30"
	m.Advance()
	m.Draft().Prescriber = "Dr. Johnson"
	m.Draft().Insurance = "BCBS"

	if !m.BeginCommit(nil) {
		t.Fatalf("commit should start on last step")
	}
	out, ok := m.FinishCommit()
	if !ok {
		t.Fatalf("finish should report an in-flight commit")
	}
	if out.FirstName != "John" || out.LastName != "Smith" ||
		out.Medication != "Lisinopril" || out.Strength != "10mg" || out.Quantity != "30" ||
		out.Prescriber != "Dr. Johnson" || out.Insurance != "BCBS" {
		t.Fatalf("assembled draft missing fields: %+v", out)
	}

	// Post-commit reset: empty drafts, step 1.
	if m.Step() != 1 {
		t.Fatalf("step after commit = %d, want 1", m.Step())
	}
	if *m.Draft() != (intakeDraft{}) {
		t.Fatalf("draft not cleared after commit: %+v", *m.Draft())
	}
}

func TestMachine_ReentrancyGuardWhileSubmitting(t *testing.T) {
	m := newIntake()
	m.Advance()
	m.Advance()
	if !m.BeginCommit(nil) {
		t.Fatalf("commit should start")
	}
	if m.Advance() || m.Retreat() || m.BeginCommit(nil) {
		t.Fatalf("transitions while submitting must be no-ops")
	}
	if _, ok := m.FinishCommit(); !ok {
		t.Fatalf("finish should succeed")
	}
	if _, ok := m.FinishCommit(); ok {
		t.Fatalf("double finish should be a no-op")
	}
}

func TestMachine_CommitOnlyOnLastStep(t *testing.T) {
	m := newIntake()
	if m.BeginCommit(nil) {
		t.Fatalf("commit on step 1 should be rejected")
	}
	m.Advance()
	if m.BeginCommit(nil) {
		t.Fatalf("commit on step 2 should be rejected")
	}
}

func TestMachine_ResetWithPrefill(t *testing.T) {
	m := newIntake()
	m.Draft().Medication = "left over"
	m.Advance()

	// Opening with a pre-selected patient seeds only the patient section.
	m.Reset(func(d *intakeDraft) {
		d.FirstName = "Sarah"
		d.LastName = "Chen"
	})
	if m.Step() != 1 {
		t.Fatalf("reset should return to step 1")
	}
	d := *m.Draft()
	if d.FirstName != "Sarah" || d.LastName != "Chen" {
		t.Fatalf("prefill missing: %+v", d)
	}
	if d.Medication != "" || d.Prescriber != "" {
		t.Fatalf("other sections should be empty: %+v", d)
	}

	// Re-running reset with a different patient replaces the prefill.
	m.Reset(func(d *intakeDraft) { d.FirstName = "Robert" })
	if got := m.Draft().FirstName; got != "Robert" {
		t.Fatalf("re-prefill: got %q", got)
	}
	if m.Draft().LastName != "" {
		t.Fatalf("stale prefill leaked: %q", m.Draft().LastName)
	}

	// Opening with no pre-selected entity clears everything.
	m.Reset(nil)
	if *m.Draft() != (intakeDraft{}) {
		t.Fatalf("reset(nil) should clear the draft: %+v", *m.Draft())
	}
}

func TestMachine_EmptyFuncDefaults(t *testing.T) {
	m := New(2, func() intakeDraft { return intakeDraft{Insurance: "Self Pay"} })
	if m.Draft().Insurance != "Self Pay" {
		t.Fatalf("empty defaults not applied")
	}
	m.Draft().Insurance = "BCBS"
	m.Reset(nil)
	if m.Draft().Insurance != "Self Pay" {
		t.Fatalf("reset should restore defaults, got %q", m.Draft().Insurance)
	}
	if strings.TrimSpace(m.Draft().FirstName) != "" {
		t.Fatalf("unexpected prefill")
	}
}
