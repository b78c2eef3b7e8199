// Package editsession implements the snapshot/edit/merge controller used by
// detail dialogs: view an entity read-only, edit a working copy, then either
// replace the original atomically or discard the copy.
package editsession

// Mode is the controller state.
type Mode int

const (
	Viewing Mode = iota
	Editing
)

// Session wraps one entity of flat-record type T. Entities here are flat
// structs, so a plain value copy is a complete snapshot: cloning on Start and
// mutating only the clone gives save-time "draft fields win, untouched fields
// keep their original values" for free.
type Session[T any] struct {
	mode    Mode
	entity  T
	present bool
	draft   T
}

// NewSession starts in Viewing with no entity loaded.
func NewSession[T any]() *Session[T] { return &Session[T]{} }

// Load replaces the viewed entity and drops any in-progress draft.
func (s *Session[T]) Load(entity T) {
	s.entity = entity
	s.present = true
	s.mode = Viewing
	var zero T
	s.draft = zero
}

// Clear unloads the entity (e.g. the dialog closed).
func (s *Session[T]) Clear() {
	var zero T
	*s = Session[T]{entity: zero}
}

func (s *Session[T]) Mode() Mode { return s.mode }

// Entity returns the canonical value being viewed.
func (s *Session[T]) Entity() (T, bool) { return s.entity, s.present }

// Start clones the entity into the draft and enters Editing.
// No-op when no entity is loaded or already editing.
func (s *Session[T]) Start() bool {
	if !s.present || s.mode == Editing {
		return false
	}
	s.draft = s.entity
	s.mode = Editing
	return true
}

// Draft exposes the mutable working copy. Nil outside Editing, so a stray
// keystroke can never reach the original.
func (s *Session[T]) Draft() *T {
	if s.mode != Editing {
		return nil
	}
	return &s.draft
}

// Save replaces the entity with the draft, returns the merged value and goes
// back to Viewing. ok=false when not editing.
func (s *Session[T]) Save() (T, bool) {
	if s.mode != Editing {
		var zero T
		return zero, false
	}
	s.entity = s.draft
	s.mode = Viewing
	var zero T
	s.draft = zero
	return s.entity, true
}

// Cancel discards the draft unconditionally and returns to Viewing.
// The viewed entity is untouched.
func (s *Session[T]) Cancel() {
	if s.mode != Editing {
		return
	}
	var zero T
	s.draft = zero
	s.mode = Viewing
}
