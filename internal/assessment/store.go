package assessment

import (
	"sync"

	"togari/internal/utils"
)

// Store maintains the mutable session state behind the TUI: the
// answers, the worksheet, and the navigation position. All mutation
// goes through Apply so the transition guards live in one place.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	pos      Position
	onSave   func(Snapshot)
	logger   *utils.Logger
}

// NewStore creates a store seeded with the given snapshot (typically
// loaded from disk). onSave, when non-nil, runs synchronously after
// every data mutation with a copy of the new snapshot; navigation-only
// updates do not trigger it.
func NewStore(initial Snapshot, onSave func(Snapshot)) *Store {
	if initial.Answers == nil {
		initial.Answers = make(Answers, QuestionCount())
	}
	return &Store{
		snapshot: initial.Clone(),
		pos:      ResetPosition(),
		onSave:   onSave,
		logger:   utils.NewComponentLogger("AssessmentStore"),
	}
}

// Update represents a mutation applied to the Store. apply reports
// whether session data (as opposed to navigation) changed.
type Update interface {
	apply(store *Store) bool
}

// Apply mutates the store and persists the snapshot if data changed.
// The save hook runs under the store lock, so a reader can never
// observe a mutation that has not been handed to the persistence layer.
func (s *Store) Apply(update Update) {
	if update == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if update.apply(s) && s.onSave != nil {
		s.onSave(s.snapshot.Clone())
	}
}

// Snapshot returns a deep copy of the current session data.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Clone()
}

// Position returns the current navigation position.
func (s *Store) Position() Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pos
}

// SetAnswer records a yes/no answer for a question. Unknown question
// ids are dropped: the answer set may never contain a key outside the
// bank.
type SetAnswer struct {
	QuestionID string
	Value      Answer
}

func (u SetAnswer) apply(store *Store) bool {
	if !knownQuestionID(u.QuestionID) {
		store.logger.Warn("Dropping answer for unknown question id %q", u.QuestionID)
		return false
	}
	if u.Value != AnswerYes && u.Value != AnswerNo && u.Value != AnswerUnset {
		store.logger.Warn("Dropping malformed answer %q for question %q", u.Value, u.QuestionID)
		return false
	}
	store.snapshot.Answers[u.QuestionID] = u.Value
	return true
}

// SetWorksheetField overwrites one worksheet field. Any string is
// accepted for the free-text fields; an unrecognized role collapses to
// RoleNone.
type SetWorksheetField struct {
	Field WorksheetField
	Value string
}

func (u SetWorksheetField) apply(store *Store) bool {
	switch u.Field {
	case FieldReflection:
		store.snapshot.Worksheet.Reflection = u.Value
	case FieldRoleChoice:
		role := Role(u.Value)
		if role != RoleSteering && role != RolePolishing {
			role = RoleNone
		}
		store.snapshot.Worksheet.RoleChoice = role
	case FieldActionPlan:
		store.snapshot.Worksheet.ActionPlan = u.Value
	default:
		store.logger.Warn("Dropping write to unknown worksheet field %q", u.Field)
		return false
	}
	return true
}

// AdvanceNav moves forward, honoring the answer guard.
type AdvanceNav struct{}

func (AdvanceNav) apply(store *Store) bool {
	store.pos = Advance(store.pos, store.snapshot.Answers)
	return false
}

// RetreatNav moves backward one position.
type RetreatNav struct{}

func (RetreatNav) apply(store *Store) bool {
	store.pos = Retreat(store.pos)
	return false
}

// SelectStep jumps to a step unconditionally.
type SelectStep struct {
	Step Step
}

func (u SelectStep) apply(store *Store) bool {
	store.pos = Select(store.pos, u.Step)
	return false
}

// ResetNav returns navigation to the intro. Answers and worksheet data
// survive until overwritten.
type ResetNav struct{}

func (ResetNav) apply(store *Store) bool {
	store.pos = ResetPosition()
	return false
}
