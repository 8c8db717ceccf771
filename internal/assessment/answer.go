package assessment

// Answer is a single yes/no response. The zero value means unset.
type Answer string

const (
	AnswerUnset Answer = ""
	AnswerYes   Answer = "yes"
	AnswerNo    Answer = "no"
)

// Set reports whether the answer has been given either way.
func (a Answer) Set() bool {
	return a == AnswerYes || a == AnswerNo
}

// Answers maps question id to the recorded answer. Missing keys are
// treated as unset.
type Answers map[string]Answer

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// Role is the worksheet's role choice.
type Role string

const (
	RoleNone      Role = ""
	RoleSteering  Role = "steering"
	RolePolishing Role = "polishing"
)

// Label returns the display name for the role, or empty for RoleNone.
func (r Role) Label() string {
	switch r {
	case RoleSteering:
		return "舵取り"
	case RolePolishing:
		return "磨き手"
	default:
		return ""
	}
}

// WorksheetData holds the free-form reflection fields. All fields are
// freely overwritable; empty strings are valid.
type WorksheetData struct {
	Reflection string `json:"reflection"`
	RoleChoice Role   `json:"roleChoice"`
	ActionPlan string `json:"actionPlan"`
}

// WorksheetField names a single worksheet field for targeted updates.
type WorksheetField string

const (
	FieldReflection WorksheetField = "reflection"
	FieldRoleChoice WorksheetField = "roleChoice"
	FieldActionPlan WorksheetField = "actionPlan"
)

// Snapshot is the complete persisted and exported state of a session:
// every answer plus the worksheet. It is always passed by value and
// deep-copied out of the store, so holders never observe later edits.
type Snapshot struct {
	Answers   Answers
	Worksheet WorksheetData
}

// NewSnapshot returns an empty snapshot with all questions unset.
func NewSnapshot() Snapshot {
	return Snapshot{Answers: make(Answers, QuestionCount())}
}

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{Answers: s.Answers.Clone(), Worksheet: s.Worksheet}
}
