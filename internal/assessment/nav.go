package assessment

// Step is one of the fixed assessment stages.
type Step int

const (
	StepIntro Step = iota
	StepAssessment
	StepResults
	StepWorksheet
	StepActionPlan
)

// StepCount is the number of stages in the flow.
const StepCount = 5

// Title returns the tab label for the step.
func (s Step) Title() string {
	switch s {
	case StepIntro:
		return "イントロ"
	case StepAssessment:
		return "尖度セルフチェック"
	case StepResults:
		return "診断結果"
	case StepWorksheet:
		return "ワークシート"
	case StepActionPlan:
		return "行動計画"
	default:
		return ""
	}
}

// Position is the navigator state: the current step plus the question
// index, which is meaningful only while Step == StepAssessment.
type Position struct {
	Step     Step
	Question int
}

// Advance moves forward one position. Inside the assessment the move is
// guarded: it fires only when the current question has an answer, and
// returns the position unchanged otherwise. No other forward move is
// guarded. ActionPlan is the last step, so Advance there is a no-op.
func Advance(pos Position, answers Answers) Position {
	switch pos.Step {
	case StepIntro:
		return Position{Step: StepAssessment, Question: pos.Question}
	case StepAssessment:
		if !answers[questionBank[pos.Question].ID].Set() {
			return pos
		}
		if pos.Question < len(questionBank)-1 {
			return Position{Step: StepAssessment, Question: pos.Question + 1}
		}
		return Position{Step: StepResults, Question: pos.Question}
	case StepResults:
		return Position{Step: StepWorksheet, Question: pos.Question}
	case StepWorksheet:
		return Position{Step: StepActionPlan, Question: pos.Question}
	default:
		return pos
	}
}

// Retreat moves backward one position, never guarded. Backing out of
// the first question exits the assessment to the intro; backing into
// the assessment from the results lands on the last question.
func Retreat(pos Position) Position {
	switch pos.Step {
	case StepAssessment:
		if pos.Question == 0 {
			return Position{Step: StepIntro}
		}
		return Position{Step: StepAssessment, Question: pos.Question - 1}
	case StepResults:
		return Position{Step: StepAssessment, Question: len(questionBank) - 1}
	case StepWorksheet:
		return Position{Step: StepResults, Question: pos.Question}
	case StepActionPlan:
		return Position{Step: StepWorksheet, Question: pos.Question}
	default:
		return pos
	}
}

// Select jumps straight to a step regardless of completion state (the
// tab bar semantics). Out-of-range steps are ignored.
func Select(pos Position, step Step) Position {
	if step < StepIntro || step >= StepCount {
		return pos
	}
	return Position{Step: step, Question: pos.Question}
}

// ResetPosition returns to the intro with the question index cleared.
// Stored answers and worksheet data are untouched by navigation.
func ResetPosition() Position {
	return Position{Step: StepIntro, Question: 0}
}
