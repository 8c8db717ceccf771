package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAdvanceFromIntroIsUnconditional(t *testing.T) {
	pos := Advance(Position{Step: StepIntro}, Answers{})
	require.Equal(t, StepAssessment, pos.Step)
	require.Equal(t, 0, pos.Question)
}

func TestAdvanceWithinAssessmentRequiresAnswer(t *testing.T) {
	pos := Position{Step: StepAssessment, Question: 0}

	// Unanswered: the move is suppressed, not an error.
	require.Equal(t, pos, Advance(pos, Answers{}))

	// Either answer satisfies the guard.
	next := Advance(pos, Answers{"q1": AnswerNo})
	require.Equal(t, Position{Step: StepAssessment, Question: 1}, next)

	// Re-answering keeps the guard satisfied.
	next = Advance(pos, Answers{"q1": AnswerYes})
	require.Equal(t, Position{Step: StepAssessment, Question: 1}, next)
}

func TestAdvanceFromLastQuestionToResults(t *testing.T) {
	last := QuestionCount() - 1
	pos := Position{Step: StepAssessment, Question: last}

	require.Equal(t, pos, Advance(pos, Answers{}), "guard applies to the last question too")

	next := Advance(pos, Answers{"q3": AnswerYes})
	require.Equal(t, StepResults, next.Step)
}

func TestRetreatIsNeverGuarded(t *testing.T) {
	// Backing out of the first question exits to the intro.
	pos := Retreat(Position{Step: StepAssessment, Question: 0})
	require.Equal(t, StepIntro, pos.Step)

	// Later questions only decrement.
	pos = Retreat(Position{Step: StepAssessment, Question: 2})
	require.Equal(t, Position{Step: StepAssessment, Question: 1}, pos)

	// Results drops back onto the last question.
	pos = Retreat(Position{Step: StepResults})
	require.Equal(t, Position{Step: StepAssessment, Question: QuestionCount() - 1}, pos)

	pos = Retreat(Position{Step: StepWorksheet})
	require.Equal(t, StepResults, pos.Step)

	pos = Retreat(Position{Step: StepActionPlan})
	require.Equal(t, StepWorksheet, pos.Step)

	// Intro is the floor.
	pos = Retreat(Position{Step: StepIntro})
	require.Equal(t, StepIntro, pos.Step)
}

func TestSelectJumpsAnywhereUnconditionally(t *testing.T) {
	pos := Position{Step: StepIntro}
	for step := StepIntro; step < StepCount; step++ {
		selected := Select(pos, step)
		require.Equal(t, step, selected.Step)
	}

	// Out-of-range steps are ignored.
	require.Equal(t, pos, Select(pos, Step(99)))
	require.Equal(t, pos, Select(pos, Step(-1)))
}

func TestResultsWithNoAnswersScoresZero(t *testing.T) {
	// Jumping straight to the results must be safe: the derived result
	// is simply the lowest tier.
	pos := Select(Position{}, StepResults)
	require.Equal(t, StepResults, pos.Step)

	result := Classify(Score(Answers{}))
	require.Equal(t, 0, result.Score)
	require.Equal(t, LevelLow, result.Level)
}

func TestResetPositionKeepsNothing(t *testing.T) {
	require.Equal(t, Position{Step: StepIntro, Question: 0}, ResetPosition())
}
