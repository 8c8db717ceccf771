package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreCountsAffirmativeAnswers(t *testing.T) {
	require.Equal(t, 0, Score(Answers{}))
	require.Equal(t, 2, Score(Answers{"q1": AnswerYes, "q2": AnswerNo, "q3": AnswerYes}))
	require.Equal(t, 3, Score(Answers{"q1": AnswerYes, "q2": AnswerYes, "q3": AnswerYes}))

	// Unset answers contribute nothing.
	require.Equal(t, 1, Score(Answers{"q2": AnswerYes}))
}

func TestScoreIsOrderIndependent(t *testing.T) {
	// Maps have no order, but make the property explicit: the same
	// assignment built in different orders scores identically.
	a := Answers{}
	a["q1"] = AnswerYes
	a["q3"] = AnswerYes
	b := Answers{}
	b["q3"] = AnswerYes
	b["q1"] = AnswerYes
	require.Equal(t, Score(a), Score(b))
}

func TestScoreIgnoresUnknownIDs(t *testing.T) {
	require.Equal(t, 1, Score(Answers{"q1": AnswerYes, "q99": AnswerYes}))
}

func TestClassifyIsTotalAndMonotonic(t *testing.T) {
	previous := -1
	for score := 0; score <= QuestionCount(); score++ {
		result := Classify(score)
		require.Equal(t, score, result.Score)
		require.NotEmpty(t, result.Level)
		require.NotEmpty(t, result.Color)
		require.NotEmpty(t, result.Message)
		require.Greater(t, result.Level.Severity(), previous,
			"severity must strictly increase with score")
		previous = result.Level.Severity()
	}
}

func TestClassifyTiers(t *testing.T) {
	require.Equal(t, LevelLow, Classify(0).Level)
	require.Equal(t, LevelMid, Classify(1).Level)
	require.Equal(t, LevelHigh, Classify(2).Level)
	require.Equal(t, LevelMaximum, Classify(3).Level)
}

func TestClassifyPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { Classify(-1) })
	require.Panics(t, func() { Classify(QuestionCount() + 1) })
}
