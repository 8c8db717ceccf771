package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"togari/internal/assessment"
	"togari/internal/report"
)

func newTestModel(t *testing.T) tuiModel {
	t.Helper()
	store := assessment.NewStore(assessment.NewSnapshot(), nil)
	m := newTUIModel(store, report.NewExporter(t.TempDir(), ""))
	m.ready = true
	m.width = 100
	m.height = 40
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m tuiModel, msg tea.Msg) (tuiModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(tuiModel)
	require.True(t, ok)
	return next, cmd
}

func TestAnswerKeysRecordAnswers(t *testing.T) {
	m := newTestModel(t)
	m.store.Apply(assessment.SelectStep{Step: assessment.StepAssessment})

	m, _ = update(t, m, keyRune('y'))
	require.Equal(t, assessment.AnswerYes, m.store.Snapshot().Answers["q1"])

	m, _ = update(t, m, keyRune('n'))
	require.Equal(t, assessment.AnswerNo, m.store.Snapshot().Answers["q1"])
}

func TestForwardBlockedUntilAnswered(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, assessment.StepAssessment, m.store.Position().Step)

	// Unanswered: enter is silently suppressed.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, assessment.Position{Step: assessment.StepAssessment, Question: 0}, m.store.Position())

	m, _ = update(t, m, keyRune('y'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, assessment.Position{Step: assessment.StepAssessment, Question: 1}, m.store.Position())
}

func TestDirectStepSelectionWithoutAnswers(t *testing.T) {
	m := newTestModel(t)

	// Jumping straight to the results with nothing answered must render
	// the zero-score view, not fail.
	m, _ = update(t, m, keyRune('3'))
	require.Equal(t, assessment.StepResults, m.store.Position().Step)
	view := m.View()
	require.Contains(t, view, "0 / 3")
	require.Contains(t, view, string(assessment.LevelLow))
}

func TestEveryStepRenders(t *testing.T) {
	m := newTestModel(t)
	for step := assessment.StepIntro; step < assessment.StepCount; step++ {
		m.store.Apply(assessment.SelectStep{Step: step})
		require.NotEmpty(t, m.View())
	}
}

func TestExportSingleFlight(t *testing.T) {
	m := newTestModel(t)
	m.store.Apply(assessment.SelectStep{Step: assessment.StepActionPlan})

	m, cmd := update(t, m, keyRune('e'))
	require.NotNil(t, cmd, "first trigger dispatches the export command")
	require.True(t, m.exporting)

	// A second trigger while in flight is ignored, not queued.
	m, cmd = update(t, m, keyRune('e'))
	require.Nil(t, cmd)
	require.True(t, m.exporting)
}

func TestExportOutcomeClearsBusyFlag(t *testing.T) {
	m := newTestModel(t)
	m.exporting = true

	done, _ := update(t, m, exportDoneMsg{path: "/tmp/report.pdf"})
	require.False(t, done.exporting)
	require.Contains(t, done.notice, "/tmp/report.pdf")

	m.exporting = true
	failed, _ := update(t, m, exportErrMsg{err: errors.New("no font")})
	require.False(t, failed.exporting)
	require.Contains(t, failed.notice, "no font")
}

func TestExportIgnoredOutsideActionPlan(t *testing.T) {
	m := newTestModel(t)
	m.store.Apply(assessment.SelectStep{Step: assessment.StepResults})

	m, cmd := update(t, m, keyRune('e'))
	require.Nil(t, cmd)
	require.False(t, m.exporting)
}

func TestResetReturnsToIntroKeepingData(t *testing.T) {
	m := newTestModel(t)
	m.store.Apply(assessment.SetAnswer{QuestionID: "q1", Value: assessment.AnswerYes})
	m.store.Apply(assessment.SelectStep{Step: assessment.StepActionPlan})

	m, _ = update(t, m, keyRune('r'))
	require.Equal(t, assessment.Position{Step: assessment.StepIntro, Question: 0}, m.store.Position())
	require.Equal(t, assessment.AnswerYes, m.store.Snapshot().Answers["q1"])
}

func TestNavigationCommitsTextareaEdits(t *testing.T) {
	m := newTestModel(t)
	m.store.Apply(assessment.SelectStep{Step: assessment.StepWorksheet})
	m.reflection.SetValue("誰にも負けない判断軸")

	// Leaving the step flushes the widget into the store.
	m, _ = update(t, m, keyRune('5'))
	require.Equal(t, "誰にも負けない判断軸", m.store.Snapshot().Worksheet.Reflection)
}

func TestRoleChoiceKeys(t *testing.T) {
	m := newTestModel(t)
	m.store.Apply(assessment.SelectStep{Step: assessment.StepWorksheet})

	m, _ = update(t, m, keyRune('s'))
	require.Equal(t, assessment.RoleSteering, m.store.Snapshot().Worksheet.RoleChoice)

	m, _ = update(t, m, keyRune('p'))
	require.Equal(t, assessment.RolePolishing, m.store.Snapshot().Worksheet.RoleChoice)
}
