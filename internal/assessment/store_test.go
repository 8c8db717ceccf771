package assessment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreSetAnswerPersistsAfterMutation(t *testing.T) {
	var saved []Snapshot
	store := NewStore(NewSnapshot(), func(s Snapshot) {
		saved = append(saved, s)
	})

	store.Apply(SetAnswer{QuestionID: "q1", Value: AnswerYes})

	require.Len(t, saved, 1)
	require.Equal(t, AnswerYes, saved[0].Answers["q1"])
	require.Equal(t, AnswerYes, store.Snapshot().Answers["q1"])
}

func TestStoreRejectsUnknownQuestionID(t *testing.T) {
	var saves int
	store := NewStore(NewSnapshot(), func(Snapshot) { saves++ })

	store.Apply(SetAnswer{QuestionID: "q99", Value: AnswerYes})

	require.Zero(t, saves, "rejected writes must not persist")
	require.NotContains(t, store.Snapshot().Answers, "q99")
}

func TestStoreWorksheetFields(t *testing.T) {
	store := NewStore(NewSnapshot(), nil)

	store.Apply(SetWorksheetField{Field: FieldReflection, Value: "レトロゲームUI"})
	store.Apply(SetWorksheetField{Field: FieldRoleChoice, Value: string(RolePolishing)})
	store.Apply(SetWorksheetField{Field: FieldActionPlan, Value: "月1本の分析記事"})

	worksheet := store.Snapshot().Worksheet
	require.Equal(t, "レトロゲームUI", worksheet.Reflection)
	require.Equal(t, RolePolishing, worksheet.RoleChoice)
	require.Equal(t, "月1本の分析記事", worksheet.ActionPlan)

	// An unrecognized role collapses to none rather than storing junk.
	store.Apply(SetWorksheetField{Field: FieldRoleChoice, Value: "captain"})
	require.Equal(t, RoleNone, store.Snapshot().Worksheet.RoleChoice)
}

func TestStoreNavigationDoesNotPersist(t *testing.T) {
	var saves int
	store := NewStore(NewSnapshot(), func(Snapshot) { saves++ })

	store.Apply(AdvanceNav{})
	store.Apply(SelectStep{Step: StepResults})
	store.Apply(RetreatNav{})
	store.Apply(ResetNav{})

	require.Zero(t, saves)
}

func TestStoreAdvanceHonorsGuard(t *testing.T) {
	store := NewStore(NewSnapshot(), nil)

	store.Apply(AdvanceNav{}) // Intro -> Assessment
	require.Equal(t, StepAssessment, store.Position().Step)

	store.Apply(AdvanceNav{}) // blocked: q1 unanswered
	require.Equal(t, Position{Step: StepAssessment, Question: 0}, store.Position())

	store.Apply(SetAnswer{QuestionID: "q1", Value: AnswerNo})
	store.Apply(AdvanceNav{})
	require.Equal(t, Position{Step: StepAssessment, Question: 1}, store.Position())
}

func TestStoreResetKeepsSessionData(t *testing.T) {
	store := NewStore(NewSnapshot(), nil)
	store.Apply(SetAnswer{QuestionID: "q1", Value: AnswerYes})
	store.Apply(SetWorksheetField{Field: FieldReflection, Value: "何時間でも語れるテーマ"})
	store.Apply(SelectStep{Step: StepActionPlan})

	store.Apply(ResetNav{})

	require.Equal(t, Position{Step: StepIntro, Question: 0}, store.Position())
	snapshot := store.Snapshot()
	require.Equal(t, AnswerYes, snapshot.Answers["q1"])
	require.Equal(t, "何時間でも語れるテーマ", snapshot.Worksheet.Reflection)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := NewStore(NewSnapshot(), nil)
	store.Apply(SetAnswer{QuestionID: "q1", Value: AnswerYes})

	snapshot := store.Snapshot()
	snapshot.Answers["q1"] = AnswerNo
	snapshot.Worksheet.Reflection = "mutated"

	require.Equal(t, AnswerYes, store.Snapshot().Answers["q1"])
	require.Empty(t, store.Snapshot().Worksheet.Reflection)
}
