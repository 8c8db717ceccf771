package report

import (
	"strconv"
	"time"

	"togari/internal/assessment"
)

// Placeholder strings rendered where the user left a field empty. The
// report never contains blank regions.
const (
	placeholderUnfilled   = "（未記入）"
	placeholderUnselected = "（未選択）"
	placeholderUnanswered = "（未回答）"
)

// fileName is the fixed name of the exported artifact.
const fileName = "尖診断結果.pdf"

// section is one labeled free-text block of the report.
type section struct {
	Heading string
	Body    string
}

// breakdownRow is one line of the per-question answer listing.
type breakdownRow struct {
	Label  string
	Answer string
	Yes    bool
}

// document is the complete report content, fully resolved before any
// rendering happens. Assembly is pure so the content contract can be
// tested without touching a PDF engine.
type document struct {
	Title     string
	Result    assessment.RiskResult
	Sections  []section
	Breakdown []breakdownRow
	Date      string
	Brand     string
}

func buildDocument(snapshot assessment.Snapshot, now time.Time) document {
	result := assessment.Classify(assessment.Score(snapshot.Answers))

	reflection := snapshot.Worksheet.Reflection
	if reflection == "" {
		reflection = placeholderUnfilled
	}
	role := snapshot.Worksheet.RoleChoice.Label()
	if role == "" {
		role = placeholderUnselected
	}
	actionPlan := snapshot.Worksheet.ActionPlan
	if actionPlan == "" {
		actionPlan = placeholderUnfilled
	}

	doc := document{
		Title:  "尖（とがり）診断結果",
		Result: result,
		Sections: []section{
			{Heading: "あなたの「尖」", Body: reflection},
			{Heading: "選択した役割", Body: role},
			{Heading: "3-5年の行動計画", Body: actionPlan},
		},
		Date:  now.Format("2006/01/02"),
		Brand: "kuuki.design",
	}

	for i, q := range assessment.Questions() {
		row := breakdownRow{Label: "チェック" + strconv.Itoa(i+1)}
		switch snapshot.Answers[q.ID] {
		case assessment.AnswerYes:
			row.Answer = "はい"
			row.Yes = true
		case assessment.AnswerNo:
			row.Answer = "いいえ"
		default:
			row.Answer = placeholderUnanswered
		}
		doc.Breakdown = append(doc.Breakdown, row)
	}

	return doc
}
