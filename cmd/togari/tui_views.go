package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"togari/internal/assessment"
)

func (m tuiModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	pos := m.store.Position()

	var body string
	switch pos.Step {
	case assessment.StepIntro:
		body = m.viewIntro()
	case assessment.StepAssessment:
		body = m.viewAssessment(pos)
	case assessment.StepResults:
		body = m.viewResults()
	case assessment.StepWorksheet:
		body = m.viewWorksheet(pos)
	case assessment.StepActionPlan:
		body = m.viewActionPlan(pos)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(pos),
		"",
		body,
		"",
		m.viewStatus(pos),
	)
}

// viewTabs renders the always-visible step bar. Every tab is reachable
// at any time via its number key.
func (m tuiModel) viewTabs(pos assessment.Position) string {
	tabs := make([]string, 0, assessment.StepCount)
	for step := assessment.StepIntro; step < assessment.StepCount; step++ {
		label := fmt.Sprintf("%d %s", int(step)+1, step.Title())
		if step == pos.Step {
			tabs = append(tabs, styleTabActive.Render(label))
		} else {
			tabs = append(tabs, styleTab.Render(label))
		}
	}
	return strings.Join(tabs, styleDim.Render("  |  "))
}

func (m tuiModel) viewIntro() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("尖(とがり)診断") + "\n")
	b.WriteString(styleBody.Render("AI時代を生き抜くためのセルフチェック") + "\n")
	b.WriteString(styleDim.Render("by Kuuki Design") + "\n\n")

	b.WriteString(styleBody.Render("2026年以降、AIは「チャットボット」から「自律型エージェント」へと進化します。") + "\n")
	b.WriteString(styleBody.Render("この変化の中で、あなたの仕事は「置き換えられる側」なのか、それとも「AIを指揮する側」なのか。") + "\n")
	b.WriteString(styleBody.Render("この診断では、あなたの「尖度」をチェックし、これから磨くべきスキルと方向性を見つけ出します。") + "\n\n")

	about := styleTitle.Render("この診断でわかること") + "\n" +
		"✓ あなたの業務がAIに置き換えられるリスク度\n" +
		"✓ 「舵取り」と「磨き手」、どちらを目指すべきか\n" +
		"✓ 3-5年の具体的な行動計画"
	b.WriteString(styleBox.Render(about))

	return b.String()
}

func (m tuiModel) viewAssessment(pos assessment.Position) string {
	question := m.questions[pos.Question]
	answer := m.store.Snapshot().Answers[question.ID]

	var b strings.Builder
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		styleTitle.Render("尖度セルフチェック"),
		styleDim.Render(fmt.Sprintf("  %d / %d", pos.Question+1, len(m.questions))),
	)
	b.WriteString(header + "\n\n")
	b.WriteString(styleHeading.Render(question.Title) + "\n")
	b.WriteString(styleBody.Render(question.Description) + "\n\n")

	examples := styleDim.Render("具体例:")
	for _, example := range question.Examples {
		examples += "\n• " + example
	}
	b.WriteString(styleBox.Render(examples) + "\n\n")

	yes := "  はい、当てはまります"
	no := "  いいえ、当てはまりません"
	switch answer {
	case assessment.AnswerYes:
		yes = styleSelected.Render("> はい、当てはまります")
	case assessment.AnswerNo:
		no = styleSelected.Render("> いいえ、当てはまりません")
	}
	b.WriteString(yes + "\n" + no)

	return b.String()
}

func (m tuiModel) viewResults() string {
	snapshot := m.store.Snapshot()
	result := assessment.Classify(assessment.Score(snapshot.Answers))
	tierStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(result.Color))

	var b strings.Builder
	b.WriteString(styleTitle.Render("診断結果") + "\n\n")

	scoreCard := tierStyle.Render(fmt.Sprintf("%d / %d", result.Score, assessment.QuestionCount())) + "\n" +
		tierStyle.Render(string(result.Level)) + "\n\n" +
		styleBody.Render(result.Message)
	b.WriteString(styleBoxActive.Render(scoreCard) + "\n\n")

	b.WriteString(styleHeading.Render("回答の内訳") + "\n")
	for i, q := range m.questions {
		var mark string
		switch snapshot.Answers[q.ID] {
		case assessment.AnswerYes:
			mark = styleYes.Render("はい")
		case assessment.AnswerNo:
			mark = styleNo.Render("いいえ")
		default:
			mark = styleDim.Render("未回答")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			styleDim.Render(fmt.Sprintf("チェック%d", i+1)), mark, styleBody.Render(q.Title)))
	}
	b.WriteString("\n")

	next := styleTitle.Render("次のステップ") + "\n" +
		styleBody.Render("診断結果を元に、あなたの「尖」を見つけ、行動計画を立てていきましょう。")
	b.WriteString(styleBox.Render(next))

	return b.String()
}

func (m tuiModel) viewWorksheet(pos assessment.Position) string {
	role := m.store.Snapshot().Worksheet.RoleChoice

	var b strings.Builder
	b.WriteString(styleTitle.Render("あなたの「尖」を見つける") + "\n\n")

	b.WriteString(styleHeading.Render("1. あなたの「尖」は何ですか?") + "\n")
	b.WriteString(styleDim.Render("「これなら何時間でも語れる」というテーマ、誰にも負けない独自の判断軸を書き出してください。") + "\n")
	b.WriteString(m.reflection.View() + "\n\n")

	b.WriteString(styleHeading.Render("2. 「舵取り」と「磨き手」、どちらを目指しますか?") + "\n")

	steering := "舵取り\n" + styleDim.Render("AIを指揮し、戦略を決める。複数のプロジェクトを俯瞰し、全体最適を考える。")
	polishing := "磨き手\n" + styleDim.Render("80点を100点に仕上げる。ニッチな領域をオタク的に突き詰める。")
	if role == assessment.RoleSteering {
		b.WriteString(styleBoxActive.Render(styleSelected.Render("> ")+steering) + "\n")
	} else {
		b.WriteString(styleBox.Render("  "+steering) + "\n")
	}
	if role == assessment.RolePolishing {
		b.WriteString(styleBoxActive.Render(styleSelected.Render("> ") + polishing))
	} else {
		b.WriteString(styleBox.Render("  " + polishing))
	}

	return b.String()
}

func (m tuiModel) viewActionPlan(pos assessment.Position) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("3-5年の行動計画") + "\n\n")

	intro := styleBody.Render("「尖」は一夜にして作れません。これは3-5年かけて磨いていくマラソンです。") + "\n" +
		styleBody.Render("今日から始められる具体的なアクションを書き出してください。")
	b.WriteString(styleBox.Render(intro) + "\n\n")

	b.WriteString(styleHeading.Render("あなたの行動計画") + "\n")
	b.WriteString(m.actionPlan.View() + "\n\n")

	channel := styleBody.Render("この診断が「考えの種」になったなら、ぜひRioのチャンネルもチェックしてください。") + "\n" +
		styleDim.Render("https://www.youtube.com/channel/UChXxbzzxzUHn7RRlgX0jaIQ")
	b.WriteString(styleBox.Render(channel))

	return b.String()
}

// viewStatus renders the bottom hint line plus any notice from the last
// export attempt.
func (m tuiModel) viewStatus(pos assessment.Position) string {
	var hints string
	switch pos.Step {
	case assessment.StepIntro:
		hints = "Enter: 診断を始める | 1-5: ステップ選択 | q: 終了"
	case assessment.StepAssessment:
		answered := m.store.Snapshot().Answers[m.questions[pos.Question].ID].Set()
		forward := "→/Enter: 次へ"
		if pos.Question == len(m.questions)-1 {
			forward = "→/Enter: 結果を見る"
		}
		if !answered {
			forward += " (回答が必要)"
		}
		hints = "y: はい | n: いいえ | " + forward + " | ←: 戻る | q: 終了"
	case assessment.StepResults:
		hints = "→/Enter: ワークシートへ | ←: 診断に戻る | 1-5: ステップ選択 | q: 終了"
	case assessment.StepWorksheet:
		if m.reflection.Focused() {
			hints = "Esc: 入力を確定 | Ctrl+C: 終了"
		} else {
			hints = "i: 入力 | s: 舵取り | p: 磨き手 | →/Enter: 行動計画へ | ←: 結果に戻る"
		}
	case assessment.StepActionPlan:
		if m.actionPlan.Focused() {
			hints = "Esc: 入力を確定 | Ctrl+E: PDFで保存 | Ctrl+C: 終了"
		} else {
			hints = "i: 入力 | e: PDFで保存 | r: 最初に戻る | ←: ワークシートに戻る | q: 終了"
		}
		if m.exporting {
			hints = "PDF生成中... | " + hints
		}
	}

	status := styleStatus.Render(hints) + "\n" +
		styleStatus.Render("このツールのデータはこの端末にのみ保存され、外部に送信されることはありません。")
	if m.notice != "" {
		status = m.notice + "\n" + status
	}
	return status
}
