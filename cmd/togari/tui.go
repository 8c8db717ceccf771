package main

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"togari/internal/assessment"
	"togari/internal/report"
)

// TUI model following Bubble Tea's Elm architecture. All session state
// lives in the central store; the model only holds widget state and the
// export in-flight flag.
type tuiModel struct {
	store     *assessment.Store
	questions []assessment.Question
	exporter  *report.Exporter

	reflection textarea.Model
	actionPlan textarea.Model

	exporting bool
	notice    string
	width     int
	height    int
	ready     bool
}

// Messages for Bubble Tea
type (
	exportDoneMsg struct {
		path string
	}
	exportErrMsg struct {
		err error
	}
)

func newTUIModel(store *assessment.Store, exporter *report.Exporter) tuiModel {
	snapshot := store.Snapshot()

	reflection := textarea.New()
	reflection.Placeholder = "例:昭和のレトロゲームUIデザインの原則を体系化し、現代のプロダクトに応用すること"
	reflection.CharLimit = 2000
	reflection.SetHeight(5)
	reflection.ShowLineNumbers = false
	reflection.SetValue(snapshot.Worksheet.Reflection)

	actionPlan := textarea.New()
	actionPlan.Placeholder = "例:\n1年目:レトロゲームUIの体系的な研究を開始。月1本の分析記事を書く\n2年目:AIツールを使って実際のプロダクトに応用。ポートフォリオを作る\n3年目:この分野での第一人者として認知されるよう、発信を強化"
	actionPlan.CharLimit = 4000
	actionPlan.SetHeight(8)
	actionPlan.ShowLineNumbers = false
	actionPlan.SetValue(snapshot.Worksheet.ActionPlan)

	return tuiModel{
		store:      store,
		questions:  assessment.Questions(),
		exporter:   exporter,
		reflection: reflection,
		actionPlan: actionPlan,
	}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.reflection.SetWidth(msg.Width - 8)
		m.actionPlan.SetWidth(msg.Width - 8)
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		m.notice = "PDFを保存しました: " + msg.path
		return m, nil

	case exportErrMsg:
		m.exporting = false
		m.notice = styleError.Render("PDFの生成に失敗しました: " + msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pos := m.store.Position()

	// While a textarea is focused it owns the keyboard, except for the
	// few chords below.
	if ta := m.focusedTextarea(pos); ta != nil {
		switch msg.String() {
		case "ctrl+c":
			m.commitText(pos)
			return m, tea.Quit
		case "esc":
			m.commitText(pos)
			ta.Blur()
			return m, nil
		case "ctrl+e":
			if pos.Step == assessment.StepActionPlan {
				return m.startExport()
			}
		}
		var cmd tea.Cmd
		*ta, cmd = ta.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "1", "2", "3", "4", "5":
		step := assessment.Step(int(msg.String()[0] - '1'))
		m.store.Apply(assessment.SelectStep{Step: step})
		return m.enterStep()

	case "enter", "right", "l":
		m.store.Apply(assessment.AdvanceNav{})
		return m.enterStep()

	case "left", "h", "b":
		m.store.Apply(assessment.RetreatNav{})
		return m.enterStep()

	case "y":
		if pos.Step == assessment.StepAssessment {
			m.store.Apply(assessment.SetAnswer{
				QuestionID: m.questions[pos.Question].ID,
				Value:      assessment.AnswerYes,
			})
		}
		return m, nil

	case "n":
		if pos.Step == assessment.StepAssessment {
			m.store.Apply(assessment.SetAnswer{
				QuestionID: m.questions[pos.Question].ID,
				Value:      assessment.AnswerNo,
			})
		}
		return m, nil

	case "s":
		if pos.Step == assessment.StepWorksheet {
			m.store.Apply(assessment.SetWorksheetField{
				Field: assessment.FieldRoleChoice,
				Value: string(assessment.RoleSteering),
			})
		}
		return m, nil

	case "p":
		if pos.Step == assessment.StepWorksheet {
			m.store.Apply(assessment.SetWorksheetField{
				Field: assessment.FieldRoleChoice,
				Value: string(assessment.RolePolishing),
			})
		}
		return m, nil

	case "i":
		// Re-enter the textarea on the text steps.
		switch pos.Step {
		case assessment.StepWorksheet:
			return m, m.reflection.Focus()
		case assessment.StepActionPlan:
			return m, m.actionPlan.Focus()
		}
		return m, nil

	case "e", "ctrl+e":
		if pos.Step == assessment.StepActionPlan {
			return m.startExport()
		}
		return m, nil

	case "r", "ctrl+r":
		if pos.Step == assessment.StepActionPlan {
			m.commitText(pos)
			m.store.Apply(assessment.ResetNav{})
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// enterStep runs after any navigation: it commits pending textarea
// edits from the step being left and focuses the textarea of the step
// being entered.
func (m tuiModel) enterStep() (tea.Model, tea.Cmd) {
	m.commitAllText()
	switch m.store.Position().Step {
	case assessment.StepWorksheet:
		m.actionPlan.Blur()
		return m, m.reflection.Focus()
	case assessment.StepActionPlan:
		m.reflection.Blur()
		return m, m.actionPlan.Focus()
	default:
		m.reflection.Blur()
		m.actionPlan.Blur()
		return m, nil
	}
}

// startExport dispatches the export command unless one is already in
// flight; concurrent requests are ignored, not queued.
func (m tuiModel) startExport() (tea.Model, tea.Cmd) {
	if m.exporting {
		return m, nil
	}
	m.commitAllText()
	m.exporting = true
	m.notice = "PDF生成中..."

	// Snapshot taken here, before the command runs: the export must not
	// observe edits made while it is in flight.
	snapshot := m.store.Snapshot()
	exporter := m.exporter
	return m, func() tea.Msg {
		path, err := exporter.Export(snapshot)
		if err != nil {
			return exportErrMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *tuiModel) focusedTextarea(pos assessment.Position) *textarea.Model {
	switch {
	case pos.Step == assessment.StepWorksheet && m.reflection.Focused():
		return &m.reflection
	case pos.Step == assessment.StepActionPlan && m.actionPlan.Focused():
		return &m.actionPlan
	default:
		return nil
	}
}

// commitText writes the current step's textarea content to the store.
func (m *tuiModel) commitText(pos assessment.Position) {
	switch pos.Step {
	case assessment.StepWorksheet:
		m.store.Apply(assessment.SetWorksheetField{
			Field: assessment.FieldReflection,
			Value: m.reflection.Value(),
		})
	case assessment.StepActionPlan:
		m.store.Apply(assessment.SetWorksheetField{
			Field: assessment.FieldActionPlan,
			Value: m.actionPlan.Value(),
		})
	}
}

// commitAllText flushes both textareas, used on navigation and before
// export so the store never lags behind the widgets. Unchanged values
// are skipped to avoid redundant persistence writes.
func (m *tuiModel) commitAllText() {
	current := m.store.Snapshot().Worksheet
	if value := m.reflection.Value(); value != current.Reflection {
		m.store.Apply(assessment.SetWorksheetField{
			Field: assessment.FieldReflection,
			Value: value,
		})
	}
	if value := m.actionPlan.Value(); value != current.ActionPlan {
		m.store.Apply(assessment.SetWorksheetField{
			Field: assessment.FieldActionPlan,
			Value: value,
		})
	}
}

// RunTUI starts the Bubble Tea program.
func RunTUI(store *assessment.Store, exporter *report.Exporter) error {
	p := tea.NewProgram(
		newTUIModel(store, exporter),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
