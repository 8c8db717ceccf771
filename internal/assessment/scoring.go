package assessment

import "fmt"

// Level is a named risk tier ordered by severity.
type Level string

const (
	LevelLow     Level = "低リスク"
	LevelMid     Level = "中リスク"
	LevelHigh    Level = "高リスク"
	LevelMaximum Level = "最高リスク"
)

// Severity returns the tier's position in the severity order, starting
// at 0 for the lowest tier.
func (l Level) Severity() int {
	switch l {
	case LevelLow:
		return 0
	case LevelMid:
		return 1
	case LevelHigh:
		return 2
	case LevelMaximum:
		return 3
	default:
		return -1
	}
}

// RiskResult is the derived outcome of an assessment. It is recomputed
// from answers on demand and never stored.
type RiskResult struct {
	Score   int
	Level   Level
	Color   string
	Message string
}

// riskTiers is the fixed score→tier lookup, one entry per possible
// score 0..QuestionCount.
var riskTiers = []RiskResult{
	{Level: LevelLow, Color: "#4ade80", Message: "あなたの業務には既に「尖」があります。その強みをさらに磨いていきましょう。"},
	{Level: LevelMid, Color: "#CCA806", Message: "一部の業務はAIに置き換わる可能性があります。今から「尖」を意識した行動を始めましょう。"},
	{Level: LevelHigh, Color: "#f87171", Message: "多くの業務がAIに置き換わる可能性が高いです。今すぐ「尖」を作る行動を始める必要があります。"},
	{Level: LevelMaximum, Color: "#dc2626", Message: "あなたの業務の大半がAIに置き換わる可能性があります。キャリアの再構築が急務です。"},
}

// Score counts affirmative answers. Unset and "no" contribute nothing;
// answers under unknown ids are ignored (the store never records them).
func Score(answers Answers) int {
	score := 0
	for _, q := range questionBank {
		if answers[q.ID] == AnswerYes {
			score++
		}
	}
	return score
}

// Classify maps a score to its risk tier. Scores outside
// [0, QuestionCount] cannot be produced by Score and indicate a broken
// caller, so they panic rather than clamp.
func Classify(score int) RiskResult {
	if score < 0 || score >= len(riskTiers) {
		panic(fmt.Sprintf("assessment: score %d out of range [0,%d]", score, len(riskTiers)-1))
	}
	result := riskTiers[score]
	result.Score = score
	return result
}
