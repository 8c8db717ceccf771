package assessment

// Question is one entry of the fixed self-check bank.
type Question struct {
	ID          string
	Title       string
	Description string
	Examples    []string
}

var questionBank = []Question{
	{
		ID:          "q1",
		Title:       "チェック1:「正解探しゲーム」型の業務ですか?",
		Description: "あなたの業務の大半は、「会社のルール」や「過去の事例」に従えば答えが出る内容ですか?",
		Examples: []string{
			"カスタマーサポート:「注文はどこ?」への定型回答",
			"契約書レビュー:リスク条項を探す作業",
			"旅行手配:欠航時の代替便を探す",
		},
	},
	{
		ID:          "q2",
		Title:       "チェック2:「テトリス」型の業務ですか?",
		Description: "あなたの業務は、パズルのように「最適解」を見つける作業が中心ですか?",
		Examples: []string{
			"スケジュール調整:全員の空き時間を探す",
			"在庫管理:需要予測に基づく発注",
			"データ入力:フォーマットに従って情報を整理",
		},
	},
	{
		ID:          "q3",
		Title:       "チェック3:「80%の質」で十分な業務ですか?",
		Description: "あなたの業務に、「90点以上の仕上げ」や「独自の美学・こだわり」が求められていますか?",
		Examples: []string{
			"会議の議事録:要点が抑えられていればOK",
			"一次レビュー:人間が最終判断する前段階",
			"定型メール:テンプレートで8割完成",
		},
	},
}

// Questions returns the assessment bank in presentation order. The
// returned slice is a copy; the bank itself is never mutated.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}

// QuestionCount is the size of the bank, which is also the maximum
// reachable risk score.
func QuestionCount() int {
	return len(questionBank)
}

func knownQuestionID(id string) bool {
	for _, q := range questionBank {
		if q.ID == id {
			return true
		}
	}
	return false
}
