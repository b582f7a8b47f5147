package quiz

const (
	TypeMultipleChoice = "multiple_choice"
	TypeOpenEnded      = "open_ended"
)

type Subject struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Block struct {
	ID        string `json:"id"`
	SubjectID string `json:"subject_id"`
	Title     string `json:"title"`
	Code      string `json:"code,omitempty"`
	Position  int    `json:"position"`
}

type Question struct {
	ID         string `json:"id"`
	BlockID    string `json:"block_id"`
	Prompt     string `json:"prompt"`
	Type       string `json:"type"` // multiple_choice | open_ended
	Difficulty string `json:"difficulty,omitempty"`
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Label      string `json:"label"`
	Correct    bool   `json:"-"` // never serialized; correctness is server-side only
}

// OpenKeyword is a display-only study hint for an open-ended question. It is
// never used to grade free text.
type OpenKeyword struct {
	QuestionID string `json:"question_id"`
	Keyword    string `json:"keyword"`
}

type Resource struct {
	ID       string `json:"id"`
	BlockID  string `json:"block_id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Type     string `json:"type"` // pdf|video|web|repo|doc|image|other
	Provider string `json:"provider,omitempty"`
	Rank     *int   `json:"rank,omitempty"`
}

// PreEval is the student-safe payload for one subject's pre-evaluation:
// choices carry no correctness flag.
type PreEval struct {
	Subject   Subject       `json:"subject"`
	Blocks    []Block       `json:"blocks"`
	Questions []Question    `json:"questions"`
	Choices   []Choice      `json:"choices"`
	OpenKeys  []OpenKeyword `json:"openKeys"`
}

// Answer is one submitted answer. Any client-supplied correctness claim is
// ignored: the recorder recomputes it from the choice table.
type Answer struct {
	BlockID    string `json:"blockId"`
	QuestionID string `json:"questionId"`
	Type       string `json:"type"`
	ChoiceID   string `json:"choiceId,omitempty"`
	Text       string `json:"text,omitempty"`
}

type SessionParams struct {
	UserID     string
	SubjectID  string
	QuizID     string
	ExistingID string // reuse this session id when non-empty
}

type BlockSummary struct {
	BlockID       string `json:"block_id"`
	BlockTitle    string `json:"block_title"`
	BlockCode     string `json:"block_code"`
	TotalOption   int    `json:"total_option"`
	CorrectOption int    `json:"correct_option"`
}

type Totals struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
	Pct     int `json:"pct"`
}

type DifficultySummary struct {
	Difficulty string `json:"dificultad"`
	Total      int    `json:"total"`
	Correct    int    `json:"correctas"`
	Pct        int    `json:"porcentaje"`
}
