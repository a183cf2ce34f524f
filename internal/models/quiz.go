package models

// QuizQuestion is a single multiple-choice question. Options always has
// exactly 4 entries once a question passes ingestion validation; Answer
// holds the exact text of the correct option.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}
