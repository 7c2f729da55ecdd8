package models

import "time"

// Question defines the daily quiz question based on the 'questions'
// table. Exactly one question is active per quiz day (enforced by a
// unique index on quiz_day).
type Question struct {
	ID            int64     `json:"id" db:"id"`
	Text          string    `json:"text" db:"question_text"`
	Option1       string    `json:"option1" db:"option1"`
	Option2       string    `json:"option2" db:"option2"`
	Option3       string    `json:"option3" db:"option3"`
	Option4       string    `json:"option4" db:"option4"`
	CorrectOption Option    `json:"correctOption,omitempty" db:"correct_option"`
	QuizDay       time.Time `json:"quizDay" db:"quiz_day"`
	CreatedBy     int64     `json:"createdBy" db:"created_by"`
}

// OptionText returns the text of the given option, or "" for an
// unknown identifier.
func (q *Question) OptionText(o Option) string {
	switch o {
	case Option1:
		return q.Option1
	case Option2:
		return q.Option2
	case Option3:
		return q.Option3
	case Option4:
		return q.Option4
	}
	return ""
}
