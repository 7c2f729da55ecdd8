package models

import "time"

// AnswerRecord defines one daily submission based on the
// 'answer_records' table. Records reference the owning account by ID
// and are unique per (user, quiz day): a second submission for the
// same day is rejected.
type AnswerRecord struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	ChosenOption Option    `json:"chosenOption" db:"chosen_option"`
	QuizDay      time.Time `json:"quizDay" db:"quiz_day"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
