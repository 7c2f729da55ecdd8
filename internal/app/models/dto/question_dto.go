package dto

// CreateQuestionRequest represents a faculty question-creation request.
// QuizDay defaults to today when omitted.
type CreateQuestionRequest struct {
	Text          string `json:"text" binding:"required" example:"Which clause filters grouped rows?"`
	Option1       string `json:"option1" binding:"required" example:"WHERE"`
	Option2       string `json:"option2" binding:"required" example:"HAVING"`
	Option3       string `json:"option3" binding:"required" example:"GROUP BY"`
	Option4       string `json:"option4" binding:"required" example:"ORDER BY"`
	CorrectOption string `json:"correctOption" binding:"required" example:"option2"`
	QuizDay       string `json:"quizDay,omitempty" example:"2024-03-01"`
}

// QuestionResponse is the student-facing view of a question. The
// correct option is never included.
type QuestionResponse struct {
	ID      int64  `json:"id"`
	Text    string `json:"text"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
	Option4 string `json:"option4"`
	QuizDay string `json:"quizDay" example:"2024-03-01"`
}

// SubmitAnswerRequest represents a student's answer submission for
// today's question.
type SubmitAnswerRequest struct {
	ChosenOption string `json:"chosenOption" binding:"required" example:"option2"`
}
