package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

func validCreateRequest() *dto.CreateQuestionRequest {
	return &dto.CreateQuestionRequest{
		Text:          "Which clause filters grouped rows?",
		Option1:       "WHERE",
		Option2:       "HAVING",
		Option3:       "GROUP BY",
		Option4:       "ORDER BY",
		CorrectOption: "option2",
	}
}

func TestCreateQuestionDefaultsToToday(t *testing.T) {
	questions := &fakeQuestionStore{}
	svc := NewQuestionService(questions, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	q, err := svc.CreateQuestion(context.Background(), 42, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, dateutil.Today(time.UTC).Start, q.QuizDay)
	assert.Equal(t, int64(42), q.CreatedBy)
	assert.Equal(t, models.Option2, q.CorrectOption)
}

func TestCreateQuestionExplicitDay(t *testing.T) {
	questions := &fakeQuestionStore{}
	svc := NewQuestionService(questions, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	req := validCreateRequest()
	req.QuizDay = "2024-03-01"
	q, err := svc.CreateQuestion(context.Background(), 42, req)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 3, 1), q.QuizDay)
}

func TestCreateQuestionDuplicateDay(t *testing.T) {
	questions := &fakeQuestionStore{}
	svc := NewQuestionService(questions, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	req := validCreateRequest()
	req.QuizDay = "2024-03-01"
	_, err := svc.CreateQuestion(context.Background(), 42, req)
	require.NoError(t, err)

	_, err = svc.CreateQuestion(context.Background(), 42, req)
	assert.ErrorIs(t, err, apperrors.ErrQuestionExists)
}

func TestCreateQuestionValidation(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{}, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	req := validCreateRequest()
	req.CorrectOption = "option9"
	_, err := svc.CreateQuestion(context.Background(), 42, req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validCreateRequest()
	req.Option3 = "  "
	_, err = svc.CreateQuestion(context.Background(), 42, req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	req = validCreateRequest()
	req.QuizDay = "03/01/2024"
	_, err = svc.CreateQuestion(context.Background(), 42, req)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetTodayQuestionHidesCorrectOption(t *testing.T) {
	questions := &fakeQuestionStore{}
	svc := NewQuestionService(questions, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	_, err := svc.CreateQuestion(context.Background(), 42, validCreateRequest())
	require.NoError(t, err)

	view, err := svc.GetTodayQuestion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "HAVING", view.Option2)
	assert.NotEmpty(t, view.QuizDay)
}

func TestGetTodayQuestionNone(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{}, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	_, err := svc.GetTodayQuestion(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNoQuestion)
}

func TestSubmitAnswer(t *testing.T) {
	questions := &fakeQuestionStore{}
	answers := &fakeAnswerStore{}
	svc := NewQuestionService(questions, answers, time.UTC, zerolog.Nop())

	_, err := svc.CreateQuestion(context.Background(), 42, validCreateRequest())
	require.NoError(t, err)

	record, err := svc.SubmitAnswer(context.Background(), 7, &dto.SubmitAnswerRequest{ChosenOption: "option2"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.UserID)
	assert.Equal(t, dateutil.Today(time.UTC).Start, record.QuizDay)

	// Duplicate submission for the same day is rejected.
	_, err = svc.SubmitAnswer(context.Background(), 7, &dto.SubmitAnswerRequest{ChosenOption: "option3"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAnswered)
}

func TestSubmitAnswerRequiresActiveQuestion(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{}, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	_, err := svc.SubmitAnswer(context.Background(), 7, &dto.SubmitAnswerRequest{ChosenOption: "option1"})
	assert.ErrorIs(t, err, apperrors.ErrNoQuestion)
}

func TestListQuestionDays(t *testing.T) {
	questions := &fakeQuestionStore{}
	svc := NewQuestionService(questions, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	for _, d := range []string{"2024-03-01", "2024-03-03", "2024-03-02"} {
		req := validCreateRequest()
		req.QuizDay = d
		_, err := svc.CreateQuestion(context.Background(), 42, req)
		require.NoError(t, err)
	}

	days, err := svc.ListQuestionDays(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-03", "2024-03-02", "2024-03-01"}, days)

	days, err = svc.ListQuestionDays(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-03-03", "2024-03-02"}, days)
}

func TestSubmitAnswerValidatesOption(t *testing.T) {
	svc := NewQuestionService(&fakeQuestionStore{}, &fakeAnswerStore{}, time.UTC, zerolog.Nop())

	_, err := svc.SubmitAnswer(context.Background(), 7, &dto.SubmitAnswerRequest{ChosenOption: "optionX"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
