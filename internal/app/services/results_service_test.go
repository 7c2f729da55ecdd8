package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func questionFor(id int64, quizDay time.Time, correct models.Option) *models.Question {
	return &models.Question{
		ID:            id,
		Text:          "Which clause filters grouped rows?",
		Option1:       "WHERE",
		Option2:       "HAVING",
		Option3:       "GROUP BY",
		Option4:       "ORDER BY",
		CorrectOption: correct,
		QuizDay:       quizDay,
	}
}

func TestGetResultsReturnsAnswer(t *testing.T) {
	// Question exists for 2024-03-01 and Ana Li answered option2.
	quizDay := day(2024, 3, 1)
	questions := &fakeQuestionStore{questions: []*models.Question{questionFor(1, quizDay, models.Option2)}}
	answers := &fakeAnswerStore{records: []*models.AnswerRecord{
		{ID: 1, UserID: 7, ChosenOption: models.Option2, QuizDay: quizDay},
	}}

	svc := NewResultsService(questions, answers, time.UTC)

	res, err := svc.GetResults(context.Background(), 7, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "option2", res.UserAnswer)
	assert.Equal(t, "option2", res.CorrectOption)
	assert.True(t, res.Correct)
	assert.Equal(t, "2024-03-01", res.Question.QuizDay)
}

func TestGetResultsOutOfRangePastHistory(t *testing.T) {
	// Ana's only record is 2024-03-01; 2024-03-05 is past her latest
	// answered day and must be rejected regardless of what exists there.
	questions := &fakeQuestionStore{questions: []*models.Question{
		questionFor(1, day(2024, 3, 1), models.Option2),
	}}
	answers := &fakeAnswerStore{records: []*models.AnswerRecord{
		{ID: 1, UserID: 7, ChosenOption: models.Option2, QuizDay: day(2024, 3, 1)},
	}}

	svc := NewResultsService(questions, answers, time.UTC)

	_, err := svc.GetResults(context.Background(), 7, "2024-03-05")
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
}

func TestGetResultsNoQuestion(t *testing.T) {
	svc := NewResultsService(&fakeQuestionStore{}, &fakeAnswerStore{}, time.UTC)

	_, err := svc.GetResults(context.Background(), 7, "2024-03-01")
	assert.ErrorIs(t, err, apperrors.ErrNoQuestion)
}

func TestGetResultsNotAttempted(t *testing.T) {
	quizDay := day(2024, 3, 1)
	questions := &fakeQuestionStore{questions: []*models.Question{questionFor(1, quizDay, models.Option1)}}

	svc := NewResultsService(questions, &fakeAnswerStore{}, time.UTC)

	// No history at all: the range check is skipped and the missing
	// record decides the verdict.
	_, err := svc.GetResults(context.Background(), 7, "2024-03-01")
	assert.ErrorIs(t, err, apperrors.ErrNotAttempted)
}

func TestGetResultsAcrossHistory(t *testing.T) {
	// Ana answered on 2024-03-01 and 2024-03-03. Days inside the range
	// resolve to the record or NotAttempted; days outside are rejected.
	questions := &fakeQuestionStore{questions: []*models.Question{
		questionFor(1, day(2024, 3, 1), models.Option2),
		questionFor(2, day(2024, 3, 2), models.Option4),
		questionFor(3, day(2024, 3, 3), models.Option1),
		questionFor(4, day(2024, 3, 5), models.Option3),
	}}
	answers := &fakeAnswerStore{records: []*models.AnswerRecord{
		{ID: 1, UserID: 7, ChosenOption: models.Option2, QuizDay: day(2024, 3, 1)},
		{ID: 2, UserID: 7, ChosenOption: models.Option3, QuizDay: day(2024, 3, 3)},
	}}

	svc := NewResultsService(questions, answers, time.UTC)

	res, err := svc.GetResults(context.Background(), 7, "2024-03-01")
	require.NoError(t, err)
	assert.True(t, res.Correct)

	res, err = svc.GetResults(context.Background(), 7, "2024-03-03")
	require.NoError(t, err)
	assert.Equal(t, "option3", res.UserAnswer)
	assert.False(t, res.Correct)

	// Inside the range, question exists, but no record that day.
	_, err = svc.GetResults(context.Background(), 7, "2024-03-02")
	assert.ErrorIs(t, err, apperrors.ErrNotAttempted)

	// Both bounds are exclusive of anything beyond them.
	_, err = svc.GetResults(context.Background(), 7, "2024-02-29")
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
	_, err = svc.GetResults(context.Background(), 7, "2024-03-05")
	assert.ErrorIs(t, err, apperrors.ErrOutOfRange)
}

func TestGetResultsSingleDayHistory(t *testing.T) {
	// A one-record history has an inclusive range of exactly that day.
	questions := &fakeQuestionStore{questions: []*models.Question{
		questionFor(1, day(2024, 3, 5), models.Option3),
	}}
	answers := &fakeAnswerStore{records: []*models.AnswerRecord{
		{ID: 1, UserID: 7, ChosenOption: models.Option3, QuizDay: day(2024, 3, 5)},
	}}

	svc := NewResultsService(questions, answers, time.UTC)

	res, err := svc.GetResults(context.Background(), 7, "2024-03-05")
	require.NoError(t, err)
	assert.True(t, res.Correct)
}

func TestGetResultsBadDate(t *testing.T) {
	svc := NewResultsService(&fakeQuestionStore{}, &fakeAnswerStore{}, time.UTC)

	_, err := svc.GetResults(context.Background(), 7, "05-03-2024")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
