package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// maxQuestionDays caps how many quiz days a single listing returns.
const maxQuestionDays = 90

// QuestionService handles the daily question lifecycle: faculty
// creation and student submission.
type QuestionService struct {
	questionRepo QuestionStore
	answerRepo   AnswerStore
	loc          *time.Location
	logger       zerolog.Logger
}

// NewQuestionService creates a new QuestionService
func NewQuestionService(questionRepo QuestionStore, answerRepo AnswerStore, loc *time.Location, logger zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		loc:          loc,
		logger:       logger,
	}
}

// CreateQuestion creates the question for a quiz day (today when the
// request leaves the day empty). At most one question exists per day.
func (s *QuestionService) CreateQuestion(ctx context.Context, createdBy int64, req *dto.CreateQuestionRequest) (*models.Question, error) {
	correct := models.Option(req.CorrectOption)
	if !correct.Valid() {
		return nil, fmt.Errorf("%w: correctOption must be one of option1..option4", apperrors.ErrValidationFailed)
	}

	for field, value := range map[string]string{
		"text":    req.Text,
		"option1": req.Option1,
		"option2": req.Option2,
		"option3": req.Option3,
		"option4": req.Option4,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field)
		}
	}

	day := dateutil.Today(s.loc).Start
	if req.QuizDay != "" {
		parsed, err := dateutil.ParseDay(req.QuizDay, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: quizDay must be formatted as YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		day = parsed
	}

	question := &models.Question{
		Text:          req.Text,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectOption: correct,
		QuizDay:       day,
		CreatedBy:     createdBy,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("questionID", question.ID).Str("quizDay", day.Format(dateutil.DayFormat)).Msg("Created daily question")

	return question, nil
}

// GetTodayQuestion returns today's question without its correct option.
func (s *QuestionService) GetTodayQuestion(ctx context.Context) (*dto.QuestionResponse, error) {
	window := dateutil.Today(s.loc)

	question, err := s.questionRepo.GetByWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	return questionView(question), nil
}

// SubmitAnswer records a student's answer for today. A question must
// be active today, and a second submission for the same day is
// rejected with ErrAlreadyAnswered.
func (s *QuestionService) SubmitAnswer(ctx context.Context, userID int64, req *dto.SubmitAnswerRequest) (*models.AnswerRecord, error) {
	chosen := models.Option(req.ChosenOption)
	if !chosen.Valid() {
		return nil, fmt.Errorf("%w: chosenOption must be one of option1..option4", apperrors.ErrValidationFailed)
	}

	window := dateutil.Today(s.loc)

	// An answer only makes sense against an active question.
	if _, err := s.questionRepo.GetByWindow(ctx, window); err != nil {
		return nil, err
	}

	record := &models.AnswerRecord{
		UserID:       userID,
		ChosenOption: chosen,
		QuizDay:      window.Start,
	}

	if err := s.answerRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", userID).Str("quizDay", window.Start.Format(dateutil.DayFormat)).Msg("Recorded daily answer")

	return record, nil
}

// ListQuestionDays returns the days that already have a question,
// newest first, formatted as YYYY-MM-DD. Faculty dashboards use this
// to populate their date pickers.
func (s *QuestionService) ListQuestionDays(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > maxQuestionDays {
		limit = maxQuestionDays
	}

	days, err := s.questionRepo.ListDays(ctx, limit)
	if err != nil {
		return nil, err
	}

	formatted := make([]string, 0, len(days))
	for _, day := range days {
		formatted = append(formatted, dateutil.Truncate(day, s.loc).Format(dateutil.DayFormat))
	}
	return formatted, nil
}

// questionView strips the correct option from a question for
// student-facing responses.
func questionView(q *models.Question) *dto.QuestionResponse {
	return &dto.QuestionResponse{
		ID:      q.ID,
		Text:    q.Text,
		Option1: q.Option1,
		Option2: q.Option2,
		Option3: q.Option3,
		Option4: q.Option4,
		QuizDay: q.QuizDay.Format(dateutil.DayFormat),
	}
}
