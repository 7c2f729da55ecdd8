package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// ResultsService evaluates what a student may see for a quiz day.
//
// Verdicts, in evaluation order:
//   - ErrOutOfRange when the day was explicitly requested and lies
//     outside the student's own [earliest, latest] answered range
//   - ErrNoQuestion when no question is active for the day
//   - ErrNotAttempted when the student has no answer for the day
//   - otherwise the question together with the student's chosen option
type ResultsService struct {
	questionRepo QuestionStore
	answerRepo   AnswerStore
	loc          *time.Location
}

// NewResultsService creates a new ResultsService
func NewResultsService(questionRepo QuestionStore, answerRepo AnswerStore, loc *time.Location) *ResultsService {
	return &ResultsService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		loc:          loc,
	}
}

// GetResults returns the eligibility verdict for the requesting
// student. dateParam is a YYYY-MM-DD string; when empty the day
// defaults to today and the answered-range check is skipped.
func (s *ResultsService) GetResults(ctx context.Context, userID int64, dateParam string) (*dto.ResultsResponse, error) {
	explicit := dateParam != ""

	window := dateutil.Today(s.loc)
	if explicit {
		day, err := dateutil.ParseDay(dateParam, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", apperrors.ErrValidationFailed)
		}
		window = dateutil.DayWindow(day, s.loc)
	}

	// An explicitly requested day must fall within the student's own
	// answered history. Today is always viewable, and so is any day for
	// a student without history yet.
	if explicit {
		earliest, latest, found, err := s.answerRepo.GetAnsweredRange(ctx, userID)
		if err != nil {
			return nil, err
		}
		if found && !dayInRange(window.Start, earliest, latest, s.loc) {
			return nil, apperrors.ErrOutOfRange
		}
	}

	question, err := s.questionRepo.GetByWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	record, err := s.answerRepo.GetByUserAndWindow(ctx, userID, window)
	if err != nil {
		return nil, err
	}

	return resultsView(question, record), nil
}

// dayInRange reports whether day lies within the inclusive range
// [earliest, latest], comparing canonical day buckets.
func dayInRange(day, earliest, latest time.Time, loc *time.Location) bool {
	d := dateutil.Truncate(day, loc)
	lo := dateutil.Truncate(earliest, loc)
	hi := dateutil.Truncate(latest, loc)
	return !d.Before(lo) && !d.After(hi)
}

func resultsView(question *models.Question, record *models.AnswerRecord) *dto.ResultsResponse {
	return &dto.ResultsResponse{
		Question:      *questionView(question),
		UserAnswer:    string(record.ChosenOption),
		CorrectOption: string(question.CorrectOption),
		Correct:       record.ChosenOption == question.CorrectOption,
	}
}
