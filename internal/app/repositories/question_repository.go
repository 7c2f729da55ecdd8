package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dberrors"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// QuestionRepository handles database operations for quiz questions
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// Create inserts a new question for its quiz day
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (question_text, option1, option2, option3, option4, correct_option, quiz_day, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		question.Text,
		question.Option1,
		question.Option2,
		question.Option3,
		question.Option4,
		question.CorrectOption,
		question.QuizDay,
		question.CreatedBy,
	).Scan(&question.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "questions_quiz_day_key") {
			return apperrors.ErrQuestionExists
		}
		return fmt.Errorf("error creating question: %w", err)
	}

	return nil
}

// GetByWindow retrieves the question whose quiz day falls inside the
// given day window
func (r *QuestionRepository) GetByWindow(ctx context.Context, window dateutil.Window) (*models.Question, error) {
	query := `
		SELECT id, question_text, option1, option2, option3, option4, correct_option, quiz_day, created_by
		FROM questions
		WHERE quiz_day >= $1 AND quiz_day < $2
	`

	var question models.Question
	err := r.db.QueryRow(ctx, query, window.Start, window.End).Scan(
		&question.ID,
		&question.Text,
		&question.Option1,
		&question.Option2,
		&question.Option3,
		&question.Option4,
		&question.CorrectOption,
		&question.QuizDay,
		&question.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoQuestion
		}
		return nil, fmt.Errorf("error retrieving question: %w", err)
	}

	return &question, nil
}

// ListDays returns the quiz days that have a question, newest first,
// limited to the most recent limit days
func (r *QuestionRepository) ListDays(ctx context.Context, limit int) ([]time.Time, error) {
	query := `
		SELECT quiz_day
		FROM questions
		ORDER BY quiz_day DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return days, nil
}
