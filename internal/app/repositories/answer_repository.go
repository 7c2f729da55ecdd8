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

// AnswerRepository handles database operations for daily answer records
type AnswerRepository struct {
	db *pgxpool.Pool
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{
		db: db,
	}
}

// Create inserts a new answer record. A second submission by the same
// user for the same quiz day violates the unique index and is rejected.
func (r *AnswerRepository) Create(ctx context.Context, record *models.AnswerRecord) error {
	query := `
		INSERT INTO answer_records (user_id, chosen_option, quiz_day)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.UserID, record.ChosenOption, record.QuizDay,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "answer_records_user_id_quiz_day_key") {
			return apperrors.ErrAlreadyAnswered
		}
		return fmt.Errorf("error creating answer record: %w", err)
	}

	return nil
}

// GetByUserAndWindow retrieves a user's answer for the given day window
func (r *AnswerRepository) GetByUserAndWindow(ctx context.Context, userID int64, window dateutil.Window) (*models.AnswerRecord, error) {
	query := `
		SELECT id, user_id, chosen_option, quiz_day, created_at
		FROM answer_records
		WHERE user_id = $1 AND quiz_day >= $2 AND quiz_day < $3
	`

	var record models.AnswerRecord
	err := r.db.QueryRow(ctx, query, userID, window.Start, window.End).Scan(
		&record.ID,
		&record.UserID,
		&record.ChosenOption,
		&record.QuizDay,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotAttempted
		}
		return nil, fmt.Errorf("error retrieving answer record: %w", err)
	}

	return &record, nil
}

// GetAnsweredRange returns the earliest and latest quiz days the user
// has answered. found is false when the user has no records at all.
func (r *AnswerRepository) GetAnsweredRange(ctx context.Context, userID int64) (earliest, latest time.Time, found bool, err error) {
	query := `
		SELECT MIN(quiz_day), MAX(quiz_day)
		FROM answer_records
		WHERE user_id = $1
	`

	var minDay, maxDay *time.Time
	err = r.db.QueryRow(ctx, query, userID).Scan(&minDay, &maxDay)
	if err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("error retrieving answered range: %w", err)
	}

	if minDay == nil || maxDay == nil {
		return time.Time{}, time.Time{}, false, nil
	}

	return *minDay, *maxDay, true, nil
}

// GetByWindow retrieves all answer records inside the given day window
func (r *AnswerRepository) GetByWindow(ctx context.Context, window dateutil.Window) ([]*models.AnswerRecord, error) {
	query := `
		SELECT id, user_id, chosen_option, quiz_day, created_at
		FROM answer_records
		WHERE quiz_day >= $1 AND quiz_day < $2
	`

	rows, err := r.db.Query(ctx, query, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.AnswerRecord
	for rows.Next() {
		var record models.AnswerRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.ChosenOption,
			&record.QuizDay,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
