package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dberrors"
)

// ProfileRepository handles database operations for provisioned
// student profiles
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{
		db: db,
	}
}

// Create provisions a new student profile
func (r *ProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	query := `
		INSERT INTO student_profiles (name, official_email, reg_no, class_label, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		profile.Name, profile.OfficialEmail, profile.RegNo, profile.ClassLabel, profile.Department,
	).Scan(&profile.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "student_profiles_official_email_key") {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating student profile: %w", err)
	}

	return nil
}

// GetByOfficialEmail retrieves the profile provisioned for an official email
func (r *ProfileRepository) GetByOfficialEmail(ctx context.Context, email string) (*models.StudentProfile, error) {
	query := `
		SELECT id, name, official_email, reg_no, class_label, department
		FROM student_profiles
		WHERE official_email = $1
	`

	var profile models.StudentProfile
	err := r.db.QueryRow(ctx, query, email).Scan(
		&profile.ID,
		&profile.Name,
		&profile.OfficialEmail,
		&profile.RegNo,
		&profile.ClassLabel,
		&profile.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &profile, nil
}

// GetAll retrieves all provisioned student profiles
func (r *ProfileRepository) GetAll(ctx context.Context) ([]*models.StudentProfile, error) {
	query := `
		SELECT id, name, official_email, reg_no, class_label, department
		FROM student_profiles
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*models.StudentProfile
	for rows.Next() {
		var profile models.StudentProfile
		if err := rows.Scan(
			&profile.ID,
			&profile.Name,
			&profile.OfficialEmail,
			&profile.RegNo,
			&profile.ClassLabel,
			&profile.Department,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}
