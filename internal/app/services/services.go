// Package services contains the business rules of the daily quiz:
// sign-up role derivation, daily question lifecycle, the results
// eligibility evaluator, and the attendance aggregator.
//
// Services depend on narrow store interfaces rather than concrete
// repositories, so the decision logic can be exercised against
// in-memory fakes. Only plain data crosses the service boundary.
package services

import (
	"context"
	"time"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// UserStore is the account persistence surface used by services.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAllByRole(ctx context.Context, role models.RoleType) ([]*models.User, error)
}

// ProfileStore is the student roster persistence surface.
type ProfileStore interface {
	GetByOfficialEmail(ctx context.Context, email string) (*models.StudentProfile, error)
	GetAll(ctx context.Context) ([]*models.StudentProfile, error)
}

// QuestionStore is the question persistence surface.
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	GetByWindow(ctx context.Context, window dateutil.Window) (*models.Question, error)
	ListDays(ctx context.Context, limit int) ([]time.Time, error)
}

// AnswerStore is the answer record persistence surface.
type AnswerStore interface {
	Create(ctx context.Context, record *models.AnswerRecord) error
	GetByUserAndWindow(ctx context.Context, userID int64, window dateutil.Window) (*models.AnswerRecord, error)
	GetAnsweredRange(ctx context.Context, userID int64) (earliest, latest time.Time, found bool, err error)
	GetByWindow(ctx context.Context, window dateutil.Window) ([]*models.AnswerRecord, error)
}

// TokenStore is the refresh token persistence surface.
type TokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenUser(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
}
