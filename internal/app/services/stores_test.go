package services

import (
	"context"
	"sort"
	"time"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// In-memory store fakes backing the service tests.

type fakeQuestionStore struct {
	questions []*models.Question
	nextID    int64
}

func (f *fakeQuestionStore) Create(_ context.Context, question *models.Question) error {
	for _, q := range f.questions {
		if q.QuizDay.Equal(question.QuizDay) {
			return apperrors.ErrQuestionExists
		}
	}
	f.nextID++
	question.ID = f.nextID
	f.questions = append(f.questions, question)
	return nil
}

func (f *fakeQuestionStore) GetByWindow(_ context.Context, window dateutil.Window) (*models.Question, error) {
	for _, q := range f.questions {
		if window.Contains(q.QuizDay) {
			return q, nil
		}
	}
	return nil, apperrors.ErrNoQuestion
}

func (f *fakeQuestionStore) ListDays(_ context.Context, limit int) ([]time.Time, error) {
	var days []time.Time
	for _, q := range f.questions {
		days = append(days, q.QuizDay)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	if len(days) > limit {
		days = days[:limit]
	}
	return days, nil
}

type fakeAnswerStore struct {
	records []*models.AnswerRecord
	nextID  int64
}

func (f *fakeAnswerStore) Create(_ context.Context, record *models.AnswerRecord) error {
	for _, r := range f.records {
		if r.UserID == record.UserID && r.QuizDay.Equal(record.QuizDay) {
			return apperrors.ErrAlreadyAnswered
		}
	}
	f.nextID++
	record.ID = f.nextID
	record.CreatedAt = time.Now()
	f.records = append(f.records, record)
	return nil
}

func (f *fakeAnswerStore) GetByUserAndWindow(_ context.Context, userID int64, window dateutil.Window) (*models.AnswerRecord, error) {
	for _, r := range f.records {
		if r.UserID == userID && window.Contains(r.QuizDay) {
			return r, nil
		}
	}
	return nil, apperrors.ErrNotAttempted
}

func (f *fakeAnswerStore) GetAnsweredRange(_ context.Context, userID int64) (time.Time, time.Time, bool, error) {
	var earliest, latest time.Time
	found := false
	for _, r := range f.records {
		if r.UserID != userID {
			continue
		}
		if !found || r.QuizDay.Before(earliest) {
			earliest = r.QuizDay
		}
		if !found || r.QuizDay.After(latest) {
			latest = r.QuizDay
		}
		found = true
	}
	return earliest, latest, found, nil
}

func (f *fakeAnswerStore) GetByWindow(_ context.Context, window dateutil.Window) ([]*models.AnswerRecord, error) {
	var out []*models.AnswerRecord
	for _, r := range f.records {
		if window.Contains(r.QuizDay) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeUserStore struct {
	users  []*models.User
	nextID int64
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) GetAllByRole(_ context.Context, role models.RoleType) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeProfileStore struct {
	profiles []*models.StudentProfile
}

func (f *fakeProfileStore) GetByOfficialEmail(_ context.Context, email string) (*models.StudentProfile, error) {
	for _, p := range f.profiles {
		if p.OfficialEmail == email {
			return p, nil
		}
	}
	return nil, apperrors.ErrProfileNotFound
}

func (f *fakeProfileStore) GetAll(_ context.Context) ([]*models.StudentProfile, error) {
	return f.profiles, nil
}

type fakeTokenStore struct {
	tokens map[string]int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: make(map[string]int64)}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, _ time.Time) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenStore) GetTokenUser(_ context.Context, token string) (int64, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return 0, apperrors.ErrTokenNotFound
	}
	return userID, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	if _, ok := f.tokens[token]; !ok {
		return apperrors.ErrTokenNotFound
	}
	delete(f.tokens, token)
	return nil
}
