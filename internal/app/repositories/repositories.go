package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	ProfileRepository  *ProfileRepository
	QuestionRepository *QuestionRepository
	AnswerRepository   *AnswerRepository
	TokenRepository    *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		ProfileRepository:  NewProfileRepository(db),
		QuestionRepository: NewQuestionRepository(db),
		AnswerRepository:   NewAnswerRepository(db),
		TokenRepository:    NewTokenRepository(db),
	}
}
