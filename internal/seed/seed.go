package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/sqlday/sqlday/internal/app/models"
	appRepos "github.com/sqlday/sqlday/internal/app/repositories"
	"github.com/sqlday/sqlday/internal/config"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/auth"
	"github.com/sqlday/sqlday/internal/pkg/dateutil"
)

// CreateDefaultData provisions a roster of student profiles, a default
// faculty account and a sample question for the current day. Existing
// rows are left untouched so repeated startups are safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	profileRepo := appRepos.NewProfileRepository(dbPool)
	questionRepo := appRepos.NewQuestionRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (roster/faculty/question)...")
	var finalErr error

	// --- Provisioned student roster --- //
	profiles := []*appModels.StudentProfile{
		{Name: "Ana Li", OfficialEmail: "ana.li" + cfg.Quiz.StudentDomain, RegNo: "BT21001", ClassLabel: "4BTA", Department: "CSE"},
		{Name: "Ben Osei", OfficialEmail: "ben.osei" + cfg.Quiz.StudentDomain, RegNo: "BT21002", ClassLabel: "4BTA", Department: "ECE"},
		{Name: "Carla Reyes", OfficialEmail: "carla.reyes" + cfg.Quiz.StudentDomain, RegNo: "BT21003", ClassLabel: "4BTB", Department: "CSE"},
	}
	for _, profile := range profiles {
		if err := profileRepo.Create(ctx, profile); err != nil && !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Str("email", profile.OfficialEmail).Msg("Error creating student profile")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default faculty account --- //
	facultyEmail := "coordinator" + cfg.Quiz.FacultyDomain
	exists, err := userRepo.EmailExists(ctx, facultyEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default faculty user exists")
		finalErr = errors.Join(finalErr, err)
	} else if !exists {
		lgr.Info().Msg("Creating default faculty user...")

		hashedPassword, err := auth.HashPassword("Faculty123!")
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing default faculty password")
			finalErr = errors.Join(finalErr, err)
		} else {
			faculty := &appModels.User{
				Email:    facultyEmail,
				Password: hashedPassword,
				Name:     "Quiz Coordinator",
				Role:     appModels.RoleFaculty,
			}
			if err := userRepo.Create(ctx, faculty); err != nil {
				lgr.Error().Err(err).Msg("Error creating default faculty user")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("userID", faculty.ID).Msg("Default faculty user created successfully")

				// --- Sample question for today --- //
				loc := cfg.QuizLocation()
				question := &appModels.Question{
					Text:          "Which SQL clause filters rows after aggregation?",
					Option1:       "WHERE",
					Option2:       "HAVING",
					Option3:       "GROUP BY",
					Option4:       "ORDER BY",
					CorrectOption: appModels.Option2,
					QuizDay:       dateutil.Truncate(time.Now(), loc),
					CreatedBy:     faculty.ID,
				}
				if err := questionRepo.Create(ctx, question); err != nil && !errors.Is(err, apperrors.ErrQuestionExists) {
					lgr.Error().Err(err).Msg("Error creating sample question")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	} else {
		lgr.Info().Msg("Default faculty user already exists, skipping creation")
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
