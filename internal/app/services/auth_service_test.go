package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlday/sqlday/internal/app/models"
	"github.com/sqlday/sqlday/internal/app/models/dto"
	"github.com/sqlday/sqlday/internal/pkg/apperrors"
	"github.com/sqlday/sqlday/internal/pkg/auth"
)

func newAuthFixture() (*AuthService, *fakeUserStore, *fakeProfileStore) {
	users := &fakeUserStore{}
	profiles := &fakeProfileStore{profiles: []*models.StudentProfile{
		{ID: 1, Name: "Ana Li", OfficialEmail: "ana.li@btech.example.edu", RegNo: "2347101", ClassLabel: "4BTA", Department: "CSE"},
	}}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "sqlday.test",
	})
	domains := DomainConfig{
		StudentSuffix: "@btech.example.edu",
		FacultySuffix: "@example.edu",
	}

	svc := NewAuthService(users, profiles, newFakeTokenStore(), jwtService, domains, zerolog.Nop())
	return svc, users, profiles
}

func TestRegisterStudent(t *testing.T) {
	svc, users, _ := newAuthFixture()

	tokens, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana.li@btech.example.edu",
		Password: "pass1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "Bearer", tokens.TokenType)

	user, err := users.GetByEmail(context.Background(), "ana.li@btech.example.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	// Name and reg number come from the provisioned profile.
	assert.Equal(t, "Ana Li", user.Name)
	require.NotNil(t, user.RegNo)
	assert.Equal(t, "2347101", *user.RegNo)
	// Stored password is a hash, never the plaintext.
	assert.NotEqual(t, "pass1234", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "pass1234"))
}

func TestRegisterFaculty(t *testing.T) {
	svc, users, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "prof.x@example.edu",
		Password: "pass1234",
		Name:     "Prof X",
	})
	require.NoError(t, err)

	user, err := users.GetByEmail(context.Background(), "prof.x@example.edu")
	require.NoError(t, err)
	assert.Equal(t, models.RoleFaculty, user.Role)
	assert.Nil(t, user.RegNo)
}

func TestRegisterInvalidDomain(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "someone@gmail.com",
		Password: "pass1234",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidDomain)
}

func TestRegisterStudentWithoutProfile(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ghost@btech.example.edu",
		Password: "pass1234",
	})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()

	req := &dto.RegisterRequest{Email: "ana.li@btech.example.edu", Password: "pass1234"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterWeakPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "pw1"},
		{name: "no digit", password: "password"},
		{name: "no letter", password: "12345678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &dto.RegisterRequest{
				Email:    "ana.li@btech.example.edu",
				Password: tt.password,
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana.li@btech.example.edu",
		Password: "pass1234",
	})
	require.NoError(t, err)

	tokens, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana.li@btech.example.edu",
		Password: "pass1234",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ana.li@btech.example.edu",
		Password: "wrongpass1",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@btech.example.edu",
		Password: "pass1234",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, _ := newAuthFixture()

	tokens, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ana.li@btech.example.edu",
		Password: "pass1234",
	})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	// The old token is revoked after rotation.
	_, err = svc.RefreshToken(context.Background(), tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}
