package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports/mocks"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", time.Hour)

	volunteer := &domain.Volunteer{
		ID:           1,
		Email:        "alice@example.com",
		Role:         domain.RoleUser,
		PasswordHash: hashPassword(t, "correct horse"),
	}

	volunteerRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(volunteer, nil)

	token, got, err := svc.Login(context.Background(), "alice@example.com", "correct horse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, volunteer, got)

	ident, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ident.VolunteerID)
	assert.Equal(t, "alice@example.com", ident.Email)
	assert.Equal(t, domain.RoleUser, ident.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", time.Hour)

	volunteer := &domain.Volunteer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
	}

	volunteerRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(volunteer, nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "battery staple")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", time.Hour)

	volunteerRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrVolunteerNotFound)

	// Unknown email maps to the same error as a wrong password.
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", time.Hour)

	volunteer := &domain.Volunteer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
	}

	volunteerRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(volunteer, nil).Maybe()

	var limited bool
	for i := 0; i < 30; i++ {
		_, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
		if err != nil && assert.ErrorIs(t, err, domain.ErrRateLimited) {
			limited = true
			break
		}
	}

	assert.True(t, limited, "burst of logins should hit the limiter")
}

func TestAuthService_ParseToken_WrongSecret(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", time.Hour)

	volunteer := &domain.Volunteer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
	}

	volunteerRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(volunteer, nil)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	other := NewAuthService(volunteerRepo, "different secret", time.Hour)
	_, err = other.ParseToken(token)

	require.Error(t, err)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", -time.Minute)

	volunteer := &domain.Volunteer{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, "correct horse"),
	}

	volunteerRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(volunteer, nil)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.ParseToken(token)

	require.Error(t, err)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	svc := NewAuthService(volunteerRepo, "secret", time.Hour)

	_, err := svc.ParseToken("not.a.token")

	require.Error(t, err)
}
