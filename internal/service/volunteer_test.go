package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports/mocks"
)

func TestVolunteerService_Create(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, v *domain.Volunteer) error {
		v.ID = 1
		return nil
	})

	volunteer, err := svc.Create(context.Background(), domain.CreateVolunteerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), volunteer.ID)
	assert.Equal(t, domain.RoleUser, volunteer.Role)
	assert.NotEqual(t, "correct horse", volunteer.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(volunteer.PasswordHash), []byte("correct horse")))
}

func TestVolunteerService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	cases := []struct {
		name  string
		input domain.CreateVolunteerInput
	}{
		{"missing name", domain.CreateVolunteerInput{Email: "a@b.c", Password: "x"}},
		{"missing email", domain.CreateVolunteerInput{Name: "Alice", Password: "x"}},
		{"missing password", domain.CreateVolunteerInput{Name: "Alice", Email: "a@b.c"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestVolunteerService_Create_EmailTaken(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateVolunteerInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestVolunteerService_GetByID_SelfOrAdmin(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	volunteer := &domain.Volunteer{ID: 1, Name: "Alice"}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(volunteer, nil).Twice()

	// Self.
	got, err := svc.GetByID(context.Background(), 1, domain.Identity{VolunteerID: 1, Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, volunteer, got)

	// Admin reading someone else.
	got, err = svc.GetByID(context.Background(), 1, domain.Identity{VolunteerID: 9, Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, volunteer, got)
}

func TestVolunteerService_GetByID_Forbidden(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	_, err := svc.GetByID(context.Background(), 1, domain.Identity{VolunteerID: 2, Role: domain.RoleUser})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVolunteerService_Update(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	existing := &domain.Volunteer{ID: 1, Name: "Alice", Email: "alice@example.com"}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, existing).Return(nil)

	updated, err := svc.Update(context.Background(), 1, domain.UpdateVolunteerInput{
		Name:  "Alice Cooper",
		Email: "alice@example.com",
		Phone: "555-0101",
	}, domain.Identity{VolunteerID: 1, Role: domain.RoleUser})

	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "555-0101", updated.Phone)
}

func TestVolunteerService_Update_Forbidden(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	_, err := svc.Update(context.Background(), 1, domain.UpdateVolunteerInput{
		Name:  "Eve",
		Email: "eve@example.com",
	}, domain.Identity{VolunteerID: 2, Role: domain.RoleUser})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVolunteerService_Delete(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), 1, domain.Identity{VolunteerID: 9, Role: domain.RoleAdmin})

	require.NoError(t, err)
}

func TestVolunteerService_Delete_Forbidden(t *testing.T) {
	repo := mocks.NewMockVolunteerRepo(t)
	svc := NewVolunteerService(repo)

	err := svc.Delete(context.Background(), 1, domain.Identity{VolunteerID: 2, Role: domain.RoleUser})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
