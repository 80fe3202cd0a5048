package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports/mocks"
)

func TestEventService_Create(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, e *domain.Event) error {
		e.ID = 1
		return nil
	})

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Title:     "Blood Drive",
		Location:  "Campus",
		EventDate: time.Now().Add(48 * time.Hour),
		Capacity:  20,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, 20, event.Capacity)
}

func TestEventService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	future := time.Now().Add(48 * time.Hour)

	cases := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"missing title", domain.CreateEventInput{Location: "Campus", EventDate: future}},
		{"missing location", domain.CreateEventInput{Title: "Blood Drive", EventDate: future}},
		{"missing date", domain.CreateEventInput{Title: "Blood Drive", Location: "Campus"}},
		{"negative capacity", domain.CreateEventInput{Title: "Blood Drive", Location: "Campus", EventDate: future, Capacity: -1}},
		{"past date", domain.CreateEventInput{Title: "Blood Drive", Location: "Campus", EventDate: time.Now().Add(-time.Hour)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_GetDetails(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	event := &domain.Event{ID: 1, Title: "Blood Drive", Capacity: 20}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	registrationRepo.EXPECT().CountByEvent(mock.Anything, int64(1)).Return(7, nil)

	details, err := svc.GetDetails(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, *event, details.Event)
	assert.Equal(t, 7, details.RegisteredCount)
}

func TestEventService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetDetails(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Update(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	existing := &domain.Event{ID: 1, Title: "Blood Drive", Location: "Campus", Capacity: 20}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, existing).Return(nil)

	date := time.Now().Add(72 * time.Hour)
	updated, err := svc.Update(context.Background(), 1, domain.UpdateEventInput{
		Title:     "Blood Drive II",
		Location:  "Downtown",
		EventDate: date,
		Capacity:  30,
	})

	require.NoError(t, err)
	assert.Equal(t, "Blood Drive II", updated.Title)
	assert.Equal(t, "Downtown", updated.Location)
	assert.Equal(t, 30, updated.Capacity)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), 99, domain.UpdateEventInput{
		Title:     "Ghost",
		Location:  "Nowhere",
		EventDate: time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
}

func TestEventService_List(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	svc := NewEventService(repo, registrationRepo)

	expected := []*domain.EventWithCount{
		{Event: domain.Event{ID: 1, Title: "Blood Drive"}, RegisteredCount: 7},
	}
	repo.EXPECT().List(mock.Anything).Return(expected, nil)

	events, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, events)
}
