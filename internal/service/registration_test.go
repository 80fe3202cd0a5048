package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockVolunteerRepo, *mocks.MockNotifier) {
	t.Helper()
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	volunteerRepo := mocks.NewMockVolunteerRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRegistrationService(registrationRepo, eventRepo, volunteerRepo, notifier, 24*time.Hour, log)
	return svc, registrationRepo, eventRepo, volunteerRepo, notifier
}

func TestRegistrationService_Register(t *testing.T) {
	svc, registrationRepo, eventRepo, volunteerRepo, notifier := newRegistrationService(t)

	event := &domain.Event{ID: 1, Title: "Blood Drive", Capacity: 10}
	volunteer := &domain.Volunteer{ID: 2, Name: "Alice", Email: "alice@example.com"}
	created := &domain.Registration{ID: 7, EventID: 1, VolunteerID: 2, RegisteredAt: time.Now()}

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	volunteerRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(volunteer, nil)
	registrationRepo.EXPECT().Create(mock.Anything, int64(1), int64(2)).Return(created, nil)
	notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, volunteer, event).Return()

	reg, err := svc.Register(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(7), reg.ID)
	assert.Equal(t, int64(1), reg.EventID)
	assert.Equal(t, int64(2), reg.VolunteerID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Register(context.Background(), 99, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Register_VolunteerNotFound(t *testing.T) {
	svc, _, eventRepo, volunteerRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1}, nil)
	volunteerRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrVolunteerNotFound)

	_, err := svc.Register(context.Background(), 1, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVolunteerNotFound)
}

func TestRegistrationService_Register_EventFull(t *testing.T) {
	svc, registrationRepo, eventRepo, volunteerRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1, Capacity: 1}, nil)
	volunteerRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Volunteer{ID: 2}, nil)
	registrationRepo.EXPECT().Create(mock.Anything, int64(1), int64(2)).Return(nil, domain.ErrEventFull)

	_, err := svc.Register(context.Background(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventFull)
}

func TestRegistrationService_Register_AlreadyRegistered(t *testing.T) {
	svc, registrationRepo, eventRepo, volunteerRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.Event{ID: 1}, nil)
	volunteerRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(&domain.Volunteer{ID: 2}, nil)
	registrationRepo.EXPECT().Create(mock.Anything, int64(1), int64(2)).Return(nil, domain.ErrAlreadyRegistered)

	_, err := svc.Register(context.Background(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
}

func TestRegistrationService_Unregister(t *testing.T) {
	svc, registrationRepo, eventRepo, volunteerRepo, notifier := newRegistrationService(t)

	event := &domain.Event{ID: 1, Title: "Cleanup Day"}
	volunteer := &domain.Volunteer{ID: 2, Name: "Bob"}

	registrationRepo.EXPECT().Delete(mock.Anything, int64(1), int64(2)).Return(true, nil)
	volunteerRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(volunteer, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(event, nil)
	notifier.EXPECT().NotifyRegistrationCancelled(mock.Anything, volunteer, event).Return()

	err := svc.Unregister(context.Background(), 1, 2)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestRegistrationService_Unregister_NotRegistered(t *testing.T) {
	svc, registrationRepo, _, _, _ := newRegistrationService(t)

	registrationRepo.EXPECT().Delete(mock.Anything, int64(1), int64(2)).Return(false, nil)

	err := svc.Unregister(context.Background(), 1, 2)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestRegistrationService_Unregister_NotifyLookupFails(t *testing.T) {
	svc, registrationRepo, _, volunteerRepo, _ := newRegistrationService(t)

	registrationRepo.EXPECT().Delete(mock.Anything, int64(1), int64(2)).Return(true, nil)
	volunteerRepo.EXPECT().GetByID(mock.Anything, int64(2)).Return(nil, errors.New("db down"))

	// The registration is already gone, so the caller still gets success.
	err := svc.Unregister(context.Background(), 1, 2)

	require.NoError(t, err)
}

func TestRegistrationService_ListForVolunteer(t *testing.T) {
	svc, registrationRepo, _, _, _ := newRegistrationService(t)

	expected := []*domain.VolunteerRegistration{
		{EventID: 3, Title: "Food Bank", Location: "Campus"},
	}
	registrationRepo.EXPECT().ListByVolunteer(mock.Anything, int64(2)).Return(expected, nil)

	regs, err := svc.ListForVolunteer(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, expected, regs)
}

func TestRegistrationService_ListForEvent(t *testing.T) {
	svc, registrationRepo, eventRepo, _, _ := newRegistrationService(t)

	expected := []*domain.EventAttendee{
		{VolunteerID: 2, Name: "Alice", Email: "alice@example.com"},
	}
	eventRepo.EXPECT().GetByID(mock.Anything, int64(3)).Return(&domain.Event{ID: 3}, nil)
	registrationRepo.EXPECT().ListByEvent(mock.Anything, int64(3)).Return(expected, nil)

	attendees, err := svc.ListForEvent(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, expected, attendees)
}

func TestRegistrationService_ListForEvent_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.ListForEvent(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_SendReminders(t *testing.T) {
	svc, registrationRepo, _, _, notifier := newRegistrationService(t)

	targets := []*domain.ReminderTarget{
		{RegistrationID: 1, Volunteer: domain.Volunteer{ID: 2}, Event: domain.Event{ID: 3}},
		{RegistrationID: 4, Volunteer: domain.Volunteer{ID: 5}, Event: domain.Event{ID: 3}},
	}

	registrationRepo.EXPECT().DueReminders(mock.Anything, 24*time.Hour).Return(targets, nil)
	notifier.EXPECT().NotifyEventReminder(mock.Anything, &targets[0].Volunteer, &targets[0].Event).Return()
	notifier.EXPECT().NotifyEventReminder(mock.Anything, &targets[1].Volunteer, &targets[1].Event).Return()
	registrationRepo.EXPECT().MarkReminded(mock.Anything, []int64{1, 4}).Return(nil)

	sent, err := svc.SendReminders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestRegistrationService_SendReminders_NothingDue(t *testing.T) {
	svc, registrationRepo, _, _, _ := newRegistrationService(t)

	registrationRepo.EXPECT().DueReminders(mock.Anything, 24*time.Hour).Return(nil, nil)

	sent, err := svc.SendReminders(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestRegistrationService_SendReminders_RepoError(t *testing.T) {
	svc, registrationRepo, _, _, _ := newRegistrationService(t)

	registrationRepo.EXPECT().DueReminders(mock.Anything, 24*time.Hour).Return(nil, errors.New("db down"))

	_, err := svc.SendReminders(context.Background())

	require.Error(t, err)
}
