package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/handler/dto"
	hmocks "github.com/gedeanz/ifrs-volunteers/internal/handler/mocks"
)

type handlerMocks struct {
	auth         *hmocks.MockAuthSvc
	event        *hmocks.MockEventSvc
	registration *hmocks.MockRegistrationSvc
	volunteer    *hmocks.MockVolunteerSvc
	dashboard    *hmocks.MockDashboardSvc
}

// asIdentity simulates the auth middleware for routes that need a caller.
func asIdentity(ident domain.Identity) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Request = c.Request.WithContext(domain.WithIdentity(c.Request.Context(), ident))
		c.Next()
	}
}

func setupRouter(t *testing.T, ident domain.Identity) (handlerMocks, http.Handler) {
	t.Helper()
	m := handlerMocks{
		auth:         hmocks.NewMockAuthSvc(t),
		event:        hmocks.NewMockEventSvc(t),
		registration: hmocks.NewMockRegistrationSvc(t),
		volunteer:    hmocks.NewMockVolunteerSvc(t),
		dashboard:    hmocks.NewMockDashboardSvc(t),
	}

	h := NewHandler(m.auth, m.event, m.registration, m.volunteer, m.dashboard)
	auth := asIdentity(ident)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/login", h.Login)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events", h.CreateEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)

		api.POST("/events/:id/register", auth, h.Register)
		api.DELETE("/events/:id/register", auth, h.Unregister)
		api.GET("/events/:id/registrations", auth, h.ListEventRegistrations)
		api.GET("/my-registrations", auth, h.MyRegistrations)

		api.POST("/volunteers", h.CreateVolunteer)
		api.GET("/volunteers", h.ListVolunteers)
		api.GET("/volunteers/:id", auth, h.GetVolunteer)
		api.PUT("/volunteers/:id", auth, h.UpdateVolunteer)
		api.DELETE("/volunteers/:id", auth, h.DeleteVolunteer)

		api.GET("/dashboard", auth, h.Dashboard)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Auth ---

func TestHandler_Login_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	volunteer := &domain.Volunteer{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	m.auth.EXPECT().Login(mock.Anything, "alice@example.com", "correct horse").Return("token-123", volunteer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.auth.EXPECT().Login(mock.Anything, "alice@example.com", "wrong").Return("", nil, domain.ErrInvalidCredentials)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_BadRequest(t *testing.T) {
	_, r := setupRouter(t, domain.Identity{})

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	date := time.Now().Add(48 * time.Hour).Truncate(time.Second)
	event := &domain.Event{
		ID:        1,
		Title:     "Blood Drive",
		EventDate: date,
		Location:  "Campus",
		Capacity:  20,
		CreatedAt: time.Now(),
	}

	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:     "Blood Drive",
		EventDate: date.Format(time.RFC3339),
		Location:  "Campus",
		Capacity:  20,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Blood Drive", resp.Title)
	assert.Equal(t, 20, resp.Capacity)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, domain.Identity{})

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:     "Blood Drive",
		EventDate: "not-a-date",
		Location:  "Campus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.event.EXPECT().GetDetails(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t, domain.Identity{})

	w := doJSON(t, r, http.MethodGet, "/api/events/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	events := []*domain.EventWithCount{
		{Event: domain.Event{ID: 1, Title: "Blood Drive", Capacity: 20}, RegisteredCount: 7},
		{Event: domain.Event{ID: 2, Title: "Cleanup Day"}, RegisteredCount: 0},
	}
	m.event.EXPECT().List(mock.Anything).Return(events, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventWithCountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 7, resp[0].RegisteredCount)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.event.EXPECT().Delete(mock.Anything, int64(99)).Return(domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodDelete, "/api/events/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Success(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Email: "alice@example.com", Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	reg := &domain.Registration{ID: 7, EventID: 1, VolunteerID: 2, RegisteredAt: time.Now()}
	m.registration.EXPECT().Register(mock.Anything, int64(1), int64(2)).Return(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/1/register", nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
}

func TestHandler_Register_EventFull(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	m.registration.EXPECT().Register(mock.Anything, int64(1), int64(2)).Return(nil, domain.ErrEventFull)

	w := doJSON(t, r, http.MethodPost, "/api/events/1/register", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_AlreadyRegistered(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	m.registration.EXPECT().Register(mock.Anything, int64(1), int64(2)).Return(nil, domain.ErrAlreadyRegistered)

	w := doJSON(t, r, http.MethodPost, "/api/events/1/register", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Unregister_Success(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	m.registration.EXPECT().Unregister(mock.Anything, int64(1), int64(2)).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/events/1/register", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Unregister_NotRegistered(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	m.registration.EXPECT().Unregister(mock.Anything, int64(1), int64(2)).Return(domain.ErrNotRegistered)

	w := doJSON(t, r, http.MethodDelete, "/api/events/1/register", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_MyRegistrations(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	regs := []*domain.VolunteerRegistration{
		{EventID: 1, Title: "Blood Drive", Location: "Campus", RegisteredAt: time.Now()},
	}
	m.registration.EXPECT().ListForVolunteer(mock.Anything, int64(2)).Return(regs, nil)

	w := doJSON(t, r, http.MethodGet, "/api/my-registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.MyRegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Blood Drive", resp[0].Title)
}

func TestHandler_ListEventRegistrations(t *testing.T) {
	ident := domain.Identity{VolunteerID: 9, Role: domain.RoleAdmin}
	m, r := setupRouter(t, ident)

	attendees := []*domain.EventAttendee{
		{VolunteerID: 2, Name: "Alice", Email: "alice@example.com", RegisteredAt: time.Now()},
	}
	m.registration.EXPECT().ListForEvent(mock.Anything, int64(1)).Return(attendees, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/1/registrations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Alice", resp[0].Name)
}

// --- Volunteers ---

func TestHandler_CreateVolunteer_Success(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	volunteer := &domain.Volunteer{ID: 1, Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}
	m.volunteer.EXPECT().Create(mock.Anything, mock.Anything).Return(volunteer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/volunteers", dto.CreateVolunteerRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VolunteerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "user", resp.Role)
}

func TestHandler_CreateVolunteer_ShortPassword(t *testing.T) {
	_, r := setupRouter(t, domain.Identity{})

	w := doJSON(t, r, http.MethodPost, "/api/volunteers", dto.CreateVolunteerRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateVolunteer_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, domain.Identity{})

	m.volunteer.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(t, r, http.MethodPost, "/api/volunteers", dto.CreateVolunteerRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetVolunteer_Forbidden(t *testing.T) {
	ident := domain.Identity{VolunteerID: 2, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	m.volunteer.EXPECT().GetByID(mock.Anything, int64(1), ident).Return(nil, domain.ErrForbidden)

	w := doJSON(t, r, http.MethodGet, "/api/volunteers/1", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// --- Dashboard ---

func TestHandler_Dashboard(t *testing.T) {
	ident := domain.Identity{VolunteerID: 1, Role: domain.RoleUser}
	m, r := setupRouter(t, ident)

	summary := &domain.DashboardSummary{
		TotalEvents:     3,
		TotalVolunteers: 12,
		TotalCapacity:   60,
		Upcoming: []domain.UpcomingEvent{
			{ID: 1, Title: "Blood Drive", Location: "Campus"},
		},
	}
	m.dashboard.EXPECT().Summary(mock.Anything).Return(summary, nil)

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp domain.DashboardSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalEvents)
	assert.Equal(t, 60, resp.TotalCapacity)
	require.Len(t, resp.Upcoming, 1)
}
