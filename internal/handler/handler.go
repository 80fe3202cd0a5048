package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/handler/dto"
)

type AuthSvc interface {
	Login(ctx context.Context, email, password string) (string, *domain.Volunteer, error)
}

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id int64) (*domain.EventWithCount, error)
	List(ctx context.Context) ([]*domain.EventWithCount, error)
	Update(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id int64) error
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventID, volunteerID int64) (*domain.Registration, error)
	Unregister(ctx context.Context, eventID, volunteerID int64) error
	ListForVolunteer(ctx context.Context, volunteerID int64) ([]*domain.VolunteerRegistration, error)
	ListForEvent(ctx context.Context, eventID int64) ([]*domain.EventAttendee, error)
}

type VolunteerSvc interface {
	Create(ctx context.Context, input domain.CreateVolunteerInput) (*domain.Volunteer, error)
	GetByID(ctx context.Context, id int64, ident domain.Identity) (*domain.Volunteer, error)
	List(ctx context.Context) ([]*domain.Volunteer, error)
	Update(ctx context.Context, id int64, input domain.UpdateVolunteerInput, ident domain.Identity) (*domain.Volunteer, error)
	Delete(ctx context.Context, id int64, ident domain.Identity) error
}

type DashboardSvc interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

type Handler struct {
	authService         AuthSvc
	eventService        EventSvc
	registrationService RegistrationSvc
	volunteerService    VolunteerSvc
	dashboardService    DashboardSvc
}

func NewHandler(
	authService AuthSvc,
	eventService EventSvc,
	registrationService RegistrationSvc,
	volunteerService VolunteerSvc,
	dashboardService DashboardSvc,
) *Handler {
	return &Handler{
		authService:         authService,
		eventService:        eventService,
		registrationService: registrationService,
		volunteerService:    volunteerService,
		dashboardService:    dashboardService,
	}
}

// Auth

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, volunteer, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToVolunteerResponse(volunteer),
	})
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), domain.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventWithCountResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventWithCountResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventWithCountResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), id, domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}
	ident, ok := h.identity(c)
	if !ok {
		return
	}

	reg, err := h.registrationService.Register(c.Request.Context(), eventID, ident.VolunteerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) Unregister(c *ginext.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}
	ident, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.registrationService.Unregister(c.Request.Context(), eventID, ident.VolunteerID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "unregistered"})
}

func (h *Handler) MyRegistrations(c *ginext.Context) {
	ident, ok := h.identity(c)
	if !ok {
		return
	}

	registrations, err := h.registrationService.ListForVolunteer(c.Request.Context(), ident.VolunteerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MyRegistrationResponse, 0, len(registrations))
	for _, r := range registrations {
		resp = append(resp, dto.ToMyRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListEventRegistrations(c *ginext.Context) {
	eventID, ok := h.pathID(c)
	if !ok {
		return
	}

	attendees, err := h.registrationService.ListForEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendeeResponse, 0, len(attendees))
	for _, a := range attendees {
		resp = append(resp, dto.ToAttendeeResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

// Volunteers

func (h *Handler) CreateVolunteer(c *ginext.Context) {
	var req dto.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	volunteer, err := h.volunteerService.Create(c.Request.Context(), domain.CreateVolunteerInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVolunteerResponse(volunteer))
}

func (h *Handler) GetVolunteer(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ident, ok := h.identity(c)
	if !ok {
		return
	}

	volunteer, err := h.volunteerService.GetByID(c.Request.Context(), id, ident)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerResponse(volunteer))
}

func (h *Handler) ListVolunteers(c *ginext.Context) {
	volunteers, err := h.volunteerService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		resp = append(resp, dto.ToVolunteerResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateVolunteer(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ident, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.UpdateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	volunteer, err := h.volunteerService.Update(c.Request.Context(), id, domain.UpdateVolunteerInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	}, ident)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVolunteerResponse(volunteer))
}

func (h *Handler) DeleteVolunteer(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	ident, ok := h.identity(c)
	if !ok {
		return
	}

	if err := h.volunteerService.Delete(c.Request.Context(), id, ident); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Dashboard

func (h *Handler) Dashboard(c *ginext.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *Handler) pathID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) identity(c *ginext.Context) (domain.Identity, bool) {
	ident, ok := domain.IdentityFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authentication required"})
		return domain.Identity{}, false
	}
	return ident, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVolunteerNotFound),
		errors.Is(err, domain.ErrNotRegistered):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
