package dto

import (
	"time"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
)

type VolunteerResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type LoginResponse struct {
	Token string            `json:"token"`
	User  VolunteerResponse `json:"user"`
}

type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	CreatedAt   string `json:"created_at"`
}

type EventWithCountResponse struct {
	EventResponse
	RegisteredCount int `json:"registered_count"`
}

type RegistrationResponse struct {
	ID           int64  `json:"id"`
	EventID      int64  `json:"event_id"`
	VolunteerID  int64  `json:"volunteer_id"`
	RegisteredAt string `json:"registered_at"`
}

type MyRegistrationResponse struct {
	EventID      int64  `json:"event_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	EventDate    string `json:"event_date"`
	Location     string `json:"location"`
	Capacity     int    `json:"capacity"`
	RegisteredAt string `json:"registered_at"`
}

type AttendeeResponse struct {
	VolunteerID  int64  `json:"volunteer_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	RegisteredAt string `json:"registered_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVolunteerResponse(v *domain.Volunteer) VolunteerResponse {
	return VolunteerResponse{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		Phone:          v.Phone,
		Role:           string(v.Role),
		TelegramChatID: v.TelegramChatID,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate.Format(time.RFC3339),
		Location:    e.Location,
		Capacity:    e.Capacity,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventWithCountResponse(ec *domain.EventWithCount) EventWithCountResponse {
	return EventWithCountResponse{
		EventResponse:   ToEventResponse(&ec.Event),
		RegisteredCount: ec.RegisteredCount,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		VolunteerID:  r.VolunteerID,
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
	}
}

func ToMyRegistrationResponse(vr *domain.VolunteerRegistration) MyRegistrationResponse {
	return MyRegistrationResponse{
		EventID:      vr.EventID,
		Title:        vr.Title,
		Description:  vr.Description,
		EventDate:    vr.EventDate.Format(time.RFC3339),
		Location:     vr.Location,
		Capacity:     vr.Capacity,
		RegisteredAt: vr.RegisteredAt.Format(time.RFC3339),
	}
}

func ToAttendeeResponse(a *domain.EventAttendee) AttendeeResponse {
	return AttendeeResponse{
		VolunteerID:  a.VolunteerID,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		RegisteredAt: a.RegisteredAt.Format(time.RFC3339),
	}
}
