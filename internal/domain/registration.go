package domain

import "time"

// Registration links one volunteer to one event. At most one registration
// exists per (event, volunteer) pair; the pair is unique at the storage level.
type Registration struct {
	ID           int64     `json:"id"`
	EventID      int64     `json:"event_id"`
	VolunteerID  int64     `json:"volunteer_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

// VolunteerRegistration is the "my registrations" projection: event fields
// joined with the registration timestamp.
type VolunteerRegistration struct {
	EventID      int64     `json:"event_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	EventDate    time.Time `json:"event_date"`
	Location     string    `json:"location"`
	Capacity     int       `json:"capacity"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventAttendee is the per-event projection: volunteer fields joined with
// the registration timestamp.
type EventAttendee struct {
	VolunteerID  int64     `json:"volunteer_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ReminderTarget is a registration whose event starts soon and whose
// volunteer has not been reminded yet.
type ReminderTarget struct {
	RegistrationID int64
	Volunteer      Volunteer
	Event          Event
}
