package domain

import "time"

// Event is a scheduled volunteering activity. Capacity 0 means unlimited.
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

type EventWithCount struct {
	Event           Event `json:"event"`
	RegisteredCount int   `json:"registered_count"`
}

type CreateEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	Location    string
	Capacity    int
}

type UpdateEventInput struct {
	Title       string
	Description string
	EventDate   time.Time
	Location    string
	Capacity    int
}
