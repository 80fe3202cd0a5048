package domain

import "time"

type UpcomingEvent struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	EventDate time.Time `json:"event_date"`
	Location  string    `json:"location"`
}

type DashboardSummary struct {
	TotalEvents     int             `json:"total_events"`
	TotalVolunteers int             `json:"total_volunteers"`
	TotalCapacity   int             `json:"total_capacity"`
	Upcoming        []UpcomingEvent `json:"upcoming"`
}
