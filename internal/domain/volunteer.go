package domain

import "time"

// Role controls access to administrative operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Volunteer is an account in the system. The password hash never leaves the
// backend.
type Volunteer struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Role           Role      `json:"role"`
	PasswordHash   string    `json:"-"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateVolunteerInput struct {
	Name           string
	Email          string
	Phone          string
	Password       string
	TelegramChatID *int64
}

type UpdateVolunteerInput struct {
	Name           string
	Email          string
	Phone          string
	TelegramChatID *int64
}
