package domain

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrVolunteerNotFound = errors.New("volunteer not found")
)

var (
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("no spots left for this event")
	ErrNotRegistered     = errors.New("not registered for this event")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRateLimited        = errors.New("too many login attempts")
	ErrForbidden          = errors.New("access denied")
)

var (
	ErrValidation = errors.New("validation error")
)
