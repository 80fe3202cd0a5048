package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/gedeanz/ifrs-volunteers/internal/domain"
	"github.com/gedeanz/ifrs-volunteers/internal/service/ports"
)

type AuthService struct {
	volunteerRepo ports.VolunteerRepo
	secret        []byte
	tokenTTL      time.Duration
	limiter       *rate.Limiter
}

func NewAuthService(volunteerRepo ports.VolunteerRepo, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		volunteerRepo: volunteerRepo,
		secret:        []byte(secret),
		tokenTTL:      tokenTTL,
		limiter:       rate.NewLimiter(rate.Every(time.Second), 10),
	}
}

type tokenClaims struct {
	VolunteerID int64       `json:"id"`
	Email       string      `json:"email"`
	Role        domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Login verifies the credentials and issues a signed access token. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Volunteer, error) {
	if !s.limiter.Allow() {
		return "", nil, domain.ErrRateLimited
	}

	volunteer, err := s.volunteerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrVolunteerNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get volunteer: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(volunteer.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := tokenClaims{
		VolunteerID: volunteer.ID,
		Email:       volunteer.Email,
		Role:        volunteer.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, volunteer, nil
}

// ParseToken validates the token and returns the identity it carries.
func (s *AuthService) ParseToken(token string) (domain.Identity, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Identity{}, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return domain.Identity{}, jwt.ErrTokenInvalidClaims
	}

	return domain.Identity{
		VolunteerID: claims.VolunteerID,
		Email:       claims.Email,
		Role:        claims.Role,
	}, nil
}
