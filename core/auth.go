package core

import (
	"context"
	"errors"
	"time"
)

// User represents an authenticated principal returned to handlers.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password is wrong. The two causes are deliberately not distinguished
	// so that responses do not leak which field was incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoToken is returned when a protected route is reached without a token.
	ErrNoToken = errors.New("no token provided")

	// ErrInvalidToken is returned for malformed, tampered or expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthService defines registration and authentication behaviour.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}
