// Package session exposes the authenticated dashboard user to services.
// It is built from the verified JWT claims placed in the request context by
// jwtauth.Verifier and is the only way services learn who is acting.
package session

import (
	"context"
	"errors"

	"github.com/go-chi/jwtauth/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
)

var ErrNoSession = errors.New("no authenticated session in context")

type Session struct {
	UserID    string
	Username  string
	Role      participant.Role
	ExpiresAt int64
}

func (s Session) IsAdmin() bool {
	return s.Role == participant.RoleAdmin
}

// FromContext reads the session from verified token claims.
func FromContext(ctx context.Context) (Session, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return Session{}, ErrNoSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Session{}, ErrNoSession
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	s := Session{
		UserID:   userID,
		Username: username,
		Role:     participant.Role(role),
	}
	if exp := token.Expiration(); !exp.IsZero() {
		s.ExpiresAt = exp.Unix()
	}
	return s, nil
}
