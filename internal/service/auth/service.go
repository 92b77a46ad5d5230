package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/auth"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/jwt"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/session"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	participant.ParticipantRepository
	jwt.Service
}

func NewAuthService(participantRepository participant.ParticipantRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		ParticipantRepository: participantRepository,
		Service:               jwtService,
	}
}

// Login implements auth.AuthService.
// Only admins may open a dashboard session.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	account, err := a.ParticipantRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, participant.ErrParticipantNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get account by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !account.IsAdmin() {
		slog.Warn("dashboard login refused for non-admin account", "username", account.Username)
		return auth.LoginResponse{}, auth.ErrAdminPrivilegeRequired
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	slog.Info("admin logged in", "user_id", account.ID, "username", account.Username)

	return auth.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: auth.SessionUser{
			ID:       account.ID,
			Name:     account.Name,
			Username: account.Username,
			Role:     string(account.Role),
		},
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	sess, err := session.FromContext(ctx)
	if err != nil || token == "" {
		return auth.ErrInvalidToken
	}

	a.Service.RevokeToken(token, sess.ExpiresAt)
	slog.Info("admin logged out", "user_id", sess.UserID)
	return nil
}
