package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AdminAccount describes the dashboard account created on first start.
type AdminAccount struct {
	Name     string
	Username string
	Email    string
	Password string
}

// SeedAdmin creates the admin account when no user holds its username yet.
// It reports whether an account was created. An existing account is never
// modified, so a changed ADMIN_PASSWORD does not reset a live password.
func SeedAdmin(ctx context.Context, repo participant.ParticipantRepository, account AdminAccount, now time.Time) (bool, error) {
	if account.Password == "" {
		slog.Debug("admin seed skipped: no password configured")
		return false, nil
	}

	existing, err := repo.GetByUsername(ctx, account.Username)
	switch {
	case err == nil:
		if !existing.IsAdmin() {
			slog.Warn("admin seed skipped: username belongs to a participant", "username", account.Username)
		}
		return false, nil
	case !errors.Is(err, participant.ErrParticipantNotFound):
		return false, fmt.Errorf("failed to look up admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash admin password: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return false, fmt.Errorf("failed to generate admin ID: %w", err)
	}

	// Admins have no internship; the window is pinned to the seed date.
	today := utils.TruncateToDate(now)
	if _, err := repo.Create(ctx, participant.Participant{
		ID:              id.String(),
		Name:            account.Name,
		Username:        account.Username,
		PasswordHash:    string(hash),
		Email:           account.Email,
		Role:            participant.RoleAdmin,
		InternshipStart: today,
		InternshipEnd:   today,
	}); err != nil {
		return false, fmt.Errorf("failed to create admin account: %w", err)
	}

	slog.Info("admin account seeded", "username", account.Username)
	return true, nil
}
