package fixtures

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type seedRepo struct {
	participant.ParticipantRepository
	byUsername map[string]participant.Participant
	lookupErr  error
	created    []participant.Participant
}

func (r *seedRepo) GetByUsername(ctx context.Context, username string) (participant.Participant, error) {
	if r.lookupErr != nil {
		return participant.Participant{}, r.lookupErr
	}
	p, ok := r.byUsername[username]
	if !ok {
		return participant.Participant{}, participant.ErrParticipantNotFound
	}
	return p, nil
}

func (r *seedRepo) Create(ctx context.Context, p participant.Participant) (participant.Participant, error) {
	r.created = append(r.created, p)
	return p, nil
}

var seedNow = time.Date(2025, 7, 7, 9, 30, 0, 0, time.UTC)

func TestSeedAdmin_CreatesAccount(t *testing.T) {
	repo := &seedRepo{byUsername: map[string]participant.Participant{}}
	account := AdminAccount{Name: "Administrator", Username: "admin", Email: "admin@localhost", Password: "admin123"}

	created, err := SeedAdmin(context.Background(), repo, account, seedNow)
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, repo.created, 1)
	p := repo.created[0]
	assert.Equal(t, participant.RoleAdmin, p.Role)
	assert.Equal(t, "admin", p.Username)
	assert.NotEmpty(t, p.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("admin123")))
	assert.Equal(t, time.Date(2025, 7, 7, 0, 0, 0, 0, time.UTC), p.InternshipStart)
}

func TestSeedAdmin_Skips(t *testing.T) {
	existing := map[string]participant.Participant{
		"admin": {ID: "a1", Username: "admin", Role: participant.RoleAdmin},
	}

	tests := []struct {
		name    string
		account AdminAccount
	}{
		{"no password", AdminAccount{Username: "root"}},
		{"already exists", AdminAccount{Username: "admin", Password: "admin123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &seedRepo{byUsername: existing}
			created, err := SeedAdmin(context.Background(), repo, tt.account, seedNow)
			require.NoError(t, err)
			assert.False(t, created)
			assert.Empty(t, repo.created)
		})
	}
}

func TestSeedAdmin_LookupFailure(t *testing.T) {
	repo := &seedRepo{lookupErr: errors.New("connection refused")}

	_, err := SeedAdmin(context.Background(), repo, AdminAccount{Username: "admin", Password: "admin123"}, seedNow)
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}
