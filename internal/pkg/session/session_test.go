package session

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	auth := jwtauth.New("HS256", []byte("secret"), nil)
	exp := time.Now().Add(time.Hour).Unix()
	token, _, err := auth.Encode(map[string]interface{}{
		"user_id":  "admin-1",
		"username": "admin",
		"role":     "admin",
		"exp":      exp,
	})
	require.NoError(t, err)

	s, err := FromContext(jwtauth.NewContext(t.Context(), token, nil))
	require.NoError(t, err)
	assert.Equal(t, "admin-1", s.UserID)
	assert.Equal(t, "admin", s.Username)
	assert.Equal(t, participant.RoleAdmin, s.Role)
	assert.Equal(t, exp, s.ExpiresAt)
	assert.True(t, s.IsAdmin())
}

func TestFromContext_Missing(t *testing.T) {
	_, err := FromContext(t.Context())
	assert.ErrorIs(t, err, ErrNoSession)

	auth := jwtauth.New("HS256", []byte("secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{"username": "admin"})
	require.NoError(t, err)

	_, err = FromContext(jwtauth.NewContext(t.Context(), token, nil))
	assert.ErrorIs(t, err, ErrNoSession)
}
