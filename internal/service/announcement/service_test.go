package announcement

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/announcement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAnnouncementRepo struct {
	items map[string]announcement.Announcement
}

func (r *memAnnouncementRepo) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	r.items[a.ID] = a
	return a, nil
}

func (r *memAnnouncementRepo) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	a, ok := r.items[id]
	if !ok {
		return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
	}
	return a, nil
}

func (r *memAnnouncementRepo) Update(ctx context.Context, a announcement.Announcement) error {
	if _, ok := r.items[a.ID]; !ok {
		return announcement.ErrAnnouncementNotFound
	}
	r.items[a.ID] = a
	return nil
}

func (r *memAnnouncementRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return announcement.ErrAnnouncementNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memAnnouncementRepo) ListActive(ctx context.Context, at time.Time) ([]announcement.Announcement, error) {
	var out []announcement.Announcement
	for _, a := range r.items {
		if a.IsActiveAt(at) {
			out = append(out, a)
		}
	}
	return out, nil
}

var now = time.Date(2025, 7, 7, 8, 0, 0, 0, time.UTC)

func newTestService() *AnnouncementServiceImpl {
	svc := NewAnnouncementService(&memAnnouncementRepo{items: map[string]announcement.Announcement{}}).(*AnnouncementServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	auth := jwtauth.New("HS256", []byte("secret"), nil)
	token, _, err := auth.Encode(map[string]interface{}{"user_id": userID, "username": "admin", "role": "admin"})
	require.NoError(t, err)
	return jwtauth.NewContext(t.Context(), token, nil)
}

func TestCreateAndListActive(t *testing.T) {
	svc := newTestService()
	ctx := authedContext(t, "admin-1")

	current, err := svc.Create(ctx, announcement.AnnouncementRequest{
		Content:   "Apel pagi",
		StartDate: "2025-07-07T07:00:00Z",
		EndDate:   "2025-07-07T12:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, current.CreatedBy)
	assert.Equal(t, "admin-1", *current.CreatedBy)

	_, err = svc.Create(ctx, announcement.AnnouncementRequest{
		Content:   "Libur",
		StartDate: "2025-07-10T00:00:00+08:00",
		EndDate:   "2025-07-11T00:00:00+08:00",
	})
	require.NoError(t, err)

	active, err := svc.ListActive(t.Context())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Apel pagi", active[0].Content)
}

func TestUpdateAndDelete(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(t.Context(), announcement.AnnouncementRequest{
		Content:   "Apel pagi",
		StartDate: "2025-07-07T07:00:00Z",
		EndDate:   "2025-07-07T12:00:00Z",
	})
	require.NoError(t, err)
	assert.Nil(t, created.CreatedBy)

	updated, err := svc.Update(t.Context(), announcement.AnnouncementRequest{
		ID:        created.ID,
		Content:   "Apel pagi diundur",
		StartDate: "2025-07-07T08:00:00+08:00",
		EndDate:   "2025-07-07T12:00:00+08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Apel pagi diundur", updated.Content)
	assert.Equal(t, "2025-07-07T00:00:00Z", updated.StartDate)

	_, err = svc.Update(t.Context(), announcement.AnnouncementRequest{
		ID: "missing", Content: "x", StartDate: "2025-07-07T07:00:00Z", EndDate: "2025-07-07T12:00:00Z",
	})
	assert.ErrorIs(t, err, announcement.ErrAnnouncementNotFound)

	require.NoError(t, svc.Delete(t.Context(), created.ID))
	assert.ErrorIs(t, svc.Delete(t.Context(), created.ID), announcement.ErrAnnouncementNotFound)
}
