package announcement

import (
	"testing"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementRequest_Validate(t *testing.T) {
	req := AnnouncementRequest{
		Content:   "Apel pagi dimulai pukul 07.30",
		StartDate: "2025-07-07T07:00:00+08:00",
		EndDate:   "2025-07-07T10:00:00+08:00",
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, 3*time.Hour, req.End.Sub(req.Start))
}

func TestAnnouncementRequest_ValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		req    AnnouncementRequest
		fields []string
	}{
		{"all missing", AnnouncementRequest{}, []string{"content", "start_date", "end_date"}},
		{"bad format", AnnouncementRequest{Content: "x", StartDate: "2025-07-07", EndDate: "tomorrow"}, []string{"start_date", "end_date"}},
		{"end before start", AnnouncementRequest{Content: "x", StartDate: "2025-07-07T10:00:00Z", EndDate: "2025-07-07T09:00:00Z"}, []string{"end_date"}},
		{"empty window", AnnouncementRequest{Content: "x", StartDate: "2025-07-07T10:00:00Z", EndDate: "2025-07-07T10:00:00Z"}, []string{"end_date"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			got := errs.ToMap()
			assert.Len(t, got, len(c.fields))
			for _, f := range c.fields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestAnnouncement_IsActiveAt(t *testing.T) {
	start := time.Date(2025, 7, 7, 7, 0, 0, 0, time.UTC)
	a := Announcement{StartDate: start, EndDate: start.Add(time.Hour)}

	assert.False(t, a.IsActiveAt(start.Add(-time.Second)))
	assert.True(t, a.IsActiveAt(start))
	assert.True(t, a.IsActiveAt(start.Add(time.Hour)))
	assert.False(t, a.IsActiveAt(start.Add(time.Hour+time.Second)))
}
