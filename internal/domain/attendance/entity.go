package attendance

import (
	"strings"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/geo"
)

type Attendance struct {
	ID               string
	UserID           string
	Date             time.Time
	Status           Status
	CheckInTime      *time.Time
	CheckInLatitude  *float64
	CheckInLongitude *float64
	AndroidID        *string
	IPAddress        *string
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	UserName *string
}

// CheckInCoordinate is nil unless both latitude and longitude are recorded.
func (a Attendance) CheckInCoordinate() *geo.Coordinate {
	return geo.NewCoordinate(a.CheckInLatitude, a.CheckInLongitude)
}

// DeviceID returns the Android ID exactly as recorded, or "" when none was.
func (a Attendance) DeviceID() string {
	if a.AndroidID == nil {
		return ""
	}
	return *a.AndroidID
}

// HasDevice reports whether a non-blank Android ID was recorded.
func (a Attendance) HasDevice() bool {
	return strings.TrimSpace(a.DeviceID()) != ""
}
