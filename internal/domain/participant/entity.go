package participant

import (
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/utils"
)

type Role string

const (
	RoleUser  Role = "user"  // Internship participant
	RoleAdmin Role = "admin" // Office staff using the dashboard
)

type Participant struct {
	ID              string
	Name            string
	Username        string
	PasswordHash    string
	Email           string
	Phone           *string
	Role            Role
	InternshipStart time.Time
	InternshipEnd   time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActive reports whether the internship is still running on the calendar
// day of now (taken in now's own location). The end date still counts.
func (p Participant) IsActive(now time.Time) bool {
	return !utils.TruncateToDate(now).After(utils.TruncateToDate(p.InternshipEnd))
}

// CoversDate reports whether date lies inside the internship window.
func (p Participant) CoversDate(date time.Time) bool {
	d := utils.TruncateToDate(date)
	return !d.Before(utils.TruncateToDate(p.InternshipStart)) && !d.After(utils.TruncateToDate(p.InternshipEnd))
}

func (p Participant) IsAdmin() bool {
	return p.Role == RoleAdmin
}
