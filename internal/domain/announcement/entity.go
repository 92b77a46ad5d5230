package announcement

import "time"

type Announcement struct {
	ID        string
	Content   string
	StartDate time.Time
	EndDate   time.Time
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActiveAt reports whether at lies inside [StartDate, EndDate].
func (a Announcement) IsActiveAt(at time.Time) bool {
	return !at.Before(a.StartDate) && !at.After(a.EndDate)
}
