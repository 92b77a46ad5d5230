package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// CreateMany inserts records, skipping (user_id, date) pairs that already
	// exist. It returns how many rows were inserted.
	CreateMany(ctx context.Context, records []Attendance) (int, error)

	// GetByID retrieves a record scoped to its owner
	GetByID(ctx context.Context, userID string, id string) (Attendance, error)

	// GetByIDAnyUser is used by leave approval where only the record ID is known
	GetByIDAnyUser(ctx context.Context, id string) (Attendance, error)

	// ListByUser returns the full attendance history of one participant, oldest first
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// ListLeaveRequests returns pending leave requests joined with participant names
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]Attendance, error)

	// ListCheckedInOn returns records on date that carry an Android ID
	ListCheckedInOn(ctx context.Context, date time.Time) ([]Attendance, error)

	Update(ctx context.Context, record Attendance) error
	Delete(ctx context.Context, userID string, id string) error
}
