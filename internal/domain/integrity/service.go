package integrity

import "context"

type IntegrityService interface {
	// CheckDuplicates looks for other active participants whose attendance
	// history used the same Android ID as the given record.
	CheckDuplicates(ctx context.Context, userID string, attendanceID string) (DuplicateCheckResponse, error)

	// Sweep runs the duplicate check over today's check-ins and logs findings.
	Sweep(ctx context.Context) error
}
