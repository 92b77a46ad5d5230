package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Generate creates one Absent record per weekday of the internship
	Generate(ctx context.Context, userID string) (GenerateAttendanceResponse, error)

	// History returns all records of one participant
	History(ctx context.Context, userID string) ([]AttendanceResponse, error)

	Get(ctx context.Context, userID string, id string) (AttendanceResponse, error)

	// Update applies an edit; the stored status goes through DeriveStatus
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	Delete(ctx context.Context, userID string, id string) error

	// Classify previews distance and derived status without persisting anything
	Classify(ctx context.Context, req ClassifyRequest) (ClassifyResponse, error)

	Geofence(ctx context.Context) GeofenceResponse

	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]AttendanceResponse, error)
	ApproveLeave(ctx context.Context, id string) (AttendanceResponse, error)
	RejectLeave(ctx context.Context, id string) (AttendanceResponse, error)
}
