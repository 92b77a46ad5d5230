package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/geo"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/session"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	participant.ParticipantRepository
	fence    geo.Fence
	location *time.Location
	now      func() time.Time
}

// timePtrToString safely converts a *time.Time to a string in loc.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format(time.RFC3339)
	return &format
}

// toResponse renders check-in times in office time.
func (s *AttendanceServiceImpl) toResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		Date:             a.Date.Format("2006-01-02"),
		Status:           a.Status,
		CheckInTime:      timePtrToString(a.CheckInTime, s.location),
		CheckInLatitude:  a.CheckInLatitude,
		CheckInLongitude: a.CheckInLongitude,
		AndroidID:        a.AndroidID,
		IPAddress:        a.IPAddress,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
	if a.UserName != nil {
		resp.UserName = *a.UserName
	}
	return resp
}

func (s *AttendanceServiceImpl) toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		out = append(out, s.toResponse(r))
	}
	return out
}

// actor names the dashboard user for audit logs.
func actor(ctx context.Context) string {
	s, err := session.FromContext(ctx)
	if err != nil {
		return ""
	}
	return s.Username
}

// Generate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Generate(ctx context.Context, userID string) (attendance.GenerateAttendanceResponse, error) {
	p, err := s.ParticipantRepository.GetByID(ctx, userID)
	if err != nil {
		return attendance.GenerateAttendanceResponse{}, err
	}

	days := utils.Weekdays(p.InternshipStart, p.InternshipEnd)
	if len(days) == 0 {
		return attendance.GenerateAttendanceResponse{}, attendance.ErrNoWorkdaysInInternship
	}

	now := s.now().UTC()
	records := make([]attendance.Attendance, 0, len(days))
	for _, day := range days {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.GenerateAttendanceResponse{}, fmt.Errorf("failed to generate attendance ID: %w", err)
		}
		records = append(records, attendance.Attendance{
			ID:        id.String(),
			UserID:    p.ID,
			Date:      day,
			Status:    attendance.StatusAbsent,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	created, err := s.AttendanceRepository.CreateMany(ctx, records)
	if err != nil {
		return attendance.GenerateAttendanceResponse{}, fmt.Errorf("failed to create attendance records: %w", err)
	}

	slog.Info("attendance generated",
		"user_id", p.ID,
		"workdays", len(days),
		"created", created,
		"by", actor(ctx),
	)

	return attendance.GenerateAttendanceResponse{
		UserID:        p.ID,
		TotalWorkdays: len(days),
		Created:       created,
	}, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	if _, err := s.ParticipantRepository.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	return s.toResponses(records), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, userID string, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, userID, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return s.toResponse(record), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	current, err := s.AttendanceRepository.GetByID(ctx, req.UserID, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	p, err := s.ParticipantRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !utils.IsWeekday(req.ParsedDate) {
		return attendance.AttendanceResponse{}, attendance.ErrDateNotWeekday
	}
	if !p.CoversDate(req.ParsedDate) {
		return attendance.AttendanceResponse{}, attendance.ErrDateOutsideInternship
	}

	checkIn := geo.NewCoordinate(req.CheckInLatitude, req.CheckInLongitude)

	status := current.Status
	switch {
	case req.Status != current.Status:
		status = attendance.DeriveStatus(current.Status, attendance.StatusEdit(req.Status), checkIn, s.fence)
	case coordinateChanged(current.CheckInCoordinate(), checkIn):
		status = attendance.DeriveStatus(current.Status, attendance.CoordinateEdit(), checkIn, s.fence)
	}

	updated := current
	updated.Date = req.ParsedDate
	updated.Status = status
	updated.CheckInTime = req.ParsedCheckInTime
	updated.CheckInLatitude = req.CheckInLatitude
	updated.CheckInLongitude = req.CheckInLongitude
	updated.Notes = req.Notes
	updated.UpdatedAt = s.now().UTC()

	if err := s.AttendanceRepository.Update(ctx, updated); err != nil {
		if errors.Is(err, attendance.ErrDuplicateDate) || errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	if status != req.Status {
		slog.Info("attendance status reclassified by geofence",
			"attendance_id", updated.ID,
			"requested", req.Status,
			"stored", status,
		)
	}
	slog.Info("attendance updated",
		"attendance_id", updated.ID,
		"user_id", updated.UserID,
		"status", status,
		"by", actor(ctx),
	)

	return s.toResponse(updated), nil
}

func coordinateChanged(before, after *geo.Coordinate) bool {
	if before == nil || after == nil {
		return before != after
	}
	return *before != *after
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, userID string, id string) error {
	if err := s.AttendanceRepository.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	slog.Info("attendance deleted", "attendance_id", id, "user_id", userID, "by", actor(ctx))
	return nil
}

// Classify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Classify(ctx context.Context, req attendance.ClassifyRequest) (attendance.ClassifyResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ClassifyResponse{}, err
	}

	checkIn := geo.NewCoordinate(req.Latitude, req.Longitude)
	c := s.fence.Classify(checkIn)

	resp := attendance.ClassifyResponse{
		WithinFence:  c.WithinFence,
		RadiusMeters: s.fence.RadiusMeters,
		Office:       s.fence.Office,
	}
	if !math.IsInf(c.DistanceMeters, 1) {
		d := c.DistanceMeters
		resp.DistanceMeters = &d
	}

	switch {
	case req.Status != nil:
		current := *req.Status
		if req.CurrentStatus != nil {
			current = *req.CurrentStatus
		}
		derived := attendance.DeriveStatus(current, attendance.StatusEdit(*req.Status), checkIn, s.fence)
		resp.DerivedStatus = &derived
	case req.CurrentStatus != nil:
		derived := attendance.DeriveStatus(*req.CurrentStatus, attendance.CoordinateEdit(), checkIn, s.fence)
		resp.DerivedStatus = &derived
	}

	return resp, nil
}

// Geofence implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Geofence(ctx context.Context) attendance.GeofenceResponse {
	return attendance.GeofenceResponse{
		Office:       s.fence.Office,
		RadiusMeters: s.fence.RadiusMeters,
	}
}

// ListLeaveRequests implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListLeaveRequests(ctx context.Context, filter attendance.LeaveRequestFilter) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListLeaveRequests(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return s.toResponses(records), nil
}

// ApproveLeave implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ApproveLeave(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.resolveLeave(ctx, id, attendance.StatusLeaveApproved)
}

// RejectLeave implements attendance.AttendanceService.
// A rejected request falls back to Absent.
func (s *AttendanceServiceImpl) RejectLeave(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	return s.resolveLeave(ctx, id, attendance.StatusAbsent)
}

func (s *AttendanceServiceImpl) resolveLeave(ctx context.Context, id string, to attendance.Status) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByIDAnyUser(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record.Status != attendance.StatusLeaveRequested {
		return attendance.AttendanceResponse{}, attendance.ErrNotLeaveRequest
	}

	record.Status = attendance.DeriveStatus(record.Status, attendance.StatusEdit(to), record.CheckInCoordinate(), s.fence)
	record.UpdatedAt = s.now().UTC()

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve leave request: %w", err)
	}

	slog.Info("leave request resolved",
		"attendance_id", record.ID,
		"user_id", record.UserID,
		"status", record.Status,
		"by", actor(ctx),
	)
	return s.toResponse(record), nil
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	participantRepo participant.ParticipantRepository,
	fence geo.Fence,
	location *time.Location,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository:  attendanceRepo,
		ParticipantRepository: participantRepo,
		fence:                 fence,
		location:              location,
		now:                   time.Now,
	}
}
