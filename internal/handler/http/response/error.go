package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/magang-absensi/attendance-backend-go/internal/domain/announcement"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/auth"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/integrity"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Session has ended, please log in again")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Participant domain errors
	case errors.Is(err, participant.ErrParticipantNotFound):
		NotFound(w, "Participant not found")
	case errors.Is(err, participant.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, participant.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Participant already has an attendance record on this date")
	case errors.Is(err, attendance.ErrNotLeaveRequest):
		Conflict(w, "Attendance record is not a pending leave request")
	case errors.Is(err, attendance.ErrDateOutsideInternship):
		BadRequest(w, "Date is outside the internship period", map[string]string{"date": err.Error()})
	case errors.Is(err, attendance.ErrDateNotWeekday):
		BadRequest(w, "Date must fall on a weekday", map[string]string{"date": err.Error()})
	case errors.Is(err, attendance.ErrNoWorkdaysInInternship):
		BadRequest(w, "Internship period contains no weekdays", nil)

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Integrity domain errors
	case errors.Is(err, integrity.ErrDuplicateCheckUnavailable):
		ServiceUnavailable(w, "DUPLICATE_CHECK_UNAVAILABLE", "Duplicate check unavailable")

	// Client went away; nobody reads the body
	case errors.Is(err, context.Canceled):
		slog.Debug("request cancelled by client", "error", err)
		writeJSON(w, 499, Response{Success: false})

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
