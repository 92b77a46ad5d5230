package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/attendance"
	"github.com/magang-absensi/attendance-backend-go/internal/domain/participant"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
)

// uuidParam reads an ID path parameter. An ID that is not a UUID cannot
// exist, so it is reported as notFound without reaching the database.
func uuidParam(r *http.Request, key string, notFound error) (string, error) {
	id := chi.URLParam(r, key)
	if !validator.IsValidUUID(id) {
		return "", notFound
	}
	return id, nil
}

func userIDParam(r *http.Request) (string, error) {
	return uuidParam(r, "userId", participant.ErrParticipantNotFound)
}

func attendanceIDParam(r *http.Request) (string, error) {
	return uuidParam(r, "attendanceId", attendance.ErrAttendanceNotFound)
}

// userAttendanceParams reads both IDs of a nested attendance route.
func userAttendanceParams(r *http.Request) (userID string, attendanceID string, err error) {
	if userID, err = userIDParam(r); err != nil {
		return "", "", err
	}
	if attendanceID, err = attendanceIDParam(r); err != nil {
		return "", "", err
	}
	return userID, attendanceID, nil
}
