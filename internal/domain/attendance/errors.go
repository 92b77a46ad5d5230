package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrDuplicateDate          = errors.New("participant already has an attendance record on this date")
	ErrDateOutsideInternship  = errors.New("date is outside the participant's internship period")
	ErrDateNotWeekday         = errors.New("attendance dates must fall on a weekday")
	ErrNotLeaveRequest        = errors.New("attendance record is not a pending leave request")
	ErrNoWorkdaysInInternship = errors.New("internship period contains no weekdays")
)
