package attendance

import "github.com/magang-absensi/attendance-backend-go/internal/pkg/geo"

type Status string

// Wire values are the labels the dashboard shows.
const (
	StatusPresent        Status = "Hadir"
	StatusAbsent         Status = "Tidak Hadir"
	StatusOutsideArea    Status = "Di Luar Area"
	StatusLeaveRequested Status = "Izin"
	StatusLeaveApproved  Status = "Izin Disetujui"
)

var AllStatuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusOutsideArea,
	StatusLeaveRequested,
	StatusLeaveApproved,
}

func (s Status) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsLeave reports whether s is one of the leave states.
func (s Status) IsLeave() bool {
	return s == StatusLeaveRequested || s == StatusLeaveApproved
}

// isGeofenced: statuses decided by the check-in location.
func (s Status) isGeofenced() bool {
	return s == StatusPresent || s == StatusOutsideArea
}

type TriggerKind int

const (
	// TriggerCoordinateEdit: only the check-in coordinate changed.
	TriggerCoordinateEdit TriggerKind = iota + 1
	// TriggerStatusEdit: staff explicitly picked a status.
	TriggerStatusEdit
)

// Trigger describes the edit that asks for a status to be reconsidered.
type Trigger struct {
	Kind      TriggerKind
	Requested Status // only for TriggerStatusEdit
}

func CoordinateEdit() Trigger {
	return Trigger{Kind: TriggerCoordinateEdit}
}

func StatusEdit(requested Status) Trigger {
	return Trigger{Kind: TriggerStatusEdit, Requested: requested}
}

// DeriveStatus decides the status after an edit.
//
// A coordinate-only edit never touches a leave status or Absent; it
// reclassifies Present/OutsideArea when a coordinate is present. An explicit
// status edit to Present or OutsideArea is reclassified against the fence
// when a coordinate is present, except that a leave record is only
// reclassified when the edit asks for Present. Any other explicit status is
// taken as is.
func DeriveStatus(current Status, trigger Trigger, checkIn *geo.Coordinate, fence geo.Fence) Status {
	switch trigger.Kind {
	case TriggerCoordinateEdit:
		switch {
		case current.IsLeave():
			return current
		case current == StatusAbsent:
			return current
		case current.isGeofenced():
			if checkIn == nil {
				return current
			}
			return classifiedStatus(checkIn, fence)
		default:
			return current
		}

	case TriggerStatusEdit:
		switch {
		case !trigger.Requested.IsValid():
			return current
		case current.IsLeave() && trigger.Requested != StatusPresent:
			return trigger.Requested
		case trigger.Requested.isGeofenced():
			if checkIn == nil {
				return trigger.Requested
			}
			return classifiedStatus(checkIn, fence)
		default:
			return trigger.Requested
		}

	default:
		return current
	}
}

func classifiedStatus(checkIn *geo.Coordinate, fence geo.Fence) Status {
	if fence.Classify(checkIn).WithinFence {
		return StatusPresent
	}
	return StatusOutsideArea
}
