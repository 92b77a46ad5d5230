package attendance

import (
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/geo"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID               string   `json:"id"`
	UserID           string   `json:"user_id"`
	UserName         string   `json:"user_name,omitempty"`
	Date             string   `json:"date"`
	Status           Status   `json:"status"`
	CheckInTime      *string  `json:"check_in_time"`
	CheckInLatitude  *float64 `json:"check_in_latitude"`
	CheckInLongitude *float64 `json:"check_in_longitude"`
	AndroidID        *string  `json:"android_id"`
	IPAddress        *string  `json:"ip_address"`
	Notes            *string  `json:"notes"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

// UpdateAttendanceRequest replaces the editable fields of one record, the
// way the edit form submits them. A null check-in field clears it.
// The stored status is decided by DeriveStatus, not copied verbatim.
type UpdateAttendanceRequest struct {
	ID               string   `json:"-"`
	UserID           string   `json:"-"`
	Date             string   `json:"date"` // YYYY-MM-DD
	Status           Status   `json:"status"`
	CheckInTime      *string  `json:"check_in_time"` // RFC3339
	CheckInLatitude  *float64 `json:"check_in_latitude"`
	CheckInLongitude *float64 `json:"check_in_longitude"`
	Notes            *string  `json:"notes"`

	// Parsed by Validate
	ParsedDate        time.Time  `json:"-"`
	ParsedCheckInTime *time.Time `json:"-"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if parsed, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = parsed
	}

	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Hadir, Tidak Hadir, Di Luar Area, Izin, Izin Disetujui",
		})
	}

	errs = append(errs, validateCoordinatePair(r.CheckInLatitude, r.CheckInLongitude, "check_in_latitude", "check_in_longitude")...)

	r.ParsedCheckInTime = nil
	if r.CheckInTime != nil && *r.CheckInTime != "" {
		if t, valid := validator.IsValidDateTime(*r.CheckInTime); valid {
			utc := t.UTC()
			r.ParsedCheckInTime = &utc
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an RFC3339 timestamp",
			})
		}
	}

	if r.Notes != nil && len(*r.Notes) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ClassifyRequest previews the geofence decision for the edit form.
type ClassifyRequest struct {
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	CurrentStatus *Status  `json:"current_status,omitempty"`
	Status        *Status  `json:"status,omitempty"` // explicitly requested status
}

func (r *ClassifyRequest) Validate() error {
	errs := validateCoordinatePair(r.Latitude, r.Longitude, "latitude", "longitude")

	if r.CurrentStatus != nil && !r.CurrentStatus.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "current_status",
			Message: "current_status is not a known status",
		})
	}
	if r.Status != nil && !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is not a known status",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClassifyResponse struct {
	// DistanceMeters is null when no coordinate was given.
	DistanceMeters *float64       `json:"distance_meters"`
	WithinFence    bool           `json:"within_fence"`
	RadiusMeters   float64        `json:"radius_meters"`
	Office         geo.Coordinate `json:"office"`
	DerivedStatus  *Status        `json:"derived_status,omitempty"`
}

type GeofenceResponse struct {
	Office       geo.Coordinate `json:"office"`
	RadiusMeters float64        `json:"radius_meters"`
}

type GenerateAttendanceResponse struct {
	UserID        string `json:"user_id"`
	TotalWorkdays int    `json:"total_workdays"`
	Created       int    `json:"created"`
}

type LeaveRequestFilter struct {
	Search *string `json:"search,omitempty"`
}

func validateCoordinatePair(lat, lon *float64, latField, lonField string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if (lat == nil) != (lon == nil) {
		field := latField
		if lat != nil {
			field = lonField
		}
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: latField + " and " + lonField + " must be provided together",
		})
		return errs
	}

	if lat != nil && (*lat < -90 || *lat > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   latField,
			Message: latField + " must be between -90 and 90",
		})
	}

	if lon != nil && (*lon < -180 || *lon > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   lonField,
			Message: lonField + " must be between -180 and 180",
		})
	}

	return errs
}
