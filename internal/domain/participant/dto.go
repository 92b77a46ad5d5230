package participant

import (
	"strings"
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/utils"
	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// PARTICIPANT DTOs
// ========================================

type CreateParticipantRequest struct {
	Name            string  `json:"name" validate:"required"`
	Username        string  `json:"username" validate:"required"`
	Password        string  `json:"password" validate:"required,min=6,max=10"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty"`
	Role            Role    `json:"role" validate:"omitempty,oneof=user admin"`
	InternshipStart string  `json:"internship_start" validate:"required"` // YYYY-MM-DD
	InternshipEnd   string  `json:"internship_end" validate:"required"`   // YYYY-MM-DD

	// Parsed by Validate
	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

func (r *CreateParticipantRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if r.Role == "" {
		r.Role = RoleUser
	}

	errs := validator.Struct(r)

	if !errs.Has("name") && !validator.IsValidPersonName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name may only contain letters and spaces",
		})
	}
	if !errs.Has("username") && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be lowercase letters and digits (not digits only), max 20 characters",
		})
	}
	errs = append(errs, validatePhone(r.Phone)...)

	var dateErrs validator.ValidationErrors
	r.StartDate, r.EndDate, dateErrs = validateInternshipWindow(r.InternshipStart, r.InternshipEnd, errs)
	errs = append(errs, dateErrs...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateParticipantRequest replaces the editable fields. Password is only
// changed when provided.
type UpdateParticipantRequest struct {
	ID              string  `json:"-"`
	Name            string  `json:"name" validate:"required"`
	Username        string  `json:"username" validate:"required"`
	Password        *string `json:"password,omitempty" validate:"omitempty,min=6,max=10"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty"`
	InternshipStart string  `json:"internship_start" validate:"required"`
	InternshipEnd   string  `json:"internship_end" validate:"required"`

	StartDate time.Time `json:"-"`
	EndDate   time.Time `json:"-"`
}

func (r *UpdateParticipantRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if r.Password != nil && *r.Password == "" {
		r.Password = nil
	}

	errs := validator.Struct(r)

	if !errs.Has("name") && !validator.IsValidPersonName(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name may only contain letters and spaces",
		})
	}
	if !errs.Has("username") && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be lowercase letters and digits (not digits only), max 20 characters",
		})
	}
	errs = append(errs, validatePhone(r.Phone)...)

	var dateErrs validator.ValidationErrors
	r.StartDate, r.EndDate, dateErrs = validateInternshipWindow(r.InternshipStart, r.InternshipEnd, errs)
	errs = append(errs, dateErrs...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validatePhone(phone *string) validator.ValidationErrors {
	if phone == nil || *phone == "" {
		return nil
	}
	if !validator.IsNumeric(*phone) {
		return validator.ValidationErrors{{Field: "phone", Message: "phone may only contain digits"}}
	}
	if len(*phone) > 13 {
		return validator.ValidationErrors{{Field: "phone", Message: "phone must not exceed 13 digits"}}
	}
	return nil
}

// validateInternshipWindow parses both dates, requires them on weekdays and
// start <= end. Fields already failing in prior are skipped.
func validateInternshipWindow(startStr, endStr string, prior validator.ValidationErrors) (time.Time, time.Time, validator.ValidationErrors) {
	var errs validator.ValidationErrors

	start, startOK := time.Time{}, false
	if !prior.Has("internship_start") {
		start, startOK = validator.IsValidDate(startStr)
		switch {
		case !startOK:
			errs = append(errs, validator.ValidationError{
				Field:   "internship_start",
				Message: "internship_start must be in YYYY-MM-DD format",
			})
		case !utils.IsWeekday(start):
			startOK = false
			errs = append(errs, validator.ValidationError{
				Field:   "internship_start",
				Message: "internship_start must not fall on a Saturday or Sunday",
			})
		}
	}

	end, endOK := time.Time{}, false
	if !prior.Has("internship_end") {
		end, endOK = validator.IsValidDate(endStr)
		switch {
		case !endOK:
			errs = append(errs, validator.ValidationError{
				Field:   "internship_end",
				Message: "internship_end must be in YYYY-MM-DD format",
			})
		case !utils.IsWeekday(end):
			endOK = false
			errs = append(errs, validator.ValidationError{
				Field:   "internship_end",
				Message: "internship_end must not fall on a Saturday or Sunday",
			})
		}
	}

	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "internship_start",
			Message: "internship_start must not be after internship_end",
		})
	}

	return start, end, errs
}

type ListFilter struct {
	Status string  `json:"status"` // active, finished, all
	Search *string `json:"search,omitempty"`
}

const (
	StatusActive   = "active"
	StatusFinished = "finished"
	StatusAll      = "all"
)

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status == "" {
		f.Status = StatusActive
	}
	if !validator.IsInSlice(f.Status, []string{StatusActive, StatusFinished, StatusAll}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, finished, all",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ParticipantResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Role            Role    `json:"role"`
	InternshipStart string  `json:"internship_start"`
	InternshipEnd   string  `json:"internship_end"`
	Status          string  `json:"status"`
	TotalWorkdays   int     `json:"total_workdays"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
