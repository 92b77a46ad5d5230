package announcement

import (
	"time"

	"github.com/magang-absensi/attendance-backend-go/internal/pkg/validator"
)

// AnnouncementRequest is shared by create and update.
type AnnouncementRequest struct {
	ID        string `json:"-"`
	Content   string `json:"content"`
	StartDate string `json:"start_date"` // RFC3339
	EndDate   string `json:"end_date"`   // RFC3339

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *AnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	startOK, endOK := false, false

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if r.Start, startOK = validator.IsValidDateTime(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be an RFC3339 timestamp",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if r.End, endOK = validator.IsValidDateTime(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be an RFC3339 timestamp",
		})
	}

	if startOK && endOK && !r.End.After(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be after start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnouncementResponse struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	CreatedBy *string `json:"created_by,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
