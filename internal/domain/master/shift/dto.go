package shift

import (
	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

// ShiftResponse represents the response structure for a shift.
type ShiftResponse struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"` // HH:MM
	EndTime              string `json:"end_time"`   // HH:MM
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	LateGraceMinutes     int    `json:"late_grace_minutes"`
}

// CreateShiftRequest represents the request structure for creating a shift.
type CreateShiftRequest struct {
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"` // HH:MM
	EndTime              string `json:"end_time"`   // HH:MM
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	LateGraceMinutes     *int   `json:"late_grace_minutes,omitempty"` // defaults to 5
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if _, valid := validator.IsValidTimeOfDay(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if _, valid := validator.IsValidTimeOfDay(r.EndTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}
	if r.LateGraceMinutes != nil && *r.LateGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_grace_minutes",
			Message: "late_grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateShiftRequest represents the request structure for updating a shift.
type UpdateShiftRequest struct {
	ID                   string  `json:"-"`
	Name                 *string `json:"name,omitempty"`
	StartTime            *string `json:"start_time,omitempty"` // HH:MM
	EndTime              *string `json:"end_time,omitempty"`   // HH:MM
	BreakDurationMinutes *int    `json:"break_duration_minutes,omitempty"`
	LateGraceMinutes     *int    `json:"late_grace_minutes,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.StartTime != nil {
		if _, valid := validator.IsValidTimeOfDay(*r.StartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}
	if r.EndTime != nil {
		if _, valid := validator.IsValidTimeOfDay(*r.EndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	if r.BreakDurationMinutes != nil && *r.BreakDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration_minutes",
			Message: "break_duration_minutes must not be negative",
		})
	}
	if r.LateGraceMinutes != nil && *r.LateGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_grace_minutes",
			Message: "late_grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
