package punch

import (
	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

var validKinds = []string{
	string(KindClockIn), string(KindClockOut),
	string(KindBreakStart), string(KindBreakEnd),
}

// TerminalPunchRequest is sent by a physical terminal after a fingerprint read.
// The timestamp is always taken from the server clock.
type TerminalPunchRequest struct {
	BiometricID int64  `json:"biometric_id"`
	Kind        string `json:"kind"`
}

func (r *TerminalPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BiometricID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "biometric_id",
			Message: "biometric_id must be a positive number",
		})
	}
	if !validator.IsInSlice(r.Kind, validKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: clock_in, clock_out, break_start, break_end",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdjustPunchRequest registers a punch on behalf of an employee. A
// justification is mandatory; the adjusting user comes from the JWT.
type AdjustPunchRequest struct {
	EmployeeCode  string `json:"employee_code"`
	Timestamp     string `json:"timestamp"` // RFC3339
	Kind          string `json:"kind"`
	Justification string `json:"justification"`
}

func (r *AdjustPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if _, valid := validator.IsValidDateTime(r.Timestamp); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an RFC3339 datetime, e.g. 2024-01-15T08:30:00-03:00",
		})
	}
	if !validator.IsInSlice(r.Kind, validKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: clock_in, clock_out, break_start, break_end",
		})
	}
	if validator.IsEmpty(r.Justification) {
		errs = append(errs, validator.ValidationError{
			Field:   "justification",
			Message: "justification is required for manual adjustments",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Timestamp     string  `json:"timestamp"`
	Kind          string  `json:"kind"`
	Source        string  `json:"source"`
	Justification *string `json:"justification,omitempty"`
	AdjustedBy    *string `json:"adjusted_by,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type PunchFilter struct {
	EmployeeCode string  `json:"employee_code"`
	StartDate    string  `json:"start_date"` // YYYY-MM-DD
	EndDate      string  `json:"end_date"`   // YYYY-MM-DD
	Kind         *string `json:"kind,omitempty"`
	Source       *string `json:"source,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *PunchFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	startDate, startValid := validator.IsValidDate(f.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	endDate, endValid := validator.IsValidDate(f.EndDate)
	if !endValid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startValid && endValid && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.Kind != nil && !validator.IsInSlice(*f.Kind, validKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: clock_in, clock_out, break_start, break_end",
		})
	}
	if f.Source != nil && !validator.IsInSlice(*f.Source, []string{string(SourceTerminal), string(SourceManualAdjustment)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: terminal, manual_adjustment",
		})
	}

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListPunchesResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Punches    []PunchResponse `json:"punches"`
}
