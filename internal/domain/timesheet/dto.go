package timesheet

import (
	"time"

	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

// EmployeeInfo is the pass-through employee header of a report.
type EmployeeInfo struct {
	FullName     string `json:"full_name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
	Position     string `json:"position"`
}

// ShiftPolicy is the schedule the report is evaluated against. Start and
// End carry only the time-of-day component.
type ShiftPolicy struct {
	Name                 string
	Start                time.Time
	End                  time.Time
	BreakDurationMinutes int
	LateGraceMinutes     int
}

// ShiftInfo is the serialized shift header of a report.
type ShiftInfo struct {
	Name                 string `json:"name"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	BreakDurationMinutes int    `json:"break_duration_minutes"`
	LateGraceMinutes     int    `json:"late_grace_minutes"`
}

// PunchEntry is a single raw punch echoed back inside a day record.
type PunchEntry struct {
	Time   string `json:"time"` // RFC3339, original zone preserved
	Kind   string `json:"kind"`
	Source string `json:"source"`
}

// DayRecord is one worked day with its derived metrics. Hours are
// rounded to two decimals, lateness to whole minutes.
type DayRecord struct {
	Date          string       `json:"date"` // YYYY-MM-DD
	DayOfWeek     string       `json:"day_of_week"`
	Punches       []PunchEntry `json:"punches"`
	WorkedHours   float64      `json:"worked_hours"`
	BreakHours    float64      `json:"break_hours"`
	LateMinutes   float64      `json:"late_minutes"`
	OvertimeHours float64      `json:"overtime_hours"`
}

// ReportTotals are field-wise sums of the rounded day values.
type ReportTotals struct {
	WorkedHours   float64 `json:"worked_hours"`
	BreakHours    float64 `json:"break_hours"`
	LateMinutes   float64 `json:"late_minutes"`
	OvertimeHours float64 `json:"overtime_hours"`
}

type PeriodReport struct {
	Employee    EmployeeInfo `json:"employee"`
	Shift       ShiftInfo    `json:"shift"`
	PeriodStart string       `json:"period_start"`
	PeriodEnd   string       `json:"period_end"`
	Days        []DayRecord  `json:"days"`
	Totals      ReportTotals `json:"totals"`
}

// ReportRequest identifies the employee and inclusive date range of a report.
type ReportRequest struct {
	EmployeeCode string `json:"employee_code"`
	StartDate    string `json:"start_date"` // YYYY-MM-DD
	EndDate      string `json:"end_date"`   // YYYY-MM-DD
}

func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}

	startDate, startValid := validator.IsValidDate(r.StartDate)
	if !startValid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	endDate, endValid := validator.IsValidDate(r.EndDate)
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
