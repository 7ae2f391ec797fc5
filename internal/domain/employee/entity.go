package employee

import "time"

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
)

type Employee struct {
	ID           string
	FullName     string
	EmployeeCode string
	Email        string
	BiometricID  *int64
	Status       Status
	DepartmentID string
	PositionID   string
	ShiftID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	DepartmentName *string
	PositionName   *string
	ShiftName      *string
}

// IsActive reports whether the employee may register punches.
func (e *Employee) IsActive() bool {
	return e.Status == StatusActive
}
