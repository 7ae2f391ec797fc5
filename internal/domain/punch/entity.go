package punch

import "time"

type Kind string

const (
	KindClockIn    Kind = "clock_in"
	KindClockOut   Kind = "clock_out"
	KindBreakStart Kind = "break_start"
	KindBreakEnd   Kind = "break_end"
)

type Source string

const (
	SourceTerminal         Source = "terminal"
	SourceManualAdjustment Source = "manual_adjustment"
)

// Punch is a single raw clock event. Punches are immutable once stored;
// corrections are added as new manual_adjustment rows, never edits.
type Punch struct {
	ID            string
	EmployeeID    string
	Timestamp     time.Time
	Kind          Kind
	Source        Source
	Justification *string
	AdjustedBy    *string
	CreatedAt     time.Time

	// DTO / Join
	EmployeeName *string
	EmployeeCode *string
}
