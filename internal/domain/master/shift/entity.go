package shift

import "time"

// Shift is a daily work schedule template. StartTime and EndTime carry
// only the time-of-day component; the date part is ignored.
type Shift struct {
	ID                   string
	Name                 string
	StartTime            time.Time
	EndTime              time.Time
	BreakDurationMinutes int
	LateGraceMinutes     int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
