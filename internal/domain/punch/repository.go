package punch

import (
	"context"
	"time"
)

type PunchRepository interface {
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListByEmployeeAndRange returns every punch for the employee whose
	// timestamp falls inside [start, end), ordered by timestamp ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, start time.Time, end time.Time) ([]Punch, error)

	// List returns filtered punches with employee labels joined in,
	// ordered by timestamp ascending, plus the unpaginated total.
	List(ctx context.Context, employeeID string, filter PunchFilter) ([]Punch, int64, error)
}
