package position

import "time"

type Position struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
