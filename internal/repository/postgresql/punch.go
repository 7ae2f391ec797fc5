package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, p punch.Punch) (punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO punches (id, employee_id, timestamp, kind, source, justification, adjusted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		p.ID,
		p.EmployeeID,
		p.Timestamp,
		p.Kind,
		p.Source,
		p.Justification,
		p.AdjustedBy,
	).Scan(&p.CreatedAt)

	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return p, nil
}

// ListByEmployeeAndRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, start time.Time, end time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, timestamp, kind, source, justification, adjusted_by, created_at
		FROM punches
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Timestamp, &p.Kind, &p.Source,
			&p.Justification, &p.AdjustedBy, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, rows.Err()
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, employeeID string, filter punch.PunchFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"p.employee_id = $1", "p.timestamp >= $2", "p.timestamp < $3"}
	startDate, _ := time.Parse("2006-01-02", filter.StartDate)
	endDate, _ := time.Parse("2006-01-02", filter.EndDate)
	args := []interface{}{employeeID, startDate, endDate.AddDate(0, 0, 1)}
	argIdx := 4

	if filter.Kind != nil {
		conditions = append(conditions, fmt.Sprintf("p.kind = $%d", argIdx))
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.Source != nil {
		conditions = append(conditions, fmt.Sprintf("p.source = $%d", argIdx))
		args = append(args, *filter.Source)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM punches p WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.timestamp, p.kind, p.source, p.justification,
			   p.adjusted_by, p.created_at,
			   e.full_name AS employee_name,
			   e.employee_code AS employee_code
		FROM punches p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.timestamp ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Timestamp, &p.Kind, &p.Source,
			&p.Justification, &p.AdjustedBy, &p.CreatedAt,
			&p.EmployeeName, &p.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}

	return punches, total, rows.Err()
}
