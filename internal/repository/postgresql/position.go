package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/makerhq/timeclock-backend-go/internal/domain/master/position"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// Create implements position.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, pos position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, pos.Name).Scan(&pos.ID, &pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return pos, nil
}

// GetByID implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var pos position.Position
	err := q.QueryRow(ctx, query, id).Scan(&pos.ID, &pos.Name, &pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		return position.Position{}, err
	}

	return pos, nil
}

// GetByName implements position.PositionRepository.
func (r *positionRepositoryImpl) GetByName(ctx context.Context, name string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM positions
		WHERE name = $1
	`

	var pos position.Position
	err := q.QueryRow(ctx, query, name).Scan(&pos.ID, &pos.Name, &pos.CreatedAt, &pos.UpdatedAt)
	if err != nil {
		return position.Position{}, err
	}

	return pos, nil
}

// List implements position.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM positions
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var pos position.Position
		if err := rows.Scan(&pos.ID, &pos.Name, &pos.CreatedAt, &pos.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, pos)
	}

	return positions, rows.Err()
}

// Update implements position.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, req position.UpdatePositionRequest) error {
	q := GetQuerier(ctx, r.db)

	if req.Name == nil {
		return nil
	}

	query := `UPDATE positions SET name = $1, updated_at = $2 WHERE id = $3`

	tag, err := q.Exec(ctx, query, *req.Name, time.Now(), req.ID)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}

// Delete implements position.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}

	return nil
}
