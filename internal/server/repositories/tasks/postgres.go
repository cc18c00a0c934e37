// Package tasks provides the PostgreSQL-backed task store.
package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/snowsquad/engine/internal/common"
	"github.com/snowsquad/engine/internal/dbx"
	"github.com/snowsquad/engine/internal/server/models"
)

// PostgresRepository implements task storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, photo_url, latitude, longitude, points, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.PhotoURL, task.Location.Latitude, task.Location.Longitude,
		task.Points, task.Completed, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `
		SELECT id, photo_url, latitude, longitude, points, completed, created_at
		FROM tasks
		WHERE id = $1
	`
	task := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.PhotoURL, &task.Location.Latitude, &task.Location.Longitude,
		&task.Points, &task.Completed, &task.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrTaskNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return task, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	query := `
		SELECT id, photo_url, latitude, longitude, points, completed, created_at
		FROM tasks
		WHERE completed = FALSE
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	var result []*models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(
			&task.ID, &task.PhotoURL, &task.Location.Latitude, &task.Location.Longitude,
			&task.Points, &task.Completed, &task.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// MarkCompleted flips completed false → true in a single conditional write,
// so concurrent completion attempts cannot both claim the task.
func (r *PostgresRepository) MarkCompleted(ctx context.Context, id string) error {
	query := `
		UPDATE tasks SET completed = TRUE
		WHERE id = $1 AND completed = FALSE
	`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 1 {
		return nil
	}

	// Zero rows: either the task is gone or someone else completed it.
	var completed bool
	err = r.db.QueryRowContext(ctx, `SELECT completed FROM tasks WHERE id = $1`, id).Scan(&completed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrTaskNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	if completed {
		return common.ErrAlreadyCompleted
	}
	return fmt.Errorf("unexpected rows affected: %d", n)
}
