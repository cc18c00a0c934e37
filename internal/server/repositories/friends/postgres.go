// Package friends provides the PostgreSQL-backed friend graph.
package friends

import (
	"context"
	"fmt"

	"github.com/snowsquad/engine/internal/dbx"
	"github.com/snowsquad/engine/internal/server/models"
)

// PostgresRepository implements friend-edge storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, userID, friendID string) error {
	query := `
		INSERT INTO friends (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, friend_id) DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, userID, friendID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.username, u.points, u.tasks_completed, u.created_at
		FROM users u
		JOIN friends f ON f.friend_id = u.id
		WHERE f.user_id = $1
		ORDER BY u.username ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select friends: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.UserName, &u.Points, &u.TasksCompleted, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
