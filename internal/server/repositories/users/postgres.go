// Package users provides the PostgreSQL-backed user ledger.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/snowsquad/engine/internal/common"
	"github.com/snowsquad/engine/internal/dbx"
	"github.com/snowsquad/engine/internal/server/models"
)

const uniqueViolation = "23505"

// PostgresRepository implements ledger storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, username, points, tasks_completed)
		VALUES ($1, $2, $3, 0, 0)
	`
	_, err := r.db.ExecContext(ctx, query, user.ID, user.Email, user.UserName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return common.ErrUserExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	user.Points = 0
	user.TasksCompleted = 0
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, username, points, tasks_completed, created_at
		FROM users
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	query := `
		SELECT id, email, username, points, tasks_completed, created_at
		FROM users
		WHERE username = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userName))
}

// ApplyCompletion is a single-statement increment: balances are never
// read-modify-written, so concurrent completions cannot lose updates.
func (r *PostgresRepository) ApplyCompletion(ctx context.Context, userID string, delta int) error {
	query := `
		UPDATE users
		SET points = points + $2, tasks_completed = tasks_completed + 1
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, userID, delta)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (r *PostgresRepository) Leaderboard(ctx context.Context, userID string) ([]*models.User, error) {
	query := `
		SELECT u.id, u.email, u.username, u.points, u.tasks_completed, u.created_at
		FROM users u
		WHERE u.id = $1
		   OR u.id IN (SELECT friend_id FROM friends WHERE user_id = $1)
		ORDER BY u.points DESC, u.username ASC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select leaderboard: %w", err)
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

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.UserName, &user.Points, &user.TasksCompleted, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}
