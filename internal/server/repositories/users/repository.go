package users

import (
	"context"

	"github.com/snowsquad/engine/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	// ApplyCompletion atomically adds delta to the point balance and
	// bumps the completion counter by one. The delta may be negative.
	ApplyCompletion(ctx context.Context, userID string, delta int) error
	// Leaderboard returns the user and their friends ordered by points
	// descending.
	Leaderboard(ctx context.Context, userID string) ([]*models.User, error)
}
