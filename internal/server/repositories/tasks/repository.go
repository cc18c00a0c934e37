package tasks

import (
	"context"

	"github.com/snowsquad/engine/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	// MarkCompleted performs the conditional completed write
	// (false → true). Returns common.ErrAlreadyCompleted when the task
	// exists but is already closed, common.ErrTaskNotFound otherwise.
	MarkCompleted(ctx context.Context, id string) error
}
