package friends

import (
	"context"

	"github.com/snowsquad/engine/internal/server/models"
)

type Repository interface {
	// Add inserts one directed friend edge. Inserting an existing edge
	// is a no-op. Callers are responsible for adding both directions
	// inside one transaction to keep the graph symmetric.
	Add(ctx context.Context, userID, friendID string) error
	List(ctx context.Context, userID string) ([]*models.User, error)
}
