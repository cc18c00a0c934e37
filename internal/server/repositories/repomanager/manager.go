package repomanager

import (
	"context"
	"database/sql"

	"github.com/snowsquad/engine/internal/dbx"
	"github.com/snowsquad/engine/internal/server/repositories/friends"
	"github.com/snowsquad/engine/internal/server/repositories/tasks"
	"github.com/snowsquad/engine/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Tasks(db dbx.DBTX) tasks.Repository
	Users(db dbx.DBTX) users.Repository
	Friends(db dbx.DBTX) friends.Repository
}
