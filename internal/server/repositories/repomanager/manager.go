package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/virtualgarden/internal/dbx"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/gardens"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/plants"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs inside or outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Gardens(db dbx.DBTX) gardens.Repository
	Plants(db dbx.DBTX) plants.Repository
}
