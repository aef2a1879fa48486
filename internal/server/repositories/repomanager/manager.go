// Package repomanager vends repository implementations bound to a database
// handle and owns schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the provided DBTX, so the
// same repository code runs against *sql.DB and *sql.Tx alike.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Records(db dbx.DBTX) records.Repository
}
