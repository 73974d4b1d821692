// Package repomanager vends the repositories of the edge and central stores
// and owns their schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"io/fs"

	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/centralrecords"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/edgerecords"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/terminals"
	"github.com/pressly/goose/v3"
)

// EdgeRepositoryManager builds repositories over the edge store.
type EdgeRepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db dbx.DBTX) edgerecords.Repository
	Terminals(db dbx.DBTX) terminals.Repository
}

// CentralRepositoryManager builds repositories over the central store.
type CentralRepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Records(db dbx.DBTX) centralrecords.Repository
}

// gooseUp is a seam for testing the goose provider run.
var gooseUp = func(ctx context.Context, db *sql.DB, dialect goose.Dialect, fsys fs.FS) error {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}
