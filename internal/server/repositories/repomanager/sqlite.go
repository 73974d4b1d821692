package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/server/migrations"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/centralrecords"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/edgerecords"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/terminals"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed edge repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Records(db dbx.DBTX) edgerecords.Repository {
	return edgerecords.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Terminals(db dbx.DBTX) terminals.Repository {
	return terminals.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return gooseUp(ctx, db, goose.DialectSQLite3, migrations.Edge())
}

// SQLiteCentralRepositoryManager vends central repositories over a SQLite
// file. It is the default central backend for single-host deployments.
type SQLiteCentralRepositoryManager struct{}

func NewSQLiteCentralRepositoryManager() *SQLiteCentralRepositoryManager {
	return &SQLiteCentralRepositoryManager{}
}

func (m *SQLiteCentralRepositoryManager) Records(db dbx.DBTX) centralrecords.Repository {
	return centralrecords.NewSQLiteRepository(db)
}

func (m *SQLiteCentralRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return gooseUp(ctx, db, goose.DialectSQLite3, migrations.CentralSQLite())
}

// OpenSQLite opens a SQLite database file with WAL journaling and a busy
// timeout. The pool is limited to one connection so that writers queue in
// Go instead of failing with SQLITE_BUSY.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		dsn = "file:" + path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
