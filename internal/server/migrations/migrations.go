// Package migrations embeds the goose migrations of both stores.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed edge/*.sql
var edgeFS embed.FS

//go:embed central/*.sql
var centralFS embed.FS

//go:embed central_sqlite/*.sql
var centralSQLiteFS embed.FS

// Edge returns the SQLite migrations of the edge store rooted at their directory.
func Edge() fs.FS {
	return sub(edgeFS, "edge")
}

// Central returns the PostgreSQL migrations of the central store.
func Central() fs.FS {
	return sub(centralFS, "central")
}

// CentralSQLite returns the central store schema for a standalone SQLite file.
func CentralSQLite() fs.FS {
	return sub(centralSQLiteFS, "central_sqlite")
}

func sub(fsys embed.FS, dir string) fs.FS {
	s, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return s
}
