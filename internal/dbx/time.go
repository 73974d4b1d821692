package dbx

import (
	"database/sql"
	"time"
)

// SQLite has no native timestamp type; the edge store keeps instants as
// RFC 3339 text in UTC with nanosecond precision.

func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// ParseNullTime maps a NULL column to a nil pointer.
func ParseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := ParseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
