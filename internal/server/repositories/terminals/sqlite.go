package terminals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, state *models.TerminalState) error {
	var heartbeat sql.NullString
	if state.LastHeartbeatAt != nil {
		heartbeat = sql.NullString{String: dbx.FormatTime(*state.LastHeartbeatAt), Valid: true}
	}

	query := `INSERT INTO terminals (terminal_id, central_link_reported, last_heartbeat_at, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(terminal_id) DO UPDATE SET
			central_link_reported = excluded.central_link_reported,
			last_heartbeat_at = excluded.last_heartbeat_at`

	_, err := r.db.ExecContext(ctx, query,
		state.TerminalID, state.CentralLinkReported, heartbeat, dbx.FormatTime(state.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to upsert terminal %s: %w", state.TerminalID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, terminalID string) (*models.TerminalState, error) {
	query := `SELECT terminal_id, central_link_reported, last_heartbeat_at, created_at
		FROM terminals WHERE terminal_id=?`

	state, err := scanState(r.db.QueryRowContext(ctx, query, terminalID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return state, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]*models.TerminalState, error) {
	query := `SELECT terminal_id, central_link_reported, last_heartbeat_at, created_at
		FROM terminals ORDER BY terminal_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select terminals: %w", err)
	}
	defer rows.Close()

	var result []*models.TerminalState
	for rows.Next() {
		state, err := scanState(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, state)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanState(s scanner) (*models.TerminalState, error) {
	var (
		state     models.TerminalState
		link      int64
		heartbeat sql.NullString
		createdAt string
	)
	if err := s.Scan(&state.TerminalID, &link, &heartbeat, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if state.LastHeartbeatAt, err = dbx.ParseNullTime(heartbeat); err != nil {
		return nil, fmt.Errorf("failed to parse last_heartbeat_at: %w", err)
	}
	if state.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	state.CentralLinkReported = link != 0
	return &state, nil
}
