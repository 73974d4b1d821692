package edgerecords

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
)

const selectColumns = `id, terminal_id, idempotency_key, amount_minor, payment, line_items,
	created_at, sync_state, synced_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.EdgeRecord) (common.InsertOutcome, error) {
	items, err := json.Marshal(rec.LineItems)
	if err != nil {
		return 0, fmt.Errorf("failed to encode line items: %w", err)
	}
	payment, err := json.Marshal(rec.Payment)
	if err != nil {
		return 0, fmt.Errorf("failed to encode payment: %w", err)
	}

	query := `INSERT INTO edge_records
		(terminal_id, idempotency_key, amount_minor, currency, payment, line_items, created_at, sync_state)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		rec.TerminalID, rec.IdempotencyKey, models.MinorUnits(rec.AmountTotal), rec.Payment.Currency,
		string(payment), string(items), dbx.FormatTime(rec.CreatedAt), string(models.SyncStatePending))
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return common.AlreadyExists, nil
		}
		return 0, fmt.Errorf("failed to insert edge record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	rec.ID = id
	rec.SyncState = models.SyncStatePending
	rec.SyncedAt = nil
	return common.Inserted, nil
}

func (r *SQLiteRepository) GetByKey(ctx context.Context, terminalID, idempotencyKey string) (*models.EdgeRecord, error) {
	query := `SELECT ` + selectColumns + ` FROM edge_records WHERE terminal_id=? AND idempotency_key=?`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, terminalID, idempotencyKey))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return rec, nil
}

func (r *SQLiteRepository) ListPending(ctx context.Context, terminalID string) ([]*models.EdgeRecord, error) {
	return r.List(ctx, models.EdgeFilter{TerminalID: terminalID, PendingOnly: true})
}

func (r *SQLiteRepository) List(ctx context.Context, filter models.EdgeFilter) ([]*models.EdgeRecord, error) {
	var (
		where []string
		args  []any
	)
	if filter.TerminalID != "" {
		where = append(where, "terminal_id=?")
		args = append(args, filter.TerminalID)
	}
	if filter.PendingOnly {
		where = append(where, "sync_state=?")
		args = append(args, string(models.SyncStatePending))
	}

	query := `SELECT ` + selectColumns + ` FROM edge_records`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select edge records: %w", err)
	}
	defer rows.Close()

	var result []*models.EdgeRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) MarkSynced(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE edge_records SET sync_state=?, synced_at=? WHERE id=? AND sync_state=?`
	_, err := r.db.ExecContext(ctx, query,
		string(models.SyncStateSynced), dbx.FormatTime(at), id, string(models.SyncStatePending))
	if err != nil {
		return fmt.Errorf("failed to mark edge record %d synced: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) CountPending(ctx context.Context, terminalID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM edge_records WHERE terminal_id=? AND sync_state=?`,
		terminalID, string(models.SyncStatePending)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending records: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) StatsByTerminal(ctx context.Context) (map[string]models.Aggregate, error) {
	query := `SELECT terminal_id, COUNT(*), COALESCE(SUM(amount_minor), 0),
			COALESCE(SUM(CASE WHEN sync_state=? THEN 1 ELSE 0 END), 0)
		FROM edge_records GROUP BY terminal_id`

	rows, err := r.db.QueryContext(ctx, query, string(models.SyncStatePending))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate edge records: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.Aggregate)
	for rows.Next() {
		var (
			terminalID string
			agg        models.Aggregate
			minor      int64
		)
		if err := rows.Scan(&terminalID, &agg.Count, &minor, &agg.Pending); err != nil {
			return nil, err
		}
		agg.Amount = models.FromMinorUnits(minor)
		result[terminalID] = agg
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*models.EdgeRecord, error) {
	var (
		rec       models.EdgeRecord
		minor     int64
		payment   string
		items     string
		createdAt string
		state     string
		syncedAt  sql.NullString
	)
	if err := s.Scan(&rec.ID, &rec.TerminalID, &rec.IdempotencyKey, &minor, &payment, &items,
		&createdAt, &state, &syncedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(payment), &rec.Payment); err != nil {
		return nil, fmt.Errorf("failed to decode payment of record %d: %w", rec.ID, err)
	}
	if err := json.Unmarshal([]byte(items), &rec.LineItems); err != nil {
		return nil, fmt.Errorf("failed to decode line items of record %d: %w", rec.ID, err)
	}

	var err error
	if rec.CreatedAt, err = dbx.ParseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at of record %d: %w", rec.ID, err)
	}
	if rec.SyncedAt, err = dbx.ParseNullTime(syncedAt); err != nil {
		return nil, fmt.Errorf("failed to parse synced_at of record %d: %w", rec.ID, err)
	}

	rec.AmountTotal = models.FromMinorUnits(minor)
	rec.SyncState = models.SyncState(state)
	return &rec, nil
}
