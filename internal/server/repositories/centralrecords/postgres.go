package centralrecords

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
)

// PostgresRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a new PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert relies on the central_records_source_uniq constraint: a conflicting
// row makes RETURNING produce no rows.
func (r *PostgresRepository) Insert(ctx context.Context, rec *models.CentralRecord) (common.InsertOutcome, error) {
	items, err := json.Marshal(rec.LineItems)
	if err != nil {
		return 0, fmt.Errorf("failed to encode line items: %w", err)
	}
	payment, err := json.Marshal(rec.Payment)
	if err != nil {
		return 0, fmt.Errorf("failed to encode payment: %w", err)
	}

	query := `INSERT INTO central_records
		(source_edge_record_id, terminal_id, idempotency_key, amount_minor, currency,
		 payment, line_items, captured_at, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (source_edge_record_id, terminal_id) DO NOTHING
		RETURNING id`

	var id int64
	err = r.db.QueryRowContext(ctx, query,
		rec.SourceEdgeRecordID, rec.TerminalID, rec.IdempotencyKey,
		models.MinorUnits(rec.AmountTotal), rec.Payment.Currency,
		string(payment), string(items), rec.CapturedAt, rec.ReceivedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return common.AlreadyExists, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert central record: %w", err)
	}

	rec.ID = id
	return common.Inserted, nil
}

func (r *PostgresRepository) List(ctx context.Context, terminalID string) ([]*models.CentralRecord, error) {
	query := `SELECT id, source_edge_record_id, terminal_id, idempotency_key, amount_minor,
			payment, line_items, captured_at, received_at
		FROM central_records
		WHERE ($1::text = '' OR terminal_id = $1)
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, terminalID)
	if err != nil {
		return nil, fmt.Errorf("failed to select central records: %w", err)
	}
	defer rows.Close()

	var result []*models.CentralRecord
	for rows.Next() {
		var (
			rec     models.CentralRecord
			minor   int64
			payment []byte
			items   []byte
		)
		if err := rows.Scan(&rec.ID, &rec.SourceEdgeRecordID, &rec.TerminalID, &rec.IdempotencyKey,
			&minor, &payment, &items, &rec.CapturedAt, &rec.ReceivedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payment, &rec.Payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment of record %d: %w", rec.ID, err)
		}
		if err := json.Unmarshal(items, &rec.LineItems); err != nil {
			return nil, fmt.Errorf("failed to decode line items of record %d: %w", rec.ID, err)
		}
		rec.AmountTotal = models.FromMinorUnits(minor)
		result = append(result, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) StatsByTerminal(ctx context.Context) (map[string]models.Aggregate, error) {
	query := `SELECT terminal_id, COUNT(*), COALESCE(SUM(amount_minor), 0)
		FROM central_records GROUP BY terminal_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate central records: %w", err)
	}
	defer rows.Close()

	result := make(map[string]models.Aggregate)
	for rows.Next() {
		var (
			terminalID string
			count      int
			minor      int64
		)
		if err := rows.Scan(&terminalID, &count, &minor); err != nil {
			return nil, err
		}
		result[terminalID] = models.Aggregate{Count: count, Amount: models.FromMinorUnits(minor)}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Totals(ctx context.Context) (int, decimal.Decimal, error) {
	var (
		count int
		minor int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(amount_minor), 0) FROM central_records`).Scan(&count, &minor)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("failed to total central records: %w", err)
	}
	return count, models.FromMinorUnits(minor), nil
}
