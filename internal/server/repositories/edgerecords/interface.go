package edgerecords

import (
	"context"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
)

// Repository describes the edge record table.
type Repository interface {
	// Insert stores rec as pending and sets rec.ID. A row with the same
	// (terminal_id, idempotency_key) yields AlreadyExists and no write.
	Insert(ctx context.Context, rec *models.EdgeRecord) (common.InsertOutcome, error)

	// GetByKey returns the record captured under the idempotency key, or
	// common.ErrorNotFound.
	GetByKey(ctx context.Context, terminalID, idempotencyKey string) (*models.EdgeRecord, error)

	// ListPending returns pending rows of a terminal, oldest id first.
	ListPending(ctx context.Context, terminalID string) ([]*models.EdgeRecord, error)

	// List returns rows matching filter, oldest id first.
	List(ctx context.Context, filter models.EdgeFilter) ([]*models.EdgeRecord, error)

	// MarkSynced flips a pending row to synced. Already synced rows are left
	// untouched and no error is returned.
	MarkSynced(ctx context.Context, id int64, at time.Time) error

	// CountPending counts pending rows of one terminal.
	CountPending(ctx context.Context, terminalID string) (int, error)

	// StatsByTerminal aggregates count, amount and pending count per terminal.
	StatsByTerminal(ctx context.Context) (map[string]models.Aggregate, error)
}
