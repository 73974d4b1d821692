// Package centralrecords is the central authority's record table. It only
// ever receives rows pushed by the sync engine; (source_edge_record_id,
// terminal_id) is unique, so a re-pushed row is reported as a duplicate
// instead of being stored twice.
package centralrecords

import (
	"context"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Insert stores rec and sets rec.ID, or returns AlreadyExists when the
	// same edge record was accepted before.
	Insert(ctx context.Context, rec *models.CentralRecord) (common.InsertOutcome, error)
	// List returns accepted rows, optionally for one terminal, oldest first.
	List(ctx context.Context, terminalID string) ([]*models.CentralRecord, error)
	StatsByTerminal(ctx context.Context) (map[string]models.Aggregate, error)
	// Totals returns the global record count and amount sum.
	Totals(ctx context.Context) (int, decimal.Decimal, error)
}
