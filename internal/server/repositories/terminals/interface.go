// Package terminals persists the liveness row of every terminal that has
// ever sent a heartbeat.
package terminals

import (
	"context"

	"github.com/dmitrijs2005/edgesync/internal/server/models"
)

type Repository interface {
	// Upsert creates the row on first heartbeat and refreshes link flag
	// and heartbeat time afterwards. CreatedAt is kept from the first call.
	Upsert(ctx context.Context, state *models.TerminalState) error
	// Get returns common.ErrorNotFound for a terminal that never heartbeated.
	Get(ctx context.Context, terminalID string) (*models.TerminalState, error)
	List(ctx context.Context) ([]*models.TerminalState, error)
}
