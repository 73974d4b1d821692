package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
)

// onlineSyncer is the part of SyncService the sweeper drives.
type onlineSyncer interface {
	SyncAllOnline(ctx context.Context) ([]*models.SyncResult, error)
}

// Sweeper periodically drains every online terminal, the server-side
// counterpart of a terminal that syncs whenever its link comes back.
type Sweeper struct {
	syncer   onlineSyncer
	interval time.Duration
	log      logging.Logger
}

func NewSweeper(s onlineSyncer, interval time.Duration, log logging.Logger) *Sweeper {
	return &Sweeper{syncer: s, interval: interval, log: log.With("module", "sweeper")}
}

// Run blocks until ctx is done. A non-positive interval disables sweeping.
func (w *Sweeper) Run(ctx context.Context) error {
	if w.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (w *Sweeper) sweep(ctx context.Context) {
	results, err := w.syncer.SyncAllOnline(ctx)
	if err != nil && ctx.Err() == nil {
		w.log.Warn(ctx, "sweep finished with errors", "error", err)
	}

	pushed := 0
	for _, r := range results {
		pushed += r.Pushed
	}
	if pushed > 0 {
		w.log.Info(ctx, "sweep pushed records", "terminals", len(results), "pushed", pushed)
	}
}
