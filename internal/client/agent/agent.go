// Package agent runs the terminal's background loop: a heartbeat every
// interval carrying the simulated central-link flag, followed by a sync
// request whenever that link is up.
package agent

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/logging"
)

// EdgeClient is the subset of the gRPC client the agent drives.
type EdgeClient interface {
	Heartbeat(ctx context.Context, terminalID string, linkUp bool) (*api.HeartbeatResponse, error)
	Sync(ctx context.Context, terminalID string) (*api.SyncResponse, error)
}

type Agent struct {
	client     EdgeClient
	terminalID string
	interval   time.Duration
	timeout    time.Duration
	linkUp     atomic.Bool
	log        logging.Logger
}

func New(c EdgeClient, terminalID string, interval, timeout time.Duration, linkUp bool, log logging.Logger) *Agent {
	a := &Agent{
		client:     c,
		terminalID: terminalID,
		interval:   interval,
		timeout:    timeout,
		log:        log.With("module", "agent", "terminal_id", terminalID),
	}
	a.linkUp.Store(linkUp)
	return a
}

// SetLinkUp toggles the simulated central link. The next heartbeat reports it.
func (a *Agent) SetLinkUp(up bool) {
	a.linkUp.Store(up)
	a.log.Info(context.Background(), "central link changed", "link_up", up)
}

func (a *Agent) LinkUp() bool {
	return a.linkUp.Load()
}

// Tick sends one heartbeat and, when the link is up, one sync. The sync
// result is nil when no sync was attempted.
func (a *Agent) Tick(ctx context.Context) (*api.SyncResponse, error) {
	up := a.linkUp.Load()

	hbCtx, cancel := context.WithTimeout(ctx, a.timeout)
	_, err := a.client.Heartbeat(hbCtx, a.terminalID, up)
	cancel()
	if err != nil {
		return nil, err
	}

	if !up {
		return nil, nil
	}

	syncCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	res, err := a.client.Sync(syncCtx, a.terminalID)
	if errors.Is(err, common.ErrLinkDown) {
		// heartbeat and sync raced with SetLinkUp(false)
		return nil, nil
	}
	return res, err
}

// Run ticks immediately and then every interval until ctx is done. Tick
// errors are logged; they never stop the loop.
func (a *Agent) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		a.tick(ctx)

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *Agent) tick(ctx context.Context) {
	res, err := a.Tick(ctx)
	switch {
	case err != nil:
		if ctx.Err() == nil {
			a.log.Warn(ctx, "agent tick failed", "error", err)
		}
	case res != nil && res.Pushed > 0:
		a.log.Info(ctx, "records pushed", "pushed", res.Pushed, "duplicates", res.Duplicates, "pending_after", res.PendingAfter)
	default:
		a.log.Debug(ctx, "agent tick", "link_up", a.LinkUp())
	}
}
