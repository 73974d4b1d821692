package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/metrics"
	"github.com/dmitrijs2005/edgesync/internal/server/config"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edgesync/internal/timex"
)

// HeartbeatResult echoes the stored liveness state. Status is derived at
// ServerTime with the configured window.
type HeartbeatResult struct {
	TerminalID    string
	Status        models.Status
	CentralLinkUp bool
	ServerTime    time.Time
}

// LivenessService records heartbeats and derives online/offline status.
// Status is never stored; it is computed from the last heartbeat on read.
type LivenessService struct {
	db          *sql.DB
	repomanager repomanager.EdgeRepositoryManager
	clock       timex.Clock
	window      time.Duration
	log         logging.Logger
}

func NewLivenessService(db *sql.DB, m repomanager.EdgeRepositoryManager, cfg *config.Config,
	clock timex.Clock, log logging.Logger) *LivenessService {
	return &LivenessService{
		db:          db,
		repomanager: m,
		clock:       clock,
		window:      cfg.HeartbeatTimeout,
		log:         log.With("module", "liveness"),
	}
}

func (s *LivenessService) Heartbeat(ctx context.Context, terminalID string, linkUp bool) (*HeartbeatResult, error) {
	terminalID = strings.TrimSpace(terminalID)
	if err := validateTerminalID(terminalID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	state := &models.TerminalState{
		TerminalID:          terminalID,
		CentralLinkReported: linkUp,
		LastHeartbeatAt:     &now,
		CreatedAt:           now,
	}
	if err := s.repomanager.Terminals(s.db).Upsert(ctx, state); err != nil {
		return nil, fmt.Errorf("heartbeat: %w", err)
	}

	metrics.HeartbeatsTotal.WithLabelValues(metrics.LinkLabel(linkUp)).Inc()
	s.log.Debug(ctx, "heartbeat", "terminal_id", terminalID, "central_link_up", linkUp)

	return &HeartbeatResult{
		TerminalID:    terminalID,
		Status:        StatusOf(state, now, s.window),
		CentralLinkUp: linkUp,
		ServerTime:    now,
	}, nil
}

// StatusOf derives the status of state at now. A nil state is offline.
func StatusOf(state *models.TerminalState, now time.Time, window time.Duration) models.Status {
	return state.StatusAt(now, window)
}

// Status derives the terminal status at the current time.
func (s *LivenessService) Status(ctx context.Context, terminalID string) (models.Status, error) {
	return s.StatusAt(ctx, terminalID, s.clock.Now(), s.window)
}

// StatusAt derives the terminal status at now for window. Unknown
// terminals yield common.ErrUnknownTerminal.
func (s *LivenessService) StatusAt(ctx context.Context, terminalID string, now time.Time, window time.Duration) (models.Status, error) {
	state, err := s.Get(ctx, terminalID)
	if err != nil {
		return models.StatusOffline, err
	}
	return StatusOf(state, now, window), nil
}

// Get returns the stored liveness row. Unknown terminals yield
// common.ErrUnknownTerminal.
func (s *LivenessService) Get(ctx context.Context, terminalID string) (*models.TerminalState, error) {
	terminalID = strings.TrimSpace(terminalID)
	if err := validateTerminalID(terminalID); err != nil {
		return nil, err
	}

	state, err := s.repomanager.Terminals(s.db).Get(ctx, terminalID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownTerminal, terminalID)
	}
	if err != nil {
		return nil, err
	}
	return state, nil
}

// List returns every terminal that has sent a heartbeat.
func (s *LivenessService) List(ctx context.Context) ([]*models.TerminalState, error) {
	return s.repomanager.Terminals(s.db).List(ctx)
}

// Window is the configured heartbeat timeout.
func (s *LivenessService) Window() time.Duration {
	return s.window
}
