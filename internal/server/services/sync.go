package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/metrics"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edgesync/internal/timex"
)

// SyncService drains pending edge records into central.
//
// Each row is handled as two independent commits: the central insert, then
// the edge state flip. A failure between them leaves the row pending with a
// central copy already present; the next pass sees AlreadyExists, counts it
// as a duplicate and finishes the flip. No transaction on one store is held
// while the other is being written.
type SyncService struct {
	edgeDB    *sql.DB
	edge      repomanager.EdgeRepositoryManager
	centralDB *sql.DB
	central   repomanager.CentralRepositoryManager
	liveness  *LivenessService
	clock     timex.Clock
	locks     *keyedMutex
	log       logging.Logger
}

// NewSyncService wires the two stores. The link precondition and the
// online set of SyncAllOnline come from liveness.
func NewSyncService(edgeDB *sql.DB, edge repomanager.EdgeRepositoryManager,
	centralDB *sql.DB, central repomanager.CentralRepositoryManager,
	liveness *LivenessService, clock timex.Clock, log logging.Logger) *SyncService {
	return &SyncService{
		edgeDB:    edgeDB,
		edge:      edge,
		centralDB: centralDB,
		central:   central,
		liveness:  liveness,
		clock:     clock,
		locks:     newKeyedMutex(),
		log:       log.With("module", "sync"),
	}
}

// Sync pushes the terminal's pending records to central, oldest first.
//
// It fails with common.ErrUnknownTerminal when the terminal never sent a
// heartbeat and with common.ErrLinkDown when its last heartbeat reported
// the central link down; in both cases nothing is written. On a store error
// the partial result is returned together with the error; rows already
// handled stay committed.
func (s *SyncService) Sync(ctx context.Context, terminalID string) (*models.SyncResult, error) {
	terminalID = strings.TrimSpace(terminalID)
	if err := validateTerminalID(terminalID); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(terminalID)
	defer unlock()

	state, err := s.liveness.Get(ctx, terminalID)
	if errors.Is(err, common.ErrUnknownTerminal) {
		metrics.SyncRunsTotal.WithLabelValues(metrics.RunUnknownTerminal).Inc()
		return nil, err
	}
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(metrics.RunError).Inc()
		return nil, fmt.Errorf("sync %s: %w", terminalID, err)
	}
	if !state.CentralLinkReported {
		metrics.SyncRunsTotal.WithLabelValues(metrics.RunLinkDown).Inc()
		return nil, fmt.Errorf("%w: %s", common.ErrLinkDown, terminalID)
	}

	result := &models.SyncResult{TerminalID: terminalID}
	if err := s.push(ctx, result); err != nil {
		metrics.SyncRunsTotal.WithLabelValues(metrics.RunError).Inc()
		s.log.Warn(ctx, "sync interrupted", "terminal_id", terminalID,
			"pushed", result.Pushed, "duplicates", result.Duplicates, "error", err)
		if n, cerr := s.edge.Records(s.edgeDB).CountPending(ctx, terminalID); cerr == nil {
			result.PendingAfter = n
		}
		return result, fmt.Errorf("sync %s: %w", terminalID, err)
	}

	pending, err := s.edge.Records(s.edgeDB).CountPending(ctx, terminalID)
	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(metrics.RunError).Inc()
		return result, fmt.Errorf("sync %s: %w", terminalID, err)
	}
	result.PendingAfter = pending

	metrics.SyncRunsTotal.WithLabelValues(metrics.RunOK).Inc()
	s.log.Info(ctx, "sync finished", "terminal_id", terminalID,
		"pushed", result.Pushed, "duplicates", result.Duplicates, "pending_after", result.PendingAfter)
	return result, nil
}

func (s *SyncService) push(ctx context.Context, result *models.SyncResult) error {
	edgeRepo := s.edge.Records(s.edgeDB)
	centralRepo := s.central.Records(s.centralDB)

	pending, err := edgeRepo.ListPending(ctx, result.TerminalID)
	if err != nil {
		return err
	}

	for _, rec := range pending {
		if err := ctx.Err(); err != nil {
			return err
		}

		outcome, err := centralRepo.Insert(ctx, rec.ToCentral(s.clock.Now()))
		if err != nil {
			return fmt.Errorf("forward record %d: %w", rec.ID, err)
		}

		switch outcome {
		case common.Inserted:
			result.Pushed++
			metrics.SyncRowsTotal.WithLabelValues(metrics.RowPushed).Inc()
		case common.AlreadyExists:
			result.Duplicates++
			metrics.SyncRowsTotal.WithLabelValues(metrics.RowDuplicate).Inc()
		}

		if err := edgeRepo.MarkSynced(ctx, rec.ID, s.clock.Now()); err != nil {
			return err
		}
	}
	return nil
}

// SyncAllOnline runs Sync for every terminal that is online at the current
// time. Failures of one terminal do not stop the others; they are joined
// into the returned error.
func (s *SyncService) SyncAllOnline(ctx context.Context) ([]*models.SyncResult, error) {
	states, err := s.liveness.List(ctx)
	if err != nil {
		return nil, err
	}

	now, window := s.clock.Now(), s.liveness.Window()
	var (
		results []*models.SyncResult
		errs    []error
	)
	for _, st := range states {
		if StatusOf(st, now, window) != models.StatusOnline {
			continue
		}
		res, err := s.Sync(ctx, st.TerminalID)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

// ListCentral returns records accepted by central, optionally for one terminal.
func (s *SyncService) ListCentral(ctx context.Context, terminalID string) ([]*models.CentralRecord, error) {
	return s.central.Records(s.centralDB).List(ctx, terminalID)
}
