package services

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edgesync/internal/timex"
)

// DashboardService computes read-only aggregates over both stores on every
// call. Nothing is cached.
//
// The set of known terminals is the union of terminals with a liveness row
// and terminals that own edge or central records; a terminal without a
// liveness row is reported offline.
type DashboardService struct {
	edgeDB    *sql.DB
	edge      repomanager.EdgeRepositoryManager
	centralDB *sql.DB
	central   repomanager.CentralRepositoryManager
	liveness  *LivenessService
	clock     timex.Clock
}

func NewDashboardService(edgeDB *sql.DB, edge repomanager.EdgeRepositoryManager,
	centralDB *sql.DB, central repomanager.CentralRepositoryManager,
	liveness *LivenessService, clock timex.Clock) *DashboardService {
	return &DashboardService{
		edgeDB:    edgeDB,
		edge:      edge,
		centralDB: centralDB,
		central:   central,
		liveness:  liveness,
		clock:     clock,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (*models.Overview, error) {
	return s.OverviewAt(ctx, s.clock.Now(), s.liveness.Window())
}

func (s *DashboardService) OverviewAt(ctx context.Context, now time.Time, window time.Duration) (*models.Overview, error) {
	stats, err := s.TerminalStatsAt(ctx, now, window, "")
	if err != nil {
		return nil, err
	}

	count, amount, err := s.central.Records(s.centralDB).Totals(ctx)
	if err != nil {
		return nil, err
	}

	o := &models.Overview{
		TotalTerminals:     len(stats),
		CentralRecordCount: count,
		CentralTotalAmount: amount,
	}
	for _, st := range stats {
		if st.Status == models.StatusOnline {
			o.Online++
		}
		o.PendingSyncCount += st.PendingCount
	}
	o.Offline = o.TotalTerminals - o.Online
	return o, nil
}

func (s *DashboardService) TerminalStats(ctx context.Context, terminalID string) ([]*models.TerminalStats, error) {
	return s.TerminalStatsAt(ctx, s.clock.Now(), s.liveness.Window(), terminalID)
}

// TerminalStatsAt returns one row per known terminal sorted by id, or only
// the row of terminalID when it is set.
func (s *DashboardService) TerminalStatsAt(ctx context.Context, now time.Time, window time.Duration,
	terminalID string) ([]*models.TerminalStats, error) {
	states, err := s.liveness.List(ctx)
	if err != nil {
		return nil, err
	}
	edgeAgg, err := s.edge.Records(s.edgeDB).StatsByTerminal(ctx)
	if err != nil {
		return nil, err
	}
	centralAgg, err := s.central.Records(s.centralDB).StatsByTerminal(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.TerminalState, len(states))
	for _, st := range states {
		byID[st.TerminalID] = st
	}

	ids := make(map[string]struct{})
	for id := range byID {
		ids[id] = struct{}{}
	}
	for id := range edgeAgg {
		ids[id] = struct{}{}
	}
	for id := range centralAgg {
		ids[id] = struct{}{}
	}

	result := make([]*models.TerminalStats, 0, len(ids))
	for id := range ids {
		if terminalID != "" && id != terminalID {
			continue
		}

		state := byID[id]
		e, c := edgeAgg[id], centralAgg[id]
		row := &models.TerminalStats{
			TerminalID:    id,
			Status:        StatusOf(state, now, window),
			EdgeCount:     e.Count,
			EdgeAmount:    e.Amount,
			CentralCount:  c.Count,
			CentralAmount: c.Amount,
			PendingCount:  e.Pending,
		}
		if state != nil {
			row.CentralLinkUp = state.CentralLinkReported
			row.LastHeartbeatAt = state.LastHeartbeatAt
		}
		result = append(result, row)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].TerminalID < result[j].TerminalID })
	return result, nil
}
