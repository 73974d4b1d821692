package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/dbx"
	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/server/config"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/edgerecords"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edgesync/internal/timex"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

type testEnv struct {
	edgeDB    *sql.DB
	edge      repomanager.EdgeRepositoryManager
	centralDB *sql.DB
	central   repomanager.CentralRepositoryManager
	cfg       *config.Config
	clock     *timex.ManualClock
	capture   *CaptureService
	liveness  *LivenessService
	sync      *SyncService
	dashboard *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, ":memory:", ":memory:")
}

// newTestEnvAt opens both stores at the given SQLite paths. Opening the
// same files again behaves like a server restart.
func newTestEnvAt(t *testing.T, edgePath, centralPath string) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := repomanager.OpenSQLite(ctx, edgePath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	edge := repomanager.NewSQLiteRepositoryManager()
	require.NoError(t, edge.RunMigrations(ctx, db))

	centralDB, err := repomanager.OpenSQLite(ctx, centralPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = centralDB.Close() })

	central := repomanager.NewSQLiteCentralRepositoryManager()
	require.NoError(t, central.RunMigrations(ctx, centralDB))

	cfg := &config.Config{}
	cfg.LoadDefaults()

	env := &testEnv{
		edgeDB:    db,
		edge:      edge,
		centralDB: centralDB,
		central:   central,
		cfg:       cfg,
		clock:     timex.NewManualClock(epoch),
	}
	env.rewire(edge)
	return env
}

// rewire rebuilds the services over a different edge manager, keeping the
// same databases.
func (e *testEnv) rewire(edge repomanager.EdgeRepositoryManager) {
	log := logging.Nop()
	e.capture = NewCaptureService(e.edgeDB, edge, e.cfg, e.clock, log)
	e.liveness = NewLivenessService(e.edgeDB, edge, e.cfg, e.clock, log)
	e.sync = NewSyncService(e.edgeDB, edge, e.centralDB, e.central, e.liveness, e.clock, log)
	e.dashboard = NewDashboardService(e.edgeDB, edge, e.centralDB, e.central, e.liveness, e.clock)
}

func (e *testEnv) captureN(t *testing.T, terminalID string, n int) []*models.EdgeRecord {
	t.Helper()
	var out []*models.EdgeRecord
	for i := 0; i < n; i++ {
		res, err := e.capture.Capture(context.Background(), CaptureRequest{
			TerminalID:     terminalID,
			IdempotencyKey: terminalID + "-key-" + string(rune('a'+i)),
			LineItems:      []models.LineItem{item("SKU", 1, "10.00")},
		})
		require.NoError(t, err)
		out = append(out, res.Record)
	}
	return out
}

func (e *testEnv) heartbeat(t *testing.T, terminalID string, linkUp bool) {
	t.Helper()
	_, err := e.liveness.Heartbeat(context.Background(), terminalID, linkUp)
	require.NoError(t, err)
}

func item(name string, qty int, price string) models.LineItem {
	return models.LineItem{SKU: name, Name: name, Quantity: qty, UnitPrice: decimal.RequireFromString(price)}
}

var errCrash = errors.New("simulated crash")

// flakyEdgeManager lets a fixed number of MarkSynced calls through and then
// fails every later one, leaving the row pending after its central insert.
type flakyEdgeManager struct {
	repomanager.EdgeRepositoryManager
	budget int
}

func (m *flakyEdgeManager) Records(db dbx.DBTX) edgerecords.Repository {
	return &flakyRecords{Repository: m.EdgeRepositoryManager.Records(db), m: m}
}

type flakyRecords struct {
	edgerecords.Repository
	m *flakyEdgeManager
}

func (r *flakyRecords) MarkSynced(ctx context.Context, id int64, at time.Time) error {
	if r.m.budget <= 0 {
		return errCrash
	}
	r.m.budget--
	return r.Repository.MarkSynced(ctx, id, at)
}
