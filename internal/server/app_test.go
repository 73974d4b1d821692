package server

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/edgesync/internal/server/config"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	c := &config.Config{}
	c.LoadDefaults()
	c.EdgeDatabasePath = filepath.Join(dir, "edge.db")
	c.CentralDatabasePath = filepath.Join(dir, "central.db")
	c.LogLevel = "error"
	require.NoError(t, c.Validate())
	return c
}

func TestNewApp_DefaultCentralStoreSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	require.Equal(t, config.CentralBackendSQLite, cfg.CentralBackend)

	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := app.capture.Capture(ctx, services.CaptureRequest{
			TerminalID:     "T1",
			IdempotencyKey: fmt.Sprintf("order-%06d", i),
			LineItems: []models.LineItem{
				{SKU: "MILK", Name: "Milk", Quantity: 1, UnitPrice: decimal.RequireFromString("18.5")},
			},
		})
		require.NoError(t, err)
	}
	_, err = app.liveness.Heartbeat(ctx, "T1", true)
	require.NoError(t, err)
	res, err := app.sync.Sync(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pushed)
	app.close()

	app, err = NewApp(ctx, cfg)
	require.NoError(t, err)
	defer app.close()

	res, err = app.sync.Sync(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, &models.SyncResult{TerminalID: "T1"}, res)

	o, err := app.dashboard.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, o.CentralRecordCount)
	assert.Zero(t, o.PendingSyncCount)
	assert.True(t, decimal.RequireFromString("55.5").Equal(o.CentralTotalAmount))
}

func TestNewApp_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.CentralBackend = "memory"

	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
}
