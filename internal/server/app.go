// Package server wires the storage backends and business services together
// and runs the HTTP API, the gRPC API and the background sync sweeper until
// the process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/server/config"
	"github.com/dmitrijs2005/edgesync/internal/server/httpapi"
	"github.com/dmitrijs2005/edgesync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/edgesync/internal/server/services"
	"github.com/dmitrijs2005/edgesync/internal/timex"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/edgesync/internal/server/grpc"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	edgeDB    *sql.DB
	centralDB *sql.DB

	capture   *services.CaptureService
	liveness  *services.LivenessService
	sync      *services.SyncService
	dashboard *services.DashboardService
}

// NewApp opens and migrates both stores and builds the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, "json", c.LogLevel)

	edgeDB, err := repomanager.OpenSQLite(ctx, c.EdgeDatabasePath)
	if err != nil {
		return nil, fmt.Errorf("edge db init error: %w", err)
	}
	edge := repomanager.NewSQLiteRepositoryManager()
	if err := edge.RunMigrations(ctx, edgeDB); err != nil {
		_ = edgeDB.Close()
		return nil, fmt.Errorf("edge db migration error: %w", err)
	}

	centralDB, central, err := openCentral(ctx, c)
	if err != nil {
		_ = edgeDB.Close()
		return nil, err
	}

	clock := timex.SystemClock{}
	liveness := services.NewLivenessService(edgeDB, edge, c, clock, logger)

	return &App{
		config:    c,
		logger:    logger,
		edgeDB:    edgeDB,
		centralDB: centralDB,
		capture:   services.NewCaptureService(edgeDB, edge, c, clock, logger),
		liveness:  liveness,
		sync:      services.NewSyncService(edgeDB, edge, centralDB, central, liveness, clock, logger),
		dashboard: services.NewDashboardService(edgeDB, edge, centralDB, central, liveness, clock),
	}, nil
}

// openCentral opens and migrates the configured central store.
func openCentral(ctx context.Context, c *config.Config) (*sql.DB, repomanager.CentralRepositoryManager, error) {
	var (
		db      *sql.DB
		central repomanager.CentralRepositoryManager
		err     error
	)
	switch c.CentralBackend {
	case config.CentralBackendPostgres:
		db, err = repomanager.OpenPostgres(ctx, c.CentralDatabaseDSN)
		central = repomanager.NewPostgresRepositoryManager()
	case config.CentralBackendSQLite:
		db, err = repomanager.OpenSQLite(ctx, c.CentralDatabasePath)
		central = repomanager.NewSQLiteCentralRepositoryManager()
	default:
		return nil, nil, fmt.Errorf("unknown central backend %q", c.CentralBackend)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("central db init error: %w", err)
	}

	if err := central.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("central db migration error: %w", err)
	}
	return db, central, nil
}

// Run blocks until SIGINT/SIGTERM/SIGQUIT or until one of the servers fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...",
		"http", app.config.HTTPAddr, "grpc", app.config.GRPCAddr, "central_backend", app.config.CentralBackend)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		h := httpapi.NewHandler(app.capture, app.liveness, app.sync, app.dashboard, app.logger, app.config.SecretKey)
		return httpapi.NewHTTPServer(app.config.HTTPAddr, httpapi.NewRouter(h), app.logger).Run(ctx)
	})

	g.Go(func() error {
		svc := gs.Services{Capture: app.capture, Liveness: app.liveness, Sync: app.sync, Dashboard: app.dashboard}
		return gs.NewGRPCServer(app.config.GRPCAddr, app.logger, svc, app.config.SecretKey).Run(ctx)
	})

	g.Go(func() error {
		return services.NewSweeper(app.sync, app.config.SyncInterval, app.logger).Run(ctx)
	})

	err := g.Wait()
	app.close()

	if err != nil {
		app.logger.Error(context.Background(), "app stopped", "error", err)
		return err
	}
	app.logger.Info(context.Background(), "app stopped")
	return nil
}

func (app *App) close() {
	if err := app.edgeDB.Close(); err != nil {
		app.logger.Warn(context.Background(), "closing edge db", "error", err)
	}
	if err := app.centralDB.Close(); err != nil {
		app.logger.Warn(context.Background(), "closing central db", "error", err)
	}
}
