// Package httpapi is the HTTP surface of the server: checkout, heartbeat
// and sync for terminals, record listings, and the dashboard reads.
package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/edgesync/internal/logging"
	"github.com/dmitrijs2005/edgesync/internal/server/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	capture   *services.CaptureService
	liveness  *services.LivenessService
	sync      *services.SyncService
	dashboard *services.DashboardService
	logger    logging.Logger
	jwtSecret []byte
}

func NewHandler(capture *services.CaptureService, liveness *services.LivenessService,
	sync *services.SyncService, dashboard *services.DashboardService,
	l logging.Logger, secretKey string) *Handler {
	return &Handler{
		capture:   capture,
		liveness:  liveness,
		sync:      sync,
		dashboard: dashboard,
		logger:    l.With("module", "http_api"),
		jwtSecret: []byte(secretKey),
	}
}

// NewRouter wires the routes. Every route except /metrics is instrumented.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(h.requestID, instrument)
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	edge := api.PathPrefix("/edge").Subrouter()
	edge.Handle("/checkout", h.authenticate(http.HandlerFunc(h.Checkout))).Methods(http.MethodPost)
	edge.Handle("/heartbeat", h.authenticate(http.HandlerFunc(h.Heartbeat))).Methods(http.MethodPost)
	edge.Handle("/sync", h.authenticate(http.HandlerFunc(h.Sync))).Methods(http.MethodPost)
	edge.HandleFunc("/orders", h.ListEdgeOrders).Methods(http.MethodGet)
	edge.HandleFunc("/terminals/{terminal_id}/status", h.TerminalStatus).Methods(http.MethodGet)

	api.HandleFunc("/central/orders", h.ListCentralOrders).Methods(http.MethodGet)

	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.HandleFunc("/overview", h.Overview).Methods(http.MethodGet)
	dashboard.HandleFunc("/terminals", h.TerminalStats).Methods(http.MethodGet)

	return r
}
