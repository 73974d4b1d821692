// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edgesync_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "edgesync_http_request_duration_seconds",
		Help:    "Request latency",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"method", "endpoint"})

	CapturesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edgesync_captures_total",
		Help: "Capture requests by outcome",
	}, []string{"outcome"})

	SyncRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edgesync_sync_rows_total",
		Help: "Edge rows forwarded to central by outcome",
	}, []string{"outcome"})

	SyncRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edgesync_sync_runs_total",
		Help: "Sync passes by result",
	}, []string{"result"})

	HeartbeatsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "edgesync_heartbeats_total",
		Help: "Heartbeats by reported central link state",
	}, []string{"link"})
)

const (
	CaptureCreated   = "created"
	CaptureDuplicate = "duplicate"
	CaptureRejected  = "rejected"

	RowPushed    = "pushed"
	RowDuplicate = "duplicate"

	RunOK              = "ok"
	RunLinkDown        = "link_down"
	RunUnknownTerminal = "unknown_terminal"
	RunError           = "error"
)

// LinkLabel maps a link flag to the heartbeats_total label value.
func LinkLabel(up bool) string {
	if up {
		return "up"
	}
	return "down"
}
