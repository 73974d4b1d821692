package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/metrics"
	"github.com/dmitrijs2005/edgesync/internal/server/auth"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type ctxKey string

const (
	terminalIDKey ctxKey = "terminalID"
	requestIDKey  ctxKey = "requestID"
)

const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument records request count and latency labeled by route template.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		endpoint := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tpl, err := route.GetPathTemplate(); err == nil {
				endpoint = tpl
			}
		}

		timer := prometheus.NewTimer(metrics.HTTPRequestDuration.WithLabelValues(r.Method, endpoint))
		defer timer.ObserveDuration()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(rec.status)).Inc()
	})
}

// requestID propagates X-Request-ID, generating a UUID when the caller sent none.
func (h *Handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		h.logger.Debug(ctx, "request", "request_id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// authenticate verifies the bearer token (or access_token header) when a
// secret is configured and stores its terminal id in the request context.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(h.jwtSecret) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		token := r.Header.Get(common.AccessTokenHeaderName)
		if bearer, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
			token = bearer
		}
		if token == "" {
			respondWithError(w, http.StatusUnauthorized, "missing token")
			return
		}

		terminalID, err := auth.TerminalIDFromToken(token, h.jwtSecret)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), terminalIDKey, terminalID)))
	})
}

// authorizedFor reports whether the request may act for terminalID.
func (h *Handler) authorizedFor(ctx context.Context, terminalID string) bool {
	if len(h.jwtSecret) == 0 {
		return true
	}
	id, _ := ctx.Value(terminalIDKey).(string)
	return id == terminalID
}
