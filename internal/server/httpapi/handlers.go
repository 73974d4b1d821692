package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/dmitrijs2005/edgesync/internal/server/services"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Checkout captures a transaction. The idempotency key may be sent in the
// body or in the Idempotency-Key header; the body wins. A replay answers
// 200 with the original record, a new capture 201.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req api.CaptureRequest
	if !decode(w, r, &req) {
		return
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = r.Header.Get(common.IdempotencyKeyHeader)
	}
	if !h.authorizedFor(r.Context(), req.TerminalID) {
		respondWithError(w, http.StatusForbidden, "token does not match terminal")
		return
	}

	res, err := h.capture.Capture(r.Context(), services.CaptureRequest{
		TerminalID:     req.TerminalID,
		IdempotencyKey: req.IdempotencyKey,
		LineItems:      req.LineItems,
		Payment:        req.Payment(),
	})
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}

	code := http.StatusCreated
	if res.IsDuplicate {
		code = http.StatusOK
	}
	respondWithJSON(w, code, api.NewCaptureResponse(res.Record, res.IsDuplicate))
}

func (h *Handler) ListEdgeOrders(w http.ResponseWriter, r *http.Request) {
	filter := models.EdgeFilter{TerminalID: r.URL.Query().Get("terminal_id")}
	if v := r.URL.Query().Get("pending_only"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "pending_only must be a boolean")
			return
		}
		filter.PendingOnly = b
	}

	recs, err := h.capture.ListEdge(r.Context(), filter)
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, api.NewEdgeRecords(recs))
}

func (h *Handler) Heartbeat(w http.ResponseWriter, r *http.Request) {
	var req api.HeartbeatRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.authorizedFor(r.Context(), req.TerminalID) {
		respondWithError(w, http.StatusForbidden, "token does not match terminal")
		return
	}

	res, err := h.liveness.Heartbeat(r.Context(), req.TerminalID, req.CentralLinkUp)
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, api.HeartbeatResponse{
		TerminalID:    res.TerminalID,
		Status:        res.Status,
		CentralLinkUp: res.CentralLinkUp,
		ServerTime:    res.ServerTime,
	})
}

// TerminalStatus reports online/offline as of now; unknown terminals are 404.
func (h *Handler) TerminalStatus(w http.ResponseWriter, r *http.Request) {
	terminalID := mux.Vars(r)["terminal_id"]

	st, err := h.liveness.Status(r.Context(), terminalID)
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, api.TerminalStatusResponse{TerminalID: terminalID, Status: st})
}

func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	var req api.SyncRequest
	if !decode(w, r, &req) {
		return
	}
	if !h.authorizedFor(r.Context(), req.TerminalID) {
		respondWithError(w, http.StatusForbidden, "token does not match terminal")
		return
	}

	res, err := h.sync.Sync(r.Context(), req.TerminalID)
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *Handler) ListCentralOrders(w http.ResponseWriter, r *http.Request) {
	recs, err := h.sync.ListCentral(r.Context(), r.URL.Query().Get("terminal_id"))
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, api.NewCentralRecords(recs))
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.dashboard.Overview(r.Context())
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, o)
}

func (h *Handler) TerminalStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.TerminalStats(r.Context(), r.URL.Query().Get("terminal_id"))
	if err != nil {
		h.respondWithDomainError(r.Context(), w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return false
	}
	return true
}

func (h *Handler) respondWithDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, common.ErrLinkDown):
		respondWithError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, common.ErrUnknownTerminal):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(ctx, "request failed", "request_id", requestIDFrom(ctx), "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
