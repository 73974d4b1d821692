// Package api holds the JSON messages of the HTTP API and the conversions
// between them and the generated gRPC messages.
package api

import (
	"time"

	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
)

type CaptureRequest struct {
	TerminalID        string            `json:"terminal_id"`
	IdempotencyKey    string            `json:"idempotency_key"`
	Currency          string            `json:"currency,omitempty"`
	PaymentMethod     string            `json:"payment_method,omitempty"`
	CashierID         string            `json:"cashier_id,omitempty"`
	CustomerReference string            `json:"customer_reference,omitempty"`
	LineItems         []models.LineItem `json:"line_items"`
}

// Payment collects the payment fields of the request.
func (r *CaptureRequest) Payment() models.PaymentMetadata {
	return models.PaymentMetadata{
		Currency:          r.Currency,
		Method:            r.PaymentMethod,
		CashierID:         r.CashierID,
		CustomerReference: r.CustomerReference,
	}
}

type CaptureResponse struct {
	RecordID    int64           `json:"record_id"`
	TerminalID  string          `json:"terminal_id"`
	AmountTotal decimal.Decimal `json:"amount_total"`
	Currency    string          `json:"currency"`
	IsDuplicate bool            `json:"is_duplicate"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewCaptureResponse(rec *models.EdgeRecord, duplicate bool) *CaptureResponse {
	return &CaptureResponse{
		RecordID:    rec.ID,
		TerminalID:  rec.TerminalID,
		AmountTotal: rec.AmountTotal,
		Currency:    rec.Payment.Currency,
		IsDuplicate: duplicate,
		CreatedAt:   rec.CreatedAt,
	}
}

type HeartbeatRequest struct {
	TerminalID    string `json:"terminal_id"`
	CentralLinkUp bool   `json:"central_link_up"`
}

type HeartbeatResponse struct {
	TerminalID    string        `json:"terminal_id"`
	Status        models.Status `json:"status"`
	CentralLinkUp bool          `json:"central_link_up"`
	ServerTime    time.Time     `json:"server_time"`
}

type TerminalStatusResponse struct {
	TerminalID string        `json:"terminal_id"`
	Status     models.Status `json:"status"`
}

type SyncRequest struct {
	TerminalID string `json:"terminal_id"`
}

type SyncResponse = models.SyncResult

type OverviewResponse = models.Overview

// EdgeRecord is the listing shape of an edge row.
type EdgeRecord struct {
	ID             int64                  `json:"id"`
	TerminalID     string                 `json:"terminal_id"`
	IdempotencyKey string                 `json:"idempotency_key"`
	AmountTotal    decimal.Decimal        `json:"amount_total"`
	Payment        models.PaymentMetadata `json:"payment"`
	LineItems      []models.LineItem      `json:"line_items"`
	CreatedAt      time.Time              `json:"created_at"`
	SyncState      models.SyncState       `json:"sync_state"`
	SyncedAt       *time.Time             `json:"synced_at,omitempty"`
}

func NewEdgeRecords(recs []*models.EdgeRecord) []EdgeRecord {
	out := make([]EdgeRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, EdgeRecord{
			ID:             r.ID,
			TerminalID:     r.TerminalID,
			IdempotencyKey: r.IdempotencyKey,
			AmountTotal:    r.AmountTotal,
			Payment:        r.Payment,
			LineItems:      r.LineItems,
			CreatedAt:      r.CreatedAt,
			SyncState:      r.SyncState,
			SyncedAt:       r.SyncedAt,
		})
	}
	return out
}

// CentralRecord is the listing shape of a central row.
type CentralRecord struct {
	ID                 int64                  `json:"id"`
	SourceEdgeRecordID int64                  `json:"source_edge_record_id"`
	TerminalID         string                 `json:"terminal_id"`
	IdempotencyKey     string                 `json:"idempotency_key"`
	AmountTotal        decimal.Decimal        `json:"amount_total"`
	Payment            models.PaymentMetadata `json:"payment"`
	LineItems          []models.LineItem      `json:"line_items"`
	CapturedAt         time.Time              `json:"captured_at"`
	ReceivedAt         time.Time              `json:"received_at"`
}

func NewCentralRecords(recs []*models.CentralRecord) []CentralRecord {
	out := make([]CentralRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, CentralRecord{
			ID:                 r.ID,
			SourceEdgeRecordID: r.SourceEdgeRecordID,
			TerminalID:         r.TerminalID,
			IdempotencyKey:     r.IdempotencyKey,
			AmountTotal:        r.AmountTotal,
			Payment:            r.Payment,
			LineItems:          r.LineItems,
			CapturedAt:         r.CapturedAt,
			ReceivedAt:         r.ReceivedAt,
		})
	}
	return out
}

type ErrorResponse struct {
	Error string `json:"error"`
}
