// Package models defines the records persisted by the edge and central
// stores and the read models computed from them.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SyncState is the replication state of an edge record. It only moves from
// pending to synced.
type SyncState string

const (
	SyncStatePending SyncState = "pending"
	SyncStateSynced  SyncState = "synced"
)

// LineItem is one purchased article on a receipt.
type LineItem struct {
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PaymentMetadata carries the payment side of a capture.
type PaymentMetadata struct {
	Currency          string `json:"currency"`
	Method            string `json:"method,omitempty"`
	CashierID         string `json:"cashier_id,omitempty"`
	CustomerReference string `json:"customer_reference,omitempty"`
}

// EdgeRecord is one transaction captured at a terminal and staged in the
// edge store until it reaches central.
type EdgeRecord struct {
	ID             int64
	TerminalID     string
	IdempotencyKey string
	AmountTotal    decimal.Decimal
	Payment        PaymentMetadata
	LineItems      []LineItem
	CreatedAt      time.Time
	SyncState      SyncState
	SyncedAt       *time.Time
}

// CentralRecord is an edge record accepted by the central authority.
// (SourceEdgeRecordID, TerminalID) is unique.
type CentralRecord struct {
	ID                 int64
	SourceEdgeRecordID int64
	TerminalID         string
	IdempotencyKey     string
	AmountTotal        decimal.Decimal
	Payment            PaymentMetadata
	LineItems          []LineItem
	CapturedAt         time.Time
	ReceivedAt         time.Time
}

// ToCentral copies an edge record into the shape central stores.
func (r *EdgeRecord) ToCentral(receivedAt time.Time) *CentralRecord {
	items := make([]LineItem, len(r.LineItems))
	copy(items, r.LineItems)
	return &CentralRecord{
		SourceEdgeRecordID: r.ID,
		TerminalID:         r.TerminalID,
		IdempotencyKey:     r.IdempotencyKey,
		AmountTotal:        r.AmountTotal,
		Payment:            r.Payment,
		LineItems:          items,
		CapturedAt:         r.CreatedAt,
		ReceivedAt:         receivedAt,
	}
}

// EdgeFilter narrows edge record listings.
type EdgeFilter struct {
	TerminalID  string
	PendingOnly bool
}
