package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SyncResult reports one sync pass for a terminal.
type SyncResult struct {
	TerminalID   string `json:"terminal_id"`
	Pushed       int    `json:"pushed"`
	Duplicates   int    `json:"duplicates"`
	PendingAfter int    `json:"pending_after"`
}

// Aggregate is a count/amount pair computed by a store for one terminal.
type Aggregate struct {
	Count   int
	Amount  decimal.Decimal
	Pending int
}

// Overview is the fleet-wide dashboard summary.
type Overview struct {
	TotalTerminals     int             `json:"total_terminals"`
	Online             int             `json:"online"`
	Offline            int             `json:"offline"`
	PendingSyncCount   int             `json:"pending_sync_count"`
	CentralRecordCount int             `json:"central_record_count"`
	CentralTotalAmount decimal.Decimal `json:"central_total_amount"`
}

// TerminalStats is one dashboard row per known terminal.
type TerminalStats struct {
	TerminalID      string          `json:"terminal_id"`
	Status          Status          `json:"status"`
	CentralLinkUp   bool            `json:"central_link_up"`
	LastHeartbeatAt *time.Time      `json:"last_heartbeat_at,omitempty"`
	EdgeCount       int             `json:"edge_count"`
	EdgeAmount      decimal.Decimal `json:"edge_amount"`
	CentralCount    int             `json:"central_count"`
	CentralAmount   decimal.Decimal `json:"central_amount"`
	PendingCount    int             `json:"pending_count"`
}
