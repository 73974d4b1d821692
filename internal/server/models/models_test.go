package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	items := []LineItem{
		{SKU: "MILK", Name: "Milk", Quantity: 1, UnitPrice: decimal.RequireFromString("18.5")},
		{SKU: "BREAD", Name: "Bread", Quantity: 2, UnitPrice: decimal.RequireFromString("29.9")},
	}
	assert.True(t, decimal.RequireFromString("78.3").Equal(ComputeTotal(items)))
}

func TestComputeTotal_Rounds(t *testing.T) {
	items := []LineItem{{SKU: "X", Name: "x", Quantity: 3, UnitPrice: decimal.RequireFromString("0.335")}}
	assert.Equal(t, "1.01", ComputeTotal(items).StringFixed(2))
}

func TestMinorUnits_RoundTrip(t *testing.T) {
	d := decimal.RequireFromString("78.30")
	assert.Equal(t, int64(7830), MinorUnits(d))
	assert.True(t, d.Equal(FromMinorUnits(7830)))
	assert.Equal(t, int64(0), MinorUnits(decimal.Zero))
}

func TestStatusAt(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	window := 20 * time.Second

	up := &TerminalState{TerminalID: "K1", CentralLinkReported: true, LastHeartbeatAt: &t0}
	down := &TerminalState{TerminalID: "K2", CentralLinkReported: false, LastHeartbeatAt: &t0}
	never := &TerminalState{TerminalID: "K3", CentralLinkReported: true}

	tests := []struct {
		name  string
		state *TerminalState
		now   time.Time
		want  Status
	}{
		{"fresh", up, t0, StatusOnline},
		{"at boundary", up, t0.Add(window), StatusOnline},
		{"past boundary", up, t0.Add(window + time.Millisecond), StatusOffline},
		{"link down", down, t0, StatusOffline},
		{"never heartbeated", never, t0, StatusOffline},
		{"nil state", nil, t0, StatusOffline},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.StatusAt(tt.now, window))
		})
	}
}

func TestToCentral_CopiesLineItems(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &EdgeRecord{
		ID: 7, TerminalID: "K1", IdempotencyKey: "key-0001",
		AmountTotal: decimal.RequireFromString("10"),
		Payment:     PaymentMetadata{Currency: "SEK"},
		LineItems:   []LineItem{{SKU: "A", Name: "a", Quantity: 1, UnitPrice: decimal.RequireFromString("10")}},
		CreatedAt:   created,
	}

	c := rec.ToCentral(created.Add(time.Minute))
	rec.LineItems[0].SKU = "changed"

	assert.Equal(t, int64(7), c.SourceEdgeRecordID)
	assert.Equal(t, "K1", c.TerminalID)
	assert.Equal(t, "A", c.LineItems[0].SKU)
	assert.Equal(t, created, c.CapturedAt)
}
