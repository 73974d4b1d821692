package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureRequest_DecodesDecimalPrices(t *testing.T) {
	var req CaptureRequest
	err := json.Unmarshal([]byte(`{
		"terminal_id": "T1",
		"idempotency_key": "order-000001",
		"currency": "SEK",
		"payment_method": "card",
		"line_items": [{"sku": "MILK", "name": "Milk", "quantity": 1, "unit_price": 18.5}]
	}`), &req)
	require.NoError(t, err)

	require.Len(t, req.LineItems, 1)
	assert.True(t, decimal.RequireFromString("18.5").Equal(req.LineItems[0].UnitPrice))
	assert.Equal(t, models.PaymentMetadata{Currency: "SEK", Method: "card"}, req.Payment())
}

func TestNewCaptureResponse(t *testing.T) {
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := &models.EdgeRecord{
		ID: 3, TerminalID: "T1", AmountTotal: decimal.RequireFromString("78.3"),
		Payment: models.PaymentMetadata{Currency: "SEK"}, CreatedAt: at,
	}

	resp := NewCaptureResponse(rec, true)
	assert.Equal(t, int64(3), resp.RecordID)
	assert.True(t, resp.IsDuplicate)
	assert.Equal(t, "SEK", resp.Currency)

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"amount_total":"78.3"`)
}

func TestListingConverters(t *testing.T) {
	assert.Empty(t, NewEdgeRecords(nil))
	assert.NotNil(t, NewCentralRecords(nil))

	edge := NewEdgeRecords([]*models.EdgeRecord{{ID: 1, SyncState: models.SyncStatePending}})
	require.Len(t, edge, 1)
	assert.Equal(t, models.SyncStatePending, edge[0].SyncState)

	central := NewCentralRecords([]*models.CentralRecord{{ID: 2, SourceEdgeRecordID: 1}})
	require.Len(t, central, 1)
	assert.Equal(t, int64(1), central[0].SourceEdgeRecordID)
}
