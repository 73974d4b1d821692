package services

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/edgesync/internal/common"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_ComputesTotal(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.capture.Capture(context.Background(), CaptureRequest{
		TerminalID:     "ICA-STHLM-001",
		IdempotencyKey: "order-000001",
		LineItems:      []models.LineItem{item("MILK", 1, "18.5"), item("BREAD", 2, "29.9")},
	})
	require.NoError(t, err)
	assert.False(t, res.IsDuplicate)
	assert.NotZero(t, res.Record.ID)
	assert.True(t, decimal.RequireFromString("78.3").Equal(res.Record.AmountTotal),
		"got %s", res.Record.AmountTotal)
	assert.Equal(t, "SEK", res.Record.Payment.Currency)
	assert.Equal(t, models.SyncStatePending, res.Record.SyncState)
	assert.True(t, epoch.Equal(res.Record.CreatedAt))
}

func TestCapture_IsIdempotentPerTerminal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.capture.Capture(ctx, CaptureRequest{
		TerminalID: "T1", IdempotencyKey: "order-000001",
		LineItems: []models.LineItem{item("MILK", 1, "18.50")},
	})
	require.NoError(t, err)

	second, err := env.capture.Capture(ctx, CaptureRequest{
		TerminalID: "T1", IdempotencyKey: "order-000001",
		LineItems: []models.LineItem{item("CAVIAR", 3, "999.00")},
	})
	require.NoError(t, err)

	assert.True(t, second.IsDuplicate)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.True(t, decimal.RequireFromString("18.50").Equal(second.Record.AmountTotal))
	require.Len(t, second.Record.LineItems, 1)
	assert.Equal(t, "MILK", second.Record.LineItems[0].Name)

	all, err := env.capture.ListEdge(ctx, models.EdgeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// the key is scoped to its terminal
	other, err := env.capture.Capture(ctx, CaptureRequest{
		TerminalID: "T2", IdempotencyKey: "order-000001",
		LineItems: []models.LineItem{item("MILK", 1, "18.50")},
	})
	require.NoError(t, err)
	assert.False(t, other.IsDuplicate)
	assert.NotEqual(t, first.Record.ID, other.Record.ID)
}

func TestCapture_Validation(t *testing.T) {
	valid := func() CaptureRequest {
		return CaptureRequest{
			TerminalID:     "T1",
			IdempotencyKey: "order-000001",
			LineItems:      []models.LineItem{item("MILK", 1, "1.00")},
		}
	}

	tests := []struct {
		name   string
		mutate func(r *CaptureRequest)
	}{
		{"empty terminal", func(r *CaptureRequest) { r.TerminalID = "  " }},
		{"long terminal", func(r *CaptureRequest) { r.TerminalID = strings.Repeat("t", 65) }},
		{"short key", func(r *CaptureRequest) { r.IdempotencyKey = "1234567" }},
		{"long key", func(r *CaptureRequest) { r.IdempotencyKey = strings.Repeat("k", 129) }},
		{"short multibyte key", func(r *CaptureRequest) { r.IdempotencyKey = "köp-åäö" }},
		{"bad currency", func(r *CaptureRequest) { r.Payment.Currency = "KR" }},
		{"digit currency", func(r *CaptureRequest) { r.Payment.Currency = "E1R" }},
		{"no items", func(r *CaptureRequest) { r.LineItems = nil }},
		{"zero quantity", func(r *CaptureRequest) { r.LineItems[0].Quantity = 0 }},
		{"negative quantity", func(r *CaptureRequest) { r.LineItems[0].Quantity = -2 }},
		{"zero price", func(r *CaptureRequest) { r.LineItems[0].UnitPrice = decimal.Zero }},
		{"negative price", func(r *CaptureRequest) { r.LineItems[0].UnitPrice = decimal.RequireFromString("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			req := valid()
			tt.mutate(&req)

			_, err := env.capture.Capture(context.Background(), req)
			require.ErrorIs(t, err, common.ErrValidation)

			recs, err := env.capture.ListEdge(context.Background(), models.EdgeFilter{})
			require.NoError(t, err)
			assert.Empty(t, recs, "rejected capture must not write")
		})
	}
}

func TestCapture_KeyLengthCountsCharacters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// 128 characters, 256 bytes
	key := strings.Repeat("ö", MaxIdempotencyKeyLen)
	res, err := env.capture.Capture(ctx, CaptureRequest{
		TerminalID: "T1", IdempotencyKey: key,
		LineItems: []models.LineItem{item("MILK", 1, "1.00")},
	})
	require.NoError(t, err)
	assert.Equal(t, key, res.Record.IdempotencyKey)

	_, err = env.capture.Capture(ctx, CaptureRequest{
		TerminalID: "T1", IdempotencyKey: key + "ö",
		LineItems: []models.LineItem{item("MILK", 1, "1.00")},
	})
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = env.capture.Capture(ctx, CaptureRequest{
		TerminalID: strings.Repeat("å", MaxTerminalIDLen), IdempotencyKey: "order-000002",
		LineItems: []models.LineItem{item("MILK", 1, "1.00")},
	})
	require.NoError(t, err)
}

func TestCapture_NormalizesCurrency(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.capture.Capture(context.Background(), CaptureRequest{
		TerminalID: "T1", IdempotencyKey: "order-000001",
		LineItems: []models.LineItem{item("MILK", 1, "1.00")},
		Payment:   models.PaymentMetadata{Currency: "eur", Method: "card"},
	})
	require.NoError(t, err)
	assert.Equal(t, "EUR", res.Record.Payment.Currency)
	assert.Equal(t, "card", res.Record.Payment.Method)
}

func TestCapture_KeyBoundaries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, key := range []string{strings.Repeat("k", 8), strings.Repeat("k", 128)} {
		_, err := env.capture.Capture(ctx, CaptureRequest{
			TerminalID: strings.Repeat("t", 64), IdempotencyKey: key,
			LineItems: []models.LineItem{item("MILK", 1, "1.00")},
		})
		require.NoError(t, err)
	}
}
