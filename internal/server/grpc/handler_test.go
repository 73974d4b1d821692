package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/logging"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/auth"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func checkout(terminal, key string) *pb.CaptureRequest {
	return &pb.CaptureRequest{
		TerminalId:     terminal,
		IdempotencyKey: key,
		Currency:       "SEK",
		LineItems: []*pb.LineItem{
			{Sku: "MILK", Name: "Milk", Quantity: 1, UnitPrice: "18.5"},
			{Sku: "BREAD", Name: "Bread", Quantity: 2, UnitPrice: "29.9"},
		},
	}
}

func TestRoundTrip_CaptureHeartbeatSyncDashboard(t *testing.T) {
	client := startBufconn(t, NewGRPCServer("", logging.Nop(), newServices(t), ""))
	ctx := context.Background()

	ping, err := client.Ping(ctx, &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", ping.GetStatus())

	captured, err := client.Capture(ctx, checkout("T1", "order-000001"))
	require.NoError(t, err)
	assert.False(t, captured.GetIsDuplicate())
	assert.Equal(t, "78.3", captured.GetAmountTotal())
	assert.Equal(t, "SEK", captured.GetCurrency())
	assert.NotNil(t, captured.GetCreatedAt())

	again, err := client.Capture(ctx, checkout("T1", "order-000001"))
	require.NoError(t, err)
	assert.True(t, again.GetIsDuplicate())
	assert.Equal(t, captured.GetRecordId(), again.GetRecordId())

	hb, err := client.Heartbeat(ctx, &pb.HeartbeatRequest{TerminalId: "T1", CentralLinkUp: true})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusOnline), hb.GetStatus())
	assert.WithinDuration(t, time.Now(), hb.GetServerTime().AsTime(), time.Minute)

	synced, err := client.Sync(ctx, &pb.SyncRequest{TerminalId: "T1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), synced.GetPushed())
	assert.Equal(t, int64(0), synced.GetPendingAfter())

	overview, err := client.Overview(ctx, &pb.OverviewRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.GetTotalTerminals())
	assert.Equal(t, int64(1), overview.GetCentralRecordCount())
	assert.Equal(t, "78.30", overview.GetCentralTotalAmount())

	stats, err := client.TerminalStats(ctx, &pb.TerminalStatsRequest{TerminalId: "T1"})
	require.NoError(t, err)
	require.Len(t, stats.GetTerminals(), 1)
	assert.Equal(t, int64(1), stats.GetTerminals()[0].GetCentralCount())
	assert.NotNil(t, stats.GetTerminals()[0].GetLastHeartbeatAt())
}

func TestErrorCodes(t *testing.T) {
	client := startBufconn(t, NewGRPCServer("", logging.Nop(), newServices(t), ""))
	ctx := context.Background()

	bad := checkout("T1", "order-000001")
	bad.LineItems[0].Quantity = 0
	_, err := client.Capture(ctx, bad)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	unparsable := checkout("T1", "order-000002")
	unparsable.LineItems[0].UnitPrice = "18,5"
	_, err = client.Capture(ctx, unparsable)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Sync(ctx, &pb.SyncRequest{TerminalId: "ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.Heartbeat(ctx, &pb.HeartbeatRequest{TerminalId: "T1", CentralLinkUp: false})
	require.NoError(t, err)
	_, err = client.Sync(ctx, &pb.SyncRequest{TerminalId: "T1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestAuth_TokenRequiredWhenSecretSet(t *testing.T) {
	const secret = "secret"
	client := startBufconn(t, NewGRPCServer("", logging.Nop(), newServices(t), secret))
	ctx := context.Background()
	hb := &pb.HeartbeatRequest{TerminalId: "T1", CentralLinkUp: true}

	_, err := client.Heartbeat(ctx, hb)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	other, err := auth.GenerateToken("T2", []byte(secret), time.Hour)
	require.NoError(t, err)
	_, err = client.Heartbeat(withToken(ctx, other), hb)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	mine, err := auth.GenerateToken("T1", []byte(secret), time.Hour)
	require.NoError(t, err)
	_, err = client.Heartbeat(withToken(ctx, mine), hb)
	require.NoError(t, err)

	// dashboard reads stay open
	_, err = client.Overview(ctx, &pb.OverviewRequest{})
	require.NoError(t, err)
}
