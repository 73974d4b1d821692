package client

import (
	"context"
	"net"
	"testing"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/common"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// fakeServer records the token it saw and returns err from every call when set.
type fakeServer struct {
	pb.UnimplementedEdgeSyncServer

	err       error
	lastToken string
	lastSync  *pb.SyncRequest
	lastItems []*pb.LineItem
}

func (f *fakeServer) token(ctx context.Context) {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		f.lastToken = v[0]
	}
}

func (f *fakeServer) Capture(ctx context.Context, in *pb.CaptureRequest) (*pb.CaptureResponse, error) {
	f.token(ctx)
	f.lastItems = in.GetLineItems()
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CaptureResponse{RecordId: 7, TerminalId: in.GetTerminalId(),
		AmountTotal: "78.30", Currency: in.GetCurrency()}, nil
}

func (f *fakeServer) Heartbeat(ctx context.Context, in *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
	f.token(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.HeartbeatResponse{TerminalId: in.GetTerminalId(), Status: string(models.StatusOnline),
		CentralLinkUp: in.GetCentralLinkUp(), ServerTime: timestamppb.Now()}, nil
}

func (f *fakeServer) Sync(ctx context.Context, in *pb.SyncRequest) (*pb.SyncResponse, error) {
	f.token(ctx)
	f.lastSync = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.SyncResponse{TerminalId: in.GetTerminalId(), Pushed: 2}, nil
}

func (f *fakeServer) Overview(ctx context.Context, _ *pb.OverviewRequest) (*pb.OverviewResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.OverviewResponse{TotalTerminals: 3, Online: 1, Offline: 2, CentralTotalAmount: "55.50"}, nil
}

func (f *fakeServer) TerminalStats(ctx context.Context, in *pb.TerminalStatsRequest) (*pb.TerminalStatsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.TerminalStatsResponse{Terminals: []*pb.TerminalStats{
		{TerminalId: "T1", EdgeAmount: "10.00", LastHeartbeatAt: timestamppb.Now()},
		{TerminalId: "T2"},
	}}, nil
}

func (f *fakeServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.PingResponse{Status: "OK"}, nil
}

func newTestClient(t *testing.T, fake pb.EdgeSyncServer, token string) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterEdgeSyncServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet", token,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c
}

func TestGRPCClient_Calls(t *testing.T) {
	fake := &fakeServer{}
	c := newTestClient(t, fake, "tok-1")
	ctx := context.Background()

	capture, err := c.Capture(ctx, &api.CaptureRequest{
		TerminalID: "T1", IdempotencyKey: "order-0001", Currency: "SEK",
		LineItems: []models.LineItem{{SKU: "MILK", Name: "Milk", Quantity: 2, UnitPrice: decimal.RequireFromString("18.50")}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), capture.RecordID)
	require.Len(t, fake.lastItems, 1)
	assert.Equal(t, "18.5", fake.lastItems[0].GetUnitPrice())
	assert.Equal(t, int32(2), fake.lastItems[0].GetQuantity())
	assert.True(t, decimal.RequireFromString("78.3").Equal(capture.AmountTotal))
	assert.Equal(t, "tok-1", fake.lastToken)

	hb, err := c.Heartbeat(ctx, "T1", true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnline, hb.Status)
	assert.True(t, hb.CentralLinkUp)
	assert.False(t, hb.ServerTime.IsZero())

	res, err := c.Sync(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pushed)
	assert.Equal(t, "T1", fake.lastSync.GetTerminalId())

	o, err := c.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, o.TotalTerminals)
	assert.True(t, decimal.RequireFromString("55.5").Equal(o.CentralTotalAmount))

	stats, err := c.TerminalStats(ctx, "")
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.True(t, decimal.RequireFromString("10").Equal(stats[0].EdgeAmount))
	assert.NotNil(t, stats[0].LastHeartbeatAt)
	assert.Nil(t, stats[1].LastHeartbeatAt)

	require.NoError(t, c.Ping(ctx))
}

func TestGRPCClient_NoTokenSendsNoMetadata(t *testing.T) {
	fake := &fakeServer{}
	c := newTestClient(t, fake, "")

	_, err := c.Heartbeat(context.Background(), "T1", false)
	require.NoError(t, err)
	assert.Empty(t, fake.lastToken)
}

func TestGRPCClient_MapsStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validation", status.Error(codes.InvalidArgument, "validation error: bad key"), common.ErrValidation},
		{"link down", status.Error(codes.FailedPrecondition, "central link down"), common.ErrLinkDown},
		{"unknown terminal", status.Error(codes.NotFound, "unknown terminal"), common.ErrUnknownTerminal},
		{"expired", status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error()), common.ErrTokenExpired},
		{"invalid", status.Error(codes.Unauthenticated, "missing token"), common.ErrInvalidToken},
		{"mismatch", status.Error(codes.PermissionDenied, "token does not match terminal"), common.ErrorUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, &fakeServer{err: tt.err}, "")

			_, err := c.Sync(context.Background(), "T1")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGRPCClient_RejectsMalformedAmount(t *testing.T) {
	c := newTestClient(t, &badAmountServer{}, "")

	_, err := c.Overview(context.Background())
	assert.ErrorIs(t, err, common.ErrValidation)
}

type badAmountServer struct {
	pb.UnimplementedEdgeSyncServer
}

func (badAmountServer) Overview(context.Context, *pb.OverviewRequest) (*pb.OverviewResponse, error) {
	return &pb.OverviewResponse{CentralTotalAmount: "lots"}, nil
}

func TestGRPCClient_UnimplementedMethod(t *testing.T) {
	c := newTestClient(t, &badAmountServer{}, "")

	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc error")
}

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil))

	err := mapError(status.Error(codes.Internal, "internal error"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc error")

	err = mapError(status.Error(codes.InvalidArgument, "validation error: currency must be a 3-letter code"))
	assert.Equal(t, "validation error: currency must be a 3-letter code", err.Error())
}
