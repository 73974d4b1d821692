package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/common"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn        *grpc.ClientConn
	client      pb.EdgeSyncClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient creates a client for the server at endpoint. Extra dial
// options are appended after the defaults.
func NewGRPCClient(endpoint, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{accessToken: accessToken}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpoint, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewEdgeSyncClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Capture(ctx context.Context, req *api.CaptureRequest) (*api.CaptureResponse, error) {
	resp, err := s.client.Capture(ctx, req.ToProto())
	if err != nil {
		return nil, mapError(err)
	}
	return api.CaptureResponseFromProto(resp)
}

func (s *GRPCClient) Heartbeat(ctx context.Context, terminalID string, linkUp bool) (*api.HeartbeatResponse, error) {
	resp, err := s.client.Heartbeat(ctx, &pb.HeartbeatRequest{TerminalId: terminalID, CentralLinkUp: linkUp})
	if err != nil {
		return nil, mapError(err)
	}
	return api.HeartbeatResponseFromProto(resp), nil
}

func (s *GRPCClient) Sync(ctx context.Context, terminalID string) (*api.SyncResponse, error) {
	resp, err := s.client.Sync(ctx, &pb.SyncRequest{TerminalId: terminalID})
	if err != nil {
		return nil, mapError(err)
	}
	return api.SyncResultFromProto(resp), nil
}

func (s *GRPCClient) Overview(ctx context.Context) (*api.OverviewResponse, error) {
	resp, err := s.client.Overview(ctx, &pb.OverviewRequest{})
	if err != nil {
		return nil, mapError(err)
	}
	return api.OverviewFromProto(resp)
}

// TerminalStats returns per-terminal stats; an empty id means all terminals.
func (s *GRPCClient) TerminalStats(ctx context.Context, terminalID string) ([]*models.TerminalStats, error) {
	resp, err := s.client.TerminalStats(ctx, &pb.TerminalStatsRequest{TerminalId: terminalID})
	if err != nil {
		return nil, mapError(err)
	}
	return api.TerminalStatsFromProto(resp.GetTerminals())
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	var sentinel error
	switch st.Code() {
	case codes.InvalidArgument:
		sentinel = common.ErrValidation
	case codes.FailedPrecondition:
		sentinel = common.ErrLinkDown
	case codes.NotFound:
		sentinel = common.ErrUnknownTerminal
	case codes.Unauthenticated:
		sentinel = common.ErrInvalidToken
		if st.Message() == common.ErrTokenExpired.Error() {
			sentinel = common.ErrTokenExpired
		}
	case codes.PermissionDenied:
		sentinel = common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		sentinel = ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return &statusError{sentinel: sentinel, msg: st.Message()}
}
