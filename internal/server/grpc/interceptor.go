package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/edgesync/internal/common"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const terminalIDKey ctxKey = "terminalID"

// terminalScoped is implemented by requests acting on behalf of one terminal.
type terminalScoped interface {
	GetTerminalId() string
}

// protected lists the methods that need a token when a secret is configured.
var protected = map[string]bool{
	pb.EdgeSync_Capture_FullMethodName:   true,
	pb.EdgeSync_Heartbeat_FullMethodName: true,
	pb.EdgeSync_Sync_FullMethodName:      true,
}

// accessTokenInterceptor requires a token whose subject matches the
// request's terminal id on protected methods. It is a no-op when the server
// runs without a secret.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if len(s.jwtSecret) == 0 || !protected[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	terminalID, err := auth.TerminalIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	if r, ok := req.(terminalScoped); ok && r.GetTerminalId() != terminalID {
		return nil, status.Error(codes.PermissionDenied, "token does not match terminal")
	}

	return handler(context.WithValue(ctx, terminalIDKey, terminalID), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "grpc call",
		"method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}
