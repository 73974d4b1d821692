// Package grpc serves the terminal-facing edgesync.v1.EdgeSync service.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/edgesync/internal/logging"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedEdgeSyncServer

	address   string
	capture   *services.CaptureService
	liveness  *services.LivenessService
	sync      *services.SyncService
	dashboard *services.DashboardService
	logger    logging.Logger
	jwtSecret []byte
}

var _ pb.EdgeSyncServer = (*GRPCServer)(nil)

// Services groups the business services the gRPC API exposes.
type Services struct {
	Capture   *services.CaptureService
	Liveness  *services.LivenessService
	Sync      *services.SyncService
	Dashboard *services.DashboardService
}

func NewGRPCServer(a string, l logging.Logger, svc Services, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		capture:   svc.Capture,
		liveness:  svc.Liveness,
		sync:      svc.Sync,
		dashboard: svc.Dashboard,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterEdgeSyncServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
