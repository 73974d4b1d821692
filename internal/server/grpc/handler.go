package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/edgesync/internal/api"
	"github.com/dmitrijs2005/edgesync/internal/common"
	pb "github.com/dmitrijs2005/edgesync/internal/proto"
	"github.com/dmitrijs2005/edgesync/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Capture(ctx context.Context, in *pb.CaptureRequest) (*pb.CaptureResponse, error) {
	req, err := api.CaptureRequestFromProto(in)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	res, err := s.capture.Capture(ctx, services.CaptureRequest{
		TerminalID:     req.TerminalID,
		IdempotencyKey: req.IdempotencyKey,
		LineItems:      req.LineItems,
		Payment:        req.Payment(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return api.NewCaptureResponse(res.Record, res.IsDuplicate).ToProto(), nil
}

func (s *GRPCServer) Heartbeat(ctx context.Context, in *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
	res, err := s.liveness.Heartbeat(ctx, in.GetTerminalId(), in.GetCentralLinkUp())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.HeartbeatResponse{
		TerminalId:    res.TerminalID,
		Status:        string(res.Status),
		CentralLinkUp: res.CentralLinkUp,
		ServerTime:    timestamppb.New(res.ServerTime),
	}, nil
}

func (s *GRPCServer) Sync(ctx context.Context, in *pb.SyncRequest) (*pb.SyncResponse, error) {
	res, err := s.sync.Sync(ctx, in.GetTerminalId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return api.SyncResultToProto(res), nil
}

func (s *GRPCServer) Overview(ctx context.Context, _ *pb.OverviewRequest) (*pb.OverviewResponse, error) {
	o, err := s.dashboard.Overview(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return api.OverviewToProto(o), nil
}

func (s *GRPCServer) TerminalStats(ctx context.Context, in *pb.TerminalStatsRequest) (*pb.TerminalStatsResponse, error) {
	stats, err := s.dashboard.TerminalStats(ctx, in.GetTerminalId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TerminalStatsResponse{Terminals: api.TerminalStatsToProto(stats)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

// toStatus maps domain errors to gRPC status codes. Unexpected errors are
// logged and reported as Internal without their text.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrLinkDown):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrUnknownTerminal):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
