package grpc

import (
	"context"
	"errors"

	"github.com/vogiaan1904/docqueue/internal/models"
	"github.com/vogiaan1904/docqueue/internal/service"
	pkgErrors "github.com/vogiaan1904/docqueue/pkg/errors"
	"github.com/vogiaan1904/docqueue/pkg/logger"
	resp "github.com/vogiaan1904/docqueue/pkg/response"
	docqueuepb "github.com/vogiaan1904/docqueue/protogen/docqueue"
	"google.golang.org/grpc"
)

type grpcService struct {
	svc service.QueueService
	l   logger.Logger
	docqueuepb.UnimplementedQueueServiceServer
}

func NewGrpcService(svc service.QueueService, l logger.Logger) docqueuepb.QueueServiceServer {
	return &grpcService{
		svc: svc,
		l:   l,
	}
}

func (s *grpcService) RegisterUser(ctx context.Context, req *docqueuepb.UserRequest) (*docqueuepb.RegisterUserResponse, error) {
	rank, err := s.svc.RegisterUser(ctx, service.QueueOrDefault(req.Queue), req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterUser", err)
	}

	return &docqueuepb.RegisterUserResponse{Rank: rank}, nil
}

func (s *grpcService) AllowUsers(ctx context.Context, req *docqueuepb.AllowUsersRequest) (*docqueuepb.AllowUsersResponse, error) {
	admitted, err := s.svc.AllowUsers(ctx, service.QueueOrDefault(req.Queue), req.Count)
	if err != nil {
		return nil, s.toStatus(ctx, "AllowUsers", err)
	}

	return &docqueuepb.AllowUsersResponse{
		Requested: req.Count,
		Admitted:  admitted,
	}, nil
}

func (s *grpcService) IsAllowed(ctx context.Context, req *docqueuepb.UserRequest) (*docqueuepb.IsAllowedResponse, error) {
	allowed, err := s.svc.IsAllowed(ctx, service.QueueOrDefault(req.Queue), req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, "IsAllowed", err)
	}

	return &docqueuepb.IsAllowedResponse{IsAllowed: allowed}, nil
}

func (s *grpcService) GenerateToken(ctx context.Context, req *docqueuepb.UserRequest) (*docqueuepb.GenerateTokenResponse, error) {
	tok, err := s.svc.GenerateToken(ctx, service.QueueOrDefault(req.Queue), req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, "GenerateToken", err)
	}

	return &docqueuepb.GenerateTokenResponse{Token: tok}, nil
}

func (s *grpcService) ValidateToken(ctx context.Context, req *docqueuepb.ValidateTokenRequest) (*docqueuepb.IsAllowedResponse, error) {
	allowed, err := s.svc.VerifyAccess(ctx, service.QueueOrDefault(req.Queue), req.UserId, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, "ValidateToken", err)
	}

	return &docqueuepb.IsAllowedResponse{IsAllowed: allowed}, nil
}

func (s *grpcService) GetQueueStatus(ctx context.Context, req *docqueuepb.UserRequest) (*docqueuepb.QueueStatus, error) {
	st, err := s.svc.GetQueueStatus(ctx, service.QueueOrDefault(req.Queue), req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, "GetQueueStatus", err)
	}

	return toQueueStatusPb(st), nil
}

func (s *grpcService) RegisterOrGetStatus(ctx context.Context, req *docqueuepb.UserRequest) (*docqueuepb.QueueStatus, error) {
	st, err := s.svc.RegisterOrGetStatus(ctx, service.QueueOrDefault(req.Queue), req.UserId)
	if err != nil {
		return nil, s.toStatus(ctx, "RegisterOrGetStatus", err)
	}

	return toQueueStatusPb(st), nil
}

func (s *grpcService) StreamQueueStatus(req *docqueuepb.UserRequest, stream grpc.ServerStreamingServer[docqueuepb.QueueStatus]) error {
	ctx := stream.Context()
	queue := service.QueueOrDefault(req.Queue)

	s.l.Debugf(ctx, "Starting status stream for user %s in queue %s", req.UserId, queue)

	upds := make(chan models.QueueStatus)
	errCh := make(chan error, 1)

	go func() {
		errCh <- s.svc.StreamQueueStatus(ctx, queue, req.UserId, upds)
	}()

	for {
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				return s.toStatus(ctx, "StreamQueueStatus", err)
			}
			return nil

		case upd := <-upds:
			if err := stream.Send(toQueueStatusPb(upd)); err != nil {
				s.l.Errorf(ctx, "delivery.grpc.service.StreamQueueStatus: %v", err)
				return err
			}
		}
	}
}

func toQueueStatusPb(st models.QueueStatus) *docqueuepb.QueueStatus {
	return &docqueuepb.QueueStatus{
		UserRank:       st.UserRank,
		TotalQueueSize: st.TotalQueueSize,
		Progress:       st.Progress,
	}
}

func (s *grpcService) toStatus(ctx context.Context, method string, err error) error {
	mapped := s.mapGRPCError(err)

	var gErr *pkgErrors.GRPCError
	if !errors.As(mapped, &gErr) {
		s.l.Errorf(ctx, "delivery.grpc.service.%s: %v", method, err)
	}
	return resp.ParseGRPCError(mapped)
}
