package grpc

import (
	"errors"

	"github.com/vogiaan1904/docqueue/internal/service"
	pkgErrors "github.com/vogiaan1904/docqueue/pkg/errors"
	"google.golang.org/grpc/codes"
)

var (
	errAlreadyRegistered = pkgErrors.NewGRPCError("DQ001", "User already registered in queue", codes.AlreadyExists)
	errInvalidToken      = pkgErrors.NewGRPCError("DQ002", "Invalid queue token", codes.Unauthenticated)
	errInvalidQueueName  = pkgErrors.NewGRPCError("DQ003", "Queue name is required", codes.InvalidArgument)
	errInvalidUserID     = pkgErrors.NewGRPCError("DQ004", "User id is required", codes.InvalidArgument)
	errInvalidCount      = pkgErrors.NewGRPCError("DQ005", "Count must not be negative", codes.InvalidArgument)
)

func (s *grpcService) mapGRPCError(err error) error {
	switch {
	case errors.Is(err, service.ErrAlreadyRegistered):
		return errAlreadyRegistered
	case errors.Is(err, service.ErrInvalidToken):
		return errInvalidToken
	case errors.Is(err, service.ErrInvalidQueueName):
		return errInvalidQueueName
	case errors.Is(err, service.ErrInvalidUserID):
		return errInvalidUserID
	case errors.Is(err, service.ErrInvalidCount):
		return errInvalidCount
	default:
		return err
	}
}
