package grpcserver

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

// toStatus maps domain sentinels to gRPC status codes.
func toStatus(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, "unauthorized")
	case errors.Is(err, errs.ErrAlreadyRevoked):
		return status.Error(codes.FailedPrecondition, "already revoked")
	case errors.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrInvalidSignature):
		return status.Error(codes.Unauthenticated, "invalid signature")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
