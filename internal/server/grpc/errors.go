package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var invalidArgument = []error{
	common.ErrorValidation,
	common.ErrorWeakPassword,
	common.ErrorInvalidEmail,
	common.ErrorUnknownKind,
	common.ErrorOutOfRange,
	common.ErrorEmptyPlantPatch,
}

var unauthenticated = []error{
	common.ErrorInvalidLogin,
	common.ErrorUnauthorized,
	common.ErrInvalidToken,
	common.ErrTokenExpired,
	common.ErrRefreshTokenExpired,
}

// toStatus maps a service error to a gRPC status. Unexpected errors are
// logged and hidden behind a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, op string, err error) error {
	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return status.Error(codes.InvalidArgument, err.Error())
		}
	}
	for _, target := range unauthenticated {
		if errors.Is(err, target) {
			return status.Error(codes.Unauthenticated, target.Error())
		}
	}

	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "user already registered")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrorForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	}

	s.logger.Error(ctx, "request failed", "op", op, "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
