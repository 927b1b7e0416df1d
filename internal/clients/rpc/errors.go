package rpc

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/accounts"
	"max.ks1230/expense-tracker/internal/model/gateway"
)

var ErrUnauthenticated = errors.New("not authenticated")

var (
	notFoundErrors = []error{gateway.ErrNotFound, accounts.ErrUserNotFound}
	invalidErrors  = []error{
		gateway.ErrUnknownTable, gateway.ErrUnknownAggregate, gateway.ErrUnknownOrder,
		accounts.ErrInvalidEmail, accounts.ErrWeakPassword, accounts.ErrInvalidResetToken,
	}
	unauthenticatedErrors = []error{ErrUnauthenticated, accounts.ErrWrongCredentials, accounts.ErrInvalidToken}
)

// toStatus keeps the causes the client can act on and hides everything else.
func toStatus(method string, err error) error {
	switch {
	case err == nil:
		return nil
	case isAny(err, notFoundErrors):
		return status.Error(codes.NotFound, errors.Cause(err).Error())
	case isAny(err, invalidErrors):
		return status.Error(codes.InvalidArgument, errors.Cause(err).Error())
	case isAny(err, unauthenticatedErrors):
		return status.Error(codes.Unauthenticated, errors.Cause(err).Error())
	case errors.Is(err, accounts.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, accounts.ErrEmailTaken.Error())
	case errors.Is(err, gateway.ErrForbidden):
		return status.Error(codes.PermissionDenied, gateway.ErrForbidden.Error())
	default:
		logger.Error("rpc call failed", zap.String("method", method), zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

// fromStatus maps a status back to the sentinel the callers check for.
func fromStatus(method string, err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return errors.Wrap(err, method)
	}
	var sentinel error
	switch st.Code() {
	case codes.NotFound:
		sentinel = gateway.ErrNotFound
		if st.Message() == accounts.ErrUserNotFound.Error() {
			sentinel = accounts.ErrUserNotFound
		}
	case codes.Unauthenticated:
		sentinel = ErrUnauthenticated
		for _, e := range []error{accounts.ErrWrongCredentials, accounts.ErrInvalidToken} {
			if st.Message() == e.Error() {
				sentinel = e
			}
		}
	case codes.AlreadyExists:
		sentinel = accounts.ErrEmailTaken
	case codes.PermissionDenied:
		sentinel = gateway.ErrForbidden
	case codes.InvalidArgument:
		for _, e := range invalidErrors {
			if st.Message() == e.Error() {
				sentinel = e
			}
		}
	}
	if sentinel == nil {
		return errors.Wrap(err, method)
	}
	return errors.Wrap(sentinel, method)
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
