package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrUnauthenticated    = fmt.Errorf("user not authenticated")
	ErrForbidden          = fmt.Errorf("only admins can perform this operation")
	ErrInvalidPayload     = fmt.Errorf("invalid payload")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
)

// ToStatus maps a domain error onto the gRPC status vocabulary shared by
// the websocket frames and the HTTP handlers.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return status.New(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrForbidden):
		return status.New(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrInvalidPayload), errors.Is(err, ErrInvalidPassword):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return status.New(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrUserNotFound):
		return status.New(codes.NotFound, err.Error())
	default:
		return status.New(codes.Internal, err.Error())
	}
}
