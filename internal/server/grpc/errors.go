package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/carder/internal/errs"
)

// ErrorDomain is the errdetails.ErrorInfo domain of carder errors.
const ErrorDomain = "carder"

var kindCodes = map[errs.Kind]codes.Code{
	errs.KindAuthentication: codes.Unauthenticated,
	errs.KindAuthorisation:  codes.PermissionDenied,
	errs.KindValidation:     codes.InvalidArgument,
	errs.KindCart:           codes.InvalidArgument,
	errs.KindConflict:       codes.AlreadyExists,
	errs.KindLicensing:      codes.FailedPrecondition,
	errs.KindNotFound:       codes.NotFound,
	errs.KindRateLimited:    codes.ResourceExhausted,
	errs.KindPipeline:       codes.Internal,
}

// toStatus renders a service error as a gRPC status. Domain errors carry an
// ErrorInfo with reason = code and metadata = kind plus details; anything
// else becomes a bare Internal.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	kind := errs.KindOf(err)
	code, ok := kindCodes[kind]
	if !ok {
		return status.Error(codes.Internal, "internal")
	}

	msg := err.Error()
	info := &errdetails.ErrorInfo{Domain: ErrorDomain, Metadata: map[string]string{"kind": string(kind)}}
	var de *errs.Error
	if errors.As(err, &de) {
		msg = de.Message
		info.Reason = de.Code
		for k, v := range de.Details {
			info.Metadata[k] = v
		}
	}
	st, derr := status.New(code, msg).WithDetails(info)
	if derr != nil {
		return status.Error(code, msg)
	}
	return st.Err()
}

// ErrorInfo extracts the carder ErrorInfo from a status error, if any.
func ErrorInfo(err error) *errdetails.ErrorInfo {
	st, ok := status.FromError(err)
	if !ok {
		return nil
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info
		}
	}
	return nil
}
