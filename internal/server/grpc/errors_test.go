package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/carder/internal/errs"
)

func TestToStatus_Kinds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{errs.New(errs.KindAuthentication, "NotAuthenticated", "x"), codes.Unauthenticated},
		{errs.New(errs.KindAuthorisation, "Forbidden", "x"), codes.PermissionDenied},
		{errs.Validationf("bad"), codes.InvalidArgument},
		{errs.New(errs.KindCart, "InconsistentCurrency", "x"), codes.InvalidArgument},
		{errs.New(errs.KindConflict, "DuplicateEmail", "x"), codes.AlreadyExists},
		{errs.New(errs.KindLicensing, "LicenseAlreadyConsumed", "x"), codes.FailedPrecondition},
		{fmt.Errorf("license L1: %w", errs.ErrNotFound), codes.NotFound},
		{errs.New(errs.KindRateLimited, "TooManyAttempts", "x"), codes.ResourceExhausted},
		{errs.New(errs.KindPipeline, "FailedToFulfillOrder", "x"), codes.Internal},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
	}
	for _, c := range cases {
		if got := status.Code(toStatus(c.err)); got != c.code {
			t.Fatalf("%v: got %v want %v", c.err, got, c.code)
		}
	}
	if toStatus(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestToStatus_DetailsAndNoLeak(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: connection reset by peer")
	err := errs.Wrap(errs.KindPipeline, "FailedToFulfillOrder", "contact support", cause).With("purchaseOrderId", "PO1")
	st := toStatus(err)

	info := ErrorInfo(st)
	if info == nil {
		t.Fatalf("no ErrorInfo on %v", st)
	}
	if info.GetReason() != "FailedToFulfillOrder" || info.GetMetadata()["purchaseOrderId"] != "PO1" ||
		info.GetMetadata()["kind"] != string(errs.KindPipeline) {
		t.Fatalf("info: %+v", info)
	}
	if msg := status.Convert(st).Message(); msg != "contact support" {
		t.Fatalf("message leaks cause: %q", msg)
	}

	raw := toStatus(errors.New("select failed: password=hunter2"))
	if s := status.Convert(raw); s.Code() != codes.Internal || s.Message() != "internal" {
		t.Fatalf("unexpected: %v", s)
	}
	if ErrorInfo(raw) != nil {
		t.Fatalf("internal errors carry no info")
	}
}

func TestToStatus_PassesStatusThrough(t *testing.T) {
	t.Parallel()

	in := status.Error(codes.Unauthenticated, "no session")
	if out := toStatus(in); out != in {
		t.Fatalf("status rewritten: %v", out)
	}
}
