// Package remote adapts the ledger and auth gRPC services and the HTTP
// storage API to domain types. Every call is bounded by a timeout;
// idempotent reads are retried once on transport failure, writes never.
package remote

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/and161185/ijazah-ledger/internal/errs"
)

const (
	DefaultTimeout    = 15 * time.Second
	DefaultRetryDelay = 250 * time.Millisecond
)

// Options tunes remote calls.
type Options struct {
	Timeout    time.Duration
	RetryDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = DefaultRetryDelay
	}
	return o
}

// once runs fn a single time under the call timeout.
func (o Options) once(ctx context.Context, fn func(context.Context) error) error {
	cctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()
	return fn(cctx)
}

// read runs fn and repeats it once after a transient failure.
func (o Options) read(ctx context.Context, fn func(context.Context) error) error {
	b := retry.WithMaxRetries(1, retry.NewConstant(o.RetryDelay))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := o.once(ctx, fn)
		if err != nil && transient(err) && ctx.Err() == nil {
			return retry.RetryableError(err)
		}
		return err
	})
}

func transient(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}
	return errors.Is(err, errs.ErrStorageUnavailable) || errors.Is(err, context.DeadlineExceeded)
}

// rpcError keeps the gRPC status while matching a domain sentinel.
type rpcError struct {
	kind error
	st   *status.Status
}

func (e *rpcError) Error() string              { return e.kind.Error() + ": " + e.st.Message() }
func (e *rpcError) Unwrap() error              { return e.kind }
func (e *rpcError) GRPCStatus() *status.Status { return e.st }

// fromStatus maps server status codes back to sentinels. Unauthenticated
// means different things per service, so the caller picks its sentinel.
func fromStatus(err, unauthenticated error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	var kind error
	switch st.Code() {
	case codes.NotFound:
		kind = errs.ErrNotFound
	case codes.PermissionDenied:
		kind = errs.ErrUnauthorized
	case codes.Unauthenticated:
		kind = unauthenticated
	case codes.FailedPrecondition:
		kind = errs.ErrAlreadyRevoked
	case codes.InvalidArgument:
		kind = errs.ErrInvalidArgument
	case codes.ResourceExhausted:
		kind = errs.ErrRateLimited
	default:
		return err
	}
	return &rpcError{kind: kind, st: st}
}
