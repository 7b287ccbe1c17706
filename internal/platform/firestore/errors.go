package firestore

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorKind int

const (
	kindUnknown errorKind = iota
	kindNotFound
	kindConflict
	kindUnavailable
)

// Error categorises Firestore failures the way the repositories layer
// inspects them: missing record, conflicting write, or transient outage.
type Error struct {
	op   string
	err  error
	kind errorKind
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.op != "" {
		return e.op + ": " + e.err.Error()
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// IsNotFound reports a missing document.
func (e *Error) IsNotFound() bool { return e != nil && e.kind == kindNotFound }

// IsConflict reports a write that lost to a concurrent or duplicate one.
func (e *Error) IsConflict() bool { return e != nil && e.kind == kindConflict }

// IsUnavailable reports a transient backend failure worth retrying.
func (e *Error) IsUnavailable() bool { return e != nil && e.kind == kindUnavailable }

// NotFound builds a missing-record error for failures detected outside
// the gRPC status path, such as empty query results.
func NotFound(op, msg string) *Error {
	return &Error{op: op, err: errors.New(msg), kind: kindNotFound}
}

// Conflict builds a uniqueness-violation error raised by application
// logic.
func Conflict(op, msg string) *Error {
	return &Error{op: op, err: errors.New(msg), kind: kindConflict}
}

// WrapError attaches repository semantics to a raw Firestore error.
// Context cancellation passes through untouched so callers can match on
// the stdlib sentinels.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	code := status.Code(err)
	switch code {
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	}

	var typed *Error
	if errors.As(err, &typed) {
		if op != "" && typed.op == "" {
			typed.op = op
		}
		return typed
	}
	return &Error{op: op, err: err, kind: kindFromCode(code)}
}

func kindFromCode(code codes.Code) errorKind {
	switch code {
	case codes.NotFound:
		return kindNotFound
	case codes.AlreadyExists, codes.FailedPrecondition, codes.Aborted, codes.OutOfRange:
		return kindConflict
	case codes.Unavailable, codes.ResourceExhausted, codes.Internal, codes.DeadlineExceeded:
		return kindUnavailable
	default:
		return kindUnknown
	}
}
