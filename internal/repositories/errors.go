package repositories

import "fmt"

// Error is the in-process implementation of RepositoryError used by the
// memory-backed registry and tests. The Firestore registry derives its
// categorisation from gRPC status codes instead.
type Error struct {
	op          string
	msg         string
	notFound    bool
	conflict    bool
	unavailable bool
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.op != "" {
		return fmt.Sprintf("%s: %s", e.op, e.msg)
	}
	return e.msg
}

// IsNotFound reports whether the error represents a missing record.
func (e *Error) IsNotFound() bool { return e != nil && e.notFound }

// IsConflict reports whether the error represents a uniqueness violation.
func (e *Error) IsConflict() bool { return e != nil && e.conflict }

// IsUnavailable reports whether the error represents a transient outage.
func (e *Error) IsUnavailable() bool { return e != nil && e.unavailable }

// NewNotFound builds a missing-record error for the given operation.
func NewNotFound(op, msg string) *Error {
	return &Error{op: op, msg: msg, notFound: true}
}

// NewConflict builds a uniqueness-violation error for the given operation.
func NewConflict(op, msg string) *Error {
	return &Error{op: op, msg: msg, conflict: true}
}

// NewUnavailable builds a transient-failure error for the given operation.
func NewUnavailable(op, msg string) *Error {
	return &Error{op: op, msg: msg, unavailable: true}
}
