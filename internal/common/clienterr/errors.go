// Package clienterr defines the error taxonomy of the service-client layer.
//
// Callers branch on exactly two kinds: ErrNotFound (the target of a mutation
// is already gone, an expected outcome) and *ServiceError (any transport or
// protocol failure, an alertable outcome). Single-entity lookups do not use
// errors for "not found" at all; they return an explicit absent value.
// Callers never need to match the transport library's own error types.
package clienterr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound indicates that the target of a mutating call does not exist
// on the remote service. Match with errors.Is.
var ErrNotFound = errors.New("not found")

// ServiceError wraps any transport-level failure of a remote call. It keeps
// the original cause for logging but shields callers from the transport
// library's error types.
type ServiceError struct {
	Service string // "delivery" or "oms"
	Op      string // remote operation, e.g. "GetCourier"
	Err     error  // original cause
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Wrap builds a ServiceError around a transport failure.
func Wrap(service, op string, err error) *ServiceError {
	return &ServiceError{Service: service, Op: op, Err: err}
}

// IsNotFoundStatus reports whether err is a gRPC NOT_FOUND status. It is
// how the clients split the expected "no such entity" outcome from genuine
// transport failure.
func IsNotFoundStatus(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.NotFound
}
