package clienterr

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestServiceErrorUnwrap(t *testing.T) {
	cause := status.Error(codes.Unavailable, "connection refused")
	err := Wrap("delivery", "GetCourier", cause)

	if !errors.Is(err, cause) {
		t.Error("ServiceError does not unwrap to its cause")
	}

	var svcErr *ServiceError
	if !errors.As(error(err), &svcErr) {
		t.Fatal("errors.As failed")
	}
	if svcErr.Service != "delivery" || svcErr.Op != "GetCourier" {
		t.Errorf("ServiceError = %+v", svcErr)
	}
}

func TestServiceErrorMessage(t *testing.T) {
	err := Wrap("oms", "CancelOrder", errors.New("boom"))
	want := "oms: CancelOrder failed: boom"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrNotFoundWrapping(t *testing.T) {
	err := fmt.Errorf("courier c-1: %w", ErrNotFound)
	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped ErrNotFound not matched by errors.Is")
	}
}

func TestIsNotFoundStatus(t *testing.T) {
	if !IsNotFoundStatus(status.Error(codes.NotFound, "gone")) {
		t.Error("NotFound status not recognized")
	}
	if IsNotFoundStatus(status.Error(codes.Unavailable, "down")) {
		t.Error("Unavailable mistaken for NotFound")
	}
	if IsNotFoundStatus(errors.New("plain error")) {
		t.Error("plain error mistaken for NotFound")
	}
}
