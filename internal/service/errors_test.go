package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_IsMatchesKindAndMessage(t *testing.T) {
	wrapped := fmt.Errorf("issue: %w", deliveryFailed(errors.New("timeout")))

	if !errors.Is(wrapped, ErrDeliveryFailed) {
		t.Fatalf("expected wrapped delivery error to match ErrDeliveryFailed")
	}
	if errors.Is(wrapped, ErrInvalidCode) {
		t.Fatalf("delivery error must not match ErrInvalidCode")
	}

	var se *Error
	if !errors.As(wrapped, &se) || se.Kind != KindDelivery {
		t.Fatalf("expected *Error with KindDelivery, got %v", wrapped)
	}
	if se.Message != "failed to send verification email" {
		t.Fatalf("unexpected message %q", se.Message)
	}
}
