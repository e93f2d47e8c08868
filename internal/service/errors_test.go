package service

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "message", Message: "cannot be empty"}

	if !strings.Contains(err.Error(), "message") || !strings.Contains(err.Error(), "cannot be empty") {
		t.Errorf("ValidationError.Error() = %q, want field and message included", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("base failure")
	wrapped := WrapError(base, "loading profile")

	if !errors.Is(wrapped, base) {
		t.Error("WrapError() result should unwrap to the base error")
	}
	if !strings.Contains(wrapped.Error(), "loading profile") {
		t.Errorf("WrapError() = %q, want added context included", wrapped.Error())
	}
}
