package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrapKeepsSentinelIdentity(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrStorageUnavailable, cause)

	if !stderrors.Is(err, ErrStorageUnavailable) {
		t.Error("wrapped error should match its sentinel")
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if stderrors.Is(err, ErrInternalServer) {
		t.Error("wrapped error should not match a different sentinel")
	}
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(ErrInvalidInput, "name is required")
	if err.Error() != "name is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("unexpected code %q", err.Code)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrLotteryNotFound) {
		t.Error("lottery not found should be a lookup miss")
	}
	if !IsNotFound(fmt.Errorf("ctx: %w", ErrSaleNotFound)) {
		t.Error("wrapped sale not found should be a lookup miss")
	}
	if IsNotFound(ErrInvalidPrice) {
		t.Error("invalid price is not a lookup miss")
	}
	if IsNotFound(fmt.Errorf("plain")) {
		t.Error("plain errors are not lookup misses")
	}
}
