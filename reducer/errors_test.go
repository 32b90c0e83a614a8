package reducer

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewInvalidArgument_setsCodeAndMessage(t *testing.T) {
	err := NewInvalidArgument("bad input")
	if err.Code != StatusInvalidArgument {
		t.Errorf("expected StatusInvalidArgument, got %v", err.Code)
	}
	if err.Message != "bad input" {
		t.Errorf("expected 'bad input', got %q", err.Message)
	}
}

func TestNewFailedPrecondition_setsCodeAndMessage(t *testing.T) {
	err := NewFailedPrecondition("not ready")
	if err.Code != StatusFailedPrecondition {
		t.Errorf("expected StatusFailedPrecondition, got %v", err.Code)
	}
	if err.Message != "not ready" {
		t.Errorf("expected 'not ready', got %q", err.Message)
	}
}

func TestNewFailedPreconditionf_formatsMessage(t *testing.T) {
	err := NewFailedPreconditionf("item %d not found", 7)
	if err.Message != "item 7 not found" {
		t.Errorf("expected 'item 7 not found', got %q", err.Message)
	}
}

func TestCodeOf_findsWrappedActionError(t *testing.T) {
	wrapped := fmt.Errorf("validate ADD_ITEM: %w", NewInvalidArgument("name required"))

	code, ok := CodeOf(wrapped)
	if !ok {
		t.Fatal("expected an ActionError in the chain")
	}
	if code != StatusInvalidArgument {
		t.Errorf("expected StatusInvalidArgument, got %v", code)
	}
}

func TestCodeOf_otherErrors(t *testing.T) {
	for _, err := range []error{nil, errors.New("plain"), context.Canceled} {
		if _, ok := CodeOf(err); ok {
			t.Errorf("CodeOf(%v) reported a code", err)
		}
	}
}

func TestStatusCode_String_returnsLabel(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{StatusInvalidArgument, "INVALID_ARGUMENT"},
		{StatusFailedPrecondition, "FAILED_PRECONDITION"},
		{StatusCode(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("StatusCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestRequireHelpers(t *testing.T) {
	tests := []struct {
		name    string
		check   *ActionError
		wantErr bool
	}{
		{"not empty ok", RequireNotEmpty("x", "empty"), false},
		{"not empty fails", RequireNotEmpty("", "empty"), true},
		{"positive ok", RequirePositive(1, "neg"), false},
		{"positive zero fails", RequirePositive(0, "neg"), true},
		{"non-negative zero ok", RequireNonNegative(0, "neg"), false},
		{"non-negative fails", RequireNonNegative(-1, "neg"), true},
		{"range ok", RequireRange(1, 1, "range"), false},
		{"range inverted fails", RequireRange(2, 1, "range"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.check != nil) != tt.wantErr {
				t.Errorf("wantErr=%v, got %v", tt.wantErr, tt.check)
			}
		})
	}
}

func TestFirstError_returnsFirstFailure(t *testing.T) {
	err := FirstError(
		RequirePositive(1, "first"),
		RequirePositive(0, "second"),
		RequireNotEmpty("", "third"),
	)
	if err == nil {
		t.Fatal("expected error")
	}
	var actionErr *ActionError
	if !errors.As(err, &actionErr) {
		t.Fatalf("expected *ActionError, got %T", err)
	}
	if actionErr.Message != "second" {
		t.Errorf("expected 'second', got %q", actionErr.Message)
	}
}

func TestFirstError_allPassReturnsUntypedNil(t *testing.T) {
	if err := FirstError(RequirePositive(1, "x"), nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
