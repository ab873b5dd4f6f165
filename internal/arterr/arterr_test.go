package arterr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := New(InvalidArgument, "pin count must be at least 1, got %d", 0)

	if !strings.Contains(err.Error(), "invalid_argument") {
		t.Errorf("message missing kind: %q", err.Error())
	}
	if !strings.Contains(err.Error(), "got 0") {
		t.Errorf("message missing formatted detail: %q", err.Error())
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("image: unknown format")
	err := Wrap(DecodeError, cause, "decode image")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("message missing cause: %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, 0},
		{"untagged", errors.New("plain"), 0},
		{"direct", New(GeometryError, "degenerate crop"), GeometryError},
		{"nested", fmt.Errorf("outer: %w", New(PreconditionError, "no grid")), PreconditionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(DecodeError, "bad bytes")

	if !Is(err, DecodeError) {
		t.Error("Is should match the tagged kind")
	}
	if Is(err, InvalidArgument) {
		t.Error("Is should not match a different kind")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{InvalidArgument, "invalid_argument"},
		{DecodeError, "decode_error"},
		{GeometryError, "geometry_error"},
		{PreconditionError, "precondition_error"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String(): got %s, want %s", tt.kind, got, tt.want)
		}
	}
}
