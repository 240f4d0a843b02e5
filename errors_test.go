package flatpix

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestNormalFormString tests the string representation of each form.
func TestNormalFormString(t *testing.T) {
	tests := []struct {
		form NormalForm
		want string
	}{
		{NormalFormUnaliased, "Unaliased"},
		{NormalFormPixelPacked, "PixelPacked"},
		{NormalFormRowMajorPacked, "RowMajorPacked"},
		{NormalForm(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.form.String(); got != tt.want {
			t.Errorf("NormalForm(%d).String() = %q, want %q", tt.form, got, tt.want)
		}
	}
}

// TestNormalFormImplies tests the ascending chain of strictness.
func TestNormalFormImplies(t *testing.T) {
	forms := []NormalForm{NormalFormUnaliased, NormalFormPixelPacked, NormalFormRowMajorPacked}
	for i, stricter := range forms {
		for j, weaker := range forms {
			want := i >= j
			if got := stricter.Implies(weaker); got != want {
				t.Errorf("%v.Implies(%v) = %v, want %v", stricter, weaker, got, want)
			}
		}
	}
}

// TestNormalFormError tests that the error value is comparable and works
// with errors.Is, including through wrapping.
func TestNormalFormError(t *testing.T) {
	err := error(NormalFormError{Required: NormalFormPixelPacked})

	if !errors.Is(err, NormalFormError{Required: NormalFormPixelPacked}) {
		t.Error("errors.Is should match an equal NormalFormError value")
	}
	if errors.Is(err, NormalFormError{Required: NormalFormUnaliased}) {
		t.Error("errors.Is should not match a different required form")
	}

	wrapped := fmt.Errorf("loading frame: %w", err)
	if !errors.Is(wrapped, NormalFormError{Required: NormalFormPixelPacked}) {
		t.Error("errors.Is should match through wrapping")
	}

	var nfe NormalFormError
	if !errors.As(wrapped, &nfe) || nfe.Required != NormalFormPixelPacked {
		t.Errorf("errors.As extracted %+v, want Required=PixelPacked", nfe)
	}

	if msg := err.Error(); !strings.Contains(msg, "PixelPacked") || !strings.HasPrefix(msg, "flatpix:") {
		t.Errorf("unexpected error message %q", msg)
	}
}

// TestSentinelErrors tests that the sentinels are distinct and prefixed.
func TestSentinelErrors(t *testing.T) {
	if errors.Is(ErrTooLarge, ErrWrongColor) {
		t.Error("ErrTooLarge and ErrWrongColor must be distinct")
	}
	for _, err := range []error{ErrTooLarge, ErrWrongColor} {
		if !strings.HasPrefix(err.Error(), "flatpix:") {
			t.Errorf("error %q is missing the package prefix", err)
		}
	}
	wrapped := fmt.Errorf("decoding: %w", ErrTooLarge)
	if !errors.Is(wrapped, ErrTooLarge) {
		t.Error("errors.Is should match ErrTooLarge through wrapping")
	}
}
