package coolprop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

func TestErrorFormatting(t *testing.T) {
	withCode := &Error{Op: "AbstractState_update", Code: 2, Message: "input is out of range"}
	want := "coolprop: AbstractState_update: error 2: input is out of range"
	if withCode.Error() != want {
		t.Fatalf("Error() = %q, want %q", withCode.Error(), want)
	}

	withoutCode := &Error{Op: "PropsSI", Message: "unable to solve"}
	want = "coolprop: PropsSI: unable to solve"
	if withoutCode.Error() != want {
		t.Fatalf("Error() = %q, want %q", withoutCode.Error(), want)
	}
}

func TestWrapNative(t *testing.T) {
	if wrapNative("op", nil) != nil {
		t.Fatal("nil should pass through")
	}

	native := &bindings.NativeError{Code: 1, Message: "bad handle"}
	err := wrapNative("AbstractState_free", native)
	var cpErr *Error
	if !errors.As(err, &cpErr) {
		t.Fatalf("want *Error, got %T", err)
	}
	if cpErr.Code != 1 || cpErr.Message != "bad handle" || cpErr.Op != "AbstractState_free" {
		t.Fatalf("unexpected fields: %+v", cpErr)
	}

	if got := wrapNative("op", bindings.ErrNotBuilt); !errors.Is(got, ErrNotBuilt) {
		t.Fatalf("ErrNotBuilt should pass through, got %v", got)
	}

	wrapped := wrapNative("op", fmt.Errorf("plumbing: %w", bindings.ErrNotBuilt))
	if !errors.Is(wrapped, ErrNotBuilt) {
		t.Fatalf("wrapped ErrNotBuilt should still match, got %v", wrapped)
	}
}

func TestCheckNoNUL(t *testing.T) {
	if err := checkNoNUL("fluid", "Water"); err != nil {
		t.Fatalf("clean string rejected: %v", err)
	}
	err := checkNoNUL("fluid", "Wat\x00er")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestReferenceStateToken(t *testing.T) {
	cases := map[string]string{
		"def":     "DEF",
		"DEFAULT": "DEF",
		"iir":     "IIR",
		"Ashrae":  "ASHRAE",
		"NBP":     "NBP",
		"reset":   "RESET",
	}
	for in, want := range cases {
		got, err := referenceStateToken(in)
		if err != nil {
			t.Fatalf("referenceStateToken(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("referenceStateToken(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := referenceStateToken("celsius"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown convention should return ErrInvalidInput, got %v", err)
	}
}
