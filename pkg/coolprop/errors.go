package coolprop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fluidkit/coolprop-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native CoolProp library was not linked
	// into the current binary (cgo disabled or Windows build).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrClosed reports use of a State after Close released its handle.
	ErrClosed = errors.New("coolprop: state is closed")

	// ErrInvalidInput reports caller input rejected before reaching the
	// native library, such as strings with interior NUL bytes or mismatched
	// array lengths.
	ErrInvalidInput = errors.New("coolprop: invalid input")
)

// Error is a failure reported by the native library. Handle-based calls carry
// an error code and message pair; the high-level entry points signal failure
// through a non-finite result or a status flag, in which case Code is zero
// and Message holds the text recovered from the global error channel.
type Error struct {
	// Op names the operation that failed, e.g. "PropsSI" or "State.Update".
	Op string
	// Code is the native error code, or zero when the failure was reported
	// through the global error string.
	Code int64
	// Message is the human-readable text reported by the native library.
	Message string
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("coolprop: %s: error %d: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("coolprop: %s: %s", e.Op, e.Message)
}

// wrapNative converts a bindings-layer error into the public error surface.
// NativeError keeps its code and message; sentinel errors pass through so
// errors.Is keeps working for callers.
func wrapNative(op string, err error) error {
	if err == nil {
		return nil
	}
	var native *bindings.NativeError
	if errors.As(err, &native) {
		return &Error{Op: op, Code: native.Code, Message: native.Message}
	}
	if errors.Is(err, bindings.ErrNotBuilt) {
		return ErrNotBuilt
	}
	return fmt.Errorf("coolprop: %s: %w", op, err)
}

// globalError builds an *Error from the native library's global error string,
// used by entry points that have no per-call error channel.
func globalError(op string) error {
	message, err := bindings.GlobalParamString("errstring")
	if err != nil || message == "" {
		message = "unknown error"
	}
	return &Error{Op: op, Message: message}
}

// checkNoNUL rejects strings that cannot round-trip through a C string.
func checkNoNUL(label, s string) error {
	if strings.ContainsRune(s, 0) {
		return fmt.Errorf("%w: %s contains an interior NUL byte", ErrInvalidInput, label)
	}
	return nil
}
