package bindings

import (
	"errors"
	"fmt"
)

// Buffer sizing shared by the cgo and stub implementations. String queries
// start small and double on truncation until the ceiling is reached, after
// which the call is a terminal failure.
const (
	ErrBufLen = 1024

	DefaultStrBufLen = 256
	MaxStrBufLen     = 1 << 20

	PhaseStrBufLen    = 64
	MaxPhaseStrBufLen = 4096
)

var (
	// ErrNotBuilt reports that the native CoolProp bindings were not linked
	// into the current binary. Callers can use this to fall back to safer
	// defaults instead of failing hard.
	ErrNotBuilt = errors.New("coolprop/internal/bindings: native bindings not built")

	// ErrQueryFailed reports that a status-returning native call did not
	// succeed. The native library publishes the reason through its global
	// errstring channel; callers recover it with GlobalParamString.
	ErrQueryFailed = errors.New("coolprop/internal/bindings: native query failed")

	// ErrBufferCeiling reports that a growable output buffer reached its hard
	// ceiling while the native library kept signalling truncation.
	ErrBufferCeiling = errors.New("coolprop/internal/bindings: output exceeds buffer ceiling")
)

// NativeError carries the error code and message pair reported by a
// handle-based native call.
type NativeError struct {
	Code    int64
	Message string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("coolprop error %d: %s", e.Code, e.Message)
}
