// Package coolprop exposes a memory-safe Go API for the CoolProp
// thermophysical property library. All numerical work (equations of state,
// phase equilibrium, transport correlations, psychrometrics) is performed by
// the native library; this package marshals inputs and outputs, manages the
// lifecycle of native state handles, and translates native error codes into
// Go errors.
//
// The package compiles without the native library: builds without cgo, and
// Windows builds, return ErrNotBuilt from every operation so downstream
// projects can adopt the API before wiring the native dependency.
//
// Package-level functions such as PropsSI are safe for concurrent use once
// the first call has completed (the first call may trigger fluid database
// loading inside the native library). A State is movable between goroutines
// but must not be used concurrently, and global configuration mutation must
// not interleave with concurrent queries; callers synchronize externally.
package coolprop
