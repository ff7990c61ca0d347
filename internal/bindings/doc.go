// Package bindings provides the cgo bridge to the CoolProp shared library.
// This package is the only place in the module that imports "C"; all cgo
// complexity (string marshalling, output-buffer growth, error-code
// translation) is isolated here and consumed by pkg/coolprop.
//
// Builds without cgo, and Windows builds, compile the stub implementation
// which returns ErrNotBuilt from every entry point.
package bindings
