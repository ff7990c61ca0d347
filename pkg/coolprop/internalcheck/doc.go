// Package internalcheck contains repository policy tests. They inspect the
// module's own source with go/packages and fail when a package breaks an
// architectural rule, such as using cgo outside the bindings layer.
package internalcheck
