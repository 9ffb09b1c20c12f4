//go:build !debug

// Package debug gates assertions and verbose diagnostics behind the debug
// build tag.
package debug

const Debug = false

// Assert does nothing if debug flag is not provided
// if debug flag is provided, panics if condition is false.
func Assert(condition bool, message ...string) {}
