// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

// Result is the outcome of a single parser invocation. It is either a success
// carrying exactly one value or a failure carrying a non-nil cause.
//
// The zero Result is a success holding the zero value of T.
type Result[T any] struct {
	value T
	cause error
}

// Success returns a successful Result holding v.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed Result with the given cause. It panics if cause is
// nil, since a failure without a cause cannot be told apart from a success.
func Failure[T any](cause error) Result[T] {
	if cause == nil {
		panic("argparse: Failure called with nil cause")
	}
	return Result[T]{cause: cause}
}

// Ok reports whether r is a success.
func (r Result[T]) Ok() bool {
	return r.cause == nil
}

// Value returns the parsed value and true on success, or the zero value and
// false on failure.
func (r Result[T]) Value() (T, bool) {
	if r.cause != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Cause returns the failure cause, or nil on success.
func (r Result[T]) Cause() error {
	return r.cause
}

// Get returns the value and cause as a conventional Go pair.
func (r Result[T]) Get() (T, error) {
	if r.cause != nil {
		var zero T
		return zero, r.cause
	}
	return r.value, nil
}

// Then converts a successful Result[T] into a Result[U] using fn. A failure
// passes its cause through unchanged.
func Then[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.cause != nil {
		return Result[U]{cause: r.cause}
	}
	return Success(fn(r.value))
}
