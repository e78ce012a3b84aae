// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"fmt"
	"strings"
)

// NumberErrorKind distinguishes the two ways numeric input can be rejected.
type NumberErrorKind int

const (
	// NotANumber means the token is not valid text for the numeric type.
	NotANumber NumberErrorKind = iota
	// OutOfRange means the token parsed but lies outside [min, max].
	OutOfRange
)

func (k NumberErrorKind) String() string {
	switch k {
	case NotANumber:
		return "not a number"
	case OutOfRange:
		return "out of range"
	default:
		return fmt.Sprintf("NumberErrorKind(%d)", int(k))
	}
}

// NumberParseError is returned by numeric parsers. Min and Max are nil unless
// the corresponding bound is active, so that the type's sentinel limits are
// never shown to a user as if they were configured.
type NumberParseError struct {
	Kind  NumberErrorKind
	Input string
	Type  string // numeric type name, e.g. "int64"
	Min   any
	Max   any
}

// HasMin reports whether a lower bound was configured.
func (e *NumberParseError) HasMin() bool { return e.Min != nil }

// HasMax reports whether an upper bound was configured.
func (e *NumberParseError) HasMax() bool { return e.Max != nil }

func (e *NumberParseError) Error() string {
	var b strings.Builder
	if e.Kind == NotANumber {
		fmt.Fprintf(&b, "%q is not a valid %s", e.Input, e.Type)
	} else {
		fmt.Fprintf(&b, "%s is out of range", e.Input)
	}
	switch {
	case e.HasMin() && e.HasMax():
		fmt.Fprintf(&b, " (must be between %v and %v)", e.Min, e.Max)
	case e.HasMin():
		fmt.Fprintf(&b, " (must be at least %v)", e.Min)
	case e.HasMax():
		fmt.Fprintf(&b, " (must be at most %v)", e.Max)
	}
	return b.String()
}

// MissingInputError is returned when the queue was empty but a value was
// required.
type MissingInputError struct{}

func (MissingInputError) Error() string {
	return "no input was provided"
}

// CompositionError reports the failure of the sub-parser at Index inside a
// compound parser. Err may itself be a CompositionError.
type CompositionError struct {
	Index int
	Name  string
	Err   error
}

func (e *CompositionError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("component %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("component %d: %v", e.Index, e.Err)
}

func (e *CompositionError) Unwrap() error {
	return e.Err
}

// Path returns the chain of component indexes from the outermost compound to
// the innermost failing one.
func (e *CompositionError) Path() []int {
	path := []int{e.Index}
	inner := e.Err
	for {
		ce, ok := inner.(*CompositionError)
		if !ok {
			return path
		}
		path = append(path, ce.Index)
		inner = ce.Err
	}
}

// ValueError is returned by non-numeric typed parsers when a token cannot be
// converted to the target type.
type ValueError struct {
	Type  string
	Input string
	Err   error
}

func (e *ValueError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%q is not a valid %s: %v", e.Input, e.Type, e.Err)
	}
	return fmt.Sprintf("%q is not a valid %s", e.Input, e.Type)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// ChoiceError is returned when a token is not one of a fixed set of choices.
type ChoiceError struct {
	Input   string
	Choices []string
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("%q is not one of [%s]", e.Input, strings.Join(e.Choices, ", "))
}
