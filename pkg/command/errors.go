// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yeetrun/cmdarg/pkg/argparse"
)

var (
	// ErrDuplicate is wrapped when a command or argument name is taken.
	ErrDuplicate = errors.New("duplicate name")
	// ErrInvalidCommand is wrapped by Build errors.
	ErrInvalidCommand = errors.New("invalid command")
)

// MissingArgumentError is returned when a required argument has no input.
type MissingArgumentError struct {
	Command  string
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: missing required argument %q", e.Command, e.Argument)
}

// ArgumentError is returned when an argument's parser rejects its input.
type ArgumentError struct {
	Command  string
	Argument string
	Input    string // first unparsed token, or the default text
	Default  bool   // the failure came from parsing the default
	Err      error
}

func (e *ArgumentError) Error() string {
	if e.Default {
		return fmt.Sprintf("%s: default of argument %q: %v", e.Command, e.Argument, e.Err)
	}
	return fmt.Sprintf("%s: argument %q: %v", e.Command, e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// TooManyArgumentsError is returned when tokens remain after every argument
// has been parsed.
type TooManyArgumentsError struct {
	Command string
	Extra   []string
}

func (e *TooManyArgumentsError) Error() string {
	return fmt.Sprintf("%s: too many arguments: %q", e.Command, strings.Join(e.Extra, " "))
}

// UnknownCommandError is returned by a Manager for an unregistered name.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	if e.Name == "" {
		return "no command given"
	}
	return fmt.Sprintf("unknown command %q", e.Name)
}

// Describe renders err for a user. Argument failures name the argument and
// the path of compound components that failed, e.g.
//
//	invalid value for pos.y: "a" is not a valid float64
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var (
		missing *MissingArgumentError
		arg     *ArgumentError
		extra   *TooManyArgumentsError
		unknown *UnknownCommandError
	)
	switch {
	case errors.As(err, &missing):
		return fmt.Sprintf("missing required argument <%s>", missing.Argument)
	case errors.As(err, &extra):
		return fmt.Sprintf("unexpected input %q", strings.Join(extra.Extra, " "))
	case errors.As(err, &unknown):
		return unknown.Error()
	case errors.As(err, &arg):
	default:
		return err.Error()
	}

	path := []string{arg.Argument}
	leaf := arg.Err
	for {
		var cerr *argparse.CompositionError
		if !errors.As(leaf, &cerr) {
			break
		}
		if cerr.Name != "" {
			path = append(path, cerr.Name)
		} else {
			path = append(path, strconv.Itoa(cerr.Index))
		}
		leaf = cerr.Err
	}
	target := strings.Join(path, ".")
	if arg.Default {
		target = "default of " + target
	}
	if errors.As(leaf, new(argparse.MissingInputError)) {
		return fmt.Sprintf("missing value for %s", target)
	}
	return fmt.Sprintf("invalid value for %s: %v", target, parseFailure(leaf))
}

// parseFailure digs the parser's own error out of any wrapping.
func parseFailure(err error) error {
	var (
		nerr *argparse.NumberParseError
		verr *argparse.ValueError
		cerr *argparse.ChoiceError
	)
	switch {
	case errors.As(err, &nerr):
		return nerr
	case errors.As(err, &verr):
		return verr
	case errors.As(err, &cerr):
		return cerr
	}
	return err
}
