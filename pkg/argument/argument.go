// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argument binds a parser to a name, a required flag and an
// optional default.
//
// Arguments are produced by builders and cannot be changed afterwards, so a
// single Argument may serve any number of concurrent invocations.
package argument

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/yeetrun/cmdarg/pkg/argparse"
)

// SuggestionProvider completes a partial token. When attached to an
// argument it replaces the parser's own suggestions.
type SuggestionProvider[C any] func(ctx C, input string) []string

// Definition is the type-erased view of an Argument. A command holds its
// arguments as Definitions so that they may produce unrelated types.
type Definition[C any] interface {
	Name() string
	Required() bool
	// Default returns the textual default, if one is set.
	Default() (string, bool)
	ValueType() reflect.Type
	ContextFree() bool
	ParseValue(ctx C, q *argparse.Queue) argparse.Result[any]
	// ParseDefault parses the textual default with the argument's parser.
	ParseDefault(ctx C) (any, error)
	Suggestions(ctx C, input string) []string
}

// Argument is a named, built argument producing T.
type Argument[C, T any] struct {
	name       string
	required   bool
	def        string
	hasDef     bool
	parser     argparse.Parser[C, T]
	valueType  reflect.Type
	suggestion SuggestionProvider[C]
}

var _ Definition[struct{}] = (*Argument[struct{}, int])(nil)

func (a *Argument[C, T]) Name() string                   { return a.name }
func (a *Argument[C, T]) Required() bool                 { return a.required }
func (a *Argument[C, T]) Default() (string, bool)        { return a.def, a.hasDef }
func (a *Argument[C, T]) ValueType() reflect.Type        { return a.valueType }
func (a *Argument[C, T]) Parser() argparse.Parser[C, T] { return a.parser }

// HasSuggestionProvider reports whether the parser's suggestions are
// overridden.
func (a *Argument[C, T]) HasSuggestionProvider() bool { return a.suggestion != nil }

// Parse runs the argument's parser.
func (a *Argument[C, T]) Parse(ctx C, q *argparse.Queue) argparse.Result[T] {
	return a.parser.Parse(ctx, q)
}

func (a *Argument[C, T]) ParseValue(ctx C, q *argparse.Queue) argparse.Result[any] {
	return argparse.Then(a.parser.Parse(ctx, q), func(v T) any { return v })
}

// DefaultValue parses the default. The default must be consumed in full.
func (a *Argument[C, T]) DefaultValue(ctx C) (T, error) {
	var zero T
	if !a.hasDef {
		return zero, fmt.Errorf("argument %q has no default", a.name)
	}
	q := argparse.NewQueue(strings.Fields(a.def)...)
	v, err := a.parser.Parse(ctx, q).Get()
	if err != nil {
		return zero, fmt.Errorf("default %q: %w", a.def, err)
	}
	if !q.Empty() {
		return zero, fmt.Errorf("default %q: unparsed %q", a.def, strings.Join(q.Remaining(), " "))
	}
	return v, nil
}

func (a *Argument[C, T]) ParseDefault(ctx C) (any, error) {
	v, err := a.DefaultValue(ctx)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (a *Argument[C, T]) ContextFree() bool {
	return argparse.IsContextFree(a.parser)
}

// Suggestions returns the provider's suggestions when one is attached and
// the parser's otherwise.
func (a *Argument[C, T]) Suggestions(ctx C, input string) []string {
	if a.suggestion != nil {
		return a.suggestion(ctx, input)
	}
	return argparse.Suggest(a.parser, ctx, input)
}

func (a *Argument[C, T]) String() string {
	if a.required {
		return "<" + a.name + ">"
	}
	if a.hasDef {
		return "[" + a.name + "=" + a.def + "]"
	}
	return "[" + a.name + "]"
}
