// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argument

import (
	"reflect"

	"github.com/yeetrun/cmdarg/pkg/argparse"
)

// settings holds what every builder accumulates. B is the concrete builder
// so that the promoted setters chain.
type settings[C, B any] struct {
	self       B
	name       string
	required   bool
	def        string
	hasDef     bool
	suggestion SuggestionProvider[C]
}

func newSettings[C, B any](self B, name string) settings[C, B] {
	return settings[C, B]{self: self, name: name, required: true}
}

// AsRequired marks the argument required and drops any default.
func (s *settings[C, B]) AsRequired() B {
	s.required = true
	s.def, s.hasDef = "", false
	return s.self
}

// AsOptional marks the argument optional without a default.
func (s *settings[C, B]) AsOptional() B {
	s.required = false
	s.def, s.hasDef = "", false
	return s.self
}

// AsOptionalWithDefault marks the argument optional. A non-empty def
// becomes its default, written the way a user would type it.
func (s *settings[C, B]) AsOptionalWithDefault(def string) B {
	s.required = false
	s.def, s.hasDef = def, def != ""
	return s.self
}

// WithSuggestions overrides the parser's suggestions. A nil provider
// restores them.
func (s *settings[C, B]) WithSuggestions(fn SuggestionProvider[C]) B {
	s.suggestion = fn
	return s.self
}

func build[C, T, B any](s *settings[C, B], parser argparse.Parser[C, T], typ reflect.Type) *Argument[C, T] {
	if s.name == "" {
		panic("argument: Build called without a name")
	}
	if parser == nil {
		panic("argument: Build called without a parser for " + s.name)
	}
	return &Argument[C, T]{
		name:       s.name,
		required:   s.required,
		def:        s.def,
		hasDef:     s.hasDef,
		parser:     parser,
		valueType:  typ,
		suggestion: s.suggestion,
	}
}

// Builder accumulates the settings of an Argument. Arguments are required
// until marked otherwise.
type Builder[C, T any] struct {
	settings[C, *Builder[C, T]]
	parser    argparse.Parser[C, T]
	valueType reflect.Type
}

// New returns a builder for an argument parsed by parser.
func New[C, T any](name string, parser argparse.Parser[C, T]) *Builder[C, T] {
	b := &Builder[C, T]{parser: parser, valueType: reflect.TypeFor[T]()}
	b.settings = newSettings[C](b, name)
	return b
}

// OfType returns a builder for a type-erased parser whose values have
// dynamic type typ.
func OfType[C any](name string, typ reflect.Type, parser argparse.Parser[C, any]) *Builder[C, any] {
	b := New(name, parser)
	b.valueType = typ
	return b
}

// Build returns the frozen Argument. Later changes to b do not affect it.
// Build panics if the name is empty or the parser is nil.
func (b *Builder[C, T]) Build() *Argument[C, T] {
	return build(&b.settings, b.parser, b.valueType)
}
