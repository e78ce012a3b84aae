// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

// Parser turns tokens from the front of a Queue into a value of type T.
//
// On success Parse removes exactly the tokens it consumed. On failure it
// removes none, so whatever runs next sees the queue as it was. ctx is the
// invocation context; parsers may read it but never modify it.
type Parser[C, T any] interface {
	Parse(ctx C, q *Queue) Result[T]
}

// ContextFreer is implemented by parsers that can state whether their result
// depends only on the tokens they read.
type ContextFreer interface {
	ContextFree() bool
}

// Suggester is implemented by parsers that can complete a partial token.
// Suggestions never fail; having nothing to offer is an empty slice.
type Suggester[C any] interface {
	Suggestions(ctx C, input string) []string
}

// IsContextFree reports whether p declares itself context free. Parsers that
// do not implement ContextFreer are assumed to depend on the context.
func IsContextFree(p any) bool {
	cf, ok := p.(ContextFreer)
	return ok && cf.ContextFree()
}

// Suggest returns p's suggestions for input, or nil if p offers none.
func Suggest[C any](p any, ctx C, input string) []string {
	s, ok := p.(Suggester[C])
	if !ok {
		return nil
	}
	return s.Suggestions(ctx, input)
}

// Func adapts an ordinary function to the Parser interface. Func parsers are
// context dependent and offer no suggestions.
type Func[C, T any] func(ctx C, q *Queue) Result[T]

func (f Func[C, T]) Parse(ctx C, q *Queue) Result[T] {
	return f(ctx, q)
}

// Map returns a parser that runs p and converts its value with fn. The
// returned parser keeps p's context freedom and suggestions.
func Map[C, T, U any](p Parser[C, T], fn func(T) U) Parser[C, U] {
	return &mapped[C, T, U]{inner: p, fn: fn}
}

type mapped[C, T, U any] struct {
	inner Parser[C, T]
	fn    func(T) U
}

func (m *mapped[C, T, U]) Parse(ctx C, q *Queue) Result[U] {
	return Then(m.inner.Parse(ctx, q), m.fn)
}

func (m *mapped[C, T, U]) ContextFree() bool {
	return IsContextFree(m.inner)
}

func (m *mapped[C, T, U]) Suggestions(ctx C, input string) []string {
	return Suggest(m.inner, ctx, input)
}

// wrapper is implemented by parsers that delegate to a single inner parser.
type wrapper interface {
	unwrap() any
}

func (m *mapped[C, T, U]) unwrap() any { return m.inner }

// Erase returns a parser producing T values boxed as any. It is used where
// parsers of unrelated types have to be stored side by side.
func Erase[C, T any](p Parser[C, T]) Parser[C, any] {
	return Map(p, func(v T) any { return v })
}
