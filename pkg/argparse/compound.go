// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yeetrun/cmdarg/pkg/tuple"
)

// Compound is the arity-independent view of a compound parser.
type Compound interface {
	// Names returns the component names in parse order.
	Names() []string
	// Arity returns the number of components.
	Arity() int
}

// Compound2 fuses two parsers into one. Both run in order against the same
// queue and their values are combined by a mapper into a single O.
type Compound2[C, U, V, O any] struct {
	names  [2]string
	first  Parser[C, U]
	second Parser[C, V]
	mapper func(tuple.Pair[U, V]) O
}

// NewCompound2 returns a compound parser over first and second.
func NewCompound2[C, U, V, O any](names [2]string, first Parser[C, U], second Parser[C, V], mapper func(tuple.Pair[U, V]) O) *Compound2[C, U, V, O] {
	if first == nil || second == nil || mapper == nil {
		panic("argparse: NewCompound2 requires two parsers and a mapper")
	}
	return &Compound2[C, U, V, O]{names: names, first: first, second: second, mapper: mapper}
}

func (c *Compound2[C, U, V, O]) Names() []string { return slices.Clone(c.names[:]) }
func (c *Compound2[C, U, V, O]) Arity() int      { return len(c.names) }

func (c *Compound2[C, U, V, O]) Parse(ctx C, q *Queue) Result[O] {
	var t tuple.Pair[U, V]
	if err := step(ctx, q, 0, c.names[0], c.first, &t.First); err != nil {
		return Failure[O](err)
	}
	if err := step(ctx, q, 1, c.names[1], c.second, &t.Second); err != nil {
		return Failure[O](err)
	}
	return Success(c.mapper(t))
}

func (c *Compound2[C, U, V, O]) ContextFree() bool {
	return IsContextFree(c.first) && IsContextFree(c.second)
}

func (c *Compound2[C, U, V, O]) Suggestions(ctx C, input string) []string {
	return compoundSuggestions(ctx, input, []component[C]{
		componentOf(c.first),
		componentOf(c.second),
	})
}

// Compound3 fuses three parsers into one.
type Compound3[C, U, V, W, O any] struct {
	names  [3]string
	first  Parser[C, U]
	second Parser[C, V]
	third  Parser[C, W]
	mapper func(tuple.Triplet[U, V, W]) O
}

// NewCompound3 returns a compound parser over first, second and third.
func NewCompound3[C, U, V, W, O any](names [3]string, first Parser[C, U], second Parser[C, V], third Parser[C, W], mapper func(tuple.Triplet[U, V, W]) O) *Compound3[C, U, V, W, O] {
	if first == nil || second == nil || third == nil || mapper == nil {
		panic("argparse: NewCompound3 requires three parsers and a mapper")
	}
	return &Compound3[C, U, V, W, O]{names: names, first: first, second: second, third: third, mapper: mapper}
}

func (c *Compound3[C, U, V, W, O]) Names() []string { return slices.Clone(c.names[:]) }
func (c *Compound3[C, U, V, W, O]) Arity() int      { return len(c.names) }

func (c *Compound3[C, U, V, W, O]) Parse(ctx C, q *Queue) Result[O] {
	var t tuple.Triplet[U, V, W]
	if err := step(ctx, q, 0, c.names[0], c.first, &t.First); err != nil {
		return Failure[O](err)
	}
	if err := step(ctx, q, 1, c.names[1], c.second, &t.Second); err != nil {
		return Failure[O](err)
	}
	if err := step(ctx, q, 2, c.names[2], c.third, &t.Third); err != nil {
		return Failure[O](err)
	}
	return Success(c.mapper(t))
}

func (c *Compound3[C, U, V, W, O]) ContextFree() bool {
	return IsContextFree(c.first) && IsContextFree(c.second) && IsContextFree(c.third)
}

func (c *Compound3[C, U, V, W, O]) Suggestions(ctx C, input string) []string {
	return compoundSuggestions(ctx, input, []component[C]{
		componentOf(c.first),
		componentOf(c.second),
		componentOf(c.third),
	})
}

// step runs the i-th component and stores its value in out. Tokens consumed
// by earlier components are left consumed when it fails.
func step[C, T any](ctx C, q *Queue, i int, name string, p Parser[C, T], out *T) error {
	v, err := p.Parse(ctx, q).Get()
	if err != nil {
		return &CompositionError{Index: i, Name: name, Err: err}
	}
	*out = v
	return nil
}

// component is a type-erased handle on one sub-parser, used only to locate
// the position of a partial token during suggestion.
type component[C any] struct {
	consume func(ctx C, q *Queue) bool
	suggest func(ctx C, input string) []string
	nested  bool
}

func componentOf[C, T any](p Parser[C, T]) component[C] {
	_, nested := asCompound(p)
	return component[C]{
		consume: func(ctx C, q *Queue) bool { return p.Parse(ctx, q).Ok() },
		suggest: func(ctx C, input string) []string { return Suggest(p, ctx, input) },
		nested:  nested,
	}
}

// asCompound reports whether p is a compound, looking through parsers
// built by Map and Erase.
func asCompound(p any) (Compound, bool) {
	for {
		switch v := p.(type) {
		case Compound:
			return v, true
		case wrapper:
			p = v.unwrap()
		default:
			return nil, false
		}
	}
}

// SplitPartial splits raw input into the complete tokens before the cursor
// and the partial token being typed. Trailing whitespace means the partial
// token is empty.
func SplitPartial(input string) (complete []string, partial string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, ""
	}
	if r, _ := utf8.DecodeLastRuneInString(input); unicode.IsSpace(r) {
		return fields, ""
	}
	return fields[:len(fields)-1], fields[len(fields)-1]
}

func compoundSuggestions[C any](ctx C, input string, parts []component[C]) []string {
	complete, partial := SplitPartial(input)
	q := NewQueue(complete...)
	for _, part := range parts {
		if q.Empty() {
			return part.suggest(ctx, partial)
		}
		before := q.Clone()
		if !part.consume(ctx, q) {
			// A nested compound may have failed only because the partial
			// token belongs to one of its own later components.
			if part.nested {
				rest := append(before.Remaining(), partial)
				return part.suggest(ctx, strings.Join(rest, " "))
			}
			return nil
		}
	}
	return nil
}
