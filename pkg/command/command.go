// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command walks a flat list of arguments over the tokens of one
// invocation.
package command

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/yeetrun/cmdarg/pkg/argparse"
	"github.com/yeetrun/cmdarg/pkg/argument"
	"github.com/yeetrun/cmdarg/pkg/meta"
	"tailscale.com/util/set"
)

// Handler runs after every argument parsed.
type Handler[C any] func(ctx C, v *Values) error

// Command is a named, ordered list of arguments. It is immutable and safe
// for concurrent use.
type Command[C any] struct {
	name    string
	aliases []string
	args    []argument.Definition[C]
	meta    meta.Meta
	handler Handler[C]
}

func (c *Command[C]) Name() string                         { return c.name }
func (c *Command[C]) Aliases() []string                    { return slices.Clone(c.aliases) }
func (c *Command[C]) Arguments() []argument.Definition[C] { return slices.Clone(c.args) }
func (c *Command[C]) Meta() meta.Meta                      { return c.meta }

// Usage returns a one-line synopsis such as "tp <x> <y> [reason]".
func (c *Command[C]) Usage() string {
	var sb strings.Builder
	sb.WriteString(c.name)
	for _, a := range c.args {
		sb.WriteByte(' ')
		sb.WriteString(usageOf(a))
	}
	return sb.String()
}

func usageOf[C any](a argument.Definition[C]) string {
	if s, ok := a.(fmt.Stringer); ok {
		return s.String()
	}
	if a.Required() {
		return "<" + a.Name() + ">"
	}
	return "[" + a.Name() + "]"
}

// Execute parses tokens against the command's arguments and runs the
// handler, if any.
//
// An optional argument with no input left takes its default, or stays
// unset if it has none. Tokens left over after the last argument are an
// error.
func (c *Command[C]) Execute(ctx C, tokens []string) (*Values, error) {
	q := argparse.NewQueue(tokens...)
	v := &Values{}
	for _, a := range c.args {
		if q.Empty() {
			if a.Required() {
				return nil, &MissingArgumentError{Command: c.name, Argument: a.Name()}
			}
			def, ok := a.Default()
			if !ok {
				continue
			}
			x, err := a.ParseDefault(ctx)
			if err != nil {
				return nil, &ArgumentError{Command: c.name, Argument: a.Name(), Input: def, Default: true, Err: err}
			}
			v.set(a.Name(), x)
			continue
		}
		input, _ := q.Peek()
		x, err := a.ParseValue(ctx, q).Get()
		if err != nil {
			return nil, &ArgumentError{Command: c.name, Argument: a.Name(), Input: input, Err: err}
		}
		v.set(a.Name(), x)
	}
	if !q.Empty() {
		return nil, &TooManyArgumentsError{Command: c.name, Extra: q.Remaining()}
	}
	if c.handler != nil {
		if err := c.handler(ctx, v); err != nil {
			return v, fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return v, nil
}

// Suggest completes the last token of input, the raw text typed after the
// command name. Preceding complete tokens are replayed to find the argument
// the last token belongs to.
func (c *Command[C]) Suggest(ctx C, input string) []string {
	complete, partial := argparse.SplitPartial(input)
	q := argparse.NewQueue(complete...)
	for _, a := range c.args {
		if q.Empty() {
			return dedup(a.Suggestions(ctx, partial))
		}
		before := q.Clone()
		if !a.ParseValue(ctx, q).Ok() {
			// The argument may span several tokens and the partial one
			// completes it.
			rest := append(before.Remaining(), partial)
			return dedup(a.Suggestions(ctx, strings.Join(rest, " ")))
		}
	}
	return nil
}

func dedup(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(set.Set[string])
	out := in[:0:0]
	for _, s := range in {
		if seen.Contains(s) {
			continue
		}
		seen.Add(s)
		out = append(out, s)
	}
	return out
}

// Builder accumulates a Command.
type Builder[C any] struct {
	name    string
	aliases []string
	args    []argument.Definition[C]
	meta    *meta.Builder
	handler Handler[C]
}

// New returns a Builder for a command called name.
func New[C any](name string) *Builder[C] {
	return &Builder[C]{name: name, meta: meta.NewBuilder()}
}

// Alias adds alternative names.
func (b *Builder[C]) Alias(names ...string) *Builder[C] {
	b.aliases = append(b.aliases, names...)
	return b
}

// Argument appends an argument.
func (b *Builder[C]) Argument(a argument.Definition[C]) *Builder[C] {
	b.args = append(b.args, a)
	return b
}

// Meta sets a metadata pair.
func (b *Builder[C]) Meta(key, value string) *Builder[C] {
	b.meta.With(key, value)
	return b
}

// Description is shorthand for Meta(meta.Description, s).
func (b *Builder[C]) Description(s string) *Builder[C] {
	return b.Meta(meta.Description, s)
}

// Handler sets the function run after a successful parse.
func (b *Builder[C]) Handler(fn Handler[C]) *Builder[C] {
	b.handler = fn
	return b
}

// Build validates and freezes the command. Names must be non-empty and
// argument names unique, and no required argument may follow an optional
// one.
func (b *Builder[C]) Build() (*Command[C], error) {
	if b.name == "" || strings.ContainsFunc(b.name, unicode.IsSpace) {
		return nil, fmt.Errorf("%w: bad name %q", ErrInvalidCommand, b.name)
	}
	seen := make(set.Set[string])
	optional := ""
	for _, a := range b.args {
		if a == nil {
			return nil, fmt.Errorf("%w: %s: nil argument", ErrInvalidCommand, b.name)
		}
		if seen.Contains(a.Name()) {
			return nil, fmt.Errorf("%w: %s: argument %q: %w", ErrInvalidCommand, b.name, a.Name(), ErrDuplicate)
		}
		seen.Add(a.Name())
		if !a.Required() {
			if optional == "" {
				optional = a.Name()
			}
		} else if optional != "" {
			return nil, fmt.Errorf("%w: %s: required argument %q follows optional %q", ErrInvalidCommand, b.name, a.Name(), optional)
		}
	}
	for _, alias := range b.aliases {
		if alias == "" || strings.ContainsFunc(alias, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %s: bad alias %q", ErrInvalidCommand, b.name, alias)
		}
	}
	return &Command[C]{
		name:    b.name,
		aliases: slices.Clone(b.aliases),
		args:    slices.Clone(b.args),
		meta:    b.meta.Build(),
		handler: b.handler,
	}, nil
}
