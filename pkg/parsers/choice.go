// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parsers

import (
	"slices"
	"strings"

	"github.com/yeetrun/cmdarg/pkg/argparse"
)

// Choice accepts one token out of a fixed set and returns the canonical
// spelling of the matched choice.
type Choice[C any] struct {
	choices       []string
	caseSensitive bool
}

// NewChoice returns a Choice over choices. Matching ignores case unless
// caseSensitive is set.
func NewChoice[C any](caseSensitive bool, choices ...string) *Choice[C] {
	return &Choice[C]{choices: slices.Clone(choices), caseSensitive: caseSensitive}
}

// Choices returns a copy of the accepted values.
func (p *Choice[C]) Choices() []string { return slices.Clone(p.choices) }

func (p *Choice[C]) match(a, b string) bool {
	if p.caseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (p *Choice[C]) hasPrefix(s, prefix string) bool {
	if p.caseSensitive {
		return strings.HasPrefix(s, prefix)
	}
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}

func (p *Choice[C]) Parse(_ C, q *argparse.Queue) argparse.Result[string] {
	input, ok := q.Peek()
	if !ok {
		return argparse.Failure[string](argparse.MissingInputError{})
	}
	for _, c := range p.choices {
		if p.match(c, input) {
			q.Pop()
			return argparse.Success(c)
		}
	}
	return argparse.Failure[string](&argparse.ChoiceError{Input: input, Choices: p.Choices()})
}

func (p *Choice[C]) ContextFree() bool { return true }

func (p *Choice[C]) Suggestions(_ C, input string) []string {
	var out []string
	for _, c := range p.choices {
		if p.hasPrefix(c, input) {
			out = append(out, c)
		}
	}
	return out
}

var (
	strictBools  = []string{"true", "false"}
	liberalTrue  = []string{"true", "yes", "on"}
	liberalFalse = []string{"false", "no", "off"}
)

// Bool parses a boolean. A strict parser accepts only "true" and "false";
// a liberal one also accepts yes/no and on/off. Case is ignored.
type Bool[C any] struct {
	liberal bool
}

// NewBool returns a Bool parser.
func NewBool[C any](liberal bool) *Bool[C] {
	return &Bool[C]{liberal: liberal}
}

func (p *Bool[C]) Liberal() bool { return p.liberal }

func (p *Bool[C]) Parse(_ C, q *argparse.Queue) argparse.Result[bool] {
	input, ok := q.Peek()
	if !ok {
		return argparse.Failure[bool](argparse.MissingInputError{})
	}
	truths, falsehoods := strictBools[:1], strictBools[1:]
	if p.liberal {
		truths, falsehoods = liberalTrue, liberalFalse
	}
	for _, s := range truths {
		if strings.EqualFold(s, input) {
			q.Pop()
			return argparse.Success(true)
		}
	}
	for _, s := range falsehoods {
		if strings.EqualFold(s, input) {
			q.Pop()
			return argparse.Success(false)
		}
	}
	return argparse.Failure[bool](&argparse.ChoiceError{Input: input, Choices: p.accepted()})
}

func (p *Bool[C]) accepted() []string {
	if !p.liberal {
		return slices.Clone(strictBools)
	}
	return slices.Concat(liberalTrue, liberalFalse)
}

func (p *Bool[C]) ContextFree() bool { return true }

func (p *Bool[C]) Suggestions(_ C, input string) []string {
	var out []string
	for _, s := range p.accepted() {
		if strings.HasPrefix(s, strings.ToLower(input)) {
			out = append(out, s)
		}
	}
	return out
}
