// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parsers

import (
	"fmt"
	"strings"

	"github.com/yeetrun/cmdarg/pkg/argparse"
)

// StringMode controls how many tokens a String parser consumes.
type StringMode int

const (
	// Single consumes exactly one token.
	Single StringMode = iota
	// Greedy consumes every remaining token and joins them with spaces.
	Greedy
	// Quoted consumes one token, or, when the token opens with a double
	// quote, every token up to the one that closes it.
	Quoted
)

func (m StringMode) String() string {
	switch m {
	case Single:
		return "single"
	case Greedy:
		return "greedy"
	case Quoted:
		return "quoted"
	}
	return fmt.Sprintf("StringMode(%d)", int(m))
}

// ParseStringMode parses the textual form of a StringMode.
func ParseStringMode(s string) (StringMode, error) {
	switch strings.ToLower(s) {
	case "", "single":
		return Single, nil
	case "greedy":
		return Greedy, nil
	case "quoted":
		return Quoted, nil
	}
	return Single, fmt.Errorf("unknown string mode %q (want single, greedy or quoted)", s)
}

// String parses free text.
type String[C any] struct {
	mode StringMode
}

// NewString returns a String parser using mode.
func NewString[C any](mode StringMode) *String[C] {
	return &String[C]{mode: mode}
}

func (p *String[C]) Mode() StringMode { return p.mode }

func (p *String[C]) Parse(_ C, q *argparse.Queue) argparse.Result[string] {
	first, ok := q.Peek()
	if !ok {
		return argparse.Failure[string](argparse.MissingInputError{})
	}
	switch p.mode {
	case Greedy:
		tokens := q.Remaining()
		for range tokens {
			q.Pop()
		}
		return argparse.Success(strings.Join(tokens, " "))
	case Quoted:
		if !strings.HasPrefix(first, `"`) {
			break
		}
		return parseQuoted(q)
	}
	q.Pop()
	return argparse.Success(first)
}

func parseQuoted(q *argparse.Queue) argparse.Result[string] {
	tokens := q.Remaining()
	for i, tok := range tokens {
		body := tok
		if i == 0 {
			body = tok[1:]
		}
		if !strings.HasSuffix(body, `"`) {
			continue
		}
		for j := 0; j <= i; j++ {
			q.Pop()
		}
		joined := strings.Join(tokens[:i+1], " ")
		return argparse.Success(joined[1 : len(joined)-1])
	}
	return argparse.Failure[string](&argparse.ValueError{
		Type:  "quoted string",
		Input: strings.Join(tokens, " "),
		Err:   fmt.Errorf("missing closing quote"),
	})
}

func (p *String[C]) ContextFree() bool { return true }
