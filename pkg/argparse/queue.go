// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import "slices"

// Queue holds the unconsumed input tokens of a single invocation. Parsers may
// only look at and remove tokens from the front.
//
// A Queue is not safe for concurrent use. Each invocation builds its own.
type Queue struct {
	tokens []string
}

// NewQueue returns a queue over a copy of tokens.
func NewQueue(tokens ...string) *Queue {
	return &Queue{tokens: slices.Clone(tokens)}
}

// Peek returns the front token without removing it.
func (q *Queue) Peek() (string, bool) {
	if len(q.tokens) == 0 {
		return "", false
	}
	return q.tokens[0], true
}

// Pop removes and returns the front token.
func (q *Queue) Pop() (string, bool) {
	if len(q.tokens) == 0 {
		return "", false
	}
	tok := q.tokens[0]
	q.tokens = q.tokens[1:]
	return tok, true
}

// Len returns the number of remaining tokens.
func (q *Queue) Len() int {
	return len(q.tokens)
}

// Empty reports whether no tokens remain.
func (q *Queue) Empty() bool {
	return len(q.tokens) == 0
}

// Remaining returns a copy of the remaining tokens.
func (q *Queue) Remaining() []string {
	return slices.Clone(q.tokens)
}

// Clone returns an independent copy of q.
func (q *Queue) Clone() *Queue {
	return NewQueue(q.tokens...)
}
