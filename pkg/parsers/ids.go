// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parsers

import (
	_ "crypto/sha256" // digest.SHA256 availability
	_ "crypto/sha512" // digest.SHA384, digest.SHA512 availability
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/yeetrun/cmdarg/pkg/argparse"
)

// token runs conv on the front token and pops it only when conv succeeds.
func token[T any](q *argparse.Queue, typ string, conv func(string) (T, error)) argparse.Result[T] {
	input, ok := q.Peek()
	if !ok {
		return argparse.Failure[T](argparse.MissingInputError{})
	}
	v, err := conv(input)
	if err != nil {
		return argparse.Failure[T](&argparse.ValueError{Type: typ, Input: input, Err: err})
	}
	q.Pop()
	return argparse.Success(v)
}

// UUID parses RFC 4122 identifiers.
type UUID[C any] struct{}

func NewUUID[C any]() *UUID[C] { return &UUID[C]{} }

func (*UUID[C]) Parse(_ C, q *argparse.Queue) argparse.Result[uuid.UUID] {
	return token(q, "uuid", uuid.Parse)
}

func (*UUID[C]) ContextFree() bool { return true }

// Digest parses content digests of the form "algorithm:hex".
type Digest[C any] struct{}

func NewDigest[C any]() *Digest[C] { return &Digest[C]{} }

func (*Digest[C]) Parse(_ C, q *argparse.Queue) argparse.Result[digest.Digest] {
	return token(q, "digest", digest.Parse)
}

func (*Digest[C]) ContextFree() bool { return true }

// Suggestions completes the algorithm prefix.
func (*Digest[C]) Suggestions(_ C, input string) []string {
	var out []string
	for _, alg := range []digest.Algorithm{digest.SHA256, digest.SHA384, digest.SHA512} {
		if p := alg.String() + ":"; strings.HasPrefix(p, input) {
			out = append(out, p)
		}
	}
	return out
}

// Semver parses semantic versions, optionally restricted by a constraint
// such as ">= 1.2, < 2".
type Semver[C any] struct {
	constraint *semver.Constraints
}

// NewSemver returns a Semver parser. An empty constraint accepts any
// version; an invalid one is reported here, before any token is parsed.
func NewSemver[C any](constraint string) (*Semver[C], error) {
	p := &Semver[C]{}
	if constraint == "" {
		return p, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, err
	}
	p.constraint = c
	return p, nil
}

func (p *Semver[C]) Parse(_ C, q *argparse.Queue) argparse.Result[*semver.Version] {
	return token(q, "version", func(s string) (*semver.Version, error) {
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, err
		}
		if p.constraint != nil {
			if ok, errs := p.constraint.Validate(v); !ok {
				if len(errs) > 0 {
					return nil, errs[0]
				}
				return nil, &constraintError{version: v, constraint: p.constraint}
			}
		}
		return v, nil
	})
}

func (p *Semver[C]) ContextFree() bool { return true }

type constraintError struct {
	version    *semver.Version
	constraint *semver.Constraints
}

func (e *constraintError) Error() string {
	return e.version.String() + " does not satisfy " + e.constraint.String()
}

// Duration parses Go duration strings such as "1h30m".
type Duration[C any] struct{}

func NewDuration[C any]() *Duration[C] { return &Duration[C]{} }

func (*Duration[C]) Parse(_ C, q *argparse.Queue) argparse.Result[time.Duration] {
	return token(q, "duration", time.ParseDuration)
}

func (*Duration[C]) ContextFree() bool { return true }
