// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argument

import (
	"reflect"

	"github.com/yeetrun/cmdarg/pkg/argparse"
)

// NumberBuilder builds an argument backed by a NumberParser. Bounds start
// at the sentinels of N, meaning unbounded.
//
// Build does not check the default against the bounds. An out-of-range
// default fails when it is parsed.
type NumberBuilder[C any, N argparse.Number] struct {
	settings[C, *NumberBuilder[C, N]]
	min, max N
}

// Number returns a builder for a numeric argument of type N.
func Number[C any, N argparse.Number](name string) *NumberBuilder[C, N] {
	b := &NumberBuilder[C, N]{min: argparse.MinOf[N](), max: argparse.MaxOf[N]()}
	b.settings = newSettings[C](b, name)
	return b
}

func Long[C any](name string) *NumberBuilder[C, int64]    { return Number[C, int64](name) }
func Integer[C any](name string) *NumberBuilder[C, int32] { return Number[C, int32](name) }
func Short[C any](name string) *NumberBuilder[C, int16]   { return Number[C, int16](name) }
func Byte[C any](name string) *NumberBuilder[C, int8]     { return Number[C, int8](name) }
func Float[C any](name string) *NumberBuilder[C, float32] { return Number[C, float32](name) }
func Double[C any](name string) *NumberBuilder[C, float64] {
	return Number[C, float64](name)
}

// WithMin sets the inclusive lower bound.
func (b *NumberBuilder[C, N]) WithMin(min N) *NumberBuilder[C, N] {
	b.min = min
	return b
}

// WithMax sets the inclusive upper bound.
func (b *NumberBuilder[C, N]) WithMax(max N) *NumberBuilder[C, N] {
	b.max = max
	return b
}

// WithRange sets both bounds.
func (b *NumberBuilder[C, N]) WithRange(min, max N) *NumberBuilder[C, N] {
	return b.WithMin(min).WithMax(max)
}

func (b *NumberBuilder[C, N]) Build() *Argument[C, N] {
	return build(&b.settings, argparse.Parser[C, N](argparse.NewNumberParser[C](b.min, b.max)), reflect.TypeFor[N]())
}
