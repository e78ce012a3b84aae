// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"math"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"tailscale.com/util/set"
)

// Integer is the set of Go integer types a NumberParser accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the set of Go floating-point types a NumberParser accepts.
type Float interface {
	~float32 | ~float64
}

// Number is any type a NumberParser can produce.
type Number interface {
	Integer | Float
}

// enumerationLimit is the largest range size for which integer suggestions
// list every matching value instead of extending the typed prefix by a digit.
const enumerationLimit = 64

type numberInfo struct {
	kind reflect.Kind
	bits int
	name string
}

func infoOf[N Number]() numberInfo {
	t := reflect.TypeFor[N]()
	return numberInfo{kind: t.Kind(), bits: t.Bits(), name: t.String()}
}

func (i numberInfo) float() bool {
	return i.kind == reflect.Float32 || i.kind == reflect.Float64
}

func (i numberInfo) signed() bool {
	switch i.kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// MinOf returns the smallest value of N. NumberParser uses it as the
// "no lower bound" sentinel.
func MinOf[N Number]() N {
	info := infoOf[N]()
	switch {
	case info.float():
		f := -math.MaxFloat64
		if info.bits == 32 {
			f = -math.MaxFloat32
		}
		return N(f)
	case info.signed():
		v := int64(-1) << (info.bits - 1)
		return N(v)
	default:
		return 0
	}
}

// MaxOf returns the largest value of N. NumberParser uses it as the
// "no upper bound" sentinel.
func MaxOf[N Number]() N {
	info := infoOf[N]()
	switch {
	case info.float():
		f := math.MaxFloat64
		if info.bits == 32 {
			f = math.MaxFloat32
		}
		return N(f)
	case info.signed():
		v := int64(1)<<(info.bits-1) - 1
		return N(v)
	default:
		u := uint64(math.MaxUint64) >> (64 - info.bits)
		return N(u)
	}
}

// ParseNumber parses s with the canonical decimal grammar of N: an optional
// sign and digits for integers, strconv float syntax for floats. NaN is
// rejected.
func ParseNumber[N Number](s string) (N, bool) {
	info := infoOf[N]()
	switch {
	case info.float():
		f, err := strconv.ParseFloat(s, info.bits)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return N(f), true
	case info.signed():
		v, err := strconv.ParseInt(s, 10, info.bits)
		if err != nil {
			return 0, false
		}
		return N(v), true
	default:
		v, err := strconv.ParseUint(s, 10, info.bits)
		if err != nil {
			return 0, false
		}
		return N(v), true
	}
}

// NumberParser parses a single token as a number in the inclusive range
// [min, max]. A bound equal to MinOf/MaxOf is treated as absent.
//
// min > max is not rejected; such a parser refuses every input.
type NumberParser[C any, N Number] struct {
	min N
	max N
}

// NewNumberParser returns a parser accepting values in [min, max].
func NewNumberParser[C any, N Number](min, max N) *NumberParser[C, N] {
	return &NumberParser[C, N]{min: min, max: max}
}

// UnboundedNumberParser returns a parser accepting every value of N.
func UnboundedNumberParser[C any, N Number]() *NumberParser[C, N] {
	return NewNumberParser[C](MinOf[N](), MaxOf[N]())
}

func (p *NumberParser[C, N]) Min() N { return p.min }
func (p *NumberParser[C, N]) Max() N { return p.max }

// HasMin reports whether the lower bound differs from the type minimum.
func (p *NumberParser[C, N]) HasMin() bool { return p.min != MinOf[N]() }

// HasMax reports whether the upper bound differs from the type maximum.
func (p *NumberParser[C, N]) HasMax() bool { return p.max != MaxOf[N]() }

func (p *NumberParser[C, N]) Parse(_ C, q *Queue) Result[N] {
	input, ok := q.Peek()
	if !ok {
		return Failure[N](MissingInputError{})
	}
	v, ok := ParseNumber[N](input)
	if !ok {
		return p.fail(NotANumber, input)
	}
	if v < p.min || v > p.max {
		return p.fail(OutOfRange, input)
	}
	q.Pop()
	return Success(v)
}

func (p *NumberParser[C, N]) fail(kind NumberErrorKind, input string) Result[N] {
	err := &NumberParseError{Kind: kind, Input: input, Type: infoOf[N]().name}
	if p.HasMin() {
		err.Min = p.min
	}
	if p.HasMax() {
		err.Max = p.max
	}
	return Failure[N](err)
}

func (p *NumberParser[C, N]) ContextFree() bool { return true }

// Suggestions proposes in-range numbers that start with input.
//
// For integer ranges of at most enumerationLimit values every matching value
// is listed. Larger ranges get the input itself plus its ten one-digit
// extensions, filtered by prefix and range. Floats get the input when it
// parses in range plus any active bound that starts with it.
func (p *NumberParser[C, N]) Suggestions(_ C, input string) []string {
	if p.min > p.max {
		return nil
	}
	info := infoOf[N]()
	if info.float() {
		return p.floatSuggestions(info, input)
	}
	return integerSuggestions(bigOf(info, p.min), bigOf(info, p.max), input)
}

func (p *NumberParser[C, N]) floatSuggestions(info numberInfo, input string) []string {
	var out []string
	if v, ok := ParseNumber[N](input); ok && v >= p.min && v <= p.max {
		out = append(out, input)
	}
	var bounds []N
	if p.HasMin() {
		bounds = append(bounds, p.min)
	}
	if p.HasMax() {
		bounds = append(bounds, p.max)
	}
	for _, b := range bounds {
		s := strconv.FormatFloat(float64(b), 'g', -1, info.bits)
		if s != input && strings.HasPrefix(s, input) {
			out = append(out, s)
		}
	}
	return out
}

func bigOf[N Number](info numberInfo, v N) *big.Int {
	if info.signed() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func integerSuggestions(min, max *big.Int, input string) []string {
	var out []string
	span := new(big.Int).Sub(max, min)
	if span.Cmp(big.NewInt(enumerationLimit)) < 0 {
		one := big.NewInt(1)
		for v := new(big.Int).Set(min); v.Cmp(max) <= 0; v.Add(v, one) {
			if s := v.String(); strings.HasPrefix(s, input) {
				out = append(out, s)
			}
		}
		return out
	}

	negative := strings.HasPrefix(input, "-")
	digits := strings.TrimPrefix(input, "-")
	for _, r := range digits {
		if r < '0' || r > '9' {
			return nil
		}
	}
	base := new(big.Int)
	if digits != "" {
		base.SetString(digits, 10)
	}

	seen := make(set.Set[string])
	add := func(abs *big.Int) {
		v := new(big.Int).Set(abs)
		if negative {
			v.Neg(v)
		}
		s := v.String()
		if !strings.HasPrefix(s, input) || seen.Contains(s) {
			return
		}
		if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
			return
		}
		seen.Add(s)
		out = append(out, s)
	}
	if digits != "" {
		add(base)
	}
	ten := big.NewInt(10)
	for d := int64(0); d < 10; d++ {
		next := new(big.Int).Mul(base, ten)
		add(next.Add(next, big.NewInt(d)))
	}
	return out
}
