// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"testing"
)

type testCtx struct{}

func TestNumberParserInRange(t *testing.T) {
	p := NewNumberParser[testCtx](int64(-5), int64(5))
	for v := int64(-5); v <= 5; v++ {
		q := NewQueue(strconv.FormatInt(v, 10), "next")
		got, err := p.Parse(testCtx{}, q).Get()
		if err != nil {
			t.Fatalf("Parse(%d) failed: %v", v, err)
		}
		if got != v {
			t.Errorf("Parse(%d) = %d", v, got)
		}
		if q.Len() != 1 {
			t.Errorf("Parse(%d) left %d tokens, want 1", v, q.Len())
		}
	}
}

func TestNumberParserOutOfRange(t *testing.T) {
	p := NewNumberParser[testCtx](int64(1), int64(5))
	for _, in := range []string{"0", "6", "-1", "9223372036854775807"} {
		q := NewQueue(in)
		r := p.Parse(testCtx{}, q)
		if r.Ok() {
			t.Fatalf("Parse(%q) succeeded, want failure", in)
		}
		var nerr *NumberParseError
		if !errors.As(r.Cause(), &nerr) {
			t.Fatalf("Parse(%q) cause = %T, want *NumberParseError", in, r.Cause())
		}
		if nerr.Kind != OutOfRange {
			t.Errorf("Parse(%q) kind = %v, want %v", in, nerr.Kind, OutOfRange)
		}
		if nerr.Input != in {
			t.Errorf("Input = %q, want %q", nerr.Input, in)
		}
		if q.Len() != 1 {
			t.Errorf("Parse(%q) consumed the rejected token", in)
		}
		if nerr.Min != int64(1) || nerr.Max != int64(5) {
			t.Errorf("bounds = %v..%v, want 1..5", nerr.Min, nerr.Max)
		}
	}
}

func TestNumberParserNotANumber(t *testing.T) {
	p := UnboundedNumberParser[testCtx, int32]()
	for _, in := range []string{"", "abc", "1.5", "1,000", "1_000", "0x10", " 1", "--1", "2147483648"} {
		q := NewQueue(in)
		r := p.Parse(testCtx{}, q)
		var nerr *NumberParseError
		if !errors.As(r.Cause(), &nerr) {
			t.Fatalf("Parse(%q) cause = %v, want *NumberParseError", in, r.Cause())
		}
		if nerr.Kind != NotANumber {
			t.Errorf("Parse(%q) kind = %v, want %v", in, nerr.Kind, NotANumber)
		}
		if nerr.HasMin() || nerr.HasMax() {
			t.Errorf("Parse(%q) reported sentinel bounds as active: %v..%v", in, nerr.Min, nerr.Max)
		}
		if q.Len() != 1 {
			t.Errorf("Parse(%q) consumed a token", in)
		}
	}
}

func TestNumberParserSignedInput(t *testing.T) {
	p := UnboundedNumberParser[testCtx, int64]()
	q := NewQueue("+42")
	got, err := p.Parse(testCtx{}, q).Get()
	if err != nil || got != 42 {
		t.Fatalf("Parse(+42) = %d, %v", got, err)
	}
}

func TestNumberParserMissingInput(t *testing.T) {
	p := UnboundedNumberParser[testCtx, int64]()
	r := p.Parse(testCtx{}, NewQueue())
	if !errors.As(r.Cause(), new(MissingInputError)) {
		t.Fatalf("cause = %v, want MissingInputError", r.Cause())
	}
}

func TestNumberParserInvertedBoundsRejectEverything(t *testing.T) {
	p := NewNumberParser[testCtx](int64(10), int64(1))
	for _, in := range []string{"0", "1", "5", "10", "11"} {
		if p.Parse(testCtx{}, NewQueue(in)).Ok() {
			t.Errorf("Parse(%q) succeeded with min > max", in)
		}
	}
	if got := p.Suggestions(testCtx{}, ""); len(got) != 0 {
		t.Errorf("Suggestions = %v, want none", got)
	}
}

func TestSentinels(t *testing.T) {
	if got := MinOf[int64](); got != math.MinInt64 {
		t.Errorf("MinOf[int64] = %d", got)
	}
	if got := MaxOf[int64](); got != math.MaxInt64 {
		t.Errorf("MaxOf[int64] = %d", got)
	}
	if got := MinOf[int8](); got != math.MinInt8 {
		t.Errorf("MinOf[int8] = %d", got)
	}
	if got := MaxOf[uint16](); got != math.MaxUint16 {
		t.Errorf("MaxOf[uint16] = %d", got)
	}
	if got := MaxOf[uint64](); got != math.MaxUint64 {
		t.Errorf("MaxOf[uint64] = %d", got)
	}
	if got := MinOf[uint32](); got != 0 {
		t.Errorf("MinOf[uint32] = %d", got)
	}
	if got := MaxOf[float32](); got != math.MaxFloat32 {
		t.Errorf("MaxOf[float32] = %v", got)
	}
	if got := MinOf[float64](); got != -math.MaxFloat64 {
		t.Errorf("MinOf[float64] = %v", got)
	}
}

func TestUnboundedHasNoActiveBounds(t *testing.T) {
	p := UnboundedNumberParser[testCtx, int64]()
	if p.HasMin() || p.HasMax() {
		t.Fatalf("HasMin/HasMax = %v/%v, want false/false", p.HasMin(), p.HasMax())
	}
	if p.Min() != math.MinInt64 || p.Max() != math.MaxInt64 {
		t.Fatalf("sentinels = %d..%d", p.Min(), p.Max())
	}
	half := NewNumberParser[testCtx](int64(0), int64(math.MaxInt64))
	if !half.HasMin() || half.HasMax() {
		t.Fatalf("HasMin/HasMax = %v/%v, want true/false", half.HasMin(), half.HasMax())
	}
	r := half.Parse(testCtx{}, NewQueue("-1"))
	var nerr *NumberParseError
	if !errors.As(r.Cause(), &nerr) {
		t.Fatalf("cause = %v", r.Cause())
	}
	if !nerr.HasMin() || nerr.HasMax() {
		t.Errorf("error bounds = %v..%v, want only min", nerr.Min, nerr.Max)
	}
	if want := "-1 is out of range (must be at least 0)"; nerr.Error() != want {
		t.Errorf("Error() = %q, want %q", nerr.Error(), want)
	}
}

func TestNumberParserUnsigned(t *testing.T) {
	p := NewNumberParser[testCtx](uint16(1), uint16(1024))
	got, err := p.Parse(testCtx{}, NewQueue("1024")).Get()
	if err != nil || got != 1024 {
		t.Fatalf("Parse(1024) = %d, %v", got, err)
	}
	r := p.Parse(testCtx{}, NewQueue("-1"))
	var nerr *NumberParseError
	if !errors.As(r.Cause(), &nerr) || nerr.Kind != NotANumber {
		t.Fatalf("Parse(-1) cause = %v, want not a number", r.Cause())
	}
}

func TestNumberParserFloat(t *testing.T) {
	p := NewNumberParser[testCtx](0.5, 2.5)
	got, err := p.Parse(testCtx{}, NewQueue("1.25")).Get()
	if err != nil || got != 1.25 {
		t.Fatalf("Parse(1.25) = %v, %v", got, err)
	}
	for in, kind := range map[string]NumberErrorKind{
		"NaN":  NotANumber,
		"x":    NotANumber,
		"2.6":  OutOfRange,
		"+Inf": OutOfRange,
	} {
		var nerr *NumberParseError
		if !errors.As(p.Parse(testCtx{}, NewQueue(in)).Cause(), &nerr) || nerr.Kind != kind {
			t.Errorf("Parse(%q) = %v, want %v", in, nerr, kind)
		}
	}
}

func TestNumberSuggestionsSmallRange(t *testing.T) {
	p := NewNumberParser[testCtx](int64(1), int64(5))
	got := p.Suggestions(testCtx{}, "")
	want := []string{"1", "2", "3", "4", "5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Suggestions(\"\") = %v, want %v", got, want)
	}
	for _, s := range got {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 1 || v > 5 {
			t.Errorf("suggestion %q is outside [1,5]", s)
		}
	}
	if got := p.Suggestions(testCtx{}, "3"); !reflect.DeepEqual(got, []string{"3"}) {
		t.Errorf("Suggestions(\"3\") = %v", got)
	}
	if got := p.Suggestions(testCtx{}, "7"); len(got) != 0 {
		t.Errorf("Suggestions(\"7\") = %v, want none", got)
	}
}

func TestNumberSuggestionsLargeRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int64
		input    string
		want     []string
	}{
		{"unbounded empty", math.MinInt64, math.MaxInt64, "", []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}},
		{"unbounded prefix", math.MinInt64, math.MaxInt64, "1", []string{"1", "10", "11", "12", "13", "14", "15", "16", "17", "18", "19"}},
		{"negative", -1000, 1000, "-2", []string{"-2", "-20", "-21", "-22", "-23", "-24", "-25", "-26", "-27", "-28", "-29"}},
		{"bare minus", -1000, 1000, "-", []string{"-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9"}},
		{"capped", 0, 150, "1", []string{"1", "10", "11", "12", "13", "14", "15", "16", "17", "18", "19"}},
		{"capped tail", 0, 150, "15", []string{"15", "150"}},
		{"below min", 100, 1000, "50", []string{"500", "501", "502", "503", "504", "505", "506", "507", "508", "509"}},
		{"no extension in range", 100, 1000, "5", nil},
		{"garbage", 0, 1000, "a", nil},
		{"zero", 0, 1000, "0", []string{"0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewNumberParser[testCtx](tt.min, tt.max)
			got := p.Suggestions(testCtx{}, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Suggestions(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumberSuggestionsNeverOutOfRange(t *testing.T) {
	p := NewNumberParser[testCtx](int64(37), int64(4242))
	for _, in := range []string{"", "-", "1", "3", "4", "42", "424", "4242", "9"} {
		for _, s := range p.Suggestions(testCtx{}, in) {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil || v < 37 || v > 4242 {
				t.Errorf("Suggestions(%q) included %q", in, s)
			}
		}
	}
}

func TestFloatSuggestions(t *testing.T) {
	p := NewNumberParser[testCtx](0.5, 2.5)
	if got, want := p.Suggestions(testCtx{}, ""), []string{"0.5", "2.5"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(\"\") = %v, want %v", got, want)
	}
	if got, want := p.Suggestions(testCtx{}, "1"), []string{"1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(\"1\") = %v, want %v", got, want)
	}
	if got := p.Suggestions(testCtx{}, "3"); len(got) != 0 {
		t.Errorf("Suggestions(\"3\") = %v, want none", got)
	}
}

func TestNumberParserIsContextFree(t *testing.T) {
	if !IsContextFree(UnboundedNumberParser[testCtx, int]()) {
		t.Fatal("number parser should be context free")
	}
}
