// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argparse

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yeetrun/cmdarg/pkg/tuple"
)

func intPair() *Compound2[testCtx, int64, int64, tuple.Pair[int64, int64]] {
	return NewCompound2(
		[2]string{"x", "y"},
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(0), int64(10))),
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(0), int64(10))),
		func(p tuple.Pair[int64, int64]) tuple.Pair[int64, int64] { return p },
	)
}

func TestCompoundSuccess(t *testing.T) {
	q := NewQueue("3", "4")
	got, err := intPair().Parse(testCtx{}, q).Get()
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if want := tuple.PairOf(int64(3), int64(4)); got != want {
		t.Errorf("Parse = %v, want %v", got, want)
	}
	if !q.Empty() {
		t.Errorf("queue not drained: %v", q.Remaining())
	}
}

func TestCompoundSecondFails(t *testing.T) {
	q := NewQueue("3", "oops")
	r := intPair().Parse(testCtx{}, q)
	var cerr *CompositionError
	if !errors.As(r.Cause(), &cerr) {
		t.Fatalf("cause = %v, want *CompositionError", r.Cause())
	}
	if cerr.Index != 1 || cerr.Name != "y" {
		t.Errorf("Index, Name = %d, %q, want 1, %q", cerr.Index, cerr.Name, "y")
	}
	var nerr *NumberParseError
	if !errors.As(cerr.Err, &nerr) || nerr.Kind != NotANumber {
		t.Errorf("inner = %v, want not a number", cerr.Err)
	}
	if got, want := q.Remaining(), []string{"oops"}; !reflect.DeepEqual(got, want) {
		t.Errorf("remaining = %v, want %v", got, want)
	}
}

func TestCompoundFirstFails(t *testing.T) {
	q := NewQueue("oops", "4")
	r := intPair().Parse(testCtx{}, q)
	var cerr *CompositionError
	if !errors.As(r.Cause(), &cerr) {
		t.Fatalf("cause = %v, want *CompositionError", r.Cause())
	}
	if cerr.Index != 0 {
		t.Errorf("Index = %d, want 0", cerr.Index)
	}
	if q.Len() != 2 {
		t.Errorf("remaining = %v, want queue unchanged", q.Remaining())
	}
}

func TestCompoundStopsAtFirstFailure(t *testing.T) {
	calls := 0
	counting := Func[testCtx, string](func(_ testCtx, q *Queue) Result[string] {
		calls++
		tok, _ := q.Pop()
		return Success(tok)
	})
	c := NewCompound3(
		[3]string{"a", "b", "c"},
		Parser[testCtx, string](counting),
		Parser[testCtx, int64](UnboundedNumberParser[testCtx, int64]()),
		Parser[testCtx, string](counting),
		func(t tuple.Triplet[string, int64, string]) string { return t.First + t.Third },
	)
	r := c.Parse(testCtx{}, NewQueue("a", "b", "c"))
	if r.Ok() {
		t.Fatal("Parse succeeded, want failure")
	}
	if calls != 1 {
		t.Errorf("component calls = %d, want 1", calls)
	}
}

func TestCompoundMapperRunsEveryTime(t *testing.T) {
	runs := 0
	c := NewCompound2(
		[2]string{"a", "b"},
		Parser[testCtx, int64](UnboundedNumberParser[testCtx, int64]()),
		Parser[testCtx, int64](UnboundedNumberParser[testCtx, int64]()),
		func(p tuple.Pair[int64, int64]) int64 {
			runs++
			return p.First * p.Second
		},
	)
	for i := 0; i < 3; i++ {
		got, err := c.Parse(testCtx{}, NewQueue("6", "7")).Get()
		if err != nil || got != 42 {
			t.Fatalf("Parse = %d, %v", got, err)
		}
	}
	if runs != 3 {
		t.Errorf("mapper runs = %d, want 3", runs)
	}
}

func TestNestedCompositionError(t *testing.T) {
	inner := intPair()
	outer := NewCompound2(
		[2]string{"label", "point"},
		Parser[testCtx, int64](UnboundedNumberParser[testCtx, int64]()),
		Parser[testCtx, tuple.Pair[int64, int64]](inner),
		func(p tuple.Pair[int64, tuple.Pair[int64, int64]]) int64 { return p.First },
	)
	q := NewQueue("1", "2", "11")
	r := outer.Parse(testCtx{}, q)
	var cerr *CompositionError
	if !errors.As(r.Cause(), &cerr) {
		t.Fatalf("cause = %v", r.Cause())
	}
	if diff := cmp.Diff([]int{1, 1}, cerr.Path()); diff != "" {
		t.Errorf("Path mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(cerr.Error(), "component 1 (point): component 1 (y)") {
		t.Errorf("Error() = %q", cerr.Error())
	}
	if got, want := q.Remaining(), []string{"11"}; !reflect.DeepEqual(got, want) {
		t.Errorf("remaining = %v, want %v", got, want)
	}
}

func TestCompoundContextFree(t *testing.T) {
	if !intPair().ContextFree() {
		t.Error("compound of number parsers should be context free")
	}
	dependent := NewCompound2(
		[2]string{"a", "b"},
		Parser[testCtx, int64](UnboundedNumberParser[testCtx, int64]()),
		Parser[testCtx, string](Func[testCtx, string](func(testCtx, *Queue) Result[string] { return Success("") })),
		func(p tuple.Pair[int64, string]) int64 { return p.First },
	)
	if dependent.ContextFree() {
		t.Error("compound with a context-dependent component should not be context free")
	}
}

func TestCompoundSuggestions(t *testing.T) {
	c := NewCompound2(
		[2]string{"x", "y"},
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(1), int64(3))),
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(7), int64(9))),
		func(p tuple.Pair[int64, int64]) tuple.Pair[int64, int64] { return p },
	)
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"2", []string{"2"}},
		{"2 ", []string{"7", "8", "9"}},
		{"2 8", []string{"8"}},
		{"5 ", nil},
		{"2 8 ", nil},
	}
	for _, tt := range tests {
		if got := c.Suggestions(testCtx{}, tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Suggestions(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNestedCompoundSuggestions(t *testing.T) {
	outer := NewCompound2(
		[2]string{"label", "point"},
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(1), int64(2))),
		Parser[testCtx, tuple.Pair[int64, int64]](intPair()),
		func(p tuple.Pair[int64, tuple.Pair[int64, int64]]) int64 { return p.First },
	)
	got := outer.Suggestions(testCtx{}, "1 4 1")
	want := []string{"1", "10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions = %v, want %v", got, want)
	}
}

func TestWrappedNestedCompoundSuggestions(t *testing.T) {
	third := Parser[testCtx, int64](NewNumberParser[testCtx](int64(1), int64(3)))
	erased := NewCompound2(
		[2]string{"pos", "z"},
		Erase[testCtx, tuple.Pair[int64, int64]](intPair()),
		third,
		func(p tuple.Pair[any, int64]) int64 { return p.Second },
	)
	mapped := NewCompound2(
		[2]string{"pos", "z"},
		Map(Parser[testCtx, tuple.Pair[int64, int64]](intPair()), func(p tuple.Pair[int64, int64]) int64 { return p.First + p.Second }),
		third,
		func(p tuple.Pair[int64, int64]) int64 { return p.Second },
	)
	want := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
	if got := erased.Suggestions(testCtx{}, "1 "); !reflect.DeepEqual(got, want) {
		t.Errorf("erased: Suggestions = %v, want %v", got, want)
	}
	if got := mapped.Suggestions(testCtx{}, "1 "); !reflect.DeepEqual(got, want) {
		t.Errorf("mapped: Suggestions = %v, want %v", got, want)
	}
	if got := mapped.Suggestions(testCtx{}, "1 2 "); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Errorf("mapped: Suggestions(1 2 ) = %v", got)
	}
}

func TestCompoundNamesAreCopies(t *testing.T) {
	c := intPair()
	c.Names()[0] = "mutated"
	if got := c.Names(); !reflect.DeepEqual(got, []string{"x", "y"}) {
		t.Errorf("Names after mutation = %v", got)
	}
	_, err := c.Parse(testCtx{}, NewQueue("oops")).Get()
	var cerr *CompositionError
	if !errors.As(err, &cerr) || cerr.Name != "x" {
		t.Errorf("err = %v, want CompositionError named x", err)
	}

	c3 := NewCompound3(
		[3]string{"a", "b", "c"},
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(0), int64(1))),
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(0), int64(1))),
		Parser[testCtx, int64](NewNumberParser[testCtx](int64(0), int64(1))),
		func(v tuple.Triplet[int64, int64, int64]) int64 { return v.First },
	)
	c3.Names()[2] = "mutated"
	if got := c3.Names(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Compound3 Names after mutation = %v", got)
	}
}

func TestSplitPartial(t *testing.T) {
	tests := []struct {
		in       string
		complete []string
		partial  string
	}{
		{"", nil, ""},
		{"a", []string{}, "a"},
		{"a b", []string{"a"}, "b"},
		{"a b ", []string{"a", "b"}, ""},
		{"tp voilà", []string{"tp"}, "voilà"},
		{"tp Ņ", []string{"tp"}, "Ņ"},
		{"tp café\u00a0", []string{"tp", "café"}, ""},
	}
	for _, tt := range tests {
		complete, partial := SplitPartial(tt.in)
		if len(complete) != len(tt.complete) || (len(complete) > 0 && !reflect.DeepEqual(complete, tt.complete)) || partial != tt.partial {
			t.Errorf("SplitPartial(%q) = %v, %q, want %v, %q", tt.in, complete, partial, tt.complete, tt.partial)
		}
	}
}
