// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argparse is the typed core of command argument parsing.
//
// A Parser consumes tokens from the front of a shared Queue and returns a
// Result, which is either a value or a failure cause. Failures are data:
// nothing in this package panics on bad user input.
//
//	q := argparse.NewQueue("3", "4")
//	p := argparse.NewNumberParser[Ctx](int64(1), int64(10))
//	v, err := p.Parse(ctx, q).Get()
//
// Parsers can be fused into compound parsers, which run their components in
// order against the same queue and map the resulting tuple into one value:
//
//	point := argparse.NewCompound2([2]string{"x", "y"}, px, py,
//	    func(t tuple.Pair[int64, int64]) Point { return Point{t.First, t.Second} })
//
// A compound stops at the first failing component and reports it as a
// CompositionError carrying the component index. Tokens consumed by earlier
// components stay consumed.
//
// Parsers hold no mutable state after construction and may be shared by any
// number of concurrent invocations. Queues may not; each invocation builds its
// own.
package argparse
