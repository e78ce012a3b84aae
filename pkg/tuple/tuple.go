// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tuple provides fixed-arity heterogeneous value groups used as the
// intermediate value of compound arguments.
package tuple

import "fmt"

// Pair holds two values of possibly different types.
type Pair[U, V any] struct {
	First  U
	Second V
}

// PairOf returns a Pair of u and v.
func PairOf[U, V any](u U, v V) Pair[U, V] {
	return Pair[U, V]{First: u, Second: v}
}

func (p Pair[U, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triplet holds three values of possibly different types.
type Triplet[U, V, W any] struct {
	First  U
	Second V
	Third  W
}

// TripletOf returns a Triplet of u, v and w.
func TripletOf[U, V, W any](u U, v V, w W) Triplet[U, V, W] {
	return Triplet[U, V, W]{First: u, Second: v, Third: w}
}

func (t Triplet[U, V, W]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.First, t.Second, t.Third)
}
