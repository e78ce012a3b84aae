// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argument

import (
	"fmt"
	"reflect"

	"github.com/yeetrun/cmdarg/pkg/argparse"
	"github.com/yeetrun/cmdarg/pkg/registry"
	"github.com/yeetrun/cmdarg/pkg/tuple"
)

// componentParams returns the params for component i.
func componentParams(params []registry.Params, i int) registry.Params {
	if i < len(params) {
		return params[i]
	}
	return registry.Params{}
}

func checkParams(params []registry.Params, arity int) {
	if len(params) > arity {
		panic(fmt.Sprintf("argument: %d component params given for arity %d", len(params), arity))
	}
}

func lookup[C, T any](reg *registry.Registry[C], name, component string, p registry.Params) (argparse.Parser[C, T], error) {
	parser, err := registry.Lookup[C, T](reg, p)
	if err != nil {
		return nil, fmt.Errorf("argument %q component %q: %w", name, component, err)
	}
	return parser, nil
}

// PairBuilder builds an argument made of two consecutive values.
type PairBuilder[C, U, V any] struct {
	settings[C, *PairBuilder[C, U, V]]
	names  [2]string
	first  argparse.Parser[C, U]
	second argparse.Parser[C, V]
}

// NewPair resolves parsers for U and V from reg. params[i], when given,
// configures component i. A registry miss is returned here and wraps
// registry.ErrNoParser.
func NewPair[C, U, V any](reg *registry.Registry[C], name string, names [2]string, params ...registry.Params) (*PairBuilder[C, U, V], error) {
	checkParams(params, 2)
	first, err := lookup[C, U](reg, name, names[0], componentParams(params, 0))
	if err != nil {
		return nil, err
	}
	second, err := lookup[C, V](reg, name, names[1], componentParams(params, 1))
	if err != nil {
		return nil, err
	}
	return PairOf(name, names, first, second), nil
}

// PairOf returns a PairBuilder over explicit parsers.
func PairOf[C, U, V any](name string, names [2]string, first argparse.Parser[C, U], second argparse.Parser[C, V]) *PairBuilder[C, U, V] {
	b := &PairBuilder[C, U, V]{names: names, first: first, second: second}
	b.settings = newSettings[C](b, name)
	return b
}

// Simple builds an argument producing the parsed pair as is.
func (b *PairBuilder[C, U, V]) Simple() *Argument[C, tuple.Pair[U, V]] {
	return MapPair(b, func(p tuple.Pair[U, V]) tuple.Pair[U, V] { return p })
}

// MapPair builds an argument that converts the parsed pair with mapper.
func MapPair[C, U, V, O any](b *PairBuilder[C, U, V], mapper func(tuple.Pair[U, V]) O) *Argument[C, O] {
	c := argparse.NewCompound2(b.names, b.first, b.second, mapper)
	return build(&b.settings, argparse.Parser[C, O](c), reflect.TypeFor[O]())
}

// TripletBuilder builds an argument made of three consecutive values.
type TripletBuilder[C, U, V, W any] struct {
	settings[C, *TripletBuilder[C, U, V, W]]
	names  [3]string
	first  argparse.Parser[C, U]
	second argparse.Parser[C, V]
	third  argparse.Parser[C, W]
}

// NewTriplet resolves parsers for U, V and W from reg.
func NewTriplet[C, U, V, W any](reg *registry.Registry[C], name string, names [3]string, params ...registry.Params) (*TripletBuilder[C, U, V, W], error) {
	checkParams(params, 3)
	first, err := lookup[C, U](reg, name, names[0], componentParams(params, 0))
	if err != nil {
		return nil, err
	}
	second, err := lookup[C, V](reg, name, names[1], componentParams(params, 1))
	if err != nil {
		return nil, err
	}
	third, err := lookup[C, W](reg, name, names[2], componentParams(params, 2))
	if err != nil {
		return nil, err
	}
	return TripletOf(name, names, first, second, third), nil
}

// TripletOf returns a TripletBuilder over explicit parsers.
func TripletOf[C, U, V, W any](name string, names [3]string, first argparse.Parser[C, U], second argparse.Parser[C, V], third argparse.Parser[C, W]) *TripletBuilder[C, U, V, W] {
	b := &TripletBuilder[C, U, V, W]{names: names, first: first, second: second, third: third}
	b.settings = newSettings[C](b, name)
	return b
}

func (b *TripletBuilder[C, U, V, W]) Simple() *Argument[C, tuple.Triplet[U, V, W]] {
	return MapTriplet(b, func(t tuple.Triplet[U, V, W]) tuple.Triplet[U, V, W] { return t })
}

// MapTriplet builds an argument that converts the parsed triplet with
// mapper.
func MapTriplet[C, U, V, W, O any](b *TripletBuilder[C, U, V, W], mapper func(tuple.Triplet[U, V, W]) O) *Argument[C, O] {
	c := argparse.NewCompound3(b.names, b.first, b.second, b.third, mapper)
	return build(&b.settings, argparse.Parser[C, O](c), reflect.TypeFor[O]())
}
