// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/yeetrun/cmdarg/pkg/argparse"
	"tailscale.com/types/logger"
	"tailscale.com/util/mak"
)

// ErrNoParser is wrapped by every *NoParserError.
var ErrNoParser = errors.New("no parser registered")

// NoParserError is returned when a lookup finds no factory for a type.
type NoParserError struct {
	Type reflect.Type // nil when the lookup was by name
	Name string
}

func (e *NoParserError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("%v for type name %q", ErrNoParser, e.Name)
	}
	return fmt.Sprintf("%v for %v", ErrNoParser, e.Type)
}

func (e *NoParserError) Unwrap() error { return ErrNoParser }

// Factory builds a parser for T from params.
type Factory[C, T any] func(Params) (argparse.Parser[C, T], error)

type entry[C any] struct {
	name   string
	typ    reflect.Type
	typed  any // Factory[C, T] for typ
	erased func(Params) (argparse.Parser[C, any], error)
}

// Registry maps output types to parser factories. It is safe for concurrent
// use.
type Registry[C any] struct {
	logf logger.Logf

	mu     sync.RWMutex
	byType map[reflect.Type]*entry[C]
	byName map[string]*entry[C]
}

// Empty returns a registry with no factories. A nil logf discards logs.
func Empty[C any](logf logger.Logf) *Registry[C] {
	if logf == nil {
		logf = logger.Discard
	}
	return &Registry[C]{logf: logf}
}

// New returns a registry holding the standard parsers.
func New[C any](logf logger.Logf) *Registry[C] {
	r := Empty[C](logf)
	registerStandard(r)
	return r
}

// Register installs factory as the parser source for T under name. It
// replaces any factory previously registered for T or for name.
func Register[C, T any](r *Registry[C], name string, factory Factory[C, T]) {
	if name == "" || factory == nil {
		panic("registry: Register requires a name and a factory")
	}
	typ := reflect.TypeFor[T]()
	e := &entry[C]{
		name:  name,
		typ:   typ,
		typed: factory,
		erased: func(p Params) (argparse.Parser[C, any], error) {
			parser, err := factory(p)
			if err != nil {
				return nil, err
			}
			return argparse.Erase(parser), nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.byType[typ]; ok {
		delete(r.byName, old.name)
		r.logf("registry: replacing %s parser for %v", old.name, typ)
	}
	if old, ok := r.byName[name]; ok {
		delete(r.byType, old.typ)
		r.logf("registry: name %q moves from %v to %v", name, old.typ, typ)
	}
	mak.Set(&r.byType, typ, e)
	mak.Set(&r.byName, name, e)
}

func (r *Registry[C]) get(typ reflect.Type) (*entry[C], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byType[typ]
	return e, ok
}

// Lookup builds a parser for T.
func Lookup[C, T any](r *Registry[C], params Params) (argparse.Parser[C, T], error) {
	typ := reflect.TypeFor[T]()
	e, ok := r.get(typ)
	if !ok {
		r.logf("registry: no parser for %v", typ)
		return nil, &NoParserError{Type: typ}
	}
	p, err := e.typed.(Factory[C, T])(params)
	if err != nil {
		return nil, fmt.Errorf("building %s parser: %w", e.name, err)
	}
	return p, nil
}

// LookupType builds a parser for typ whose values are boxed as any.
func (r *Registry[C]) LookupType(typ reflect.Type, params Params) (argparse.Parser[C, any], error) {
	e, ok := r.get(typ)
	if !ok {
		r.logf("registry: no parser for %v", typ)
		return nil, &NoParserError{Type: typ}
	}
	p, err := e.erased(params)
	if err != nil {
		return nil, fmt.Errorf("building %s parser: %w", e.name, err)
	}
	return p, nil
}

// TypeByName returns the type registered under name.
func (r *Registry[C]) TypeByName(name string) (reflect.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[name]
	if !ok {
		return nil, &NoParserError{Name: name}
	}
	return e.typ, nil
}

// NameOf returns the name typ was registered under.
func (r *Registry[C]) NameOf(typ reflect.Type) (string, bool) {
	e, ok := r.get(typ)
	if !ok {
		return "", false
	}
	return e.name, true
}

// Names returns the registered type names in sorted order.
func (r *Registry[C]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	for n := range r.byName {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Types returns the registered types ordered by their names.
func (r *Registry[C]) Types() []reflect.Type {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]reflect.Type, 0, len(names))
	for _, n := range names {
		if e, ok := r.byName[n]; ok {
			types = append(types, e.typ)
		}
	}
	return types
}
