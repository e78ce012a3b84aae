// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meta holds string metadata attached to commands.
package meta

import (
	"maps"
	"slices"
	"strconv"

	"tailscale.com/util/mak"
)

// Well-known keys.
const (
	Description = "description"
	Hidden      = "hidden"
)

// Meta is an immutable set of key/value pairs. The zero value is empty.
type Meta struct {
	m map[string]string
}

// Get returns the value for key.
func (m Meta) Get(key string) (string, bool) {
	v, ok := m.m[key]
	return v, ok
}

// GetOrDefault returns the value for key, or def if it is unset.
func (m Meta) GetOrDefault(key, def string) string {
	if v, ok := m.m[key]; ok {
		return v
	}
	return def
}

// Bool reports whether key holds a true value as understood by
// strconv.ParseBool.
func (m Meta) Bool(key string) bool {
	b, _ := strconv.ParseBool(m.m[key])
	return b
}

// All returns a copy of every pair.
func (m Meta) All() map[string]string {
	if m.m == nil {
		return map[string]string{}
	}
	return maps.Clone(m.m)
}

// Keys returns the keys in sorted order.
func (m Meta) Keys() []string {
	return slices.Sorted(maps.Keys(m.m))
}

func (m Meta) Len() int { return len(m.m) }

// Builder accumulates pairs for a Meta.
type Builder struct {
	m map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// From returns a Builder seeded with the pairs of m.
func From(m Meta) *Builder { return &Builder{m: maps.Clone(m.m)} }

// With sets key to value, replacing any earlier value.
func (b *Builder) With(key, value string) *Builder {
	mak.Set(&b.m, key, value)
	return b
}

// Build returns the Meta. Later changes to b do not affect it.
func (b *Builder) Build() Meta {
	return Meta{m: maps.Clone(b.m)}
}
