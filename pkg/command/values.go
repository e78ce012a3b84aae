// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"slices"

	"tailscale.com/util/mak"
)

// Values holds the parsed arguments of one invocation.
type Values struct {
	names []string
	m     map[string]any
}

func (v *Values) set(name string, value any) {
	if _, ok := v.m[name]; !ok {
		v.names = append(v.names, name)
	}
	mak.Set(&v.m, name, value)
}

// Get returns the value of the named argument as a T. It reports false if
// the argument is unset or holds another type.
func Get[T any](v *Values, name string) (T, bool) {
	t, ok := v.m[name].(T)
	return t, ok
}

// Value returns the untyped value of the named argument.
func (v *Values) Value(name string) (any, bool) {
	x, ok := v.m[name]
	return x, ok
}

// Has reports whether the named argument has a value.
func (v *Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Names returns the set arguments in parse order.
func (v *Values) Names() []string { return slices.Clone(v.names) }

func (v *Values) Len() int { return len(v.names) }
