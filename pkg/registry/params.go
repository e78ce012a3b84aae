// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"maps"
	"slices"
	"strings"

	"tailscale.com/util/mak"
)

// Well-known parameter keys understood by the standard factories.
const (
	ParamMin        = "min"
	ParamMax        = "max"
	ParamChoices    = "choices"
	ParamMode       = "mode"
	ParamConstraint = "constraint"
)

// Params carries string parameters to a parser factory. The zero value is
// empty and ready to use. Params is immutable; With returns a modified copy.
type Params struct {
	m map[string]string
}

// With returns a copy of p with key set to value.
func (p Params) With(key, value string) Params {
	m := maps.Clone(p.m)
	mak.Set(&m, key, value)
	return Params{m: m}
}

// Get returns the value of key.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.m[key]
	return v, ok
}

// Has reports whether key is set.
func (p Params) Has(key string) bool {
	_, ok := p.m[key]
	return ok
}

// Keys returns the set keys in sorted order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p.m))
}

// List splits a comma separated value, trimming space around each item and
// dropping empty ones.
func (p Params) List(key string) []string {
	v, ok := p.m[key]
	if !ok {
		return nil
	}
	var out []string
	for item := range strings.SplitSeq(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (p Params) String() string {
	var sb strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p.m[k])
	}
	return sb.String()
}
