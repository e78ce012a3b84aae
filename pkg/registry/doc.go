// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry resolves an output type to a parser for it.
//
// Factories are registered per Go type under a short name ("long", "uuid",
// "semver" and so on) and receive Params such as min, max, choices and mode.
// New pre-registers the standard parsers:
//
//	long int64        int int32       short int16    byte int8
//	double float64    float float32   string         bool
//	uuid              digest          semver         duration
//
// Lookups happen while arguments are being built. A miss is reported as a
// *NoParserError wrapping ErrNoParser at that point and never shows up as a
// parse failure.
package registry
