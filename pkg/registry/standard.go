// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"
	"github.com/yeetrun/cmdarg/pkg/argparse"
	"github.com/yeetrun/cmdarg/pkg/parsers"
)

func registerStandard[C any](r *Registry[C]) {
	Register(r, "long", numberFactory[C, int64])
	Register(r, "int", numberFactory[C, int32])
	Register(r, "short", numberFactory[C, int16])
	Register(r, "byte", numberFactory[C, int8])
	Register(r, "double", numberFactory[C, float64])
	Register(r, "float", numberFactory[C, float32])
	Register(r, "string", stringFactory[C])
	Register(r, "bool", boolFactory[C])
	Register(r, "uuid", func(Params) (argparse.Parser[C, uuid.UUID], error) {
		return parsers.NewUUID[C](), nil
	})
	Register(r, "digest", func(Params) (argparse.Parser[C, digest.Digest], error) {
		return parsers.NewDigest[C](), nil
	})
	Register(r, "semver", func(p Params) (argparse.Parser[C, *semver.Version], error) {
		constraint, _ := p.Get(ParamConstraint)
		sp, err := parsers.NewSemver[C](constraint)
		if err != nil {
			return nil, err
		}
		return sp, nil
	})
	Register(r, "duration", func(Params) (argparse.Parser[C, time.Duration], error) {
		return parsers.NewDuration[C](), nil
	})
}

// numberFactory honours the min and max params; an absent bound falls back
// to the type sentinel.
func numberFactory[C any, N argparse.Number](p Params) (argparse.Parser[C, N], error) {
	lo, hi := argparse.MinOf[N](), argparse.MaxOf[N]()
	if s, ok := p.Get(ParamMin); ok {
		v, ok := argparse.ParseNumber[N](s)
		if !ok {
			return nil, fmt.Errorf("invalid %s %q", ParamMin, s)
		}
		lo = v
	}
	if s, ok := p.Get(ParamMax); ok {
		v, ok := argparse.ParseNumber[N](s)
		if !ok {
			return nil, fmt.Errorf("invalid %s %q", ParamMax, s)
		}
		hi = v
	}
	return argparse.NewNumberParser[C](lo, hi), nil
}

// stringFactory yields a Choice parser when choices are given and a String
// parser in the requested mode otherwise.
func stringFactory[C any](p Params) (argparse.Parser[C, string], error) {
	if choices := p.List(ParamChoices); len(choices) > 0 {
		mode, _ := p.Get(ParamMode)
		switch mode {
		case "", "insensitive":
			return parsers.NewChoice[C](false, choices...), nil
		case "sensitive":
			return parsers.NewChoice[C](true, choices...), nil
		}
		return nil, fmt.Errorf("unknown choice mode %q (want sensitive or insensitive)", mode)
	}
	mode, _ := p.Get(ParamMode)
	m, err := parsers.ParseStringMode(mode)
	if err != nil {
		return nil, err
	}
	return parsers.NewString[C](m), nil
}

func boolFactory[C any](p Params) (argparse.Parser[C, bool], error) {
	switch mode, _ := p.Get(ParamMode); mode {
	case "", "strict":
		return parsers.NewBool[C](false), nil
	case "liberal":
		return parsers.NewBool[C](true), nil
	default:
		return nil, fmt.Errorf("unknown bool mode %q (want strict or liberal)", mode)
	}
}
