// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package manifest

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/yeetrun/cmdarg/pkg/argparse"
	"github.com/yeetrun/cmdarg/pkg/argument"
	"github.com/yeetrun/cmdarg/pkg/command"
	"github.com/yeetrun/cmdarg/pkg/meta"
	"github.com/yeetrun/cmdarg/pkg/registry"
	"github.com/yeetrun/cmdarg/pkg/tuple"
)

// Commands builds every command in f. Registry misses and malformed
// entries are reported here, naming the command and argument.
func Commands[C any](f *File, reg *registry.Registry[C]) ([]*command.Command[C], error) {
	out := make([]*command.Command[C], 0, len(f.Commands))
	for i, c := range f.Commands {
		cmd, err := buildCommand(reg, c)
		if err != nil {
			if c.Name == "" {
				return nil, fmt.Errorf("command #%d: %w", i, err)
			}
			return nil, fmt.Errorf("command %q: %w", c.Name, err)
		}
		out = append(out, cmd)
	}
	return out, nil
}

// Register builds every command in f and adds it to m.
func Register[C any](f *File, reg *registry.Registry[C], m *command.Manager[C]) error {
	cmds, err := Commands(f, reg)
	if err != nil {
		return err
	}
	for _, c := range cmds {
		if err := m.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func buildCommand[C any](reg *registry.Registry[C], c Command) (*command.Command[C], error) {
	b := command.New[C](c.Name).Alias(c.Aliases...)
	if c.Description != "" {
		b.Description(c.Description)
	}
	if c.Hidden {
		b.Meta(meta.Hidden, "true")
	}
	for _, a := range c.Arguments {
		def, err := buildArgument(reg, a)
		if err != nil {
			if a.Name == "" {
				return nil, err
			}
			return nil, fmt.Errorf("argument %q: %w", a.Name, err)
		}
		b.Argument(def)
	}
	return b.Build()
}

func buildArgument[C any](reg *registry.Registry[C], a Argument) (argument.Definition[C], error) {
	if a.Name == "" {
		return nil, fmt.Errorf("argument without a name")
	}
	var (
		typ    reflect.Type
		parser argparse.Parser[C, any]
		err    error
	)
	if len(a.Components) > 0 {
		if a.Type != "" && a.Type != "compound" {
			return nil, fmt.Errorf("type %q cannot have components", a.Type)
		}
		typ = reflect.TypeFor[map[string]any]()
		parser, err = compoundParser(reg, a.Components)
	} else {
		var params registry.Params
		params, err = paramsOf(a.Min, a.Max, a.Choices, a.Mode, a.Constraint)
		if err != nil {
			return nil, err
		}
		typ, err = reg.TypeByName(a.Type)
		if err != nil {
			return nil, err
		}
		parser, err = reg.LookupType(typ, params)
	}
	if err != nil {
		return nil, err
	}

	b := argument.OfType(a.Name, typ, parser)
	def, err := scalar(a.Default)
	if err != nil {
		return nil, fmt.Errorf("default: %w", err)
	}
	switch {
	case def != "" && a.Required != nil && *a.Required:
		return nil, fmt.Errorf("required argument cannot have a default")
	case def != "":
		b.AsOptionalWithDefault(def)
	case a.Required != nil && !*a.Required:
		b.AsOptional()
	}
	return b.Build(), nil
}

func compoundParser[C any](reg *registry.Registry[C], comps []Component) (argparse.Parser[C, any], error) {
	parsers := make([]argparse.Parser[C, any], len(comps))
	names := make([]string, len(comps))
	for i, c := range comps {
		if c.Name == "" {
			return nil, fmt.Errorf("component #%d without a name", i)
		}
		params, err := paramsOf(c.Min, c.Max, c.Choices, c.Mode, c.Constraint)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", c.Name, err)
		}
		typ, err := reg.TypeByName(c.Type)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", c.Name, err)
		}
		if parsers[i], err = reg.LookupType(typ, params); err != nil {
			return nil, fmt.Errorf("component %q: %w", c.Name, err)
		}
		names[i] = c.Name
	}
	switch len(comps) {
	case 2:
		return argparse.Erase[C, map[string]any](argparse.NewCompound2([2]string(names), parsers[0], parsers[1],
			func(p tuple.Pair[any, any]) map[string]any {
				return map[string]any{names[0]: p.First, names[1]: p.Second}
			})), nil
	case 3:
		return argparse.Erase[C, map[string]any](argparse.NewCompound3([3]string(names), parsers[0], parsers[1], parsers[2],
			func(t tuple.Triplet[any, any, any]) map[string]any {
				return map[string]any{names[0]: t.First, names[1]: t.Second, names[2]: t.Third}
			})), nil
	}
	return nil, fmt.Errorf("compound arguments take 2 or 3 components, not %d", len(comps))
}

func paramsOf(min, max any, choices []string, mode, constraint string) (registry.Params, error) {
	var p registry.Params
	for _, kv := range []struct {
		key string
		v   any
	}{{registry.ParamMin, min}, {registry.ParamMax, max}} {
		s, err := scalar(kv.v)
		if err != nil {
			return p, fmt.Errorf("%s: %w", kv.key, err)
		}
		if s != "" {
			p = p.With(kv.key, s)
		}
	}
	if len(choices) > 0 {
		p = p.With(registry.ParamChoices, strings.Join(choices, ","))
	}
	if mode != "" {
		p = p.With(registry.ParamMode, mode)
	}
	if constraint != "" {
		p = p.With(registry.ParamConstraint, constraint)
	}
	return p, nil
}

// scalar renders a decoded TOML or YAML scalar the way a user would type it.
func scalar(v any) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return "", fmt.Errorf("want a scalar, got %T", v)
}
