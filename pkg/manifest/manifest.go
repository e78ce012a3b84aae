// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package manifest loads declarative command definitions from TOML or YAML
// and builds them into commands through a parser registry.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DefaultNames are the file names Find looks for, in order.
var DefaultNames = []string{"cmdarg.toml", "cmdarg.yaml", "cmdarg.yml"}

const currentVersion = 1

// Format is a manifest encoding.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%s: unknown manifest format (want .toml, .yaml or .yml)", path)
}

// File is a decoded manifest.
type File struct {
	Version  int       `toml:"version,omitempty" yaml:"version,omitempty"`
	Commands []Command `toml:"commands" yaml:"commands"`
}

// Command declares one command.
type Command struct {
	Name        string     `toml:"name" yaml:"name"`
	Aliases     []string   `toml:"aliases,omitempty" yaml:"aliases,omitempty"`
	Description string     `toml:"description,omitempty" yaml:"description,omitempty"`
	Hidden      bool       `toml:"hidden,omitempty" yaml:"hidden,omitempty"`
	Arguments   []Argument `toml:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Argument declares one argument. Type names a registry entry; Components
// makes it a compound of two or three values and leaves Type empty or
// "compound".
//
// Min, Max and Default may be written as numbers or strings.
type Argument struct {
	Name       string      `toml:"name" yaml:"name"`
	Type       string      `toml:"type,omitempty" yaml:"type,omitempty"`
	Required   *bool       `toml:"required,omitempty" yaml:"required,omitempty"`
	Default    any         `toml:"default,omitempty" yaml:"default,omitempty"`
	Min        any         `toml:"min,omitempty" yaml:"min,omitempty"`
	Max        any         `toml:"max,omitempty" yaml:"max,omitempty"`
	Choices    []string    `toml:"choices,omitempty" yaml:"choices,omitempty"`
	Mode       string      `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Constraint string      `toml:"constraint,omitempty" yaml:"constraint,omitempty"`
	Components []Component `toml:"components,omitempty" yaml:"components,omitempty"`
}

// Component is one value of a compound argument.
type Component struct {
	Name       string   `toml:"name" yaml:"name"`
	Type       string   `toml:"type" yaml:"type"`
	Min        any      `toml:"min,omitempty" yaml:"min,omitempty"`
	Max        any      `toml:"max,omitempty" yaml:"max,omitempty"`
	Choices    []string `toml:"choices,omitempty" yaml:"choices,omitempty"`
	Mode       string   `toml:"mode,omitempty" yaml:"mode,omitempty"`
	Constraint string   `toml:"constraint,omitempty" yaml:"constraint,omitempty"`
}

// Load reads and decodes the manifest at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes data. Unknown keys are an error in both formats.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case TOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown manifest format %q", format)
	}
	if f.Version == 0 {
		f.Version = currentVersion
	}
	if f.Version != currentVersion {
		return nil, fmt.Errorf("unsupported manifest version %d", f.Version)
	}
	return &f, nil
}

// Find walks up from startDir looking for one of DefaultNames. It returns
// an error wrapping os.ErrNotExist when none is found.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		for _, name := range DefaultNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !os.IsNotExist(err) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("no manifest found above %s: %w", startDir, os.ErrNotExist)
}
