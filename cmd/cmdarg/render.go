// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/yeetrun/cmdarg/pkg/command"
	"gopkg.in/yaml.v3"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	hintLabel  = color.New(color.FgYellow)
)

// colorEnabled reports whether stderr output should be colored. NO_COLOR
// and a dumb or unset TERM turn color off.
func colorEnabled(disabled, tty bool, getenv func(string) string) bool {
	if disabled || !tty || getenv("NO_COLOR") != "" {
		return false
	}
	term := getenv("TERM")
	return term != "" && term != "dumb"
}

// printError writes err for a user. Argument failures are described by
// command.Describe; the raw error follows as a hint.
func printError(w io.Writer, err error) {
	if err == nil {
		return
	}
	errorLabel.Fprint(w, "error: ")
	msg := command.Describe(err)
	fmt.Fprintln(w, msg)
	if raw := err.Error(); raw != msg {
		hintLabel.Fprint(w, "  detail: ")
		fmt.Fprintln(w, raw)
	}
}

// writeValues prints v as a YAML mapping in argument order. Values with a
// String method are printed as that string.
func writeValues(w io.Writer, v *command.Values) error {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range v.Names() {
		x, _ := v.Value(name)
		if s, ok := x.(fmt.Stringer); ok {
			x = s.String()
		}
		var val yaml.Node
		if err := val.Encode(x); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, &val)
	}
	if len(doc.Content) == 0 {
		doc.Style = yaml.FlowStyle
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
