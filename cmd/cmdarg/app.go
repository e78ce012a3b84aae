// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/shayne/yargs"
	"github.com/yeetrun/cmdarg/pkg/command"
	"github.com/yeetrun/cmdarg/pkg/manifest"
	"github.com/yeetrun/cmdarg/pkg/meta"
	"github.com/yeetrun/cmdarg/pkg/registry"
)

// session is the invocation context handed to every parser.
type session struct {
	User string
	Dir  string
}

func currentSession() session {
	dir, _ := os.Getwd()
	return session{User: os.Getenv("USER"), Dir: dir}
}

type app struct {
	out  io.Writer
	errw io.Writer
	sess session
	reg  *registry.Registry[session]
	mgr  *command.Manager[session]
}

func (a *app) load(path string) error {
	f, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if err := manifest.Register(f, a.reg, a.mgr); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (a *app) handlers() map[string]yargs.SubcommandHandler {
	return map[string]yargs.SubcommandHandler{
		"list":     a.handleList,
		"run":      a.handleRun,
		"complete": a.handleComplete,
		"types":    a.handleTypes,
	}
}

// stripCommand drops the subcommand name (or one of its aliases) and the
// first "--". Tokens after "--" may start with a dash.
func stripCommand(args []string, names ...string) []string {
	if len(args) > 0 && slices.Contains(names, args[0]) {
		args = args[1:]
	}
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		out = append(out, arg)
	}
	return out
}

type listFlagsParsed struct {
	All bool `flag:"all" help:"Include hidden commands"`
}

func (a *app) handleList(_ context.Context, args []string) error {
	result, err := yargs.ParseFlags[listFlagsParsed](stripCommand(args, "list"))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	defer w.Flush()
	for _, cmd := range a.mgr.List() {
		m := cmd.Meta()
		if m.Bool(meta.Hidden) && !result.Flags.All {
			continue
		}
		name := cmd.Name()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			name += " (" + strings.Join(aliases, ", ") + ")"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, cmd.Usage(), m.GetOrDefault(meta.Description, "-"))
	}
	return nil
}

func (a *app) handleRun(_ context.Context, args []string) error {
	line := stripCommand(args, "run", "exec")
	if len(line) == 0 {
		return errors.New("missing command argument")
	}
	v, err := a.mgr.Execute(a.sess, line)
	if err != nil {
		return err
	}
	return writeValues(a.out, v)
}

func (a *app) handleComplete(_ context.Context, args []string) error {
	line := stripCommand(args, "complete")
	for _, s := range a.mgr.Suggest(a.sess, strings.Join(line, " ")) {
		fmt.Fprintln(a.out, s)
	}
	return nil
}

func (a *app) handleTypes(context.Context, []string) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	defer w.Flush()
	types := a.reg.Types()
	for i, name := range a.reg.Names() {
		fmt.Fprintf(w, "%s\t%v\n", name, types[i])
	}
	return nil
}
