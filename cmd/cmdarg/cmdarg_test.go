// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/yeetrun/cmdarg/pkg/command"
	"github.com/yeetrun/cmdarg/pkg/registry"
)

const testManifest = `
commands:
  - name: tp
    aliases: [teleport]
    description: move to a position
    arguments:
      - name: pos
        components:
          - {name: x, type: double}
          - {name: y, type: double, min: 0, max: 255}
      - name: delay
        type: int
        min: 0
        max: 60
        default: 5
  - name: give
    arguments:
      - {name: item, type: string, choices: [apple, axe, bread]}
      - {name: count, type: int, min: 1, max: 3, required: false}
  - name: debug
    hidden: true
`

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cmdarg.yaml")
	if err := os.WriteFile(path, []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	a := &app{
		out:  &out,
		errw: &out,
		sess: session{User: "test"},
		reg:  registry.New[session](t.Logf),
		mgr:  command.NewManager[session](t.Logf),
	}
	if err := a.load(path); err != nil {
		t.Fatal(err)
	}
	return a, &out
}

func TestHandleRun(t *testing.T) {
	a, out := newTestApp(t)
	if err := a.handleRun(context.Background(), []string{"run", "teleport", "1.5", "7.25"}); err != nil {
		t.Fatal(err)
	}
	want := "pos:\n  x: 1.5\n  y: 7.25\ndelay: 5\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	out.Reset()
	err := a.handleRun(context.Background(), []string{"run", "--", "tp", "-3", "300"})
	if err == nil {
		t.Fatal("run accepted y out of range")
	}
	var aerr *command.ArgumentError
	if !errors.As(err, &aerr) || aerr.Argument != "pos" {
		t.Errorf("err = %v", err)
	}

	if err := a.handleRun(context.Background(), []string{"run"}); err == nil {
		t.Error("run without a command succeeded")
	}
}

func TestHandleComplete(t *testing.T) {
	a, out := newTestApp(t)
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"complete", "g"}, []string{"give"}},
		{[]string{"complete", "give", "a"}, []string{"apple", "axe"}},
		{[]string{"complete", "give", "axe", ""}, []string{"1", "2", "3"}},
		{[]string{"complete", "de"}, nil},
	}
	for _, tt := range tests {
		out.Reset()
		if err := a.handleComplete(context.Background(), tt.args); err != nil {
			t.Fatal(err)
		}
		got := strings.Fields(out.String())
		if !reflect.DeepEqual(got, tt.want) && !(len(got) == 0 && len(tt.want) == 0) {
			t.Errorf("complete %q = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestHandleList(t *testing.T) {
	a, out := newTestApp(t)
	if err := a.handleList(context.Background(), []string{"list"}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("list printed %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "give") || !strings.Contains(lines[1], "tp (teleport)") {
		t.Errorf("unexpected listing:\n%s", out)
	}
	if !strings.Contains(lines[1], "move to a position") {
		t.Errorf("description missing:\n%s", out)
	}

	out.Reset()
	if err := a.handleList(context.Background(), []string{"list", "--all"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "debug") {
		t.Errorf("--all omitted hidden command:\n%s", out)
	}
}

func TestHandleTypes(t *testing.T) {
	a, out := newTestApp(t)
	if err := a.handleTypes(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"long", "semver", "uuid"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("types output lacks %s:\n%s", name, out)
		}
	}
}

func TestPrintError(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	a, _ := newTestApp(t)
	_, err := a.mgr.Execute(a.sess, []string{"give", "sword"})
	var buf bytes.Buffer
	printError(&buf, err)
	got := buf.String()
	if !strings.HasPrefix(got, `error: invalid value for item: "sword" is not one of [apple, axe, bread]`) {
		t.Errorf("printError = %q", got)
	}
	if !strings.Contains(got, "detail: give: argument \"item\"") {
		t.Errorf("printError lacks detail: %q", got)
	}
}

func TestStripCommand(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"run", "tp", "1"}, []string{"tp", "1"}},
		{[]string{"exec", "tp"}, []string{"tp"}},
		{[]string{"run", "tp", "--", "-3", "--"}, []string{"tp", "-3", "--"}},
		{[]string{"tp"}, []string{"tp"}},
	}
	for _, tt := range tests {
		if got := stripCommand(tt.args, "run", "exec"); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("stripCommand(%q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestNeedsManifest(t *testing.T) {
	if needsManifest([]string{"types"}) || needsManifest(nil) {
		t.Error("types should not need a manifest")
	}
	if !needsManifest([]string{"run", "tp"}) {
		t.Error("run needs a manifest")
	}
}

func TestColorEnabled(t *testing.T) {
	env := func(kv ...string) func(string) string {
		return func(k string) string {
			for i := 0; i+1 < len(kv); i += 2 {
				if kv[i] == k {
					return kv[i+1]
				}
			}
			return ""
		}
	}
	tests := []struct {
		name     string
		disabled bool
		tty      bool
		getenv   func(string) string
		want     bool
	}{
		{"tty", false, true, env("TERM", "xterm"), true},
		{"flag", true, true, env("TERM", "xterm"), false},
		{"pipe", false, false, env("TERM", "xterm"), false},
		{"NO_COLOR", false, true, env("TERM", "xterm", "NO_COLOR", "1"), false},
		{"dumb", false, true, env("TERM", "dumb"), false},
		{"no TERM", false, true, env(), false},
	}
	for _, tt := range tests {
		if got := colorEnabled(tt.disabled, tt.tty, tt.getenv); got != tt.want {
			t.Errorf("%s: colorEnabled = %v, want %v", tt.name, got, tt.want)
		}
	}
}
