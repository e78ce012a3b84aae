// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/yeetrun/cmdarg/pkg/argparse"
	"github.com/yeetrun/cmdarg/pkg/meta"
	"tailscale.com/types/logger"
	"tailscale.com/util/mak"
)

// Manager dispatches token lines to registered commands by name or alias.
// It is safe for concurrent use.
type Manager[C any] struct {
	logf logger.Logf

	mu       sync.RWMutex
	commands map[string]*Command[C] // primary name -> command
	lookup   map[string]*Command[C] // name and aliases -> command
}

// NewManager returns an empty Manager. A nil logf discards logs.
func NewManager[C any](logf logger.Logf) *Manager[C] {
	if logf == nil {
		logf = logger.Discard
	}
	return &Manager[C]{logf: logf}
}

// Register adds cmd. It fails if its name or any alias is already taken.
func (m *Manager[C]) Register(cmd *Command[C]) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range append([]string{cmd.name}, cmd.aliases...) {
		if other, ok := m.lookup[n]; ok {
			return fmt.Errorf("registering %q: %q is used by %q: %w", cmd.name, n, other.name, ErrDuplicate)
		}
	}
	mak.Set(&m.commands, cmd.name, cmd)
	mak.Set(&m.lookup, cmd.name, cmd)
	for _, a := range cmd.aliases {
		mak.Set(&m.lookup, a, cmd)
	}
	m.logf("command: registered %s", cmd.Usage())
	return nil
}

// Unregister removes the command with the given primary name.
func (m *Manager[C]) Unregister(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd, ok := m.commands[name]
	if !ok {
		return false
	}
	delete(m.commands, name)
	delete(m.lookup, name)
	for _, a := range cmd.aliases {
		delete(m.lookup, a)
	}
	m.logf("command: unregistered %s", name)
	return true
}

// Get returns the command registered under name or alias.
func (m *Manager[C]) Get(name string) (*Command[C], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cmd, ok := m.lookup[name]
	return cmd, ok
}

// List returns the registered commands sorted by name.
func (m *Manager[C]) List() []*Command[C] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Command[C], 0, len(m.commands))
	for _, c := range m.commands {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *Command[C]) int { return strings.Compare(a.name, b.name) })
	return out
}

// Execute runs the command named by the first token with the rest.
func (m *Manager[C]) Execute(ctx C, line []string) (*Values, error) {
	if len(line) == 0 {
		return nil, &UnknownCommandError{}
	}
	cmd, ok := m.Get(line[0])
	if !ok {
		return nil, &UnknownCommandError{Name: line[0]}
	}
	v, err := cmd.Execute(ctx, line[1:])
	if err != nil {
		m.logf("command: %s failed: %v", cmd.name, err)
	}
	return v, err
}

// Suggest completes the last token of input. While the command name is
// being typed the visible names and aliases are offered.
func (m *Manager[C]) Suggest(ctx C, input string) []string {
	complete, partial := argparse.SplitPartial(input)
	if len(complete) == 0 {
		return m.suggestNames(partial)
	}
	cmd, ok := m.Get(complete[0])
	if !ok {
		return nil
	}
	return cmd.Suggest(ctx, strings.Join(append(complete[1:], partial), " "))
}

func (m *Manager[C]) suggestNames(prefix string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for n, cmd := range m.lookup {
		if cmd.meta.Bool(meta.Hidden) {
			continue
		}
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}
