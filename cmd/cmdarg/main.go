// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The cmdarg command runs commands declared in a manifest file against
// tokens given on the command line.
//
//	cmdarg list
//	cmdarg run tp 1 64 -- -3
//	cmdarg complete tp 1 ""
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/cmdarg/pkg/command"
	"github.com/yeetrun/cmdarg/pkg/manifest"
	"github.com/yeetrun/cmdarg/pkg/registry"
	"golang.org/x/term"
	"tailscale.com/types/logger"
	"tailscale.com/util/must"
)

type globalFlagsParsed struct {
	Manifest string `flag:"manifest" help:"Manifest file (default: nearest cmdarg.toml or cmdarg.yaml)"`
	Verbose  bool   `flag:"verbose" short:"v" help:"Log registry and dispatch activity"`
	NoColor  bool   `flag:"no-color" help:"Disable colored output"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

func main() {
	log.SetFlags(0)
	flags, remaining, err := parseGlobalFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	color.NoColor = !colorEnabled(flags.NoColor, term.IsTerminal(int(os.Stderr.Fd())), os.Getenv)
	var logf logger.Logf = logger.Discard
	if flags.Verbose {
		logf = log.Printf
	}

	a := &app{
		out:  os.Stdout,
		errw: os.Stderr,
		sess: currentSession(),
		reg:  registry.New[session](logf),
		mgr:  command.NewManager[session](logf),
	}
	if needsManifest(remaining) {
		path := flags.Manifest
		if path == "" {
			path, err = manifest.Find(must.Get(os.Getwd()))
			if err != nil {
				printError(os.Stderr, fmt.Errorf("%w (use --manifest)", err))
				os.Exit(1)
			}
		}
		if err := a.load(path); err != nil {
			printError(os.Stderr, err)
			os.Exit(1)
		}
	}

	if err := yargs.RunSubcommands(context.Background(), remaining, buildHelpConfig(), globalFlagsParsed{}, a.handlers()); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// needsManifest reports whether the subcommand in args reads commands.
func needsManifest(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "list", "run", "complete":
			return true
		case "types":
			return false
		}
	}
	return false
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "cmdarg",
			Description: "Parse and complete command arguments declared in a manifest.",
			Examples: []string{
				"cmdarg list",
				"cmdarg run tp 1 64 -- -3",
				`cmdarg complete tp 1 ""`,
				"cmdarg --manifest ./commands.yaml run give apple 2",
			},
		},
		SubCommands: map[string]yargs.SubCommandInfo{
			"list": {
				Name:        "list",
				Description: "List the commands in the manifest",
				Usage:       "[--all]",
			},
			"run": {
				Name:        "run",
				Description: "Parse tokens against a command and print the values as YAML",
				Usage:       "COMMAND [TOKENS...] [-- TOKENS...]",
				Aliases:     []string{"exec"},
			},
			"complete": {
				Name:        "complete",
				Description: "Print suggestions for the last token, one per line",
				Usage:       "COMMAND [TOKENS...] PARTIAL",
			},
			"types": {
				Name:        "types",
				Description: "List the argument types a manifest may use",
			},
		},
	}
}
