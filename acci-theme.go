// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Lexer747/acci-theme/cmd/subcommands/inspect"
	"github.com/Lexer747/acci-theme/cmd/subcommands/list"
	"github.com/Lexer747/acci-theme/cmd/subcommands/resolve"
	"github.com/Lexer747/acci-theme/cmd/subcommands/rgba"
	"github.com/Lexer747/acci-theme/cmd/subcommands/version"
	"github.com/Lexer747/acci-theme/terminal/ansi"
	"github.com/Lexer747/acci-theme/utils/application"
	"github.com/Lexer747/acci-theme/utils/errors"
	"github.com/Lexer747/acci-theme/utils/exit"
)

// Set at build time via -ldflags "-X main.COMMIT=..."
//
//nolint:staticcheck
var (
	COMMIT          string
	GO_VERSION      string
	BRANCH          string
	BUILD_TIMESTAMP string
	TAG             string
)

const inspectString = "inspect"
const rgbaString = "rgba"
const resolveString = "resolve"
const listString = "list"
const versionString = "version"

type subcommand struct {
	subcommandName string
	description    string
}

func commandsUsage(colour bool) []subcommand {
	programName, name := "acci-theme", func(s string) string { return s }
	if colour {
		programName, name = ansi.Green(programName), ansi.Red
	}
	return []subcommand{
		{
			subcommandName: name(inspectString),
			description: programName + " " + name(inspectString) +
				" HEX...\n    prints the channels, brightness and overlay colours of each colour.",
		},
		{
			subcommandName: name(rgbaString),
			description: programName + " " + name(rgbaString) +
				" [-alpha A] HEX...\n    prints each colour as a CSS rgba() string.",
		},
		{
			subcommandName: name(resolveString),
			description: programName + " " + name(resolveString) +
				" [-theme NAME] [-fallback NAME] [-background HEX]\n    prints the theme which should be used, never failing.",
		},
		{
			subcommandName: name(listString),
			description: programName + " " + name(listString) +
				" [-all]\n    describes every known theme and its palette.",
		},
		{
			subcommandName: name(versionString),
			description:    programName + " " + name(versionString) + " prints the build information.",
		},
	}
}

func main() {
	colour := application.ColourEnabled(os.Stdout)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case inspectString:
			c := inspect.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			c.Colour = colour
			exit.OnError(inspect.RunInspect(c, os.Stdout))
			exit.Success()
		case rgbaString:
			c := rgba.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			exit.OnError(rgba.RunRGBA(c, os.Stdout))
			exit.Success()
		case resolveString:
			c := resolve.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			c.Colour = colour
			exit.OnError(resolve.RunResolve(c, os.Stdout))
			exit.Success()
		case listString:
			c := list.GetFlags()
			FlagParseError(c.Parse(os.Args[2:]))
			c.Colour = colour
			exit.OnError(list.RunList(c, os.Stdout))
			exit.Success()
		case versionString:
			c := version.GetFlags(application.MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, BUILD_TIMESTAMP, TAG))
			FlagParseError(c.Parse(os.Args[2:]))
			c.Colour = colour
			exit.OnError(version.RunVersion(c, os.Stdout))
			exit.Success()
		default:
			// fallthrough
		}
	}
	usage(colour)
	if len(os.Args) > 1 && os.Args[1] != "-h" && os.Args[1] != "--help" && os.Args[1] != "help" {
		exit.OnError(errors.Errorf("unknown subcommand %q", os.Args[1]))
	}
	exit.Success()
}

func usage(colour bool) {
	w := flag.CommandLine.Output()
	fmt.Fprint(w, "  acci-theme inspects colours and picks themes, run one of the subcommands:\n\n")
	for _, cmd := range commandsUsage(colour) {
		fmt.Fprint(w, "  "+cmd.subcommandName+"\n")
		fmt.Fprint(w, "      "+cmd.description+"\n")
	}
	fmt.Fprintf(w, "call any of the above subcommands with --help for extra details on those commands.\n")
}

func FlagParseError(err error) {
	if errors.Is(err, flag.ErrHelp) {
		exit.Silent()
	} else {
		exit.OnError(err)
	}
}
