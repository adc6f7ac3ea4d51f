// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package list

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Lexer747/acci-theme/gui/themes"
	"github.com/Lexer747/acci-theme/terminal/ansi"
	"github.com/Lexer747/acci-theme/utils/application"
	"github.com/Lexer747/acci-theme/utils/check"
	"github.com/Lexer747/acci-theme/utils/errors"
	"github.com/Lexer747/acci-theme/utils/sliceutils"
)

type Config struct {
	all       *bool
	dark      *bool
	light     *bool
	logFile   *string
	themesDir *string

	// Colour enables 24-bit swatches in the output.
	Colour bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("list", flag.ContinueOnError)
	ret := &Config{
		all:     f.Bool("all", false, "include hidden themes"),
		dark:    f.Bool("dark", false, "only list themes with a dark background"),
		light:   f.Bool("light", false, "only list themes with a light background"),
		logFile: f.String("l", "", "write logs to `file`. (default no logs written)"),
		themesDir: f.String("themes", "", "a `directory` of extra theme json files."+
			" Defaults to the ACCI_THEME_DIR environment variable"),
		FlagSet: f,
	}
	f.Usage = func() {
		fmt.Fprintf(f.Output(), "Usage of %s list: describes every known theme and its palette\n"+
			"\t list [options]\n", os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunList(c *Config, w io.Writer) error {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()

	if *c.dark && *c.light {
		return errors.New("-dark and -light can't be used together")
	}
	registry, err := application.LoadRegistry(application.ThemeDir(*c.themesDir))
	if err != nil {
		return err
	}
	names := sliceutils.Filter(registry.Names(*c.all), func(name string) bool {
		t, _ := registry.Lookup(name)
		switch {
		case *c.dark:
			return t.IsDark()
		case *c.light:
			return !t.IsDark()
		}
		return true
	})
	header := fmt.Sprintf("%d themes, default %q:", len(names), themes.DefaultThemeName)
	if c.Colour {
		header = ansi.Cyan(header)
	}
	lines := append([]string{header}, themes.Describe(names, registry, c.Colour)...)
	if _, err := fmt.Fprintln(w, strings.Join(lines, "\n")); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}
