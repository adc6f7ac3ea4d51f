// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package resolve

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Lexer747/acci-theme/gui/themes"
	"github.com/Lexer747/acci-theme/utils/application"
	"github.com/Lexer747/acci-theme/utils/check"
	"github.com/Lexer747/acci-theme/utils/env"
	"github.com/Lexer747/acci-theme/utils/errors"
)

type Config struct {
	background *string
	describe   *bool
	fallback   *string
	logFile    *string
	theme      *string
	themesDir  *string

	// Colour enables 24-bit swatches in the output.
	Colour bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("resolve", flag.ContinueOnError)
	ret := &Config{
		background: f.String("background", "", "the terminal background `colour`, when -fallback isn't given picks a"+
			" light or dark default to match it"),
		describe: f.Bool("describe", false, "print the palette of the resolved theme as well as its name"),
		fallback: f.String("fallback", "", "the theme `name` to use if -theme isn't a known theme"),
		logFile:  f.String("l", "", "write logs to `file`. (default no logs written)"),
		theme: f.String("theme", env.ACCI_THEME(), "the preferred theme `name`, names are case sensitive."+
			" Defaults to the ACCI_THEME environment variable"),
		themesDir: f.String("themes", "", "a `directory` of extra theme json files."+
			" Defaults to the ACCI_THEME_DIR environment variable"),
		FlagSet: f,
	}
	f.Usage = func() {
		fmt.Fprintf(f.Output(), "Usage of %s resolve: prints the name of the theme which should be used, falling back to %q\n"+
			"\t resolve [options]\n\n"+
			"e.g. %s resolve -theme Dracula -fallback GitHub\n", os.Args[0], themes.DefaultThemeName, os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunResolve(c *Config, w io.Writer) error {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()

	registry, err := application.LoadRegistry(application.ThemeDir(*c.themesDir))
	if err != nil {
		return err
	}
	fallback := c.fallback
	if *fallback == "" && *c.background != "" {
		fallback = new(string)
		*fallback = themes.DefaultFor(*c.background)
		slog.Debug("fallback from background", "background", *c.background, "fallback", *fallback)
	}
	name := themes.SafeThemeName(c.theme, fallback, registry)
	if name != *c.theme {
		slog.Info("preferred theme not used", "theme", *c.theme, "fallback", *fallback, "resolved", name)
	}
	if _, err := fmt.Fprintln(w, name); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	if !*c.describe {
		return nil
	}
	for _, line := range themes.Describe([]string{name}, registry, c.Colour) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}
