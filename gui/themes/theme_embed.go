// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	_ "embed"
	"encoding/json"
	"maps"
	"strings"

	"github.com/Lexer747/acci-theme/terminal/ansi"
	"github.com/Lexer747/acci-theme/utils/check"
	"github.com/Lexer747/acci-theme/utils/errors"
	"github.com/Lexer747/acci-theme/utils/sliceutils"
)

// ParseThemeFromJSON takes bytes (from a file) and returns a theme if one could be parsed or error.
func ParseThemeFromJSON(data []byte) (Theme, error) {
	t := Theme{}
	err := json.Unmarshal(data, &t)
	if err != nil {
		return Theme{}, errors.Wrap(err, "failed to parse theme")
	}
	if err := t.validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// validate checks the parts of a theme the json decoder can't, the json may have unmarshaled "ok" but
// contain bogus colours in which case we get a descriptive error here about each of them.
func (t Theme) validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("Couldn't parse theme, missing name")
	}
	errs := []error{}
	for _, c := range t.Colours.all() {
		_, err := ParseHexStrict(c.value)
		errs = append(errs, errors.Wrap(err, c.key))
	}
	if err := errors.Join(errs...); err != nil {
		return errors.Wrapf(err, "Couldn't parse theme %q, colours had errors", t.Name)
	}
	return nil
}

// BuiltIns returns a copy of the registry of themes compiled into the program, it always contains
// [DefaultThemeName]. The copy is the callers to modify.
func BuiltIns() Themes {
	return maps.Clone(builtIns)
}

var builtIns = Themes{}

func embedTheme(data []byte) Theme {
	theme, err := ParseThemeFromJSON(data)
	check.NoErr(err, "compile time theme failed")
	_, duplicate := builtIns[theme.Name]
	check.Checkf(!duplicate, "compile time theme %q defined twice", theme.Name)
	builtIns[theme.Name] = theme
	return theme
}

//go:embed builtins/chrome-default.json
var chromeDefaultBytes []byte
var ChromeDefault = embedTheme(chromeDefaultBytes)

//go:embed builtins/chrome-dark.json
var chromeDarkBytes []byte
var ChromeDark = embedTheme(chromeDarkBytes)

//go:embed builtins/firefox-dark.json
var firefoxDarkBytes []byte
var FirefoxDark = embedTheme(firefoxDarkBytes)

//go:embed builtins/firefox-light.json
var firefoxLightBytes []byte
var FirefoxLight = embedTheme(firefoxLightBytes)

//go:embed builtins/dracula.json
var draculaBytes []byte
var Dracula = embedTheme(draculaBytes)

//go:embed builtins/github.json
var githubBytes []byte
var GitHub = embedTheme(githubBytes)

// Describe gives a slice of strings, where each string represents the named theme from the registry and
// it's colour palette. Names which aren't in the registry are skipped. When colour is false no ansi escapes
// are written and the palette is listed as hex values instead.
func Describe(names []string, registry Themes, colour bool) []string {
	found := []Theme{}
	for _, name := range names {
		if theme, ok := registry.Lookup(name); ok {
			found = append(found, theme)
		}
	}
	return sliceutils.Map(found, func(t Theme) string {
		kind := "light"
		if t.IsDark() {
			kind = "dark"
		}
		title := t.Name
		if colour {
			title = ansi.Bold(title)
		}
		return "\t- " + title + " (" + t.DisplayName + ", " + kind + ") |" +
			" Background:" + swatch(t.Colours.Base00, colour) +
			" Foreground:" + swatch(t.Colours.Base05, colour) +
			" Special:" + swatch(t.Colours.Special00, colour) +
			swatch(t.Colours.Special03, colour) +
			swatch(t.Colours.Special05, colour) +
			" Selection:" + swatch(t.Colours.State00, colour) +
			" Error:" + swatch(t.Colours.State06, colour)
	})
}

func swatch(hex string, colour bool) string {
	if !colour {
		return hex
	}
	r, g, b := ParseHexToRGB(hex).Uint8()
	return ansi.TrueColour(ansi.Block, r, g, b)
}
