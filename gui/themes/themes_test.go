// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"

	"github.com/Lexer747/acci-theme/gui/themes"
	"github.com/Lexer747/acci-theme/terminal/ansi"
	"github.com/Lexer747/acci-theme/utils/th"
)

func TestBuiltIns(t *testing.T) {
	t.Parallel()
	builtIns := themes.BuiltIns()
	assert.DeepEqual(t, []string{"ChromeDark", "ChromeDefault", "Dracula", "FirefoxDark", "FirefoxLight", "GitHub"},
		builtIns.Names(true))
	assert.DeepEqual(t, []string{"Dracula", "FirefoxDark", "FirefoxLight", "GitHub"}, builtIns.Names(false))
	assert.Assert(t, builtIns.Has(themes.DefaultThemeName))

	for name, theme := range builtIns {
		assert.Equal(t, name, theme.Name)
		assert.NilError(t, themes.Validate(theme), name)
	}

	assert.Assert(t, !themes.ChromeDefault.IsDark())
	assert.Assert(t, themes.ChromeDark.IsDark())
	assert.Assert(t, themes.Dracula.IsDark())
	assert.Assert(t, themes.FirefoxDark.IsDark())
	assert.Assert(t, !themes.FirefoxLight.IsDark())
	assert.Assert(t, !themes.GitHub.IsDark())
}

func TestBuiltIns_AreCopies(t *testing.T) {
	t.Parallel()
	mine := themes.BuiltIns()
	delete(mine, themes.DefaultThemeName)
	mine["Extra"] = themes.Theme{Name: "Extra"}

	fresh := themes.BuiltIns()
	assert.Assert(t, fresh.Has(themes.DefaultThemeName))
	assert.Assert(t, !fresh.Has("Extra"))
	if diff := cmp.Diff(themes.ChromeDefault, fresh[themes.DefaultThemeName]); diff != "" {
		t.Fatalf("built-in changed (-want +got):\n%s", diff)
	}
}

//nolint:lll
func TestThemeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, themes.ChromeDefault.String(),
		`{name: ChromeDefault displayName: Chrome light background: #ffffff foreground: #222222}`)
	assert.Equal(t, themes.Dracula.String(),
		`{name: Dracula displayName: Dracula dark background: #282a36 foreground: #f8f8f2}`)
}

func TestThemeOverlays(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "rgba(40, 42, 54, 0.8)", themes.Dracula.Overlay())
	assert.Equal(t, "rgba(248, 248, 242, 0.65)", themes.Dracula.Shadow())
}

func draculaWith(t *testing.T, edit func(*themes.Theme)) []byte {
	t.Helper()
	theme := themes.Dracula
	edit(&theme)
	data, err := json.Marshal(theme)
	assert.NilError(t, err)
	return data
}

//nolint:lll
func TestParseThemeFromJSON(t *testing.T) {
	t.Parallel()
	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		data := draculaWith(t, func(theme *themes.Theme) { theme.Name = "Custom" })
		theme, err := themes.ParseThemeFromJSON(data)
		assert.NilError(t, err)
		assert.Equal(t, "Custom", theme.Name)
		assert.Equal(t, themes.Dracula.Colours, theme.Colours)
	})
	t.Run("bad json", func(t *testing.T) {
		t.Parallel()
		_, err := themes.ParseThemeFromJSON([]byte(`{"name": `))
		assert.Error(t, err, `failed to parse theme caused by: unexpected end of JSON input`)
	})
	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		_, err := themes.ParseThemeFromJSON(draculaWith(t, func(theme *themes.Theme) { theme.Name = " " }))
		assert.Error(t, err, `Couldn't parse theme, missing name`)
	})
	t.Run("bad colours", func(t *testing.T) {
		t.Parallel()
		data := draculaWith(t, func(theme *themes.Theme) {
			theme.Colours.Base00 = "#fff"
			theme.Colours.State06 = "#GG0000"
		})
		_, err := themes.ParseThemeFromJSON(data)
		assert.Error(t, err, `Couldn't parse theme "Dracula", colours had errors caused by: base00 caused by: Wrong number of digits for colour "#fff", should be 6 hex digits
state06 caused by: Couldn't parse RGB values for "#GG0000" caused by: red component "GG" is not a hex number`)
	})
}

func themeFile(t *testing.T, name string) string {
	t.Helper()
	return string(draculaWith(t, func(theme *themes.Theme) { theme.Name = name }))
}

func TestLoadDirectory(t *testing.T) {
	t.Parallel()
	t.Run("happy", func(t *testing.T) {
		t.Parallel()
		dir := th.WriteFiles(t, map[string]string{
			"one.json":         themeFile(t, "One"),
			"two.JSON":         themeFile(t, "Two"),
			"notes.txt":        "not a theme",
			"nested/four.json": themeFile(t, "Four"),
		})
		loaded, err := themes.LoadDirectory(dir)
		assert.NilError(t, err)
		assert.DeepEqual(t, []string{"One", "Two"}, loaded.Names(true))

		merged := themes.BuiltIns().Merge(loaded)
		assert.Equal(t, "Two", themes.SafeThemeName(ptr("Two"), nil, merged))
	})
	t.Run("duplicate", func(t *testing.T) {
		t.Parallel()
		dir := th.WriteFiles(t, map[string]string{
			"a.json": themeFile(t, "Same"),
			"b.json": themeFile(t, "Same"),
		})
		_, err := themes.LoadDirectory(dir)
		assert.Error(t, err, `theme "Same" defined twice, in "`+filepath.Join(dir, "a.json")+`" and "`+filepath.Join(dir, "b.json")+`"`)
	})
	t.Run("bad file", func(t *testing.T) {
		t.Parallel()
		dir := th.WriteFiles(t, map[string]string{"bad.json": `{`})
		_, err := themes.LoadDirectory(dir)
		assert.ErrorContains(t, err, `failed to load theme from path "`+filepath.Join(dir, "bad.json")+`"`)
	})
	t.Run("missing dir", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nope")
		_, err := themes.LoadDirectory(dir)
		assert.ErrorContains(t, err, `failed to load themes from directory "`+dir+`"`)
	})
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	registry := themes.BuiltIns()
	plain := themes.Describe([]string{"Dracula", "Missing", "GitHub"}, registry, false)
	assert.DeepEqual(t, []string{
		"\t- Dracula (Dracula, dark) | Background:#282a36 Foreground:#f8f8f2 Special:#ff79c6#50fa7b#ffb86c Selection:#44475a Error:#ff5555",
		"\t- GitHub (GitHub, light) | Background:#ffffff Foreground:#24292e Special:#d73a49#6f42c1#e36209 Selection:#0366d6 Error:#cb2431",
	}, plain)

	coloured := themes.Describe([]string{"Dracula"}, registry, true)
	assert.Equal(t, 1, len(coloured))
	assert.Assert(t, strings.Contains(coloured[0], ansi.Bold("Dracula")))
	assert.Assert(t, strings.Contains(coloured[0], "Background:"+ansi.TrueColour(ansi.Block, 0x28, 0x2a, 0x36)))
}
