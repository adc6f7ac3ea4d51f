// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes_test

import (
	"testing"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"github.com/Lexer747/acci-theme/gui/themes"
)

func ptr(s string) *string { return &s }

var testRegistry = themes.Themes{
	"Dark":          themes.Theme{Name: "Dark"},
	"Light":         themes.Theme{Name: "Light"},
	"ChromeDefault": themes.Theme{Name: "ChromeDefault"},
}

func TestSafeThemeName(t *testing.T) {
	t.Parallel()
	tests := []SafeNameTest{
		{Name: "theme wins", Theme: ptr("Dark"), Fallback: ptr("Light"), Expected: "Dark"},
		{Name: "theme wins over missing fallback", Theme: ptr("Dark"), Fallback: ptr("Nope"), Expected: "Dark"},
		{Name: "nil theme", Theme: nil, Fallback: ptr("Light"), Expected: "Light"},
		{Name: "empty theme", Theme: ptr(""), Fallback: ptr("Light"), Expected: "Light"},
		{Name: "unknown theme", Theme: ptr("Unknown"), Fallback: ptr("Light"), Expected: "Light"},
		{Name: "nil fallback missing", Theme: nil, Fallback: ptr("Missing"), Expected: "ChromeDefault"},
		{Name: "both nil", Theme: nil, Fallback: nil, Expected: "ChromeDefault"},
		{Name: "both empty", Theme: ptr(""), Fallback: ptr(""), Expected: "ChromeDefault"},
		{Name: "both unknown", Theme: ptr("Unknown"), Fallback: ptr("AlsoUnknown"), Expected: "ChromeDefault"},
		{Name: "case sensitive", Theme: ptr("dark"), Fallback: ptr("LIGHT"), Expected: "ChromeDefault"},
		{Name: "inherited like names are not members", Theme: ptr("toString"), Fallback: ptr("constructor"), Expected: "ChromeDefault"},
	}
	for _, tc := range tests {
		t.Run(tc.Name, tc.Run)
	}
}

type SafeNameTest struct {
	Name     string
	Theme    *string
	Fallback *string
	Expected string
}

func (tc SafeNameTest) Run(t *testing.T) {
	t.Parallel()
	assert.Equal(t, tc.Expected, themes.SafeThemeName(tc.Theme, tc.Fallback, testRegistry))
}

func TestSafeThemeName_EmptyRegistries(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ChromeDefault", themes.SafeThemeName(ptr("Dark"), ptr("Light"), nil))
	assert.Equal(t, "ChromeDefault", themes.SafeThemeName(ptr("Dark"), ptr("Light"), themes.Themes(nil)))
	assert.Equal(t, "ChromeDefault", themes.SafeThemeName(ptr("Dark"), ptr("Light"), themes.Themes{}))
}

// The registry may be anything which can answer membership.
type setRegistry map[string]struct{}

func (s setRegistry) Has(name string) bool {
	_, ok := s[name]
	return ok
}

func TestSafeThemeName_CustomRegistry(t *testing.T) {
	t.Parallel()
	reg := setRegistry{"Solarized": {}}
	assert.Equal(t, "Solarized", themes.SafeThemeName(ptr("Gone"), ptr("Solarized"), reg))
	// The default isn't checked against the registry.
	assert.Equal(t, "ChromeDefault", themes.SafeThemeName(ptr("Gone"), nil, reg))
}

func TestSafeThemeName_Property(t *testing.T) {
	t.Parallel()
	names := []string{"", "Dark", "Light", "ChromeDefault", "Unknown", "dark"}
	optional := rapid.Custom(func(t *rapid.T) *string {
		if rapid.Bool().Draw(t, "nil") {
			return nil
		}
		return ptr(rapid.SampledFrom(names).Draw(t, "name"))
	})
	rapid.Check(t, func(t *rapid.T) {
		var (
			theme    = optional.Draw(t, "theme")
			fallback = optional.Draw(t, "fallback")
		)
		before := len(testRegistry)
		actual := themes.SafeThemeName(theme, fallback, testRegistry)
		if actual == "" {
			t.Fatalf("SafeThemeName returned an empty name")
		}
		if actual != themes.SafeThemeName(theme, fallback, testRegistry) {
			t.Fatalf("SafeThemeName was not deterministic")
		}
		if len(testRegistry) != before {
			t.Fatalf("SafeThemeName modified the registry")
		}
		switch {
		case theme != nil && testRegistry.Has(*theme):
			if actual != *theme {
				t.Fatalf("expected theme %q got %q", *theme, actual)
			}
		case fallback != nil && testRegistry.Has(*fallback):
			if actual != *fallback {
				t.Fatalf("expected fallback %q got %q", *fallback, actual)
			}
		default:
			if actual != themes.DefaultThemeName {
				t.Fatalf("expected default got %q", actual)
			}
		}
	})
}

func TestThemesNamesAndMerge(t *testing.T) {
	t.Parallel()
	base := themes.Themes{
		"A": themes.Theme{Name: "A", DisplayName: "base"},
		"B": themes.Theme{Name: "B", Hidden: true},
	}
	other := themes.Themes{
		"A": themes.Theme{Name: "A", DisplayName: "other"},
		"C": themes.Theme{Name: "C"},
	}
	merged := base.Merge(other)

	assert.DeepEqual(t, []string{"A", "C"}, merged.Names(false))
	assert.DeepEqual(t, []string{"A", "B", "C"}, merged.Names(true))
	a, ok := merged.Lookup("A")
	assert.Assert(t, ok)
	assert.Equal(t, "other", a.DisplayName)

	// inputs are untouched
	assert.DeepEqual(t, []string{"A", "B"}, base.Names(true))
	assert.Equal(t, "base", base["A"].DisplayName)
	assert.Equal(t, 2, len(other))

	var empty themes.Themes
	assert.DeepEqual(t, []string{"C"}, empty.Merge(themes.Themes{"C": {Name: "C"}}).Names(false))
}

func TestDefaultFor(t *testing.T) {
	t.Parallel()
	assert.Equal(t, themes.DefaultThemeName, themes.DefaultFor("#ffffff"))
	assert.Equal(t, themes.DarkThemeName, themes.DefaultFor("#000000"))
	assert.Equal(t, themes.DarkThemeName, themes.DefaultFor("not a colour"))
	assert.Assert(t, themes.BuiltIns().Has(themes.DefaultFor("#ffffff")))
	assert.Assert(t, themes.BuiltIns().Has(themes.DefaultFor("#000000")))
}
