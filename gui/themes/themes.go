// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

// Theme is a named palette. All colours are "#rrggbb" hex strings which have already been validated by
// [ParseHexStrict] when the theme was parsed, so the lenient helpers ([Brightness], [RGBA], ...) will always
// give sensible results for them.
type Theme struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	// Hidden themes can be selected by name but aren't offered in listings.
	Hidden bool `json:"hidden"`
	// Version is an internal detail and present incase the json format ever needs to change
	Version string  `json:"version"`
	Colours Colours `json:"colours"`
}

// Colours is the full palette of a theme:
//
//   - base00 to base05 go from the background (base00) through to the main text colour (base05).
//   - special00 to special07 colour syntax like elements: names, values, keys and so on.
//   - state00 to state06 colour UI state: selection, hover, focus and errors.
type Colours struct {
	Base00 string `json:"base00"`
	Base01 string `json:"base01"`
	Base02 string `json:"base02"`
	Base03 string `json:"base03"`
	Base04 string `json:"base04"`
	Base05 string `json:"base05"`

	Special00 string `json:"special00"`
	Special01 string `json:"special01"`
	Special02 string `json:"special02"`
	Special03 string `json:"special03"`
	Special04 string `json:"special04"`
	Special05 string `json:"special05"`
	Special06 string `json:"special06"`
	Special07 string `json:"special07"`

	State00 string `json:"state00"`
	State01 string `json:"state01"`
	State02 string `json:"state02"`
	State03 string `json:"state03"`
	State04 string `json:"state04"`
	State05 string `json:"state05"`
	State06 string `json:"state06"`
}

type namedColour struct {
	key   string
	value string
}

// all is every colour in the palette paired with its json key, in declaration order.
func (c Colours) all() []namedColour {
	return []namedColour{
		{"base00", c.Base00},
		{"base01", c.Base01},
		{"base02", c.Base02},
		{"base03", c.Base03},
		{"base04", c.Base04},
		{"base05", c.Base05},
		{"special00", c.Special00},
		{"special01", c.Special01},
		{"special02", c.Special02},
		{"special03", c.Special03},
		{"special04", c.Special04},
		{"special05", c.Special05},
		{"special06", c.Special06},
		{"special07", c.Special07},
		{"state00", c.State00},
		{"state01", c.State01},
		{"state02", c.State02},
		{"state03", c.State03},
		{"state04", c.State04},
		{"state05", c.State05},
		{"state06", c.State06},
	}
}

// Background is the colour everything else is drawn on.
func (t Theme) Background() string { return t.Colours.Base00 }

// Foreground is the main text colour.
func (t Theme) Foreground() string { return t.Colours.Base05 }

// IsDark reports whether the theme has a dark background.
func (t Theme) IsDark() bool { return !IsBright(t.Background()) }

// Overlay is the strong inverted background colour, used to draw modal overlays over the theme.
func (t Theme) Overlay() string { return InvertedStrong(t.Background()) }

// Shadow is the weak inverted foreground colour.
func (t Theme) Shadow() string { return InvertedWeak(t.Foreground()) }

func (t Theme) String() string {
	kind := "light"
	if t.IsDark() {
		kind = "dark"
	}
	return "{name: " + t.Name + " displayName: " + t.DisplayName + " " + kind +
		" background: " + t.Background() + " foreground: " + t.Foreground() + "}"
}
