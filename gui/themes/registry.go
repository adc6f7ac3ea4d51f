// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"maps"
	"slices"
)

// DefaultThemeName is the theme used when nothing better can be found. Every registry is expected to
// contain it, the built-ins always do.
const DefaultThemeName = "ChromeDefault"

// DarkThemeName is the built-in counterpart to [DefaultThemeName] for dark backgrounds.
const DarkThemeName = "ChromeDark"

// Registry is the only thing theme name resolution needs from a collection of themes.
type Registry interface {
	// Has reports whether name is a key of the registry, names are case sensitive.
	Has(name string) bool
}

// Themes is a registry of themes keyed by their name.
type Themes map[string]Theme

var _ Registry = Themes{}

func (t Themes) Has(name string) bool {
	_, ok := t[name]
	return ok
}

func (t Themes) Lookup(name string) (Theme, bool) {
	theme, ok := t[name]
	return theme, ok
}

// Names is the sorted list of theme names, hidden themes are only included if includeHidden is set.
func (t Themes) Names(includeHidden bool) []string {
	ret := make([]string, 0, len(t))
	for name, theme := range t {
		if theme.Hidden && !includeHidden {
			continue
		}
		ret = append(ret, name)
	}
	slices.Sort(ret)
	return ret
}

// Merge returns a new registry containing both registries, where a name is in both the theme from other
// wins. Neither input is modified.
func (t Themes) Merge(other Themes) Themes {
	ret := maps.Clone(t)
	if ret == nil {
		ret = Themes{}
	}
	maps.Copy(ret, other)
	return ret
}

// SafeThemeName picks the name of a theme which is known to exist in the registry. The first of these which
// holds is used:
//
//  1. themeName is set (non-nil and not empty) and in the registry.
//  2. fallbackThemeName is set and in the registry.
//  3. otherwise [DefaultThemeName].
//
// It never fails and never modifies the registry, a nil registry is treated as empty.
func SafeThemeName(themeName, fallbackThemeName *string, registry Registry) string {
	if usable(themeName, registry) {
		return *themeName
	}
	if usable(fallbackThemeName, registry) {
		return *fallbackThemeName
	}
	return DefaultThemeName
}

func usable(name *string, registry Registry) bool {
	if name == nil || *name == "" || registry == nil {
		return false
	}
	return registry.Has(*name)
}

// DefaultFor returns the built-in theme name which suits a terminal or page with the given background
// colour.
func DefaultFor(background string) string {
	if IsBright(background) {
		return DefaultThemeName
	}
	return DarkThemeName
}
