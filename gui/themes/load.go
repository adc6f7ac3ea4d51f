// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Lexer747/acci-theme/utils/errors"
)

// LoadDirectory reads every ".json" file directly inside dir as a theme, this lets the program support
// custom themes. Sub directories and other files are ignored. Two files defining the same theme name is an
// error since there's no sensible way to pick between them.
func LoadDirectory(dir string) (Themes, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load themes from directory %q", dir)
	}
	ret := Themes{}
	origin := map[string]string{}
	// ReadDir is already sorted by file name, which keeps the duplicate error stable.
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		theme, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if first, ok := origin[theme.Name]; ok {
			return nil, errors.Errorf("theme %q defined twice, in %q and %q", theme.Name, first, path)
		}
		origin[theme.Name] = path
		ret[theme.Name] = theme
		slog.Debug("loaded theme", "theme", theme.Name, "path", path)
	}
	slog.Info("loaded theme directory", "dir", dir, "themes", slices.Sorted(maps.Keys(ret)))
	return ret, nil
}

// LoadFile reads a single theme from a json file at path.
func LoadFile(path string) (t Theme, err error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, "failed to load theme from path %q", path)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to close theme %q", path)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return Theme{}, errors.Wrapf(err, "failed to load theme from path %q", path)
	}
	loaded, err := ParseThemeFromJSON(data)
	if err != nil {
		return Theme{}, errors.Wrapf(err, "failed to load theme from path %q", path)
	}
	return loaded, nil
}
