// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package application

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/Lexer747/acci-theme/gui/themes"
	"github.com/Lexer747/acci-theme/utils/check"
	"github.com/Lexer747/acci-theme/utils/env"
	"github.com/Lexer747/acci-theme/utils/errors"
)

type BuildInfo struct {
	commit    string
	goVersion string
	branch    string
	timestamp string
	tag       string
}

//nolint:staticcheck
func MakeBuildInfo(COMMIT, GO_VERSION, BRANCH, TIMESTAMP, TAG string) *BuildInfo {
	if COMMIT == "" && GO_VERSION == "" && BRANCH == "" && TIMESTAMP == "" && TAG == "" {
		return nil
	}
	return &BuildInfo{
		commit:    COMMIT,
		goVersion: GO_VERSION,
		branch:    BRANCH,
		timestamp: TIMESTAMP,
		tag:       TAG,
	}
}

func (b *BuildInfo) Commit() string         { return b.commit }
func (b *BuildInfo) GoVersion() string      { return b.goVersion }
func (b *BuildInfo) Branch() string         { return b.branch }
func (b *BuildInfo) BuildTimestamp() string { return b.timestamp }
func (b *BuildInfo) Tag() string            { return b.tag }

func InitLogging(file string, info *BuildInfo) (toDefer func()) {
	if file != "" {
		f, err := os.Create(file)
		check.NoErr(err, "could not create Log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logger := slog.New(h)
		if info != nil {
			logger = logger.With(
				"COMMIT", info.commit,
				"BRANCH", info.branch,
				"GO_VERSION", info.goVersion,
				"BUILD_TIMESTAMP", info.timestamp,
				"TAG", info.tag,
			)
		}
		slog.SetDefault(logger)
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			check.NoErr(f.Close(), "failed to close log file")
		}
	}
	// If no file is specified we want to stop all logging
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}

// LoadRegistry builds the registry the program resolves theme names against: the built-in themes plus every
// theme found in themeDir. An empty themeDir means built-ins only. User themes replace built-ins of the same
// name.
func LoadRegistry(themeDir string) (themes.Themes, error) {
	registry := themes.BuiltIns()
	if themeDir == "" {
		slog.Debug("no theme directory, using built-ins only")
		return registry, nil
	}
	loaded, err := themes.LoadDirectory(themeDir)
	if err != nil {
		return registry, errors.Wrap(err, "failed to load user themes")
	}
	for name := range loaded {
		if registry.Has(name) {
			slog.Info("user theme overrides built-in", "theme", name, "dir", themeDir)
		}
	}
	return registry.Merge(loaded), nil
}

// ThemeDir is the directory to load user themes from, the flag value wins over the environment.
func ThemeDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return env.ACCI_THEME_DIR()
}

// ColourEnabled reports whether ansi colour should be written to f, only when f is a terminal and the user
// hasn't opted out with NO_COLOR.
func ColourEnabled(f *os.File) bool {
	if env.NO_COLOR() {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec
}
