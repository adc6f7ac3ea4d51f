// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

//nolint:staticcheck
package env

import (
	"os"
	"strings"
)

// ACCI_THEME_DIR is the default directory of extra theme json files, used when no -themes flag is given.
func ACCI_THEME_DIR() string {
	return strings.TrimSpace(os.Getenv("ACCI_THEME_DIR"))
}

// ACCI_THEME is the default theme name, used when no -theme flag is given.
func ACCI_THEME() string {
	return strings.TrimSpace(os.Getenv("ACCI_THEME"))
}

// NO_COLOR reports whether the user has asked for no colour output, see https://no-color.org.
func NO_COLOR() bool {
	return os.Getenv("NO_COLOR") != ""
}
