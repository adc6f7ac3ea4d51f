// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package env_test

import (
	"testing"

	"gotest.tools/v3/assert"

	"github.com/Lexer747/acci-theme/utils/env"
)

// Not parallel, these set the process environment.
func TestEnv(t *testing.T) {
	t.Setenv("ACCI_THEME_DIR", "  /tmp/themes ")
	t.Setenv("ACCI_THEME", "Dracula")
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "/tmp/themes", env.ACCI_THEME_DIR())
	assert.Equal(t, "Dracula", env.ACCI_THEME())
	assert.Assert(t, env.NO_COLOR())

	t.Setenv("NO_COLOR", "")
	assert.Assert(t, !env.NO_COLOR())
}
