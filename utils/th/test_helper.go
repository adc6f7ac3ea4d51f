// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"
)

// EquateNaNs lets two NaN floats compare as equal, which is what a test almost always means when it expects
// a NaN channel.
var EquateNaNs = cmpopts.EquateNaNs()

// AssertNaN checks that the float is NaN.
func AssertNaN(t T, actual float64, msgAndArgs ...any) {
	t.Helper()
	assert.Check(t, math.IsNaN(actual), append([]any{"expected NaN got %f", actual}, msgAndArgs...)...)
}

// AssertDeepEqualNaN is [assert.DeepEqual] where NaN equals NaN.
func AssertDeepEqualNaN(t T, expected any, actual any, opts ...cmp.Option) {
	t.Helper()
	assert.Check(t, is.DeepEqual(expected, actual, append(opts, EquateNaNs)...))
}

// WriteFiles creates a temporary directory containing the given files (name to content) and returns the
// directory path, it's cleaned up at the end of the test.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		assert.NilError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return dir
}

// T is the "current" most generic test interface for the most use with all test frameworks and third party
// helpers. [*testing.T] is safer and easier to use if in doubt, you will know when you need this helper
// because a rapid property test stops compiling.
type T interface {
	rapid.TB
}
