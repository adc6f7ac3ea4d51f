// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

var FormatNumber = formatNumber
var ParseChannel = parseChannel
var Validate = func(t Theme) error { return t.validate() }
