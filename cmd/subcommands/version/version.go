// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package version

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Lexer747/acci-theme/terminal/ansi"
	"github.com/Lexer747/acci-theme/utils/application"
	"github.com/Lexer747/acci-theme/utils/errors"
)

type Config struct {
	*application.BuildInfo
	*flag.FlagSet

	// Colour enables ansi colours in the output.
	Colour bool
}

func GetFlags(info *application.BuildInfo) *Config {
	f := flag.NewFlagSet("version", flag.ContinueOnError)
	ret := &Config{
		BuildInfo: info,
		FlagSet:   f,
	}
	return ret
}

func RunVersion(c *Config, w io.Writer) error {
	versionColour := func(s string) string { return s }
	detailsColour := versionColour
	if c.Colour {
		versionColour = ansi.Cyan
		detailsColour = ansi.Gray
	}
	const header = "acci-theme version: %s\n"
	var b strings.Builder
	if c.BuildInfo == nil {
		fmt.Fprintf(&b, header, versionColour("local build"))
	} else {
		const details = "Details - Commit:%s Branch:%q GoVersion:%q BuildTimestamp:%s\n"
		fmt.Fprintf(&b, header, versionColour(c.Tag()))
		b.WriteString(detailsColour(
			fmt.Sprintf(details,
				c.Commit(),
				c.Branch(),
				c.GoVersion(),
				c.BuildTimestamp(),
			),
		))
	}
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write output")
}
