// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package inspect

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Lexer747/acci-theme/gui/themes"
	"github.com/Lexer747/acci-theme/terminal/ansi"
	"github.com/Lexer747/acci-theme/utils/application"
	"github.com/Lexer747/acci-theme/utils/check"
	"github.com/Lexer747/acci-theme/utils/errors"
)

type Config struct {
	logFile *string
	strict  *bool

	// Colour enables 24-bit swatches in the output.
	Colour bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("inspect", flag.ContinueOnError)
	ret := &Config{
		logFile: f.String("l", "", "write logs to `file`. (default no logs written)"),
		strict:  f.Bool("strict", false, "fail on colours which aren't exactly 6 hex digits instead of printing NaN values"),
		FlagSet: f,
	}
	f.Usage = func() {
		fmt.Fprintf(f.Output(), "Usage of %s inspect: prints the channels, brightness and overlay colours of each colour\n"+
			"\t inspect [options] HEX...\n\n"+
			"e.g. %s inspect '#1e750b' ffffff\n", os.Args[0], os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunInspect(c *Config, w io.Writer) error {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()

	toInspect := c.Args()
	if len(toInspect) == 0 {
		return errors.New("No colours given. Use -h/--help to print usage instructions.")
	}
	for _, hex := range toInspect {
		if *c.strict {
			if _, err := themes.ParseHexStrict(hex); err != nil {
				return err
			}
		}
		line := Describe(hex, c.Colour)
		slog.Debug("inspected colour", "hex", hex, "line", line)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

// Describe is the single line summary of a colour.
func Describe(hex string, colour bool) string {
	rgb := themes.ParseHexToRGB(hex)
	var b strings.Builder
	title := hex
	if colour && rgb.Valid() {
		fg := themes.ParseHexToRGB(themes.ForegroundFor(hex))
		title = ansi.TrueColourOn(" "+hex+" ", channels(fg), channels(rgb))
	}
	b.WriteString(title)
	b.WriteString(": ")
	b.WriteString(rgb.String())
	fmt.Fprintf(&b, " brightness:%v bright:%t", themes.Brightness(hex), themes.IsBright(hex))
	b.WriteString(" strong:" + themes.InvertedStrong(hex))
	b.WriteString(" weak:" + themes.InvertedWeak(hex))
	return b.String()
}

func channels(c themes.RGB) [3]uint8 {
	r, g, b := c.Uint8()
	return [3]uint8{r, g, b}
}
