// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package rgba

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Lexer747/acci-theme/gui/themes"
	"github.com/Lexer747/acci-theme/utils/application"
	"github.com/Lexer747/acci-theme/utils/check"
	"github.com/Lexer747/acci-theme/utils/errors"
)

type Config struct {
	alpha   *float64
	logFile *string
	strict  *bool

	*flag.FlagSet
}

func GetFlags() *Config {
	f := flag.NewFlagSet("rgba", flag.ContinueOnError)
	ret := &Config{
		alpha:   f.Float64("alpha", 1, "the alpha written into each colour, not clamped"),
		logFile: f.String("l", "", "write logs to `file`. (default no logs written)"),
		strict:  f.Bool("strict", false, "fail on colours which aren't exactly 6 hex digits instead of printing NaN values"),
		FlagSet: f,
	}
	f.Usage = func() {
		fmt.Fprintf(f.Output(), "Usage of %s rgba: prints each colour as a CSS rgba() string\n"+
			"\t rgba [options] HEX...\n\n"+
			"e.g. %s rgba -alpha 0.5 '#112233'\n", os.Args[0], os.Args[0])
		f.PrintDefaults()
	}
	return ret
}

func RunRGBA(c *Config, w io.Writer) error {
	check.Check(c.Parsed(), "flags not parsed")
	closeLogFile := application.InitLogging(*c.logFile, nil)
	defer closeLogFile()

	if c.NArg() == 0 {
		return errors.New("No colours given. Use -h/--help to print usage instructions.")
	}
	for _, hex := range c.Args() {
		if *c.strict {
			if _, err := themes.ParseHexStrict(hex); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, themes.RGBA(hex, *c.alpha)); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}
