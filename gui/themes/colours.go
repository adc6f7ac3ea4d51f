// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Lexer747/acci-theme/utils/errors"
)

// RGB is a colour split into its red, green and blue channels. For well formed input every channel is a
// whole number within 0 and 255. Channels are floats so that a channel which couldn't be parsed can carry
// NaN instead of failing, see [ParseHexToRGB].
type RGB struct {
	R, G, B float64
}

// brightThreshold is the midpoint of 0-255 (rounded up), anything strictly above it is "bright".
const brightThreshold = 125

const (
	invertedStrongAlpha = 0.8
	invertedWeakAlpha   = 0.65
)

// ParseHexToRGB reads a CSS style "#rrggbb" colour (the '#' is optional) into its channels. It never fails:
// a channel which is missing or doesn't start with a hex digit is NaN, and trailing junk after the leading
// hex digits of a channel is ignored. Use [ParseHexStrict] when bad input should be an error.
func ParseHexToRGB(hex string) RGB {
	trimmed := strings.TrimPrefix(hex, "#")
	return RGB{
		R: parseChannel(substring(trimmed, 0, 2)),
		G: parseChannel(substring(trimmed, 2, 4)),
		B: parseChannel(substring(trimmed, 4, 6)),
	}
}

// ParseHexStrict is the validating version of [ParseHexToRGB], the input must be exactly 6 hex digits
// optionally prefixed with a single '#'.
func ParseHexStrict(hex string) (RGB, error) {
	trimmed := strings.TrimPrefix(hex, "#")
	if len(trimmed) != 6 {
		return RGB{}, errors.Errorf("Wrong number of digits for colour %q, should be 6 hex digits", hex)
	}
	r, rerr := strictChannel("red", trimmed[0:2])
	g, gerr := strictChannel("green", trimmed[2:4])
	b, berr := strictChannel("blue", trimmed[4:6])
	if err := errors.Join(rerr, gerr, berr); err != nil {
		return RGB{}, errors.Wrapf(err, "Couldn't parse RGB values for %q", hex)
	}
	return RGB{R: float64(r), G: float64(g), B: float64(b)}, nil
}

func strictChannel(name, s string) (uint64, error) {
	for _, c := range s {
		if !isHexDigit(c) {
			return 0, errors.Errorf("%s component %q is not a hex number", name, s)
		}
	}
	// Can't fail, every rune is a hex digit and two digits always fit.
	v, _ := strconv.ParseUint(s, 16, 8)
	return v, nil
}

// Brightness is the perceived brightness of a colour in the range 0 to 255, following the W3C AERT formula:
//
//	round((R*299 + G*587 + B*114) / 1000)
//
// https://www.w3.org/TR/AERT/#color-contrast
//
// NaN channels make the result NaN.
func Brightness(hex string) float64 {
	return ParseHexToRGB(hex).Brightness()
}

// Brightness see [Brightness].
func (c RGB) Brightness() float64 {
	weighted := (c.R*299 + c.G*587 + c.B*114) / 1000
	return roundHalfUp(weighted)
}

// IsBright reports whether the colour is light enough to need dark text drawn on top of it. Colours which
// can't be parsed are never bright.
func IsBright(hex string) bool {
	return Brightness(hex) > brightThreshold
}

// RGBA formats the colour as a CSS "rgba(R, G, B, A)" string. The alpha is written as given, it is not
// clamped to [0, 1].
func RGBA(hex string, alpha float64) string {
	c := ParseHexToRGB(hex)
	var b strings.Builder
	b.WriteString("rgba(")
	b.WriteString(formatNumber(c.R))
	b.WriteString(", ")
	b.WriteString(formatNumber(c.G))
	b.WriteString(", ")
	b.WriteString(formatNumber(c.B))
	b.WriteString(", ")
	b.WriteString(formatNumber(alpha))
	b.WriteString(")")
	return b.String()
}

// InvertedStrong is a high opacity overlay of the colour.
func InvertedStrong(hex string) string { return RGBA(hex, invertedStrongAlpha) }

// InvertedWeak is a lower opacity overlay of the colour, for subtler inversion than [InvertedStrong].
func InvertedWeak(hex string) string { return RGBA(hex, invertedWeakAlpha) }

// ForegroundFor picks black or white text, whichever reads better on top of the background colour.
func ForegroundFor(background string) string {
	if IsBright(background) {
		return "#000000"
	}
	return "#ffffff"
}

// Valid reports whether every channel holds a whole number within 0 and 255.
func (c RGB) Valid() bool {
	return validChannel(c.R) && validChannel(c.G) && validChannel(c.B)
}

func validChannel(f float64) bool {
	return f >= 0 && f <= 255 && f == math.Trunc(f)
}

// Hex returns the "#rrggbb" form of the colour, or the empty string if the colour isn't [RGB.Valid].
func (c RGB) Hex() string {
	if !c.Valid() {
		return ""
	}
	const digits = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, ch := range []float64{c.R, c.G, c.B} {
		v := int(ch)
		out[1+i*2] = digits[v>>4]
		out[2+i*2] = digits[v&0xf]
	}
	return string(out)
}

// String is the CSS "rgb(R, G, B)" form, NaN channels are written as NaN.
func (c RGB) String() string {
	return "rgb(" + formatNumber(c.R) + ", " + formatNumber(c.G) + ", " + formatNumber(c.B) + ")"
}

// Uint8 returns the channels for drawing, only meaningful if the colour is [RGB.Valid].
func (c RGB) Uint8() (r, g, b uint8) {
	// G115: callers check Valid first, out of range channels are a programming error.
	return uint8(c.R), uint8(c.G), uint8(c.B) //nolint:gosec
}

// Luminance is a perceived lightness from 0 (black) to 1.0 (white).
type Luminance float64

func (l Luminance) IsDark() bool {
	return l < 0.5
}
func (l Luminance) IsLight() bool {
	return l >= 0.5
}

// Luminance computes the luminance of a colour in the range 0 to 1.0 using the same weights as
// [RGB.Brightness] without any rounding.
//
// CCIR 601: https://en.wikipedia.org/wiki/Rec._601
func (c RGB) Luminance() Luminance {
	const max8Bit = 255.0
	return unsafeCCIR601(c.R/max8Bit, c.G/max8Bit, c.B/max8Bit)
}

// unsafeCCIR601 computes the luminance of a colour based on the Red, Green, and Blue values, where the r, g,
// b must be a range from 0 to 1.0. It's unsafe because it doesn't actually check the inputs or outputs for
// sanity.
func unsafeCCIR601(r float64, g float64, b float64) Luminance {
	luminance := (0.299 * r) + (0.587 * g) + (0.114 * b)
	return Luminance(luminance)
}

// substring returns s[start:end] clamped to the length of s, so ranges past the end are simply shorter (or
// empty) rather than a panic.
func substring(s string, start, end int) string {
	if start > len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// parseChannel parses a base 16 number the lenient way browsers do: leading white space is skipped, a sign
// and "0x" prefix are allowed, then as many hex digits as can be found are consumed and anything after is
// ignored. No digits at all is NaN.
func parseChannel(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := 1.0
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	end := 0
	for end < len(s) && isHexDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return math.NaN()
	}
	// A channel is at most two digits, this can't overflow.
	v, err := strconv.ParseUint(s[:end], 16, 64)
	if err != nil {
		return math.NaN()
	}
	return sign * float64(v)
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// roundHalfUp rounds to the nearest integer with ties going towards positive infinity.
func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// formatNumber writes a number the same way a browser would when interpolating it into a string, e.g. 1
// not 1.0, 0.65 not 6.5e-01, and "NaN" for NaN.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// includes negative zero
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// Go pads the exponent to two digits "1e-07", browsers don't.
		mantissa, exponent, _ := strings.Cut(s, "e")
		expSign := exponent[:1]
		expDigits := strings.TrimLeft(exponent[1:], "0")
		return mantissa + "e" + expSign + expDigits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
