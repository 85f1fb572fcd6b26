package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

const (
	// gradientHueOffset is the analogous-hue distance between both stops.
	gradientHueOffset = 45
	gradientSat       = 0.7
	gradientLight     = 0.5

	// contrastThreshold: luminance strictly above it gets black text.
	contrastThreshold = 128.0
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R, G, B uint8
}

// CSS renders the color as an rgb() function.
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Luminance is the perceived brightness in [0, 255].
func (c RGB) Luminance() float64 {
	r := float64(0.299 * float64(c.R))
	g := float64(0.587 * float64(c.G))
	b := float64(0.114 * float64(c.B))
	return r + g + b
}

// ColorFromURL derives a stable two-stop gradient and its contrast text
// color from a URL. The same URL always yields the same output.
func ColorFromURL(normalizedURL string) (string, TextColor) {
	hash := urlHash(normalizedURL)

	hue1 := hash % 360
	hue2 := (hue1 + gradientHueOffset) % 360

	c1 := hslToRGB(float64(hue1)/360, gradientSat, gradientLight)
	c2 := hslToRGB(float64(hue2)/360, gradientSat, gradientLight)

	avg := (c1.Luminance() + c2.Luminance()) / 2

	gradient := fmt.Sprintf("linear-gradient(to bottom right, %s, %s)", c1.CSS(), c2.CSS())
	return gradient, textColorFor(avg)
}

// ContrastFor picks black or white text for a "#rrggbb" (or "rrggbb")
// background. Anything unparsable falls back to white.
func ContrastFor(hexColor string) TextColor {
	c, err := ParseHex(hexColor)
	if err != nil {
		return TextWhite
	}
	return textColorFor(c.Luminance())
}

// ParseHex parses a six digit hex color with an optional leading '#'.
func ParseHex(hexColor string) (RGB, error) {
	s := strings.TrimPrefix(hexColor, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q: want 6 digits", hexColor)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", hexColor, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func textColorFor(luminance float64) TextColor {
	if luminance > contrastThreshold {
		return TextBlack
	}
	return TextWhite
}

// urlHash is the classic s[0]*31^(n-1) + ... + s[n-1] string hash over
// UTF-16 code units, wrapped to a signed 32-bit integer, then made
// non-negative. The absolute value is taken in 64 bits so MinInt32 does
// not stay negative.
func urlHash(s string) int64 {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(unit)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return v
}

// hslToRGB converts h, s, l in [0, 1] to RGB.
func hslToRGB(h, s, l float64) RGB {
	if s == 0 {
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - float64(l*s)
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToChannel(p, q, h+1.0/3)),
		G: channel(hueToChannel(p, q, h)),
		B: channel(hueToChannel(p, q, h-1.0/3)),
	}
}

// hueToChannel evaluates one sector of the piecewise HSL curve. The
// float64 conversions keep products from being fused into FMA
// instructions, so every platform rounds the same way.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + float64((q-p)*6*t)
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + float64((q-p)*(2.0/3-t)*6)
	default:
		return p
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}
