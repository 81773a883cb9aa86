// Package contrast computes WCAG 2.1 color contrast ratios for the site's
// design tokens. The audit command uses it to verify every theme pairing
// before a palette change ships.
package contrast

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RGB is a color in 8-bit sRGB channels.
type RGB struct {
	R, G, B uint8
}

// Level is a WCAG conformance level.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// HSLToRGB converts hue (degrees), saturation and lightness (percent)
// to 8-bit sRGB.
func HSLToRGB(h, s, l float64) RGB {
	h /= 360
	s /= 100
	l /= 100

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	case h < 1:
		r, g, b = c, 0, x
	}

	return RGB{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
	}
}

// RelativeLuminance implements the WCAG 2.1 luminance formula.
func RelativeLuminance(c RGB) float64 {
	lin := func(v uint8) float64 {
		f := float64(v) / 255
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// Ratio returns the contrast ratio between two colors, always >= 1.
func Ratio(a, b RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05)
}

// MeetsWCAG reports whether a contrast ratio satisfies the given level.
// Large text has relaxed thresholds per the guidelines.
func MeetsWCAG(ratio float64, level Level, largeText bool) bool {
	if level == LevelAAA {
		if largeText {
			return ratio >= 4.5
		}
		return ratio >= 7
	}
	if largeText {
		return ratio >= 3
	}
	return ratio >= 4.5
}

// hslPattern matches the design token format "221 83% 45%".
var hslPattern = regexp.MustCompile(`(\d+)\s+(\d+)%\s+(\d+)%`)

// ParseHSL parses a space-separated HSL token like "221 83% 45%" into RGB.
func ParseHSL(token string) (RGB, error) {
	m := hslPattern.FindStringSubmatch(token)
	if m == nil {
		return RGB{}, fmt.Errorf("invalid HSL token: %q", token)
	}

	h, _ := strconv.ParseFloat(m[1], 64)
	s, _ := strconv.ParseFloat(m[2], 64)
	l, _ := strconv.ParseFloat(m[3], 64)

	return HSLToRGB(h, s, l), nil
}

// =============================================================================
// Design System Audit
// =============================================================================

// Pairing is a named foreground/background combination to audit.
type Pairing struct {
	Name       string
	Foreground string // HSL token
	Background string // HSL token
	LargeText  bool
}

// Result is the audit outcome for one pairing.
type Result struct {
	Name   string
	Ratio  float64
	Passes bool
}

// LightThemePairings are the token combinations the light theme renders.
var LightThemePairings = []Pairing{
	{Name: "primary-button", Foreground: "0 0% 100%", Background: "221 83% 45%"},
	{Name: "secondary-button", Foreground: "222 84% 15%", Background: "210 11% 93%"},
	{Name: "body-text", Foreground: "222 84% 15%", Background: "0 0% 100%"},
	{Name: "muted-text", Foreground: "215 16% 35%", Background: "210 11% 96%"},
}

// Audit checks every pairing against WCAG AA and returns per-pairing results.
func Audit(pairings []Pairing) ([]Result, error) {
	results := make([]Result, 0, len(pairings))
	for _, p := range pairings {
		fg, err := ParseHSL(p.Foreground)
		if err != nil {
			return nil, fmt.Errorf("pairing %s: %w", p.Name, err)
		}
		bg, err := ParseHSL(p.Background)
		if err != nil {
			return nil, fmt.Errorf("pairing %s: %w", p.Name, err)
		}

		ratio := Ratio(fg, bg)
		results = append(results, Result{
			Name:   p.Name,
			Ratio:  ratio,
			Passes: MeetsWCAG(ratio, LevelAA, p.LargeText),
		})
	}
	return results, nil
}
