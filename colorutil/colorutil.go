// Package colorutil provides the pure color math used by the style engine:
// hex parsing and formatting, tint/shade blending, relative luminance, and
// contrast-based foreground selection. All functions are stateless and
// deterministic.
package colorutil

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque sRGB color value.
type Color struct {
	R, G, B uint8
}

// Common endpoints for tint/shade blending.
var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{R: 0, G: 0, B: 0}
)

// FormatError reports a string that could not be parsed as a hex color.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("colorutil: malformed hex color %q", e.Value)
}

// Parse converts a 3- or 6-digit hex string (with or without a leading '#')
// into a Color. Any other input returns a *FormatError.
func Parse(hex string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	switch len(s) {
	case 3:
		// Expand shorthand: "f80" -> "ff8800"
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return Color{}, &FormatError{Value: hex}
	}
	var c Color
	channels := []*uint8{&c.R, &c.G, &c.B}
	for i, ch := range channels {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return Color{}, &FormatError{Value: hex}
		}
		*ch = hi<<4 | lo
	}
	return c, nil
}

// MustParse is Parse for compile-time constants; it panics on bad input.
func MustParse(hex string) Color {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Hex formats the color as a lowercase "#rrggbb" string. Parse(c.Hex())
// round-trips losslessly for every Color value.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Mix linearly interpolates between a and b in RGB space.
// weight=0 returns a, weight=1 returns b. Weight is clamped to [0,1].
func Mix(a, b Color, weight float64) Color {
	w := clamp01(weight)
	return Color{
		R: lerpChannel(a.R, b.R, w),
		G: lerpChannel(a.G, b.G, w),
		B: lerpChannel(a.B, b.B, w),
	}
}

func lerpChannel(a, b uint8, w float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*w)
	return uint8(math.Min(255, math.Max(0, v)))
}

// Lighten blends the color toward white. amount=0 is identity,
// amount=1 yields pure white.
func (c Color) Lighten(amount float64) Color {
	return Mix(c, White, amount)
}

// Darken blends the color toward black. amount=0 is identity,
// amount=1 yields pure black.
func (c Color) Darken(amount float64) Color {
	return Mix(c, Black, amount)
}

// Luminance returns the perceptual relative luminance in [0,1] using the
// ITU-R BT.601 weights (0.299, 0.587, 0.114).
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// BestForeground picks the candidate with the greatest luminance contrast
// against the background. Ties keep the earlier candidate. An empty
// candidate list returns the background itself.
func BestForeground(background Color, candidates []Color) Color {
	if len(candidates) == 0 {
		return background
	}
	bg := background.Luminance()
	best := candidates[0]
	bestDelta := math.Abs(candidates[0].Luminance() - bg)
	for _, cand := range candidates[1:] {
		if d := math.Abs(cand.Luminance() - bg); d > bestDelta {
			best = cand
			bestDelta = d
		}
	}
	return best
}

// HSL returns the hue (degrees, [0,360)), saturation and lightness of the
// color.
func (c Color) HSL() (h, s, l float64) {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()
}

// FromHSL builds a Color from hue (degrees), saturation and lightness.
func FromHSL(h, s, l float64) Color {
	r, g, b := colorful.Hsl(h, clamp01(s), clamp01(l)).RGB255()
	return Color{R: r, G: g, B: b}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
