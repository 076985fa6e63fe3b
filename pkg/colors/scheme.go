// Package colors picks per-column colors from a performance value.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

type Scheme int

const (
	SchemeNone          Scheme = iota // every column uses the configured column color
	SchemeNormal                      // Red → Yellow → Green
	SchemeUniversal                   // Orange → Gray → Blue
	SchemeProtanopia                  // Brown → White → Blue
	SchemeTritanopia                  // Red → Gray → Teal
	SchemeDeuteranomaly               // Brown → Beige → Blue
)

var schemeNames = [...]string{"none", "normal", "universal", "protanopia", "tritanopia", "deuteranomaly"}

func (s Scheme) String() string {
	if s < 0 || int(s) >= len(schemeNames) {
		return "unknown"
	}
	return schemeNames[s]
}

// ParseScheme accepts the names returned by String, case insensitive. The
// empty string is SchemeNone.
func ParseScheme(s string) (Scheme, error) {
	if s == "" {
		return SchemeNone, nil
	}
	for i, name := range schemeNames {
		if strings.EqualFold(s, name) {
			return Scheme(i), nil
		}
	}
	return SchemeNone, fmt.Errorf("unknown color scheme %q", s)
}

type palette struct {
	low, mid, high color.RGBA
}

var palettes = map[Scheme]palette{
	SchemeNormal:        {low: color.RGBA{255, 0, 0, 255}, mid: color.RGBA{255, 255, 0, 255}, high: color.RGBA{0, 200, 0, 255}},
	SchemeUniversal:     {low: color.RGBA{255, 165, 0, 255}, mid: color.RGBA{247, 247, 247, 255}, high: color.RGBA{33, 102, 172, 255}},
	SchemeProtanopia:    {low: color.RGBA{150, 75, 0, 255}, mid: color.RGBA{247, 247, 247, 255}, high: color.RGBA{5, 113, 176, 255}},
	SchemeTritanopia:    {low: color.RGBA{215, 48, 39, 255}, mid: color.RGBA{247, 247, 247, 255}, high: color.RGBA{0, 128, 128, 255}},
	SchemeDeuteranomaly: {low: color.RGBA{0x8B, 0x45, 0x13, 255}, mid: color.RGBA{0xF5, 0xE6, 0xB3, 255}, high: color.RGBA{0x4A, 0x90, 0xE2, 255}},
}

// Interpolate returns the color of value between min and max. Values
// outside the range are clamped, an empty range gives gray.
func Interpolate(min, max, value float64, s Scheme) color.RGBA {
	t := (value - min) / (max - min)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return color.RGBA{128, 128, 128, 255}
	}
	t = math.Max(0, math.Min(1, t))

	p, ok := palettes[s]
	if !ok {
		p = palettes[SchemeNormal]
	}
	const divider = 0.5
	if t < divider {
		return lerpColor(p.low, p.mid, t/divider)
	}
	return lerpColor(p.mid, p.high, (t-divider)/(1-divider))
}

// ColumnColors colors pre-scaled column heights, full being the height of a
// 100% column. It returns nil for SchemeNone.
func ColumnColors(heights []float32, full float32, s Scheme) []color.RGBA {
	if s == SchemeNone {
		return nil
	}
	out := make([]color.RGBA, len(heights))
	for i, h := range heights {
		out[i] = Interpolate(0, float64(full), float64(h), s)
	}
	return out
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(lerp(float64(c1.R), float64(c2.R), t))),
		G: uint8(math.Round(lerp(float64(c1.G), float64(c2.G), t))),
		B: uint8(math.Round(lerp(float64(c1.B), float64(c2.B), t))),
		A: 255,
	}
}
