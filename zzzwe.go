package zzzwe

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector used for positions, velocities, and directions
// throughout the API. It is an immutable value type: every operation
// returns a new vector.
type Vec2 struct {
	X, Y float64
}

// Polar constructs a vector from a magnitude and an angle in radians.
func Polar(mag, angle float64) Vec2 {
	return Vec2{X: mag * math.Cos(angle), Y: mag * math.Sin(angle)}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector normalizes
// to the zero vector, never to NaN.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the distance between v and other.
func (v Vec2) Dist(other Vec2) float64 {
	return v.Sub(other).Len()
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Hex parses a 6-hex-digit color string such as "#fa6900" or "fa6900".
// Any other input fails with a *ParseError.
func Hex(s string) (Color, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return Color{}, &ParseError{Input: s, Reason: "want 6 hex digits"}
	}
	var comps [3]float64
	for i := range comps {
		v, ok := hexByte(h[i*2], h[i*2+1])
		if !ok {
			return Color{}, &ParseError{Input: s, Reason: "invalid hex digit"}
		}
		comps[i] = float64(v) / 255
	}
	return Color{R: comps[0], G: comps[1], B: comps[2], A: 1}, nil
}

// hexByte decodes two hex digits into a byte value.
func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexDigit(hi)
	l, ok2 := hexDigit(lo)
	return h<<4 | l, ok1 && ok2
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// MustHex is like [Hex] but panics on malformed input. It is intended for
// color constants computed at package initialization.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of c with the alpha component replaced.
func (c Color) WithAlpha(a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Grayscale returns c blended toward its own luminance by t in [0, 1].
// Grayscale(0) is c unchanged; Grayscale(1) is fully desaturated.
func (c Color) Grayscale(t float64) Color {
	y := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	return Color{
		R: c.R + (y-c.R)*t,
		G: c.G + (y-c.G)*t,
		B: c.B + (y-c.B)*t,
		A: c.A,
	}
}

// Lerp linearly interpolates between c and other by t.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// toRGBA converts c to a standard non-premultiplied color.
func (c Color) toRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
