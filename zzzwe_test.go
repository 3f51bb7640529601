package zzzwe

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add = %v, want {4 -2}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 6}) {
		t.Errorf("Sub = %v, want {-2 6}", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 2, Y: 4}) {
		t.Errorf("Scale = %v, want {2 4}", got)
	}
	if got := b.Len(); !approxEqual(got, 5, epsilon) {
		t.Errorf("Len = %f, want 5", got)
	}
	if got := a.Dist(Vec2{X: 4, Y: 6}); !approxEqual(got, 5, epsilon) {
		t.Errorf("Dist = %f, want 5", got)
	}
}

func TestVec2Normalize(t *testing.T) {
	vectors := []Vec2{
		{X: 1, Y: 0},
		{X: 0, Y: -3},
		{X: 12.5, Y: -42},
		{X: 1e-7, Y: 1e-7},
	}
	for _, v := range vectors {
		n := v.Normalize()
		if !approxEqual(n.Len(), 1, 1e-9) {
			t.Errorf("Normalize(%v).Len() = %f, want 1", v, n.Len())
		}
	}
}

func TestVec2NormalizeZero(t *testing.T) {
	n := Vec2{}.Normalize()
	if n != (Vec2{}) {
		t.Errorf("Normalize(zero) = %v, want zero vector", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize(zero) produced NaN")
	}
}

func TestPolar(t *testing.T) {
	v := Polar(2, math.Pi/2)
	if !approxEqual(v.X, 0, 1e-12) || !approxEqual(v.Y, 2, 1e-12) {
		t.Errorf("Polar(2, pi/2) = %v, want {0 2}", v)
	}
}

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		input   string
		r, g, b float64
	}{
		{"#ff0000", 1, 0, 0},
		{"00ff00", 0, 1, 0},
		{"#181818", 0x18 / 255.0, 0x18 / 255.0, 0x18 / 255.0},
		{"#F43841", 0xf4 / 255.0, 0x38 / 255.0, 0x41 / 255.0},
	}
	for _, tt := range tests {
		c, err := Hex(tt.input)
		if err != nil {
			t.Fatalf("Hex(%q) error: %v", tt.input, err)
		}
		if !approxEqual(c.R, tt.r, 1e-9) || !approxEqual(c.G, tt.g, 1e-9) || !approxEqual(c.B, tt.b, 1e-9) {
			t.Errorf("Hex(%q) = %v, want (%f, %f, %f)", tt.input, c, tt.r, tt.g, tt.b)
		}
		if c.A != 1 {
			t.Errorf("Hex(%q).A = %f, want 1", tt.input, c.A)
		}
	}
}

func TestHexMalformed(t *testing.T) {
	inputs := []string{"", "#", "#fff", "#fffffff", "12345", "#12345g", "zzzzzz"}
	for _, input := range inputs {
		_, err := Hex(input)
		if err == nil {
			t.Errorf("Hex(%q) succeeded, want error", input)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("Hex(%q) error = %T, want *ParseError", input, err)
		}
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex on malformed input did not panic")
		}
	}()
	MustHex("nope")
}

func TestGrayscaleEndpoints(t *testing.T) {
	c := Color{R: 0.8, G: 0.2, B: 0.4, A: 0.9}

	if got := c.Grayscale(0); got != c {
		t.Errorf("Grayscale(0) = %v, want %v", got, c)
	}

	g := c.Grayscale(1)
	if !approxEqual(g.R, g.G, 1e-9) || !approxEqual(g.G, g.B, 1e-9) {
		t.Errorf("Grayscale(1) = %v, want r==g==b", g)
	}
	if g.A != c.A {
		t.Errorf("Grayscale(1).A = %f, want %f", g.A, c.A)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Color{R: 0.1, G: 0.2, B: 0.3, A: 1}
	got := c.WithAlpha(0.5)
	want := Color{R: 0.1, G: 0.2, B: 0.3, A: 0.5}
	if got != want {
		t.Errorf("WithAlpha(0.5) = %v, want %v", got, want)
	}
	if c.A != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestColorLerp(t *testing.T) {
	a := Color{R: 0, G: 0, B: 0, A: 0}
	b := Color{R: 1, G: 1, B: 1, A: 1}
	mid := a.Lerp(b, 0.5)
	for _, v := range [4]float64{mid.R, mid.G, mid.B, mid.A} {
		if !approxEqual(v, 0.5, 1e-9) {
			t.Errorf("Lerp midpoint = %v, want all 0.5", mid)
		}
	}
}
