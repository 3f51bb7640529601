package zzzwe

import (
	"math"
	"testing"
)

func TestCameraConvergesWithoutOvershoot(t *testing.T) {
	timesteps := []float64{1.0 / 240, 1.0 / 60, 0.1, 0.5, 1.0}
	for _, dt := range timesteps {
		cam := newCamera(1920, 1080)
		target := Vec2{X: 300, Y: -200}
		cam.SetTarget(target)

		prev := cam.Position.Dist(target)
		for i := 0; i < 10000; i++ {
			cam.Update(dt)
			d := cam.Position.Dist(target)
			if d > prev+epsilon {
				t.Fatalf("dt=%f: distance grew from %f to %f at step %d", dt, prev, d, i)
			}
			prev = d
		}
		if prev > 1e-3 {
			t.Errorf("dt=%f: camera stopped %f units short of target", dt, prev)
		}
	}
}

func TestCameraRetargetsMidFlight(t *testing.T) {
	cam := newCamera(1920, 1080)
	cam.SetTarget(Vec2{X: 100, Y: 0})
	for i := 0; i < 10; i++ {
		cam.Update(1.0 / 60)
	}
	second := Vec2{X: -50, Y: 75}
	cam.SetTarget(second)
	for i := 0; i < 5000; i++ {
		cam.Update(1.0 / 60)
	}
	if cam.Position.Dist(second) > 1e-3 {
		t.Errorf("camera did not converge on retarget, stopped at %v", cam.Position)
	}
}

func TestCameraScaleFitsViewport(t *testing.T) {
	tests := []struct {
		w, h  int
		scale float64
	}{
		{1920, 1080, 1},
		{960, 540, 0.5},
		{3840, 2160, 2},
		{1920, 540, 0.5},
		{960, 1080, 0.5},
	}
	for _, tt := range tests {
		cam := newCamera(tt.w, tt.h)
		if got := cam.Scale(); !approxEqual(got, tt.scale, epsilon) {
			t.Errorf("viewport %dx%d: scale = %f, want %f", tt.w, tt.h, got, tt.scale)
		}
		if got := cam.UnitsPerPixel(); !approxEqual(got, 1/tt.scale, epsilon) {
			t.Errorf("viewport %dx%d: units per pixel = %f, want %f", tt.w, tt.h, got, 1/tt.scale)
		}
	}
}

func TestCameraDegenerateViewport(t *testing.T) {
	cam := newCamera(0, 0)
	if s := cam.Scale(); s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		t.Errorf("degenerate viewport scale = %f", s)
	}
	p := cam.ScreenToWorld(Vec2{X: 10, Y: 10})
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		t.Errorf("degenerate viewport ScreenToWorld = %v", p)
	}
}

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	cam := newCamera(1280, 720)
	cam.Position = Vec2{X: 40, Y: -13}

	points := []Vec2{
		{X: 0, Y: 0},
		{X: 640, Y: 360},
		{X: 1280, Y: 720},
		{X: 17.5, Y: 693},
	}
	for _, p := range points {
		back := cam.WorldToScreen(cam.ScreenToWorld(p))
		if !approxEqual(back.X, p.X, 1e-6) || !approxEqual(back.Y, p.Y, 1e-6) {
			t.Errorf("round trip %v = %v", p, back)
		}
	}
}

func TestCameraCenterMapsToPosition(t *testing.T) {
	cam := newCamera(1920, 1080)
	cam.Position = Vec2{X: 123, Y: 456}
	center := cam.ScreenToWorld(Vec2{X: 960, Y: 540})
	if !approxEqual(center.X, 123, 1e-6) || !approxEqual(center.Y, 456, 1e-6) {
		t.Errorf("screen center maps to %v, want camera position", center)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := newCamera(1920, 1080)
	cam.Position = Vec2{X: 10, Y: 20}
	topLeft, bottomRight := cam.visibleBounds()
	if !approxEqual(topLeft.X, 10-960, 1e-6) || !approxEqual(topLeft.Y, 20-540, 1e-6) {
		t.Errorf("topLeft = %v", topLeft)
	}
	if !approxEqual(bottomRight.X, 10+960, 1e-6) || !approxEqual(bottomRight.Y, 20+540, 1e-6) {
		t.Errorf("bottomRight = %v", bottomRight)
	}
}
