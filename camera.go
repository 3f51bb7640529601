package zzzwe

import "math"

// Camera is a smoothed-follow view into world space, shared by both
// rendering backends.
//
// The follow controller is deliberately frame-rate dependent: Velocity is
// reassigned to the full remaining delta (target - Position) before every
// integration, and Update then applies Position += Velocity * dt. Each tick
// therefore moves a dt-sized fraction of the remaining distance, which
// converges exponentially and never overshoots for dt <= 1 — but how fast
// depends on the tick rate. Gameplay feel depends on this exact order; do
// not substitute a dt-independent smoothing formula.
type Camera struct {
	// Position is the world point the camera is centered on.
	Position Vec2
	// Velocity is the current drift toward the follow target. It is
	// reassigned before every integration, never accumulated.
	Velocity Vec2

	target Vec2

	viewportW float64
	viewportH float64
	scale     float64 // pixels per world unit
	upp       float64 // world units per pixel, 1/scale

	view    [6]float64
	invView [6]float64
	dirty   bool
}

// newCamera creates a camera for the given viewport size in pixels.
func newCamera(width, height int) *Camera {
	c := &Camera{scale: 1, upp: 1, dirty: true}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the output size and recomputes the camera scale
// against the reference resolution.
func (c *Camera) SetViewport(width, height int) {
	c.viewportW = float64(width)
	c.viewportH = float64(height)
	c.scale = math.Min(c.viewportW/refScreenWidth, c.viewportH/refScreenHeight)
	if c.scale <= 0 {
		c.scale = 1
	}
	c.upp = 1 / c.scale
	c.dirty = true
}

// SetTarget points the camera at a new follow target. Velocity becomes the
// full remaining delta; the next Update consumes a dt-sized fraction of it.
func (c *Camera) SetTarget(target Vec2) {
	c.target = target
	c.Velocity = target.Sub(c.Position)
}

// Update reassigns Velocity toward the current target and integrates the
// position by dt seconds, in that order.
func (c *Camera) Update(dt float64) {
	c.Velocity = c.target.Sub(c.Position)
	c.Position = c.Position.Add(c.Velocity.Scale(dt))
	c.dirty = true
}

// UnitsPerPixel returns how many world units one screen pixel covers.
func (c *Camera) UnitsPerPixel() float64 {
	return c.upp
}

// Scale returns how many screen pixels one world unit covers.
func (c *Camera) Scale() float64 {
	return c.scale
}

// computeView recomputes the cached view matrix and its inverse if dirty.
//
//	view = Translate(viewport center) * Scale(scale) * Translate(-Position)
func (c *Camera) computeView() [6]float64 {
	if !c.dirty {
		return c.view
	}
	c.dirty = false

	s := c.scale
	c.view = [6]float64{
		s, 0, 0, s,
		c.viewportW/2 - s*c.Position.X,
		c.viewportH/2 - s*c.Position.Y,
	}
	c.invView = invertAffine(c.view)
	return c.view
}

// WorldToScreen converts a world-space point to screen pixels.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	c.computeView()
	x, y := transformPoint(c.view, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// ScreenToWorld converts a screen-space point to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	c.computeView()
	x, y := transformPoint(c.invView, p.X, p.Y)
	return Vec2{X: x, Y: y}
}

// visibleBounds returns the world-space rectangle covered by the viewport,
// as its top-left and bottom-right corners.
func (c *Camera) visibleBounds() (topLeft, bottomRight Vec2) {
	topLeft = c.ScreenToWorld(Vec2{})
	bottomRight = c.ScreenToWorld(Vec2{X: c.viewportW, Y: c.viewportH})
	return
}
