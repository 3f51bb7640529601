package game

import "github.com/tsoding/zzzwe"

// trailDot is one past position of a moving entity, fading out over time.
type trailDot struct {
	pos   zzzwe.Vec2
	alpha float64
}

// Trail renders an entity's recent path as shrinking, fading circles.
// Dot emission is rate-limited by a cooldown timer; dots age out once
// their alpha decays to zero.
type Trail struct {
	dots     []trailDot
	cooldown float64
	radius   float64
	color    zzzwe.Color
	// Disabled stops new dot emission; existing dots still fade out.
	Disabled bool
}

// newTrail creates a trail whose dots are sized and tinted for the owner.
func newTrail(radius float64, color zzzwe.Color) Trail {
	return Trail{radius: radius * trailDotScale, color: color}
}

// update fades existing dots and, unless disabled, emits a new dot at pos
// when the emission cooldown has elapsed.
func (t *Trail) update(dt float64, pos zzzwe.Vec2) {
	n := 0
	for i := range t.dots {
		t.dots[i].alpha -= trailFadeRate * dt
		if t.dots[i].alpha > 0 {
			t.dots[n] = t.dots[i]
			n++
		}
	}
	t.dots = t.dots[:n]

	t.cooldown -= dt
	if t.cooldown <= 0 && !t.Disabled {
		t.cooldown = trailDotCooldown
		t.dots = append(t.dots, trailDot{pos: pos, alpha: trailStartAlpha})
	}
}

// render draws the trail dots, oldest first so newer dots sit on top.
func (t *Trail) render(r zzzwe.Renderer) {
	for _, d := range t.dots {
		f := d.alpha / trailStartAlpha
		r.FillCircle(d.pos, t.radius*f, t.color.WithAlpha(d.alpha))
	}
}
