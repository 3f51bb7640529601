package game

import (
	"testing"

	"github.com/tsoding/zzzwe"
)

func TestTrailEmissionRateLimited(t *testing.T) {
	tr := newTrail(playerRadius, playerColor)

	// two updates inside one emission window produce a single dot
	tr.update(1e-6, zzzwe.Vec2{})
	tr.update(1e-6, zzzwe.Vec2{X: 1})
	if len(tr.dots) != 1 {
		t.Errorf("dots = %d, want 1", len(tr.dots))
	}

	tr.update(trailDotCooldown, zzzwe.Vec2{X: 2})
	if len(tr.dots) != 2 {
		t.Errorf("dots after cooldown = %d, want 2", len(tr.dots))
	}
}

func TestTrailDotsFadeOut(t *testing.T) {
	tr := newTrail(enemyRadius, enemyColor)
	tr.update(1e-6, zzzwe.Vec2{})
	if len(tr.dots) != 1 {
		t.Fatalf("dots = %d, want 1", len(tr.dots))
	}

	tr.Disabled = true
	tr.update(trailStartAlpha/trailFadeRate+0.01, zzzwe.Vec2{})
	if len(tr.dots) != 0 {
		t.Errorf("dots after full fade = %d, want 0", len(tr.dots))
	}
}

func TestTrailDisabledStopsEmission(t *testing.T) {
	tr := newTrail(playerRadius, playerColor)
	tr.Disabled = true
	for i := 0; i < 10; i++ {
		tr.update(trailDotCooldown, zzzwe.Vec2{X: float64(i)})
	}
	if len(tr.dots) != 0 {
		t.Errorf("disabled trail emitted %d dots", len(tr.dots))
	}
}

func TestTrailSteadyStateBounded(t *testing.T) {
	tr := newTrail(playerRadius, playerColor)
	const dt = 1.0 / 60
	for i := 0; i < 600; i++ {
		tr.update(dt, zzzwe.Vec2{X: float64(i)})
	}

	// a dot lives trailStartAlpha/trailFadeRate seconds, so the population
	// settles near lifetime/cooldown
	lifetime := float64(trailStartAlpha) / trailFadeRate
	limit := int(lifetime/trailDotCooldown) + 2
	if len(tr.dots) == 0 || len(tr.dots) > limit {
		t.Errorf("steady-state dots = %d, want in [1, %d]", len(tr.dots), limit)
	}
}

func TestTrailRenderScalesWithAlpha(t *testing.T) {
	tr := newTrail(playerRadius, playerColor)
	tr.update(1e-6, zzzwe.Vec2{})

	r := &stubRenderer{}
	tr.render(r)
	if r.circles != 1 {
		t.Errorf("rendered %d circles, want 1", r.circles)
	}
}
