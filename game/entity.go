package game

import (
	"math"

	"github.com/tsoding/zzzwe"
)

// Player is the controllable entity. Mutated only by Game.Update.
type Player struct {
	Pos    zzzwe.Vec2
	Health float64
	Trail  Trail

	shootCooldown float64 // time until the next shot is allowed
	shotsFired    int
	shotsHit      int
}

func newPlayer() Player {
	return Player{
		Health: playerMaxHealth,
		Trail:  newTrail(playerRadius, playerColor),
	}
}

// Accuracy returns the hit fraction in [0, 1], or 0 before the first shot.
func (p *Player) Accuracy() float64 {
	if p.shotsFired == 0 {
		return 0
	}
	return float64(p.shotsHit) / float64(p.shotsFired)
}

func (p *Player) render(r zzzwe.Renderer) {
	p.Trail.render(r)
	if p.Health > 0 {
		r.FillCircle(p.Pos, playerRadius, playerColor)
	}
}

// Enemy drifts toward the player. It materializes with a growing radius
// after spawning; Ded marks it for removal at end-of-tick filtering.
type Enemy struct {
	Pos   zzzwe.Vec2
	Ded   bool
	Trail Trail

	spawnRadius float64
}

func newEnemy(pos zzzwe.Vec2) Enemy {
	return Enemy{
		Pos:   pos,
		Trail: newTrail(enemyRadius, enemyColor),
	}
}

// Radius returns the current collision and render radius, capped at the
// full enemy radius once materialization finishes.
func (e *Enemy) Radius() float64 {
	return math.Min(e.spawnRadius, enemyRadius)
}

// update grows the spawn radius, moves toward target, and feeds the trail.
func (e *Enemy) update(dt float64, target zzzwe.Vec2) {
	e.spawnRadius += enemySpawnGrowth * dt
	dir := target.Sub(e.Pos).Normalize()
	e.Pos = e.Pos.Add(dir.Scale(enemySpeed * dt))
	e.Trail.update(dt, e.Pos)
}

func (e *Enemy) render(r zzzwe.Renderer) {
	e.Trail.render(r)
	r.FillCircle(e.Pos, e.Radius(), enemyColor)
}

// Bullet is a projectile with a finite lifetime.
type Bullet struct {
	Pos      zzzwe.Vec2
	Vel      zzzwe.Vec2
	Lifetime float64
}

func (b *Bullet) update(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.Lifetime -= dt
}

func (b *Bullet) render(r zzzwe.Renderer) {
	r.FillCircle(b.Pos, bulletRadius, bulletColor)
}

// Particle is a short-lived burst fragment, fading as its lifetime decays.
type Particle struct {
	Pos      zzzwe.Vec2
	Vel      zzzwe.Vec2
	Lifetime float64
	Radius   float64
	Color    zzzwe.Color
}

func (p *Particle) update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Lifetime -= dt
}

func (p *Particle) render(r zzzwe.Renderer) {
	f := p.Lifetime / particleLifetime
	r.FillCircle(p.Pos, p.Radius*f, p.Color.WithAlpha(f))
}
