package game

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tsoding/zzzwe"
)

// Game holds the complete entity and session state. It is passed explicitly
// through the update and render entry points; there is no global state.
//
// The frame contract is: Update fully mutates state, then Render reads it
// through the Renderer interface without mutating anything. Both run on the
// host's single frame callback; nothing here is concurrent.
type Game struct {
	Player    Player
	Enemies   []Enemy
	Bullets   []Bullet
	Particles []Particle

	score  int
	paused bool

	held   [moveKeyCount]bool
	aim    zzzwe.Vec2 // screen coordinates, converted at fire time
	firing bool

	spawnTimer    float64
	spawnCooldown float64

	tutorial *Tutorial
}

// NewGame creates a session with a fresh player and restored tutorial
// progress. store may be nil to skip persistence.
func NewGame(store ProgressStore) *Game {
	g := &Game{
		tutorial: NewTutorial(store),
	}
	g.resetSession()
	return g
}

// resetSession resets everything except tutorial progress and input state.
func (g *Game) resetSession() {
	g.Player = newPlayer()
	g.Enemies = g.Enemies[:0]
	g.Bullets = g.Bullets[:0]
	g.Particles = g.Particles[:0]
	g.score = 0
	g.paused = false
	g.spawnTimer = enemySpawnCooldown
	g.spawnCooldown = enemySpawnCooldown
}

// Restart begins a new session after death. Tutorial progress is kept.
func (g *Game) Restart() {
	g.resetSession()
}

// Over reports whether the player is dead.
func (g *Game) Over() bool {
	return g.Player.Health <= 0
}

// Score returns the current session score.
func (g *Game) Score() int {
	return g.score
}

// Paused reports whether gameplay ticks are suspended. The host keeps
// calling Update and Render while paused; Update just does less.
func (g *Game) Paused() bool {
	return g.paused
}

// Update advances the simulation by dt seconds. The renderer is needed for
// camera follow and for converting the aim point to world space; entity
// state is never touched by it.
func (g *Game) Update(dt float64, r zzzwe.Renderer) {
	if g.paused {
		return
	}

	// Global render state derived from health.
	r.SetGrayness(1 - g.Player.Health/playerMaxHealth)

	// Death slow-motion: the whole world keeps moving, just barely.
	effDt := dt
	if g.Over() {
		effDt = dt / deathSlowdown
	}

	r.SetTarget(g.Player.Pos)
	r.Update(effDt)

	g.updatePlayer(effDt, r)
	g.tutorial.Update(dt)
	g.resolveCollisions()
	g.integrate(effDt)
	g.cull()
	g.spawnEnemies(effDt)
}

// updatePlayer applies movement and firing. A dead player neither moves
// nor shoots, but the shot cooldown still decays so restart feels clean.
func (g *Game) updatePlayer(dt float64, r zzzwe.Renderer) {
	p := &g.Player
	p.shootCooldown -= dt

	if g.Over() {
		p.Trail.update(dt, p.Pos)
		return
	}

	vel := g.moveDirection().Scale(playerSpeed)
	p.Pos = p.Pos.Add(vel.Scale(dt))
	p.Trail.update(dt, p.Pos)

	if g.firing && p.shootCooldown <= 0 {
		p.shootCooldown = playerShootCooldown
		target := r.ScreenToWorld(g.aim)
		dir := target.Sub(p.Pos).Normalize()
		g.Bullets = append(g.Bullets, Bullet{
			Pos:      p.Pos,
			Vel:      dir.Scale(bulletSpeed),
			Lifetime: bulletLifetime,
		})
		p.shotsFired++
		g.tutorial.NoteShot()
	}
}

// resolveCollisions runs the fixed test order: all enemies against all
// bullets first, then all enemies against the player. Removal is deferred
// to end-of-tick filtering, so one enemy can be matched by several bullets
// in the same tick; only the player check skips already-dead enemies.
func (g *Game) resolveCollisions() {
	for ei := range g.Enemies {
		e := &g.Enemies[ei]
		for bi := range g.Bullets {
			b := &g.Bullets[bi]
			if b.Lifetime <= 0 {
				continue
			}
			if e.Pos.Dist(b.Pos) <= e.Radius()+bulletRadius {
				e.Ded = true
				b.Lifetime = 0
				g.score += enemyKillScore
				g.Player.shotsHit++
				g.burst(e.Pos)
			}
		}
	}

	for ei := range g.Enemies {
		e := &g.Enemies[ei]
		if e.Ded {
			continue
		}
		if !g.Over() && e.Pos.Dist(g.Player.Pos) <= e.Radius()+playerRadius {
			e.Ded = true
			g.burst(e.Pos)
			g.damagePlayer(enemyDamage)
		}
	}
}

// damagePlayer applies damage and, on death, freezes the trails.
func (g *Game) damagePlayer(amount float64) {
	g.Player.Health = math.Max(0, g.Player.Health-amount)
	if g.Player.Health > 0 {
		return
	}
	g.Player.Trail.Disabled = true
	for i := range g.Enemies {
		g.Enemies[i].Trail.Disabled = true
	}
	g.firing = false
}

// burst spawns up to particleBurstMax particles at pos with random
// velocities, sizes, and lifetimes.
func (g *Game) burst(pos zzzwe.Vec2) {
	n := int(rand.Float64() * particleBurstMax)
	for i := 0; i < n; i++ {
		g.Particles = append(g.Particles, Particle{
			Pos:      pos,
			Vel:      zzzwe.Polar(rand.Float64()*particleMaxSpeed, rand.Float64()*2*math.Pi),
			Lifetime: particleLifetime,
			Radius:   particleRadiusMin + rand.Float64()*(particleRadiusMax-particleRadiusMin),
			Color:    particleColor,
		})
	}
}

// integrate moves bullets, particles, and enemies.
func (g *Game) integrate(dt float64) {
	for i := range g.Bullets {
		g.Bullets[i].update(dt)
	}
	for i := range g.Particles {
		g.Particles[i].update(dt)
	}
	for i := range g.Enemies {
		g.Enemies[i].update(dt, g.Player.Pos)
	}
}

// cull filters out expired bullets and particles, and enemies that died
// this tick or wandered out of range.
func (g *Game) cull() {
	n := 0
	for _, b := range g.Bullets {
		if b.Lifetime > 0 {
			g.Bullets[n] = b
			n++
		}
	}
	g.Bullets = g.Bullets[:n]

	n = 0
	for _, p := range g.Particles {
		if p.Lifetime > 0 {
			g.Particles[n] = p
			n++
		}
	}
	g.Particles = g.Particles[:n]

	n = 0
	for _, e := range g.Enemies {
		if !e.Ded && e.Pos.Dist(g.Player.Pos) <= enemyDespawnRange {
			g.Enemies[n] = e
			n++
		}
	}
	g.Enemies = g.Enemies[:n]
}

// spawnEnemies runs the spawn timer once the tutorial has finished. Each
// spawn geometrically shrinks the cooldown, ramping up the pressure.
func (g *Game) spawnEnemies(dt float64) {
	if !g.tutorial.Finished() {
		return
	}
	g.spawnTimer -= dt
	if g.spawnTimer > 0 {
		return
	}
	angle := rand.Float64() * 2 * math.Pi
	pos := g.Player.Pos.Add(zzzwe.Polar(enemySpawnDistance, angle))
	g.Enemies = append(g.Enemies, newEnemy(pos))
	g.spawnCooldown *= enemySpawnRamp
	g.spawnTimer = g.spawnCooldown
}

// Render draws the frame through the renderer interface: world shapes
// first, screen-space messages last. Render never mutates game state.
func (g *Game) Render(r zzzwe.Renderer) {
	r.Clear()
	r.Background()

	for i := range g.Particles {
		g.Particles[i].render(r)
	}
	for i := range g.Bullets {
		g.Bullets[i].render(r)
	}
	for i := range g.Enemies {
		g.Enemies[i].render(r)
	}
	g.Player.render(r)

	if msg, alpha := g.tutorial.Message(); msg != "" {
		r.FillMessage(msg, messageColor.WithAlpha(alpha))
	}
	if g.paused {
		r.FillMessage("PAUSED", messageColor)
	}
	if g.Over() {
		r.FillMessage(g.gameOverMessage(), messageColor)
	}
}

// gameOverMessage reports the session result with score and accuracy.
func (g *Game) gameOverMessage() string {
	return fmt.Sprintf("GAME OVER\nScore: %d\nAccuracy: %.0f%%\nPress R to restart",
		g.score, g.Player.Accuracy()*100)
}
