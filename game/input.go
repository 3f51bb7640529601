package game

import "github.com/tsoding/zzzwe"

// Key is a logical game input. The host maps physical keys to these; the
// game never reads the keyboard itself.
type Key uint8

const (
	KeyMoveUp Key = iota
	KeyMoveDown
	KeyMoveLeft
	KeyMoveRight
	KeyPause
	KeyRestart

	moveKeyCount = 4
)

// KeyDown records a key press. Movement keys feed the held-direction set
// and the tutorial; pause toggles; restart only applies after death.
func (g *Game) KeyDown(k Key) {
	switch k {
	case KeyMoveUp, KeyMoveDown, KeyMoveLeft, KeyMoveRight:
		g.held[k] = true
		g.tutorial.NoteMove()
	case KeyPause:
		if !g.Over() {
			g.paused = !g.paused
		}
	case KeyRestart:
		if g.Over() {
			g.Restart()
		}
	}
}

// KeyUp records a key release.
func (g *Game) KeyUp(k Key) {
	if k < moveKeyCount {
		g.held[k] = false
	}
}

// PointerMove updates the aim position in screen coordinates. Conversion
// to a world-space shoot target happens at fire time, through the
// renderer's current camera.
func (g *Game) PointerMove(p zzzwe.Vec2) {
	g.aim = p
}

// PointerDown starts continuous fire.
func (g *Game) PointerDown() {
	g.firing = true
}

// PointerUp stops continuous fire.
func (g *Game) PointerUp() {
	g.firing = false
}

// moveDirection returns the unit direction from the currently held
// movement keys. Normalizing (rather than clamping per axis) keeps
// diagonal movement from being faster.
func (g *Game) moveDirection() zzzwe.Vec2 {
	var d zzzwe.Vec2
	if g.held[KeyMoveUp] {
		d.Y -= 1
	}
	if g.held[KeyMoveDown] {
		d.Y += 1
	}
	if g.held[KeyMoveLeft] {
		d.X -= 1
	}
	if g.held[KeyMoveRight] {
		d.X += 1
	}
	return d.Normalize()
}
