// Command zzzwe runs the arcade shooter with either rendering backend:
//
//	zzzwe -renderer=batch    (default; instanced, shader-based)
//	zzzwe -renderer=painter  (immediate-mode software painting)
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tsoding/zzzwe"
	"github.com/tsoding/zzzwe/game"
)

const (
	windowTitle   = "zzzwe"
	initialWidth  = 1280
	initialHeight = 720
)

// keyBindings maps physical keys to logical game keys.
var keyBindings = map[ebiten.Key]game.Key{
	ebiten.KeyW:      game.KeyMoveUp,
	ebiten.KeyS:      game.KeyMoveDown,
	ebiten.KeyA:      game.KeyMoveLeft,
	ebiten.KeyD:      game.KeyMoveRight,
	ebiten.KeyEscape: game.KeyPause,
	ebiten.KeyR:      game.KeyRestart,
}

// app adapts the game and renderer to ebiten's frame callbacks.
type app struct {
	game     *game.Game
	renderer zzzwe.Renderer

	width, height int
	elapsed       float64
	debug         bool
}

func (a *app) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	a.elapsed += dt
	a.renderer.SetTimestamp(a.elapsed)

	for phys, key := range keyBindings {
		if inpututil.IsKeyJustPressed(phys) {
			a.game.KeyDown(key)
		}
		if inpututil.IsKeyJustReleased(phys) {
			a.game.KeyUp(key)
		}
	}

	mx, my := ebiten.CursorPosition()
	a.game.PointerMove(zzzwe.Vec2{X: float64(mx), Y: float64(my)})
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.PointerDown()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.game.PointerUp()
	}

	// Losing focus pauses gameplay ticks; the loop itself keeps running
	// and rendering the last state.
	if ebiten.IsFocused() {
		a.game.Update(dt, a.renderer)
	}
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	a.game.Render(a.renderer)
	a.renderer.Present(screen)
	if a.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.renderer.SetViewport(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	backendFlag := flag.String("renderer", "batch", "rendering backend: batch or painter")
	debugFlag := flag.Bool("debug", false, "show FPS overlay")
	flag.Parse()

	var backend zzzwe.Backend
	switch *backendFlag {
	case "batch":
		backend = zzzwe.BackendBatch
	case "painter":
		backend = zzzwe.BackendPainter
	default:
		log.Fatalf("unknown renderer %q (want batch or painter)", *backendFlag)
	}

	renderer, err := zzzwe.NewRenderer(backend, initialWidth, initialHeight)
	if err != nil {
		var unsupported *zzzwe.UnsupportedPlatformError
		if errors.As(err, &unsupported) {
			log.Fatalf("the %s renderer is not supported on this platform: %v\ntry -renderer=painter", unsupported.Backend, unsupported.Cause)
		}
		log.Fatal(err)
	}

	var store game.ProgressStore
	if fs := newFileStore(); fs != nil {
		store = fs
	}

	a := &app{
		game:     game.NewGame(store),
		renderer: renderer,
		width:    initialWidth,
		height:   initialHeight,
	}
	a.debug = *debugFlag

	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
