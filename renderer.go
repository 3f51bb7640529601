package zzzwe

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// Reference resolution the camera scale is computed against. A viewport of
// exactly this size maps one world unit to one pixel; other sizes scale by
// min(width/refScreenWidth, height/refScreenHeight).
const (
	refScreenWidth  = 1920.0
	refScreenHeight = 1080.0
)

// Shared background pattern parameters. Both backends draw the same cell
// grid; only the rasterization differs.
const (
	gridCellWidth  = 200.0 // world units
	gridCellHeight = 220.0
	gridLineWidth  = 4.0
)

var (
	backgroundColor = MustHex("#181818")
	gridLineColor   = MustHex("#303030")
)

// Backend identifies a Renderer implementation.
type Backend uint8

const (
	// BackendPainter paints each shape immediately onto a software surface.
	BackendPainter Backend = iota
	// BackendBatch accumulates shape instances into fixed-capacity buffers
	// and submits one draw call per shape family at present time.
	BackendBatch
)

func (b Backend) String() string {
	switch b {
	case BackendPainter:
		return "painter"
	case BackendBatch:
		return "batch"
	}
	return "unknown"
}

// Renderer is the drawing contract shared by both backends. Callers drive it
// the same way regardless of implementation: feed viewport/time/camera state,
// Clear, enqueue shapes and messages, then Present to the screen.
//
// A Renderer never mutates game state; its side effects are confined to its
// owned drawing surface.
type Renderer interface {
	// SetViewport updates the output size in pixels and recomputes the
	// camera scale against the reference resolution.
	SetViewport(width, height int)

	// SetTimestamp feeds seconds-since-start for time-varying background
	// animation. Backends without animated backgrounds ignore it.
	SetTimestamp(t float64)

	// SetTarget points the camera's velocity at a new follow target.
	SetTarget(target Vec2)

	// Update integrates the camera position by dt seconds.
	Update(dt float64)

	// SetGrayness sets the global desaturation factor in [0, 1] applied to
	// all world-space circle colors at draw time.
	SetGrayness(g float64)

	// Clear resets per-frame draw accumulation and paints the background color.
	Clear()

	// Background draws the tiled world-space background pattern over the
	// area visible through the current camera and viewport.
	Background()

	// FillCircle draws a filled circle in world space.
	FillCircle(center Vec2, radius float64, c Color)

	// FillMessage draws possibly-multiline centered text in screen space.
	// Messages are unaffected by the camera and by grayness.
	FillMessage(text string, c Color)

	// ScreenToWorld inverts the camera+viewport transform for a screen point.
	ScreenToWorld(p Vec2) Vec2

	// Present flushes all accumulated draw state to the screen.
	Present(screen *ebiten.Image)
}

// NewRenderer constructs the requested backend sized to the given viewport.
// If the backend's required graphics capability is unavailable it fails with
// a *UnsupportedPlatformError; no fallback to another backend is attempted.
func NewRenderer(backend Backend, width, height int) (Renderer, error) {
	switch backend {
	case BackendPainter:
		return newPainter(width, height), nil
	case BackendBatch:
		return newBatchRenderer(width, height)
	}
	return nil, &UnsupportedPlatformError{Backend: backend, Cause: errors.New("unknown backend")}
}
