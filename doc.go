// Package zzzwe is the rendering core of a small real-time 2D arcade
// shooter built on [Ebitengine].
//
// The package centers on one abstraction: the [Renderer] interface, a
// drawing contract implemented by two interchangeable backends. The painter
// backend ([BackendPainter]) rasterizes each shape immediately onto an owned
// surface. The batch backend ([BackendBatch]) accumulates per-frame shape
// instances into fixed-capacity buffers and flushes them in one draw call
// per shape family, with procedural background and circle shading done in
// [Kage] shaders. Both present the same shapes at the same positions; only
// rasterization differs.
//
// Pick a backend at startup and drive it the same way either way:
//
//	r, err := zzzwe.NewRenderer(zzzwe.BackendBatch, 1920, 1080)
//	if err != nil {
//		// *UnsupportedPlatformError: this backend cannot run here.
//	}
//	// each frame:
//	r.SetTimestamp(t)
//	r.SetTarget(playerPos)
//	r.Update(dt)
//	r.Clear()
//	r.Background()
//	r.FillCircle(pos, radius, color)
//	r.FillMessage("PAUSED", zzzwe.ColorWhite)
//	r.Present(screen)
//
// The camera follows its target with a deliberately frame-rate-dependent
// first-order drift; see [Camera] for the exact update order and why it
// must be preserved.
//
// Game state lives in the game subpackage; this package never mutates it.
//
// [Ebitengine]: https://ebitengine.org
// [Kage]: https://ebitengine.org/en/documents/shader.html
package zzzwe
