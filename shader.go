package zzzwe

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Kage shader sources ---
// All shaders use //kage:unit pixels as required by Ebitengine.

// backgroundShaderSrc shades the full-screen background pass procedurally:
// every destination pixel is unprojected into world space through the camera
// uniforms, then classified as grid line or background fill. Line brightness
// pulses per cell with Time.
const backgroundShaderSrc = `//kage:unit pixels
package main

var Time float
var CameraPos vec2
var Viewport vec2
var Scale float
var Cell vec2
var LineWidth float
var BgColor vec4
var GridColor vec4

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	world := (dst.xy-Viewport*0.5)/Scale + CameraPos
	col := floor(world.x / Cell.x)
	offset := mod(col, 2.0) * Cell.y * 0.5
	row := floor((world.y - offset) / Cell.y)
	local := vec2(world.x-col*Cell.x, world.y-offset-row*Cell.y)
	edge := min(min(local.x, Cell.x-local.x), min(local.y, Cell.y-local.y))
	if edge < LineWidth*0.5 {
		pulse := 0.5 + 0.5*sin(Time*2.0+col*1.3+row*2.1)
		c := mix(GridColor, GridColor*1.5, pulse*0.5)
		return vec4(c.rgb, 1)
	}
	return BgColor
}
`

// circleShaderSrc shades the circle-instance pass. Each instance quad
// carries its local coordinates in [-1, 1] through src; fragments outside
// the unit circle are discarded. Grayness desaturates all instances
// uniformly at present time.
const circleShaderSrc = `//kage:unit pixels
package main

var Grayness float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	if dot(src, src) > 1.0 {
		discard()
	}
	y := 0.2126*color.r + 0.7152*color.g + 0.0722*color.b
	rgb := mix(color.rgb, vec3(y), Grayness)
	return vec4(rgb*color.a, color.a)
}
`

// Lazy shader compilation (no sync.Once — rendering is single-threaded).
// Unlike effect shaders, failure here is not a programmer error: it means
// the platform lacks the required graphics capability, so the error is
// returned for the caller to surface.
var (
	backgroundShader *ebiten.Shader
	circleShader     *ebiten.Shader
)

func ensureBackgroundShader() (*ebiten.Shader, error) {
	if backgroundShader == nil {
		s, err := ebiten.NewShader([]byte(backgroundShaderSrc))
		if err != nil {
			return nil, fmt.Errorf("compile background shader: %w", err)
		}
		backgroundShader = s
	}
	return backgroundShader, nil
}

func ensureCircleShader() (*ebiten.Shader, error) {
	if circleShader == nil {
		s, err := ebiten.NewShader([]byte(circleShaderSrc))
		if err != nil {
			return nil, fmt.Errorf("compile circle shader: %w", err)
		}
		circleShader = s
	}
	return circleShader, nil
}
