package zzzwe

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// painter implements Renderer by painting each shape immediately onto an
// owned frame image, with the camera transform applied per call.
type painter struct {
	*Camera
	frame    *ebiten.Image
	grayness float64
}

// newPainter creates the immediate-mode backend sized to the given viewport.
func newPainter(width, height int) *painter {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &painter{
		Camera: newCamera(width, height),
		frame:  ebiten.NewImage(width, height),
	}
}

// SetViewport resizes the owned frame and recomputes the camera scale.
func (p *painter) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Camera.SetViewport(width, height)
	b := p.frame.Bounds()
	if b.Dx() != width || b.Dy() != height {
		p.frame.Deallocate()
		p.frame = ebiten.NewImage(width, height)
	}
}

// SetTimestamp is a no-op: the painted background is not animated.
func (p *painter) SetTimestamp(t float64) {}

// SetGrayness sets the desaturation factor applied to circle colors.
func (p *painter) SetGrayness(g float64) {
	p.grayness = clamp01(g)
}

// Clear paints the background color over the whole frame.
func (p *painter) Clear() {
	p.frame.Fill(backgroundColor.toRGBA())
}

// Background draws the offset-column cell grid over the visible world rect.
// Candidate cells are derived by unprojecting the viewport corners, so the
// grid always covers exactly what the camera can see.
func (p *painter) Background() {
	topLeft, bottomRight := p.visibleBounds()

	lineWidth := float32(gridLineWidth * p.scale)
	clr := gridLineColor.toRGBA()

	col0 := int(math.Floor(topLeft.X/gridCellWidth)) - 1
	col1 := int(math.Ceil(bottomRight.X / gridCellWidth))
	for col := col0; col <= col1; col++ {
		// Alternate columns are shifted by half a cell for a brick tiling.
		offset := 0.0
		if col%2 != 0 {
			offset = gridCellHeight / 2
		}
		row0 := int(math.Floor((topLeft.Y - offset) / gridCellHeight))
		row1 := int(math.Ceil((bottomRight.Y - offset) / gridCellHeight))
		for row := row0; row <= row1; row++ {
			x0 := float64(col) * gridCellWidth
			y0 := float64(row)*gridCellHeight + offset
			p.strokeCell(x0, y0, lineWidth, clr)
		}
	}
}

// strokeCell draws one grid cell outline as a connected polyline.
func (p *painter) strokeCell(x0, y0 float64, lineWidth float32, clr color.Color) {
	corners := [5]Vec2{
		{X: x0, Y: y0},
		{X: x0 + gridCellWidth, Y: y0},
		{X: x0 + gridCellWidth, Y: y0 + gridCellHeight},
		{X: x0, Y: y0 + gridCellHeight},
		{X: x0, Y: y0},
	}
	prev := p.WorldToScreen(corners[0])
	for _, c := range corners[1:] {
		cur := p.WorldToScreen(c)
		vector.StrokeLine(p.frame,
			float32(prev.X), float32(prev.Y),
			float32(cur.X), float32(cur.Y),
			lineWidth, clr, true)
		prev = cur
	}
}

// FillCircle paints a filled circle at the camera-transformed position.
// Grayness is applied to the color here, at draw time.
func (p *painter) FillCircle(center Vec2, radius float64, c Color) {
	s := p.WorldToScreen(center)
	vector.DrawFilledCircle(p.frame,
		float32(s.X), float32(s.Y),
		float32(radius*p.scale),
		c.Grayscale(p.grayness).toRGBA(), true)
}

// FillMessage paints centered screen-space text glyph by glyph from the
// bitmap font sheet. Messages ignore the camera and grayness.
func (p *painter) FillMessage(text string, c Color) {
	sheet := ensureFontSheet()
	lines := messageLines(text)
	clr := c.toRGBA()

	for li, line := range lines {
		x, y := messageLineOrigin(len(line), li, len(lines), p.viewportW, p.viewportH)
		for i, r := range line {
			col := glyphColumn(r)
			if col < 0 {
				continue
			}
			glyph := sheet.SubImage(glyphSrcRect(col)).(*ebiten.Image)
			var op ebiten.DrawImageOptions
			op.GeoM.Scale(fontScale, fontScale)
			op.GeoM.Translate(x+float64(i)*fontGlyphWidth*fontScale, y)
			op.ColorScale.ScaleWithColor(clr)
			p.frame.DrawImage(glyph, &op)
		}
	}
}

// Present blits the finished frame to the screen.
func (p *painter) Present(screen *ebiten.Image) {
	screen.DrawImage(p.frame, nil)
}
