package zzzwe

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Per-frame instance capacities. Pushes beyond capacity are silently
// dropped rather than reallocating: the buffers never grow, which caps
// the per-frame instance count deterministically under shape spikes.
const (
	circleCapacity = 1024
	glyphCapacity  = 1024
)

// circleBatch holds per-instance circle attributes in fixed-capacity
// parallel arrays, indexed 0..count-1.
type circleBatch struct {
	centers [2 * circleCapacity]float32 // world x, y
	radii   [circleCapacity]float32
	colors  [4 * circleCapacity]float32 // non-premultiplied rgba
	count   int
}

// push appends one circle instance. Silently dropped when full.
func (b *circleBatch) push(center Vec2, radius float64, c Color) {
	if b.count >= circleCapacity {
		return
	}
	i := b.count
	b.centers[2*i] = float32(center.X)
	b.centers[2*i+1] = float32(center.Y)
	b.radii[i] = float32(radius)
	b.colors[4*i] = float32(c.R)
	b.colors[4*i+1] = float32(c.G)
	b.colors[4*i+2] = float32(c.B)
	b.colors[4*i+3] = float32(c.A)
	b.count++
}

func (b *circleBatch) reset() {
	b.count = 0
}

// glyphBatch holds per-instance glyph slots: the sheet column addressing
// the character's cell in the font image, and the character's column index
// within its message line. The horizontal line origin itself is per-line
// state, so each queued line becomes its own sub-pass at present time.
type glyphBatch struct {
	sheetCols [glyphCapacity]uint16
	lineCols  [glyphCapacity]uint16
	count     int
}

// push appends one glyph slot. Silently dropped when full.
func (b *glyphBatch) push(sheetCol, lineCol int) {
	if b.count >= glyphCapacity {
		return
	}
	b.sheetCols[b.count] = uint16(sheetCol)
	b.lineCols[b.count] = uint16(lineCol)
	b.count++
}

func (b *glyphBatch) reset() {
	b.count = 0
}

// glyphLine records one queued message line: its slot range in the glyph
// batch plus the layout inputs needed to place and tint it.
type glyphLine struct {
	start, count int
	textLen      int // full line length, including undrawable characters
	lineIndex    int
	lineCount    int
	color        Color
}

// batchRenderer implements Renderer by deferred batched submission: shapes
// are accumulated into fixed-capacity buffers during the frame and flushed
// in one draw call per shape family at Present. Three passes compose the
// frame in fixed order: background, circles, glyphs.
type batchRenderer struct {
	*Camera
	timestamp float64
	grayness  float64

	circles      circleBatch
	glyphs       glyphBatch
	glyphLines   []glyphLine
	backgroundOn bool

	bgShader   *ebiten.Shader
	circShader *ebiten.Shader

	// Reused submission buffers, uploaded once per pass. The circle pass
	// caps out at 4*circleCapacity vertices, safely inside uint16 indices.
	verts  []ebiten.Vertex
	inds   []uint32
	inds16 []uint16

	bgUniforms   map[string]any
	circUniforms map[string]any
}

// newBatchRenderer creates the instanced backend, compiling its shaders.
// A shader compile failure means the platform cannot run this backend and
// is reported as a *UnsupportedPlatformError.
func newBatchRenderer(width, height int) (*batchRenderer, error) {
	bg, err := ensureBackgroundShader()
	if err != nil {
		return nil, &UnsupportedPlatformError{Backend: BackendBatch, Cause: err}
	}
	circ, err := ensureCircleShader()
	if err != nil {
		return nil, &UnsupportedPlatformError{Backend: BackendBatch, Cause: err}
	}
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &batchRenderer{
		Camera:       newCamera(width, height),
		bgShader:     bg,
		circShader:   circ,
		verts:        make([]ebiten.Vertex, 0, 4*circleCapacity),
		inds:         make([]uint32, 0, 6*circleCapacity),
		inds16:       make([]uint16, 0, 6*circleCapacity),
		bgUniforms:   make(map[string]any, 8),
		circUniforms: make(map[string]any, 1),
	}, nil
}

// SetTimestamp feeds the background animation clock.
func (r *batchRenderer) SetTimestamp(t float64) {
	r.timestamp = t
}

// SetGrayness sets the desaturation factor applied in the circle pass.
func (r *batchRenderer) SetGrayness(g float64) {
	r.grayness = clamp01(g)
}

// Clear resets all per-frame accumulation.
func (r *batchRenderer) Clear() {
	r.circles.reset()
	r.glyphs.reset()
	r.glyphLines = r.glyphLines[:0]
	r.backgroundOn = false
}

// Background queues the procedural full-screen pass for this frame.
func (r *batchRenderer) Background() {
	r.backgroundOn = true
}

// FillCircle enqueues one circle instance. The color is stored as given;
// grayness is applied uniformly at present time, not here.
func (r *batchRenderer) FillCircle(center Vec2, radius float64, c Color) {
	r.circles.push(center, radius, c)
}

// FillMessage enqueues a centered screen-space message. Each line is
// recorded as its own glyph sub-pass.
func (r *batchRenderer) FillMessage(text string, c Color) {
	lines := messageLines(text)
	for li, line := range lines {
		gl := glyphLine{
			start:     r.glyphs.count,
			textLen:   len(line),
			lineIndex: li,
			lineCount: len(lines),
			color:     c,
		}
		for i, ch := range line {
			col := glyphColumn(ch)
			if col < 0 {
				continue
			}
			r.glyphs.push(col, i)
		}
		gl.count = r.glyphs.count - gl.start
		r.glyphLines = append(r.glyphLines, gl)
	}
}

// Present flushes the accumulated frame: background pass, then one circle
// draw, then one glyph draw per queued line.
func (r *batchRenderer) Present(screen *ebiten.Image) {
	screen.Fill(backgroundColor.toRGBA())
	if r.backgroundOn {
		r.presentBackground(screen)
	}
	r.presentCircles(screen)
	r.presentGlyphs(screen)
}

// presentBackground runs the full-screen procedural pass.
func (r *batchRenderer) presentBackground(screen *ebiten.Image) {
	u := r.bgUniforms
	u["Time"] = float32(r.timestamp)
	u["CameraPos"] = []float32{float32(r.Position.X), float32(r.Position.Y)}
	u["Viewport"] = []float32{float32(r.viewportW), float32(r.viewportH)}
	u["Scale"] = float32(r.scale)
	u["Cell"] = []float32{gridCellWidth, gridCellHeight}
	u["LineWidth"] = float32(gridLineWidth)
	u["BgColor"] = colorUniform(backgroundColor)
	u["GridColor"] = colorUniform(gridLineColor)

	var op ebiten.DrawRectShaderOptions
	op.Uniforms = u
	screen.DrawRectShader(int(r.viewportW), int(r.viewportH), r.bgShader, &op)
}

// presentCircles uploads the circle instances as one quad per instance and
// issues a single shader draw. The quad's local coordinates ride in the
// source position; the fragment shader discards outside the unit circle.
func (r *batchRenderer) presentCircles(screen *ebiten.Image) {
	if r.circles.count == 0 {
		return
	}

	view := r.computeView()
	r.verts = r.verts[:0]
	r.inds16 = r.inds16[:0]

	for i := 0; i < r.circles.count; i++ {
		cx, cy := transformPoint(view,
			float64(r.circles.centers[2*i]),
			float64(r.circles.centers[2*i+1]))
		rad := float64(r.circles.radii[i]) * r.scale

		cr := r.circles.colors[4*i]
		cg := r.circles.colors[4*i+1]
		cb := r.circles.colors[4*i+2]
		ca := r.circles.colors[4*i+3]

		base := uint16(len(r.verts))
		// Corners: TL, TR, BL, BR with local coords in [-1, 1].
		lx := [4]float32{-1, 1, -1, 1}
		ly := [4]float32{-1, -1, 1, 1}
		for j := 0; j < 4; j++ {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   float32(cx) + lx[j]*float32(rad),
				DstY:   float32(cy) + ly[j]*float32(rad),
				SrcX:   lx[j],
				SrcY:   ly[j],
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.inds16 = append(r.inds16,
			base+0, base+1, base+2,
			base+1, base+3, base+2,
		)
	}

	r.circUniforms["Grayness"] = float32(r.grayness)

	var op ebiten.DrawTrianglesShaderOptions
	op.Uniforms = r.circUniforms
	screen.DrawTrianglesShader(r.verts, r.inds16, r.circShader, &op)
}

// presentGlyphs draws each queued message line as one batched draw against
// the font sheet.
func (r *batchRenderer) presentGlyphs(screen *ebiten.Image) {
	if len(r.glyphLines) == 0 {
		return
	}
	sheet := ensureFontSheet()

	for _, line := range r.glyphLines {
		if line.count == 0 {
			continue
		}
		originX, originY := messageLineOrigin(line.textLen, line.lineIndex, line.lineCount, r.viewportW, r.viewportH)

		// Premultiplied tint (flush-time color scale, like sprite batching).
		ca := float32(line.color.A)
		cr := float32(line.color.R) * ca
		cg := float32(line.color.G) * ca
		cb := float32(line.color.B) * ca

		r.verts = r.verts[:0]
		r.inds = r.inds[:0]

		for s := line.start; s < line.start+line.count; s++ {
			srcRect := glyphSrcRect(int(r.glyphs.sheetCols[s]))
			x := originX + float64(r.glyphs.lineCols[s])*fontGlyphWidth*fontScale
			y := originY

			sx0 := float32(srcRect.Min.X)
			sy0 := float32(srcRect.Min.Y)
			sx1 := float32(srcRect.Max.X)
			sy1 := float32(srcRect.Max.Y)

			dx0 := float32(x)
			dy0 := float32(y)
			dx1 := float32(x + fontGlyphWidth*fontScale)
			dy1 := float32(y + fontGlyphHeight*fontScale)

			base := uint32(len(r.verts))
			r.verts = append(r.verts,
				ebiten.Vertex{DstX: dx0, DstY: dy0, SrcX: sx0, SrcY: sy0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
				ebiten.Vertex{DstX: dx1, DstY: dy0, SrcX: sx1, SrcY: sy0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
				ebiten.Vertex{DstX: dx0, DstY: dy1, SrcX: sx0, SrcY: sy1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
				ebiten.Vertex{DstX: dx1, DstY: dy1, SrcX: sx1, SrcY: sy1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
			)
			r.inds = append(r.inds,
				base+0, base+1, base+2,
				base+1, base+3, base+2,
			)
		}

		var op ebiten.DrawTrianglesOptions
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		screen.DrawTriangles32(r.verts, r.inds, sheet, &op)
	}
}

// colorUniform converts a Color to a vec4 uniform value.
func colorUniform(c Color) []float32 {
	return []float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}
