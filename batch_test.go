package zzzwe

import "testing"

// testBatch builds a batchRenderer without compiling shaders; the
// accumulation paths never touch them.
func testBatch() *batchRenderer {
	return &batchRenderer{Camera: newCamera(1920, 1080)}
}

func TestCircleBatchCapacityClamp(t *testing.T) {
	r := testBatch()
	for i := 0; i < circleCapacity+100; i++ {
		r.FillCircle(Vec2{X: float64(i)}, 10, ColorWhite)
	}
	if r.circles.count != circleCapacity {
		t.Errorf("count = %d, want %d", r.circles.count, circleCapacity)
	}

	// the overflow pushes must not have clobbered the last stored instance
	last := circleCapacity - 1
	if got := r.circles.centers[2*last]; got != float32(last) {
		t.Errorf("last center x = %f, want %d", got, last)
	}
}

func TestCircleBatchStoresAttributes(t *testing.T) {
	r := testBatch()
	c := Color{R: 0.25, G: 0.5, B: 0.75, A: 1}
	r.FillCircle(Vec2{X: 3, Y: -4}, 42, c)

	if r.circles.count != 1 {
		t.Fatalf("count = %d, want 1", r.circles.count)
	}
	if r.circles.centers[0] != 3 || r.circles.centers[1] != -4 {
		t.Errorf("center = (%f, %f)", r.circles.centers[0], r.circles.centers[1])
	}
	if r.circles.radii[0] != 42 {
		t.Errorf("radius = %f", r.circles.radii[0])
	}
	got := [4]float32{r.circles.colors[0], r.circles.colors[1], r.circles.colors[2], r.circles.colors[3]}
	if got != [4]float32{0.25, 0.5, 0.75, 1} {
		t.Errorf("color = %v", got)
	}
}

func TestGlyphBatchCapacityClamp(t *testing.T) {
	r := testBatch()
	line := make([]byte, glyphCapacity+50)
	for i := range line {
		line[i] = 'a'
	}
	r.FillMessage(string(line), ColorWhite)
	if r.glyphs.count != glyphCapacity {
		t.Errorf("count = %d, want %d", r.glyphs.count, glyphCapacity)
	}
}

func TestFillMessageRecordsLines(t *testing.T) {
	r := testBatch()
	c := MustHex("#ffffff")
	r.FillMessage("AB\nCDE", c)

	if len(r.glyphLines) != 2 {
		t.Fatalf("glyphLines = %d, want 2", len(r.glyphLines))
	}
	first, second := r.glyphLines[0], r.glyphLines[1]
	if first.start != 0 || first.count != 2 || first.textLen != 2 {
		t.Errorf("first line = %+v", first)
	}
	if second.start != 2 || second.count != 3 || second.textLen != 3 {
		t.Errorf("second line = %+v", second)
	}
	if first.lineIndex != 0 || second.lineIndex != 1 {
		t.Errorf("line indices = %d, %d", first.lineIndex, second.lineIndex)
	}
	if first.lineCount != 2 || second.lineCount != 2 {
		t.Errorf("line counts = %d, %d", first.lineCount, second.lineCount)
	}
	if second.color != c {
		t.Errorf("line color = %v, want %v", second.color, c)
	}

	// 'C' maps to sheet column C-' ' at line column 0
	if got := r.glyphs.sheetCols[2]; got != uint16('C'-' ') {
		t.Errorf("sheet col = %d, want %d", got, 'C'-' ')
	}
	if got := r.glyphs.lineCols[2]; got != 0 {
		t.Errorf("line col = %d, want 0", got)
	}
}

func TestFillMessageSkipsUndrawable(t *testing.T) {
	r := testBatch()
	r.FillMessage("a\tb", ColorWhite)

	if len(r.glyphLines) != 1 {
		t.Fatalf("glyphLines = %d, want 1", len(r.glyphLines))
	}
	line := r.glyphLines[0]
	if line.count != 2 {
		t.Errorf("drawable glyphs = %d, want 2", line.count)
	}
	// layout still accounts for the skipped character
	if line.textLen != 3 {
		t.Errorf("textLen = %d, want 3", line.textLen)
	}
	if got := r.glyphs.lineCols[1]; got != 2 {
		t.Errorf("b line col = %d, want 2", got)
	}
}

func TestClearResetsAccumulation(t *testing.T) {
	r := testBatch()
	r.Background()
	r.FillCircle(Vec2{}, 5, ColorWhite)
	r.FillMessage("hello", ColorWhite)

	r.Clear()

	if r.circles.count != 0 {
		t.Errorf("circles after Clear = %d", r.circles.count)
	}
	if r.glyphs.count != 0 {
		t.Errorf("glyphs after Clear = %d", r.glyphs.count)
	}
	if len(r.glyphLines) != 0 {
		t.Errorf("glyphLines after Clear = %d", len(r.glyphLines))
	}
	if r.backgroundOn {
		t.Error("background still queued after Clear")
	}
}

func TestSetGraynessClamps(t *testing.T) {
	r := testBatch()
	r.SetGrayness(2)
	if r.grayness != 1 {
		t.Errorf("grayness = %f, want 1", r.grayness)
	}
	r.SetGrayness(-1)
	if r.grayness != 0 {
		t.Errorf("grayness = %f, want 0", r.grayness)
	}
}
