package zzzwe

import (
	"image"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Message text is drawn from a fixed bitmap glyph sheet addressed by
// character code. The sheet is rasterized once from basicfont.Face7x13:
// one row of white glyphs for the printable ASCII range, tinted at draw time.
const (
	fontFirstCode  = ' '
	fontLastCode   = '~'
	fontGlyphCount = int(fontLastCode-fontFirstCode) + 1

	fontGlyphWidth  = 7  // advance of Face7x13
	fontGlyphHeight = 13
	fontAscent      = 11

	// fontScale is the screen-space magnification applied to message glyphs.
	fontScale = 5.0
)

// fontSheet is compiled lazily on first use (single-threaded, no sync.Once).
var fontSheet *ebiten.Image

// ensureFontSheet rasterizes the glyph sheet on first call.
func ensureFontSheet() *ebiten.Image {
	if fontSheet != nil {
		return fontSheet
	}

	src := image.NewNRGBA(image.Rect(0, 0, fontGlyphCount*fontGlyphWidth, fontGlyphHeight))
	d := font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	var buf [1]byte
	for i := 0; i < fontGlyphCount; i++ {
		buf[0] = byte(fontFirstCode) + byte(i)
		d.Dot = fixed.P(i*fontGlyphWidth, fontAscent)
		d.DrawString(string(buf[:]))
	}

	fontSheet = ebiten.NewImageFromImage(src)
	return fontSheet
}

// glyphColumn returns the sheet column for a character code, or -1 for
// characters outside the printable range (those render as blanks).
func glyphColumn(r rune) int {
	if r < fontFirstCode || r > fontLastCode {
		return -1
	}
	return int(r - fontFirstCode)
}

// glyphSrcRect returns the sheet sub-rectangle for a glyph column.
func glyphSrcRect(col int) image.Rectangle {
	x := col * fontGlyphWidth
	return image.Rect(x, 0, x+fontGlyphWidth, fontGlyphHeight)
}

// messageLines splits a message into lines for centered layout.
func messageLines(text string) []string {
	return strings.Split(text, "\n")
}

// messageLineOrigin returns the top-left screen position of a centered line
// of lineLen characters. Lines are centered horizontally; the whole block is
// centered vertically.
func messageLineOrigin(lineLen, lineIndex, lineCount int, viewportW, viewportH float64) (x, y float64) {
	lineW := float64(lineLen) * fontGlyphWidth * fontScale
	lineH := fontGlyphHeight * fontScale
	blockH := float64(lineCount) * lineH
	x = (viewportW - lineW) / 2
	y = (viewportH-blockH)/2 + float64(lineIndex)*lineH
	return
}
