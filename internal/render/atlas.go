package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Glyph cell metrics for basicfont.Face7x13.
	GlyphAdvance = 7
	GlyphHeight  = 13

	atlasFirst = 32  // space
	atlasLast  = 126 // tilde
	atlasCols  = 16
)

// FontAtlas holds a white-on-transparent glyph atlas for the printable
// ASCII range, generated at startup. Labels tint glyphs per draw.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [atlasLast - atlasFirst + 1]*ebiten.Image
}

// NewFontAtlas renders the ASCII range with basicfont.Face7x13.
func NewFontAtlas() *FontAtlas {
	count := atlasLast - atlasFirst + 1
	rows := (count + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphAdvance, rows*GlyphHeight))
	face := basicfont.Face7x13

	for i := 0; i < count; i++ {
		cx := (i % atlasCols) * GlyphAdvance
		cy := (i / atlasCols) * GlyphHeight
		drawFontGlyph(img, face, cx, cy, rune(atlasFirst+i))
	}

	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for i := 0; i < count; i++ {
		x := (i % atlasCols) * GlyphAdvance
		y := (i / atlasCols) * GlyphHeight
		rect := image.Rect(x, y, x+GlyphAdvance, y+GlyphHeight)
		a.glyphs[i] = eimg.SubImage(rect).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for a rune, or nil when the rune
// falls outside the printable ASCII range.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < atlasFirst || r > atlasLast {
		return nil
	}
	return a.glyphs[r-atlasFirst]
}

func drawFontGlyph(dst *image.NRGBA, face font.Face, cx, cy int, r rune) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cx, cy+face.Metrics().Ascent.Round()),
	}
	d.DrawString(string(r))
}
