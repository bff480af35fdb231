package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a positioned bitmap with display size and rotation.
type Sprite struct {
	node
	Img      *ebiten.Image
	X, Y     float64
	W, H     float64 // display size; 0 means natural size
	AngleDeg float64
	Alpha    float64 // 0 means fully opaque (unset)
}

// SetDisplaySize scales the sprite to w x h pixels on screen.
func (sp *Sprite) SetDisplaySize(w, h float64) {
	sp.W = w
	sp.H = h
}

// SetAngle sets the sprite rotation in degrees, clockwise.
func (sp *Sprite) SetAngle(deg float64) { sp.AngleDeg = deg }

func (sp *Sprite) draw(dst *ebiten.Image, _ *FontAtlas) {
	if sp.Img == nil {
		return
	}
	bw := float64(sp.Img.Bounds().Dx())
	bh := float64(sp.Img.Bounds().Dy())
	w, h := sp.W, sp.H
	if w == 0 || h == 0 {
		w, h = bw, bh
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-bw/2, -bh/2)
	op.GeoM.Scale(w/bw, h/bh)
	op.GeoM.Rotate(sp.AngleDeg * math.Pi / 180)
	op.GeoM.Translate(sp.X, sp.Y)
	if sp.Alpha > 0 && sp.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(sp.Alpha))
	}
	dst.DrawImage(sp.Img, op)
}

// Label is a string of atlas glyphs centered at (X, Y).
type Label struct {
	node
	Text  string
	X, Y  float64
	Scale float64
	Clr   color.RGBA
}

// SetText replaces the label content.
func (l *Label) SetText(s string) { l.Text = s }

// Width returns the rendered width in pixels.
func (l *Label) Width() float64 {
	scale := l.Scale
	if scale == 0 {
		scale = 1
	}
	return float64(len(l.Text)) * GlyphAdvance * scale
}

func (l *Label) draw(dst *ebiten.Image, atlas *FontAtlas) {
	if atlas == nil || l.Text == "" {
		return
	}
	scale := l.Scale
	if scale == 0 {
		scale = 1
	}
	startX := l.X - l.Width()/2
	y := l.Y - GlyphHeight*scale/2
	for i, r := range l.Text {
		g := atlas.Glyph(r)
		if g == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(startX+float64(i)*GlyphAdvance*scale, y)
		op.ColorScale.ScaleWithColor(l.Clr)
		dst.DrawImage(g, op)
	}
}
