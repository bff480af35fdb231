package dial

import (
	"github.com/bblue/clicker-shipper/internal/render"
)

// Context is handed to a face on activation. It bundles the dial geometry,
// the shared render handles that outlive face swaps, and the emit callback.
// The coordinator builds a fresh Context for every activation so a face
// never holds one across a deactivate.
type Context struct {
	DialX, DialY float64
	SliceRadius  float64
	CenterRadius float64

	// Frame and CenterRing are owned by the coordinator and persist
	// across face changes. Faces clear and redraw them but never
	// destroy them.
	Frame      *render.Graphic
	CenterRing *render.Graphic
	Center     *CenterIcon

	Stage    *render.Stage
	Textures render.TextureSource

	// Glow reports the current glow sweep angle so redraws triggered by
	// the animation tick pick up the latest value.
	Glow func() float64

	// Emit delivers a face event to the coordinator.
	Emit func(Event)
}

// CenterIcon is the shared display slot in the dial hub. Faces swap its
// content; the coordinator owns its lifetime.
type CenterIcon struct {
	stage *render.Stage
	tex   render.TextureSource
	x, y  float64
	size  float64

	sprite *render.Sprite
	label  *render.Label
}

func newCenterIcon(stage *render.Stage, tex render.TextureSource, x, y, size float64) *CenterIcon {
	return &CenterIcon{stage: stage, tex: tex, x: x, y: y, size: size}
}

// ShowIcon displays the texture for key, falling back to text when the
// texture source has no such key.
func (ci *CenterIcon) ShowIcon(key, fallback string) {
	ci.clear()
	if ci.tex != nil && ci.tex.Has(key) {
		s := ci.stage.NewSprite(ci.tex.Image(key), ci.x, ci.y, 30)
		s.SetDisplaySize(ci.size, ci.size)
		ci.sprite = s
		return
	}
	ci.ShowText(fallback)
}

// ShowText displays a short text label in the hub.
func (ci *CenterIcon) ShowText(text string) {
	ci.clear()
	if text == "" {
		return
	}
	l := ci.stage.NewLabel(text, 0, 0, 2, 30)
	l.Clr = render.TextBright
	l.X = ci.x - l.Width()/2
	l.Y = ci.y - 13
	ci.label = l
}

// SetAngle rotates the current icon sprite, in degrees. Text content is
// left upright.
func (ci *CenterIcon) SetAngle(deg float64) {
	if ci.sprite != nil {
		ci.sprite.SetAngle(deg)
	}
}

// Hide removes the current content without tearing down the slot.
func (ci *CenterIcon) Hide() {
	ci.clear()
}

func (ci *CenterIcon) clear() {
	if ci.sprite != nil {
		ci.sprite.Destroy()
		ci.sprite = nil
	}
	if ci.label != nil {
		ci.label.Destroy()
		ci.label = nil
	}
}
