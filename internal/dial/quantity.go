package dial

import (
	"fmt"
	"math"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/render"
)

// Quantity arc tuning. Each quantity step spans 60 degrees of trigger
// travel; dragging counterclockwise raises the count, clockwise lowers it
// down to zero (remove).
const (
	travelMin        = -math.Pi / 2
	travelMax        = 5 * math.Pi / 6
	travelPerUnit    = 5 * math.Pi / 6 // radians of travel per 1.0 progress
	maxQuantity      = 3
	quantityIconSize = 40
)

// quantityProgress maps an existing quantity to the trigger's pre-offset
// arc progress when the face reopens on an already-placed item.
var quantityProgress = [maxQuantity + 1]float64{0, 0, 0.4, 0.8}

// QuantityTerminalFace is the arc selector opened after a leaf item is
// confirmed. A draggable trigger knob rides a circular track; angular
// travel from the arc origin picks a quantity from 0 to 3, and releasing
// the knob confirms it.
type QuantityTerminalFace struct {
	cfg  *Config
	ctx  *Context
	gate pointerGate

	item     *catalog.MenuItem
	origin   float64 // screen angle of zero progress
	travel   float64 // accumulated signed travel, counterclockwise positive
	quantity int
	armed    bool
	lastAng  float64

	track *render.Graphic
	icon  *render.Sprite
	label *render.Label
}

// NewQuantityTerminalFace builds the selector with its trigger pre-offset
// to the arc position matching existingQty, so reopening an item resumes
// at its current count. startAngle is the slice-center angle the item was
// confirmed at.
func NewQuantityTerminalFace(cfg *Config, item *catalog.MenuItem, existingQty int, startAngle float64) *QuantityTerminalFace {
	f := &QuantityTerminalFace{cfg: cfg, item: item, origin: startAngle}
	f.gate.cfg = cfg
	existingQty = clampInt(existingQty, 0, maxQuantity)
	f.quantity = existingQty
	f.travel = quantityProgress[existingQty] * travelPerUnit
	return f
}

// Quantity returns the currently selected count.
func (f *QuantityTerminalFace) Quantity() int { return f.quantity }

// Activate implements Face.
func (f *QuantityTerminalFace) Activate(ctx *Context) {
	f.ctx = ctx
	f.gate.reset()
	f.armed = false
	f.Redraw()
}

// Deactivate implements Face.
func (f *QuantityTerminalFace) Deactivate() {
	f.destroyTransient()
	f.ctx = nil
}

// Destroy implements Face.
func (f *QuantityTerminalFace) Destroy() {
	f.Deactivate()
}

func (f *QuantityTerminalFace) destroyTransient() {
	if f.track != nil {
		f.track.Destroy()
		f.track = nil
	}
	if f.icon != nil {
		f.icon.Destroy()
		f.icon = nil
	}
	if f.label != nil {
		f.label.Destroy()
		f.label = nil
	}
}

func (f *QuantityTerminalFace) trackRadius() float64 {
	return (f.ctx.CenterRadius + f.ctx.SliceRadius) / 2
}

// triggerAngle is the knob's screen angle. Counterclockwise travel
// decreases the screen angle (y grows downward).
func (f *QuantityTerminalFace) triggerAngle() float64 {
	return f.origin - f.travel
}

func (f *QuantityTerminalFace) triggerPos() (x, y float64) {
	a := f.triggerAngle()
	r := f.trackRadius()
	return f.ctx.DialX + r*math.Cos(a), f.ctx.DialY + r*math.Sin(a)
}

// Redraw implements Face.
func (f *QuantityTerminalFace) Redraw() {
	if f.ctx == nil {
		return
	}
	f.destroyTransient()

	cx, cy := float32(f.ctx.DialX), float32(f.ctx.DialY)
	g := f.ctx.Stage.NewGraphic(10)
	f.track = g

	g.FillStyle(render.WithAlpha(render.PanelDark, 0.92))
	g.FillCircle(cx, cy, float32(f.ctx.SliceRadius))
	g.LineStyle(3, render.BorderBlue)
	g.StrokeCircle(cx, cy, float32(f.ctx.SliceRadius))

	// track and filled progress arc
	r := float32(f.trackRadius())
	g.LineStyle(4, render.WithAlpha(render.BorderBlue, 0.7))
	g.StrokeCircle(cx, cy, r)
	if f.travel > 0 {
		g.LineStyle(6, render.NeonGreen)
		g.StrokeArc(cx, cy, r, float32(f.triggerAngle()), float32(f.origin))
	}

	// trigger knob
	tx, ty := f.triggerPos()
	knob := render.NeonBlue
	if f.armed {
		knob = render.HighlightGold
	}
	g.FillStyle(knob)
	g.FillCircle(float32(tx), float32(ty), 12)

	f.drawHub()
}

func (f *QuantityTerminalFace) drawHub() {
	g := f.ctx.CenterRing
	g.Clear()
	g.FillStyle(render.PanelMedium)
	g.FillCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.CenterRadius))
	g.LineStyle(2, render.NeonGreen)
	g.StrokeCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.CenterRadius))

	f.ctx.Center.Hide()
	tex := f.ctx.Textures
	if tex != nil && tex.Has(f.item.IconKey()) {
		s := f.ctx.Stage.NewSprite(tex.Image(f.item.IconKey()), f.ctx.DialX, f.ctx.DialY-10, 30)
		s.SetDisplaySize(quantityIconSize, quantityIconSize)
		f.icon = s
	}
	l := f.ctx.Stage.NewLabel(fmt.Sprintf("x%d", f.quantity), 0, 0, 2, 30)
	l.Clr = render.TextBright
	l.X = f.ctx.DialX - l.Width()/2
	l.Y = f.ctx.DialY + 16
	f.label = l
}

// OnPointerDown implements Face. The gesture arms only when the press
// lands on the trigger knob.
func (f *QuantityTerminalFace) OnPointerDown(p input.Pointer) {
	if f.ctx == nil || !f.gate.acceptDown(p) {
		return
	}
	tx, ty := f.triggerPos()
	if distanceTo(tx, ty, p.X, p.Y) <= f.cfg.TriggerHitRadius {
		f.armed = true
		f.lastAng = angleAt(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
		f.Redraw()
	}
}

// OnPointerMove implements Face. Travel accumulates via shortest-path
// deltas so the knob follows the pointer across the -π/π seam without
// jumping.
func (f *QuantityTerminalFace) OnPointerMove(p input.Pointer) {
	if f.ctx == nil || !f.armed || !f.gate.owns(p) {
		return
	}
	a := angleAt(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
	d := shortestDelta(f.lastAng, a)
	f.lastAng = a
	f.travel = clampFloat(f.travel-d, travelMin, travelMax)
	q := quantityForTravel(f.travel)
	if q != f.quantity {
		f.quantity = q
	}
	f.Redraw()
}

// OnPointerUp implements Face. Releasing an armed trigger confirms the
// selected quantity and resets the face to its defaults; an unarmed
// release over the hub backs out.
func (f *QuantityTerminalFace) OnPointerUp(p input.Pointer) {
	if !f.gate.acceptUp(p) {
		return
	}
	if f.ctx == nil {
		return
	}
	if f.armed {
		f.armed = false
		q := f.quantity
		f.travel = 0
		f.quantity = 1
		f.Redraw()
		f.ctx.Emit(Event{Kind: EventQuantityConfirmed, Item: f.item, Quantity: q})
		return
	}
	if distanceTo(f.ctx.DialX, f.ctx.DialY, p.X, p.Y) <= f.ctx.CenterRadius {
		f.ctx.Emit(Event{Kind: EventGoBack})
	}
}

// quantityForTravel maps clamped trigger travel to a count. Zero travel
// is quantity 1; a half turn counterclockwise less thirty degrees is the
// maximum; ninety degrees clockwise removes the item.
func quantityForTravel(travel float64) int {
	progress := travel / travelPerUnit
	return clampInt(int(math.Round(progress*2.5+1)), 0, maxQuantity)
}
