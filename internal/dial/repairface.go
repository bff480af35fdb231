package dial

import (
	"math"
	"time"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/render"
)

// Repair ring tuning. A release within tolerance settles the item.
const (
	repairTolerance = 10.0 // degrees
	repairNearBand  = 30.0
	wobbleDecay     = 0.5
	wobbleScale     = 1.6
)

// RepairTerminalFace is the rotational calibration ring. The whole dial
// body acts as a grab surface; dragging spins the ring, and releasing it
// within tolerance of upright settles the item. Drag velocity feeds a
// cosmetic wobble on the hub icon.
type RepairTerminalFace struct {
	cfg  *Config
	ctx  *Context
	gate pointerGate

	item      *catalog.MenuItem
	rotation  float64 // degrees, unbounded while dragging
	targetDeg float64
	armed     bool
	lastAng   float64

	velocity   float64 // EMA of per-sample angular delta, degrees
	wobble     float64
	lastWobble time.Time

	ring *render.Graphic
}

// NewRepairTerminalFace builds the ring at currentDeg. targetDeg is the
// orientation the collaborator wants restored; the ring reports rotation
// relative to it.
func NewRepairTerminalFace(cfg *Config, item *catalog.MenuItem, currentDeg, targetDeg float64) *RepairTerminalFace {
	f := &RepairTerminalFace{
		cfg:       cfg,
		item:      item,
		rotation:  normalizeDeg(currentDeg - targetDeg),
		targetDeg: targetDeg,
	}
	f.gate.cfg = cfg
	return f
}

// Rotation returns the ring's current offset from the target, in degrees.
func (f *RepairTerminalFace) Rotation() float64 { return f.rotation }

// Activate implements Face.
func (f *RepairTerminalFace) Activate(ctx *Context) {
	f.ctx = ctx
	f.gate.reset()
	f.armed = false
	f.velocity = 0
	f.wobble = 0
	f.Redraw()
}

// Deactivate implements Face.
func (f *RepairTerminalFace) Deactivate() {
	if f.ring != nil {
		f.ring.Destroy()
		f.ring = nil
	}
	f.ctx = nil
}

// Destroy implements Face.
func (f *RepairTerminalFace) Destroy() {
	f.Deactivate()
}

// Redraw implements Face.
func (f *RepairTerminalFace) Redraw() {
	if f.ctx == nil {
		return
	}
	if f.ring != nil {
		f.ring.Destroy()
	}
	cx, cy := float32(f.ctx.DialX), float32(f.ctx.DialY)
	g := f.ctx.Stage.NewGraphic(10)
	f.ring = g

	g.FillStyle(render.WithAlpha(render.PanelDark, 0.92))
	g.FillCircle(cx, cy, float32(f.ctx.SliceRadius))

	off := math.Abs(normalizeDeg(f.rotation))
	ring := render.AlertRed
	switch {
	case off <= repairTolerance:
		ring = render.NeonGreen
	case off <= repairNearBand:
		ring = render.HighlightGold
	}
	g.LineStyle(5, ring)
	g.StrokeCircle(cx, cy, float32(f.ctx.SliceRadius))

	// rotation marker riding the rim
	a := sliceStart + f.rotation*math.Pi/180
	r := float64(f.ctx.SliceRadius)
	g.FillStyle(ring)
	g.FillCircle(float32(f.ctx.DialX+r*math.Cos(a)), float32(f.ctx.DialY+r*math.Sin(a)), 9)

	// upright notch
	g.LineStyle(3, render.TextDim)
	top := sliceStart
	g.Line(
		float32(f.ctx.DialX+(r-14)*math.Cos(top)), float32(f.ctx.DialY+(r-14)*math.Sin(top)),
		float32(f.ctx.DialX+(r+6)*math.Cos(top)), float32(f.ctx.DialY+(r+6)*math.Sin(top)))

	f.drawHub()
}

func (f *RepairTerminalFace) drawHub() {
	g := f.ctx.CenterRing
	g.Clear()
	g.FillStyle(render.PanelMedium)
	g.FillCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.CenterRadius))
	g.LineStyle(2, render.BorderBlue)
	g.StrokeCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.CenterRadius))

	f.ctx.Center.ShowIcon(f.item.IconKey(), f.item.Name)
	f.ctx.Center.SetAngle(f.rotation + f.wobble)
}

// OnPointerDown implements Face. Any press on the dial body grabs the ring.
func (f *RepairTerminalFace) OnPointerDown(p input.Pointer) {
	if f.ctx == nil || !f.gate.acceptDown(p) {
		return
	}
	d := distanceTo(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
	if d > f.ctx.CenterRadius && d <= f.cfg.zoneRadius() {
		f.armed = true
		f.lastAng = angleAt(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
		f.lastWobble = f.cfg.now()
	}
}

// OnPointerMove implements Face.
func (f *RepairTerminalFace) OnPointerMove(p input.Pointer) {
	if f.ctx == nil || !f.armed || !f.gate.owns(p) {
		return
	}
	a := angleAt(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
	d := shortestDelta(f.lastAng, a) * 180 / math.Pi
	f.lastAng = a
	f.rotation += d
	f.velocity = wobbleDecay*f.velocity + (1-wobbleDecay)*d
	f.Redraw()
	f.ctx.Emit(Event{Kind: EventRepairRotated, Item: f.item, Rotation: normalizeDeg(f.rotation)})
}

// OnPointerUp implements Face. An armed release normalizes the rotation
// and settles; an unarmed release over the hub backs out.
func (f *RepairTerminalFace) OnPointerUp(p input.Pointer) {
	if !f.gate.acceptUp(p) {
		return
	}
	if f.ctx == nil {
		return
	}
	if f.armed {
		f.armed = false
		f.velocity = 0
		f.wobble = 0
		f.rotation = normalizeDeg(f.rotation)
		success := math.Abs(f.rotation) <= repairTolerance
		if success {
			f.rotation = 0
		}
		f.Redraw()
		f.ctx.Emit(Event{Kind: EventRepairSettled, Item: f.item, Rotation: f.rotation, Success: success})
		return
	}
	if distanceTo(f.ctx.DialX, f.ctx.DialY, p.X, p.Y) <= f.ctx.CenterRadius {
		f.rotation = 0
		f.Redraw()
		f.ctx.Emit(Event{Kind: EventGoBack})
	}
}

// tick drives the wobble animation while the ring is grabbed.
func (f *RepairTerminalFace) tick(now time.Time) {
	if f.ctx == nil || !f.armed {
		return
	}
	if now.Sub(f.lastWobble) < f.cfg.WobbleInterval {
		return
	}
	f.lastWobble = now
	f.velocity *= wobbleDecay
	f.wobble = f.velocity * wobbleScale
	f.ctx.Center.SetAngle(f.rotation + f.wobble)
}
