package dial

import (
	"image/color"
	"math"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/nav"
	"github.com/bblue/clicker-shipper/internal/render"
)

// highlight sentinel for the pointer resting over the hub.
const centerSlice = -2

// StandardNavFace is the pie-slice navigation face. It renders the current
// catalog level as 2..6 slices around the hub and interprets press, drag
// and release into drill-down, confirm and go-back gestures.
//
// The confirmed slice on release is the last slice the pointer occupied
// outside the hub, so a drag that wanders through the hub and out again
// still confirms the slice it ended on, and a release over the hub
// confirms the last slice crossed before entering it.
type StandardNavFace struct {
	cfg  *Config
	nav  *nav.Controller
	prog catalog.Progression
	ctx  *Context
	gate pointerGate

	items []*catalog.MenuItem

	dragStart     int // slice where the drag began, -1 when no drag armed
	lastNonCenter int
	highlight     int
	inCenter      bool

	slices *render.Graphic
	icons  []*render.Sprite
	labels []*render.Label
}

// NewStandardNavFace builds a navigation face over a shared controller.
// It is the default SubDialFactory.
func NewStandardNavFace(cfg *Config, ctrl *nav.Controller, prog catalog.Progression) *StandardNavFace {
	f := &StandardNavFace{cfg: cfg, nav: ctrl, prog: prog}
	f.gate.cfg = cfg
	f.clearGesture()
	return f
}

func (f *StandardNavFace) clearGesture() {
	f.dragStart = -1
	f.lastNonCenter = -1
	f.highlight = -1
	f.inCenter = false
}

// Activate implements Face.
func (f *StandardNavFace) Activate(ctx *Context) {
	f.ctx = ctx
	f.gate.reset()
	f.clearGesture()
	f.items = f.nav.Current()
	f.Redraw()
}

// Deactivate implements Face. Navigation state survives; only the
// display objects go away.
func (f *StandardNavFace) Deactivate() {
	f.destroyTransient()
	f.ctx = nil
}

// Destroy implements Face.
func (f *StandardNavFace) Destroy() {
	f.Deactivate()
}

func (f *StandardNavFace) destroyTransient() {
	if f.slices != nil {
		f.slices.Destroy()
		f.slices = nil
	}
	for _, s := range f.icons {
		s.Destroy()
	}
	f.icons = nil
	for _, l := range f.labels {
		l.Destroy()
	}
	f.labels = nil
}

// Redraw implements Face.
func (f *StandardNavFace) Redraw() {
	if f.ctx == nil {
		return
	}
	f.destroyTransient()
	f.drawFrame()
	f.drawCenter()
	f.drawSlices()
}

func (f *StandardNavFace) drawFrame() {
	g := f.ctx.Frame
	g.Clear()
	g.LineStyle(3, render.BorderBlue)
	g.StrokeCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.SliceRadius))
	glow := float32(f.ctx.Glow())
	g.LineStyle(4, render.NeonBlue)
	g.StrokeArc(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.SliceRadius), glow, glow+0.6)
}

func (f *StandardNavFace) drawCenter() {
	g := f.ctx.CenterRing
	g.Clear()
	fill := render.PanelDark
	ring := render.BorderBlue
	if f.highlight == centerSlice {
		fill = render.PanelMedium
		ring = render.NeonBlue
	}
	g.FillStyle(fill)
	g.FillCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.CenterRadius))
	g.LineStyle(2, ring)
	g.StrokeCircle(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.CenterRadius))

	if f.nav.CanGoBack() {
		f.ctx.Center.ShowIcon("skill-down", "<")
		f.ctx.Center.SetAngle(180) // chevron points back up
	} else {
		f.ctx.Center.Hide()
	}
}

func (f *StandardNavFace) drawSlices() {
	n := sliceCount(len(f.items))
	inner := f.cfg.innerRadius()
	mid := (inner + f.ctx.SliceRadius) / 2

	g := f.ctx.Stage.NewGraphic(10)
	f.slices = g
	for i := 0; i < n; i++ {
		start := sliceStart + float64(i)*sliceStep(n)
		g.FillStyle(f.sliceFill(i))
		g.FillSlice(float32(f.ctx.DialX), float32(f.ctx.DialY), float32(f.ctx.SliceRadius),
			float32(start), float32(start+sliceStep(n)))
		g.LineStyle(1, render.BorderBlue)
		g.Line(
			float32(f.ctx.DialX+inner*math.Cos(start)), float32(f.ctx.DialY+inner*math.Sin(start)),
			float32(f.ctx.DialX+f.ctx.SliceRadius*math.Cos(start)), float32(f.ctx.DialY+f.ctx.SliceRadius*math.Sin(start)))

		item := f.itemAt(i)
		if item == nil {
			continue
		}
		a := sliceCenterAngle(i, n)
		f.drawSliceIcon(item, f.ctx.DialX+mid*math.Cos(a), f.ctx.DialY+mid*math.Sin(a))
	}
}

func (f *StandardNavFace) drawSliceIcon(item *catalog.MenuItem, x, y float64) {
	tex := f.ctx.Textures
	key := item.IconKey()
	if f.locked(item) {
		key = "skill-blocked"
	}
	if tex != nil && tex.Has(key) {
		s := f.ctx.Stage.NewSprite(tex.Image(key), x, y, 15)
		s.SetDisplaySize(40, 40)
		f.icons = append(f.icons, s)
		return
	}
	text := item.Name
	if len(text) > 6 {
		text = text[:6]
	}
	l := f.ctx.Stage.NewLabel(text, 0, 0, 1, 15)
	l.Clr = render.TextDim
	l.X = x - l.Width()/2
	l.Y = y - 6
	f.labels = append(f.labels, l)
}

func (f *StandardNavFace) sliceFill(i int) color.RGBA {
	if item := f.itemAt(i); item != nil && f.locked(item) {
		return render.WithAlpha(render.PanelDark, 0.9)
	}
	if f.highlight == i {
		return render.WithAlpha(render.NeonBlue, 0.45)
	}
	return render.WithAlpha(render.PanelMedium, 0.85)
}

func (f *StandardNavFace) itemAt(i int) *catalog.MenuItem {
	if i < 0 || i >= len(f.items) {
		return nil
	}
	return f.items[i]
}

// locked reports whether a nav-down node sits at or beyond the unlocked
// depth of its category. Regular items are never locked.
func (f *StandardNavFace) locked(item *catalog.MenuItem) bool {
	if f.prog == nil {
		return false
	}
	cat, level, ok := catalog.NavDownLevel(item.ID)
	if !ok {
		return false
	}
	return level >= f.prog.UnlockedDepth(cat)
}

// OnPointerDown implements Face.
func (f *StandardNavFace) OnPointerDown(p input.Pointer) {
	if f.ctx == nil || !f.gate.acceptDown(p) {
		return
	}
	f.clearGesture()
	d := distanceTo(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
	if d > f.cfg.innerRadius() && d <= f.ctx.SliceRadius {
		i := f.sliceAt(p)
		f.dragStart = i
		f.lastNonCenter = i
		f.highlight = i
		f.Redraw()
	}
}

// OnPointerMove implements Face.
func (f *StandardNavFace) OnPointerMove(p input.Pointer) {
	if f.ctx == nil || !f.gate.owns(p) || f.dragStart < 0 {
		return
	}
	d := distanceTo(f.ctx.DialX, f.ctx.DialY, p.X, p.Y)
	if d <= f.cfg.innerRadius() {
		if !f.inCenter {
			f.inCenter = true
			f.highlight = centerSlice
			f.Redraw()
		}
		return
	}
	i := f.sliceAt(p)
	f.inCenter = false
	if i != f.highlight {
		f.highlight = i
		f.lastNonCenter = i
		f.Redraw()
	}
}

// OnPointerUp implements Face.
func (f *StandardNavFace) OnPointerUp(p input.Pointer) {
	if !f.gate.acceptUp(p) {
		return
	}
	if f.ctx == nil {
		return
	}
	dragged := f.dragStart >= 0
	confirm := f.lastNonCenter
	overCenter := distanceTo(f.ctx.DialX, f.ctx.DialY, p.X, p.Y) <= f.cfg.innerRadius()
	f.clearGesture()

	if !dragged {
		if overCenter && f.nav.CanGoBack() {
			f.goBack()
			return
		}
		f.Redraw()
		return
	}
	f.confirmSlice(confirm)
}

func (f *StandardNavFace) goBack() {
	f.nav.GoBack()
	f.items = f.nav.Current()
	f.Redraw()
	f.ctx.Emit(Event{Kind: EventGoBack, Depth: f.nav.Depth()})
}

func (f *StandardNavFace) confirmSlice(i int) {
	item := f.itemAt(i)
	if item == nil {
		f.Redraw()
		return
	}
	if f.locked(item) {
		// locked nav-down absorbs the gesture
		f.Redraw()
		return
	}
	if item.IsNavigable() {
		f.nav.DrillDown(item)
		f.items = f.nav.Current()
		f.Redraw()
		f.ctx.Emit(Event{Kind: EventDrillDown, Item: item, Depth: f.nav.Depth()})
		return
	}
	f.Redraw()
	n := sliceCount(len(f.items))
	f.ctx.Emit(Event{
		Kind:             EventItemConfirmed,
		Item:             item,
		SliceCenterAngle: sliceCenterAngle(i, n),
	})
}

func (f *StandardNavFace) sliceAt(p input.Pointer) int {
	n := sliceCount(len(f.items))
	return sliceIndexAt(angleAt(f.ctx.DialX, f.ctx.DialY, p.X, p.Y), n)
}
