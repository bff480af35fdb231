package dial

import (
	"fmt"
	"time"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/nav"
	"github.com/bblue/clicker-shipper/internal/render"
)

// RadialDial owns the face stack and the shared render handles, routes
// pointer events to the active face, and translates face events into the
// outward event stream consumed by the game layer.
type RadialDial struct {
	cfg  Config
	nav  *nav.Controller
	prog catalog.Progression

	stage *render.Stage
	tex   render.TextureSource

	SubDials  *Registry[SubDialFactory]
	Terminals *Registry[TerminalFactory]

	stack []Face

	frame      *render.Graphic
	centerRing *render.Graphic
	center     *CenterIcon

	glowAngle float64
	lastGlow  time.Time

	// activeAction is the id of the root-level action the dial is
	// currently inside, empty at the root.
	activeAction string

	handler   func(Event)
	destroyed bool
}

// New builds a dial over the given catalog root and activates the root
// navigation face. handler receives the outward events; it may be nil.
func New(cfg Config, stage *render.Stage, tex render.TextureSource, root []*catalog.MenuItem, prog catalog.Progression, handler func(Event)) *RadialDial {
	d := &RadialDial{
		cfg:       cfg,
		nav:       nav.New(root),
		prog:      prog,
		stage:     stage,
		tex:       tex,
		SubDials:  NewRegistry[SubDialFactory](),
		Terminals: NewRegistry[TerminalFactory](),
		handler:   handler,
		lastGlow:  cfg.now(),
	}
	d.SubDials.Register(Wildcard, Wildcard, func(cfg *Config, ctrl *nav.Controller, prog catalog.Progression) Face {
		return NewStandardNavFace(cfg, ctrl, prog)
	})
	d.Terminals.Register(Wildcard, Wildcard, func(cfg *Config, req TerminalRequest) Face {
		if req.Mode == TerminalRepair {
			return NewRepairTerminalFace(cfg, req.Item, req.CurrentDeg, req.TargetDeg)
		}
		return NewQuantityTerminalFace(cfg, req.Item, req.ExistingQty, req.StartAngle)
	})

	d.frame = stage.NewGraphic(5)
	d.centerRing = stage.NewGraphic(20)
	d.center = newCenterIcon(stage, tex, cfg.DialX, cfg.DialY, 36)

	d.stack = []Face{NewStandardNavFace(&d.cfg, d.nav, prog)}
	d.stack[0].Activate(d.buildContext())
	return d
}

// Depth returns the current navigation depth.
func (d *RadialDial) Depth() int { return d.nav.Depth() }

// ActiveAction returns the id of the root action currently entered, or
// the empty string at the root level.
func (d *RadialDial) ActiveAction() string { return d.activeAction }

// FaceCount returns the height of the face stack.
func (d *RadialDial) FaceCount() int { return len(d.stack) }

func (d *RadialDial) top() Face {
	if len(d.stack) == 0 {
		return nil
	}
	return d.stack[len(d.stack)-1]
}

func (d *RadialDial) buildContext() *Context {
	return &Context{
		DialX:        d.cfg.DialX,
		DialY:        d.cfg.DialY,
		SliceRadius:  d.cfg.SliceRadius,
		CenterRadius: d.cfg.CenterRadius,
		Frame:        d.frame,
		CenterRing:   d.centerRing,
		Center:       d.center,
		Stage:        d.stage,
		Textures:     d.tex,
		Glow:         func() float64 { return d.glowAngle },
		Emit:         d.handleFaceEvent,
	}
}

// HandlePointer feeds a normalized pointer event to the active face.
// Downs landing outside the dial zone are dropped; moves and ups always
// reach the face so an open gesture can finish off-dial.
func (d *RadialDial) HandlePointer(ev input.Event) {
	if d.destroyed {
		return
	}
	top := d.top()
	if top == nil {
		return
	}
	switch ev.Kind {
	case input.Down:
		if distanceTo(d.cfg.DialX, d.cfg.DialY, ev.X, ev.Y) > d.cfg.zoneRadius() {
			return
		}
		top.OnPointerDown(ev.Pointer)
	case input.Move:
		top.OnPointerMove(ev.Pointer)
	case input.Up:
		top.OnPointerUp(ev.Pointer)
	}
}

// Tick advances the glow sweep and any face animation. Call once per
// frame with the current time.
func (d *RadialDial) Tick(now time.Time) {
	if d.destroyed {
		return
	}
	if t, ok := d.top().(ticker); ok {
		t.tick(now)
	}
	if now.Sub(d.lastGlow) < d.cfg.GlowInterval {
		return
	}
	d.lastGlow = now
	d.glowAngle = normalizeAngle(d.glowAngle + 0.06)
	if top := d.top(); top != nil {
		top.Redraw()
	}
}

// ShowTerminalDial pops back to the root face and pushes the terminal
// face registered for the active action and the item's type.
func (d *RadialDial) ShowTerminalDial(item *catalog.MenuItem, existingQty int, startAngle float64) error {
	return d.showTerminal(TerminalRequest{
		Item:        item,
		Mode:        TerminalQuantity,
		ExistingQty: existingQty,
		StartAngle:  startAngle,
	})
}

// ShowRepairDial pushes the calibration ring for an item whose
// orientation drifted to currentDeg away from targetDeg.
func (d *RadialDial) ShowRepairDial(item *catalog.MenuItem, currentDeg, targetDeg float64) error {
	return d.showTerminal(TerminalRequest{
		Item:       item,
		Mode:       TerminalRepair,
		CurrentDeg: currentDeg,
		TargetDeg:  targetDeg,
	})
}

func (d *RadialDial) showTerminal(req TerminalRequest) error {
	if d.destroyed {
		return fmt.Errorf("dial: destroyed")
	}
	factory, err := d.Terminals.Resolve(d.actionKey(), req.Item.Type)
	if err != nil {
		return err
	}
	d.popAboveRoot()
	d.push(factory(&d.cfg, req))
	return nil
}

func (d *RadialDial) actionKey() string {
	if d.activeAction == "" {
		return Wildcard
	}
	return d.activeAction
}

// Reset unwinds the stack and the navigation state back to the root.
func (d *RadialDial) Reset() {
	if d.destroyed {
		return
	}
	d.popAboveRoot()
	d.nav.Reset()
	d.activeAction = ""
	root := d.stack[0]
	root.Deactivate()
	root.Activate(d.buildContext())
}

// Destroy tears down every face and the shared handles. The dial is
// unusable afterwards.
func (d *RadialDial) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true
	for i := len(d.stack) - 1; i >= 0; i-- {
		d.stack[i].Destroy()
	}
	d.stack = nil
	d.frame.Destroy()
	d.centerRing.Destroy()
	d.center.clear()
}

func (d *RadialDial) push(f Face) {
	if top := d.top(); top != nil {
		top.Deactivate()
	}
	d.stack = append(d.stack, f)
	f.Activate(d.buildContext())
}

// pop removes the top face and reactivates the one beneath it. The root
// face is never popped.
func (d *RadialDial) pop() {
	if len(d.stack) <= 1 {
		return
	}
	top := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	top.Destroy()
	d.top().Activate(d.buildContext())
}

// popAboveRoot destroys every non-root face without reactivating the
// intermediates.
func (d *RadialDial) popAboveRoot() {
	for len(d.stack) > 1 {
		top := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		top.Destroy()
	}
}

func (d *RadialDial) emit(e Event) {
	if d.handler != nil {
		d.handler(e)
	}
}

// handleFaceEvent interprets events raised by the active face.
func (d *RadialDial) handleFaceEvent(e Event) {
	switch e.Kind {
	case EventDrillDown:
		if e.Depth == 1 && e.Item != nil {
			d.enterAction(e.Item)
		}
		d.emit(Event{Kind: EventLevelChanged, Item: e.Item, Depth: d.nav.Depth()})

	case EventGoBack:
		if _, isNav := d.top().(*StandardNavFace); isNav {
			// the face already popped a navigation level
			if d.nav.Depth() == 0 {
				if len(d.stack) > 1 {
					d.pop()
				}
				d.activeAction = ""
			}
			d.emit(Event{Kind: EventGoBack, Depth: d.nav.Depth()})
			d.emit(Event{Kind: EventLevelChanged, Depth: d.nav.Depth()})
			return
		}
		// a terminal face backing out
		d.pop()
		d.emit(Event{Kind: EventGoBack, Depth: d.nav.Depth()})

	case EventItemConfirmed:
		d.emit(e)

	case EventQuantityConfirmed:
		d.pop()
		d.emit(e)

	case EventRepairSettled:
		if e.Success {
			d.pop()
		}
		d.emit(e)

	case EventRepairRotated:
		d.emit(e)
	}
}

// enterAction records which root action the dial drilled into and swaps
// in the sub-dial face registered for it. The registered face shares the
// navigation controller, so the level already drilled stays put.
func (d *RadialDial) enterAction(item *catalog.MenuItem) {
	d.activeAction = item.ID
	factory, err := d.SubDials.Resolve(item.ID, item.Type)
	if err != nil {
		return
	}
	d.push(factory(&d.cfg, d.nav, d.prog))
}
