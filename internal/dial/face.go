package dial

import (
	"time"

	"github.com/bblue/clicker-shipper/internal/input"
)

// Face is one interchangeable behavior of the dial. Exactly one face is
// active at a time; pointer events are routed to it by the coordinator.
//
// Lifecycle: Activate builds the face's transient display objects and
// paints the shared handles. Deactivate destroys the transient objects
// but keeps logical state, so a face lower in the stack resumes where it
// left off when reactivated. Destroy is terminal.
type Face interface {
	Activate(ctx *Context)
	Deactivate()
	Destroy()

	// Redraw tears down and rebuilds the face's visuals from current
	// state. Safe to call repeatedly; inert while deactivated.
	Redraw()

	OnPointerDown(p input.Pointer)
	OnPointerMove(p input.Pointer)
	OnPointerUp(p input.Pointer)
}

// ticker is implemented by faces that animate on a fixed cadence.
type ticker interface {
	tick(now time.Time)
}

// pointerGate enforces single-pointer gestures. Once a pointer opens a
// gesture, downs and ups from other pointer ids are ignored until that
// pointer lifts. It also swallows synthetic mouse presses that platforms
// replay shortly after a touch lift.
type pointerGate struct {
	cfg          *Config
	held         bool
	pointerID    int
	lastTouchEnd time.Time
}

// acceptDown reports whether a down event opens a gesture.
func (g *pointerGate) acceptDown(p input.Pointer) bool {
	if g.held {
		return false
	}
	if !g.cfg.isTouch(p) && !g.lastTouchEnd.IsZero() &&
		g.cfg.now().Sub(g.lastTouchEnd) < g.cfg.MouseSynthesisWindow {
		return false
	}
	g.held = true
	g.pointerID = p.ID
	return true
}

// owns reports whether p is the pointer that opened the current gesture.
func (g *pointerGate) owns(p input.Pointer) bool {
	return g.held && g.pointerID == p.ID
}

// acceptUp closes the gesture if p owns it. Duplicate ups and ups from
// foreign pointers report false. Touch lifts are always recorded for the
// synthesis window, owned or not.
func (g *pointerGate) acceptUp(p input.Pointer) bool {
	if g.cfg.isTouch(p) {
		g.lastTouchEnd = g.cfg.now()
	}
	if !g.owns(p) {
		return false
	}
	g.held = false
	return true
}

// reset abandons any open gesture. The touch-end timestamp survives so
// the synthesis window still applies across face changes.
func (g *pointerGate) reset() {
	g.held = false
}
