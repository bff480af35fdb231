// Package input folds Ebitengine mouse and touch state into a single
// ordered stream of normalized pointer events, in screen coordinates.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Pointer slots: 0 is the mouse, 1..9 are touches.
const maxPointers = 10

// Pointer is one normalized pointer sample.
type Pointer struct {
	X, Y      float64
	ID        int
	FromTouch bool
}

// EventKind tags a pointer transition.
type EventKind uint8

const (
	Down EventKind = iota
	Move
	Up
)

// Event is a pointer transition delivered to the dial.
type Event struct {
	Kind EventKind
	Pointer
}

// TouchSample is one live touch as reported by the host this frame.
type TouchSample struct {
	ID   int64
	X, Y float64
}

// Poller tracks per-pointer state across frames and emits edge events.
type Poller struct {
	mouseDown  bool
	mouseX     float64
	mouseY     float64
	touchUsed  [maxPointers]bool
	touchMap   [maxPointers]int64
	touchLastX [maxPointers]float64
	touchLastY [maxPointers]float64

	scratchIDs   []ebiten.TouchID
	scratchTouch []TouchSample
}

// NewPoller creates an idle poller.
func NewPoller() *Poller {
	return &Poller{}
}

// Poll reads the current Ebitengine input state and returns this frame's
// pointer events. Call once per Update.
func (p *Poller) Poll() []Event {
	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	p.scratchIDs = ebiten.AppendTouchIDs(p.scratchIDs[:0])
	p.scratchTouch = p.scratchTouch[:0]
	for _, tid := range p.scratchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		p.scratchTouch = append(p.scratchTouch, TouchSample{
			ID: int64(tid), X: float64(tx), Y: float64(ty),
		})
	}

	return p.step(float64(mx), float64(my), down, p.scratchTouch)
}

// step is the pure per-frame reducer behind Poll.
func (p *Poller) step(mx, my float64, mouseDown bool, touches []TouchSample) []Event {
	var events []Event

	// Mouse is pointer 0.
	moved := mx != p.mouseX || my != p.mouseY
	switch {
	case mouseDown && !p.mouseDown:
		events = append(events, Event{Down, Pointer{X: mx, Y: my, ID: 0}})
	case !mouseDown && p.mouseDown:
		events = append(events, Event{Up, Pointer{X: mx, Y: my, ID: 0}})
	case moved:
		events = append(events, Event{Move, Pointer{X: mx, Y: my, ID: 0}})
	}
	p.mouseDown = mouseDown
	p.mouseX, p.mouseY = mx, my

	// Touches take slots 1..9. A newly allocated slot is a Down, a known
	// slot that changed position is a Move.
	var active [maxPointers]bool
	for _, t := range touches {
		slot, isNew := p.touchSlot(t.ID)
		if slot < 0 {
			continue // all slots busy; drop the touch
		}
		active[slot] = true
		ptr := Pointer{X: t.X, Y: t.Y, ID: slot, FromTouch: true}
		if isNew {
			events = append(events, Event{Down, ptr})
		} else if p.touchLastX[slot] != t.X || p.touchLastY[slot] != t.Y {
			events = append(events, Event{Move, ptr})
		}
		p.touchLastX[slot] = t.X
		p.touchLastY[slot] = t.Y
	}

	// A vanished touch synthesizes the release at its last position.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !active[i] {
			events = append(events, Event{Up, Pointer{
				X: p.touchLastX[i], Y: p.touchLastY[i], ID: i, FromTouch: true,
			}})
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}

	return events
}

// touchSlot maps a host touch id to a pointer slot, allocating one for
// ids seen for the first time. Returns -1 when every slot is in use.
func (p *Poller) touchSlot(id int64) (slot int, isNew bool) {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == id {
			return i, false
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = id
			return i, true
		}
	}
	return -1, false
}
