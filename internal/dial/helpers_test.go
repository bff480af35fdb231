package dial

import (
	"fmt"
	"math"
	"time"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/render"
)

// fakeClock steps time deterministically for the synthesis window and
// animation cadences.
type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Unix(1000, 0)} }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testConfig(clk *fakeClock) Config {
	cfg := DefaultConfig(400, 300)
	cfg.Now = clk.now
	return cfg
}

// eventSink collects emitted events.
type eventSink struct{ events []Event }

func (s *eventSink) emit(e Event) { s.events = append(s.events, e) }

func (s *eventSink) byKind(k EventKind) []Event {
	var out []Event
	for _, e := range s.events {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

func newTestContext(cfg *Config, stage *render.Stage, emit func(Event)) *Context {
	return &Context{
		DialX:        cfg.DialX,
		DialY:        cfg.DialY,
		SliceRadius:  cfg.SliceRadius,
		CenterRadius: cfg.CenterRadius,
		Frame:        stage.NewGraphic(5),
		CenterRing:   stage.NewGraphic(20),
		Center:       newCenterIcon(stage, nil, cfg.DialX, cfg.DialY, 36),
		Stage:        stage,
		Glow:         func() float64 { return 0 },
		Emit:         emit,
	}
}

// pointAt returns screen coordinates at the given angle and radius from
// the dial center.
func pointAt(cfg *Config, angle, radius float64) (float64, float64) {
	return cfg.DialX + radius*math.Cos(angle), cfg.DialY + radius*math.Sin(angle)
}

// annulusMid is a radius comfortably inside the slice annulus.
func annulusMid(cfg *Config) float64 {
	return (cfg.innerRadius() + cfg.SliceRadius) / 2
}

func mouseAt(x, y float64) input.Pointer {
	return input.Pointer{X: x, Y: y, ID: 0}
}

func touchAt(x, y float64, slot int) input.Pointer {
	return input.Pointer{X: x, Y: y, ID: slot, FromTouch: true}
}

func leafItem(id string, cost int) *catalog.MenuItem {
	return &catalog.MenuItem{ID: id, Name: id, Cost: cost, Type: "goods"}
}

func leafLevel(n int) []*catalog.MenuItem {
	items := make([]*catalog.MenuItem, n)
	for i := range items {
		items[i] = leafItem(fmt.Sprintf("item_%d", i), 10+i)
	}
	return items
}

// fixedProg unlocks every category to the same depth.
type fixedProg int

func (p fixedProg) UnlockedDepth(string) int { return int(p) }
