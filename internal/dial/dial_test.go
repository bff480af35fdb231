package dial

import (
	"math"
	"testing"
	"time"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/render"
)

type dialFixture struct {
	d     *RadialDial
	cfg   Config
	clk   *fakeClock
	sink  *eventSink
	stage *render.Stage
}

func newDialFixture(t *testing.T) *dialFixture {
	t.Helper()
	clk := newFakeClock()
	cfg := testConfig(clk)
	sink := &eventSink{}
	stage := render.NewStage(nil)
	root := []*catalog.MenuItem{
		{ID: "action_ship", Name: "Ship", Type: "action", Children: leafLevel(4)},
		{ID: "action_reorient", Name: "Reorient", Type: "action", Children: leafLevel(2)},
	}
	d := New(cfg, stage, nil, root, fixedProg(2), sink.emit)
	return &dialFixture{d: d, cfg: cfg, clk: clk, sink: sink, stage: stage}
}

func (fx *dialFixture) down(x, y float64) {
	fx.d.HandlePointer(input.Event{Kind: input.Down, Pointer: mouseAt(x, y)})
}

func (fx *dialFixture) move(x, y float64) {
	fx.d.HandlePointer(input.Event{Kind: input.Move, Pointer: mouseAt(x, y)})
}

func (fx *dialFixture) up(x, y float64) {
	fx.d.HandlePointer(input.Event{Kind: input.Up, Pointer: mouseAt(x, y)})
}

func (fx *dialFixture) tap(x, y float64) {
	fx.down(x, y)
	fx.up(x, y)
}

func (fx *dialFixture) tapSlice(i, n int) {
	x, y := pointAt(&fx.cfg, sliceCenterAngle(i, n), annulusMid(&fx.cfg))
	fx.tap(x, y)
}

func TestDialDrillIntoActionPushesSubFace(t *testing.T) {
	fx := newDialFixture(t)
	fx.tapSlice(0, 2)

	if fx.d.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", fx.d.Depth())
	}
	if fx.d.FaceCount() != 2 {
		t.Fatalf("face count = %d, want 2", fx.d.FaceCount())
	}
	if fx.d.ActiveAction() != "action_ship" {
		t.Fatalf("active action = %q, want action_ship", fx.d.ActiveAction())
	}
	levels := fx.sink.byKind(EventLevelChanged)
	if len(levels) != 1 || levels[0].Depth != 1 || levels[0].Item.ID != "action_ship" {
		t.Fatalf("levelChanged events %+v", levels)
	}
}

func TestDialGoBackFromActionClearsState(t *testing.T) {
	fx := newDialFixture(t)
	fx.tapSlice(0, 2)
	fx.tap(fx.cfg.DialX, fx.cfg.DialY)

	if fx.d.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", fx.d.Depth())
	}
	if fx.d.FaceCount() != 1 {
		t.Fatalf("face count = %d, want 1", fx.d.FaceCount())
	}
	if fx.d.ActiveAction() != "" {
		t.Fatalf("active action = %q, want empty", fx.d.ActiveAction())
	}
	if got := fx.sink.byKind(EventGoBack); len(got) != 1 {
		t.Fatalf("goBack events %+v, want 1", got)
	}
}

func TestDialQuantityFlow(t *testing.T) {
	fx := newDialFixture(t)
	fx.tapSlice(0, 2)
	fx.tapSlice(1, 4)

	confirms := fx.sink.byKind(EventItemConfirmed)
	if len(confirms) != 1 {
		t.Fatalf("itemConfirmed events %+v, want 1", confirms)
	}
	ev := confirms[0]

	if err := fx.d.ShowTerminalDial(ev.Item, 0, ev.SliceCenterAngle); err != nil {
		t.Fatal(err)
	}
	if fx.d.FaceCount() != 2 {
		t.Fatalf("face count = %d, want 2", fx.d.FaceCount())
	}
	qf, ok := fx.d.top().(*QuantityTerminalFace)
	if !ok {
		t.Fatalf("top face is %T, want quantity terminal", fx.d.top())
	}

	// grab the trigger and sweep one step counterclockwise
	tx, ty := qf.triggerPos()
	fx.down(tx, ty)
	a := angleAt(fx.cfg.DialX, fx.cfg.DialY, tx, ty)
	for i := 0; i < 4; i++ {
		a -= math.Pi / 12
		x, y := pointAt(&fx.cfg, a, qf.trackRadius())
		fx.move(x, y)
	}
	x, y := pointAt(&fx.cfg, a, qf.trackRadius())
	fx.up(x, y)

	got := fx.sink.byKind(EventQuantityConfirmed)
	if len(got) != 1 || got[0].Quantity != 2 || got[0].Item.ID != ev.Item.ID {
		t.Fatalf("quantityConfirmed %+v, want one confirm of 2", got)
	}
	if fx.d.FaceCount() != 1 {
		t.Fatalf("terminal face still up, count = %d", fx.d.FaceCount())
	}
}

func TestDialRepairFlow(t *testing.T) {
	fx := newDialFixture(t)
	item := leafItem("item_broken", 20)

	if err := fx.d.ShowRepairDial(item, 25, 0); err != nil {
		t.Fatal(err)
	}
	rf, ok := fx.d.top().(*RepairTerminalFace)
	if !ok {
		t.Fatalf("top face is %T, want repair terminal", fx.d.top())
	}
	if !almostEqual(rf.Rotation(), 25) {
		t.Fatalf("start rotation = %v, want 25", rf.Rotation())
	}

	// spin counterclockwise back toward upright
	r := annulusMid(&fx.cfg)
	x, y := pointAt(&fx.cfg, 0, r)
	fx.down(x, y)
	a := 0.0
	for i := 0; i < 4; i++ {
		a -= 5 * math.Pi / 180
		px, py := pointAt(&fx.cfg, a, r)
		fx.move(px, py)
	}
	px, py := pointAt(&fx.cfg, a, r)
	fx.up(px, py)

	settled := fx.sink.byKind(EventRepairSettled)
	if len(settled) != 1 || !settled[0].Success {
		t.Fatalf("repairSettled %+v, want one success", settled)
	}
	if fx.d.FaceCount() != 1 {
		t.Fatalf("repair face still up, count = %d", fx.d.FaceCount())
	}
	if len(fx.sink.byKind(EventRepairRotated)) == 0 {
		t.Fatal("no repairRotated events during the drag")
	}
}

func TestDialTerminalHubReleaseBacksOut(t *testing.T) {
	fx := newDialFixture(t)
	if err := fx.d.ShowTerminalDial(leafItem("item_x", 5), 0, math.Pi/2); err != nil {
		t.Fatal(err)
	}
	fx.tap(fx.cfg.DialX, fx.cfg.DialY)

	if fx.d.FaceCount() != 1 {
		t.Fatalf("face count = %d, want 1", fx.d.FaceCount())
	}
	if got := fx.sink.byKind(EventGoBack); len(got) != 1 {
		t.Fatalf("goBack events %+v, want 1", got)
	}
}

func TestDialReset(t *testing.T) {
	fx := newDialFixture(t)
	fx.tapSlice(0, 2)
	if err := fx.d.ShowTerminalDial(leafItem("item_x", 5), 0, math.Pi/2); err != nil {
		t.Fatal(err)
	}

	fx.d.Reset()
	if fx.d.FaceCount() != 1 {
		t.Fatalf("face count = %d, want 1", fx.d.FaceCount())
	}
	if fx.d.Depth() != 0 {
		t.Fatalf("depth = %d, want 0", fx.d.Depth())
	}
	if fx.d.ActiveAction() != "" {
		t.Fatalf("active action = %q, want empty", fx.d.ActiveAction())
	}
}

func TestDialIgnoresDownOutsideZone(t *testing.T) {
	fx := newDialFixture(t)
	fx.tap(10, 10)
	if len(fx.sink.events) != 0 {
		t.Fatalf("got %+v, want no events", fx.sink.events)
	}
}

func TestDialTickAdvancesGlow(t *testing.T) {
	fx := newDialFixture(t)
	before := fx.d.glowAngle
	fx.clk.advance(fx.cfg.GlowInterval + time.Millisecond)
	fx.d.Tick(fx.clk.now())
	if fx.d.glowAngle == before {
		t.Fatal("glow angle did not advance")
	}
}

func TestDialDestroyReleasesEverything(t *testing.T) {
	fx := newDialFixture(t)
	fx.tapSlice(0, 2)
	fx.d.Destroy()
	if got := fx.stage.Len(); got != 0 {
		t.Fatalf("stage has %d objects after destroy, want 0", got)
	}
}
