package dial

import (
	"math"
	"testing"
	"time"

	"github.com/bblue/clicker-shipper/internal/render"
)

type repairFixture struct {
	face *RepairTerminalFace
	cfg  *Config
	clk  *fakeClock
	sink *eventSink
}

func newRepairFixture(t *testing.T, currentDeg, targetDeg float64) *repairFixture {
	t.Helper()
	clk := newFakeClock()
	cfg := testConfig(clk)
	sink := &eventSink{}
	stage := render.NewStage(nil)
	face := NewRepairTerminalFace(&cfg, leafItem("item_r", 15), currentDeg, targetDeg)
	face.Activate(newTestContext(&cfg, stage, sink.emit))
	return &repairFixture{face: face, cfg: &cfg, clk: clk, sink: sink}
}

// spin grabs the ring at the east edge and rotates it by total degrees,
// clockwise positive, in small steps.
func (fx *repairFixture) spin(total float64) {
	r := annulusMid(fx.cfg)
	x, y := pointAt(fx.cfg, 0, r)
	fx.face.OnPointerDown(mouseAt(x, y))

	const step = 20.0
	a := 0.0
	remaining := total
	for remaining != 0 {
		d := math.Min(math.Abs(remaining), step)
		if remaining > 0 {
			a += d * math.Pi / 180
			remaining -= d
		} else {
			a -= d * math.Pi / 180
			remaining += d
		}
		px, py := pointAt(fx.cfg, a, r)
		fx.face.OnPointerMove(mouseAt(px, py))
	}
}

func (fx *repairFixture) releaseAt(angle float64) {
	x, y := pointAt(fx.cfg, angle, annulusMid(fx.cfg))
	fx.face.OnPointerUp(mouseAt(x, y))
}

func TestRepairStartRotationIsNormalized(t *testing.T) {
	fx := newRepairFixture(t, 185, 0)
	if !almostEqual(fx.face.Rotation(), -175) {
		t.Fatalf("rotation = %v, want -175", fx.face.Rotation())
	}
}

func TestRepairSpinToUprightSettles(t *testing.T) {
	fx := newRepairFixture(t, 185, 0)
	fx.spin(173) // -175 + 173 = -2
	fx.releaseAt(173 * math.Pi / 180)

	got := fx.sink.byKind(EventRepairSettled)
	if len(got) != 1 {
		t.Fatalf("got %d settled events, want 1", len(got))
	}
	if !got[0].Success {
		t.Fatalf("settle failed at rotation %v", got[0].Rotation)
	}
	if fx.face.Rotation() != 0 {
		t.Errorf("rotation after success = %v, want 0", fx.face.Rotation())
	}
}

func TestRepairSettleOutsideToleranceFails(t *testing.T) {
	fx := newRepairFixture(t, 185, 0)
	fx.spin(100) // -175 + 100 = -75
	fx.releaseAt(100 * math.Pi / 180)

	got := fx.sink.byKind(EventRepairSettled)
	if len(got) != 1 || got[0].Success {
		t.Fatalf("got %+v, want one failed settle", got)
	}
	if !almostEqual(fx.face.Rotation(), -75) {
		t.Errorf("rotation after failed settle = %v, want -75", fx.face.Rotation())
	}
}

func TestRepairRotationSurvivesMultipleTurns(t *testing.T) {
	fx := newRepairFixture(t, 0, 0)
	fx.spin(400) // more than a full turn
	fx.releaseAt(40 * math.Pi / 180)

	got := fx.sink.byKind(EventRepairSettled)
	if len(got) != 1 {
		t.Fatalf("got %d settled events, want 1", len(got))
	}
	if !almostEqual(got[0].Rotation, 40) {
		t.Errorf("settled rotation = %v, want 40", got[0].Rotation)
	}
}

func TestRepairEmitsRotatedWhileDragging(t *testing.T) {
	fx := newRepairFixture(t, 0, 0)
	fx.spin(60)

	got := fx.sink.byKind(EventRepairRotated)
	if len(got) == 0 {
		t.Fatal("no repairRotated events during drag")
	}
	last := got[len(got)-1]
	if !almostEqual(last.Rotation, 60) {
		t.Errorf("last rotation = %v, want 60", last.Rotation)
	}
}

func TestRepairWobbleFollowsVelocity(t *testing.T) {
	fx := newRepairFixture(t, 0, 0)
	fx.spin(40)
	if fx.face.velocity == 0 {
		t.Fatal("velocity is zero after dragging")
	}

	fx.clk.advance(fx.cfg.WobbleInterval + time.Millisecond)
	fx.face.tick(fx.clk.now())
	if fx.face.wobble == 0 {
		t.Fatal("wobble did not engage after a fast drag")
	}

	// wobble decays toward rest
	prev := math.Abs(fx.face.wobble)
	for i := 0; i < 8; i++ {
		fx.clk.advance(fx.cfg.WobbleInterval + time.Millisecond)
		fx.face.tick(fx.clk.now())
	}
	if math.Abs(fx.face.wobble) >= prev {
		t.Errorf("wobble %v did not decay from %v", fx.face.wobble, prev)
	}
}

func TestRepairHubReleaseBacksOut(t *testing.T) {
	fx := newRepairFixture(t, 30, 0)
	fx.face.OnPointerDown(mouseAt(fx.cfg.DialX, fx.cfg.DialY))
	fx.face.OnPointerUp(mouseAt(fx.cfg.DialX, fx.cfg.DialY))

	if got := fx.sink.byKind(EventGoBack); len(got) != 1 {
		t.Fatalf("got %+v, want one goBack", fx.sink.events)
	}
	if fx.face.rotation != 0 {
		t.Fatalf("rotation = %v after back-out, want 0", fx.face.rotation)
	}
}
