package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/dial"
	"github.com/bblue/clicker-shipper/internal/input"
	"github.com/bblue/clicker-shipper/internal/orders"
	"github.com/bblue/clicker-shipper/internal/repair"
	"github.com/bblue/clicker-shipper/internal/render"
	"github.com/bblue/clicker-shipper/internal/shift"
)

const (
	screenWidth  = 960
	screenHeight = 640
	title        = "Clicker Shipper"

	dialX = 330
	dialY = 320

	// Fixed side-panel layout
	panelX     = 660
	panelW     = 280
	slotSize   = 44
	slotGap    = 8
	slotsPerRw = 5

	orderKinds       = 3 // requirement lines per order
	repairEvery      = 3 // every Nth completed order triggers a repair round
	repairItemCount  = 5
	repairRoundBonus = 80
)

// Game is the Ebitengine game struct. It owns rendering and input; the
// shipping logic lives in the internal packages.
type Game struct {
	stage  *render.Stage
	atlas  *render.FontAtlas
	tex    *render.Textures
	poller *input.Poller
	dial   *dial.RadialDial

	ledger *catalog.Ledger
	leaves []*catalog.MenuItem
	rng    *rand.Rand

	order *orders.Order
	board *orders.SlotBoard
	done  int // orders completed this session

	arr        *repair.Arrangement // nil outside repair rounds
	repairItem string              // item currently on the calibration ring

	shift  *shift.Shift
	status string

	panel      *render.Graphic
	panelText  []*render.Label
	panelIcons []*render.Sprite
}

func NewGame() *Game {
	atlas := render.NewFontAtlas()
	tex := render.NewTextures()
	stage := render.NewStage(atlas)

	root := catalog.Generate()
	ledger := catalog.NewLedger()

	g := &Game{
		stage:  stage,
		atlas:  atlas,
		tex:    tex,
		poller: input.NewPoller(),
		ledger: ledger,
		leaves: catalog.CollectLeaves(root),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		shift:  shift.New(0),
		status: "Fill the order",
	}

	g.dial = dial.New(dial.DefaultConfig(dialX, dialY), stage, tex, root, ledger, g.onDialEvent)
	g.panel = stage.NewGraphic(40)

	g.newOrder()
	g.shift.Start(time.Now())
	g.drawPanel()
	return g
}

func (g *Game) newOrder() {
	o, err := orders.Generate(g.rng, g.leaves, orderKinds)
	if err != nil {
		log.Fatalf("generate order: %v", err)
	}
	g.order = o
	g.board = orders.NewBoard(o)
}

// onDialEvent is the single sink for the dial's domain events.
func (g *Game) onDialEvent(e dial.Event) {
	switch e.Kind {
	case dial.EventItemConfirmed:
		qty := g.board.PlacedQuantity(e.Item.ID)
		if err := g.dial.ShowTerminalDial(e.Item, qty, e.SliceCenterAngle); err != nil {
			log.Printf("open terminal: %v", err)
		}

	case dial.EventQuantityConfirmed:
		g.board.Place(e.Item, e.Quantity)
		if e.Quantity == 0 {
			g.status = fmt.Sprintf("Removed %s", e.Item.Name)
		} else {
			g.status = fmt.Sprintf("Loaded %dx %s", e.Quantity, e.Item.Name)
		}
		if g.board.Complete() {
			g.finishOrder()
		}

	case dial.EventRepairRotated:
		if g.arr != nil && g.repairItem != "" {
			g.arr.OnRotated(g.repairItem, e.Rotation)
		}

	case dial.EventRepairSettled:
		g.onRepairSettled(e)

	case dial.EventLevelChanged:
		if e.Depth == 0 {
			g.status = "Pick a category"
		}

	case dial.EventGoBack:
		if g.arr != nil {
			// a hub release popped the calibration ring mid-round;
			// put the current item straight back on it
			g.selectNextRepair()
		}
	}
	g.drawPanel()
}

func (g *Game) finishOrder() {
	if g.arr != nil {
		// the board on screen was already paid out when the round began
		return
	}
	revenue, bonus := g.board.Payout()
	g.shift.RecordOrder(revenue, bonus)
	g.ledger.AddQuanta(revenue + bonus)
	g.done++
	if bonus > 0 {
		g.status = fmt.Sprintf("Perfect! +%dq (+%d bonus)", revenue+bonus, bonus)
	} else {
		g.status = fmt.Sprintf("Order shipped, +%dq", revenue)
	}

	g.dial.Reset()
	if g.done%repairEvery == 0 {
		g.startRepairRound()
		return
	}
	g.newOrder()
}

func (g *Game) startRepairRound() {
	arr, err := repair.NewArrangement(g.rng, g.leaves, repairItemCount)
	if err != nil {
		log.Printf("repair round: %v", err)
		g.newOrder()
		return
	}
	g.arr = arr
	g.status = "Cargo shifted in transit! Re-orient it"
	g.selectNextRepair()
}

// selectNextRepair puts the first unsolved item onto the calibration ring.
func (g *Game) selectNextRepair() {
	for _, item := range g.arr.Items() {
		if g.arr.Solved(item.ID) {
			continue
		}
		cur, target, err := g.arr.OnItemSelected(item.ID)
		if err != nil {
			continue
		}
		g.repairItem = item.ID
		if err := g.dial.ShowRepairDial(item, cur, target); err != nil {
			log.Printf("open repair dial: %v", err)
		}
		return
	}
}

func (g *Game) onRepairSettled(e dial.Event) {
	if g.arr == nil || g.repairItem == "" {
		return
	}
	g.arr.OnSettled(g.repairItem, e.Rotation, e.Success)
	if !e.Success {
		g.status = fmt.Sprintf("Off by %.0f degrees, try again", e.Rotation)
		// the ring closed itself only on success; nothing to reopen
		return
	}
	g.repairItem = ""
	if g.arr.AllSolved() {
		g.ledger.AddQuanta(repairRoundBonus)
		g.arr = nil
		g.status = fmt.Sprintf("Cargo secured, +%dq", repairRoundBonus)
		g.newOrder()
		return
	}
	g.status = fmt.Sprintf("%d left to re-orient", g.arr.Remaining())
	g.selectNextRepair()
}

// tryUnlock spends quanta to deepen the category the dial is inside.
func (g *Game) tryUnlock() {
	action := g.dial.ActiveAction()
	if !strings.HasPrefix(action, "nav_") || !strings.HasSuffix(action, "_root") {
		g.status = "Enter a category to unlock deeper levels"
		return
	}
	cat := strings.TrimSuffix(strings.TrimPrefix(action, "nav_"), "_root")
	cost := g.ledger.UnlockCost(cat)
	switch {
	case cost < 0:
		g.status = fmt.Sprintf("%s is fully unlocked", cat)
	case g.ledger.TryUnlock(cat):
		g.status = fmt.Sprintf("Unlocked %s depth %d (-%dq)", cat, g.ledger.UnlockedDepth(cat)-1, cost)
	default:
		g.status = fmt.Sprintf("Need %dq, have %dq", cost, g.ledger.Quanta())
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.shift.Paused() {
			g.shift.Resume(now)
			g.status = "Back to work"
		} else {
			g.shift.Pause(now)
			g.status = "On break"
		}
		g.drawPanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		g.tryUnlock()
		g.drawPanel()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.shift.Over(now) {
		g.ledger.RecordShiftComplete()
		g.shift.Start(now)
		g.dial.Reset()
		g.newOrder()
		g.status = fmt.Sprintf("Shift %d, clock's running", g.ledger.ShiftsCompleted()+1)
		g.drawPanel()
	}

	if !g.shift.Paused() && !g.shift.Over(now) {
		for _, ev := range g.poller.Poll() {
			g.dial.HandlePointer(ev)
		}
		g.dial.Tick(now)
	}
	if g.shift.Over(now) {
		g.status = fmt.Sprintf("Shift over! %dq earned. N for next shift", g.shift.Total())
	}
	g.drawPanel()
	return nil
}

// drawPanel rebuilds the right-hand panel: order slots, repair queue,
// shift clock and the quanta ledger.
func (g *Game) drawPanel() {
	for _, l := range g.panelText {
		l.Destroy()
	}
	g.panelText = g.panelText[:0]
	for _, s := range g.panelIcons {
		s.Destroy()
	}
	g.panelIcons = g.panelIcons[:0]

	p := g.panel
	p.Clear()
	p.FillStyle(render.PanelDark)
	p.FillRect(panelX-10, 10, panelW, screenHeight-20)
	p.LineStyle(2, render.BorderBlue)
	p.StrokePoly(panelX-10, 10, panelX-10+panelW, 10, panelX-10+panelW, screenHeight-10, panelX-10, screenHeight-10)

	y := g.drawOrderSection(30)
	if g.arr != nil {
		y = g.drawRepairSection(y + 20)
	}
	g.drawShiftSection(y + 20)
}

func (g *Game) drawOrderSection(y float64) float64 {
	g.addText("MANIFEST", panelX, y, 2, render.NeonBlue)
	y += 34

	states := g.board.Evaluate()
	slot := 0
	for _, r := range g.order.Requirements {
		for i := 0; i < r.Quantity; i++ {
			col := slot % slotsPerRw
			row := slot / slotsPerRw
			x := panelX + float64(col)*(slotSize+slotGap)
			sy := y + float64(row)*(slotSize+slotGap)
			g.drawSlot(x, sy, r.Item, states[slot])
			slot++
		}
	}
	rows := (slot + slotsPerRw - 1) / slotsPerRw
	y += float64(rows)*(slotSize+slotGap) + 8

	g.addText(fmt.Sprintf("Budget %dq", g.order.Budget), panelX, y, 1, render.TextDim)
	y += 16
	g.addText(g.status, panelX, y, 1, render.TextBright)
	return y + 16
}

func (g *Game) drawSlot(x, y float64, item *catalog.MenuItem, state orders.SlotState) {
	edge := render.BorderBlue
	switch state {
	case orders.SlotCorrect:
		edge = render.NeonGreen
	case orders.SlotMisplaced:
		edge = render.HighlightGold
	case orders.SlotWrong:
		edge = render.AlertRed
	}
	g.panel.FillStyle(render.PanelMedium)
	g.panel.FillRect(float32(x), float32(y), slotSize, slotSize)
	g.panel.LineStyle(2, edge)
	g.panel.StrokePoly(float32(x), float32(y), float32(x)+slotSize, float32(y),
		float32(x)+slotSize, float32(y)+slotSize, float32(x), float32(y)+slotSize)

	if state == orders.SlotEmpty {
		// ghost of the wanted item
		if g.tex.Has(item.IconKey()) {
			s := g.stage.NewSprite(g.tex.Image(item.IconKey()), x+slotSize/2, y+slotSize/2, 45)
			s.SetDisplaySize(slotSize-12, slotSize-12)
			s.Alpha = 0.25
			g.panelIcons = append(g.panelIcons, s)
		}
		return
	}
	if g.tex.Has(item.IconKey()) {
		s := g.stage.NewSprite(g.tex.Image(item.IconKey()), x+slotSize/2, y+slotSize/2, 45)
		s.SetDisplaySize(slotSize-8, slotSize-8)
		g.panelIcons = append(g.panelIcons, s)
	}
}

func (g *Game) drawRepairSection(y float64) float64 {
	g.addText("RE-ORIENT", panelX, y, 2, render.HighlightGold)
	y += 30
	for _, item := range g.arr.Items() {
		clr := render.AlertRed
		mark := "drifted"
		if g.arr.Solved(item.ID) {
			clr = render.NeonGreen
			mark = "secure"
		} else if item.ID == g.repairItem {
			clr = render.HighlightGold
			mark = "on ring"
		}
		g.addText(fmt.Sprintf("%-12s %s", item.Name, mark), panelX, y, 1, clr)
		y += 16
	}
	return y
}

func (g *Game) drawShiftSection(y float64) {
	now := time.Now()
	g.addText("SHIFT", panelX, y, 2, render.NeonBlue)
	y += 30

	// countdown arc
	cx, cy := float32(panelX+24), float32(y+28)
	g.panel.LineStyle(5, render.PanelMedium)
	g.panel.StrokeCircle(cx, cy, 22)
	frac := 1 - g.shift.Progress(now)
	if frac > 0 {
		clr := render.NeonGreen
		if g.shift.Remaining(now) < time.Minute {
			clr = render.AlertRed
		}
		g.panel.LineStyle(5, clr)
		g.panel.StrokeArc(cx, cy, 22, float32(-math.Pi/2), float32(-math.Pi/2+frac*2*math.Pi))
	}

	rem := g.shift.Remaining(now)
	g.addText(fmt.Sprintf("%02d:%02d", int(rem.Minutes()), int(rem.Seconds())%60),
		panelX+60, y+20, 2, render.TextBright)
	y += 64

	g.addText(fmt.Sprintf("Revenue %dq  Bonus %dq", g.shift.Revenue(), g.shift.Bonus()), panelX, y, 1, render.TextDim)
	y += 16
	g.addText(fmt.Sprintf("Orders %d  Quanta %dq", g.shift.OrdersCompleted(), g.ledger.Quanta()), panelX, y, 1, render.TextDim)
	y += 24
	g.addText("U: unlock  P: pause  ESC: quit", panelX, y, 1, render.TextDim)
}

func (g *Game) addText(text string, x, y, scale float64, clr color.RGBA) {
	l := g.stage.NewLabel(text, x, y, scale, 50)
	l.Clr = clr
	g.panelText = append(g.panelText, l)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.BackgroundDark)
	g.stage.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
