package orders

import (
	"math/rand"
	"testing"

	"github.com/bblue/clicker-shipper/internal/catalog"
)

func leaf(id string, cost int) *catalog.MenuItem {
	return &catalog.MenuItem{ID: id, Name: id, Cost: cost}
}

func pool(n int) []*catalog.MenuItem {
	items := make([]*catalog.MenuItem, n)
	for i := range items {
		items[i] = leaf(string(rune('a'+i)), 10+i)
	}
	return items
}

func twoLineOrder() *Order {
	a, b := leaf("a", 10), leaf("b", 20)
	return &Order{
		Requirements: []Requirement{{Item: a, Quantity: 2}, {Item: b, Quantity: 1}},
		Budget:       40,
	}
}

func TestGenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	o, err := Generate(rng, pool(8), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Requirements) != 3 {
		t.Fatalf("got %d requirement lines, want 3", len(o.Requirements))
	}
	seen := map[string]bool{}
	budget := 0
	for _, r := range o.Requirements {
		if seen[r.Item.ID] {
			t.Fatalf("item %q requested twice", r.Item.ID)
		}
		seen[r.Item.ID] = true
		if r.Quantity < 1 || r.Quantity > maxPerLine {
			t.Fatalf("quantity %d out of range", r.Quantity)
		}
		budget += r.Item.Cost * r.Quantity
	}
	if o.Budget != budget {
		t.Errorf("budget = %d, want %d", o.Budget, budget)
	}
}

func TestGenerateEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(rng, nil, 2); err == nil {
		t.Fatal("expected error for empty pool")
	}
}

func TestGenerateClampsKindsToPool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	o, err := Generate(rng, pool(2), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(o.Requirements) != 2 {
		t.Fatalf("got %d lines, want 2", len(o.Requirements))
	}
}

func TestBoardPlaceAndEvaluate(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	if b.Slots() != 3 {
		t.Fatalf("slots = %d, want 3", b.Slots())
	}

	b.Place(o.Requirements[0].Item, 2)
	states := b.Evaluate()
	want := []SlotState{SlotCorrect, SlotCorrect, SlotEmpty}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("slot %d = %v, want %v", i, states[i], want[i])
		}
	}

	b.Place(o.Requirements[1].Item, 1)
	if !b.Complete() {
		t.Fatal("board not complete after filling every slot")
	}
}

func TestBoardWrongItem(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	b.Place(leaf("z", 5), 1)

	if got := b.Evaluate()[0]; got != SlotWrong {
		t.Fatalf("slot 0 = %v, want wrong", got)
	}
	if b.Perfect() {
		t.Fatal("board with a wrong placement cannot be perfect")
	}
}

func TestBoardMisplacedItem(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	// b is requested, but slot 0 expects a
	b.Place(o.Requirements[1].Item, 1)

	if got := b.Evaluate()[0]; got != SlotMisplaced {
		t.Fatalf("slot 0 = %v, want misplaced", got)
	}
}

func TestBoardRemoveCompacts(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	a, bb := o.Requirements[0].Item, o.Requirements[1].Item

	b.Place(a, 1)
	b.Place(bb, 1)
	if b.Filled() != 2 {
		t.Fatalf("filled = %d, want 2", b.Filled())
	}

	// quantity zero removes and the remaining unit slides left
	b.Place(a, 0)
	if b.Filled() != 1 {
		t.Fatalf("filled after removal = %d, want 1", b.Filled())
	}
	if got := b.Evaluate()[0]; got != SlotMisplaced {
		t.Fatalf("slot 0 = %v, want misplaced (b shifted into a's slot)", got)
	}
	if b.PlacedQuantity("a") != 0 || b.PlacedQuantity("b") != 1 {
		t.Fatalf("placed quantities a=%d b=%d", b.PlacedQuantity("a"), b.PlacedQuantity("b"))
	}
}

func TestBoardOverfillDropped(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	b.Place(o.Requirements[0].Item, 3)
	if b.PlacedQuantity("a") != 3 {
		t.Fatalf("placed = %d, want 3 (capacity)", b.PlacedQuantity("a"))
	}
	b.Place(o.Requirements[1].Item, 2)
	if b.Filled() != 3 {
		t.Fatalf("filled = %d, want capacity 3", b.Filled())
	}
}

func TestBoardPerfectPayout(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	b.Place(o.Requirements[0].Item, 2)
	b.Place(o.Requirements[1].Item, 1)

	revenue, bonus := b.Payout()
	if revenue != 40 || bonus != 20 {
		t.Fatalf("payout = (%d, %d), want (40, 20)", revenue, bonus)
	}
}

func TestBoardImperfectPayout(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	wrong := leaf("z", 5)

	b.Place(wrong, 1) // mistake
	b.Place(wrong, 0) // corrected
	b.Place(o.Requirements[0].Item, 2)
	b.Place(o.Requirements[1].Item, 1)

	revenue, bonus := b.Payout()
	if revenue != 40 || bonus != 0 {
		t.Fatalf("payout = (%d, %d), want (40, 0)", revenue, bonus)
	}
}

func TestBoardIncompletePaysNothing(t *testing.T) {
	o := twoLineOrder()
	b := NewBoard(o)
	b.Place(o.Requirements[0].Item, 2)

	if revenue, bonus := b.Payout(); revenue != 0 || bonus != 0 {
		t.Fatalf("payout = (%d, %d), want (0, 0)", revenue, bonus)
	}
}
