// Package orders models a shipping order and the slot board the player
// fills against it. An order expands into one slot per requested unit;
// the board reports per-slot accuracy and pays out on completion.
package orders

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/bblue/clicker-shipper/internal/catalog"
)

// Requirement is one line of an order.
type Requirement struct {
	Item     *catalog.MenuItem
	Quantity int
}

// Order is a set of requested goods with the revenue paid on fulfillment.
type Order struct {
	Requirements []Requirement
	Budget       int
}

// Slots returns the total number of units the order asks for.
func (o *Order) Slots() int {
	n := 0
	for _, r := range o.Requirements {
		n += r.Quantity
	}
	return n
}

func (o *Order) contains(id string) bool {
	for _, r := range o.Requirements {
		if r.Item.ID == id {
			return true
		}
	}
	return false
}

// maxPerLine caps how many units of one item an order requests.
const maxPerLine = 3

// Generate draws an order of up to kinds distinct leaves from the pool.
func Generate(rng *rand.Rand, leaves []*catalog.MenuItem, kinds int) (*Order, error) {
	if len(leaves) == 0 {
		return nil, errors.New("orders: empty leaf pool")
	}
	if kinds < 1 {
		return nil, fmt.Errorf("orders: invalid kind count %d", kinds)
	}
	if kinds > len(leaves) {
		kinds = len(leaves)
	}

	picked := rng.Perm(len(leaves))[:kinds]
	o := &Order{}
	for _, idx := range picked {
		item := leaves[idx]
		qty := 1 + rng.Intn(maxPerLine)
		o.Requirements = append(o.Requirements, Requirement{Item: item, Quantity: qty})
		o.Budget += item.Cost * qty
	}
	return o, nil
}

// SlotState is the evaluation of one board slot.
type SlotState uint8

const (
	SlotEmpty SlotState = iota
	SlotCorrect
	SlotMisplaced
	SlotWrong
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotCorrect:
		return "correct"
	case SlotMisplaced:
		return "misplaced"
	case SlotWrong:
		return "wrong"
	}
	return "unknown"
}

// SlotBoard tracks the units the player has loaded against an order.
// Placements fill the board left to right; removing compacts it, so the
// filled prefix never has holes.
type SlotBoard struct {
	order    *Order
	expected []*catalog.MenuItem
	placed   []*catalog.MenuItem
	mistakes int
}

// NewBoard builds an empty board for the order. Expected slots follow
// the order's requirement lines in sequence.
func NewBoard(o *Order) *SlotBoard {
	b := &SlotBoard{order: o}
	for _, r := range o.Requirements {
		for i := 0; i < r.Quantity; i++ {
			b.expected = append(b.expected, r.Item)
		}
	}
	return b
}

// Slots returns the board capacity.
func (b *SlotBoard) Slots() int { return len(b.expected) }

// Filled returns how many slots hold a unit.
func (b *SlotBoard) Filled() int { return len(b.placed) }

// PlacedQuantity returns how many units of the item are on the board.
func (b *SlotBoard) PlacedQuantity(itemID string) int {
	n := 0
	for _, it := range b.placed {
		if it.ID == itemID {
			n++
		}
	}
	return n
}

// Place sets the board's count of item to qty. A qty at or below zero
// removes the item entirely; lowering a count compacts the remaining
// units leftward. Placements beyond capacity are dropped.
func (b *SlotBoard) Place(item *catalog.MenuItem, qty int) {
	if qty < 0 {
		qty = 0
	}
	b.removeAll(item.ID)
	for i := 0; i < qty && len(b.placed) < len(b.expected); i++ {
		b.placed = append(b.placed, item)
	}
	for _, s := range b.Evaluate() {
		if s == SlotMisplaced || s == SlotWrong {
			b.mistakes++
			break
		}
	}
}

func (b *SlotBoard) removeAll(itemID string) {
	kept := b.placed[:0]
	for _, it := range b.placed {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	b.placed = kept
}

// Evaluate grades every slot against the order.
func (b *SlotBoard) Evaluate() []SlotState {
	states := make([]SlotState, len(b.expected))
	for i := range b.expected {
		if i >= len(b.placed) {
			states[i] = SlotEmpty
			continue
		}
		switch {
		case b.placed[i].ID == b.expected[i].ID:
			states[i] = SlotCorrect
		case b.order.contains(b.placed[i].ID):
			states[i] = SlotMisplaced
		default:
			states[i] = SlotWrong
		}
	}
	return states
}

// Complete reports whether every slot is filled with the right unit.
func (b *SlotBoard) Complete() bool {
	if len(b.placed) != len(b.expected) {
		return false
	}
	for _, s := range b.Evaluate() {
		if s != SlotCorrect {
			return false
		}
	}
	return true
}

// Perfect reports whether the order was filled without a single
// misgraded placement along the way.
func (b *SlotBoard) Perfect() bool {
	return b.Complete() && b.mistakes == 0
}

// Payout returns the revenue for a complete board, plus a half-budget
// bonus when the fill was perfect. An incomplete board pays nothing.
func (b *SlotBoard) Payout() (revenue, bonus int) {
	if !b.Complete() {
		return 0, 0
	}
	revenue = b.order.Budget
	if b.Perfect() {
		bonus = revenue / 2
	}
	return revenue, bonus
}
