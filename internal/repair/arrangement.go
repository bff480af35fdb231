// Package repair holds the re-orientation arrangement: a set of goods
// whose orientation drifted in transit, laid out in a grid and fixed one
// at a time through the dial's calibration ring.
package repair

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/bblue/clicker-shipper/internal/catalog"
)

// Grid spacing between arranged items, in pixels.
const (
	cellWidth  = 96
	cellHeight = 110
)

// Components of one arranged item.
type (
	// Slot binds an entity to its catalog item.
	Slot struct{ Item *catalog.MenuItem }

	// Placement is the item's grid position, relative to the
	// arrangement origin.
	Placement struct{ X, Y float64 }

	// Orientation tracks the drifted and the wanted angle in degrees.
	Orientation struct{ Current, Target float64 }

	// Condition marks an item as fixed.
	Condition struct{ Solved bool }
)

// Arrangement owns the ECS world the arranged items live in.
type Arrangement struct {
	world    *ecs.World
	entities []ecs.Entity
	byID     map[string]ecs.Entity

	slots  *ecs.Map[Slot]
	places *ecs.Map[Placement]
	angles *ecs.Map[Orientation]
	conds  *ecs.Map[Condition]
}

// NewArrangement draws count distinct items from the pool and scatters
// their orientations. Every drifted angle and every target is a multiple
// of 30 degrees in [30, 330], and no item starts already solved.
func NewArrangement(rng *rand.Rand, pool []*catalog.MenuItem, count int) (*Arrangement, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("repair: empty item pool")
	}
	if count < 1 {
		return nil, fmt.Errorf("repair: invalid item count %d", count)
	}
	if count > len(pool) {
		count = len(pool)
	}

	w := ecs.NewWorld(64)
	a := &Arrangement{
		world:  w,
		byID:   make(map[string]ecs.Entity, count),
		slots:  ecs.NewMap[Slot](w),
		places: ecs.NewMap[Placement](w),
		angles: ecs.NewMap[Orientation](w),
		conds:  ecs.NewMap[Condition](w),
	}

	builder := ecs.NewMap4[Slot, Placement, Orientation, Condition](w)
	picked := rng.Perm(len(pool))[:count]
	for i, idx := range picked {
		item := pool[idx]
		x, y := gridCell(i, count)
		cur, target := drawAngles(rng)
		e := builder.NewEntity(
			&Slot{Item: item},
			&Placement{X: x, Y: y},
			&Orientation{Current: cur, Target: target},
			&Condition{},
		)
		a.entities = append(a.entities, e)
		a.byID[item.ID] = e
	}
	return a, nil
}

// gridCell lays item i of n out on a grid: up to four items form a
// square, more split into two rows.
func gridCell(i, n int) (x, y float64) {
	cols := 2
	if n == 1 {
		cols = 1
	}
	if n >= 5 {
		cols = (n + 1) / 2
	}
	rows := (n + cols - 1) / cols
	col, row := i%cols, i/cols
	x = (float64(col) - float64(cols-1)/2) * cellWidth
	y = (float64(row) - float64(rows-1)/2) * cellHeight
	return x, y
}

// drawAngles picks a drifted and a target angle, both multiples of 30
// degrees in [30, 330] and never equal.
func drawAngles(rng *rand.Rand) (cur, target float64) {
	cur = float64(30 * (1 + rng.Intn(11)))
	for {
		target = float64(30 * (1 + rng.Intn(11)))
		if target != cur {
			return cur, target
		}
	}
}

// Items returns the arranged items in layout order.
func (a *Arrangement) Items() []*catalog.MenuItem {
	out := make([]*catalog.MenuItem, len(a.entities))
	for i, e := range a.entities {
		out[i] = a.slots.Get(e).Item
	}
	return out
}

// PlacementOf returns the grid offset of an arranged item.
func (a *Arrangement) PlacementOf(id string) (x, y float64, ok bool) {
	e, found := a.byID[id]
	if !found {
		return 0, 0, false
	}
	p := a.places.Get(e)
	return p.X, p.Y, true
}

// OrientationOf returns the item's drifted and wanted angles.
func (a *Arrangement) OrientationOf(id string) (current, target float64, ok bool) {
	e, found := a.byID[id]
	if !found {
		return 0, 0, false
	}
	o := a.angles.Get(e)
	return o.Current, o.Target, true
}

// Solved reports whether the item has been fixed.
func (a *Arrangement) Solved(id string) bool {
	e, found := a.byID[id]
	if !found {
		return false
	}
	return a.conds.Get(e).Solved
}

// Remaining counts the items still drifted.
func (a *Arrangement) Remaining() int {
	n := 0
	for _, e := range a.entities {
		if !a.conds.Get(e).Solved {
			n++
		}
	}
	return n
}

// AllSolved reports whether every item has been fixed.
func (a *Arrangement) AllSolved() bool { return a.Remaining() == 0 }

// OnItemSelected starts a calibration on an unsolved item and returns
// the angles to open the ring with.
func (a *Arrangement) OnItemSelected(id string) (current, target float64, err error) {
	e, found := a.byID[id]
	if !found {
		return 0, 0, fmt.Errorf("repair: unknown item %q", id)
	}
	if a.conds.Get(e).Solved {
		return 0, 0, fmt.Errorf("repair: item %q already solved", id)
	}
	o := a.angles.Get(e)
	return o.Current, o.Target, nil
}

// OnRotated mirrors a live ring rotation onto the arranged item.
// rotation is the ring's offset from the target, in degrees.
func (a *Arrangement) OnRotated(id string, rotation float64) {
	e, found := a.byID[id]
	if !found {
		return
	}
	o := a.angles.Get(e)
	o.Current = normalizeAngle(o.Target + rotation)
}

// OnSettled applies a ring release. Success snaps the item to its
// target and marks it solved; failure leaves it at the released offset.
func (a *Arrangement) OnSettled(id string, rotation float64, success bool) {
	e, found := a.byID[id]
	if !found {
		return
	}
	o := a.angles.Get(e)
	if success {
		o.Current = o.Target
		a.conds.Get(e).Solved = true
		return
	}
	o.Current = normalizeAngle(o.Target + rotation)
}

// normalizeAngle maps degrees into [0, 360).
func normalizeAngle(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
