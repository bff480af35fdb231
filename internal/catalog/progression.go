package catalog

// Progression answers how deep a category's nav-down chain is unlocked.
// A nav_<cat>_down_<N> node is locked while N >= UnlockedDepth(cat), so
// levels 1..UnlockedDepth-1 are open.
type Progression interface {
	UnlockedDepth(category string) int
}

// Unlock costs in quanta, indexed by nav-down level. Level 1 is free.
var levelCosts = []int{0, 0, 60, 140, 260, 420}

// Ledger is the concrete progression store: earned quanta, per-category
// unlocked depths and completed-shift count.
type Ledger struct {
	quanta    int
	depths    map[string]int
	shifts    int
	baseDepth int
}

// NewLedger creates a ledger with nav-down level 1 open in every category.
func NewLedger() *Ledger {
	return &Ledger{depths: make(map[string]int), baseDepth: 2}
}

// UnlockedDepth implements Progression.
func (l *Ledger) UnlockedDepth(category string) int {
	if d, ok := l.depths[category]; ok {
		return d
	}
	return l.baseDepth
}

// Quanta returns the current balance.
func (l *Ledger) Quanta() int { return l.quanta }

// AddQuanta credits earned quanta. Negative amounts are ignored.
func (l *Ledger) AddQuanta(n int) {
	if n > 0 {
		l.quanta += n
	}
}

// UnlockCost returns the quanta cost to open the next nav-down level of a
// category, or -1 when the category is already at its maximum depth.
func (l *Ledger) UnlockCost(category string) int {
	next := l.UnlockedDepth(category)
	if next >= len(levelCosts) {
		return -1
	}
	return levelCosts[next]
}

// TryUnlock spends quanta to deepen a category by one level.
// Returns false when the balance is short or the category is maxed out.
func (l *Ledger) TryUnlock(category string) bool {
	cost := l.UnlockCost(category)
	if cost < 0 || l.quanta < cost {
		return false
	}
	l.quanta -= cost
	l.depths[category] = l.UnlockedDepth(category) + 1
	return true
}

// RecordShiftComplete bumps the completed-shift counter.
func (l *Ledger) RecordShiftComplete() { l.shifts++ }

// ShiftsCompleted returns how many shifts have been finished.
func (l *Ledger) ShiftsCompleted() int { return l.shifts }
