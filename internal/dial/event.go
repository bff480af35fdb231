package dial

import "github.com/bblue/clicker-shipper/internal/catalog"

// EventKind discriminates the events a dial emits. Faces raise the first
// six internally; the coordinator translates or re-emits them outward.
type EventKind uint8

const (
	EventDrillDown EventKind = iota
	EventGoBack
	EventItemConfirmed
	EventQuantityConfirmed
	EventRepairSettled
	EventRepairRotated
	EventLevelChanged
)

func (k EventKind) String() string {
	switch k {
	case EventDrillDown:
		return "drillDown"
	case EventGoBack:
		return "goBack"
	case EventItemConfirmed:
		return "itemConfirmed"
	case EventQuantityConfirmed:
		return "quantityConfirmed"
	case EventRepairSettled:
		return "repairSettled"
	case EventRepairRotated:
		return "repairRotated"
	case EventLevelChanged:
		return "levelChanged"
	}
	return "unknown"
}

// Event is a tagged union; which fields are meaningful depends on Kind.
type Event struct {
	Kind EventKind

	// Item is set for drillDown, itemConfirmed and quantityConfirmed.
	Item *catalog.MenuItem

	// Depth is the navigation depth after a drillDown, goBack or
	// levelChanged.
	Depth int

	// SliceCenterAngle is the screen angle of the confirmed slice's
	// center, carried by itemConfirmed so a terminal face can open its
	// trigger there.
	SliceCenterAngle float64

	// Quantity is the confirmed count for quantityConfirmed.
	Quantity int

	// Rotation is the ring angle in degrees for repairRotated and
	// repairSettled.
	Rotation float64

	// Success reports whether a repairSettled release landed within
	// tolerance.
	Success bool
}
