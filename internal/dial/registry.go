package dial

import (
	"fmt"

	"github.com/bblue/clicker-shipper/internal/catalog"
	"github.com/bblue/clicker-shipper/internal/nav"
)

// Wildcard matches any action or item type in a registry key.
const Wildcard = "*"

// SubDialFactory builds the navigation face used once the dial enters a
// root-level action category.
type SubDialFactory func(cfg *Config, ctrl *nav.Controller, prog catalog.Progression) Face

// TerminalMode selects which terminal behavior a request wants.
type TerminalMode uint8

const (
	TerminalQuantity TerminalMode = iota
	TerminalRepair
)

// TerminalRequest carries the arguments a terminal face is built from.
// Quantity faces read ExistingQty and StartAngle; repair faces read
// CurrentDeg and TargetDeg.
type TerminalRequest struct {
	Item        *catalog.MenuItem
	Mode        TerminalMode
	ExistingQty int
	StartAngle  float64
	CurrentDeg  float64
	TargetDeg   float64
}

// TerminalFactory builds a terminal face for a confirmed item.
type TerminalFactory func(cfg *Config, req TerminalRequest) Face

// Registry resolves a face factory from an (action, item type) pair with
// wildcard fallback: exact match, then (action, *), then (*, type), then
// (*, *). Resolution failing all four steps is a wiring bug in whoever
// populated the registry, so Resolve returns an error rather than a
// silent default.
type Registry[F any] struct {
	entries map[registryKey]F
}

type registryKey struct {
	action   string
	itemType string
}

func NewRegistry[F any]() *Registry[F] {
	return &Registry[F]{entries: make(map[registryKey]F)}
}

// Register binds a factory to an action/type pair. Either key may be
// Wildcard. Later registrations overwrite earlier ones.
func (r *Registry[F]) Register(action, itemType string, f F) {
	r.entries[registryKey{action, itemType}] = f
}

// Resolve looks up the factory for the pair, walking the fallback chain.
func (r *Registry[F]) Resolve(action, itemType string) (F, error) {
	for _, k := range []registryKey{
		{action, itemType},
		{action, Wildcard},
		{Wildcard, itemType},
		{Wildcard, Wildcard},
	} {
		if f, ok := r.entries[k]; ok {
			return f, nil
		}
	}
	var zero F
	return zero, fmt.Errorf("dial: no face registered for action %q item type %q", action, itemType)
}
