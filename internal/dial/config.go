package dial

import (
	"time"

	"github.com/bblue/clicker-shipper/internal/input"
)

// Config carries the dial geometry and the injectable knobs the faces need.
// Tests replace Now and Touch to drive time and pointer classification
// deterministically.
type Config struct {
	DialX, DialY float64

	// SliceRadius is the outer radius of the slice annulus, CenterRadius
	// the hub. The interactive annulus starts CenterPad outside the hub.
	SliceRadius  float64
	CenterRadius float64
	CenterPad    float64

	// TriggerHitRadius is how close a press must land to the quantity
	// trigger knob to arm it.
	TriggerHitRadius float64

	// MouseSynthesisWindow suppresses non-touch presses arriving within
	// this long after a touch lift. Browsers and some platforms replay
	// touch taps as mouse clicks; without the window a tap confirms twice.
	MouseSynthesisWindow time.Duration

	GlowInterval   time.Duration
	WobbleInterval time.Duration

	// Touch classifies a pointer as a real touch. Defaults to the
	// FromTouch flag set by the input poller.
	Touch func(input.Pointer) bool

	// Now is the clock used for the synthesis window and animation
	// cadences. Defaults to time.Now.
	Now func() time.Time
}

// DefaultConfig returns a Config centered at (x, y) with the standard
// dial proportions.
func DefaultConfig(x, y float64) Config {
	return Config{
		DialX:                x,
		DialY:                y,
		SliceRadius:          150,
		CenterRadius:         40,
		CenterPad:            5,
		TriggerHitRadius:     26,
		MouseSynthesisWindow: 500 * time.Millisecond,
		GlowInterval:         50 * time.Millisecond,
		WobbleInterval:       16 * time.Millisecond,
	}
}

func (c *Config) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Config) isTouch(p input.Pointer) bool {
	if c.Touch != nil {
		return c.Touch(p)
	}
	return p.FromTouch
}

// innerRadius is where the interactive annulus begins.
func (c *Config) innerRadius() float64 {
	return c.CenterRadius + c.CenterPad
}

// zoneRadius is the outer pointer-down acceptance radius.
func (c *Config) zoneRadius() float64 {
	return c.SliceRadius + 10
}
