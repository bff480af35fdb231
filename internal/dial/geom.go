// Package dial implements the radial-dial interaction engine: a stack of
// interchangeable faces sharing one circular on-screen control, driven by
// normalized pointer events.
package dial

import "math"

const twoPi = 2 * math.Pi

// sliceStart is the screen angle where slice 0 begins. Screen angles run
// clockwise with y down, so -π/2 is the top of the dial.
const sliceStart = -math.Pi / 2

// angleAt returns the screen angle of (x, y) relative to (cx, cy).
func angleAt(cx, cy, x, y float64) float64 {
	return math.Atan2(y-cy, x-cx)
}

// distanceTo returns the distance from (cx, cy) to (x, y).
func distanceTo(cx, cy, x, y float64) float64 {
	return math.Hypot(x-cx, y-cy)
}

// normalizeAngle maps an angle into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// shortestDelta returns the signed smallest rotation taking from to to,
// in radians within (-π, π].
func shortestDelta(from, to float64) float64 {
	d := math.Mod(to-from, twoPi)
	if d > math.Pi {
		d -= twoPi
	}
	if d <= -math.Pi {
		d += twoPi
	}
	return d
}

// normalizeDeg maps degrees into (-180, 180].
func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

// sliceCount clamps an item count to the rendered slice range.
func sliceCount(items int) int {
	return clampInt(items, 2, 6)
}

// sliceStep returns the angular width of one slice.
func sliceStep(n int) float64 {
	return twoPi / float64(n)
}

// sliceIndexAt resolves which of n slices contains the given screen angle.
// The boundary tie-break is floor of the normalized angle.
func sliceIndexAt(angle float64, n int) int {
	rel := normalizeAngle(angle - sliceStart)
	i := int(math.Floor(rel / sliceStep(n)))
	if i >= n { // exact 2π wrap
		i = 0
	}
	return i
}

// sliceCenterAngle returns the screen angle of the center of slice i.
func sliceCenterAngle(i, n int) float64 {
	return sliceStart + (float64(i)+0.5)*sliceStep(n)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
