package dial

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNormalizeAngle(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{twoPi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := normalizeAngle(c.in); !almostEqual(got, c.want) {
			t.Errorf("normalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestShortestDelta(t *testing.T) {
	cases := []struct{ from, to, want float64 }{
		{0, math.Pi / 4, math.Pi / 4},
		{math.Pi / 4, 0, -math.Pi / 4},
		// crossing the -π/π seam takes the short way
		{3, -3, 2*math.Pi - 6},
		{-3, 3, 6 - 2*math.Pi},
		{0, math.Pi, math.Pi},
	}
	for _, c := range cases {
		if got := shortestDelta(c.from, c.to); !almostEqual(got, c.want) {
			t.Errorf("shortestDelta(%v, %v) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestNormalizeDeg(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{185, -175},
		{-185, 175},
		{180, 180},
		{-180, 180},
		{540, 180},
		{361, 1},
	}
	for _, c := range cases {
		if got := normalizeDeg(c.in); !almostEqual(got, c.want) {
			t.Errorf("normalizeDeg(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSliceIndexAt(t *testing.T) {
	const n = 4
	cases := []struct {
		angle float64
		want  int
	}{
		{sliceStart + 0.01, 0},
		{sliceStart + sliceStep(n) - 0.01, 0},
		{sliceStart + sliceStep(n) + 0.01, 1},
		{sliceStart - 0.01, n - 1},
		{sliceCenterAngle(2, n), 2},
	}
	for _, c := range cases {
		if got := sliceIndexAt(c.angle, n); got != c.want {
			t.Errorf("sliceIndexAt(%v, %d) = %d, want %d", c.angle, n, got, c.want)
		}
	}
}

func TestSliceCenterAngleRoundTrips(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for i := 0; i < n; i++ {
			if got := sliceIndexAt(sliceCenterAngle(i, n), n); got != i {
				t.Errorf("n=%d: center of slice %d resolves to slice %d", n, i, got)
			}
		}
	}
}

func TestSliceCount(t *testing.T) {
	cases := []struct{ items, want int }{
		{0, 2}, {1, 2}, {2, 2}, {4, 4}, {6, 6}, {9, 6},
	}
	for _, c := range cases {
		if got := sliceCount(c.items); got != c.want {
			t.Errorf("sliceCount(%d) = %d, want %d", c.items, got, c.want)
		}
	}
}

func TestQuantityForTravel(t *testing.T) {
	cases := []struct {
		travel float64
		want   int
	}{
		{0, 1},
		{math.Pi / 3, 2},
		{2 * math.Pi / 3, 3},
		{travelMax, 3},
		{-math.Pi / 6, 1},
		{-math.Pi/6 - 0.05, 0},
		{travelMin, 0},
	}
	for _, c := range cases {
		if got := quantityForTravel(c.travel); got != c.want {
			t.Errorf("quantityForTravel(%v) = %d, want %d", c.travel, got, c.want)
		}
	}
}

func TestQuantityPreOffsetsResolveToSameQuantity(t *testing.T) {
	// reopening at a stored quantity must not immediately report a
	// different one
	for q := 1; q <= maxQuantity; q++ {
		travel := quantityProgress[q] * travelPerUnit
		if got := quantityForTravel(travel); got != q {
			t.Errorf("pre-offset for quantity %d resolves to %d", q, got)
		}
	}
}
