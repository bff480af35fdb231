// Package shift tracks one work shift: a countdown with pause
// bookkeeping and a revenue tally.
package shift

import "time"

// DefaultDuration is the standard shift length.
const DefaultDuration = 5 * time.Minute

// Shift is the running countdown plus earnings. All time queries take
// the current time explicitly so the caller's clock drives everything.
type Shift struct {
	duration time.Duration

	started     time.Time
	running     bool
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration

	revenue    int
	bonus      int
	ordersDone int
}

// New creates a shift of the given length. Non-positive durations fall
// back to the default.
func New(d time.Duration) *Shift {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Shift{duration: d}
}

// Duration returns the shift length.
func (s *Shift) Duration() time.Duration { return s.duration }

// Running reports whether the shift has started and not ended.
func (s *Shift) Running() bool { return s.running }

// Paused reports whether the countdown is held.
func (s *Shift) Paused() bool { return s.paused }

// Start begins the countdown. Starting an already-running shift resets
// it, clearing pauses and earnings.
func (s *Shift) Start(now time.Time) {
	*s = Shift{duration: s.duration, started: now, running: true}
}

// Pause holds the countdown. A second pause is a no-op.
func (s *Shift) Pause(now time.Time) {
	if !s.running || s.paused {
		return
	}
	s.paused = true
	s.pausedAt = now
}

// Resume releases a held countdown; the paused span does not count
// against the shift.
func (s *Shift) Resume(now time.Time) {
	if !s.running || !s.paused {
		return
	}
	s.paused = false
	s.pausedTotal += now.Sub(s.pausedAt)
}

// Elapsed returns the worked time so far, excluding pauses.
func (s *Shift) Elapsed(now time.Time) time.Duration {
	if !s.running {
		return 0
	}
	end := now
	if s.paused {
		end = s.pausedAt
	}
	e := end.Sub(s.started) - s.pausedTotal
	if e < 0 {
		e = 0
	}
	if e > s.duration {
		e = s.duration
	}
	return e
}

// Remaining returns the time left on the clock.
func (s *Shift) Remaining(now time.Time) time.Duration {
	return s.duration - s.Elapsed(now)
}

// Progress returns the worked fraction of the shift in [0, 1].
func (s *Shift) Progress(now time.Time) float64 {
	return float64(s.Elapsed(now)) / float64(s.duration)
}

// Over reports whether the countdown has run out.
func (s *Shift) Over(now time.Time) bool {
	return s.running && s.Elapsed(now) >= s.duration
}

// End stops the shift. Earnings stay readable.
func (s *Shift) End() { s.running = false }

// RecordOrder tallies a completed order's payout.
func (s *Shift) RecordOrder(revenue, bonus int) {
	s.revenue += revenue
	s.bonus += bonus
	s.ordersDone++
}

// Revenue returns base earnings so far.
func (s *Shift) Revenue() int { return s.revenue }

// Bonus returns bonus earnings so far.
func (s *Shift) Bonus() int { return s.bonus }

// Total returns revenue plus bonus.
func (s *Shift) Total() int { return s.revenue + s.bonus }

// OrdersCompleted returns how many orders paid out this shift.
func (s *Shift) OrdersCompleted() int { return s.ordersDone }
