package imglfw

import "time"

// fallbackDelta is reported for the first frame, before any reference
// point exists. ImGui requires a strictly positive delta.
const fallbackDelta = float32(1.0 / 60.0)

// minDelta guards against zero or negative deltas when two frames land on
// the same clock tick (coarse timers, clock adjustments).
const minDelta = float32(1e-6)

// frameClock measures the wall-clock time between consecutive frames.
type frameClock struct {
	now  func() time.Time
	last time.Time
}

func newFrameClock(now func() time.Time) *frameClock {
	return &frameClock{now: now}
}

// Delta returns the seconds elapsed since the previous call and advances
// the reference point. The first call returns fallbackDelta.
func (c *frameClock) Delta() float32 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return fallbackDelta
	}
	dt := float32(t.Sub(c.last).Seconds())
	c.last = t
	if dt < minDelta {
		return minDelta
	}
	return dt
}
