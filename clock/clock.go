// Package clock supplies the elapsed time for each simulation tick.
package clock

import (
	"math"
	"time"
)

// Clock returns the seconds elapsed since the previous call. The result is
// always finite and non-negative.
type Clock interface {
	Delta() float64
}

// Sanitize maps NaN, infinite and negative durations to zero.
func Sanitize(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	return dt
}

// Fixed returns the same step every call.
type Fixed float64

func (f Fixed) Delta() float64 {
	return Sanitize(float64(f))
}

// Wall measures real elapsed time. Long stalls, such as a window drag, are
// capped at MaxDelta.
type Wall struct {
	MaxDelta time.Duration

	now  func() time.Time
	last time.Time
}

func NewWall(maxDelta time.Duration) *Wall {
	return &Wall{MaxDelta: maxDelta, now: time.Now}
}

// Delta returns zero on the first call.
func (w *Wall) Delta() float64 {
	now := w.now()
	if w.last.IsZero() {
		w.last = now
		return 0
	}
	d := now.Sub(w.last)
	w.last = now
	if w.MaxDelta > 0 && d > w.MaxDelta {
		d = w.MaxDelta
	}
	return Sanitize(d.Seconds())
}
