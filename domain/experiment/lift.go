package experiment

import (
	"fmt"
	"math"
)

// Lift is the relative improvement of the test rate over the control rate,
// in percent. The engine reports an unbounded lift as +Inf, which
// encoding/json cannot carry, so the flag keeps the JSON form total.
type Lift struct {
	Percent   float64 `json:"percent"`
	Unbounded bool    `json:"unbounded"`
}

// NewLift wraps the engine's float64 improvement value.
func NewLift(v float64) Lift {
	if math.IsInf(v, 1) {
		return Lift{Unbounded: true}
	}
	return Lift{Percent: v}
}

// Value returns the lift as the engine's float64 representation.
func (l Lift) Value() float64 {
	if l.Unbounded {
		return math.Inf(1)
	}
	return l.Percent
}

// String formats the lift for display, e.g. "+20.0%" or "unbounded".
func (l Lift) String() string {
	if l.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%+.1f%%", l.Percent)
}
