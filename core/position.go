package core

import (
	"fmt"
	"math"
)

// DefaultTolerance is the contiguity tolerance used by Touches when no
// explicit epsilon is supplied. Two boundaries closer than this are
// considered the same point on the ordinate.
const DefaultTolerance = 1e-9

// Position is a point on the ordinate (depth or time), with uncertainty
// bounds. Invariant: Lower ≤ Value ≤ Upper. Positions are immutable value
// types; ordering between Positions is by Value only.
type Position struct {
	Value float64
	Lower float64
	Upper float64
}

// At returns an exact Position: both bounds collapse onto the value.
func At(v float64) Position {
	return Position{Value: v, Lower: v, Upper: v}
}

// Between returns a Position with explicit uncertainty bounds. Inverted
// bounds are repaired by swapping (documented behavior, not an error).
// Returns ErrBadBounds if the value lies outside the repaired bounds.
func Between(v, lower, upper float64) (Position, error) {
	if lower > upper {
		lower, upper = upper, lower
	}
	if v < lower || v > upper {
		return Position{}, fmt.Errorf("value %v outside [%v, %v]: %w", v, lower, upper, ErrBadBounds)
	}

	return Position{Value: v, Lower: lower, Upper: upper}, nil
}

// Uncertainty is the width of the bounds around the value.
func (p Position) Uncertainty() float64 {
	return p.Upper - p.Lower
}

// Span returns the (lower, upper) bounds as a pair, for convenience.
func (p Position) Span() (float64, float64) {
	return p.Lower, p.Upper
}

// Less reports whether p is shallower than o, comparing by Value only.
func (p Position) Less(o Position) bool {
	return p.Value < o.Value
}

// SameAs reports whether p and o coincide on the ordinate within eps.
func (p Position) SameAs(o Position, eps float64) bool {
	return math.Abs(p.Value-o.Value) <= eps
}

// Shift returns a Position translated by delta, bounds included.
func (p Position) Shift(delta float64) Position {
	return Position{Value: p.Value + delta, Lower: p.Lower + delta, Upper: p.Upper + delta}
}

// String renders the position; exact positions show the value alone.
func (p Position) String() string {
	if p.Lower == p.Value && p.Upper == p.Value {
		return fmt.Sprintf("%g", p.Value)
	}

	return fmt.Sprintf("%g [%g–%g]", p.Value, p.Lower, p.Upper)
}
