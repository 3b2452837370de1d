package core

import "errors"

var (
	// ErrBadBounds indicates a Position whose value lies outside its
	// uncertainty bounds. Inverted bounds are repaired by swap; a value
	// outside the (repaired) bounds is a caller error.
	ErrBadBounds = errors.New("core: position value outside bounds")

	// ErrDisjoint indicates a Union of two intervals that neither overlap
	// nor touch. Callers must pre-filter with Overlaps/Touches or handle
	// this error.
	ErrDisjoint = errors.New("core: intervals neither overlap nor touch")

	// ErrOutOfRange indicates a depth that is not spanned by the interval,
	// e.g. a SplitAt point outside [Top, Base].
	ErrOutOfRange = errors.New("core: depth not spanned by interval")
)
