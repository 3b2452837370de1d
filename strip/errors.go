package strip

import "errors"

var (
	// ErrEmpty indicates an attempt to build a Striplog with no intervals,
	// or a transform that would leave none.
	ErrEmpty = errors.New("strip: striplog must contain at least one interval")

	// ErrUnknownMode indicates an anneal or prune mode outside the defined
	// set. The error message names the valid modes.
	ErrUnknownMode = errors.New("strip: unknown mode")

	// ErrZeroThickness indicates a ratio or projection over a log whose
	// total thickness is zero; reported explicitly rather than propagating
	// a division by zero.
	ErrZeroThickness = errors.New("strip: total thickness is zero")

	// ErrBadStep indicates a non-positive sampling step.
	ErrBadStep = errors.New("strip: step must be > 0")

	// ErrBadLimit indicates a negative prune limit.
	ErrBadLimit = errors.New("strip: limit must be >= 0")

	// ErrBadExtent indicates a crop range with from >= to, or one that
	// lies entirely outside the striplog.
	ErrBadExtent = errors.New("strip: invalid extent")
)
