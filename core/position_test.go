package core_test

import (
	"testing"

	"github.com/katalvlaran/strata/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPosition_At verifies that an exact position collapses its bounds
// onto the value.
func TestPosition_At(t *testing.T) {
	p := core.At(12.5)
	assert.Equal(t, 12.5, p.Value, "value must be as given")
	assert.Equal(t, 12.5, p.Lower, "lower bound collapses onto value")
	assert.Equal(t, 12.5, p.Upper, "upper bound collapses onto value")
	assert.Equal(t, 0.0, p.Uncertainty(), "exact position has zero uncertainty")
}

// TestPosition_Between verifies bound repair and the bounds invariant.
func TestPosition_Between(t *testing.T) {
	p, err := core.Between(10, 9, 11)
	require.NoError(t, err, "value inside bounds must construct")
	assert.Equal(t, 2.0, p.Uncertainty(), "uncertainty is upper-lower")

	lo, hi := p.Span()
	assert.Equal(t, 9.0, lo, "span lower")
	assert.Equal(t, 11.0, hi, "span upper")

	// Inverted bounds are repaired by swap, not rejected.
	p, err = core.Between(10, 11, 9)
	require.NoError(t, err, "inverted bounds must be repaired")
	assert.Equal(t, 9.0, p.Lower, "repaired lower")
	assert.Equal(t, 11.0, p.Upper, "repaired upper")

	// A value outside the repaired bounds is a caller error.
	_, err = core.Between(20, 9, 11)
	assert.ErrorIs(t, err, core.ErrBadBounds, "value outside bounds must error")
}

// TestPosition_Ordering verifies that positions order by value only.
func TestPosition_Ordering(t *testing.T) {
	a, err := core.Between(5, 4, 6)
	require.NoError(t, err)
	b := core.At(7)

	assert.True(t, a.Less(b), "5 is shallower than 7")
	assert.False(t, b.Less(a), "7 is not shallower than 5")
	assert.True(t, core.At(5).SameAs(a, 0), "equal values coincide regardless of bounds")
}

// TestPosition_Shift verifies that translation moves value and bounds.
func TestPosition_Shift(t *testing.T) {
	p, err := core.Between(10, 9, 11)
	require.NoError(t, err)

	q := p.Shift(-2)
	assert.Equal(t, 8.0, q.Value, "value shifts")
	assert.Equal(t, 7.0, q.Lower, "lower bound shifts")
	assert.Equal(t, 9.0, q.Upper, "upper bound shifts")
	assert.Equal(t, 10.0, p.Value, "receiver is untouched")
}
