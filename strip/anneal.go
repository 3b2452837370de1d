package strip

import (
	"fmt"

	"github.com/katalvlaran/strata/core"
)

// AnnealMode selects how Anneal closes a gap between two intervals.
type AnnealMode int

const (
	// FloodUp extends the interval below a gap upward: its top moves to
	// the prior interval's base.
	FloodUp AnnealMode = iota
	// FloodDown extends the interval above a gap downward: its base moves
	// to the next interval's top.
	FloodDown
	// Symmetric moves both boundaries to the gap midpoint.
	Symmetric
)

// String returns the mode name.
func (m AnnealMode) String() string {
	switch m {
	case FloodUp:
		return "flood_up"
	case FloodDown:
		return "flood_down"
	case Symmetric:
		return "symmetric"
	default:
		return fmt.Sprintf("AnnealMode(%d)", int(m))
	}
}

// Anneal eliminates gaps by extending neighbouring intervals, per mode.
// Only true gaps are acted on; overlapping intervals are untouched
// (resolve those with Merge), and an already-adjacent pair is a no-op,
// so Anneal is idempotent. The result is depth-sorted.
//
// Moving a boundary replaces its Position with an exact one: the
// uncertainty bounds of a flooded boundary do not survive the move.
//
// Returns ErrUnknownMode for a mode outside the enumeration.
func (s *Striplog) Anneal(mode AnnealMode) (*Striplog, error) {
	if mode != FloodUp && mode != FloodDown && mode != Symmetric {
		return nil, fmt.Errorf("%v: %w (valid: flood_up, flood_down, symmetric)", mode, ErrUnknownMode)
	}

	out := s.sortedIntervals()
	for i := 0; i < len(out)-1; i++ {
		gap := out[i+1].Top.Value - out[i].Base.Value
		if gap <= s.opts.eps {
			continue // adjacent or overlapping
		}

		switch mode {
		case FloodUp:
			out[i+1].Top = core.At(out[i].Base.Value)
		case FloodDown:
			out[i].Base = core.At(out[i+1].Top.Value)
		case Symmetric:
			mid := out[i].Base.Value + gap/2
			out[i].Base = core.At(mid)
			out[i+1].Top = core.At(mid)
		}
	}

	return s.derive(out), nil
}
