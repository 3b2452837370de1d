package strip

import (
	"fmt"

	"github.com/katalvlaran/strata/core"
)

// PruneMode selects what happens to the span freed by a pruned interval.
type PruneMode int

const (
	// Leave removes thin intervals and leaves their spans as gaps.
	Leave PruneMode = iota
	// Above absorbs the freed span into the neighbour above: its base
	// extends down over the removed interval.
	Above
	// Below absorbs the freed span into the neighbour below: its top
	// extends up over the removed interval.
	Below
	// SymmetricSpan splits the freed span at its midpoint between the
	// two neighbours.
	SymmetricSpan
)

// String returns the mode name.
func (m PruneMode) String() string {
	switch m {
	case Leave:
		return "leave"
	case Above:
		return "above"
	case Below:
		return "below"
	case SymmetricSpan:
		return "symmetric"
	default:
		return fmt.Sprintf("PruneMode(%d)", int(m))
	}
}

// Prune removes intervals thinner than limit from the depth-sorted view.
// The absorbing modes redistribute the freed spans to the surviving
// neighbours, so on a contiguous log total thickness is conserved.
// Redistribution is per run: consecutive pruned intervals hand out
// their combined span once, between the two flanking survivors, so
// adjacent thin beds cannot assign the same span twice. A run at an end
// of the log gives its whole span to its only neighbour. Leave simply
// drops the thin intervals, creating gaps.
//
// Returns ErrBadLimit for a negative limit, ErrUnknownMode for a mode
// outside the enumeration, and ErrEmpty when nothing would survive.
func (s *Striplog) Prune(limit float64, mode PruneMode) (*Striplog, error) {
	if limit < 0 {
		return nil, fmt.Errorf("limit %v: %w", limit, ErrBadLimit)
	}
	if mode != Leave && mode != Above && mode != Below && mode != SymmetricSpan {
		return nil, fmt.Errorf("%v: %w (valid: leave, above, below, symmetric)", mode, ErrUnknownMode)
	}

	sorted := s.sortedIntervals()

	// Indices of survivors, in depth order.
	var kept []int
	for i, iv := range sorted {
		if iv.Thickness() >= limit {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("limit %v removes every interval: %w", limit, ErrEmpty)
	}

	out := make([]core.Interval, len(kept))
	for i, k := range kept {
		out[i] = sorted[k]
	}
	if mode == Leave {
		return s.derive(out), nil
	}

	// Redistribute the freed spans, one run of consecutive pruned
	// intervals at a time: the run's combined span is handed out once,
	// between the survivors flanking the whole run. Per-bed handouts
	// would let adjacent thin beds assign overlapping halves to both
	// neighbours, double-counting the span. The max/min guards only
	// ever extend survivors, so overlapping inputs cannot be shrunk by
	// absorption.
	for i := 0; i < len(sorted); i++ {
		if sorted[i].Thickness() >= limit {
			continue
		}
		j := i
		for j+1 < len(sorted) && sorted[j+1].Thickness() < limit {
			j++
		}
		runTop, runBase := sorted[i].Top.Value, sorted[j].Base.Value
		above, _ := neighbours(kept, i)
		_, below := neighbours(kept, j)

		switch {
		case above < 0 && below < 0:
			// No survivors around the run; nothing to absorb into.
		case above < 0:
			extendUp(&out[indexOf(kept, below)], runTop)
		case below < 0:
			extendDown(&out[indexOf(kept, above)], runBase)
		case mode == Above:
			extendDown(&out[indexOf(kept, above)], runBase)
		case mode == Below:
			extendUp(&out[indexOf(kept, below)], runTop)
		default: // SymmetricSpan
			mid := (runTop + runBase) / 2
			extendDown(&out[indexOf(kept, above)], mid)
			extendUp(&out[indexOf(kept, below)], mid)
		}
		i = j
	}

	return s.derive(out), nil
}

// neighbours returns the nearest kept indices above and below position
// i in the sorted sequence, or -1 where none exists.
func neighbours(kept []int, i int) (above, below int) {
	above, below = -1, -1
	for _, k := range kept {
		if k < i {
			above = k
		}
		if k > i {
			below = k
			break
		}
	}

	return above, below
}

// indexOf maps a sorted-sequence index back to its slot among the kept
// intervals.
func indexOf(kept []int, k int) int {
	for i, v := range kept {
		if v == k {
			return i
		}
	}

	return -1
}

func extendDown(iv *core.Interval, base float64) {
	if base > iv.Base.Value {
		iv.Base = core.At(base)
	}
}

func extendUp(iv *core.Interval, top float64) {
	if top < iv.Top.Value {
		iv.Top = core.At(top)
	}
}
