package strip

import "github.com/katalvlaran/strata/core"

// FindGaps walks the depth-sorted view and returns the unclassified
// spans between consecutive intervals as an anti-striplog: a gap exists
// between interval i and i+1 when base[i] < top[i+1], strictly, by more
// than the configured tolerance. Returns nil when there are no gaps.
func (s *Striplog) FindGaps() *Striplog {
	return s.findIncongruities(true)
}

// FindOverlaps walks the depth-sorted view and returns the contested
// spans where consecutive intervals overlap. Returns nil when there are
// no overlaps.
//
// This is a pairwise report, matching gap detection: an interval that
// also overlaps intervals further down the sorted view (containment,
// long intervals spanning several others) is reported only against its
// immediate successor. To detect and resolve every overlap regardless
// of position, use Merge; a log is overlap-free exactly when Merge
// returns it unchanged.
func (s *Striplog) FindOverlaps() *Striplog {
	return s.findIncongruities(false)
}

// findIncongruities is the shared walk: gaps look for base[i] < top[i+1],
// overlaps for base[i] > top[i+1], both beyond the tolerance. The spans
// come back as component-less intervals.
func (s *Striplog) findIncongruities(gaps bool) *Striplog {
	sorted := s.sortedIntervals()
	if len(sorted) < 2 {
		return nil
	}

	var found []core.Interval
	for i := 0; i < len(sorted)-1; i++ {
		lo, hi := sorted[i].Base.Value, sorted[i+1].Top.Value
		if !gaps {
			lo, hi = hi, lo
		}
		if hi-lo > s.opts.eps {
			found = append(found, core.NewInterval(lo, hi))
		}
	}
	if len(found) == 0 {
		return nil
	}

	return s.derive(found)
}
