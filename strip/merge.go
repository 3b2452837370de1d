package strip

import (
	"sort"

	"github.com/katalvlaran/strata/core"
)

// Precedence ranks an interval for overlap resolution. Merge keeps, for
// every contested span, the interval with the greatest rank (least, when
// reversed). Thickness is the default ranking when nil is passed:
// "thickest wins".
type Precedence func(core.Interval) float64

// boundary is one row of the sweep table: a top or base event at a
// depth, tagged with the index of its interval in insertion order.
type boundary struct {
	isTop bool
	depth float64
	idx   int
}

// Merge resolves overlapping intervals by precedence rather than
// blending: a single deterministic winner is kept for every contested
// span.
//
// Algorithm (sweep line over the boundary table):
//  1. Collect every top and base as an event; stable-sort by depth, so
//     insertion order breaks depth ties deterministically.
//  2. Sweep top-down, keeping a stack of the intervals currently open,
//     ordered by rank. When a new top outranks the current winner, the
//     winner's unit is closed at this depth and the newcomer's opened;
//     boundaries are re-derived after each resolution, since resolving
//     one overlap changes adjacency for the next.
//  3. When a base closes the current winner, the next-ranked open
//     interval resumes with a fresh top at the same depth.
//  4. Pair the emitted boundaries into intervals, discarding
//     zero-thickness pairs; each keeps the winner's components.
//
// reverse flips the comparison, so e.g. a date rank switches between
// "most recent wins" and "oldest wins". The result has no remaining
// overlaps. Zero-thickness input intervals contribute no span and so
// can never win one.
func (s *Striplog) Merge(rank Precedence, reverse bool) (*Striplog, error) {
	if rank == nil {
		rank = core.Interval.Thickness
	}

	wins := func(a, b float64) bool {
		if reverse {
			return a <= b
		}

		return a >= b
	}

	table := make([]boundary, 0, 2*len(s.intervals))
	for i, iv := range s.intervals {
		table = append(table,
			boundary{isTop: true, depth: iv.Top.Value, idx: i},
			boundary{isTop: false, depth: iv.Base.Value, idx: i},
		)
	}
	sort.SliceStable(table, func(i, j int) bool { return table[i].depth < table[j].depth })

	var merged []boundary
	var stack []int // open intervals, current winner last
	for _, b := range table {
		if b.isTop {
			merge := true
			if len(stack) > 0 {
				merge = wins(rank(s.intervals[b.idx]), rank(s.intervals[stack[len(stack)-1]]))
			}
			if merge {
				if len(stack) > 0 {
					merged = append(merged, boundary{isTop: false, depth: b.depth, idx: stack[len(stack)-1]})
				}
				merged = append(merged, b)
			}
			stack = append(stack, b.idx)
			sort.SliceStable(stack, func(i, j int) bool {
				ri, rj := rank(s.intervals[stack[i]]), rank(s.intervals[stack[j]])
				if reverse {
					return ri > rj
				}

				return ri < rj
			})

			continue
		}

		closedWinner := false
		if len(stack) > 0 && stack[len(stack)-1] == b.idx {
			merged = append(merged, b)
			closedWinner = true
		}
		stack = removeIdx(stack, b.idx)
		if len(stack) > 0 && closedWinner {
			merged = append(merged, boundary{isTop: true, depth: b.depth, idx: stack[len(stack)-1]})
		}
	}

	var out []core.Interval
	for i := 0; i+1 < len(merged); i += 2 {
		top, base := merged[i], merged[i+1]
		if top.depth == base.depth {
			continue
		}
		iv := s.intervals[top.idx].Copy()
		iv.Top = core.At(top.depth)
		iv.Base = core.At(base.depth)
		out = append(out, iv)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return s.derive(out), nil
}

// removeIdx deletes the first occurrence of idx from the stack.
func removeIdx(stack []int, idx int) []int {
	for i, v := range stack {
		if v == idx {
			return append(stack[:i], stack[i+1:]...)
		}
	}

	return stack
}

// MergeNeighbours combines adjacent intervals with matching components
// via Interval.Union: strict matches the whole component list, loose
// (strict=false) only the primary. One left-to-right pass over the
// depth-sorted view, not an until-fixed-point
// loop: after Anneal the log is contiguous, so a single pass reaches
// the fixed point in O(n).
func (s *Striplog) MergeNeighbours(strict bool) (*Striplog, error) {
	sorted := s.sortedIntervals()

	out := []core.Interval{sorted[0]}
	for _, lower := range sorted[1:] {
		last := &out[len(out)-1]

		match := last.Primary().Equal(lower.Primary())
		if strict {
			match = componentsEqual(last.Components, lower.Components)
		}

		if match && last.TouchesWithin(lower, s.opts.eps) {
			united, err := last.Union(lower)
			if err != nil {
				return nil, err
			}
			*last = united

			continue
		}
		out = append(out, lower)
	}

	return s.derive(out), nil
}

// componentsEqual compares two component lists element-wise.
func componentsEqual(a, b []core.Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// Union unions every interval of s with each overlapping interval of
// other, producing a new striplog in s's insertion order. Non-
// overlapping intervals of s pass through unchanged.
func (s *Striplog) Union(other *Striplog) (*Striplog, error) {
	out := make([]core.Interval, 0, len(s.intervals))
	for _, iv := range s.intervals {
		acc := iv.Copy()
		for _, jv := range other.intervals {
			if !acc.Overlaps(jv) {
				continue
			}
			united, err := acc.Union(jv)
			if err != nil {
				return nil, err
			}
			acc = united
		}
		out = append(out, acc)
	}

	return s.derive(out), nil
}

// Intersect returns the pairwise intersections of s and other, in s's
// insertion order. Returns ErrEmpty when nothing overlaps.
func (s *Striplog) Intersect(other *Striplog) (*Striplog, error) {
	var out []core.Interval
	for _, iv := range s.intervals {
		for _, jv := range other.intervals {
			if cut, ok := iv.Intersect(jv); ok {
				out = append(out, cut)
			}
		}
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return s.derive(out), nil
}
