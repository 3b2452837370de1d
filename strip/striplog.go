package strip

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/strata/core"
)

// Record is a raw (top, base, classification) tuple as produced by an
// external reader. Either Components or Description (or both) may be
// set; a description-only Record is parsed at construction time when a
// ParserFunc is configured, and otherwise carried component-less.
type Record struct {
	Top         float64
	Base        float64
	Components  []core.Component
	Description string
}

// Striplog is an ordered sequence of intervals representing a full log.
// The underlying order is insertion order, independent of depth order,
// and the sequence is not required to be non-overlapping. All transforms
// return a new Striplog; the receiver is never mutated.
type Striplog struct {
	intervals []core.Interval
	opts      options
}

// New builds a Striplog from pre-built intervals. The intervals are
// copied; the caller's slice and components are never aliased.
// Returns ErrEmpty when no intervals are given.
func New(intervals []core.Interval, opts ...Option) (*Striplog, error) {
	if len(intervals) == 0 {
		return nil, ErrEmpty
	}

	cp := make([]core.Interval, len(intervals))
	for i, iv := range intervals {
		cp[i] = iv.Copy()
	}

	return &Striplog{intervals: cp, opts: gatherOptions(opts...)}, nil
}

// FromRecords builds a Striplog from raw reader tuples, normalizing
// uniformly: explicit components are used as given; description-only
// records go through the configured ParserFunc; with no parser, the
// description is carried on a component-less interval.
func FromRecords(records []Record, opts ...Option) (*Striplog, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	o := gatherOptions(opts...)
	intervals := make([]core.Interval, 0, len(records))
	for _, r := range records {
		comps := r.Components
		if len(comps) == 0 && r.Description != "" && o.parser != nil {
			comps = o.parser(r.Description)
		}
		iv := core.NewInterval(r.Top, r.Base, comps...)
		iv.Description = r.Description
		intervals = append(intervals, iv)
	}

	return &Striplog{intervals: intervals, opts: o}, nil
}

// derive builds a new Striplog around already-owned intervals,
// inheriting the receiver's configuration.
func (s *Striplog) derive(intervals []core.Interval) *Striplog {
	return &Striplog{intervals: intervals, opts: s.opts}
}

// Len returns the number of intervals.
func (s *Striplog) Len() int {
	return len(s.intervals)
}

// Source returns the provenance label set with WithSource.
func (s *Striplog) Source() string {
	return s.opts.source
}

// Interval returns a copy of the i-th interval in insertion order.
func (s *Striplog) Interval(i int) core.Interval {
	return s.intervals[i].Copy()
}

// Intervals returns a copy of the sequence in insertion order.
func (s *Striplog) Intervals() []core.Interval {
	out := make([]core.Interval, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.Copy()
	}

	return out
}

// Start is the minimum top across all intervals, the position closest
// to the datum. It scans every interval: with overlaps in play, the
// first element of the sorted view is not a safe shortcut for both ends.
func (s *Striplog) Start() core.Position {
	start := s.intervals[0].Top
	for _, iv := range s.intervals[1:] {
		if iv.Top.Less(start) {
			start = iv.Top
		}
	}

	return start
}

// Stop is the maximum base across all intervals, the position furthest
// from the datum.
func (s *Striplog) Stop() core.Position {
	stop := s.intervals[0].Base
	for _, iv := range s.intervals[1:] {
		if stop.Less(iv.Base) {
			stop = iv.Base
		}
	}

	return stop
}

// Cum is the cumulative thickness of all intervals.
func (s *Striplog) Cum() float64 {
	var total float64
	for _, iv := range s.intervals {
		total += iv.Thickness()
	}

	return total
}

// MeanThickness is the mean interval thickness.
func (s *Striplog) MeanThickness() float64 {
	return s.Cum() / float64(len(s.intervals))
}

// Sorted returns a new Striplog with intervals in depth order:
// stable sort by (top, base), so equal keys preserve insertion order.
func (s *Striplog) Sorted() *Striplog {
	return s.derive(s.sortedIntervals())
}

// sortedIntervals returns an owned, depth-ordered copy of the sequence.
func (s *Striplog) sortedIntervals() []core.Interval {
	out := make([]core.Interval, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.Copy()
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Before(out[j]) })

	return out
}

// ReadAt returns a copy of the first interval (in insertion order)
// spanning depth d, and whether one exists.
func (s *Striplog) ReadAt(d float64) (core.Interval, bool) {
	for _, iv := range s.intervals {
		if iv.Spans(d) {
			return iv.Copy(), true
		}
	}

	return core.Interval{}, false
}

// UniqueEntry pairs a component with its total thickness in the log.
type UniqueEntry struct {
	Component core.Component
	Thickness float64
}

// Unique summarizes the log: one entry per distinct primary component,
// with its cumulative thickness, thickest first. Component identity is
// the canonical Key.
func (s *Striplog) Unique() []UniqueEntry {
	byKey := make(map[string]*UniqueEntry)
	var order []string
	for _, iv := range s.intervals {
		p := iv.Primary()
		k := p.Key()
		e, ok := byKey[k]
		if !ok {
			e = &UniqueEntry{Component: p}
			byKey[k] = e
			order = append(order, k)
		}
		e.Thickness += iv.Thickness()
	}

	out := make([]UniqueEntry, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Thickness > out[j].Thickness })

	return out
}

// Components returns the distinct non-null primary components,
// thickest first.
func (s *Striplog) Components() []core.Component {
	var out []core.Component
	for _, e := range s.Unique() {
		if !e.Component.IsZero() {
			out = append(out, e.Component)
		}
	}

	return out
}

// Sequence returns the depth-ordered canonical keys of the primary
// components, the state sequence for Markov analysis. Intervals with
// no components contribute the empty key.
func (s *Striplog) Sequence() []string {
	sorted := s.sortedIntervals()
	out := make([]string, len(sorted))
	for i, iv := range sorted {
		out[i] = iv.Primary().Key()
	}

	return out
}

// Thickest returns the n thickest intervals, thickest first.
func (s *Striplog) Thickest(n int) []core.Interval {
	return s.byThickness(n, false)
}

// Thinnest returns the n thinnest intervals, thinnest first.
func (s *Striplog) Thinnest(n int) []core.Interval {
	return s.byThickness(n, true)
}

func (s *Striplog) byThickness(n int, ascending bool) []core.Interval {
	idx := make([]int, len(s.intervals))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		ti, tj := s.intervals[idx[i]].Thickness(), s.intervals[idx[j]].Thickness()
		if ascending {
			return ti < tj
		}

		return ti > tj
	})
	if n > len(idx) {
		n = len(idx)
	}

	out := make([]core.Interval, 0, n)
	for _, i := range idx[:n] {
		out = append(out, s.intervals[i].Copy())
	}

	return out
}

// Shift returns a new Striplog with every interval translated by delta.
func (s *Striplog) Shift(delta float64) *Striplog {
	out := make([]core.Interval, len(s.intervals))
	for i, iv := range s.intervals {
		out[i] = iv.Shift(delta)
	}

	return s.derive(out)
}

// ShiftTo returns a new Striplog translated so that Start lands on the
// given depth.
func (s *Striplog) ShiftTo(start float64) *Striplog {
	return s.Shift(start - s.Start().Value)
}

// Crop clips the log to [from, to], splitting boundary intervals and
// dropping intervals entirely outside. Returns ErrBadExtent when
// from >= to or nothing of the log survives.
func (s *Striplog) Crop(from, to float64) (*Striplog, error) {
	if from >= to {
		return nil, fmt.Errorf("[%v, %v]: %w", from, to, ErrBadExtent)
	}

	var out []core.Interval
	for _, iv := range s.sortedIntervals() {
		if iv.IsPoint() {
			// Points survive only strictly inside the new extent.
			if iv.Top.Value > from && iv.Top.Value < to {
				out = append(out, iv.Copy())
			}
			continue
		}
		if iv.Base.Value <= from || iv.Top.Value >= to {
			continue
		}
		clipped := iv.Copy()
		if clipped.Top.Value < from {
			clipped.Top = core.At(from)
		}
		if clipped.Base.Value > to {
			clipped.Base = core.At(to)
		}
		out = append(out, clipped)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("[%v, %v] outside log: %w", from, to, ErrBadExtent)
	}

	return s.derive(out), nil
}

// Fill returns a new Striplog in which every gap is filled by an
// explicit interval carrying the given component (pass the null
// Component for blank fill). The fill intervals are appended after the
// originals in insertion order.
func (s *Striplog) Fill(component core.Component) *Striplog {
	gaps := s.FindGaps()
	if gaps == nil {
		return s.derive(s.Intervals())
	}

	out := s.Intervals()
	for _, gap := range gaps.Intervals() {
		filled := gap.Copy()
		if !component.IsZero() {
			filled.Components = []core.Component{component}
		}
		out = append(out, filled)
	}

	return s.derive(out)
}

// String summarizes the striplog.
func (s *Striplog) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Striplog(%d intervals, start=%v, stop=%v)",
		len(s.intervals), s.Start().Value, s.Stop().Value)

	return b.String()
}
