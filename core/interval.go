package core

import (
	"fmt"
	"math"
	"strings"
)

// Interval is a range [Top, Base] on the ordinate carrying an ordered
// list of candidate Components; the first is the primary classification.
// Invariant: Top.Value ≤ Base.Value; constructors repair an inverted
// pair by swapping, which is documented behavior, not an error.
//
// Zero-thickness intervals (Top == Base) are legal point observations
// and are handled by every operation.
//
// An Interval owns its Components slice: operations that derive new
// Intervals copy the slice, never alias it. Component values themselves
// are immutable, so sharing them is safe.
type Interval struct {
	Top         Position
	Base        Position
	Components  []Component
	Description string
}

// NewInterval builds an Interval from plain top/base depths.
func NewInterval(top, base float64, components ...Component) Interval {
	return NewIntervalBetween(At(top), At(base), components...)
}

// NewIntervalBetween builds an Interval from explicit Positions,
// repairing an inverted top/base pair by swap.
func NewIntervalBetween(top, base Position, components ...Component) Interval {
	if base.Less(top) {
		top, base = base, top
	}
	cs := make([]Component, len(components))
	copy(cs, components)

	return Interval{Top: top, Base: base, Components: cs}
}

// Copy returns an Interval owning its own Components slice.
func (iv Interval) Copy() Interval {
	cs := make([]Component, len(iv.Components))
	copy(cs, iv.Components)

	return Interval{Top: iv.Top, Base: iv.Base, Components: cs, Description: iv.Description}
}

// Primary returns the first component, or the null Component if the
// interval carries none.
func (iv Interval) Primary() Component {
	if len(iv.Components) == 0 {
		return Component{}
	}

	return iv.Components[0]
}

// Thickness is Base − Top; zero for a point observation.
func (iv Interval) Thickness() float64 {
	return iv.Base.Value - iv.Top.Value
}

// MinThickness is the smallest thickness compatible with the positional
// uncertainty of the boundaries; never negative.
func (iv Interval) MinThickness() float64 {
	return math.Max(0, iv.Base.Lower-iv.Top.Upper)
}

// MaxThickness is the largest thickness compatible with the positional
// uncertainty of the boundaries.
func (iv Interval) MaxThickness() float64 {
	return iv.Base.Upper - iv.Top.Lower
}

// Middle is the midpoint of the interval on the ordinate.
func (iv Interval) Middle() float64 {
	return (iv.Top.Value + iv.Base.Value) / 2
}

// IsPoint reports whether the interval is a zero-thickness observation.
func (iv Interval) IsPoint() bool {
	return iv.Top.Value == iv.Base.Value
}

// Spans reports whether depth d lies within [Top, Base], inclusive.
func (iv Interval) Spans(d float64) bool {
	return iv.Top.Value <= d && d <= iv.Base.Value
}

// Overlaps reports whether the two ranges share ordinate values.
// The test is strict: max(top) < min(base). Point intervals follow the
// library-wide convention: a point overlaps an interval iff it lies
// strictly inside the interval's open range; two points never overlap.
func (iv Interval) Overlaps(o Interval) bool {
	if iv.IsPoint() && o.IsPoint() {
		return false
	}
	if iv.IsPoint() {
		return o.Top.Value < iv.Top.Value && iv.Top.Value < o.Base.Value
	}
	if o.IsPoint() {
		return iv.Top.Value < o.Top.Value && o.Top.Value < iv.Base.Value
	}

	return math.Max(iv.Top.Value, o.Top.Value) < math.Min(iv.Base.Value, o.Base.Value)
}

// Touches reports contiguity within DefaultTolerance: one interval's
// base coincides with the other's top.
func (iv Interval) Touches(o Interval) bool {
	return iv.TouchesWithin(o, DefaultTolerance)
}

// TouchesWithin reports contiguity within an explicit tolerance.
func (iv Interval) TouchesWithin(o Interval, eps float64) bool {
	return iv.Base.SameAs(o.Top, eps) || o.Base.SameAs(iv.Top, eps)
}

// Before orders intervals by (Top.Value, Base.Value). Containers stay
// insertion-ordered; this is only for algorithms that explicitly sort.
func (iv Interval) Before(o Interval) bool {
	if iv.Top.Value != o.Top.Value {
		return iv.Top.Value < o.Top.Value
	}

	return iv.Base.Value < o.Base.Value
}

// SplitAt splits the interval at depth d into (upper, lower) pieces,
// both carrying copies of the components. Returns ErrOutOfRange if d is
// not spanned.
func (iv Interval) SplitAt(d float64) (Interval, Interval, error) {
	if !iv.Spans(d) {
		return Interval{}, Interval{}, fmt.Errorf("split at %v outside [%v, %v]: %w",
			d, iv.Top.Value, iv.Base.Value, ErrOutOfRange)
	}

	upper, lower := iv.Copy(), iv.Copy()
	upper.Base = At(d)
	lower.Top = At(d)

	return upper, lower, nil
}

// Union returns a new Interval spanning min(top)..max(base) of the two,
// carrying the concatenation of both component lists with duplicates
// removed and order preserved. Returns ErrDisjoint unless the intervals
// overlap or touch.
func (iv Interval) Union(o Interval) (Interval, error) {
	if !iv.Overlaps(o) && !iv.Touches(o) {
		return Interval{}, fmt.Errorf("union of [%v, %v] and [%v, %v]: %w",
			iv.Top.Value, iv.Base.Value, o.Top.Value, o.Base.Value, ErrDisjoint)
	}

	top := iv.Top
	if o.Top.Less(top) {
		top = o.Top
	}
	base := iv.Base
	if base.Less(o.Base) {
		base = o.Base
	}

	out := Interval{
		Top:         top,
		Base:        base,
		Components:  mergeComponents(iv.Components, o.Components),
		Description: blendDescriptions(iv.Description, o.Description),
	}

	return out, nil
}

// Intersect returns the overlapping sub-range as a new Interval carrying
// both component lists. ok is false when the ranges do not overlap;
// intersection never fails.
func (iv Interval) Intersect(o Interval) (Interval, bool) {
	if !iv.Overlaps(o) {
		return Interval{}, false
	}

	top := iv.Top
	if top.Less(o.Top) {
		top = o.Top
	}
	base := iv.Base
	if o.Base.Less(base) {
		base = o.Base
	}

	out := Interval{
		Top:         top,
		Base:        base,
		Components:  mergeComponents(iv.Components, o.Components),
		Description: blendDescriptions(iv.Description, o.Description),
	}

	return out, true
}

// Difference returns the parts of iv not covered by o: zero, one or two
// intervals, each carrying iv's own components. Touching or disjoint
// inputs return iv unchanged (as a copy).
func (iv Interval) Difference(o Interval) []Interval {
	if !iv.Overlaps(o) {
		return []Interval{iv.Copy()}
	}

	var out []Interval
	if iv.Top.Value < o.Top.Value {
		upper := iv.Copy()
		upper.Base = At(o.Top.Value)
		if !upper.IsPoint() {
			out = append(out, upper)
		}
	}
	if o.Base.Value < iv.Base.Value {
		lower := iv.Copy()
		lower.Top = At(o.Base.Value)
		if !lower.IsPoint() {
			out = append(out, lower)
		}
	}

	return out
}

// Shift returns the interval translated by delta.
func (iv Interval) Shift(delta float64) Interval {
	out := iv.Copy()
	out.Top = out.Top.Shift(delta)
	out.Base = out.Base.Shift(delta)

	return out
}

// Summary renders an English-language summary, e.g.
// "5.00 of Grey, sandstone".
func (iv Interval) Summary() string {
	parts := make([]string, 0, len(iv.Components))
	for _, c := range iv.Components {
		if s := c.Summary(false); s != "" {
			parts = append(parts, s)
		}
	}
	what := strings.Join(parts, " with ")
	if what == "" {
		what = iv.Description
	}
	if what == "" {
		return ""
	}

	return fmt.Sprintf("%.2f of %s", iv.Thickness(), what)
}

// String renders the interval for debugging.
func (iv Interval) String() string {
	return fmt.Sprintf("Interval[%v, %v] %v", iv.Top.Value, iv.Base.Value, iv.Components)
}

// mergeComponents concatenates two component lists, dropping components
// of b already present in a. Order is preserved.
func mergeComponents(a, b []Component) []Component {
	out := make([]Component, 0, len(a)+len(b))
	out = append(out, a...)
	for _, c := range b {
		dup := false
		for _, have := range out {
			if have.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}

	return out
}

// blendDescriptions joins two descriptions, skipping empties and
// duplicates.
func blendDescriptions(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "" || strings.EqualFold(a, b):
		return a
	default:
		return a + " with " + b
	}
}
