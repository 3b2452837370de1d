// Package core defines the fundamental value types of the strata library
// and the interval algebra built on them.
//
// 🚀 What lives here?
//
//	• Position: a point on the ordinate (depth or time) with
//	  uncertainty bounds: Lower ≤ Value ≤ Upper.
//	• Component: an immutable, ordered attribute bag classifying an
//	  interval (e.g. lithology: "sandstone", colour: "grey"), with
//	  structural equality and a canonical identity Key.
//	• Interval: a range [Top, Base] on the ordinate carrying an
//	  ordered list of candidate Components (Primary = first), plus the
//	  range algebra: Overlaps, Touches, Spans, SplitAt, Union,
//	  Intersect, Difference.
//
// Conventions (enforced uniformly, see the tests):
//
//   - Depth order: the ordinate increases away from the datum, so
//     Top.Value ≤ Base.Value always. A constructor given an inverted
//     pair repairs it by swapping; this is documented behavior, not
//     an error.
//   - Overlap is strict: two intervals overlap iff
//     max(top) < min(base). A zero-thickness (point) interval overlaps
//     another interval iff its point lies strictly inside the other's
//     open range; two points never overlap (they can only touch).
//   - Zero-thickness intervals are legal everywhere; no operation may
//     fail or misbehave on a point observation.
//
// All three types are value types, immutable by convention: no method
// mutates its receiver, and every derived Interval owns its Components
// slice. That is what makes the copy-on-write chaining in package strip
// safe.
//
// Errors are package-level sentinels (ErrDisjoint, ErrOutOfRange,
// ErrBadBounds), returned rather than panicked, and matched with errors.Is.
package core
