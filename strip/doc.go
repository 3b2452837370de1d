// Package strip implements the Striplog: an ordered sequence of
// intervals representing a full depth-indexed log, and the
// cross-interval algorithms that reconcile it.
//
// 🚀 What can a Striplog do?
//
//	• FindGaps / FindOverlaps: locate incongruities in the sorted view
//	• Anneal: close gaps by extending neighbours (FloodUp, FloodDown,
//	  Symmetric)
//	• Prune: remove thin intervals, leaving gaps or redistributing the
//	  freed span to a neighbour (Leave, Above, Below, SymmetricSpan)
//	• Merge: resolve overlaps by precedence: one deterministic winner
//	  per contested span, chosen by a caller-supplied ranking
//	• MergeNeighbours: union touching intervals with matching
//	  components, one left-to-right pass
//	• BinaryMorphology: dilate/erode/open/close a boolean projection
//	  of the log and reconstitute flag intervals
//	• NetToGross, Crop, Shift, Fill, Union, Intersect, Sequence, ...
//
// ✨ Contract:
//
//   - The container is insertion-ordered: the underlying sequence is
//     NOT required to be sorted or non-overlapping. Algorithms that
//     need depth order work on a sorted view; Start and Stop scan all
//     intervals (never index the ends).
//   - Every transform returns a new Striplog; the receiver is never
//     mutated, so pipelines chain freely:
//
//     out, err := s.Anneal(strip.Symmetric)
//     out, err = out.Prune(0.5, strip.SymmetricSpan)
//     out, err = out.MergeNeighbours(true)
//
//   - Derived striplogs never alias mutable state from their inputs:
//     interval component lists are copied, not shared.
//
// Construction accepts pre-built intervals (New) or raw records
// (FromRecords): tuples of (top, base, components-or-description).
// Free-text descriptions are handed to an external ParserFunc; text
// parsing is a collaborator, not part of the algebra. Without a parser,
// description-only records are carried as component-less intervals.
//
// Policy parameters (anneal and prune modes) are closed enumerations
// dispatched once per call; an out-of-range value fails fast with
// ErrUnknownMode naming the valid modes.
package strip
