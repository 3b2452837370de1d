// Package strata is an in-memory algebra for ordered, depth-indexed
// interval logs: the kind of record a geologist keeps along a borehole
// or outcrop section, where every interval of the column carries a
// classification ("sandstone, grey, fine-grained").
//
// 🚀 What is strata?
//
//	A pure-value library for reconciling, compressing and classifying
//	partially overlapping, possibly gapped interval records:
//	  • Core primitives: Position, Component, Interval + range algebra
//	  • Striplog: ordered interval logs with gap/overlap resolution
//	  • Anneal / Prune / Merge: gap filling, thin-bed removal,
//	    precedence-based overlap resolution
//	  • Binary morphology: dilation / erosion / opening / closing over
//	    a boolean projection of the log
//	  • Markov chains: empirical transition counts & probabilities over
//	    the ordered sequence of interval classifications
//
// ✨ Why choose strata?
//
//   - Copy-on-write everywhere: every transform returns a new Striplog,
//     so pipelines chain without locking or surprise mutation
//   - Explicit error taxonomy: sentinel errors, matched with errors.Is
//   - Pure Go: no cgo, no I/O, no hidden deps
//
// Everything is organized under four subpackages:
//
//	core/   Position, Component, Interval & the interval algebra
//	strip/  the Striplog container and its cross-interval transforms
//	morph/  standalone 1-D binary morphology primitives
//	markov/ transition-count / transition-probability chains
//
// Quick ASCII example:
//
//	depth →  0    5    10   15   20
//	         ├────┤         ├────┤        two intervals with a gap
//	         ├─────────────┤├────┤        after Anneal(FloodDown)
//
// Parsing of free-text descriptions, file formats, legends and plotting
// are external collaborators, not part of the algebra: supply a
// strip.ParserFunc at construction time and consume the resulting
// Striplog downstream.
//
//	go get github.com/katalvlaran/strata
package strata
