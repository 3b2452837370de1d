// Package morph implements 1-D binary morphology over boolean sequences:
// dilation, erosion, opening and closing with a flat (boxcar)
// structuring element.
//
// 🚀 What is binary morphology?
//
//	A run-filtering technique from image processing, applied here to a
//	boolean projection of an interval log:
//	  • Dilation: grow true runs by the structuring length
//	  • Erosion:  shrink them (runs shorter than the element vanish)
//	  • Opening:  erosion then dilation, removes thin true runs
//	  • Closing:  dilation then erosion, fills thin false runs
//
// ⚙️ Conventions:
//
//   - The sequence is a bounded line, not a ring: there is no
//     wraparound, and positions outside the sequence count as false.
//   - The structuring element of length p is centered on each sample;
//     for even p the window extends one sample further down-sequence.
//   - p == 1 is the identity for every operator.
//   - Close ORs its result with the input, so a true run abutting the
//     sequence boundary is never eroded away merely because the window
//     hangs off the end.
//
// The package is self-contained over []bool; package strip provides the
// projection of a Striplog onto a boolean sequence and the
// reconstruction of the filtered runs into flag intervals.
package morph
