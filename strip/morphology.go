package strip

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strata/core"
	"github.com/katalvlaran/strata/morph"
)

// Predicate projects an interval onto a boolean, e.g. "is the primary
// component's lithology sandstone". Used by the binary morphology and
// net-to-gross operations.
type Predicate func(core.Interval) bool

// AttrTrue returns a Predicate that is true when the primary component
// has the named attribute set to boolean true.
func AttrTrue(name string) Predicate {
	return func(iv core.Interval) bool {
		v, ok := iv.Primary().Get(name)
		if !ok {
			return false
		}
		b, isBool := v.(bool)

		return isBool && b
	}
}

// FlagAttr is the attribute name carried by the flag components that
// BinaryMorphology writes onto its output intervals.
const FlagAttr = "flag"

// ToBinaryLog samples the predicate over [Start, Stop] at the given
// step, at sample midpoints: sample i covers
// [start + i·step, start + (i+1)·step] and is evaluated at its centre.
// Depths not covered by any interval read false. Returns the samples
// and the depth of each sample centre.
//
// Errors: ErrBadStep for step <= 0, ErrZeroThickness when the log spans
// no range at all.
func (s *Striplog) ToBinaryLog(pred Predicate, step float64) ([]bool, []float64, error) {
	if step <= 0 {
		return nil, nil, fmt.Errorf("step %v: %w", step, ErrBadStep)
	}

	start, stop := s.Start().Value, s.Stop().Value
	span := stop - start
	if span <= 0 {
		return nil, nil, fmt.Errorf("start == stop == %v: %w", start, ErrZeroThickness)
	}

	n := int(math.Ceil(span / step))
	samples := make([]bool, n)
	depths := make([]float64, n)
	for i := 0; i < n; i++ {
		d := start + (float64(i)+0.5)*step
		if d > stop {
			d = stop
		}
		depths[i] = d
		if iv, ok := s.ReadAt(d); ok {
			samples[i] = pred(iv)
		}
	}

	return samples, depths, nil
}

// BinaryMorphology projects the log onto a boolean sequence with the
// predicate, applies the 1-D morphological operator with a structuring
// element of p samples, and reconstitutes a striplog whose interval
// boundaries follow the filtered true/false runs. Every output interval
// carries a single flag component {FlagAttr: bool}.
//
// An entirely-true or entirely-false projection comes back as a single
// run spanning the whole log (morphology is a no-op on it); there is no
// wraparound at the log's ends.
func (s *Striplog) BinaryMorphology(pred Predicate, op morph.Op, step float64, p int) (*Striplog, error) {
	samples, _, err := s.ToBinaryLog(pred, step)
	if err != nil {
		return nil, err
	}

	filtered, err := morph.Apply(samples, op, p)
	if err != nil {
		return nil, err
	}

	start, stop := s.Start().Value, s.Stop().Value
	var out []core.Interval
	runStart := 0
	for i := 1; i <= len(filtered); i++ {
		if i < len(filtered) && filtered[i] == filtered[runStart] {
			continue
		}
		top := start + float64(runStart)*step
		base := math.Min(start+float64(i)*step, stop)
		flag := core.NewComponent(core.Attr{Key: FlagAttr, Value: filtered[runStart]})
		out = append(out, core.NewInterval(top, base, flag))
		runStart = i
	}

	return s.derive(out), nil
}

// NetToGross is the ratio of flagged thickness to total thickness:
// sum(thickness where pred) / sum(thickness). Returns ErrZeroThickness
// when the total is zero, rather than propagating NaN.
func (s *Striplog) NetToGross(pred Predicate) (float64, error) {
	var net, total float64
	for _, iv := range s.intervals {
		t := iv.Thickness()
		total += t
		if pred(iv) {
			net += t
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("net-to-gross undefined: %w", ErrZeroThickness)
	}

	return net / total, nil
}
