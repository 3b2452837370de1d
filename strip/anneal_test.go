package strip_test

import (
	"testing"

	"github.com/katalvlaran/strata/core"
	"github.com/katalvlaran/strata/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindGaps verifies gap detection on the sorted view.
func TestFindGaps(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(15, 20, mud), // insertion order is not depth order
		core.NewInterval(0, 10, sand),
	})

	gaps := s.FindGaps()
	require.NotNil(t, gaps, "the log has one gap")
	require.Equal(t, 1, gaps.Len())
	assert.Equal(t, 10.0, gaps.Interval(0).Top.Value, "gap spans the uncovered range")
	assert.Equal(t, 15.0, gaps.Interval(0).Base.Value, "gap spans the uncovered range")

	contiguous := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(10, 20, mud),
	})
	assert.Nil(t, contiguous.FindGaps(), "a contiguous log has no gaps")
}

// TestFindOverlaps verifies overlap detection on the sorted view.
func TestFindOverlaps(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 12, sand),
		core.NewInterval(10, 20, mud),
	})

	overlaps := s.FindOverlaps()
	require.NotNil(t, overlaps, "the log has one overlap")
	require.Equal(t, 1, overlaps.Len())
	assert.Equal(t, 10.0, overlaps.Interval(0).Top.Value, "contested span top")
	assert.Equal(t, 12.0, overlaps.Interval(0).Base.Value, "contested span base")

	clean := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(10, 20, mud),
	})
	assert.Nil(t, clean.FindOverlaps(), "a clean log has no overlaps")
}

// TestFindOverlaps_PairwiseOnly pins the documented scope: the report
// covers consecutive pairs of the sorted view, so a long interval
// containing several others yields one span per successor pair, and
// Merge is the full resolution.
func TestFindOverlaps_PairwiseOnly(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 20, sand), // contains both beds below
		core.NewInterval(5, 8, mud),
		core.NewInterval(15, 18, chalk),
	})

	overlaps := s.FindOverlaps()
	require.NotNil(t, overlaps)
	assert.Equal(t, 1, overlaps.Len(), "only the consecutive pair is reported")

	merged, err := s.Merge(nil, false)
	require.NoError(t, err)
	ivs := merged.Intervals()
	for i := 0; i < len(ivs); i++ {
		for j := i + 1; j < len(ivs); j++ {
			assert.False(t, ivs[i].Overlaps(ivs[j]), "merge resolves every overlap")
		}
	}
}

// TestAnneal_FloodDown pins the binding example: [0,10) then [15,20)
// with flood_down produces [0,15) then [15,20): the interval above the
// gap extends downward.
func TestAnneal_FloodDown(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(15, 20, mud),
	})

	out, err := s.Anneal(strip.FloodDown)
	require.NoError(t, err, "flood_down must succeed")
	require.Equal(t, 2, out.Len())
	assert.Equal(t, 15.0, out.Interval(0).Base.Value, "the upper interval extends down to 15")
	assert.Equal(t, 15.0, out.Interval(1).Top.Value, "the lower interval keeps its top")
	assert.Nil(t, out.FindGaps(), "no gaps remain")
}

// TestAnneal_FloodUp verifies the opposite flooding direction.
func TestAnneal_FloodUp(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(15, 20, mud),
	})

	out, err := s.Anneal(strip.FloodUp)
	require.NoError(t, err)
	assert.Equal(t, 10.0, out.Interval(0).Base.Value, "the upper interval keeps its base")
	assert.Equal(t, 10.0, out.Interval(1).Top.Value, "the lower interval extends up to 10")
	assert.Nil(t, out.FindGaps(), "no gaps remain")
}

// TestAnneal_Symmetric verifies midpoint closure.
func TestAnneal_Symmetric(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(16, 20, mud),
	})

	out, err := s.Anneal(strip.Symmetric)
	require.NoError(t, err)
	assert.Equal(t, 13.0, out.Interval(0).Base.Value, "upper base moves to the midpoint")
	assert.Equal(t, 13.0, out.Interval(1).Top.Value, "lower top moves to the midpoint")
}

// TestAnneal_Idempotent pins the binding property: annealing an
// annealed log changes nothing, in every mode.
func TestAnneal_Idempotent(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(12, 16, mud),
		core.NewInterval(19, 25, chalk),
	})

	for _, mode := range []strip.AnnealMode{strip.FloodUp, strip.FloodDown, strip.Symmetric} {
		once, err := s.Anneal(mode)
		require.NoError(t, err, "first anneal in mode %v", mode)
		twice, err := once.Anneal(mode)
		require.NoError(t, err, "second anneal in mode %v", mode)

		require.Equal(t, once.Len(), twice.Len(), "anneal must be idempotent in mode %v", mode)
		for i := 0; i < once.Len(); i++ {
			assert.Equal(t, once.Interval(i).Top.Value, twice.Interval(i).Top.Value,
				"tops stable under re-anneal in mode %v", mode)
			assert.Equal(t, once.Interval(i).Base.Value, twice.Interval(i).Base.Value,
				"bases stable under re-anneal in mode %v", mode)
		}
	}
}

// TestAnneal_OverlapsUntouched verifies that anneal acts only on true
// gaps.
func TestAnneal_OverlapsUntouched(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 12, sand),
		core.NewInterval(10, 20, mud),
	})

	out, err := s.Anneal(strip.Symmetric)
	require.NoError(t, err)
	assert.Equal(t, 12.0, out.Interval(0).Base.Value, "overlapping boundaries are untouched")
	assert.Equal(t, 10.0, out.Interval(1).Top.Value, "overlapping boundaries are untouched")
}

// TestAnneal_UnknownMode verifies the fail-fast policy check.
func TestAnneal_UnknownMode(t *testing.T) {
	s := mustStriplog(t, []core.Interval{core.NewInterval(0, 10, sand)})

	_, err := s.Anneal(strip.AnnealMode(42))
	require.ErrorIs(t, err, strip.ErrUnknownMode, "an out-of-range mode must fail fast")
	assert.Contains(t, err.Error(), "flood_up", "the error names the valid modes")
}
