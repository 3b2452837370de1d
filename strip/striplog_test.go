package strip_test

import (
	"testing"

	"github.com/katalvlaran/strata/core"
	"github.com/katalvlaran/strata/strip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sand  = core.NewComponent(core.Attr{Key: "lithology", Value: "sandstone"})
	mud   = core.NewComponent(core.Attr{Key: "lithology", Value: "mudstone"})
	chalk = core.NewComponent(core.Attr{Key: "lithology", Value: "chalk"})
)

// mustStriplog builds a test striplog or fails the test.
func mustStriplog(t *testing.T, intervals []core.Interval, opts ...strip.Option) *strip.Striplog {
	t.Helper()
	s, err := strip.New(intervals, opts...)
	require.NoError(t, err, "test striplog must construct")

	return s
}

// TestNew_Validation verifies the empty guard and input copying.
func TestNew_Validation(t *testing.T) {
	_, err := strip.New(nil)
	assert.ErrorIs(t, err, strip.ErrEmpty, "an empty striplog must be rejected")

	src := []core.Interval{core.NewInterval(0, 10, sand)}
	s := mustStriplog(t, src)
	src[0].Components[0] = chalk
	assert.True(t, sand.Equal(s.Interval(0).Primary()),
		"the striplog must not alias the caller's intervals")
}

// TestFromRecords verifies uniform normalization of raw reader tuples:
// explicit components, parsed descriptions, and description-only
// fallback.
func TestFromRecords(t *testing.T) {
	parser := func(description string) []core.Component {
		return []core.Component{core.NewComponent(core.Attr{Key: "lithology", Value: description})}
	}

	records := []strip.Record{
		{Top: 0, Base: 10, Components: []core.Component{sand}},
		{Top: 10, Base: 20, Description: "mudstone"},
		{Top: 20, Base: 30},
	}

	s, err := strip.FromRecords(records, strip.WithParser(parser), strip.WithSource("test-reader"))
	require.NoError(t, err, "records must construct")
	require.Equal(t, 3, s.Len(), "one interval per record")
	assert.Equal(t, "test-reader", s.Source(), "source label is carried")

	assert.True(t, sand.Equal(s.Interval(0).Primary()), "explicit components are used as given")
	assert.True(t, mud.Equal(s.Interval(1).Primary()), "description-only records go through the parser")
	assert.True(t, s.Interval(2).Primary().IsZero(), "no description, no components: null primary")

	// Without a parser the description is carried component-less.
	s, err = strip.FromRecords(records[1:2])
	require.NoError(t, err)
	assert.True(t, s.Interval(0).Primary().IsZero(), "no parser: description packaged without components")
	assert.Equal(t, "mudstone", s.Interval(0).Description, "the description itself survives")

	_, err = strip.FromRecords(nil)
	assert.ErrorIs(t, err, strip.ErrEmpty, "no records must error")
}

// TestStartStop_OrderIndependence pins the binding property: start and
// stop are invariant under any permutation of insertion order, because
// they scan all intervals rather than indexing the ends.
func TestStartStop_OrderIndependence(t *testing.T) {
	intervals := []core.Interval{
		core.NewInterval(20, 35, mud),
		core.NewInterval(0, 25, sand), // overlaps; deepest top is not deepest base
		core.NewInterval(35, 40, chalk),
	}

	perms := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}, {1, 0, 2}, {0, 2, 1}}
	for _, p := range perms {
		shuffled := []core.Interval{intervals[p[0]], intervals[p[1]], intervals[p[2]]}
		s := mustStriplog(t, shuffled)
		assert.Equal(t, 0.0, s.Start().Value, "start is the minimum top for permutation %v", p)
		assert.Equal(t, 40.0, s.Stop().Value, "stop is the maximum base for permutation %v", p)
	}
}

// TestSorted verifies the stable depth ordering and that the receiver
// keeps its insertion order.
func TestSorted(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(10, 20, mud),
		core.NewInterval(0, 10, sand),
		core.NewInterval(10, 20, chalk), // same key as the first: insertion order must hold
	})

	sorted := s.Sorted()
	assert.True(t, sand.Equal(sorted.Interval(0).Primary()), "shallowest first")
	assert.True(t, mud.Equal(sorted.Interval(1).Primary()), "stable sort keeps first-inserted before")
	assert.True(t, chalk.Equal(sorted.Interval(2).Primary()), "equal keys preserve input order")
	assert.True(t, mud.Equal(s.Interval(0).Primary()), "the receiver keeps insertion order")
}

// TestCumUniqueSequence verifies the summary accessors.
func TestCumUniqueSequence(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(10, 13, mud),
		core.NewInterval(0, 10, sand),
		core.NewInterval(13, 15, sand),
	})

	assert.Equal(t, 15.0, s.Cum(), "cumulative thickness sums all intervals")
	assert.Equal(t, 5.0, s.MeanThickness(), "mean thickness")

	unique := s.Unique()
	require.Len(t, unique, 2, "one entry per distinct primary")
	assert.True(t, sand.Equal(unique[0].Component), "thickest component first")
	assert.Equal(t, 12.0, unique[0].Thickness, "sand totals 10+2")
	assert.Equal(t, 3.0, unique[1].Thickness, "mud totals 3")

	assert.Equal(t, []string{sand.Key(), mud.Key(), sand.Key()}, s.Sequence(),
		"sequence is the depth-ordered primaries")
}

// TestReadAtAndThickest verifies point queries and thickness ranking.
func TestReadAtAndThickest(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(10, 12, mud),
	})

	iv, ok := s.ReadAt(5)
	require.True(t, ok, "a covered depth reads an interval")
	assert.True(t, sand.Equal(iv.Primary()), "the right interval comes back")

	_, ok = s.ReadAt(50)
	assert.False(t, ok, "an uncovered depth reads nothing")

	thickest := s.Thickest(1)
	require.Len(t, thickest, 1)
	assert.True(t, sand.Equal(thickest[0].Primary()), "thickest interval")

	thinnest := s.Thinnest(5)
	require.Len(t, thinnest, 2, "n is clamped to the interval count")
	assert.True(t, mud.Equal(thinnest[0].Primary()), "thinnest first")
}

// TestShiftAndCrop verifies translation and clipping.
func TestShiftAndCrop(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(10, 20, mud),
	})

	shifted := s.ShiftTo(100)
	assert.Equal(t, 100.0, shifted.Start().Value, "ShiftTo places start on the target")
	assert.Equal(t, 120.0, shifted.Stop().Value, "the whole log translates")
	assert.Equal(t, 0.0, s.Start().Value, "the receiver is untouched")

	cropped, err := s.Crop(5, 15)
	require.NoError(t, err, "an interior crop must succeed")
	assert.Equal(t, 5.0, cropped.Start().Value, "crop clips the top")
	assert.Equal(t, 15.0, cropped.Stop().Value, "crop clips the base")
	assert.Equal(t, 2, cropped.Len(), "both straddling intervals survive, split")

	_, err = s.Crop(15, 5)
	assert.ErrorIs(t, err, strip.ErrBadExtent, "an inverted extent must error")
	_, err = s.Crop(100, 200)
	assert.ErrorIs(t, err, strip.ErrBadExtent, "an extent outside the log must error")
}

// TestFill verifies gap filling with an explicit component.
func TestFill(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(15, 20, mud),
	})

	filled := s.Fill(chalk)
	require.Equal(t, 3, filled.Len(), "one fill interval per gap")
	assert.Nil(t, filled.FindGaps(), "no gaps remain after fill")

	gap, ok := filled.ReadAt(12)
	require.True(t, ok, "the former gap now reads")
	assert.True(t, chalk.Equal(gap.Primary()), "the fill carries the given component")

	assert.Equal(t, 2, s.Len(), "the receiver is untouched")

	gapless := mustStriplog(t, []core.Interval{core.NewInterval(0, 10, sand)})
	assert.Equal(t, 1, gapless.Fill(chalk).Len(), "a gapless log fills to itself")
}

// TestCopyOnWrite verifies that a chain of transforms never mutates the
// shared source.
func TestCopyOnWrite(t *testing.T) {
	s := mustStriplog(t, []core.Interval{
		core.NewInterval(0, 10, sand),
		core.NewInterval(12, 12.4, mud),
		core.NewInterval(15, 20, chalk),
	})

	annealed, err := s.Anneal(strip.Symmetric)
	require.NoError(t, err)
	pruned, err := annealed.Prune(1, strip.SymmetricSpan)
	require.NoError(t, err)
	merged, err := pruned.MergeNeighbours(true)
	require.NoError(t, err)
	require.NotNil(t, merged)

	assert.Equal(t, 3, s.Len(), "the source keeps its intervals")
	assert.NotNil(t, s.FindGaps(), "the source keeps its gaps")
	assert.InDelta(t, 0.4, s.Interval(1).Thickness(), 1e-9, "the source keeps its thin bed")
}
