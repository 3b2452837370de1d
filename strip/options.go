package strip

import (
	"math"

	"github.com/katalvlaran/strata/core"
)

// DefaultEpsilon is the contiguity tolerance: boundaries closer than
// this are the same point on the ordinate.
const DefaultEpsilon = core.DefaultTolerance

const panicEpsilonInvalid = "strip: WithEpsilon: eps must be finite, non-negative"

// ParserFunc turns a free-text description into components. It is the
// contract with the external description parser: the algebra invokes it
// only at construction time, for records that carry a description but
// no explicit components.
type ParserFunc func(description string) []core.Component

// Option configures Striplog construction. Derived striplogs inherit
// the configuration of their source. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*options)

type options struct {
	eps    float64
	parser ParserFunc
	source string
}

// WithEpsilon sets the contiguity tolerance used by gap detection,
// anneal and neighbour merging. Panics unless eps is finite and >= 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithParser supplies the external description parser used by
// FromRecords for description-only records.
func WithParser(p ParserFunc) Option {
	return func(o *options) { o.parser = p }
}

// WithSource attaches a provenance label (e.g. the name of the reader
// that produced the records).
func WithSource(source string) Option {
	return func(o *options) { o.source = source }
}

func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
