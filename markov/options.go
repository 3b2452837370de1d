package markov

// Defaults, the single source of truth for zero-value behavior.
const (
	// DefaultMaxLag builds lag-1 transitions only.
	DefaultMaxLag = 1

	// DefaultIncludeSelf counts self-transitions per genuine occurrence,
	// at every lag. This is the fixed, uniform policy; pass
	// WithIncludeSelf(false) for hollow (zero-diagonal) matrices.
	DefaultIncludeSelf = true
)

const panicMaxLagInvalid = "markov: WithMaxLag: lag must be >= 1"

// Option configures FromSequence. Constructors panic only on nonsensical
// values (programmer error); data problems surface as errors.
type Option func(*options)

type options struct {
	maxLag      int
	includeSelf bool
	states      []string
}

// WithMaxLag builds transition matrices for every lag 1..n.
// Panics if n < 1.
func WithMaxLag(n int) Option {
	if n < 1 {
		panic(panicMaxLagInvalid)
	}

	return func(o *options) { o.maxLag = n }
}

// WithIncludeSelf controls whether self-transitions are counted.
func WithIncludeSelf(include bool) Option {
	return func(o *options) { o.includeSelf = include }
}

// WithStates fixes the state set and its matrix row/column order.
// Every state appearing in the sequence must be a member, or
// FromSequence returns ErrUnknownState. Useful for comparing chains
// built from different logs over a shared state ordering.
func WithStates(states []string) Option {
	cp := make([]string, len(states))
	copy(cp, states)

	return func(o *options) { o.states = cp }
}

func gatherOptions(opts ...Option) options {
	o := options{
		maxLag:      DefaultMaxLag,
		includeSelf: DefaultIncludeSelf,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
