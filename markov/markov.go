package markov

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrEmptySequence indicates an empty input sequence.
	ErrEmptySequence = errors.New("markov: input sequence must be non-empty")
	// ErrShortSequence indicates a sequence too short to produce a single
	// lag-1 transition.
	ErrShortSequence = errors.New("markov: sequence must contain at least two states")
	// ErrBadLag indicates a lag outside 1..MaxLag.
	ErrBadLag = errors.New("markov: lag outside configured range")
	// ErrUnknownState indicates a sequence state absent from the state
	// set fixed with WithStates.
	ErrUnknownState = errors.New("markov: state not in configured state set")
)

// Chain is an empirical transition model over an ordered state sequence.
// It is a derived, immutable report object: build it with FromSequence
// and query it; it holds no reference to the sequence that produced it.
type Chain struct {
	states      []string
	index       map[string]int
	counts      [][][]float64 // [lag-1][from][to]
	occurrences []float64     // state occurrence counts in the sequence
	seqLen      int
	maxLag      int
	includeSelf bool
}

// FromSequence builds a Chain from an ordered state sequence.
//
// Algorithm:
//  1. Resolve the state set: WithStates if given (every sequence state
//     must be a member), else the sorted unique states of the sequence.
//  2. For each lag L in 1..MaxLag, count pairs (seq[i], seq[i+L]) for
//     every i. A pair with equal states is a self-transition: counted
//     per occurrence when IncludeSelf (default), skipped otherwise.
//  3. Record state occurrence counts for the expected-counts model.
//
// Errors: ErrEmptySequence, ErrShortSequence, ErrUnknownState.
func FromSequence(seq []string, opts ...Option) (*Chain, error) {
	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if len(seq) < 2 {
		return nil, ErrShortSequence
	}

	o := gatherOptions(opts...)

	states := o.states
	if states == nil {
		states = uniqueSorted(seq)
	}
	index := make(map[string]int, len(states))
	for i, s := range states {
		index[s] = i
	}

	occurrences := make([]float64, len(states))
	for _, s := range seq {
		i, ok := index[s]
		if !ok {
			return nil, fmt.Errorf("%q: %w", s, ErrUnknownState)
		}
		occurrences[i]++
	}

	n := len(states)
	counts := make([][][]float64, o.maxLag)
	for lag := 1; lag <= o.maxLag; lag++ {
		m := newMatrix(n, n)
		for i := 0; i+lag < len(seq); i++ {
			from, to := index[seq[i]], index[seq[i+lag]]
			if !o.includeSelf && from == to {
				continue
			}
			m[from][to]++
		}
		counts[lag-1] = m
	}

	return &Chain{
		states:      states,
		index:       index,
		counts:      counts,
		occurrences: occurrences,
		seqLen:      len(seq),
		maxLag:      o.maxLag,
		includeSelf: o.includeSelf,
	}, nil
}

// States returns the state set, in matrix row/column order.
func (c *Chain) States() []string {
	out := make([]string, len(c.states))
	copy(out, c.states)

	return out
}

// MaxLag returns the largest lag the chain was built for.
func (c *Chain) MaxLag() int {
	return c.maxLag
}

// IncludeSelf reports whether self-transitions were counted.
func (c *Chain) IncludeSelf() bool {
	return c.includeSelf
}

// Counts returns the transition-count matrix for the given lag:
// Counts(lag)[i][j] is the number of times states[i] was followed,
// lag steps later, by states[j].
func (c *Chain) Counts(lag int) ([][]float64, error) {
	if lag < 1 || lag > c.maxLag {
		return nil, fmt.Errorf("lag %d not in 1..%d: %w", lag, c.maxLag, ErrBadLag)
	}

	return copyMatrix(c.counts[lag-1]), nil
}

// TotalObserved returns the total number of transitions observed at the
// given lag.
func (c *Chain) TotalObserved(lag int) (float64, error) {
	m, err := c.Counts(lag)
	if err != nil {
		return 0, err
	}

	return matrixSum(m), nil
}

// Probabilities returns the row-stochastic transition matrix for the
// given lag: every row sums to 1, except rows for states with no
// observed outgoing transition, which stay all-zero (use ZeroOutgoing
// to enumerate them; there is no silent division by zero).
func (c *Chain) Probabilities(lag int) ([][]float64, error) {
	m, err := c.Counts(lag)
	if err != nil {
		return nil, err
	}
	for i := range m {
		var sum float64
		for _, v := range m[i] {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j := range m[i] {
			m[i][j] /= sum
		}
	}

	return m, nil
}

// ZeroOutgoing reports the states with no observed outgoing transition
// at the given lag. Their probability rows are all-zero.
func (c *Chain) ZeroOutgoing(lag int) ([]string, error) {
	m, err := c.Counts(lag)
	if err != nil {
		return nil, err
	}

	var out []string
	for i := range m {
		var sum float64
		for _, v := range m[i] {
			sum += v
		}
		if sum == 0 {
			out = append(out, c.states[i])
		}
	}

	return out, nil
}

// ExpectedCounts returns the transition counts expected at the given lag
// under an independent-trials model: E[i][j] = N·p(i)·p(j), where p is
// the state occurrence proportion in the sequence and N the observed
// transition total. When self-transitions are excluded the diagonal is
// zeroed and the matrix rescaled back to total N.
func (c *Chain) ExpectedCounts(lag int) ([][]float64, error) {
	total, err := c.TotalObserved(lag)
	if err != nil {
		return nil, err
	}

	n := len(c.states)
	e := newMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !c.includeSelf && i == j {
				continue
			}
			pi := c.occurrences[i] / float64(c.seqLen)
			pj := c.occurrences[j] / float64(c.seqLen)
			e[i][j] = total * pi * pj
		}
	}
	if s := matrixSum(e); s > 0 {
		for i := range e {
			for j := range e[i] {
				e[i][j] *= total / s
			}
		}
	}

	return e, nil
}

// NormalizedDifference returns (O−E)/√(E+ε) for the given lag: large
// positive entries mark transitions that happen more often than an
// unordered sequence would produce.
func (c *Chain) NormalizedDifference(lag int) ([][]float64, error) {
	obs, err := c.Counts(lag)
	if err != nil {
		return nil, err
	}
	exp, err := c.ExpectedCounts(lag)
	if err != nil {
		return nil, err
	}

	const epsilon = 1e-12
	out := newMatrix(len(obs), len(obs))
	for i := range obs {
		for j := range obs[i] {
			out[i][j] = (obs[i][j] - exp[i][j]) / math.Sqrt(exp[i][j]+epsilon)
		}
	}

	return out, nil
}

// String summarizes the chain.
func (c *Chain) String() string {
	total, _ := c.TotalObserved(1)

	return fmt.Sprintf("Chain(%d states, %.0f transitions, maxLag=%d, includeSelf=%t)",
		len(c.states), total, c.maxLag, c.includeSelf)
}

func uniqueSorted(seq []string) []string {
	set := make(map[string]struct{}, len(seq))
	for _, s := range seq {
		set[s] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

func newMatrix(rows, cols int) [][]float64 {
	m := make([][]float64, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}

	return m
}

func copyMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = make([]float64, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

func matrixSum(m [][]float64) float64 {
	var sum float64
	for i := range m {
		for _, v := range m[i] {
			sum += v
		}
	}

	return sum
}
