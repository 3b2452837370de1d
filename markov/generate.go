package markov

import (
	"fmt"
	"math/rand"
)

const panicNilRNG = "markov: Generate: rng must be non-nil"

// Generate produces a random walk of up to n future states, starting
// from the given state (or, when start is "", from a state drawn by
// occurrence proportion). The RNG is injected so callers control
// determinism; passing nil panics (programmer error). The walk ends
// early if it reaches a state with no observed outgoing transition at
// lag 1; ZeroOutgoing enumerates those states in advance.
func (c *Chain) Generate(n int, start string, rng *rand.Rand) ([]string, error) {
	if rng == nil {
		panic(panicNilRNG)
	}
	probs, err := c.Probabilities(1)
	if err != nil {
		return nil, err
	}

	current := start
	if current == "" {
		current = c.states[drawProportional(c.occurrences, rng)]
	} else if _, ok := c.index[current]; !ok {
		return nil, fmt.Errorf("%q: %w", current, ErrUnknownState)
	}

	out := make([]string, 0, n)
	for len(out) < n {
		row := probs[c.index[current]]
		var sum float64
		for _, p := range row {
			sum += p
		}
		if sum == 0 {
			break // dead end: no observed outgoing transition
		}
		current = c.states[drawProportional(row, rng)]
		out = append(out, current)
	}

	return out, nil
}

// drawProportional draws an index with probability proportional to the
// weights. The weights must not all be zero.
func drawProportional(weights []float64, rng *rand.Rand) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}

	return len(weights) - 1 // float round-off lands on the last state
}
