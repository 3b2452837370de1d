// Package markov builds empirical state-transition models from ordered
// sequences of interval classifications.
//
// 🚀 What is a Markov chain (here)?
//
//	A transition-count and transition-probability model over the
//	depth-ordered sequence of a striplog's primary components:
//	  • per-lag counts: how often state i is followed by state j,
//	    one step later (lag 1) or several steps later (lag 2..MaxLag)
//	  • row-stochastic probabilities: each row sums to 1, or stays
//	    all-zero for states with no observed outgoing transition
//	  • expected counts under an independent-trials model, and the
//	    normalized difference (O−E)/√E used to flag ordered patterns
//	  • random-walk generation of future states
//
// ⚙️ Self-transitions:
//
//	A state immediately following itself (A, A) is a genuine observation
//	and is counted per occurrence at every lag, gated only by the
//	IncludeSelf option. The default is IncludeSelf = true; setting it to
//	false zeroes the diagonal of every lag matrix (hollow-matrix
//	behavior). The policy is uniform across lags; earlier treatments
//	that silently dropped self-transitions at multi-step lags are
//	rejected.
//
// States are plain strings; use Component.Key() from package core to
// derive a canonical state identity for each interval, or feed any
// tokenized sequence directly:
//
//	chain, err := markov.FromSequence([]string{"sst", "mud", "mud", "sst"})
//	probs, err := chain.Probabilities(1)
//
// A Chain is a derived report object: it is built once from a sequence
// and never mutated.
package markov
