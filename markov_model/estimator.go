package markov_model

import (
	"math"

	"gene_scout_go/kmer_analyzer"
)

// Estimator turns one side's count tables into additive-smoothed log-probabilities.
// The foreground and the background are two instances of this same type.
type Estimator struct {
	counts     *kmer_analyzer.Counts
	alpha      float64
	vocab      int     // distinct k-mers observed
	startTotal int     // sum over all start tokens
	uniform    float64 // log(α / (α·V)), the fully unseen fallback
}

// NewEstimator wraps counts with pseudocount alpha. alpha must be positive.
func NewEstimator(counts *kmer_analyzer.Counts, alpha float64) *Estimator {
	v := counts.Kmers.Distinct()
	return &Estimator{
		counts:     counts,
		alpha:      alpha,
		vocab:      v,
		startTotal: counts.Starts.Total(),
		// an empty vocabulary would make this log(+Inf); treat it as a single symbol
		uniform: math.Log(alpha / (alpha * float64(max(v, 1)))),
	}
}

// K is the Markov order.
func (e *Estimator) K() int { return e.counts.K }

// Vocab is V, the number of distinct k-mers in the training corpus.
func (e *Estimator) Vocab() int { return e.vocab }

// Counts exposes the underlying tables. Callers must not modify them.
func (e *Estimator) Counts() *kmer_analyzer.Counts { return e.counts }

// StartLogProb is the log-probability of a sequence beginning with token.
//
//	unseen start: log(α / (α·V))
//	seen start:   log((count(t) + α) / (Σ starts + α·V))
func (e *Estimator) StartLogProb(token string) float64 {
	if !e.counts.Starts.Has(token) {
		return e.uniform
	}
	num := float64(e.counts.Starts.Count(token)) + e.alpha
	den := float64(e.startTotal) + e.alpha*float64(e.vocab)
	return math.Log(num / den)
}

// ConditionalLogProb is the log-probability of the last symbol of a (k+1)-length
// token given its k-length prefix.
//
//	unseen prefix, unseen token: log(α / (α·V))
//	seen prefix, unseen token:   log(α / (count(p) + α·V))
//	otherwise:                   log((count(t) + α) / (count(p) + α·V))
//
// The first two branches are not the third formula evaluated with count(t) = 0.
func (e *Estimator) ConditionalLogProb(token string) float64 {
	prefix := token[:len(token)-1]
	seenPrefix := e.counts.Kmers.Has(prefix)
	seenToken := e.counts.NextKmers.Has(token)

	switch {
	case !seenPrefix && !seenToken:
		return e.uniform
	case !seenToken:
		return math.Log(e.alpha / (float64(e.counts.Kmers.Count(prefix)) + e.alpha*float64(e.vocab)))
	}
	num := float64(e.counts.NextKmers.Count(token)) + e.alpha
	den := float64(e.counts.Kmers.Count(prefix)) + e.alpha*float64(e.vocab)
	return math.Log(num / den)
}

// SequenceLogProb is the chain-rule log-probability of seq: the start
// log-probability of its first k symbols, plus the conditional log-probability
// of every (k+1)-window seq[i-k-1:i] for i = k+2 … len(seq).
func (e *Estimator) SequenceLogProb(seq string) float64 {
	k := e.counts.K
	logprob := e.StartLogProb(seq[:min(k, len(seq))])
	for i := k + 2; i <= len(seq); i++ {
		logprob += e.ConditionalLogProb(seq[i-k-1 : i])
	}
	return logprob
}
