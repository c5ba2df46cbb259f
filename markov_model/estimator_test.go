package markov_model

import (
	"math"
	"testing"

	"gene_scout_go/kmer_analyzer"
)

const eps = 1e-12

func handCounts() *kmer_analyzer.Counts {
	return &kmer_analyzer.Counts{
		K:         2,
		Kmers:     kmer_analyzer.Table{"AC": 3, "CG": 1},
		NextKmers: kmer_analyzer.Table{"ACG": 2},
		Starts:    kmer_analyzer.Table{"AC": 2},
	}
}

func TestEstimator_StartLogProb(t *testing.T) {
	e := NewEstimator(handCounts(), 1)
	tests := []struct {
		name  string
		token string
		want  float64
	}{
		{"seen start", "AC", math.Log(3.0 / 4.0)},
		{"unseen start", "GG", math.Log(1.0 / 2.0)},
		{"short token", "A", math.Log(1.0 / 2.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.StartLogProb(tt.token); math.Abs(got-tt.want) > eps {
				t.Errorf("StartLogProb(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestEstimator_ConditionalLogProb(t *testing.T) {
	e := NewEstimator(handCounts(), 1)
	tests := []struct {
		name  string
		token string
		want  float64
	}{
		{"seen transition", "ACG", math.Log(3.0 / 5.0)},
		{"known context, unseen continuation", "ACT", math.Log(1.0 / 5.0)},
		{"unseen context", "TTT", math.Log(1.0 / 2.0)},
		{"unseen context, other prefix", "GTA", math.Log(1.0 / 2.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.ConditionalLogProb(tt.token); math.Abs(got-tt.want) > eps {
				t.Errorf("ConditionalLogProb(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestEstimator_pseudocount(t *testing.T) {
	e := NewEstimator(handCounts(), 0.5)
	// (2 + 0.5) / (3 + 0.5*2)
	if got, want := e.ConditionalLogProb("ACG"), math.Log(2.5/4.0); math.Abs(got-want) > eps {
		t.Errorf("ConditionalLogProb = %v, want %v", got, want)
	}
	// 0.5 / (3 + 0.5*2)
	if got, want := e.ConditionalLogProb("ACA"), math.Log(0.5/4.0); math.Abs(got-want) > eps {
		t.Errorf("ConditionalLogProb = %v, want %v", got, want)
	}
}

// heavier smoothing pulls an observed transition toward the uniform 1/V
func TestEstimator_flattensWithAlpha(t *testing.T) {
	prev := math.Inf(1)
	for _, alpha := range []float64{0.01, 0.1, 1, 10, 100, 1e6} {
		got := NewEstimator(handCounts(), alpha).ConditionalLogProb("ACG")
		if got >= prev {
			t.Errorf("alpha=%v: %v did not decrease from %v", alpha, got, prev)
		}
		prev = got
	}
	if math.Abs(prev-math.Log(0.5)) > 1e-5 {
		t.Errorf("limit = %v, want log(1/V) = %v", prev, math.Log(0.5))
	}
}

func TestEstimator_SequenceLogProb(t *testing.T) {
	e := NewEstimator(handCounts(), 1)
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		// start AC, then window CGT: known context CG, unseen continuation
		{"prefix plus one window", "ACGT", math.Log(3.0/4.0) + math.Log(1.0/3.0)},
		{"exactly k+1", "ACG", math.Log(3.0 / 4.0)},
		{"shorter than k", "A", math.Log(1.0 / 2.0)},
		{"empty", "", math.Log(1.0 / 2.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.SequenceLogProb(tt.seq); math.Abs(got-tt.want) > eps {
				t.Errorf("SequenceLogProb(%q) = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestEstimator_emptyVocabulary(t *testing.T) {
	e := NewEstimator(kmer_analyzer.New(3, nil), 1)
	if e.Vocab() != 0 {
		t.Fatalf("Vocab() = %d", e.Vocab())
	}
	for _, seq := range []string{"", "ACGTACGT", "TTTTTTTTTTTT"} {
		if got := e.SequenceLogProb(seq); got != 0 {
			t.Errorf("SequenceLogProb(%q) = %v, want 0", seq, got)
		}
	}
}
