// Package markov_model scores candidate ORFs with a k-th order Markov chain
// trained on long ORFs, against a background chain trained on their reverse
// complements. A positive score favours the candidate being coding.
package markov_model

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"sync"

	"gene_scout_go/kmer_analyzer"
	"gene_scout_go/orf_finder"
)

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("invalid model parameters")

// Params are the model settings. They are copied into the model and never shared.
type Params struct {
	K           int
	Pseudocount float64
	LongLen     int
	ShortLen    int
	Workers     int // <= 0 uses every CPU
}

// DefaultParams returns k=5, α=1, long > 1400, short < 50, single worker.
func DefaultParams() Params {
	return Params{K: 5, Pseudocount: 1, LongLen: 1400, ShortLen: 50, Workers: 1}
}

func (p Params) Validate() error {
	switch {
	case p.K < 1:
		return fmt.Errorf("%w: k must be positive, got %d", ErrInvalidParams, p.K)
	case !(p.Pseudocount > 0):
		return fmt.Errorf("%w: pseudocount must be positive, got %v", ErrInvalidParams, p.Pseudocount)
	case p.LongLen < 1:
		return fmt.Errorf("%w: long length must be positive, got %d", ErrInvalidParams, p.LongLen)
	case p.ShortLen < 1:
		return fmt.Errorf("%w: short length must be positive, got %d", ErrInvalidParams, p.ShortLen)
	}
	return nil
}

func (p Params) workers() int {
	if p.Workers <= 0 {
		return runtime.NumCPU()
	}
	return p.Workers
}

// Model is built once per sequence and read-only afterwards, so it can be
// shared between scoring goroutines.
type Model struct {
	params     Params
	orfs       *orf_finder.Set
	Foreground *Estimator
	Background *Estimator
}

// New extracts the ORFs of seq and trains both sides on its long candidates.
func New(seq string, p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return Train(orf_finder.Find(seq, p.LongLen, p.ShortLen), p)
}

// Train builds the model from an already extracted candidate pool.
func Train(orfs *orf_finder.Set, p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	background, err := orfs.Background()
	if err != nil {
		return nil, err
	}
	if len(orfs.Long) == 0 {
		log.Printf("[markov_model] warning: no long ORFs (> %d bp) found; all scores are uninformative", p.LongLen)
	}

	w := p.workers()
	fg := kmer_analyzer.NewParallel(p.K, orf_finder.Sequences(orfs.Long), w)
	bg := kmer_analyzer.NewParallel(p.K, background, w)

	return &Model{
		params:     p,
		orfs:       orfs,
		Foreground: NewEstimator(fg, p.Pseudocount),
		Background: NewEstimator(bg, p.Pseudocount),
	}, nil
}

// Params returns a copy of the settings the model was trained with.
func (m *Model) Params() Params { return m.params }

// ORFs is the candidate pool the model was trained on.
func (m *Model) ORFs() *orf_finder.Set { return m.orfs }

// Degenerate reports whether the training corpus was empty.
func (m *Model) Degenerate() bool { return len(m.orfs.Long) == 0 }

// Score is log P(seq | foreground) - log P(seq | background).
func (m *Model) Score(seq string) float64 {
	return m.Foreground.SequenceLogProb(seq) - m.Background.SequenceLogProb(seq)
}

// Result is the externally visible record of one scored candidate.
type Result struct {
	Start  int              `json:"start"`
	End    int              `json:"end"`
	Length int              `json:"length"`
	Score  float64          `json:"score"`
	Frame  int              `json:"frame"`
	Class  orf_finder.Class `json:"class"`
}

// Results scores every candidate of the pool, long or short, in pool order.
// Candidates are fanned out to the configured number of workers; each result
// slot is written by exactly one goroutine.
func (m *Model) Results() []Result {
	total := m.orfs.Total
	results := make([]Result, len(total))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i, n := 0, min(m.params.workers(), max(len(total), 1)); i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				o := total[j]
				results[j] = Result{
					Start:  o.Start,
					End:    o.End,
					Length: o.Len(),
					Score:  m.Score(o.Sequence),
					Frame:  o.Frame,
					Class:  m.orfs.Classify(o),
				}
			}
		}()
	}
	for j := range total {
		jobs <- j
	}
	close(jobs)
	wg.Wait()
	return results
}

// countGrid lays out the counts of AAGxyT with x down the rows and y across.
func countGrid(tab kmer_analyzer.Table) string {
	var b strings.Builder
	b.WriteString("     A     C     G     T\n")
	for _, x := range "ACGT" {
		fmt.Fprintf(&b, "%c", x)
		for _, y := range "ACGT" {
			fmt.Fprintf(&b, " %5d", tab.Count("AAG"+string(x)+string(y)+"T"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func topKmers(tab kmer_analyzer.Table, n int) string {
	var b strings.Builder
	entries := tab.Entries("freq")
	for i := 0; i < n && i < len(entries); i++ {
		fmt.Fprintf(&b, "%s\t%d\n", entries[i].Kmer, entries[i].Count)
	}
	return b.String()
}

// String reports the candidate pool and a sanity view of both (k+1)-mer tables:
// the AAGxyT grid when k is 5, the most frequent (k+1)-mers otherwise.
func (m *Model) String() string {
	var b strings.Builder
	b.WriteString("ORFs Found: ")
	b.WriteString(m.orfs.String())
	fmt.Fprintf(&b, "\nk = %d, pseudocount = %g, V(P) = %d, V(Q) = %d\n\n",
		m.params.K, m.params.Pseudocount, m.Foreground.Vocab(), m.Background.Vocab())

	fg, bg := m.Foreground.Counts().NextKmers, m.Background.Counts().NextKmers
	if m.params.K == 5 {
		b.WriteString("P count(AAGxyT):\n")
		b.WriteString(countGrid(fg))
		b.WriteString("\nQ count(AAGxyT):\n")
		b.WriteString(countGrid(bg))
		return b.String()
	}
	fmt.Fprintf(&b, "P top %d-mers:\n", m.params.K+1)
	b.WriteString(topKmers(fg, 5))
	fmt.Fprintf(&b, "\nQ top %d-mers:\n", m.params.K+1)
	b.WriteString(topKmers(bg, 5))
	return b.String()
}
