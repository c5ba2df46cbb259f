package kmer_analyzer

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	common "gene_scout_go/utils"
)

// Table maps a fixed-length nucleotide string to its occurrence count.
// Lookups go through Count so that reading an absent key never inserts it.
type Table map[string]int

// Count returns the count of kmer, or zero if it was never observed.
func (t Table) Count(kmer string) int {
	return t[kmer]
}

// Has reports whether kmer was observed at least once.
func (t Table) Has(kmer string) bool {
	_, ok := t[kmer]
	return ok
}

// Distinct is the number of different keys observed (the vocabulary size).
func (t Table) Distinct() int {
	return len(t)
}

// Total is the sum of all counts.
func (t Table) Total() int {
	vals := make([]float64, 0, len(t))
	for _, c := range t {
		vals = append(vals, float64(c))
	}
	return int(floats.Sum(vals))
}

// Merge adds every count of other into t, key by key.
func (t Table) Merge(other Table) {
	for k, c := range other {
		t[k] += c
	}
}

// Entry is one row of a table report.
type Entry struct {
	Kmer   string
	Count  int
	RelPct float64
}

// Entries lists the table sorted by "freq" (descending count) or
// alphabetically for anything else.
func (t Table) Entries(sortBy string) []Entry {
	total := t.Total()
	result := make([]Entry, 0, len(t))
	for kmer, count := range t {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		result = append(result, Entry{kmer, count, pct})
	}
	switch sortBy {
	case "freq":
		sort.Slice(result, func(i, j int) bool {
			if result[i].Count != result[j].Count {
				return result[i].Count > result[j].Count
			}
			return result[i].Kmer < result[j].Kmer
		})
	default: // alpha
		sort.Slice(result, func(i, j int) bool {
			return result[i].Kmer < result[j].Kmer
		})
	}
	return result
}

// DefineMerPairs returns all 4^k nucleotide strings of length k in lexical order.
func DefineMerPairs(k int) []string {
	var kmers []string

	// prefix is the partial k-mer, depth how many bases are still missing
	var build func(prefix string, depth int)
	build = func(prefix string, depth int) {
		if depth == 0 {
			kmers = append(kmers, prefix)
			return
		}
		for i := 0; i < len(common.Alphabet); i++ {
			build(prefix+common.Alphabet[i:i+1], depth-1)
		}
	}
	build("", k)
	return kmers
}

// CountWindows counts every length-k substring of every sequence, sliding by one.
// Sequences shorter than k contribute nothing.
func CountWindows(k int, seqs []string) Table {
	counts := make(Table)
	for _, seq := range seqs {
		for i := 0; i+k <= len(seq); i++ {
			counts[seq[i:i+k]]++
		}
	}
	return counts
}

// CountStarts counts the first k symbols of each sequence, one entry per sequence.
func CountStarts(k int, seqs []string) Table {
	counts := make(Table)
	for _, seq := range seqs {
		end := k
		if end > len(seq) {
			end = len(seq)
		}
		counts[seq[:end]]++
	}
	return counts
}

// Counts holds the three tables a k-th order Markov chain is estimated from.
type Counts struct {
	K         int
	Kmers     Table // length k
	NextKmers Table // length k+1
	Starts    Table // first k symbols of each sequence
}

// New counts a corpus in a single pass.
func New(k int, corpus []string) *Counts {
	return &Counts{
		K:         k,
		Kmers:     CountWindows(k, corpus),
		NextKmers: CountWindows(k+1, corpus),
		Starts:    CountStarts(k, corpus),
	}
}

// Merge folds the tables of other (same k) into c.
func (c *Counts) Merge(other *Counts) {
	c.Kmers.Merge(other.Kmers)
	c.NextKmers.Merge(other.NextKmers)
	c.Starts.Merge(other.Starts)
}

// NewParallel splits the corpus into contiguous partitions, counts each one on
// its own goroutine and merges the partial tables. The result is identical to New.
func NewParallel(k int, corpus []string, workers int) *Counts {
	if workers <= 1 || len(corpus) < 2 {
		return New(k, corpus)
	}
	if workers > len(corpus) {
		workers = len(corpus)
	}

	partials := make([]*Counts, workers)
	chunk := (len(corpus) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(corpus) {
			hi = len(corpus)
		}
		if lo >= hi {
			partials[w] = New(k, nil)
			continue
		}
		wg.Add(1)
		go func(w int, part []string) {
			defer wg.Done()
			partials[w] = New(k, part)
		}(w, corpus[lo:hi])
	}
	wg.Wait()

	total := partials[0]
	for _, p := range partials[1:] {
		total.Merge(p)
	}
	return total
}
