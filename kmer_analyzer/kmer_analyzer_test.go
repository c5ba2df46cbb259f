package kmer_analyzer

import (
	"reflect"
	"testing"
)

func TestNew_singleSequence(t *testing.T) {
	c := New(3, []string{"ACGTACGTAA"})

	if got := c.Kmers.Total(); got != 8 {
		t.Errorf("k-mer total = %d, want 8", got)
	}
	if got := c.NextKmers.Total(); got != 7 {
		t.Errorf("(k+1)-mer total = %d, want 7", got)
	}
	// ACG CGT GTA TAC ACG CGT GTA TAA
	if got := c.Kmers.Distinct(); got != 5 {
		t.Errorf("vocabulary = %d, want 5", got)
	}
	if got := c.Kmers.Count("ACG"); got != 2 {
		t.Errorf("Count(ACG) = %d, want 2", got)
	}
	if !reflect.DeepEqual(c.Starts, Table{"ACG": 1}) {
		t.Errorf("Starts = %v", c.Starts)
	}
}

func TestCountWindows(t *testing.T) {
	tests := []struct {
		name string
		k    int
		seqs []string
		want Table
	}{
		{"overlapping", 2, []string{"AAA"}, Table{"AA": 2}},
		{"multiple sequences", 2, []string{"AC", "ACG"}, Table{"AC": 2, "CG": 1}},
		{"shorter than window", 4, []string{"ACG", ""}, Table{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWindows(tt.k, tt.seqs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CountWindows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountStarts(t *testing.T) {
	got := CountStarts(3, []string{"ACGTT", "ACGAA", "GG", "TTTT"})
	want := Table{"ACG": 2, "GG": 1, "TTT": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CountStarts() = %v, want %v", got, want)
	}
}

func TestTable_CountDoesNotInsert(t *testing.T) {
	tab := Table{"AAA": 1}
	if tab.Count("CCC") != 0 || tab.Has("CCC") {
		t.Error("unexpected count for unseen key")
	}
	if tab.Distinct() != 1 {
		t.Errorf("lookup inserted a key: %v", tab)
	}
}

// every (k+1)-mer also contributes its k-length prefix, so the totals obey
// sum(k+1) = sum(k) - number of sequences long enough to hold a k-mer
func TestCounts_identity(t *testing.T) {
	corpus := []string{"ACGTTGCA", "TTTGGGCCCAAA", "AC", "GATTACA"}
	for k := 1; k <= 5; k++ {
		c := New(k, corpus)
		eligible := 0
		for _, s := range corpus {
			if len(s) >= k {
				eligible++
			}
		}
		if c.NextKmers.Total() != c.Kmers.Total()-eligible {
			t.Errorf("k=%d: sum(k+1)=%d sum(k)=%d eligible=%d", k, c.NextKmers.Total(), c.Kmers.Total(), eligible)
		}
		for kp1, n := range c.NextKmers {
			if c.Kmers.Count(kp1[:k]) < n {
				t.Errorf("k=%d: prefix %q counted less than %q", k, kp1[:k], kp1)
			}
		}
	}
}

func TestNewParallel_matchesSequential(t *testing.T) {
	corpus := []string{"ACGTTGCA", "TTTGGGCCCAAA", "AC", "GATTACA", "CCCCGGGG", "ATATATAT", "G"}
	want := New(4, corpus)
	for _, workers := range []int{0, 1, 2, 3, 7, 20} {
		got := NewParallel(4, corpus, workers)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("workers=%d: NewParallel() differs from New()", workers)
		}
	}
}

func TestDefineMerPairs(t *testing.T) {
	got := DefineMerPairs(2)
	if len(got) != 16 {
		t.Fatalf("len = %d, want 16", len(got))
	}
	if got[0] != "AA" || got[1] != "AC" || got[15] != "TT" {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestTable_Entries(t *testing.T) {
	tab := Table{"AC": 1, "GT": 3, "AA": 1}
	byFreq := tab.Entries("freq")
	if byFreq[0].Kmer != "GT" || byFreq[0].RelPct != 60 {
		t.Errorf("freq order = %+v", byFreq)
	}
	alpha := tab.Entries("alpha")
	if alpha[0].Kmer != "AA" || alpha[2].Kmer != "GT" {
		t.Errorf("alpha order = %+v", alpha)
	}
}
