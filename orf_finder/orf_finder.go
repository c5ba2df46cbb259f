package orf_finder

import (
	"fmt"
	"strings"

	common "gene_scout_go/utils"
)

// ORF is a stop-codon delimited candidate in one forward reading frame.
// Start and End are half-open offsets into the original sequence; the
// terminating stop codon, when there is one, begins at End.
type ORF struct {
	Start    int
	End      int
	Frame    int
	Sequence string
}

// Len is the number of nucleotides in the candidate.
func (o ORF) Len() int { return o.End - o.Start }

// Class buckets a candidate by length.
type Class int

const (
	Neither Class = iota
	Long
	Short
)

func (c Class) String() string {
	switch c {
	case Long:
		return "long"
	case Short:
		return "short"
	default:
		return "neither"
	}
}

func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	switch string(text) {
	case "long":
		*c = Long
	case "short":
		*c = Short
	case "neither":
		*c = Neither
	default:
		return fmt.Errorf("unknown ORF class %q", text)
	}
	return nil
}

// Extract scans seq in the reading frame starting at offset (0, 1 or 2) and
// returns the candidates lying between consecutive in-frame stop codons.
//
// Every stop codon found at offset+3n closes the running candidate at offset+3n
// and opens the next one at offset+3n+3. The sequence end closes the last
// candidate without a stop codon, so a trailing partial codon is kept.
// Empty candidates (adjacent stops, or a sequence ending on a stop) are dropped.
func Extract(seq string, offset int) ([]ORF, error) {
	if offset < 0 || offset > 2 {
		return nil, fmt.Errorf("frame offset must be 0, 1 or 2, got %d", offset)
	}

	bounds := []int{offset}
	for i := offset; i+3 <= len(seq); i += 3 {
		if common.IsStopCodon(seq[i : i+3]) {
			bounds = append(bounds, i+3)
		}
	}

	var orfs []ORF
	for j, start := range bounds {
		end := len(seq)
		if j+1 < len(bounds) {
			end = bounds[j+1] - 3
		}
		if end <= start {
			continue
		}
		orfs = append(orfs, ORF{Start: start, End: end, Frame: offset, Sequence: seq[start:end]})
	}
	return orfs, nil
}

// Set is the candidate pool of all three forward frames of one sequence.
type Set struct {
	Frames   [3][]ORF
	Total    []ORF // frame 0, then 1, then 2
	Long     []ORF
	Short    []ORF
	LongLen  int
	ShortLen int
}

// Find extracts every frame of seq and partitions the pool by length:
// longer than longLen is long, shorter than shortLen is short.
func Find(seq string, longLen, shortLen int) *Set {
	s := &Set{LongLen: longLen, ShortLen: shortLen}
	for frame := 0; frame < 3; frame++ {
		orfs, _ := Extract(seq, frame) // frame is always in range
		s.Frames[frame] = orfs
		s.Total = append(s.Total, orfs...)
	}
	for _, o := range s.Total {
		switch s.Classify(o) {
		case Long:
			s.Long = append(s.Long, o)
		case Short:
			s.Short = append(s.Short, o)
		}
	}
	return s
}

// Classify returns the length class of o under the set's thresholds.
func (s *Set) Classify(o ORF) Class {
	switch {
	case o.Len() > s.LongLen:
		return Long
	case o.Len() < s.ShortLen:
		return Short
	default:
		return Neither
	}
}

// Sequences returns the raw substrings of orfs, in order.
func Sequences(orfs []ORF) []string {
	seqs := make([]string, len(orfs))
	for i, o := range orfs {
		seqs[i] = o.Sequence
	}
	return seqs
}

// Background returns the reverse complement of every long candidate.
func (s *Set) Background() ([]string, error) {
	bg := make([]string, len(s.Long))
	for i, o := range s.Long {
		rc, err := common.ReverseComplement(o.Sequence)
		if err != nil {
			return nil, fmt.Errorf("background for ORF %d-%d: %w", o.Start, o.End, err)
		}
		bg[i] = rc
	}
	return bg, nil
}

// SummaryStats mirrors what the report prints per frame.
type SummaryStats struct {
	Total         int
	Long          int
	Short         int
	LongestLength int
	LongestStart  int
	LongestEnd    int
	TotalLength   int
}

// Summary aggregates the pool.
func (s *Set) Summary() SummaryStats {
	st := SummaryStats{Total: len(s.Total), Long: len(s.Long), Short: len(s.Short)}
	for _, o := range s.Total {
		st.TotalLength += o.Len()
		if o.Len() > st.LongestLength {
			st.LongestLength = o.Len()
			st.LongestStart = o.Start
			st.LongestEnd = o.End
		}
	}
	return st
}

func (s *Set) String() string {
	st := s.Summary()
	var b strings.Builder
	fmt.Fprintf(&b, "total: %d, long (> %d bp): %d, short (< %d bp): %d\n",
		st.Total, s.LongLen, st.Long, s.ShortLen, st.Short)
	if st.Total > 0 {
		fmt.Fprintf(&b, "longest: %d bp (%d-%d), average: %.1f bp\n",
			st.LongestLength, st.LongestStart, st.LongestEnd, float64(st.TotalLength)/float64(st.Total))
	}
	for frame, orfs := range s.Frames {
		fmt.Fprintf(&b, "reading frame %d\n  total number: %d\n", frame, len(orfs))
		if len(orfs) == 0 {
			continue
		}
		first, last := orfs[0], orfs[len(orfs)-1]
		fmt.Fprintf(&b, "  first: (%d, %d) (length of %d)\n", first.Start, first.End, first.Len())
		fmt.Fprintf(&b, "  last: (%d, %d) (length of %d)\n", last.Start, last.End, last.Len())
	}
	return b.String()
}
