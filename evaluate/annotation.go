// Package evaluate compares scored candidates with a reference annotation:
// ROC curves, accuracy around a target, the flashbulb length/score
// combination and the plots that go with them.
package evaluate

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Annotation is the set of annotated gene ends (GFF column 5, 1-based inclusive).
type Annotation struct {
	Ends  map[int]bool
	Genes int
}

// ReadAnnotation parses tab separated GFF lines; comments and blank lines are skipped.
func ReadAnnotation(r io.Reader) (*Annotation, error) {
	a := &Annotation{Ends: make(map[int]bool)}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < 5 {
			return nil, fmt.Errorf("line %d: expected at least 5 tab separated fields, got %d", line, len(fields))
		}
		end, err := strconv.Atoi(strings.TrimSpace(fields[4]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad end coordinate: %w", line, err)
		}
		a.Ends[end] = true
		a.Genes++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return a, nil
}

// LoadAnnotation reads a GFF file from disk.
func LoadAnnotation(path string) (*Annotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation: %w", err)
	}
	defer f.Close()
	return ReadAnnotation(f)
}

// Matches reports whether a candidate ending (half-open) at end is an annotated
// gene: its stop codon occupies end..end+3, so the 1-based inclusive gene end is end+3.
func (a *Annotation) Matches(end int) bool {
	return a.Ends[end+3]
}
