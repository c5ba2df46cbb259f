package evaluate

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"gene_scout_go/markov_model"
	"gene_scout_go/orf_finder"
)

// ClassSummary describes the scores of one length class.
type ClassSummary struct {
	Class  orf_finder.Class
	Count  int
	Mean   float64
	StdDev float64
}

// Summarize groups scores by length class.
func Summarize(results []markov_model.Result) []ClassSummary {
	byClass := map[orf_finder.Class][]float64{}
	for _, r := range results {
		byClass[r.Class] = append(byClass[r.Class], r.Score)
	}
	var out []ClassSummary
	for _, c := range []orf_finder.Class{orf_finder.Long, orf_finder.Neither, orf_finder.Short} {
		scores := byClass[c]
		s := ClassSummary{Class: c, Count: len(scores)}
		if len(scores) > 1 {
			s.Mean, s.StdDev = stat.MeanStdDev(scores, nil)
		} else if len(scores) == 1 {
			s.Mean = scores[0]
		}
		out = append(out, s)
	}
	return out
}

// FirstByStart returns up to n results of class c, ordered by start coordinate.
func FirstByStart(results []markov_model.Result, c orf_finder.Class, n int) []markov_model.Result {
	var picked []markov_model.Result
	for _, r := range results {
		if r.Class == c {
			picked = append(picked, r)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].Start < picked[j].Start })
	if len(picked) > n {
		picked = picked[:n]
	}
	return picked
}
