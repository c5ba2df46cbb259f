package evaluate

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"gene_scout_go/markov_model"
	"gene_scout_go/orf_finder"
)

// Boundary is the flashbulb decision rule in the (length, score) plane.
//
// The medians of the short band S and the long band L span a line
// y = M·x + B. The boundary is the perpendicular to that line crossing it at
// fraction R of the way from S to L: y = -x/M + C.
type Boundary struct {
	ShortMedian [2]float64 // (length, score)
	LongMedian  [2]float64
	R           float64
	M           float64
	B           float64
	C           float64
}

func median(x []float64) float64 {
	s := append([]float64(nil), x...)
	sort.Float64s(s)
	return stat.Quantile(0.5, stat.Empirical, s, nil)
}

// Flashbulb fits the boundary from the long and short candidates of results.
func Flashbulb(results []markov_model.Result, r float64) (Boundary, error) {
	var sl, ss, ll, ls []float64
	for _, res := range results {
		switch res.Class {
		case orf_finder.Short:
			sl = append(sl, float64(res.Length))
			ss = append(ss, res.Score)
		case orf_finder.Long:
			ll = append(ll, float64(res.Length))
			ls = append(ls, res.Score)
		}
	}
	if len(sl) == 0 || len(ll) == 0 {
		return Boundary{}, errors.New("flashbulb needs both long and short candidates")
	}

	b := Boundary{
		ShortMedian: [2]float64{median(sl), median(ss)},
		LongMedian:  [2]float64{median(ll), median(ls)},
		R:           r,
	}
	sx, sy := b.ShortMedian[0], b.ShortMedian[1]
	lx, ly := b.LongMedian[0], b.LongMedian[1]
	if lx == sx || ly == sy {
		return Boundary{}, fmt.Errorf("degenerate medians: short (%v, %v), long (%v, %v)", sx, sy, lx, ly)
	}

	b.M = (ly - sy) / (lx - sx)
	b.B = ly - b.M*lx

	xcross := sx + r*(lx-sx)
	ycross := b.M*xcross + b.B
	b.C = ycross + xcross/b.M
	return b, nil
}

// Line is the median-to-median line at x.
func (b Boundary) Line(x float64) float64 { return b.M*x + b.B }

// Perpendicular is the decision boundary at x.
func (b Boundary) Perpendicular(x float64) float64 { return -x/b.M + b.C }

// Combine is the signed distance, along the score axis, of a candidate above the boundary.
func (b Boundary) Combine(length int, score float64) float64 {
	return score - b.Perpendicular(float64(length))
}

// CombineAll applies Combine to every result.
func (b Boundary) CombineAll(results []markov_model.Result) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = b.Combine(r.Length, r.Score)
	}
	return out
}
