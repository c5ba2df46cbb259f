package evaluate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gene_scout_go/markov_model"
	"gene_scout_go/orf_finder"
)

// Report is everything the evaluate command prints and plots.
type Report struct {
	Labels   []bool
	Matched  int
	Genes    int
	Score    Curve
	Length   Curve
	Combined Curve
	Boundary Boundary
	// index into each curve of the threshold nearest the target accuracy
	Marks          [3]int
	TargetAccuracy float64
	Summary        []ClassSummary
	Shortest       []markov_model.Result
	Longest        []markov_model.Result
}

// Evaluate labels every result against the annotation and builds the ROC curves
// of the Markov score, the length, and the flashbulb combination of both.
func Evaluate(results []markov_model.Result, a *Annotation, ratio, target float64) (*Report, error) {
	rep := &Report{Labels: make([]bool, len(results)), Genes: a.Genes, TargetAccuracy: target}
	scores := make([]float64, len(results))
	lengths := make([]float64, len(results))
	for i, r := range results {
		rep.Labels[i] = a.Matches(r.End)
		if rep.Labels[i] {
			rep.Matched++
		}
		scores[i] = r.Score
		lengths[i] = float64(r.Length)
	}

	var err error
	if rep.Score, err = ROC("score", scores, rep.Labels); err != nil {
		return nil, fmt.Errorf("score ROC: %w", err)
	}
	if rep.Length, err = ROC("length", lengths, rep.Labels); err != nil {
		return nil, fmt.Errorf("length ROC: %w", err)
	}
	if rep.Boundary, err = Flashbulb(results, ratio); err != nil {
		return nil, err
	}
	if rep.Combined, err = ROC("combined/flashbulb", rep.Boundary.CombineAll(results), rep.Labels); err != nil {
		return nil, fmt.Errorf("combined ROC: %w", err)
	}

	for i, c := range rep.Curves() {
		rep.Marks[i] = c.NearestAccuracy(target)
	}
	rep.Summary = Summarize(results)
	rep.Shortest = FirstByStart(results, orf_finder.Short, 5)
	rep.Longest = FirstByStart(results, orf_finder.Long, 5)
	return rep, nil
}

// Curves returns score, length and combined, in that order.
func (r *Report) Curves() []Curve {
	return []Curve{r.Score, r.Length, r.Combined}
}

func writeRows(w io.Writer, rows []markov_model.Result) {
	fmt.Fprintln(w, "start\tend\tlength\tscore")
	for _, r := range rows {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.4f\n", r.Start, r.End, r.Length, r.Score)
	}
}

// Write prints the report as plain text.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "total number of annotated genes: %d\n", r.Genes)
	fmt.Fprintf(w, "candidates matching an annotated stop: %d of %d\n\n", r.Matched, len(r.Labels))

	fmt.Fprintln(w, "class\tcount\tmean score\tstd dev")
	for _, s := range r.Summary {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\n", s.Class, s.Count, s.Mean, s.StdDev)
	}

	fmt.Fprintln(w, "\nshortest orfs:")
	writeRows(w, r.Shortest)
	fmt.Fprintln(w, "longest orfs:")
	writeRows(w, r.Longest)

	b := r.Boundary
	fmt.Fprintf(w, "\nflashbulb: short median (%.1f, %.4f), long median (%.1f, %.4f), r = %.2f\n",
		b.ShortMedian[0], b.ShortMedian[1], b.LongMedian[0], b.LongMedian[1], b.R)
	fmt.Fprintf(w, "  median line: y = %.6f x + %.4f\n  boundary:    y = %.6f x + %.4f\n\n", b.M, b.B, -1/b.M, b.C)

	fmt.Fprintf(w, "curve\tauc\tthreshold (accuracy ~ %.2f)\taccuracy\n", r.TargetAccuracy)
	for i, c := range r.Curves() {
		m := r.Marks[i]
		fmt.Fprintf(w, "%s\t%.4f\t%.4g\t%.4f\n", c.Name, c.AUC, c.Thresh[m], c.Accuracy(m))
	}
}

// Plot saves the ROC curves (full and zoomed) and the decision boundary scatter into dir.
func (r *Report) Plot(dir string, results []markov_model.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating plot dir: %w", err)
	}
	var written []string

	for _, view := range []struct {
		name string
		win  *Window
	}{
		{"roc_curve.png", nil},
		{"roc_curve_zoomed.png", &ZoomTopLeft},
	} {
		p, err := ROCPlot(r.Curves(), r.Marks[:])
		if err != nil {
			return written, err
		}
		path := filepath.Join(dir, view.name)
		if err := Save(p, path, view.win); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	p, err := ScatterPlot(results, r.Labels, r.Boundary)
	if err != nil {
		return written, err
	}
	path := filepath.Join(dir, "decision_bdy.png")
	if err := Save(p, path, nil); err != nil {
		return written, err
	}
	return append(written, path), nil
}
