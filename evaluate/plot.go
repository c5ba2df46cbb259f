package evaluate

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"gene_scout_go/markov_model"
)

var palette = []color.Color{
	color.RGBA{G: 150, A: 255},
	color.RGBA{R: 200, A: 255},
	color.RGBA{B: 200, A: 255},
	color.RGBA{R: 200, G: 120, A: 255},
}

// Window clips a plot to a sub-range of both axes.
type Window struct {
	XMin, XMax, YMin, YMax float64
}

// ZoomTopLeft is the corner of a ROC plot where good classifiers live.
var ZoomTopLeft = Window{XMin: -0.02, XMax: 0.15, YMin: 0.75, YMax: 1.03}

// ROCPlot draws one line per curve and marks the point at marks[i] on curve i
// (pass nil to skip markers).
func ROCPlot(curves []Curve, marks []int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "ROC curves of Length and Markov Scores"
	p.X.Label.Text = "False Positive Rate"
	p.Y.Label.Text = "True Positive Rate"
	p.Add(plotter.NewGrid())

	for i, c := range curves {
		pts := make(plotter.XYs, len(c.FPR))
		for j := range c.FPR {
			pts[j].X = c.FPR[j]
			pts[j].Y = c.TPR[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = palette[i%len(palette)]
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s, auc = %.4f", c.Name, c.AUC), line)

		if marks == nil || i >= len(marks) {
			continue
		}
		m := marks[i]
		pt, err := plotter.NewScatter(plotter.XYs{{X: c.FPR[m], Y: c.TPR[m]}})
		if err != nil {
			return nil, err
		}
		pt.GlyphStyle.Color = palette[i%len(palette)]
		pt.GlyphStyle.Radius = vg.Points(4)
		pt.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(pt)
		p.Legend.Add(fmt.Sprintf("threshold at %.4g", c.Thresh[m]), pt)
	}
	p.Legend.Top = false
	p.Legend.Left = false
	return p, nil
}

// ScatterPlot draws length against score, blue for annotated genes and red
// otherwise, with the flashbulb line and boundary on top.
func ScatterPlot(results []markov_model.Result, labels []bool, b Boundary) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Length vs Markov scores, blue = gene, red = no gene"
	p.X.Label.Text = "Length"
	p.Y.Label.Text = "Markov Scores"

	var genes, others plotter.XYs
	for i, r := range results {
		pt := plotter.XY{X: float64(r.Length), Y: r.Score}
		if labels[i] {
			genes = append(genes, pt)
		} else {
			others = append(others, pt)
		}
	}
	for _, set := range []struct {
		pts   plotter.XYs
		color color.Color
		name  string
	}{
		{others, color.RGBA{R: 178, G: 34, B: 34, A: 255}, "no gene"},
		{genes, color.RGBA{R: 65, G: 105, B: 225, A: 255}, "gene"},
	} {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Color = set.color
		s.GlyphStyle.Radius = vg.Points(1)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(set.name, s)
	}

	medians, err := plotter.NewScatter(plotter.XYs{
		{X: b.ShortMedian[0], Y: b.ShortMedian[1]},
		{X: b.LongMedian[0], Y: b.LongMedian[1]},
	})
	if err != nil {
		return nil, err
	}
	medians.GlyphStyle.Shape = draw.PyramidGlyph{}
	medians.GlyphStyle.Radius = vg.Points(5)
	p.Add(medians)
	p.Legend.Add("medians", medians)

	line := plotter.NewFunction(b.Line)
	line.Color = color.RGBA{G: 128, A: 255}
	boundary := plotter.NewFunction(b.Perpendicular)
	boundary.Color = color.Black
	boundary.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(line, boundary)
	p.Legend.Add("median line", line)
	p.Legend.Add("decision boundary", boundary)
	return p, nil
}

// Save writes p to path; the format follows the extension (png, svg, pdf).
// A non-nil window clips the axes first.
func Save(p *plot.Plot, path string, w *Window) error {
	if w != nil {
		p.X.Min, p.X.Max = w.XMin, w.XMax
		p.Y.Min, p.Y.Max = w.YMin, w.YMax
	}
	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("saving plot %s: %w", path, err)
	}
	return nil
}
