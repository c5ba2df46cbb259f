package evaluate

import (
	"errors"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ErrOneClass is returned when the labels hold only genes or only non-genes.
var ErrOneClass = errors.New("ROC needs both positive and negative labels")

// Curve is a receiver operating characteristic for one discriminant.
// TPR[i] and FPR[i] are the rates when value >= Thresh[i]; thresholds descend.
type Curve struct {
	Name   string
	TPR    []float64
	FPR    []float64
	Thresh []float64
	AUC    float64
	Pos    int
	Neg    int
}

// ROC builds the curve of values as a predictor of labels.
func ROC(name string, values []float64, labels []bool) (Curve, error) {
	c := Curve{Name: name}
	for _, l := range labels {
		if l {
			c.Pos++
		} else {
			c.Neg++
		}
	}
	if c.Pos == 0 || c.Neg == 0 {
		return c, ErrOneClass
	}

	y := append([]float64(nil), values...)
	classes := append([]bool(nil), labels...)
	stat.SortWeightedLabeled(y, classes, nil)

	c.TPR, c.FPR, c.Thresh = stat.ROC(nil, y, classes, nil)
	c.AUC = integrate.Trapezoidal(c.FPR, c.TPR)
	return c, nil
}

// Accuracy is the fraction of points where (value >= Thresh[i]) agrees with the label.
func (c Curve) Accuracy(i int) float64 {
	p, n := float64(c.Pos), float64(c.Neg)
	return (c.TPR[i]*p + (1-c.FPR[i])*n) / (p + n)
}

// NearestAccuracy returns the index of the threshold whose accuracy is closest
// to target. Ties keep the highest threshold.
func (c Curve) NearestAccuracy(target float64) int {
	best, bestDiff := 0, -1.0
	for i := range c.Thresh {
		d := c.Accuracy(i) - target
		if d < 0 {
			d = -d
		}
		if bestDiff < 0 || d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// Accuracy of the predictor value > threshold against labels.
func Accuracy(values []float64, labels []bool, threshold float64) float64 {
	if len(values) == 0 {
		return 0
	}
	hits := 0
	for i, v := range values {
		if (v > threshold) == labels[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(values))
}
