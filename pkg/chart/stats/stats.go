// Package stats holds the summary statistics behind histogram and box charts.
package stats

import (
	"math"
	"slices"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"

	"github.com/matzehuels/plotsvg/pkg/errors"
)

// DefaultBins is the histogram bin count used when none is configured.
const DefaultBins = 10

// WhiskerFactor scales the IQR to find the whisker reach.
const WhiskerFactor = 1.5

// CheckFinite fails with INVALID_DATA if any value is NaN or infinite.
// what names the sequence in the error message.
func CheckFinite(what string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidData, "%s[%d] is not a finite number", what, i)
		}
	}
	return nil
}

// Bounds returns the minimum and maximum of a non-empty slice.
func Bounds(values []float64) (lo, hi float64) {
	return mstats.Bounds(values)
}

// Quantile returns the p-quantile of sorted using linear interpolation
// between closest ranks (h = (n-1)p).
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Summary is the five-number summary of one box-plot group plus the
// whisker ends and outliers.
type Summary struct {
	Min, Q1, Median, Q3, Max float64
	IQR                      float64
	WhiskerLow, WhiskerHigh  float64
	Outliers                 []float64 // ascending
}

// Box computes a Summary. Whiskers end at the most extreme data point
// within WhiskerFactor×IQR of the nearer quartile.
func Box(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, errors.New(errors.ErrCodeEmptyDataset, "box group has no values")
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
	}
	s.IQR = s.Q3 - s.Q1
	lowFence := s.Q1 - WhiskerFactor*s.IQR
	highFence := s.Q3 + WhiskerFactor*s.IQR

	s.WhiskerLow, s.WhiskerHigh = s.Q1, s.Q3
	for _, v := range sorted {
		if v >= lowFence {
			s.WhiskerLow = math.Min(v, s.Q1)
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= highFence {
			s.WhiskerHigh = math.Max(sorted[i], s.Q3)
			break
		}
	}
	for _, v := range sorted {
		if v < lowFence || v > highFence {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s, nil
}

// Bins is a uniform-width histogram.
type Bins struct {
	Edges  []float64 // len(Counts)+1 ascending edges
	Counts []int
	Total  int
}

// Width returns the common bin width.
func (b Bins) Width() float64 {
	return (b.Edges[len(b.Edges)-1] - b.Edges[0]) / float64(len(b.Counts))
}

// Density returns counts normalized so that the histogram integrates to 1.
func (b Bins) Density() []float64 {
	out := make([]float64, len(b.Counts))
	if b.Total == 0 {
		return out
	}
	norm := float64(b.Total) * b.Width()
	for i, c := range b.Counts {
		out[i] = float64(c) / norm
	}
	return out
}

// Histogram sorts values into n uniform bins spanning their range. Every
// bin is half-open [e_i, e_i+1) except the last, which also holds its
// upper edge. A zero-width range is widened to [v-0.5, v+0.5].
func Histogram(values []float64, n int) (Bins, error) {
	if n <= 0 {
		return Bins{}, errors.New(errors.ErrCodeInvalidData, "histogram bin count must be positive, got %d", n)
	}
	if len(values) == 0 {
		return Bins{}, errors.New(errors.ErrCodeEmptyDataset, "histogram has no values")
	}
	if err := CheckFinite("values", values); err != nil {
		return Bins{}, err
	}

	lo, hi := mstats.Bounds(values)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	b := Bins{
		Edges:  vec.Linspace(lo, hi, n+1),
		Counts: make([]int, n),
		Total:  len(values),
	}
	width := (hi - lo) / float64(n)
	for _, v := range values {
		i := int((v - lo) / width)
		i = min(max(i, 0), n-1)
		// Float division can land one bin off near an edge; the edge
		// slice is authoritative.
		if i < n-1 && v >= b.Edges[i+1] {
			i++
		} else if i > 0 && v < b.Edges[i] {
			i--
		}
		b.Counts[i]++
	}
	return b, nil
}
