// Package ticks chooses readable tick positions for a scale.
//
// Linear axes use the classic nice-number search over steps of 1, 2 and 5
// times a power of ten. Log axes tick at powers of ten, filling in 2x and
// 5x ticks when the domain spans fewer than three decades. Symlog axes
// combine linear ticks inside the threshold with signed powers of ten
// outside it.
//
// Labels are formatted with a fixed precision derived from the tick step,
// never from the locale.
package ticks

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/plotsvg/pkg/chart/scale"
)

// DefaultTarget is the preferred number of ticks per axis. A plan never
// holds more than DefaultTarget+2 ticks.
const DefaultTarget = 6

// Tick is one labelled position on an axis.
type Tick struct {
	Value float64 // data-space value
	Pos   float64 // pixel coordinate along the axis
	Label string
}

// Plan returns ticks for s ordered by value. target <= 0 selects DefaultTarget.
func Plan(s scale.Scale, target int) []Tick {
	if target <= 0 {
		target = DefaultTarget
	}
	maxTicks := target + 2
	lo, hi := s.Domain()

	if lo == hi {
		return []Tick{{Value: lo, Pos: s.Forward(lo), Label: Format(lo, -1)}}
	}

	var values []float64
	var prec []int
	switch s.Kind() {
	case scale.Log:
		var step float64
		values, step = logValues(lo, hi, maxTicks)
		prec = make([]int, len(values))
		for i, v := range values {
			if step > 0 {
				prec[i] = stepPrecision(step)
			} else {
				prec[i] = magnitudePrecision(v)
			}
		}
	case scale.Symlog:
		thr := scale.DefaultThreshold(lo, hi)
		if th, ok := s.(interface{ Threshold() float64 }); ok && th.Threshold() > 0 {
			thr = th.Threshold()
		}
		values, prec = symlogValues(lo, hi, thr, maxTicks)
	default:
		var step float64
		values, step = linearValues(lo, hi, maxTicks)
		p := stepPrecision(step)
		prec = make([]int, len(values))
		for i := range prec {
			prec[i] = p
		}
	}

	out := make([]Tick, len(values))
	for i, v := range values {
		out[i] = Tick{Value: v, Pos: s.Forward(v), Label: Format(v, prec[i])}
	}
	return out
}

// Categories places one tick at the center of each of len(labels) equal
// slots spanning [start, end]. Tick values are slot indices.
func Categories(labels []string, start, end float64) []Tick {
	n := len(labels)
	if n == 0 {
		return nil
	}
	slot := (end - start) / float64(n)
	out := make([]Tick, n)
	for i, l := range labels {
		out[i] = Tick{Value: float64(i), Pos: start + (float64(i)+0.5)*slot, Label: l}
	}
	return out
}

// LinearStep returns the nice step Plan would use for a linear domain.
func LinearStep(lo, hi float64, maxTicks int) float64 {
	_, step := linearValues(lo, hi, maxTicks)
	return step
}

var niceMultipliers = [...]float64{1, 2, 5}

// linearValues picks the smallest step m*10^e (m in 1,2,5) whose ticks
// inside [lo, hi] number at most maxTicks.
func linearValues(lo, hi float64, maxTicks int) ([]float64, float64) {
	span := hi - lo
	slack := span * 1e-9
	e := math.Floor(math.Log10(span/float64(maxTicks))) - 1
	for ; ; e++ {
		pow := math.Pow(10, e)
		for _, m := range niceMultipliers {
			step := m * pow
			first := math.Ceil((lo - slack) / step)
			last := math.Floor((hi + slack) / step)
			n := int(last-first) + 1
			if n > maxTicks {
				continue
			}
			// Past 2^53 consecutive multiples are no longer distinct
			// floats; label the endpoints instead.
			if first+1 == first || last-first+1 != float64(n) {
				return []float64{lo, hi}, hi - lo
			}
			values := make([]float64, 0, max(n, 0))
			for i := range n {
				values = append(values, clean((first+float64(i))*step, step))
			}
			return values, step
		}
	}
}

// logValues returns log ticks and a zero step, or linear ticks and their
// step when the domain is too narrow for powers and 2x/5x multiples.
func logValues(lo, hi float64, maxTicks int) ([]float64, float64) {
	const eps = 1e-9
	elo := math.Ceil(math.Log10(lo) - eps)
	ehi := math.Floor(math.Log10(hi) + eps)

	var powers []float64
	for e := elo; e <= ehi; e++ {
		powers = append(powers, math.Pow(10, e))
	}
	if len(powers) >= 3 {
		return thin(powers, maxTicks), 0
	}

	var values []float64
	for e := math.Floor(math.Log10(lo)); e <= math.Floor(math.Log10(hi)); e++ {
		pow := math.Pow(10, e)
		for _, m := range niceMultipliers {
			v := m * pow
			if v >= lo*(1-eps) && v <= hi*(1+eps) {
				values = append(values, v)
			}
		}
	}
	if len(values) < 2 {
		// Narrow domain inside one decade.
		return linearValues(lo, hi, maxTicks)
	}
	return thin(values, maxTicks), 0
}

// symlogValues returns ticks and per-tick label precision.
func symlogValues(lo, hi, thr float64, maxTicks int) ([]float64, []int) {
	var values []float64
	prec := map[float64]int{}

	inLo, inHi := math.Max(lo, -thr), math.Min(hi, thr)
	if inLo < inHi {
		lin, step := linearValues(inLo, inHi, max(3, maxTicks/2))
		p := stepPrecision(step)
		for _, v := range lin {
			values = append(values, v)
			prec[v] = p
		}
	}

	for e := math.Ceil(math.Log10(thr)); ; e++ {
		v := math.Pow(10, e)
		if v > hi && -v < lo {
			break
		}
		if v <= thr {
			continue
		}
		if v >= lo && v <= hi {
			values = append(values, v)
			prec[v] = magnitudePrecision(v)
		}
		if -v >= lo && -v <= hi {
			values = append(values, -v)
			prec[-v] = magnitudePrecision(v)
		}
	}

	if len(values) == 0 {
		lin, step := linearValues(lo, hi, maxTicks)
		p := stepPrecision(step)
		out := make([]int, len(lin))
		for i := range out {
			out[i] = p
		}
		return lin, out
	}

	slices.Sort(values)
	values = slices.Compact(values)
	values = thin(values, maxTicks)
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = prec[v]
	}
	return values, out
}

// thin keeps every k-th value so that at most maxTicks remain.
func thin(values []float64, maxTicks int) []float64 {
	if len(values) <= maxTicks {
		return values
	}
	stride := (len(values) + maxTicks - 1) / maxTicks
	out := make([]float64, 0, maxTicks)
	for i := 0; i < len(values); i += stride {
		out = append(out, values[i])
	}
	return out
}

// clean snaps values that are zero up to rounding noise to exactly zero.
func clean(v, step float64) float64 {
	if math.Abs(v) < step*1e-9 {
		return 0
	}
	return v
}

func stepPrecision(step float64) int {
	p := -int(math.Floor(math.Log10(step) + 1e-9))
	return max(p, 0)
}

func magnitudePrecision(v float64) int {
	v = math.Abs(v)
	if v == 0 || v >= 1 {
		return 0
	}
	return stepPrecision(v)
}

// Format renders v with prec decimals; prec < 0 uses the shortest exact
// representation. Magnitudes of 1e6 and above use exponent notation.
// Negative zero prints as "0".
func Format(v float64, prec int) string {
	var s string
	if a := math.Abs(v); a >= 1e6 && !math.IsInf(v, 0) {
		s = strconv.FormatFloat(v, 'e', 2, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', prec, 64)
	}
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		s = s[1:]
	}
	return s
}
