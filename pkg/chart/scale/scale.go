// Package scale maps data values to pixel coordinates and back.
//
// Three transforms are supported: linear, base-10 logarithmic, and
// symmetric log (linear inside [-T, T], logarithmic in magnitude outside).
// A [Transform] is an immutable value; Forward and Inverse are pure and
// safe for concurrent use.
//
// A degenerate domain (min == max) maps every value to the midpoint of the
// pixel range. Inverse of any pixel in that case returns min.
package scale

import (
	"math"

	"github.com/matzehuels/plotsvg/pkg/errors"
)

// Kind identifies a scale transform.
type Kind string

const (
	Linear Kind = "linear"
	Log    Kind = "log"
	Symlog Kind = "symlog"
)

// ParseKind resolves a scale name from configuration. The empty string
// selects Linear.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", Linear:
		return Linear, nil
	case Log:
		return Log, nil
	case Symlog:
		return Symlog, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown scale kind %q (want linear, log or symlog)", s)
}

// Scale is a bound transform from a data domain to a pixel range.
type Scale interface {
	Kind() Kind
	Forward(v float64) float64
	Inverse(px float64) float64
	Domain() (lo, hi float64)
	Range() (r0, r1 float64)
}

// Transform implements Scale for all three kinds.
type Transform struct {
	kind      Kind
	lo, hi    float64
	r0, r1    float64
	threshold float64

	// domain endpoints in transformed space
	tlo, thi float64
}

// New builds a scale over [lo, hi] mapped onto pixels [r0, r1]. The range
// may be reversed (r0 > r1), as is usual for y axes.
//
// threshold is only used by Symlog; zero selects the default of one tenth
// of the domain span (or 1 when the span is zero).
func New(kind Kind, lo, hi, r0, r1, threshold float64) (Transform, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Transform{}, errors.New(errors.ErrCodeInvalidScale, "domain [%g, %g] is not finite", lo, hi)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	t := Transform{kind: kind, lo: lo, hi: hi, r0: r0, r1: r1}
	switch kind {
	case Linear:
	case Log:
		if lo <= 0 {
			return Transform{}, errors.New(errors.ErrCodeInvalidScale,
				"log scale domain must be strictly positive, got min %g", lo)
		}
	case Symlog:
		switch {
		case threshold < 0 || math.IsNaN(threshold):
			return Transform{}, errors.New(errors.ErrCodeInvalidScale,
				"symlog threshold must be positive, got %g", threshold)
		case threshold == 0:
			threshold = DefaultThreshold(lo, hi)
		}
		t.threshold = threshold
	default:
		return Transform{}, errors.New(errors.ErrCodeInvalidConfig, "unknown scale kind %q", kind)
	}
	t.tlo, t.thi = t.apply(lo), t.apply(hi)
	return t, nil
}

// DefaultThreshold is the symlog linear region used when none is configured.
func DefaultThreshold(lo, hi float64) float64 {
	if span := hi - lo; span > 0 {
		return span / 10
	}
	return 1
}

func (t Transform) Kind() Kind               { return t.kind }
func (t Transform) Domain() (lo, hi float64) { return t.lo, t.hi }
func (t Transform) Range() (r0, r1 float64)  { return t.r0, t.r1 }

// Threshold returns the symlog linear threshold, or 0 for other kinds.
func (t Transform) Threshold() float64 { return t.threshold }

// Degenerate reports whether the domain collapses to a single value.
func (t Transform) Degenerate() bool { return t.thi == t.tlo }

// Forward maps a data value to a pixel coordinate. On a log scale,
// non-positive values map to the low end of the range.
func (t Transform) Forward(v float64) float64 {
	if t.Degenerate() {
		return (t.r0 + t.r1) / 2
	}
	if t.kind == Log && v <= 0 {
		return t.r0
	}
	return t.r0 + (t.apply(v)-t.tlo)/(t.thi-t.tlo)*(t.r1-t.r0)
}

// Inverse maps a pixel coordinate back to a data value.
func (t Transform) Inverse(px float64) float64 {
	if t.Degenerate() || t.r1 == t.r0 {
		return t.lo
	}
	u := t.tlo + (px-t.r0)/(t.r1-t.r0)*(t.thi-t.tlo)
	return t.invert(u)
}

func (t Transform) apply(v float64) float64 {
	switch t.kind {
	case Log:
		return math.Log10(v)
	case Symlog:
		return symlog(v, t.threshold)
	}
	return v
}

func (t Transform) invert(u float64) float64 {
	switch t.kind {
	case Log:
		return math.Pow(10, u)
	case Symlog:
		return symexp(u, t.threshold)
	}
	return u
}

// symlog is v/T inside the threshold and sign(v)*(1+log10(|v|/T)) outside.
// Both pieces equal ±1 at |v| == T, so the transform is continuous.
func symlog(v, thr float64) float64 {
	a := math.Abs(v)
	if a <= thr {
		return v / thr
	}
	return math.Copysign(1+math.Log10(a/thr), v)
}

func symexp(u, thr float64) float64 {
	a := math.Abs(u)
	if a <= 1 {
		return u * thr
	}
	return math.Copysign(thr*math.Pow(10, a-1), u)
}
