// Package axis computes human-legible axis bounds and tick positions for
// the viscosity/temperature chart. All functions are pure; the renderer
// and the viewer build their chart.Tick lists on top of these.
package axis

import (
	"math"
	"strconv"
)

// minStep guards degenerate ranges (single-value series) against a zero step.
const minStep = 1e-12

// Point is one (temperature, viscosity) sample in data coordinates.
type Point struct {
	X float64
	Y float64
}

// Range is an inclusive axis interval with Min < Max after expansion.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// NiceStep rounds raw to a "nice" value (1, 2, 5 or 10 times a power of ten).
// With round=true the thresholds favour the nearest nice value (used for tick
// spacing); with round=false they never round down past raw (used for the
// range magnitude). Non-positive input is clamped to a small epsilon.
func NiceStep(raw float64, round bool) float64 {
	if raw <= 0 || math.IsNaN(raw) {
		raw = minStep
	}
	exponent := math.Floor(math.Log10(raw))
	magnitude := math.Pow(10, exponent)
	fraction := raw / magnitude

	var nice float64
	if round {
		switch {
		case fraction < 1.5:
			nice = 1
		case fraction < 3:
			nice = 2
		case fraction < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case fraction <= 1:
			nice = 1
		case fraction <= 2:
			nice = 2
		case fraction <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * magnitude
}

// Ticks returns a uniformly spaced, strictly increasing tick sequence
// covering [min,max]: the first tick is <= min and the last is >= max.
// hint is the approximate number of ticks wanted; the actual count may
// differ by a couple. Returns nil when the range is not orderable.
func Ticks(min, max float64, hint int) []float64 {
	if hint < 2 || math.IsNaN(min) || math.IsNaN(max) || max < min {
		return nil
	}
	rawRange := NiceStep(max-min, false)
	spacing := NiceStep(rawRange/float64(hint-1), true)
	niceMin := math.Floor(min/spacing) * spacing
	niceMax := math.Ceil(max/spacing) * spacing

	out := make([]float64, 0, hint+2)
	// half-step slack absorbs float rounding at the upper boundary; the
	// count cap and the no-advance break keep the loop finite when spacing
	// falls below the float resolution of the bounds (near-identical values
	// at huge magnitude).
	for v := niceMin; v <= niceMax+0.5*spacing; v += spacing {
		out = append(out, v)
		if len(out) > hint+2 || v+spacing == v {
			break
		}
	}
	return out
}

// PlotRange derives the chart ranges from a series. X bounds are the literal
// data extremes padded by 5% of the span; Y bounds are padded symmetrically
// by 10%. Zero-span axes are padded by one absolute unit so a single point
// still yields a drawable area. The X axis keeps literal sample positions
// (the caller places one tick per sample); only Y gets nice ticks.
func PlotRange(points []Point) (x, y Range) {
	if len(points) == 0 {
		return Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1}
	}
	x = Range{Min: points[0].X, Max: points[0].X}
	y = Range{Min: points[0].Y, Max: points[0].Y}
	for _, p := range points[1:] {
		if p.X < x.Min {
			x.Min = p.X
		}
		if p.X > x.Max {
			x.Max = p.X
		}
		if p.Y < y.Min {
			y.Min = p.Y
		}
		if p.Y > y.Max {
			y.Max = p.Y
		}
	}
	x = pad(x, 0.05)
	y = pad(y, 0.10)
	return x, y
}

func pad(r Range, pct float64) Range {
	span := r.Span()
	p := span * pct
	if span <= 0 {
		p = 1
	}
	return Range{Min: r.Min - p, Max: r.Max + p}
}

// FormatTick provides a compact label with magnitude-dependent precision.
func FormatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av == 0:
		return "0"
	default:
		return strconv.FormatFloat(v, 'f', 3, 64)
	}
}
