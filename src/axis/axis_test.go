package axis

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func TestNiceStepRounding(t *testing.T) {
	cases := []struct {
		raw   float64
		round bool
		want  float64
	}{
		{1.0, true, 1},
		{1.4, true, 1},
		{1.5, true, 2},
		{2.9, true, 2},
		{3.0, true, 5},
		{6.9, true, 5},
		{7.0, true, 10},
		{1.0, false, 1},
		{1.1, false, 2},
		{2.0, false, 2},
		{2.1, false, 5},
		{5.0, false, 5},
		{5.1, false, 10},
		{0.042, true, 0.05},
		{1234, false, 2000},
	}
	for _, c := range cases {
		got := NiceStep(c.raw, c.round)
		if math.Abs(got-c.want) > eps*c.want {
			t.Errorf("NiceStep(%v, %v) = %v, want %v", c.raw, c.round, got, c.want)
		}
	}
}

func TestNiceStepScaleInvariant(t *testing.T) {
	// nice(10x) == 10*nice(x) for positive x
	for _, x := range []float64{0.013, 0.7, 1.49, 1.5, 2.99, 3, 6.99, 7, 9.9} {
		for _, round := range []bool{true, false} {
			a := NiceStep(10*x, round)
			b := 10 * NiceStep(x, round)
			if math.Abs(a-b) > 1e-9*math.Abs(b) {
				t.Errorf("scale invariance broken: NiceStep(%v,%v)=%v vs 10*NiceStep=%v", 10*x, round, a, b)
			}
		}
	}
}

func TestNiceStepDegenerate(t *testing.T) {
	for _, raw := range []float64{0, -3, math.NaN()} {
		got := NiceStep(raw, true)
		if !(got > 0) {
			t.Fatalf("NiceStep(%v) = %v, want positive", raw, got)
		}
	}
}

func TestTicksCoverRange(t *testing.T) {
	cases := []struct {
		min, max float64
	}{
		{0, 100},
		{-20, 100},
		{0.001, 0.0042},
		{-5.5, -1.2},
		{8, 1200},
		{99.3, 99.7},
	}
	for _, c := range cases {
		ticks := Ticks(c.min, c.max, 6)
		if len(ticks) == 0 {
			t.Fatalf("Ticks(%v,%v): empty", c.min, c.max)
		}
		if ticks[0] > c.min+eps {
			t.Errorf("Ticks(%v,%v): first tick %v > min", c.min, c.max, ticks[0])
		}
		if last := ticks[len(ticks)-1]; last < c.max-eps {
			t.Errorf("Ticks(%v,%v): last tick %v < max", c.min, c.max, last)
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i] <= ticks[i-1] {
				t.Errorf("Ticks(%v,%v): not strictly increasing at %d: %v", c.min, c.max, i, ticks)
			}
		}
		// uniform spacing
		if len(ticks) >= 3 {
			step := ticks[1] - ticks[0]
			for i := 2; i < len(ticks); i++ {
				if math.Abs((ticks[i]-ticks[i-1])-step) > 1e-6*step {
					t.Errorf("Ticks(%v,%v): spacing drift at %d: %v", c.min, c.max, i, ticks)
				}
			}
		}
	}
}

func TestTicksHintIsApproximate(t *testing.T) {
	ticks := Ticks(0, 100, 6)
	if n := len(ticks); n < 4 || n > 8 {
		t.Fatalf("tick count %d too far from hint 6: %v", n, ticks)
	}
}

func TestTicksRejectsUnorderable(t *testing.T) {
	if got := Ticks(5, 1, 6); got != nil {
		t.Fatalf("expected nil for inverted range, got %v", got)
	}
	if got := Ticks(0, 10, 1); got != nil {
		t.Fatalf("expected nil for hint<2, got %v", got)
	}
	if got := Ticks(math.NaN(), 10, 6); got != nil {
		t.Fatalf("expected nil for NaN bound, got %v", got)
	}
}

func TestPlotRangePadding(t *testing.T) {
	pts := []Point{{X: -20, Y: 1200}, {X: 40, Y: 50}, {X: 100, Y: 8}}
	x, y := PlotRange(pts)
	if !(x.Min < -20 && x.Max > 100) {
		t.Fatalf("X not padded: %+v", x)
	}
	if !(y.Min < 8 && y.Max > 1200) {
		t.Fatalf("Y not padded: %+v", y)
	}
	// symmetric 10% Y padding
	span := 1200.0 - 8.0
	if math.Abs((8-y.Min)-span*0.10) > eps || math.Abs((y.Max-1200)-span*0.10) > eps {
		t.Fatalf("Y padding not symmetric 10%%: %+v", y)
	}
}

func TestPlotRangeDegenerate(t *testing.T) {
	// single point must yield strictly positive spans on both axes
	x, y := PlotRange([]Point{{X: 40, Y: 46}})
	if !(x.Span() > 0 && y.Span() > 0) {
		t.Fatalf("degenerate series produced empty span: x=%+v y=%+v", x, y)
	}
	// flat series: Y span zero, X span non-zero
	x, y = PlotRange([]Point{{X: 0, Y: 5}, {X: 10, Y: 5}})
	if !(x.Span() > 0 && y.Span() > 0) {
		t.Fatalf("flat series produced empty span: x=%+v y=%+v", x, y)
	}
	if y.Min >= 5 || y.Max <= 5 {
		t.Fatalf("flat series Y not padded around value: %+v", y)
	}
	// empty series still drawable
	x, y = PlotRange(nil)
	if !(x.Span() > 0 && y.Span() > 0) {
		t.Fatalf("empty series produced empty span: x=%+v y=%+v", x, y)
	}
}

func TestPlotRangeNoNaN(t *testing.T) {
	pts := []Point{{X: -20, Y: 1200}, {X: 40, Y: 50}, {X: 100, Y: 8}}
	x, y := PlotRange(pts)
	for _, v := range []float64{x.Min, x.Max, y.Min, y.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite bound: x=%+v y=%+v", x, y)
		}
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{1200, "1200"},
		{100, "100"},
		{46.5, "46.5"},
		{8.25, "8.25"},
		{0.123, "0.123"},
		{0, "0"},
		{-250, "-250"},
	}
	for _, c := range cases {
		if got := FormatTick(c.v); got != c.want {
			t.Errorf("FormatTick(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestTicksSubUlpSpacingTerminates(t *testing.T) {
	// A near-flat series at huge magnitude yields a spacing far below the
	// float resolution of the bounds; the loop must still return.
	done := make(chan []float64, 1)
	go func() { done <- Ticks(1e9, 1e9+1e-9, 6) }()
	select {
	case ticks := <-done:
		if len(ticks) == 0 {
			t.Fatal("no ticks for degenerate spacing")
		}
		for i := 1; i < len(ticks); i++ {
			if ticks[i] <= ticks[i-1] {
				t.Fatalf("not strictly increasing: %v", ticks)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ticks did not return for sub-ulp spacing")
	}
}

func TestTicksCountStaysBounded(t *testing.T) {
	cases := [][2]float64{
		{1e9, 1e9 + 1e-6},
		{-1e12, -1e12 + 1},
		{0, 100},
	}
	for _, c := range cases {
		ticks := Ticks(c[0], c[1], 6)
		if len(ticks) > 6+3 {
			t.Errorf("Ticks(%v,%v): %d ticks, exceeds the cap", c[0], c[1], len(ticks))
		}
	}
}
