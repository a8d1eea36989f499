// Package render rasterizes the viscosity/temperature series into a line
// chart image. Ticks on the X axis sit at the literal sampled temperatures
// (the service returns a caller-specified grid); the Y axis gets "nice"
// ticks with horizontal gridlines from the axis package.
package render

import (
	"bytes"
	"image"
	"image/color"
	png "image/png"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ramorimdias/viscobat/src/axis"
	"github.com/ramorimdias/viscobat/src/compute"
)

// Chart margins reserved for labels, in pixels.
const (
	PadTop    = 14
	PadLeft   = 16
	PadRight  = 12
	PadBottom = 28
)

// yTickHint is the approximate Y tick count.
const yTickHint = 6

// Labels carries the locale-dependent chart strings. The chart is
// re-rendered whenever the language changes.
type Labels struct {
	Title  string
	XTitle string
	YTitle string
	Empty  string
}

// Series converts the service table into plot points, preserving order.
func Series(table []compute.TablePoint) []axis.Point {
	out := make([]axis.Point, 0, len(table))
	for _, p := range table {
		out = append(out, axis.Point{X: p.Temperature, Y: p.Viscosity})
	}
	return out
}

// TemperatureChart renders the series onto a w×h surface. An empty series
// yields the placeholder surface with the localized empty note; render
// failures fall back to the placeholder rather than propagate.
func TemperatureChart(series []axis.Point, w, h int, labels Labels) image.Image {
	if len(series) == 0 {
		return Note(Blank(w, h), labels.Empty)
	}

	xs := make([]float64, len(series))
	ys := make([]float64, len(series))
	for i, p := range series {
		xs[i] = p.X
		ys[i] = p.Y
	}
	// go-chart cannot plot a single point; widen it to a flat two-point line
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	xr, yr := axis.PlotRange(series)
	xTicks := make([]chart.Tick, 0, len(series))
	for _, p := range series {
		xTicks = append(xTicks, chart.Tick{Value: p.X, Label: axis.FormatTick(p.X)})
	}
	if len(xTicks) == 1 {
		xTicks = append(xTicks, chart.Tick{Value: xTicks[0].Value + 1, Label: ""})
	}

	yTickVals := axis.Ticks(yr.Min, yr.Max, yTickHint)
	yTicks := make([]chart.Tick, 0, len(yTickVals))
	for _, v := range yTickVals {
		yTicks = append(yTicks, chart.Tick{Value: v, Label: axis.FormatTick(v)})
	}
	yRange := &chart.ContinuousRange{Min: yr.Min, Max: yr.Max}
	if n := len(yTickVals); n >= 2 {
		yRange.Min = yTickVals[0]
		yRange.Max = yTickVals[n-1]
	}

	ch := chart.Chart{
		Title:  labels.Title,
		Width:  w,
		Height: h,
		Background: chart.Style{
			Padding: chart.Box{Top: PadTop, Left: PadLeft, Right: PadRight, Bottom: PadBottom},
		},
		XAxis: chart.XAxis{
			Name:  labels.XTitle,
			Ticks: xTicks,
			Range: &chart.ContinuousRange{Min: xr.Min, Max: xr.Max},
		},
		YAxis: chart.YAxis{
			Name:  labels.YTitle,
			Ticks: yTicks,
			Range: yRange,
			GridMajorStyle: chart.Style{
				Hidden:      false,
				StrokeColor: chart.ColorAlternateGray.WithAlpha(90),
				StrokeWidth: 1.0,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
					DotColor:    drawing.ColorBlue,
					DotWidth:    3,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		compute.Warnf("chart render failed: %v", err)
		return Note(Blank(w, h), labels.Empty)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		compute.Warnf("chart decode failed: %v", err)
		return Note(Blank(w, h), labels.Empty)
	}
	return img
}

// Blank returns the dark placeholder surface.
func Blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 18, G: 18, B: 18, A: 255})
		}
	}
	return img
}

// EncodePNG writes img as PNG, for the export menu and the CLI.
func EncodePNG(img image.Image, w io.Writer) error {
	return png.Encode(w, img)
}
