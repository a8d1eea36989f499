package main

import (
	"fmt"
	"image/color"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ramorimdias/viscobat/cmd/viscoview/uihelpers"
	"github.com/ramorimdias/viscobat/src/axis"
	"github.com/ramorimdias/viscobat/src/render"
)

// yAxisGutterPx approximates the horizontal space go-chart spends on the Y
// axis labels, used when projecting a tap back into data space.
const yAxisGutterPx = 48

// chartTapOverlay is a transparent widget stacked over the chart canvas.
// Tapping it reports the nearest sampled point in the readout label.
type chartTapOverlay struct {
	widget.BaseWidget
	state *uiState
}

func newChartTapOverlay(s *uiState) *chartTapOverlay {
	o := &chartTapOverlay{state: s}
	o.ExtendBaseWidget(o)
	return o
}

func (o *chartTapOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (o *chartTapOverlay) Tapped(ev *fyne.PointEvent) {
	s := o.state
	if len(s.series) == 0 || s.chartCanvas == nil || s.chartCanvas.Image == nil {
		return
	}
	b := s.chartCanvas.Image.Bounds()
	imgW, imgH := float32(b.Dx()), float32(b.Dy())
	sz := o.Size()
	dx, _, dw, _, _ := uihelpers.ContainRect(imgW, imgH, sz.Width, sz.Height)
	if dw <= 0 {
		return
	}
	// view pixel -> image pixel -> data X
	pxImg := float64((ev.Position.X - dx) * imgW / dw)
	xr, _ := axis.PlotRange(s.series)
	left := float64(render.PadLeft + yAxisGutterPx)
	right := float64(imgW) - float64(render.PadRight)
	x := uihelpers.PixelToData(pxImg, left, right, xr.Min, xr.Max)

	xs := make([]float64, len(s.series))
	for i, p := range s.series {
		xs[i] = p.X
	}
	idx := uihelpers.NearestIndex(xs, x)
	if idx < 0 {
		return
	}
	p := s.series[idx]
	s.chartInfo.SetText(fmt.Sprintf("T = %s °C   v = %s mm²/s",
		axis.FormatTick(p.X), axis.FormatTick(p.Y)))
}
