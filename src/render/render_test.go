package render

import (
	"bytes"
	"image"
	"image/color"
	png "image/png"
	"testing"

	"github.com/ramorimdias/viscobat/src/axis"
	"github.com/ramorimdias/viscobat/src/compute"
)

var sampleTable = []compute.TablePoint{
	{Temperature: -20, Viscosity: 1200},
	{Temperature: 40, Viscosity: 50},
	{Temperature: 100, Viscosity: 8},
}

func TestSeriesPreservesOrder(t *testing.T) {
	s := Series(sampleTable)
	if len(s) != 3 {
		t.Fatalf("series length = %d, want 3", len(s))
	}
	if s[0].X != -20 || s[2].Y != 8 {
		t.Errorf("order or mapping wrong: %+v", s)
	}
}

func TestTemperatureChartDimensions(t *testing.T) {
	img := TemperatureChart(Series(sampleTable), 800, 320, Labels{
		Title: "Viscosity / Temperature", XTitle: "°C", YTitle: "mm²/s",
	})
	if img == nil {
		t.Fatal("nil image")
	}
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 320 {
		t.Fatalf("bounds = %dx%d, want 800x320", b.Dx(), b.Dy())
	}
}

func TestTemperatureChartEmptySeries(t *testing.T) {
	img := TemperatureChart(nil, 640, 240, Labels{Empty: "no data"})
	if img == nil {
		t.Fatal("nil image for empty series")
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 240 {
		t.Fatalf("placeholder bounds = %dx%d", b.Dx(), b.Dy())
	}
}

func TestTemperatureChartSinglePoint(t *testing.T) {
	one := []axis.Point{{X: 40, Y: 46}}
	img := TemperatureChart(one, 400, 200, Labels{})
	if img == nil {
		t.Fatal("nil image for single point")
	}
}

func TestBlankIsUniform(t *testing.T) {
	img := Blank(10, 5)
	b := img.Bounds()
	if b.Dx() != 10 || b.Dy() != 5 {
		t.Fatalf("blank bounds = %v", b)
	}
	want := color.RGBA{R: 18, G: 18, B: 18, A: 255}
	if got := img.(*image.RGBA).RGBAAt(3, 2); got != want {
		t.Fatalf("blank pixel = %v, want %v", got, want)
	}
}

func TestNoteLeavesEmptyTextAlone(t *testing.T) {
	src := Blank(60, 30)
	if out := Note(src, "  "); out != src {
		t.Fatal("blank note text must return the image unchanged")
	}
	out := Note(src, "no data")
	if out == nil {
		t.Fatal("nil image from Note")
	}
	if out == src {
		t.Fatal("Note must draw on a copy")
	}
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := TemperatureChart(Series(sampleTable), 320, 160, Labels{})
	var buf bytes.Buffer
	if err := EncodePNG(img, &buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 320 {
		t.Fatalf("round-trip width = %d", decoded.Bounds().Dx())
	}
}
