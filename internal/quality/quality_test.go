package quality

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestMeasureUniformImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < 9; i++ {
		img.SetRGBA(i%3, i/3, color.RGBA{R: 40, G: 90, B: 200, A: 255})
	}
	r := Measure(img)
	if r.Pairs != 18 {
		t.Fatalf("expected 18 pairs, got %d", r.Pairs)
	}
	if r.MeanLab != 0 || r.MaxLab != 0 {
		t.Fatalf("uniform image should score zero, got %+v", r)
	}
}

func TestMeasureMatchesColorfulDistance(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, black)
	img.SetRGBA(1, 0, white)

	want := colorful.Color{}.DistanceLab(colorful.Color{R: 1, G: 1, B: 1})
	r := Measure(img)
	if math.Abs(r.MaxLab-want) > 1e-9 {
		t.Fatalf("expected max distance %f, got %f", want, r.MaxLab)
	}
	// Two horizontal pairs differ, two vertical self-pairs do not.
	if math.Abs(r.MeanLab-want/2) > 1e-9 {
		t.Fatalf("expected mean distance %f, got %f", want/2, r.MeanLab)
	}
}

func TestMeasureWrapsAroundEdges(t *testing.T) {
	px := []color.RGBA{
		{R: 255, A: 255}, {G: 255, A: 255},
		{B: 255, A: 255}, {R: 128, G: 128, B: 128, A: 255},
	}
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	cols := make([]colorful.Color, len(px))
	for i, c := range px {
		img.SetRGBA(i%2, i/2, c)
		cols[i] = colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	}

	var sum, maxD float64
	for i := range cols {
		x, y := i%2, i/2
		for _, j := range []int{y*2 + (x+1)%2, ((y+1)%2)*2 + x} {
			d := cols[i].DistanceLab(cols[j])
			sum += d
			maxD = math.Max(maxD, d)
		}
	}

	r := Measure(img)
	if r.Pairs != 8 {
		t.Fatalf("expected 8 pairs, got %d", r.Pairs)
	}
	if math.Abs(r.MeanLab-sum/8) > 1e-9 || math.Abs(r.MaxLab-maxD) > 1e-9 {
		t.Fatalf("expected mean %f max %f, got %+v", sum/8, maxD, r)
	}
}

func TestMeasureEmpty(t *testing.T) {
	if r := Measure(image.NewRGBA(image.Rect(0, 0, 0, 0))); r.Pairs != 0 {
		t.Fatalf("expected no pairs, got %+v", r)
	}
}
