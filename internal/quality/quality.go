// Package quality scores how smoothly colors blend across a finished mosaic.
package quality

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Report summarizes perceptual distances between neighboring pixels.
type Report struct {
	// Pairs is the number of neighbor pairs compared.
	Pairs int
	// MeanLab and MaxLab are CIE76 distances in L*a*b* space.
	MeanLab float64
	MaxLab  float64
}

// Measure compares every pixel with its right and lower neighbor, wrapping
// around the edges the same way the placement grid does.
func Measure(img *image.RGBA) Report {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return Report{}
	}

	colors := make([]colorful.Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			colors[y*w+x] = colorful.Color{R: float64(px.R) / 255, G: float64(px.G) / 255, B: float64(px.B) / 255}
		}
	}

	var r Report
	var sum float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cur := colors[y*w+x]
			for _, n := range [2]colorful.Color{colors[y*w+(x+1)%w], colors[((y+1)%h)*w+x]} {
				d := cur.DistanceLab(n)
				sum += d
				r.Pairs++
				if d > r.MaxLab {
					r.MaxLab = d
				}
			}
		}
	}
	r.MeanLab = sum / float64(r.Pairs)
	return r
}
