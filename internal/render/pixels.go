package render

import (
	"errors"
	"fmt"
	"image"

	"allrgb/internal/colorspace"
	"allrgb/internal/core"
)

// ErrIncomplete reports a grid that still has empty cells.
var ErrIncomplete = errors.New("render: grid not fully filled")

// fillRGBA converts color bases into 8-bit RGBA pixels in buf. Components
// are rescaled from [0, colorSize-1] onto [0, 255].
func fillRGBA(buf []byte, cells []colorspace.Base, colorSize int) {
	for i, b := range cells {
		base := i * 4
		c := colorspace.ToRGB(b, colorSize)
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Image renders a completed grid. Pixel (x, y) shows the cell at
// Location{X: x, Y: y}.
func Image(grid *core.ColorGrid, colorSize int) (*image.RGBA, error) {
	if !grid.Full() {
		return nil, fmt.Errorf("%w: %d of %d cells", ErrIncomplete, grid.Count(), grid.W*grid.H)
	}
	img := image.NewRGBA(image.Rect(0, 0, grid.W, grid.H))
	fillRGBA(img.Pix, grid.Cells(), colorSize)
	return img, nil
}
