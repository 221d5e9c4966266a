//go:build ebiten

package app

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// previewTarget is the window edge, in pixels, small mosaics are enlarged to.
const previewTarget = 768

// Viewer adapts a finished mosaic to the ebiten.Game interface.
type Viewer struct {
	img   *ebiten.Image
	w, h  int
	scale int
}

// NewViewer uploads img and picks an integer zoom for small mosaics.
func NewViewer(img image.Image) *Viewer {
	b := img.Bounds()
	scale := 1
	if side := max(b.Dx(), b.Dy()); side > 0 && side < previewTarget {
		scale = previewTarget / side
	}
	return &Viewer{img: ebiten.NewImageFromImage(img), w: b.Dx(), h: b.Dy(), scale: scale}
}

// Update closes the window on Q or Escape.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the mosaic.
func (v *Viewer) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(v.scale), float64(v.scale))
	screen.DrawImage(v.img, op)
}

// Layout returns the logical screen size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.w * v.scale, v.h * v.scale
}

// Preview shows img in a window until it is closed.
func Preview(img image.Image, title string) error {
	v := NewViewer(img)
	w, h := v.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(min(w, previewTarget), min(h, previewTarget))
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
