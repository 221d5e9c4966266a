//go:build !ebiten

package app

import (
	"errors"
	"image"
)

// ErrNoPreview is returned by Preview in builds without the ebiten tag.
var ErrNoPreview = errors.New("app.Preview requires building with the 'ebiten' tag")

// Preview reports that the GUI build tag is missing.
func Preview(image.Image, string) error {
	return ErrNoPreview
}
