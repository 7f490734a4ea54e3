package transform

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-transforms/raster"
)

// Subregion copies the width x height region of an image whose top-left
// corner is at (x, y), with coordinates relative to the source's top-left
// pixel.
//
// The result never shares storage with the source: it is a fresh
// allocation, not a view into the parent buffer. Like ScaleToSize, the
// output is packed RGB for alpha-free sources and ARGB otherwise,
// regardless of the source's original format.
//
// Regions that are empty or extend past the source bounds fail fast with an
// ErrInvalidArgument-wrapped error.
func Subregion(img image.Image, x, y, width, height int) (image.Image, error) {
	b := img.Bounds()
	if x < 0 || y < 0 || width <= 0 || height <= 0 ||
		x+width > b.Dx() || y+height > b.Dy() {
		return nil, fmt.Errorf("subregion (%d,%d) %dx%d outside %dx%d source: %w",
			x, y, width, height, b.Dx(), b.Dy(), ErrInvalidArgument)
	}

	rect := image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+width, b.Min.Y+y+height)
	cropped := imaging.Crop(img, rect)
	if raster.HasAlpha(img) {
		return cropped, nil
	}
	return opaqueCopy(cropped), nil
}
