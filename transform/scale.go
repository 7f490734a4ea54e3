package transform

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-transforms/raster"
)

// ScaleToSize resizes an image to exactly targetWidth x targetHeight using
// bicubic (Catmull-Rom) resampling. The source aspect ratio is not
// preserved; callers that need it must pre-compute matching target
// dimensions.
//
// The result is packed RGB when the source has no alpha channel and ARGB
// otherwise. Grayscale and binary sources widen to color; this
// normalization is part of the contract, not an accident of the resampler.
//
// Returns an ErrInvalidArgument-wrapped error for non-positive target
// dimensions.
func ScaleToSize(img image.Image, targetWidth, targetHeight int) (image.Image, error) {
	if targetWidth <= 0 || targetHeight <= 0 {
		return nil, fmt.Errorf("scale target %dx%d: %w", targetWidth, targetHeight, ErrInvalidArgument)
	}

	scaled := imaging.Resize(img, targetWidth, targetHeight, imaging.CatmullRom)
	if raster.HasAlpha(img) {
		return scaled, nil
	}
	return opaqueCopy(scaled), nil
}

// opaqueCopy repacks ARGB pixels into the 3-byte RGB format, dropping the
// alpha bytes.
func opaqueCopy(src *image.NRGBA) *raster.RGB {
	b := src.Bounds()
	dst := raster.NewRGB(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := y * dst.Stride
		for x := 0; x < b.Dx(); x++ {
			dst.Pix[di] = src.Pix[si]
			dst.Pix[di+1] = src.Pix[si+1]
			dst.Pix[di+2] = src.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return dst
}
