package transform

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/segment"

	"github.com/ironsheep/image-transforms/raster"
)

// binarizeLevel is the luma threshold separating black from white, the
// midpoint of the 8-bit range.
const binarizeLevel = 128

// Binarize converts an image to 1-bit black and white by thresholding each
// pixel's luma at the mid-level. The conversion is deterministic: the same
// input always produces the same output bytes, so results are suitable for
// golden-image comparison.
func Binarize(img image.Image) *raster.Binary {
	gray := segment.Threshold(img, binarizeLevel)

	b := gray.Bounds()
	dst := raster.NewBinary(b.Dx(), b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		for x, v := range row {
			if v != 0 {
				dst.SetBit(x, y, true)
			}
		}
	}
	return dst
}

// Grayscale converts an image to 8-bit grayscale using the standard BT.601
// luma weighting of the color channels. Alpha, if present in the source, is
// discarded; the result is fully opaque.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// RemoveAlpha flattens an image's alpha channel against a white background.
//
// If the image has no alpha channel it is returned unchanged, same
// instance. Otherwise the source is composited source-over onto a
// white-filled packed-RGB image: fully transparent pixels become white,
// fully opaque pixels keep their color, and partial coverage blends toward
// white. The operation is idempotent.
func RemoveAlpha(img image.Image) image.Image {
	if !raster.HasAlpha(img) {
		return img
	}

	b := img.Bounds()
	dst := raster.NewRGB(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}
