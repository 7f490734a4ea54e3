package transform

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/image-transforms/raster"
)

// invertTable maps each 8-bit channel value to its complement. Built once
// at package initialization and read-only afterwards.
var invertTable [256]uint8

func init() {
	for i := range invertTable {
		invertTable[i] = uint8(255 - i)
	}
}

// Invert returns an image with every color channel complemented: each
// channel value v becomes 255-v. The alpha channel, if present, passes
// through unchanged. Unlike scaling and cropping, the output keeps the
// input's pixel format, so Invert(Invert(img)) reproduces img exactly.
//
// Images in formats outside the modeled set are normalized to
// non-premultiplied ARGB before inversion.
func Invert(img image.Image) image.Image {
	switch src := img.(type) {
	case *image.NRGBA:
		dup := *src
		dup.Pix = invertPix(src.Pix, true)
		return &dup
	case *image.RGBA:
		dup := *src
		dup.Pix = invertPix(src.Pix, true)
		return &dup
	case *image.Gray:
		dup := *src
		dup.Pix = invertPix(src.Pix, false)
		return &dup
	case *raster.RGB:
		dup := *src
		dup.Pix = invertPix(src.Pix, false)
		return &dup
	case *raster.Binary:
		dup := *src
		dup.Pix = invertBits(src)
		return &dup
	}
	dup := imaging.Clone(img)
	dup.Pix = invertPix(dup.Pix, true)
	return dup
}

// invertPix runs every color channel through the lookup table. With
// skipAlpha set, every fourth byte is treated as alpha and copied through
// untouched.
func invertPix(pix []uint8, skipAlpha bool) []uint8 {
	out := make([]uint8, len(pix))
	for i, v := range pix {
		if skipAlpha && i%4 == 3 {
			out[i] = v
			continue
		}
		out[i] = invertTable[v]
	}
	return out
}

// invertBits flips every pixel of a 1-bit image. Row padding bits stay
// zero.
func invertBits(src *raster.Binary) []uint8 {
	out := make([]uint8, len(src.Pix))
	w := src.Rect.Dx()
	for y := 0; y < src.Rect.Dy(); y++ {
		row := src.Pix[y*src.Stride : (y+1)*src.Stride]
		flipped := out[y*src.Stride : (y+1)*src.Stride]
		for i, v := range row {
			flipped[i] = ^v
		}
		if rem := w % 8; rem != 0 {
			flipped[len(flipped)-1] &= 0xff << uint(8-rem)
		}
	}
	return out
}
