package raster

import (
	"image"

	"github.com/disintegration/imaging"
)

// Clone returns a deep, independent copy of img. The concrete type is
// preserved for every modeled format, so the pixel format and the
// alpha-premultiplication choice survive the copy, and the returned image
// shares no storage with the original.
//
// Images in formats outside the modeled set are copied into a
// non-premultiplied ARGB buffer.
func Clone(img image.Image) image.Image {
	switch src := img.(type) {
	case *image.RGBA:
		dup := *src
		dup.Pix = append([]uint8(nil), src.Pix...)
		return &dup
	case *image.NRGBA:
		dup := *src
		dup.Pix = append([]uint8(nil), src.Pix...)
		return &dup
	case *image.Gray:
		dup := *src
		dup.Pix = append([]uint8(nil), src.Pix...)
		return &dup
	case *RGB:
		dup := *src
		dup.Pix = append([]uint8(nil), src.Pix...)
		return &dup
	case *Binary:
		dup := *src
		dup.Pix = append([]uint8(nil), src.Pix...)
		return &dup
	}
	return imaging.Clone(img)
}
