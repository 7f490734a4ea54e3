package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Format identifies the storage layout of an image's pixel buffer.
type Format int

const (
	// FormatRGB is packed 3-byte opaque color with no alpha channel.
	FormatRGB Format = iota

	// FormatARGB is 8-bit color with an alpha channel. Whether the color
	// channels are premultiplied by alpha is carried by the concrete type
	// (*image.RGBA premultiplied, *image.NRGBA not).
	FormatARGB

	// FormatGray is 8-bit grayscale.
	FormatGray

	// FormatBinary is 1-bit monochrome with rows packed eight pixels per byte.
	FormatBinary
)

// String returns a short name for the format.
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatARGB:
		return "argb"
	case FormatGray:
		return "gray"
	case FormatBinary:
		return "binary"
	}
	return "unknown"
}

// New allocates a width x height image in the given format. ARGB images are
// allocated non-premultiplied; use NewLike to match an existing image's
// premultiplication choice.
func New(width, height int, format Format) draw.Image {
	switch format {
	case FormatRGB:
		return NewRGB(width, height)
	case FormatGray:
		return image.NewGray(image.Rect(0, 0, width, height))
	case FormatBinary:
		return NewBinary(width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// NewLike allocates a width x height image in the same pixel format as img,
// preserving the alpha-premultiplication choice for ARGB formats. Images in
// formats outside the modeled set get a non-premultiplied ARGB buffer.
func NewLike(img image.Image, width, height int) draw.Image {
	r := image.Rect(0, 0, width, height)
	switch img.(type) {
	case *RGB:
		return NewRGB(width, height)
	case *Binary:
		return NewBinary(width, height)
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	}
	return image.NewNRGBA(r)
}

// FormatOf classifies an image's storage format. Foreign formats resolve to
// FormatARGB or FormatRGB depending on whether they can carry transparency.
func FormatOf(img image.Image) Format {
	switch img.(type) {
	case *RGB:
		return FormatRGB
	case *Binary:
		return FormatBinary
	case *image.Gray, *image.Gray16:
		return FormatGray
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		return FormatARGB
	}
	if HasAlpha(img) {
		return FormatARGB
	}
	return FormatRGB
}

// HasAlpha reports whether the image's format reserves an alpha channel.
// This is a property of the storage format, not the pixel contents: an
// *image.NRGBA whose pixels are all opaque still reports true.
func HasAlpha(img image.Image) bool {
	switch src := img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64,
		*image.Alpha, *image.Alpha16:
		return true
	case *RGB, *Binary, *image.Gray, *image.Gray16, *image.CMYK, *image.YCbCr:
		return false
	case *image.Paletted:
		for _, c := range src.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
		return false
	}
	// Probe the color model with a transparent sample: a model without an
	// alpha channel forces full opacity on conversion.
	_, _, _, a := img.ColorModel().Convert(color.NRGBA{}).RGBA()
	return a == 0
}
