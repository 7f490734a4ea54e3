package raster

import (
	"image"
	"image/color"
)

// RGB is an in-memory image whose pixels are stored as packed R, G, B
// triplets, three bytes per pixel, with no alpha channel. It is the
// alpha-free counterpart to *image.NRGBA.
type RGB struct {
	// Pix holds the pixel data in R, G, B order.
	Pix []uint8

	// Stride is the Pix offset between vertically adjacent pixels.
	Stride int

	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewRGB allocates an RGB image of the given size with all pixels black.
func NewRGB(width, height int) *RGB {
	return &RGB{
		Pix:    make([]uint8, 3*width*height),
		Stride: 3 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func (p *RGB) ColorModel() color.Model { return color.NRGBAModel }

func (p *RGB) Bounds() image.Rectangle { return p.Rect }

func (p *RGB) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	return color.NRGBA{p.Pix[i], p.Pix[i+1], p.Pix[i+2], 0xff}
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// Set stores the color channels of c at (x, y). Any alpha information in c
// is discarded; this format has nowhere to keep it.
func (p *RGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.Pix[i], p.Pix[i+1], p.Pix[i+2] = n.R, n.G, n.B
}

// Opaque always reports true.
func (p *RGB) Opaque() bool { return true }
