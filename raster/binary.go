package raster

import (
	"image"
	"image/color"
)

// BinaryModel quantizes colors to pure black or pure white at the midpoint
// of the 8-bit luma range.
var BinaryModel color.Model = color.ModelFunc(func(c color.Color) color.Color {
	g := color.GrayModel.Convert(c).(color.Gray)
	if g.Y >= 0x80 {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
})

// Binary is a 1-bit monochrome image. Pixels are packed eight per byte,
// most significant bit first; a set bit is white. Each row is padded to a
// whole byte, so Stride is ceil(width/8) and padding bits are kept zero.
type Binary struct {
	// Pix holds the packed rows.
	Pix []uint8

	// Stride is the number of bytes per row.
	Stride int

	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewBinary allocates a Binary image of the given size with all pixels black.
func NewBinary(width, height int) *Binary {
	stride := (width + 7) / 8
	return &Binary{
		Pix:    make([]uint8, stride*height),
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
}

func (p *Binary) ColorModel() color.Model { return BinaryModel }

func (p *Binary) Bounds() image.Rectangle { return p.Rect }

func (p *Binary) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.Gray{}
	}
	if p.BitAt(x, y) {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{}
}

// BitAt reports whether the pixel at (x, y) is white. The point must be
// inside the bounds.
func (p *Binary) BitAt(x, y int) bool {
	i, mask := p.pixOffset(x, y)
	return p.Pix[i]&mask != 0
}

// SetBit sets the pixel at (x, y) to white or black. Points outside the
// bounds are ignored.
func (p *Binary) SetBit(x, y int, white bool) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i, mask := p.pixOffset(x, y)
	if white {
		p.Pix[i] |= mask
	} else {
		p.Pix[i] &^= mask
	}
}

// Set quantizes c through BinaryModel and stores the resulting bit.
func (p *Binary) Set(x, y int, c color.Color) {
	g := BinaryModel.Convert(c).(color.Gray)
	p.SetBit(x, y, g.Y != 0)
}

func (p *Binary) pixOffset(x, y int) (int, uint8) {
	x -= p.Rect.Min.X
	y -= p.Rect.Min.Y
	return y*p.Stride + x/8, 0x80 >> uint(x%8)
}

// Opaque always reports true.
func (p *Binary) Opaque() bool { return true }
