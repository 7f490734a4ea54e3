package transform

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/ironsheep/image-transforms/raster"
)

// Rotate rotates an image by the given angle in degrees, clockwise for
// positive angles in the usual top-left-origin coordinate system. Any
// angle is accepted; right angles take the same trigonometric path as
// everything else.
//
// The output is the minimal axis-aligned bounding box of the rotated
// rectangle, floor(w*|cos|+h*|sin|) by floor(h*|cos|+w*|sin|), with the
// source centered inside it and resampled bicubically (Catmull-Rom). The
// pixel format is preserved; areas the rotated source does not cover keep
// the freshly allocated buffer's zero value, which is fully transparent
// for ARGB formats and black for RGB, grayscale and binary.
func Rotate(img image.Image, angle float64) image.Image {
	theta := angle * math.Pi / 180
	sin, cos := math.Sin(theta), math.Cos(theta)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	newW := int(math.Floor(float64(w)*math.Abs(cos) + float64(h)*math.Abs(sin)))
	newH := int(math.Floor(float64(h)*math.Abs(cos) + float64(w)*math.Abs(sin)))

	dst := raster.NewLike(img, newW, newH)

	// Map source space to destination space: rotate theta about the source
	// center (w/2, h/2), then shift by ((newW-w)/2, (newH-h)/2) so the
	// rotated rectangle sits centered in the new bounding box. The halved
	// offsets truncate; keeping the integer division keeps right-angle
	// rotations on the pixel grid.
	tx := float64((newW - w) / 2)
	ty := float64((newH - h) / 2)
	cx := float64(w / 2)
	cy := float64(h / 2)

	// Fold the source's Min offset into the pivot so the matrix applies to
	// absolute source coordinates.
	ox := float64(b.Min.X) + cx
	oy := float64(b.Min.Y) + cy

	m := f64.Aff3{
		cos, -sin, tx + cx - cos*ox + sin*oy,
		sin, cos, ty + cy - sin*ox - cos*oy,
	}
	xdraw.CatmullRom.Transform(dst, m, img, b, xdraw.Over, nil)
	return dst
}
