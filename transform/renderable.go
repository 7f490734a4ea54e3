package transform

import (
	"fmt"
	"image"
	"math"
)

// Source is anything that can eventually produce pixels. A materialized
// raster source implements image.Image; deferred sources (vector pages,
// lazily rendered content) typically expose only their bounds.
type Source interface {
	Bounds() image.Rectangle
}

// Renderable pairs a pixel source with auxiliary thumbnail and metadata
// slots. The transforms here carry the slots but never derive their
// contents.
type Renderable struct {
	Source     Source
	Thumbnails []image.Image
	Metadata   map[string]string
}

// scaleIdentityTolerance is the band around 1.0 inside which scaling is
// treated as the identity and skipped entirely.
const scaleIdentityTolerance = 0.001

// ScaleRenderable resizes a renderable's raster by the given factor.
//
// The source must be a materialized raster (an image.Image); deferred or
// vector sources return an ErrUnsupportedSource-wrapped error. When scale
// is within 0.001 of 1.0 the input renderable is returned unchanged, with
// no allocation.
//
// Target dimensions are the truncated products scale*width and
// scale*height, resampled by ScaleToSize. The thumbnail and metadata slots
// of the result are cleared: they described the original size and are not
// re-derived for the new one.
func ScaleRenderable(r *Renderable, scale float64) (*Renderable, error) {
	img, ok := r.Source.(image.Image)
	if !ok {
		return nil, fmt.Errorf("renderable source %T is not a materialized raster: %w",
			r.Source, ErrUnsupportedSource)
	}

	if math.Abs(scale-1.0) < scaleIdentityTolerance {
		return r, nil
	}

	b := img.Bounds()
	scaled, err := ScaleToSize(img, int(scale*float64(b.Dx())), int(scale*float64(b.Dy())))
	if err != nil {
		return nil, err
	}
	return &Renderable{Source: scaled}, nil
}
