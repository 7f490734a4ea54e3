package transform

import "errors"

var (
	// ErrInvalidArgument marks dimension or region arguments that cannot
	// describe a valid output image.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedSource marks a Renderable whose source is not a
	// materialized raster.
	ErrUnsupportedSource = errors.New("unsupported renderable source")
)
