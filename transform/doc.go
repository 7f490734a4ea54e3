// Package transform provides stateless raster-image transforms: scaling,
// cropping, binarization, grayscale conversion, alpha removal, color
// inversion, rotation, and reading an image from the system clipboard.
//
// All operations consume standard image.Image values and allocate a fresh,
// independently owned result; inputs are never mutated. The two documented
// exceptions return the input instance itself: ScaleRenderable when the
// scale factor is effectively 1.0, and RemoveAlpha when the input has no
// alpha channel.
//
// # Pixel Formats
//
// Scaling and cropping normalize their output to color: an opaque source of
// any format (including grayscale and binary) yields a packed-RGB result,
// and a source with an alpha channel yields an ARGB result. Inversion,
// rotation and cloning preserve the input's format instead. See the raster
// package for the format model.
//
// # Error Handling
//
// Operations that can fail validate their arguments before allocating, so a
// failed call has no observable side effect. Errors wrap the package
// sentinels ErrInvalidArgument and ErrUnsupportedSource; everything else,
// including clipboard unavailability, resolves to a successful result.
//
// # Thread Safety
//
// Every function is safe for concurrent use. The only shared state is the
// inversion lookup table, which is built during package initialization and
// read-only afterwards. The system clipboard is externally mutable; reads
// are best-effort snapshots with no consistency guarantee between calls.
package transform
