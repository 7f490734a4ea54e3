package clipboard

import "image"

// Service reads image-typed content from a clipboard. Implementations
// return nil when the clipboard is empty, holds non-image data, or cannot
// be read for any reason; they never surface errors.
type Service interface {
	ImageData() image.Image
}
