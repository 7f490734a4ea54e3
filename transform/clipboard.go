package transform

import (
	"image"

	"github.com/ironsheep/image-transforms/clipboard"
)

// FromClipboard reads image-typed content from the given clipboard
// service. The second return value reports whether an image was present.
//
// Every failure mode collapses to a plain "no image" result: an empty
// clipboard, non-image content, an unavailable service and a nil service
// all return (nil, false). Clipboard trouble is never an error.
func FromClipboard(svc clipboard.Service) (image.Image, bool) {
	if svc == nil {
		return nil, false
	}
	img := svc.ImageData()
	if img == nil {
		return nil, false
	}
	return img, true
}
