package clipboard

import (
	"bytes"
	"image"
	"image/png"
	"sync"

	sysclip "golang.design/x/clipboard"
)

// System reads images from the operating-system clipboard. The zero value
// is ready to use.
//
// The underlying clipboard binding is initialized once, on first read. If
// initialization fails (for example, no display server is available) every
// subsequent read reports no image rather than an error.
type System struct{}

var _ Service = System{}

var (
	sysOnce sync.Once
	sysErr  error
)

// ImageData returns the clipboard's current image, or nil if the clipboard
// is unavailable, empty, or holds something that is not an image.
func (System) ImageData() image.Image {
	sysOnce.Do(func() {
		sysErr = sysclip.Init()
	})
	if sysErr != nil {
		return nil
	}

	data := sysclip.Read(sysclip.FmtImage)
	if len(data) == 0 {
		return nil
	}

	// Image payloads come across as PNG bytes.
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return img
}
