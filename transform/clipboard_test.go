package transform

import (
	"image"
	"image/color"
	"testing"
)

// stubClipboard is a deterministic stand-in for the OS clipboard.
type stubClipboard struct {
	img image.Image
}

func (s stubClipboard) ImageData() image.Image { return s.img }

func TestFromClipboard(t *testing.T) {
	want := createFilledImage(3, 3, color.NRGBA{255, 0, 255, 255})

	got, ok := FromClipboard(stubClipboard{img: want})
	if !ok {
		t.Fatal("expected an image from a populated clipboard")
	}
	if got != want {
		t.Error("the clipboard image should come back as-is")
	}
}

func TestFromClipboard_Empty(t *testing.T) {
	if img, ok := FromClipboard(stubClipboard{}); ok || img != nil {
		t.Error("an empty clipboard should report no image, not an error")
	}
}

func TestFromClipboard_NilService(t *testing.T) {
	if img, ok := FromClipboard(nil); ok || img != nil {
		t.Error("a missing service should collapse to no image")
	}
}
