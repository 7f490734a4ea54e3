package transform

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/image-transforms/raster"
)

func TestScaleToSize_Dimensions(t *testing.T) {
	img := createFilledImage(10, 5, color.NRGBA{200, 100, 50, 255})

	got, err := ScaleToSize(img, 7, 13)
	if err != nil {
		t.Fatalf("ScaleToSize failed: %v", err)
	}

	b := got.Bounds()
	if b.Dx() != 7 || b.Dy() != 13 {
		t.Errorf("dimensions: got %dx%d, want 7x13", b.Dx(), b.Dy())
	}
}

func TestScaleToSize_OpaqueSourceStaysOpaque(t *testing.T) {
	img := createFilledRGB(10, 10, color.NRGBA{255, 0, 0, 255})

	got, err := ScaleToSize(img, 20, 20)
	if err != nil {
		t.Fatalf("ScaleToSize failed: %v", err)
	}

	out, ok := got.(*raster.RGB)
	if !ok {
		t.Fatalf("result type: got %T, want *raster.RGB", got)
	}
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 20 {
		t.Errorf("dimensions: got %dx%d, want 20x20", out.Bounds().Dx(), out.Bounds().Dy())
	}
	if raster.HasAlpha(out) {
		t.Error("scaled opaque image should not gain an alpha channel")
	}
}

func TestScaleToSize_AlphaSourceKeepsAlpha(t *testing.T) {
	img := createFilledImage(10, 10, color.NRGBA{255, 0, 0, 128})

	got, err := ScaleToSize(img, 20, 20)
	if err != nil {
		t.Fatalf("ScaleToSize failed: %v", err)
	}

	if _, ok := got.(*image.NRGBA); !ok {
		t.Fatalf("result type: got %T, want *image.NRGBA", got)
	}
	if !raster.HasAlpha(got) {
		t.Error("scaled ARGB image should keep its alpha channel")
	}
}

func TestScaleToSize_NormalizesGrayscale(t *testing.T) {
	img := createFilledGray(8, 8, 77)

	got, err := ScaleToSize(img, 16, 16)
	if err != nil {
		t.Fatalf("ScaleToSize failed: %v", err)
	}

	// Grayscale widens to color; the format is not preserved.
	if _, ok := got.(*raster.RGB); !ok {
		t.Fatalf("result type: got %T, want *raster.RGB", got)
	}
}

func TestScaleToSize_UniformColorPreserved(t *testing.T) {
	img := createFilledRGB(10, 10, color.NRGBA{30, 60, 90, 255})

	got, err := ScaleToSize(img, 20, 20)
	if err != nil {
		t.Fatalf("ScaleToSize failed: %v", err)
	}

	// Resampling a uniform field must reproduce the same color everywhere.
	for _, p := range []image.Point{{0, 0}, {10, 10}, {19, 19}} {
		c := color.NRGBAModel.Convert(got.At(p.X, p.Y)).(color.NRGBA)
		if c.R != 30 || c.G != 60 || c.B != 90 {
			t.Errorf("pixel (%d,%d): got (%d,%d,%d), want (30,60,90)", p.X, p.Y, c.R, c.G, c.B)
		}
	}
}

func TestScaleToSize_InvalidDimensions(t *testing.T) {
	img := createFilledImage(10, 10, color.NRGBA{0, 0, 0, 255})

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScaleToSize(img, tt.w, tt.h)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error: got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestScaleToSize_DoesNotMutateSource(t *testing.T) {
	img := createFilledImage(10, 10, color.NRGBA{10, 20, 30, 255})
	before := append([]uint8(nil), img.Pix...)

	if _, err := ScaleToSize(img, 5, 5); err != nil {
		t.Fatalf("ScaleToSize failed: %v", err)
	}

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("source pixel buffer changed at byte %d", i)
		}
	}
}
