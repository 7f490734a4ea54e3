// Package raster models the pixel formats the transform operations work in.
//
// Images are plain image.Image values. Four formats are distinguished:
//
//   - RGB: packed 3-byte opaque color (*raster.RGB)
//   - ARGB: 8-bit color with an alpha channel (*image.RGBA when alpha is
//     premultiplied, *image.NRGBA when it is not)
//   - Gray: 8-bit grayscale (*image.Gray)
//   - Binary: 1-bit monochrome with packed rows (*raster.Binary)
//
// The RGB and Binary types exist because the standard library has no
// alpha-free or sub-byte pixel layouts. Both implement draw.Image, so any
// code that paints into a draw.Image can target them directly.
//
// # Format Queries
//
// FormatOf and HasAlpha classify an image by its storage format, not by its
// pixel contents: a fully opaque *image.NRGBA still reports HasAlpha true
// because its format reserves an alpha channel. Images in formats outside
// the modeled set (decoded YCbCr, paletted, 16-bit) are classified by
// whether their color model can represent transparency.
//
// # Thread Safety
//
// All functions are stateless. The image types are not synchronized; callers
// mutating a shared image must coordinate access themselves.
package raster
