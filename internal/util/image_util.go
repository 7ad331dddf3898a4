// Package util contains small helpers shared by the conversion backends.
package util

import (
	"image"
	"image/color"
	"image/draw"
)

// opaquer is implemented by the stdlib image types that can report whether
// every pixel is fully opaque.
type opaquer interface {
	Opaque() bool
}

// NeedsFlatten reports whether an image carries transparency or palette
// indexing that formats like JPEG and PDF cannot represent.
func NeedsFlatten(img image.Image) bool {
	if _, ok := img.(*image.Paletted); ok {
		return true
	}
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	return false
}

// Flatten composites an image over a white background, discarding any alpha
// channel or palette. Encoding a transparent image straight to JPEG would
// otherwise produce black backgrounds or backend-specific errors.
func Flatten(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(flat, bounds, img, bounds.Min, draw.Over)
	return flat
}
