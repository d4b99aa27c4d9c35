package imp

import (
	"image"
	"image/draw"
)

// ToGray converts any image in a grayscale picture of the same size.
// Grayscale inputs are returned as is.
func ToGray(src image.Image) *image.Gray {
	if dst, ok := src.(*image.Gray); ok {
		return dst
	}

	dst := image.NewGray(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
