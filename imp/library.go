package imp

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ThresholdLibrary binarizes img with imaging.AdjustFunc and converts the
// result back to a grayscale image with the same bounds as img.
func ThresholdLibrary(img *image.Gray, level uint8) *image.Gray {
	if img.Rect.Empty() {
		return img
	}
	adjusted := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		if c.R > level {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{A: 255}
	})

	// imaging results are always anchored at (0, 0).
	dst := image.NewGray(img.Rect)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		src := adjusted.Pix[y*adjusted.Stride:]
		out := dst.Pix[y*dst.Stride:]
		for x := 0; x < w; x++ {
			out[x] = src[x*4]
		}
	}
	return dst
}
