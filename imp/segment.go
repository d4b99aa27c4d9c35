package imp

import (
	"errors"
	"image"
	"image/color"
)

var (
	Black = color.Gray{0}
	White = color.Gray{255}
)

// Threshold performs simple binarization of a grayscale image: samples
// strictly greater than level become White, all others Black.
// src and dst may be the same image.
func Threshold(src, dst *image.Gray, level uint8) error {
	if src.Bounds() != dst.Bounds() {
		return errors.New("src and dst should have the same bounds")
	}

	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			if src.GrayAt(x, y).Y > level {
				dst.SetGray(x, y, White)
			} else {
				dst.SetGray(x, y, Black)
			}
		}
	}
	return nil
}

// ThresholdDirect binarizes img in place by walking its backing buffer.
// Contiguous images are scanned in a single pass, others row by row using
// the image stride.
func ThresholdDirect(img *image.Gray, level uint8) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return img
	}

	if img.Stride == w {
		binarize(img.Pix[:w*h], level)
		return img
	}
	for y := 0; y < h; y++ {
		off := y * img.Stride
		binarize(img.Pix[off:off+w], level)
	}
	return img
}

// ThresholdRows binarizes img through a slice-of-rows adapter: samples are
// copied out into one slice per row, thresholded there, and copied back into
// a new image.
func ThresholdRows(img *image.Gray, level uint8) *image.Gray {
	rows := ToRows(img)
	for _, row := range rows {
		binarize(row, level)
	}
	return FromRows(rows, img.Rect)
}

func binarize(buf []uint8, level uint8) {
	for i, v := range buf {
		if v > level {
			buf[i] = White.Y
		} else {
			buf[i] = Black.Y
		}
	}
}
