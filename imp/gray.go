package imp

import (
	"image"
	"math/rand"
)

// Clone returns an independent copy of img with the same bounds. The copy is
// always contiguous (its stride equals its width).
func Clone(img *image.Gray) *image.Gray {
	dst := image.NewGray(img.Rect)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], img.Pix[y*img.Stride:y*img.Stride+w])
	}
	return dst
}

// ToRows copies the samples of img into one freshly allocated slice per row.
func ToRows(img *image.Gray) [][]uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rows := make([][]uint8, h)
	for y := range rows {
		rows[y] = make([]uint8, w)
		copy(rows[y], img.Pix[y*img.Stride:y*img.Stride+w])
	}
	return rows
}

// FromRows builds a grayscale image covering rect from a slice of rows.
// Rows shorter than rect leave the remaining samples black.
func FromRows(rows [][]uint8, rect image.Rectangle) *image.Gray {
	dst := image.NewGray(rect)
	for y, row := range rows {
		if y >= rect.Dy() {
			break
		}
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rect.Dx()], row)
	}
	return dst
}

// Synthetic generates a deterministic w×h test picture: a diagonal gradient
// overlaid with noise drawn from seed.
func Synthetic(w, h int, seed int64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	rnd := rand.New(rand.NewSource(seed))
	den := w + h - 2
	if den < 1 {
		den = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := (x+y)*255/den + rnd.Intn(33) - 16
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			img.Pix[y*img.Stride+x] = uint8(v)
		}
	}
	return img
}
