//go:build gocv

package imp

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ThresholdOpenCV binarizes img through OpenCV's cv::threshold. It requires
// an OpenCV installation and is only built with the gocv tag.
func ThresholdOpenCV(img *image.Gray, level uint8) (*image.Gray, error) {
	if img.Rect.Empty() {
		return img, nil
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8U, Clone(img).Pix)
	if err != nil {
		return nil, fmt.Errorf("wrapping image in a Mat: %w", err)
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	gocv.Threshold(src, &dst, float32(level), 255, gocv.ThresholdBinary)

	out := image.NewGray(img.Rect)
	copy(out.Pix, dst.ToBytes())
	return out, nil
}
