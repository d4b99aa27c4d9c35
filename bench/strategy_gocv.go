//go:build gocv

package bench

import (
	"image"

	"github.com/ArnaudCalmettes/binbench/imp"
)

func init() {
	strategies = append(strategies, Strategy{Name: "opencv", Kernel: opencv})
}

func opencv(img *image.Gray, level uint8) *image.Gray {
	out, err := imp.ThresholdOpenCV(img, level)
	if err != nil {
		panic(err)
	}
	return out
}
