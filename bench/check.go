package bench

import (
	"fmt"
	"image"
	"time"
)

// Result is the output of one strategy.
type Result struct {
	Strategy string
	Image    *image.Gray
	Elapsed  time.Duration
}

// ShapeError reports a candidate whose bounds differ from the reference.
type ShapeError struct {
	Reference, Strategy string
	Want, Got           image.Rectangle
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: bounds %v differ from %s bounds %v", e.Strategy, e.Got, e.Reference, e.Want)
}

// MismatchError reports the first sample where a candidate disagrees with
// the reference.
type MismatchError struct {
	Reference, Strategy string
	X, Y                int
	Want, Got           uint8
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s disagrees with %s at (%d,%d): got %d, want %d",
		e.Strategy, e.Reference, e.X, e.Y, e.Got, e.Want)
}

// Check compares every candidate with ref sample by sample and fails on the
// first difference.
func Check(ref Result, candidates ...Result) error {
	want := ref.Image
	for _, c := range candidates {
		got := c.Image
		if got.Rect != want.Rect {
			return &ShapeError{
				Reference: ref.Strategy,
				Strategy:  c.Strategy,
				Want:      want.Rect,
				Got:       got.Rect,
			}
		}
		for y := want.Rect.Min.Y; y < want.Rect.Max.Y; y++ {
			for x := want.Rect.Min.X; x < want.Rect.Max.X; x++ {
				w, g := want.GrayAt(x, y).Y, got.GrayAt(x, y).Y
				if w != g {
					return &MismatchError{
						Reference: ref.Strategy,
						Strategy:  c.Strategy,
						X:         x,
						Y:         y,
						Want:      w,
						Got:       g,
					}
				}
			}
		}
	}
	return nil
}
