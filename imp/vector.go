package imp

import (
	"encoding/binary"
	"image"
)

// lanes is the number of samples packed into one word.
const lanes = 8

const (
	laneHigh = 0x8080808080808080
	laneLow  = 0x0101010101010101
)

// ThresholdVectorized binarizes img in place, eight samples at a time.
//
// Each row is loaded into 64-bit words; a greater-than mask is computed for
// all lanes at once and the output is selected through it, so no sample is
// branched on individually. A row tail shorter than a word is padded into a
// scratch word and goes through the same path.
func ThresholdVectorized(img *image.Gray, level uint8) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return img
	}

	fg := broadcast(White.Y)
	bg := broadcast(Black.Y)

	var tail [lanes]byte
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		n := len(row) - len(row)%lanes
		for i := 0; i < n; i += lanes {
			word := binary.LittleEndian.Uint64(row[i:])
			mask := greaterMask(word, level)
			binary.LittleEndian.PutUint64(row[i:], mask&fg|^mask&bg)
		}
		if n < len(row) {
			tail = [lanes]byte{}
			copy(tail[:], row[n:])
			word := binary.LittleEndian.Uint64(tail[:])
			mask := greaterMask(word, level)
			binary.LittleEndian.PutUint64(tail[:], mask&fg|^mask&bg)
			copy(row[n:], tail[:])
		}
	}
	return img
}

// broadcast replicates v into every lane of a word.
func broadcast(v uint8) uint64 {
	return uint64(v) * laneLow
}

// greaterMask returns a word whose lanes are 0xFF where the matching lane of
// x is strictly greater than level, and 0x00 elsewhere.
func greaterMask(x uint64, level uint8) uint64 {
	if level == 255 {
		return 0
	}
	// x > level  <=>  x >= level+1
	ge := greaterEqualHigh(x, broadcast(level+1))
	return (ge >> 7) * 0xFF
}

// greaterEqualHigh compares x and y lane by lane as unsigned bytes and
// returns laneHigh bits set on lanes where x >= y.
//
// The low seven bits are compared by subtracting y's low bits from x with the
// high bit forced on, which can never borrow across lanes. The high bits are
// then combined directly.
func greaterEqualHigh(x, y uint64) uint64 {
	xh, yh := x&laneHigh, y&laneHigh
	low := ((x | laneHigh) - (y &^ laneHigh)) & laneHigh
	return (xh &^ yh) | (^(xh ^ yh) & low & laneHigh)
}
