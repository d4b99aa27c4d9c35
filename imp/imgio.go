package imp

import (
	"bytes"
	"image"
	"io"
	"os"

	// Extra input formats on top of the ones the standard library decodes.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// ReadFile reads an image from a file.
func ReadFile(filename string) (image.Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ReadBytes(data)
}

// ReadBytes reads an image from raw bytes.
func ReadBytes(data []byte) (image.Image, error) {
	b := bytes.NewBuffer(data)
	return Read(b)
}

// Read reads an image from a io.Reader, applying its EXIF orientation if any.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

// ReadGray reads an image file and converts it to grayscale.
func ReadGray(filename string) (*image.Gray, error) {
	img, err := ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ToGray(img), nil
}
