package imp

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func TestReadBytesGray(t *testing.T) {
	src := Synthetic(9, 5, 4)
	img, err := ReadBytes(encodePNG(t, src))
	require.NoError(t, err)

	gray := ToGray(img)
	assert.Equal(t, src.Rect, gray.Rect)
	assert.Equal(t, src.Pix, Clone(gray).Pix)
}

func TestReadBytesColor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{255, 255, 255, 255})
	src.Set(1, 0, color.RGBA{0, 0, 0, 255})

	img, err := ReadBytes(encodePNG(t, src))
	require.NoError(t, err)
	gray := ToGray(img)
	assert.Equal(t, uint8(255), gray.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), gray.GrayAt(1, 0).Y)
}

func TestReadBytesGarbage(t *testing.T) {
	_, err := ReadBytes([]byte("not an image"))
	assert.Error(t, err)
}

func TestReadGrayBMP(t *testing.T) {
	src := Synthetic(8, 8, 6)
	var b bytes.Buffer
	require.NoError(t, bmp.Encode(&b, src))

	path := filepath.Join(t.TempDir(), "input.bmp")
	require.NoError(t, os.WriteFile(path, b.Bytes(), 0o644))

	gray, err := ReadGray(path)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, Clone(gray).Pix)
}

func TestReadGrayMissing(t *testing.T) {
	_, err := ReadGray(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestToGrayKeepsGray(t *testing.T) {
	src := Synthetic(3, 3, 0)
	assert.Same(t, src, ToGray(src))
}

func TestReadBytesStandardFormats(t *testing.T) {
	src := Synthetic(8, 8, 2)

	var g bytes.Buffer
	require.NoError(t, gif.Encode(&g, src, nil))
	img, err := ReadBytes(g.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Rect, img.Bounds())

	var j bytes.Buffer
	require.NoError(t, jpeg.Encode(&j, src, nil))
	img, err = ReadBytes(j.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Rect, img.Bounds())
}
