package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG builds a white image of the given size and encodes it.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeSmallImageKeepsDimensions(t *testing.T) {
	img, err := Decode(encodePNG(t, 400, 300), 0)
	require.NoError(t, err)

	assert.Equal(t, 400, img.Width)
	assert.Equal(t, 300, img.Height)
	assert.Equal(t, 1.0, img.Scale)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 400, img.Pixels.Bounds().Dx())
	assert.Equal(t, 300, img.Pixels.Bounds().Dy())
}

func TestDecodeDownscalesToBound(t *testing.T) {
	img, err := Decode(encodePNG(t, 1600, 1200), 800)
	require.NoError(t, err)

	assert.Equal(t, 800, img.Width)
	assert.Equal(t, 600, img.Height)
	assert.InDelta(t, 0.5, img.Scale, 1e-9)
	assert.Equal(t, 1600, img.OrigWidth)
	assert.Equal(t, 1200, img.OrigHeight)
}

func TestDecodeNeverUpscales(t *testing.T) {
	img, err := Decode(encodePNG(t, 100, 50), 800)
	require.NoError(t, err)
	assert.Equal(t, 1.0, img.Scale)
	assert.Equal(t, 100, img.Width)
	assert.Equal(t, 50, img.Height)
}

func TestDecodePreservesAspectWithRounding(t *testing.T) {
	// 1000x333 at bound 800: scale 0.8, height round(266.4) = 266.
	img, err := Decode(encodePNG(t, 1000, 333), 800)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Width)
	assert.Equal(t, 266, img.Height)
	assert.InDelta(t, 0.8, img.Scale, 1e-9)
	assert.LessOrEqual(t, img.Scale, 1.0)
	assert.Positive(t, img.Scale)
}

func TestDecodeTallImage(t *testing.T) {
	img, err := Decode(encodePNG(t, 300, 1200), 800)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Height)
	assert.Equal(t, 200, img.Width)
	assert.InDelta(t, 800.0/1200.0, img.Scale, 1e-9)
}

func TestDecodeJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 60, 40)), nil))

	img, err := Decode(buf.Bytes(), 0)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", img.Format)
	assert.Equal(t, 60, img.Width)
}

func TestDecodeGarbageFails(t *testing.T) {
	img, err := Decode([]byte("definitely not an image"), 0)
	assert.Nil(t, img)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.ErrorIs(t, err, decodeErr.Err)
	assert.Contains(t, err.Error(), "undecodable")
}

func TestDecodeEmptyInputFails(t *testing.T) {
	var decodeErr *DecodeError
	_, err := Decode(nil, 0)
	require.ErrorAs(t, err, &decodeErr)
}
