// Package raster decodes source images into the bounded working buffer the
// rest of the pipeline operates on.
package raster

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultMaxDimension bounds the working image: after decoding, the larger of
// width and height never exceeds it.
const DefaultMaxDimension = 800

// DecodeError reports that a byte stream could not be decoded as a raster
// image. It is the only failure the pipeline can surface.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "raster: undecodable image data: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Image is the working buffer: the decoded pixels, possibly downscaled so
// that max(Width, Height) <= the configured bound, plus the scale that maps
// the original dimensions onto the working ones.
type Image struct {
	// Pixels holds the working image with RGBA channels.
	Pixels *image.NRGBA

	// Width and Height are the working dimensions in pixels.
	Width  int
	Height int

	// OrigWidth and OrigHeight are the source dimensions before scaling.
	OrigWidth  int
	OrigHeight int

	// Scale satisfies working = round(original * Scale), always in (0, 1];
	// images are never upscaled.
	Scale float64

	// Format is the decoder that matched ("png", "jpeg", ...).
	Format string
}

// Decode turns an image byte stream into a working buffer.
//
// maxDimension bounds the larger working dimension; zero or negative selects
// DefaultMaxDimension. Aspect ratio is preserved: scale = min(bound/w,
// bound/h, 1) and each dimension is rounded independently. Downscaling uses
// Lanczos resampling.
//
// The only error returned is *DecodeError, when no registered decoder
// accepts the data.
func Decode(data []byte, maxDimension int) (*Image, error) {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	origWidth := src.Bounds().Dx()
	origHeight := src.Bounds().Dy()

	scale := 1.0
	if origWidth > maxDimension || origHeight > maxDimension {
		scale = math.Min(
			float64(maxDimension)/float64(origWidth),
			float64(maxDimension)/float64(origHeight),
		)
	}

	width := int(math.Round(float64(origWidth) * scale))
	height := int(math.Round(float64(origHeight) * scale))

	var pixels *image.NRGBA
	if scale < 1 {
		pixels = imaging.Resize(src, width, height, imaging.Lanczos)
	} else {
		pixels = imaging.Clone(src)
	}

	return &Image{
		Pixels:     pixels,
		Width:      width,
		Height:     height,
		OrigWidth:  origWidth,
		OrigHeight: origHeight,
		Scale:      scale,
		Format:     format,
	}, nil
}
