package floorplan

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfloor/planscan/internal/contour"
	"github.com/openfloor/planscan/internal/raster"
)

// encodePlan encodes a white canvas with black rectangles drawn on it, a
// crude stand-in for a floor-plan render.
func encodePlan(t *testing.T, width, height int, bars ...image.Rectangle) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for _, bar := range bars {
		for y := bar.Min.Y; y < bar.Max.Y; y++ {
			for x := bar.Min.X; x < bar.Max.X; x++ {
				img.Set(x, y, color.Black)
			}
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func allContours(r *Result) []contour.Contour {
	var all []contour.Contour
	all = append(all, r.Walls...)
	all = append(all, r.Doors...)
	all = append(all, r.Windows...)
	all = append(all, r.Rooms...)
	return all
}

func TestProcessUniformImageYieldsEmptyResult(t *testing.T) {
	p := New(Options{}, nil)
	result, err := p.Process(context.Background(), encodePlan(t, 300, 200))
	require.NoError(t, err)

	assert.Empty(t, result.Walls)
	assert.Empty(t, result.Doors)
	assert.Empty(t, result.Windows)
	assert.Empty(t, result.Rooms)
	assert.Zero(t, result.Total())
	assert.Equal(t, 300, result.ImageWidth)
	assert.Equal(t, 200, result.ImageHeight)
	assert.Equal(t, 1.0, result.Scale)
}

func TestProcessUndecodableInputFails(t *testing.T) {
	p := New(Options{}, nil)
	result, err := p.Process(context.Background(), []byte("not an image"))

	assert.Nil(t, result, "no partial result on failure")
	var decodeErr *raster.DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestProcessFindsStructure(t *testing.T) {
	data := encodePlan(t, 400, 200, image.Rect(50, 90, 350, 110))

	p := New(Options{}, nil)
	result, err := p.Process(context.Background(), data)
	require.NoError(t, err)
	require.Positive(t, result.Total())

	for _, c := range allContours(result) {
		assert.Greater(t, len(c.Points), 10)
		assert.LessOrEqual(t, len(c.Points), 1000)
		assert.InDelta(t, contour.Shoelace(c.Points), c.Area, 1e-9)
		assert.NotEmpty(t, c.Kind)
	}
}

func TestProcessCategoriesMatchKindTags(t *testing.T) {
	data := encodePlan(t, 400, 300,
		image.Rect(40, 40, 360, 60),
		image.Rect(40, 240, 360, 260),
		image.Rect(100, 120, 140, 160))

	p := New(Options{}, nil)
	result, err := p.Process(context.Background(), data)
	require.NoError(t, err)

	for _, c := range result.Walls {
		assert.Equal(t, contour.KindWall, c.Kind)
	}
	for _, c := range result.Doors {
		assert.Equal(t, contour.KindDoor, c.Kind)
	}
	for _, c := range result.Windows {
		assert.Equal(t, contour.KindWindow, c.Kind)
	}
	for _, c := range result.Rooms {
		assert.Equal(t, contour.KindRoom, c.Kind)
	}
}

func TestProcessIsDeterministic(t *testing.T) {
	data := encodePlan(t, 400, 200, image.Rect(50, 90, 350, 110))
	p := New(Options{}, nil)

	first, err := p.Process(context.Background(), data)
	require.NoError(t, err)
	second, err := p.Process(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestProcessDownscalesLargeImages(t *testing.T) {
	data := encodePlan(t, 1600, 800)
	p := New(Options{}, nil)

	result, err := p.Process(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 800, result.ImageWidth)
	assert.Equal(t, 400, result.ImageHeight)
	assert.InDelta(t, 0.5, result.Scale, 1e-9)
}

func TestProcessHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(Options{}, nil)
	result, err := p.Process(ctx, encodePlan(t, 200, 200))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessConcurrentInvocations(t *testing.T) {
	data := encodePlan(t, 400, 200, image.Rect(50, 90, 350, 110))
	p := New(Options{}, nil)

	reference, err := p.Process(context.Background(), data)
	require.NoError(t, err)

	results := make(chan *Result, 8)
	for i := 0; i < 8; i++ {
		go func() {
			r, err := p.Process(context.Background(), data)
			assert.NoError(t, err)
			results <- r
		}()
	}
	for i := 0; i < 8; i++ {
		assert.Equal(t, reference, <-results)
	}
}
