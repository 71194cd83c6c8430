// Package visualize renders a processing result as a colored overlay image
// for visual inspection: walls black, doors red, windows blue, rooms green.
package visualize

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/openfloor/planscan/internal/contour"
	"github.com/openfloor/planscan/internal/floorplan"
)

// palette maps each category to its overlay color. Built once with colorful
// so the room fill can be derived by blending toward white.
var palette = map[contour.Kind]colorful.Color{
	contour.KindWall:   mustHex("#000000"),
	contour.KindDoor:   mustHex("#e03131"),
	contour.KindWindow: mustHex("#1c7ed6"),
	contour.KindRoom:   mustHex("#2f9e44"),
}

// Render draws the classified contours on a white canvas sized to the
// working image. Walls, doors and windows plot their traced points; rooms
// additionally fill their bounding box with a washed-out shade so enclosed
// areas read at a glance.
func Render(r *floorplan.Result) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, r.ImageWidth, r.ImageHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, room := range r.Rooms {
		fillBounds(canvas, room.Bounds, blendToWhite(palette[contour.KindRoom], 0.8))
	}
	for _, room := range r.Rooms {
		plotPoints(canvas, room.Points, palette[contour.KindRoom])
	}
	for _, wall := range r.Walls {
		plotPoints(canvas, wall.Points, palette[contour.KindWall])
	}
	for _, door := range r.Doors {
		plotPoints(canvas, door.Points, palette[contour.KindDoor])
	}
	for _, window := range r.Windows {
		plotPoints(canvas, window.Points, palette[contour.KindWindow])
	}
	return canvas
}

// WritePNG renders the overlay and encodes it as PNG.
func WritePNG(w io.Writer, r *floorplan.Result) error {
	return png.Encode(w, Render(r))
}

func plotPoints(canvas *image.NRGBA, points []contour.Point, c colorful.Color) {
	rgba := toNRGBA(c)
	for _, p := range points {
		canvas.SetNRGBA(p.X, p.Y, rgba)
	}
}

func fillBounds(canvas *image.NRGBA, b contour.Bounds, c colorful.Color) {
	rgba := toNRGBA(c)
	for y := b.Y1; y <= b.Y2; y++ {
		for x := b.X1; x <= b.X2; x++ {
			canvas.SetNRGBA(x, y, rgba)
		}
	}
}

// blendToWhite lightens a color by blending it toward white in a perceptual
// color space, t in [0, 1] where 1 is fully white.
func blendToWhite(c colorful.Color, t float64) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, t).Clamped()
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
