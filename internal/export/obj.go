package export

import (
	"fmt"
	"io"

	"github.com/openfloor/planscan/internal/floorplan"
)

// Wavefront OBJ constants: plan pixels map to meters at 0.05 m/px and walls
// extrude to 3 m.
const (
	DefaultMetersPerPixel = 0.05
	DefaultWallHeight     = 3.0
)

// OBJOptions tunes the OBJ exporter. Zero values select the defaults.
type OBJOptions struct {
	MetersPerPixel float64
	WallHeight     float64
}

// WriteOBJ emits a minimal 3D model: one axis-aligned box per wall contour,
// extruded from the contour's bounding box. Each box contributes 8 vertices
// and 6 quad faces; vertex indices are 1-based and increase monotonically
// across walls, so the output is a single self-contained OBJ object.
func WriteOBJ(w io.Writer, r *floorplan.Result, opts OBJOptions) error {
	scale := opts.MetersPerPixel
	if scale == 0 {
		scale = DefaultMetersPerPixel
	}
	height := opts.WallHeight
	if height == 0 {
		height = DefaultWallHeight
	}

	if _, err := fmt.Fprintf(w, "# planscan wall model: %d walls\no floorplan\n", len(r.Walls)); err != nil {
		return err
	}

	for i, wall := range r.Walls {
		x1 := float64(wall.Bounds.X1) * scale
		y1 := float64(wall.Bounds.Y1) * scale
		x2 := float64(wall.Bounds.X2) * scale
		y2 := float64(wall.Bounds.Y2) * scale

		// Bottom ring then top ring, counterclockwise from (x1, y1).
		verts := [8][3]float64{
			{x1, y1, 0}, {x2, y1, 0}, {x2, y2, 0}, {x1, y2, 0},
			{x1, y1, height}, {x2, y1, height}, {x2, y2, height}, {x1, y2, height},
		}
		for _, v := range verts {
			if _, err := fmt.Fprintf(w, "v %.4f %.4f %.4f\n", v[0], v[1], v[2]); err != nil {
				return err
			}
		}

		base := i * 8
		faces := [6][4]int{
			{1, 2, 3, 4}, // bottom
			{5, 6, 7, 8}, // top
			{1, 2, 6, 5},
			{2, 3, 7, 6},
			{3, 4, 8, 7},
			{4, 1, 5, 8},
		}
		for _, f := range faces {
			if _, err := fmt.Fprintf(w, "f %d %d %d %d\n",
				base+f[0], base+f[1], base+f[2], base+f[3]); err != nil {
				return err
			}
		}
	}
	return nil
}
