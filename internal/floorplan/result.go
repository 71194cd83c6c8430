package floorplan

import "github.com/openfloor/planscan/internal/contour"

// Result is the terminal artifact of one pipeline invocation: the classified
// contours plus the scale and dimensions of the working image they live in.
// It is owned by the invocation that produced it and immutable once returned.
type Result struct {
	Walls   []contour.Contour `json:"walls"`
	Doors   []contour.Contour `json:"doors"`
	Windows []contour.Contour `json:"windows"`
	Rooms   []contour.Contour `json:"rooms"`

	// Scale maps original dimensions onto the working ones, in (0, 1].
	Scale float64 `json:"scale"`

	// ImageWidth and ImageHeight are the working image dimensions.
	ImageWidth  int `json:"imageWidth"`
	ImageHeight int `json:"imageHeight"`
}

// Total returns the number of classified contours across all categories.
func (r *Result) Total() int {
	return len(r.Walls) + len(r.Doors) + len(r.Windows) + len(r.Rooms)
}
