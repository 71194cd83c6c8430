// Package contour extracts connected regions of edge pixels from a binary
// mask and carries the geometric facts downstream stages need: the point set,
// the shoelace area and the axis-aligned bounding box.
package contour

import "math"

// Kind is the structural category assigned to a contour by the classifier.
type Kind string

// Structural categories. Every contour that survives classification belongs
// to exactly one of them.
const (
	KindWall   Kind = "wall"
	KindDoor   Kind = "door"
	KindWindow Kind = "window"
	KindRoom   Kind = "room"
)

// Point is a 2D pixel coordinate in the working image, (0,0) at the top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds is the axis-aligned rectangle tightly enclosing a point set.
// (X1, Y1) is the minimum corner, (X2, Y2) the maximum corner, both inclusive.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Width returns the horizontal extent of the box in pixels.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical extent of the box in pixels.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// Contour is one traced connected edge region.
//
// Points hold a connected path through the component; consumers must not rely
// on any particular ordering beyond that. A contour is created once by the
// tracer and is immutable afterwards except for the Kind tag, which the
// classifier assigns exactly once. Label and LabelConfidence are only set on
// rooms when OCR labeling is enabled.
type Contour struct {
	Points          []Point `json:"points"`
	Area            float64 `json:"area"`
	Bounds          Bounds  `json:"bounds"`
	Kind            Kind    `json:"type,omitempty"`
	Label           string  `json:"label,omitempty"`
	LabelConfidence float64 `json:"labelConfidence,omitempty"`
}

// Shoelace returns the absolute polygon area of a point sequence via the
// shoelace formula. The points are treated as a closed polygon in the order
// given; an empty or degenerate sequence has area zero.
func Shoelace(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		p := points[i]
		q := points[(i+1)%n]
		sum += float64(p.X*q.Y - q.X*p.Y)
	}
	return math.Abs(sum) / 2
}

// BoundsOf returns the tight axis-aligned bounding box of a non-empty point
// set.
func BoundsOf(points []Point) Bounds {
	b := Bounds{X1: points[0].X, Y1: points[0].Y, X2: points[0].X, Y2: points[0].Y}
	for _, p := range points[1:] {
		if p.X < b.X1 {
			b.X1 = p.X
		}
		if p.X > b.X2 {
			b.X2 = p.X
		}
		if p.Y < b.Y1 {
			b.Y1 = p.Y
		}
		if p.Y > b.Y2 {
			b.Y2 = p.Y
		}
	}
	return b
}
