// Package classify assigns a structural category to traced contours.
//
// Classification is a pure decision table over a contour's absolute area, its
// bounding-box aspect ratio and whether the box sits close to the image
// boundary. It keeps no state across contours and has no side effects.
package classify

import "github.com/openfloor/planscan/internal/contour"

// aspectEpsilon guards the aspect division against a zero-height box.
const aspectEpsilon = 1e-9

// Thresholds are the decision-table constants. They are exposed through
// configuration but are not expected to change in normal use.
type Thresholds struct {
	// Area bands. A contour with area > WallMinArea is a wall or room;
	// (DoorMinArea, WallMinArea] is a door or wall; (WindowMinArea,
	// DoorMinArea] is a window or dropped; anything at or below
	// WindowMinArea is dropped.
	WallMinArea   float64
	DoorMinArea   float64
	WindowMinArea float64

	// Aspect bands per category.
	WallAspectHigh   float64 // above this (or below WallAspectLow) a large contour is a wall
	WallAspectLow    float64
	DoorAspectLow    float64 // doors sit strictly inside (DoorAspectLow, DoorAspectHigh)
	DoorAspectHigh   float64
	WindowAspectHigh float64 // windows are elongated: above this or below WindowAspectLow
	WindowAspectLow  float64

	// BoundaryMargin is how close (in pixels) a bounding box must come to
	// any image edge to count as boundary-touching.
	BoundaryMargin int
}

// DefaultThresholds returns the stock decision-table constants.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WallMinArea:      5000,
		DoorMinArea:      1000,
		WindowMinArea:    200,
		WallAspectHigh:   3,
		WallAspectLow:    0.33,
		DoorAspectLow:    0.4,
		DoorAspectHigh:   2.5,
		WindowAspectHigh: 2,
		WindowAspectLow:  0.5,
		BoundaryMargin:   5,
	}
}

// Classify decides the category of one contour within an imageWidth x
// imageHeight working image. The second return is false when no category
// fits and the contour should be dropped.
//
// Rules, evaluated once against area A and aspect = width/(height+eps):
//
//   - A > WallMinArea: boundary-touching or strongly elongated -> wall,
//     otherwise -> room (an enclosed interior region).
//   - DoorMinArea < A <= WallMinArea: near-square aspect -> door,
//     otherwise -> wall (interior wall segment).
//   - WindowMinArea < A <= DoorMinArea: elongated -> window, otherwise
//     dropped. Small near-square regions fit no category and there is
//     deliberately no fallback.
//   - A <= WindowMinArea: dropped as noise.
func Classify(c contour.Contour, imageWidth, imageHeight int, t Thresholds) (contour.Kind, bool) {
	area := c.Area
	aspect := float64(c.Bounds.Width()) / (float64(c.Bounds.Height()) + aspectEpsilon)

	switch {
	case area > t.WallMinArea:
		if touchesBoundary(c.Bounds, imageWidth, imageHeight, t.BoundaryMargin) ||
			aspect > t.WallAspectHigh || aspect < t.WallAspectLow {
			return contour.KindWall, true
		}
		return contour.KindRoom, true

	case area > t.DoorMinArea:
		if aspect > t.DoorAspectLow && aspect < t.DoorAspectHigh {
			return contour.KindDoor, true
		}
		return contour.KindWall, true

	case area > t.WindowMinArea:
		if aspect > t.WindowAspectHigh || aspect < t.WindowAspectLow {
			return contour.KindWindow, true
		}
		return "", false

	default:
		return "", false
	}
}

// touchesBoundary reports whether the box comes within margin pixels of any
// edge of the working image.
func touchesBoundary(b contour.Bounds, imageWidth, imageHeight, margin int) bool {
	return b.X1 < margin || b.Y1 < margin ||
		imageWidth-1-b.X2 < margin || imageHeight-1-b.Y2 < margin
}
