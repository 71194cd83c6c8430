package contour

import "github.com/openfloor/planscan/internal/edge"

// MinRegionPoints is the smallest point count a region may have and still be
// emitted as a contour. Regions at or below this size are noise.
const MinRegionPoints = 10

// MaxRegionPoints caps how many points a single region collects. The flood
// fill keeps marking pixels visited past the cap so a capped region can never
// seed new regions; the surplus pixels are simply not collected. Large
// contiguous structures (an entire building outline) are therefore
// under-sampled, and downstream area and bounds depend on which points
// survive.
const MaxRegionPoints = 1000

// TraceOptions tunes the region tracer. Zero values select the defaults.
type TraceOptions struct {
	MinPoints int // discard regions with <= MinPoints points
	MaxPoints int // stop collecting points per region beyond this
}

// Trace extracts the disjoint connected components of the edge mask.
//
// Pixels are scanned in raster order. Each unvisited edge pixel seeds an
// 8-connected, depth-first, stack-based flood fill that collects every
// reachable edge pixel into one region. Every popped pixel is marked in the
// visited arena, edge or not, so each pixel is consumed at most once
// globally. The visited arena is local to this call; nothing is shared
// between invocations.
//
// Emitted contours carry their shoelace area and bounding box; the Kind tag
// is left empty for the classifier.
func Trace(mask *edge.Mask, opts TraceOptions) []Contour {
	minPoints := opts.MinPoints
	if minPoints == 0 {
		minPoints = MinRegionPoints
	}
	maxPoints := opts.MaxPoints
	if maxPoints == 0 {
		maxPoints = MaxRegionPoints
	}

	width := mask.Width()
	height := mask.Height()
	visited := edge.NewMask(width, height)

	var contours []Contour
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !mask.At(x, y) || visited.At(x, y) {
				continue
			}
			points := floodFill(mask, visited, x, y, maxPoints)
			if len(points) <= minPoints {
				continue
			}
			contours = append(contours, Contour{
				Points: points,
				Area:   Shoelace(points),
				Bounds: BoundsOf(points),
			})
		}
	}
	return contours
}

// floodFill walks one connected component with an explicit stack, avoiding
// recursion depth issues on large regions. Collection stops at maxPoints but
// traversal continues so the whole component ends up visited.
func floodFill(mask, visited *edge.Mask, startX, startY, maxPoints int) []Point {
	points := make([]Point, 0, 64)
	stack := []Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= mask.Width() || p.Y < 0 || p.Y >= mask.Height() {
			continue
		}
		if visited.At(p.X, p.Y) {
			continue
		}
		visited.Set(p.X, p.Y)
		if !mask.At(p.X, p.Y) {
			continue
		}

		if len(points) < maxPoints {
			points = append(points, p)
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
	return points
}
