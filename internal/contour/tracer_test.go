package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfloor/planscan/internal/edge"
)

// maskWithBlob sets a w x h rectangle of edge pixels at (x, y).
func maskWithBlob(m *edge.Mask, x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			m.Set(x+dx, y+dy)
		}
	}
}

func TestTraceTwoBlobsDropsSmallOne(t *testing.T) {
	m := edge.NewMask(100, 100)
	maskWithBlob(m, 10, 10, 10, 5) // 50 pixels
	maskWithBlob(m, 60, 60, 5, 1)  // 5 pixels, at most MinRegionPoints

	contours := Trace(m, TraceOptions{})
	require.Len(t, contours, 1)
	assert.Len(t, contours[0].Points, 50)
}

func TestTraceMinimumIsStrict(t *testing.T) {
	m := edge.NewMask(50, 50)
	maskWithBlob(m, 5, 5, 10, 1) // exactly 10 points: discarded
	assert.Empty(t, Trace(m, TraceOptions{}))

	m2 := edge.NewMask(50, 50)
	maskWithBlob(m2, 5, 5, 11, 1) // 11 points: emitted
	contours := Trace(m2, TraceOptions{})
	require.Len(t, contours, 1)
	assert.Len(t, contours[0].Points, 11)
}

func TestTraceDiagonalConnectivity(t *testing.T) {
	// A pure diagonal line is one 8-connected component.
	m := edge.NewMask(40, 40)
	for i := 0; i < 20; i++ {
		m.Set(i, i)
	}
	contours := Trace(m, TraceOptions{})
	require.Len(t, contours, 1)
	assert.Len(t, contours[0].Points, 20)
}

func TestTraceCapStopsCollectionNotTraversal(t *testing.T) {
	// A 60x30 solid block is 1800 connected pixels: one capped contour,
	// and the surplus pixels must not seed a second region.
	m := edge.NewMask(100, 100)
	maskWithBlob(m, 5, 5, 60, 30)

	contours := Trace(m, TraceOptions{})
	require.Len(t, contours, 1)
	assert.Len(t, contours[0].Points, MaxRegionPoints)
}

func TestTraceCustomCap(t *testing.T) {
	m := edge.NewMask(100, 100)
	maskWithBlob(m, 5, 5, 20, 20) // 400 pixels

	contours := Trace(m, TraceOptions{MaxPoints: 100})
	require.Len(t, contours, 1)
	assert.Len(t, contours[0].Points, 100)
}

func TestTraceEmptyMask(t *testing.T) {
	assert.Empty(t, Trace(edge.NewMask(30, 30), TraceOptions{}))
}

func TestTraceDisjointRegionsAreDisjoint(t *testing.T) {
	m := edge.NewMask(100, 100)
	maskWithBlob(m, 5, 5, 8, 4)   // 32 pixels
	maskWithBlob(m, 50, 50, 6, 6) // 36 pixels, not 8-connected to the first

	contours := Trace(m, TraceOptions{})
	require.Len(t, contours, 2)

	seen := make(map[Point]int)
	for i, c := range contours {
		for _, p := range c.Points {
			prev, dup := seen[p]
			require.False(t, dup, "point %v in contours %d and %d", p, prev, i)
			seen[p] = i
		}
	}
	assert.Len(t, seen, 68)
}

func TestTraceContourCarriesAreaAndBounds(t *testing.T) {
	m := edge.NewMask(100, 100)
	maskWithBlob(m, 10, 20, 12, 3)

	contours := Trace(m, TraceOptions{})
	require.Len(t, contours, 1)

	c := contours[0]
	assert.Equal(t, Bounds{X1: 10, Y1: 20, X2: 21, Y2: 22}, c.Bounds)
	assert.InDelta(t, Shoelace(c.Points), c.Area, 1e-9)
	assert.Empty(t, c.Kind)
}
