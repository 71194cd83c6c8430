package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShoelaceSquare(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.InDelta(t, 100.0, Shoelace(square), 1e-9)
}

func TestShoelaceOrientationIndependent(t *testing.T) {
	cw := []Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
	ccw := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	assert.InDelta(t, Shoelace(ccw), Shoelace(cw), 1e-9)
}

func TestShoelaceTriangle(t *testing.T) {
	tri := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}}
	assert.InDelta(t, 6.0, Shoelace(tri), 1e-9)
}

func TestShoelaceDegenerate(t *testing.T) {
	assert.Zero(t, Shoelace(nil))
	assert.Zero(t, Shoelace([]Point{{X: 1, Y: 1}}))
	assert.Zero(t, Shoelace([]Point{{X: 1, Y: 1}, {X: 5, Y: 5}}))
	// Collinear points enclose nothing.
	assert.Zero(t, Shoelace([]Point{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 9, Y: 0}}))
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Point{{X: 5, Y: 9}, {X: 2, Y: 14}, {X: 11, Y: 3}})
	assert.Equal(t, Bounds{X1: 2, Y1: 3, X2: 11, Y2: 14}, b)
	assert.Equal(t, 9, b.Width())
	assert.Equal(t, 11, b.Height())
}

func TestBoundsOfSinglePoint(t *testing.T) {
	b := BoundsOf([]Point{{X: 7, Y: 4}})
	assert.Equal(t, Bounds{X1: 7, Y1: 4, X2: 7, Y2: 4}, b)
	assert.Zero(t, b.Width())
	assert.Zero(t, b.Height())
}
