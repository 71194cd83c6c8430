//go:build !cgo

package labels

import (
	"image"

	"github.com/openfloor/planscan/internal/contour"
)

const available = false

func readRegion(image.Image, contour.Bounds, string) (*Label, error) {
	return nil, ErrUnavailable
}
