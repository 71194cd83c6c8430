// Package labels reads room names off the working image with OCR.
//
// Label reading is optional and best-effort: when the binary is built without
// cgo the reader reports itself unavailable and the pipeline leaves rooms
// unlabeled. With cgo, Tesseract (via gosseract) runs over each room's
// bounding box.
package labels

import (
	"errors"
	"image"

	"github.com/openfloor/planscan/internal/contour"
)

// ErrUnavailable is returned by ReadRegion when the binary was built without
// OCR support.
var ErrUnavailable = errors.New("labels: OCR support not compiled in")

// DefaultLanguage is the Tesseract language code used when none is configured.
const DefaultLanguage = "eng"

// Label is the text recognized inside one region.
type Label struct {
	// Text is the recognized content with surrounding whitespace trimmed.
	Text string `json:"text"`

	// Confidence is the mean word confidence in [0, 1].
	Confidence float64 `json:"confidence"`
}

// Available reports whether OCR support was compiled into this binary.
func Available() bool { return available }

// ReadRegion recognizes text inside the given bounding box of the working
// image. An empty result (no text found) is returned as a Label with empty
// Text, not as an error.
func ReadRegion(img image.Image, b contour.Bounds, language string) (*Label, error) {
	if language == "" {
		language = DefaultLanguage
	}
	return readRegion(img, b, language)
}
