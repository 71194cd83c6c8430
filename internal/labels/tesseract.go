//go:build cgo

package labels

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"

	"github.com/openfloor/planscan/internal/contour"
)

const available = true

// readRegion crops the bounding box, hands it to Tesseract through a
// temporary PNG (Tesseract wants a file path) and averages the word
// confidences it reports.
func readRegion(img image.Image, b contour.Bounds, language string) (*Label, error) {
	cropped := imaging.Crop(img, image.Rect(b.X1, b.Y1, b.X2+1, b.Y2+1))

	tmp, err := os.CreateTemp("", "planscan-label-*.png")
	if err != nil {
		return nil, fmt.Errorf("create temp image: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, cropped); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("encode temp image: %w", err)
	}
	tmp.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("set OCR language: %w", err)
	}
	if err := client.SetImage(tmpPath); err != nil {
		return nil, fmt.Errorf("set OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	label := &Label{Text: strings.TrimSpace(text)}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		// Text without per-word confidence is still a usable label.
		return label, nil
	}
	var sum float64
	for _, box := range boxes {
		sum += float64(box.Confidence)
	}
	label.Confidence = sum / float64(len(boxes)) / 100
	return label, nil
}
