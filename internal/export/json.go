// Package export serializes processing results: a structured JSON document
// for downstream tooling and a simple OBJ model with one box per wall.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/openfloor/planscan/internal/contour"
	"github.com/openfloor/planscan/internal/floorplan"
)

// Document is the structured export of one processing result.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Elements Elements `json:"elements"`
}

// Metadata carries the working-image facts and the export timestamp.
type Metadata struct {
	Scale       float64 `json:"scale"`
	ImageWidth  int     `json:"imageWidth"`
	ImageHeight int     `json:"imageHeight"`
	ExportDate  string  `json:"exportDate"`
}

// Elements groups the exported contours by category. Empty categories
// serialize as empty arrays, never null.
type Elements struct {
	Walls   []Element `json:"walls"`
	Doors   []Element `json:"doors"`
	Windows []Element `json:"windows"`
	Rooms   []Element `json:"rooms"`
}

// Element is one exported contour.
type Element struct {
	Points []contour.Point `json:"points"`
	Area   float64         `json:"area"`
	Type   contour.Kind    `json:"type"`
	Label  string          `json:"label,omitempty"`
}

// NewDocument builds the export document for a result. The export date is
// rendered in RFC 3339 from the given time.
func NewDocument(r *floorplan.Result, now time.Time) *Document {
	return &Document{
		Metadata: Metadata{
			Scale:       r.Scale,
			ImageWidth:  r.ImageWidth,
			ImageHeight: r.ImageHeight,
			ExportDate:  now.UTC().Format(time.RFC3339),
		},
		Elements: Elements{
			Walls:   elements(r.Walls),
			Doors:   elements(r.Doors),
			Windows: elements(r.Windows),
			Rooms:   elements(r.Rooms),
		},
	}
}

// WriteJSON writes the indented JSON document for a result.
func WriteJSON(w io.Writer, r *floorplan.Result, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(r, now))
}

func elements(contours []contour.Contour) []Element {
	out := make([]Element, 0, len(contours))
	for _, c := range contours {
		out = append(out, Element{
			Points: c.Points,
			Area:   c.Area,
			Type:   c.Kind,
			Label:  c.Label,
		})
	}
	return out
}
