// Package floorplan runs the image-to-geometry pipeline: rasterize, detect
// edges, trace regions, classify, assemble.
//
// The pipeline is synchronous and single-threaded per image; each stage fully
// consumes its input before the next begins. Separate invocations share no
// mutable state, so one Pipeline may process multiple images concurrently.
// The first failing stage aborts the invocation; no partial results escape.
package floorplan

import (
	"context"

	"go.uber.org/zap"

	"github.com/openfloor/planscan/internal/classify"
	"github.com/openfloor/planscan/internal/contour"
	"github.com/openfloor/planscan/internal/edge"
	"github.com/openfloor/planscan/internal/labels"
	"github.com/openfloor/planscan/internal/raster"
)

// Options tunes the pipeline. The zero value of each field selects the
// stock behavior.
type Options struct {
	// MaxDimension bounds the working image (raster.DefaultMaxDimension).
	MaxDimension int

	// EdgeThreshold is the Sobel magnitude cutoff (edge.DefaultThreshold).
	EdgeThreshold float64

	// Denoise blurs the working image before edge detection. Off by default.
	Denoise       bool
	DenoiseRadius float64

	// MinRegionPoints / MaxRegionPoints tune the region tracer
	// (contour.MinRegionPoints / contour.MaxRegionPoints).
	MinRegionPoints int
	MaxRegionPoints int

	// Thresholds is the classifier decision table; the zero value selects
	// classify.DefaultThresholds.
	Thresholds classify.Thresholds

	// ReadLabels runs OCR over each room's bounding box. Requires a binary
	// built with OCR support; silently skipped otherwise.
	ReadLabels    bool
	LabelLanguage string
}

// Pipeline converts floor-plan images into classified geometry.
type Pipeline struct {
	opts Options
	log  *zap.Logger
}

// New creates a pipeline. A nil logger disables stage logging.
func New(opts Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if (opts.Thresholds == classify.Thresholds{}) {
		opts.Thresholds = classify.DefaultThresholds()
	}
	return &Pipeline{opts: opts, log: log}
}

// Process runs the full pipeline over one image byte stream.
//
// The only error it can return is a *raster.DecodeError (or the context's
// error if ctx is canceled between stages): downstream stages are total and
// degenerate geometry simply yields empty category lists. The pipeline is
// deterministic; identical input bytes produce identical results.
func (p *Pipeline) Process(ctx context.Context, data []byte) (*Result, error) {
	img, err := raster.Decode(data, p.opts.MaxDimension)
	if err != nil {
		return nil, err
	}
	p.log.Debug("rasterized image",
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
		zap.Float64("scale", img.Scale),
		zap.String("format", img.Format))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mask := edge.Detect(img.Pixels, edge.Options{
		Threshold:     p.opts.EdgeThreshold,
		Denoise:       p.opts.Denoise,
		DenoiseRadius: p.opts.DenoiseRadius,
	})
	p.log.Debug("detected edges", zap.Int("edge_pixels", mask.Count()))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contours := contour.Trace(mask, contour.TraceOptions{
		MinPoints: p.opts.MinRegionPoints,
		MaxPoints: p.opts.MaxRegionPoints,
	})
	p.log.Debug("traced regions", zap.Int("contours", len(contours)))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Walls:       []contour.Contour{},
		Doors:       []contour.Contour{},
		Windows:     []contour.Contour{},
		Rooms:       []contour.Contour{},
		Scale:       img.Scale,
		ImageWidth:  img.Width,
		ImageHeight: img.Height,
	}

	for _, c := range contours {
		kind, ok := classify.Classify(c, img.Width, img.Height, p.opts.Thresholds)
		if !ok {
			continue
		}
		c.Kind = kind
		switch kind {
		case contour.KindWall:
			result.Walls = append(result.Walls, c)
		case contour.KindDoor:
			result.Doors = append(result.Doors, c)
		case contour.KindWindow:
			result.Windows = append(result.Windows, c)
		case contour.KindRoom:
			result.Rooms = append(result.Rooms, c)
		}
	}

	if p.opts.ReadLabels && labels.Available() {
		p.labelRooms(img, result)
	}

	p.log.Debug("classified contours",
		zap.Int("walls", len(result.Walls)),
		zap.Int("doors", len(result.Doors)),
		zap.Int("windows", len(result.Windows)),
		zap.Int("rooms", len(result.Rooms)))
	return result, nil
}

// labelRooms attaches OCR labels to room contours. Failures are logged and
// skipped; labeling never fails the invocation.
func (p *Pipeline) labelRooms(img *raster.Image, result *Result) {
	for i := range result.Rooms {
		label, err := labels.ReadRegion(img.Pixels, result.Rooms[i].Bounds, p.opts.LabelLanguage)
		if err != nil {
			p.log.Warn("room label OCR failed", zap.Int("room", i), zap.Error(err))
			continue
		}
		result.Rooms[i].Label = label.Text
		result.Rooms[i].LabelConfidence = label.Confidence
	}
}
