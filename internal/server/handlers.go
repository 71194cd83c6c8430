package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openfloor/planscan/internal/export"
	"github.com/openfloor/planscan/internal/raster"
)

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// uploadPage is the minimal browser surface: pick or drop one image, get the
// JSON document back.
const uploadPage = `<!doctype html>
<html>
<head><title>planscan</title></head>
<body>
<h1>planscan</h1>
<p>Upload a floor-plan image to extract walls, doors, windows and rooms.</p>
<form action="/api/v1/process" method="post" enctype="multipart/form-data">
  <input type="file" name="image" accept="image/*" required>
  <button type="submit">Process</button>
</form>
</body>
</html>`

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(uploadPage))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleProcess accepts one image in the multipart field "image", runs the
// pipeline and returns the export document. Results are served from the
// cache when an identical image was processed before.
func (s *Server) handleProcess(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "no image file provided"})
		return
	}

	maxBytes := s.cfg.MaxUploadMB * 1024 * 1024
	if file.Size > maxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "image exceeds upload limit"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read upload"})
		return
	}
	uploadSizeBytes.Observe(float64(len(data)))

	if doc := s.cachedDocument(c, data); doc != nil {
		processRequestsTotal.WithLabelValues("cached").Inc()
		c.JSON(http.StatusOK, doc)
		return
	}

	start := time.Now()
	result, err := s.pipeline.Process(c.Request.Context(), data)
	if err != nil {
		processRequestsTotal.WithLabelValues("error").Inc()
		var decodeErr *raster.DecodeError
		if errors.As(err, &decodeErr) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "unsupported or corrupt image"})
			return
		}
		s.log.Error("processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "processing failed"})
		return
	}
	processRequestsTotal.WithLabelValues("success").Inc()
	processDuration.Observe(time.Since(start).Seconds())

	elementsDetected.WithLabelValues("walls").Observe(float64(len(result.Walls)))
	elementsDetected.WithLabelValues("doors").Observe(float64(len(result.Doors)))
	elementsDetected.WithLabelValues("windows").Observe(float64(len(result.Windows)))
	elementsDetected.WithLabelValues("rooms").Observe(float64(len(result.Rooms)))

	doc := export.NewDocument(result, time.Now())
	s.storeDocument(c, data, doc)
	c.JSON(http.StatusOK, doc)
}

// cachedDocument looks the upload up in the result cache. Cache trouble is
// logged and treated as a miss.
func (s *Server) cachedDocument(c *gin.Context, data []byte) *export.Document {
	if s.cache == nil {
		return nil
	}
	key := s.cache.Key(data)
	doc, err := s.cache.Get(c.Request.Context(), key)
	if err != nil {
		cacheRequestsTotal.WithLabelValues("error").Inc()
		s.log.Warn("cache lookup failed", zap.Error(err))
		return nil
	}
	if doc == nil {
		cacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil
	}
	cacheRequestsTotal.WithLabelValues("hit").Inc()
	return doc
}

func (s *Server) storeDocument(c *gin.Context, data []byte, doc *export.Document) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(c.Request.Context(), s.cache.Key(data), doc); err != nil {
		s.log.Warn("cache store failed", zap.Error(err))
	}
}
