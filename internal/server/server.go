// Package server exposes the floor-plan pipeline over HTTP: a minimal upload
// page, a JSON processing endpoint, health and prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openfloor/planscan/internal/config"
	"github.com/openfloor/planscan/internal/floorplan"
)

// Server wires the pipeline, the optional result cache and the gin router.
type Server struct {
	cfg      config.ServerConfig
	log      *zap.Logger
	pipeline *floorplan.Pipeline
	cache    *ResultCache
	engine   *gin.Engine
}

// New builds a server. The cache is attached only when redis is enabled and
// reachable; otherwise every request is processed fresh.
func New(cfg config.ServerConfig, mode string, pipeline *floorplan.Pipeline, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		log:      log,
		pipeline: pipeline,
	}

	if cfg.Redis.Enabled {
		cache := NewResultCache(cfg.Redis)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.Ping(ctx); err != nil {
			log.Warn("redis unreachable, result cache disabled", zap.Error(err))
			_ = cache.Close()
		} else {
			s.cache = cache
		}
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log), observeRequests())
	engine.MaxMultipartMemory = cfg.MaxUploadMB * 1024 * 1024

	engine.GET("/", s.handleIndex)
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.POST("/api/v1/process", s.handleProcess)

	s.engine = engine
	return s
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is canceled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(), time.Duration(s.cfg.ShutdownTimeout)*time.Second)
	defer cancel()

	if s.cache != nil {
		defer func() { _ = s.cache.Close() }()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
