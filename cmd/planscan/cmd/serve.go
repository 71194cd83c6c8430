package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openfloor/planscan/internal/floorplan"
	"github.com/openfloor/planscan/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP processing server",
	Long: `Start an HTTP server exposing the floor-plan pipeline.

Endpoints:
  GET  /                upload page
  POST /api/v1/process  process an uploaded image (multipart field "image")
  GET  /healthz         health check
  GET  /metrics         prometheus metrics

Examples:
  planscan serve
  planscan serve --port 3000
  planscan serve --host 127.0.0.1 --port 8080`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("redis") {
		cfg.Server.Redis.Enabled, _ = cmd.Flags().GetBool("redis")
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeline := floorplan.New(cfg.PipelineOptions(), log)
	srv := server.New(cfg.Server, cfg.Mode, pipeline, log)
	return srv.Run(ctx)
}

func init() {
	serveCmd.Flags().String("host", "0.0.0.0", "host interface to bind")
	serveCmd.Flags().Int("port", 8080, "port to listen on")
	serveCmd.Flags().Bool("redis", false, "enable the redis result cache")
	rootCmd.AddCommand(serveCmd)
}
