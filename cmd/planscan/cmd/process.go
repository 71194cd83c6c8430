package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openfloor/planscan/internal/export"
	"github.com/openfloor/planscan/internal/floorplan"
	"github.com/openfloor/planscan/internal/visualize"
)

var processCmd = &cobra.Command{
	Use:   "process <image>",
	Short: "Process a floor-plan image file",
	Long: `Process a single floor-plan image and write the classification result.

Formats:
  json  structured document with metadata and per-category elements (default)
  obj   Wavefront OBJ model with one box per wall

Examples:
  planscan process plan.png
  planscan process plan.png -o plan.json
  planscan process plan.png --format obj -o plan.obj
  planscan process plan.png --overlay overlay.png`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	if format != "json" && format != "obj" {
		return fmt.Errorf("unknown format %q (want json or obj)", format)
	}
	outPath, _ := cmd.Flags().GetString("output")
	overlayPath, _ := cmd.Flags().GetString("overlay")

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	pipeline := floorplan.New(cfg.PipelineOptions(), log)
	result, err := pipeline.Process(cmd.Context(), data)
	if err != nil {
		return err
	}

	log.Info("processed image",
		zap.String("input", args[0]),
		zap.Int("walls", len(result.Walls)),
		zap.Int("doors", len(result.Doors)),
		zap.Int("windows", len(result.Windows)),
		zap.Int("rooms", len(result.Rooms)))

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		if err := export.WriteJSON(out, result, time.Now()); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
	case "obj":
		opts := export.OBJOptions{
			MetersPerPixel: cfg.Output.MetersPerPixel,
			WallHeight:     cfg.Output.WallHeight,
		}
		if err := export.WriteOBJ(out, result, opts); err != nil {
			return fmt.Errorf("write OBJ: %w", err)
		}
	}

	if overlayPath != "" {
		f, err := os.Create(overlayPath)
		if err != nil {
			return fmt.Errorf("create overlay: %w", err)
		}
		defer f.Close()
		if err := visualize.WritePNG(f, result); err != nil {
			return fmt.Errorf("write overlay: %w", err)
		}
	}
	return nil
}

func init() {
	processCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	processCmd.Flags().StringP("format", "f", "json", "output format: json or obj")
	processCmd.Flags().String("overlay", "", "also write a colored overlay PNG to this path")
	rootCmd.AddCommand(processCmd)
}
