package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/openfloor/planscan/internal/config"
	"github.com/openfloor/planscan/internal/logging"
)

var (
	cfgFile      string
	globalConfig *config.Config

	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// SetVersionInfo records the ldflags build metadata for the version flag.
func SetVersionInfo(v, bt, gc string) {
	version, buildTime, gitCommit = v, bt, gc
}

var rootCmd = &cobra.Command{
	Use:   "planscan",
	Short: "Convert 2D floor-plan images into classified geometry",
	Long: `planscan turns a raster image of a 2D floor plan into a classified set of
geometric elements (walls, doors, windows, rooms) suitable for 3D
reconstruction or further tooling.

Examples:
  planscan process plan.png -o plan.json
  planscan process plan.png --format obj -o plan.obj
  planscan serve --port 8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if v, _ := cmd.PersistentFlags().GetBool("version"); v {
			fmt.Fprintf(cmd.OutOrStdout(), "planscan %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Build time: %s\n", buildTime)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git commit: %s\n", gitCommit)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is planscan.yaml in ., $HOME/.config/planscan, /etc/planscan)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output (same as --log-level=debug)")
	rootCmd.PersistentFlags().Bool("version", false, "print version information and exit")

	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// loadConfig resolves the configuration once per process.
func loadConfig() (*config.Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}
	loader := config.NewLoader()
	if cfgFile != "" {
		loader.SetConfigFile(cfgFile)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("verbose"); v {
		cfg.LogLevel = "debug"
	}
	globalConfig = cfg
	return cfg, nil
}

// newLogger builds the logger for a command run.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Mode, cfg.LogLevel)
}
