package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logging"
)

// rootFlags are shared by every command.
type rootFlags struct {
	configPath string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Freelance portfolio site and content tools",
		Long:         "Serves the portfolio site and queries its content catalogs from the command line.",
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.DefaultPath, "Path to an optional YAML config file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(
		newServeCmd(&flags),
		newPostsCmd(&flags),
		newProjectsCmd(&flags),
		newRecommendCmd(&flags),
		newInboxCmd(&flags),
		newValidateCmd(&flags),
	)
	return root
}

// setup loads configuration and builds the logger.
func (f *rootFlags) setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.LogLevel
	if f.verbose {
		level = "debug"
	}
	logger, err := logging.New(cfg.IsProduction(), level)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
