package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ishaan1911/portfolio/internal/content"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `Serves a single-page personal portfolio. Every page load gets a live
view on the server that tracks its theme, pointer glow, revealed sections,
intro caret and highlighted skill for as long as the page stays open.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadContent returns the portfolio at path, or the embedded one.
func loadContent(path string) (*content.Model, error) {
	if path == "" {
		return content.Default()
	}
	m, err := content.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}
	slog.Debug("using content file", "file", path)
	return m, nil
}
