// PTable is an interactive periodic table of the elements for the
// terminal.
//
// Run: go run ./cmd/ptable/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/wesen/ptable/internal/config"
	"github.com/wesen/ptable/internal/dataset"
	"github.com/wesen/ptable/internal/tableui"
)

const (
	Version = "0.1.0"
	appName = "ptable"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		source     string
		logFile    string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Interactive periodic table for the terminal",
		Long: `PTable renders the periodic table of the elements in the terminal.

Hover an element for its details; hover a group or period number to
highlight that family; hover the footnote placeholders to highlight
the lanthanide or actinide block. Arrow keys pan when the table does
not fit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, source, logFile, logLevel)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&source, "data", "", "Dataset URL or file path (overrides config)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Log file path (logging disabled when empty)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	return cmd
}

func run(configPath, source, logFile, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags override the file.
	if source != "" {
		cfg.Dataset.Source = source
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting", "version", Version, "source", cfg.Dataset.Source)

	loader := dataset.NewLoader(nil, logger)
	p := tea.NewProgram(tableui.NewModel(loader, cfg.Dataset.Source, logger))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// newLogger builds the slog logger from config. The TUI owns the
// terminal, so logs only ever go to a file; without one, everything is
// discarded.
func newLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(f, opts)
	} else {
		handler = slog.NewTextHandler(f, opts)
	}

	return slog.New(handler), func() { _ = f.Close() }, nil
}
