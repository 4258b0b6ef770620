// Command smoothdemo is an interactive terminal playground for the pointer
// smoother. Move or click the mouse over the canvas and watch the raw,
// moving-average, exponential and drift-corrected traces follow it.
//
// Usage:
//
//	smoothdemo [flags]
//
// Keys: up/down window size, left/right alpha, h history, r reset,
// g write plots, t tremor, d drift, 1-4 toggle traces, q quit.
//
// The config file is created with defaults when missing and reloaded
// whenever it changes on disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/internal/config"
	"github.com/cwbudde/algo-smooth/internal/log"
	"github.com/cwbudde/algo-smooth/internal/ui"
)

func main() {
	configPath := flag.String("config", "smooth.toml", "TOML config file, created when missing")
	logPath := flag.String("log", filepath.Join(os.TempDir(), "smoothdemo.log"), "log file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	fps := flag.Int("fps", 0, "frame rate override (default from config)")
	noWatch := flag.Bool("no-watch", false, "do not reload the config on change")
	flag.Parse()

	if err := run(*configPath, *logPath, *logLevel, *fps, !*noWatch); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath, logLevel string, fps int, watch bool) error {
	logger, err := log.NewFileLogger(logPath, logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if fps > 0 {
		cfg.Display.FrameRate = fps
	}

	model, err := ui.New(ui.Options{
		Config: cfg,
		Logger: logger,
		Open:   browser.OpenFile,
	})
	if err != nil {
		return err
	}

	// Mouse motion without a pressed button only arrives in all-motion mode.
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watch {
		err := config.Watch(ctx, configPath,
			func(c *config.Config) {
				if fps > 0 {
					c.Display.FrameRate = fps
				}
				logger.Info("config changed", log.PathField(configPath))
				prog.Send(ui.ConfigMsg{Config: c})
			},
			func(err error) {
				logger.Warn("config reload failed", log.PathField(configPath), zap.Error(err))
			})
		if err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	logger.Info("demo started", log.PathField(configPath), zap.Int("fps", cfg.Display.FrameRate))
	if _, err := prog.Run(); err != nil {
		return err
	}
	logger.Info("demo stopped")
	return nil
}
