package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-smooth/dsp/smoother"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got, want := cfg.SmootherConfig(), smoother.DefaultConfig(); got != want {
		t.Fatalf("SmootherConfig() = %+v, want %+v", got, want)
	}
	for _, v := range smoother.Variants() {
		if !cfg.Visible(v) {
			t.Fatalf("%s should be visible by default", v)
		}
	}
}

func TestLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "smooth.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Smoother.WindowSize != 10 {
		t.Fatalf("WindowSize = %d, want 10", cfg.Smoother.WindowSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default file not written: %v", err)
	}
	if !strings.Contains(string(data), "[smoother]") {
		t.Fatalf("unexpected file contents:\n%s", data)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smooth.toml")
	writeFile(t, path, `
[smoother]
window_size = 4
alpha = 0.5

[display]
indicator_duration = "250ms"

[display.visible]
raw = false

[tremor]
enabled = true
intensity = 12.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Smoother.WindowSize != 4 || cfg.Smoother.Alpha != 0.5 {
		t.Fatalf("smoother = %+v", cfg.Smoother)
	}
	if cfg.Smoother.Capacity != 500 {
		t.Fatalf("Capacity = %d, want default 500", cfg.Smoother.Capacity)
	}
	if cfg.Display.IndicatorDuration != 250*time.Millisecond {
		t.Fatalf("IndicatorDuration = %v", cfg.Display.IndicatorDuration)
	}
	if cfg.Visible(smoother.VariantRaw) || !cfg.Visible(smoother.VariantExponential) {
		t.Fatalf("visibility = %+v", cfg.Display.Visible)
	}
	if !cfg.Tremor.Enabled || cfg.Tremor.Intensity != 12.5 || cfg.Tremor.Frequency != 10 {
		t.Fatalf("tremor = %+v", cfg.Tremor)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smooth.toml")
	want := DefaultConfig()
	want.Drift.Enabled = true
	want.Drift.Direction = 135
	want.Plot.OutputDir = "plots"
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"capacity", func(c *Config) { c.Smoother.Capacity = 0 }},
		{"alpha bounds", func(c *Config) { c.Smoother.MinAlpha = 0.9; c.Smoother.MaxAlpha = 0.1 }},
		{"alpha step", func(c *Config) { c.Smoother.AlphaStep = 0 }},
		{"frame rate", func(c *Config) { c.Display.FrameRate = 0 }},
		{"metrics history", func(c *Config) { c.Display.MetricsHistory = 0 }},
		{"tremor intensity", func(c *Config) { c.Tremor.Intensity = -1 }},
		{"tremor frequency", func(c *Config) { c.Tremor.Frequency = 0.01 }},
		{"drift speed", func(c *Config) { c.Drift.Speed = -3 }},
		{"grid size", func(c *Config) { c.Plot.GridSize = 1 }},
		{"output dir", func(c *Config) { c.Plot.OutputDir = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	writeFile(t, bad, "[smoother]\ncapacity = -1\n")
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
	}

	garbled := filepath.Join(dir, "garbled.toml")
	writeFile(t, garbled, "[smoother\n")
	if _, err := Load(garbled); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smooth.toml")
	if err := Save(path, DefaultConfig()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	changes := make(chan *Config, 4)
	failures := make(chan error, 4)
	if err := Watch(ctx, path, func(c *Config) { changes <- c }, func(err error) { failures <- err }); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	writeFile(t, path, "[smoother]\nwindow_size = 7\n")
	select {
	case cfg := <-changes:
		if cfg.Smoother.WindowSize != 7 {
			t.Fatalf("reloaded WindowSize = %d, want 7", cfg.Smoother.WindowSize)
		}
	case err := <-failures:
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	writeFile(t, path, "[smoother]\nalpha = 7\nmin_alpha = 2\n")
	select {
	case err := <-failures:
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("reload error = %v, want ErrInvalidConfig", err)
		}
	case cfg := <-changes:
		t.Fatalf("invalid file accepted: %+v", cfg.Smoother)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent", "smooth.toml")
	err := Watch(context.Background(), path, func(*Config) {}, func(error) {})
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}
