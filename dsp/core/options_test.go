package core

import "testing"

func TestApplyStreamOptions(t *testing.T) {
	cfg := ApplyStreamOptions(WithFrameRate(120))
	if cfg.FrameRate != 120 {
		t.Fatalf("frame rate = %v, want 120", cfg.FrameRate)
	}
	if !NearlyEqual(cfg.FrameInterval(), 1.0/120, 1e-15) {
		t.Fatalf("frame interval = %v, want %v", cfg.FrameInterval(), 1.0/120)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyStreamOptions(WithFrameRate(0), nil, WithFrameRate(-30))
	def := DefaultStreamConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestFrameIntervalZeroRate(t *testing.T) {
	if got := (StreamConfig{}).FrameInterval(); got != 0 {
		t.Fatalf("FrameInterval() = %v, want 0", got)
	}
}
