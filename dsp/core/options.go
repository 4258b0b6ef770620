package core

// StreamConfig defines common settings for frame-clocked sample streams.
type StreamConfig struct {
	// FrameRate is the nominal number of samples per second.
	FrameRate float64
}

// StreamOption mutates a StreamConfig.
type StreamOption func(*StreamConfig)

// DefaultStreamConfig returns the settings of a 60 Hz pointer stream.
func DefaultStreamConfig() StreamConfig {
	return StreamConfig{
		FrameRate: 60,
	}
}

// WithFrameRate sets the stream frame rate.
func WithFrameRate(frameRate float64) StreamOption {
	return func(cfg *StreamConfig) {
		if frameRate > 0 {
			cfg.FrameRate = frameRate
		}
	}
}

// ApplyStreamOptions applies zero or more options to the default config.
func ApplyStreamOptions(opts ...StreamOption) StreamConfig {
	cfg := DefaultStreamConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// FrameInterval returns the duration of one frame in seconds.
func (c StreamConfig) FrameInterval() float64 {
	if c.FrameRate <= 0 {
		return 0
	}
	return 1 / c.FrameRate
}
