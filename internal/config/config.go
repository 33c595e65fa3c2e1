package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/0xlemi/tunechord/internal/chord"
	"github.com/0xlemi/tunechord/internal/pitch"
)

// Config holds every tunable of the analysis pipeline and the live driver
type Config struct {
	// analysis
	MinFrequency   float64
	MaxFrequency   float64
	ThresholdRatio float64
	Chords         string // full|triads
	Locale         string // ru|en

	// live capture
	SampleRate      int
	Channels        int
	FramesPerBuffer int
	BufferDuration  time.Duration // ring capacity in time
	WindowFraction  float64       // analyzed share of the ring
	PollInterval    time.Duration
	Amplification   float64

	// logging
	LogLevel  string
	LogFormat string
}

// Default returns the standard configuration
func Default() *Config {
	return &Config{
		MinFrequency:   pitch.DefaultMinFrequency,
		MaxFrequency:   pitch.DefaultMaxFrequency,
		ThresholdRatio: pitch.DefaultThresholdRatio,
		Chords:         "full",
		Locale:         string(pitch.DefaultLocale),

		SampleRate:      44100,
		Channels:        1,
		FramesPerBuffer: 1024,
		BufferDuration:  time.Second,
		WindowFraction:  0.1,
		PollInterval:    100 * time.Millisecond,
		Amplification:   1.0,

		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Validate checks the configuration for values the pipeline cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.MinFrequency <= 0 {
		errs = append(errs, fmt.Errorf("min frequency must be positive, got %v", c.MinFrequency))
	}
	if c.MaxFrequency < c.MinFrequency {
		errs = append(errs, fmt.Errorf("max frequency %v below min frequency %v", c.MaxFrequency, c.MinFrequency))
	}
	if c.ThresholdRatio < 0 || c.ThresholdRatio >= 1 {
		errs = append(errs, fmt.Errorf("threshold must be in [0, 1), got %v", c.ThresholdRatio))
	}
	if _, ok := chord.ByName(c.Chords); !ok {
		errs = append(errs, fmt.Errorf("unknown chord set %q", c.Chords))
	}
	if c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.SampleRate))
	}
	if c.Channels < 1 {
		errs = append(errs, fmt.Errorf("channels must be at least 1, got %d", c.Channels))
	}
	if c.FramesPerBuffer < 1 {
		errs = append(errs, fmt.Errorf("frames per buffer must be at least 1, got %d", c.FramesPerBuffer))
	}
	if c.BufferDuration <= 0 {
		errs = append(errs, fmt.Errorf("buffer duration must be positive, got %v", c.BufferDuration))
	}
	if c.WindowFraction <= 0 || c.WindowFraction > 1 {
		errs = append(errs, fmt.Errorf("window fraction must be in (0, 1], got %v", c.WindowFraction))
	}
	if c.PollInterval <= 0 {
		errs = append(errs, fmt.Errorf("poll interval must be positive, got %v", c.PollInterval))
	}
	if c.Amplification <= 0 {
		errs = append(errs, fmt.Errorf("amplification must be positive, got %v", c.Amplification))
	}

	return errors.Join(errs...)
}

// AnalyzerConfig returns the spectral analysis parameters
func (c *Config) AnalyzerConfig() pitch.AnalyzerConfig {
	return pitch.AnalyzerConfig{
		MinFrequency:   c.MinFrequency,
		MaxFrequency:   c.MaxFrequency,
		ThresholdRatio: c.ThresholdRatio,
	}
}

// Table returns the selected chord table, the full one if the name is unknown
func (c *Config) Table() chord.Table {
	if table, ok := chord.ByName(c.Chords); ok {
		return table
	}
	return chord.Standard()
}

// RingCapacity returns the ring size in samples
func (c *Config) RingCapacity() int {
	return max(1, int(float64(c.SampleRate)*c.BufferDuration.Seconds()))
}

// WindowSize returns the number of samples analyzed per poll
func (c *Config) WindowSize() int {
	return max(1, int(float64(c.RingCapacity())*c.WindowFraction))
}
