package pitch

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Analysis band and significance threshold
const (
	DefaultMinFrequency   = 41.0  // lowest guitar string (E1) is ~41.2 Hz
	DefaultMaxFrequency   = 660.0 // roughly E5
	DefaultThresholdRatio = 0.1   // fraction of the strongest positive bin
)

// AnalyzerConfig holds the spectral analysis parameters
type AnalyzerConfig struct {
	MinFrequency   float64 // inclusive, Hz
	MaxFrequency   float64 // inclusive, Hz
	ThresholdRatio float64 // a bin is significant when magnitude > ratio * max magnitude
}

// DefaultAnalyzerConfig returns the standard analysis parameters
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MinFrequency:   DefaultMinFrequency,
		MaxFrequency:   DefaultMaxFrequency,
		ThresholdRatio: DefaultThresholdRatio,
	}
}

// FFTDetector detects pitch classes from the significant components of the
// magnitude spectrum. It holds no mutable state and is safe for concurrent use.
type FFTDetector struct {
	minFrequency   float64
	maxFrequency   float64
	thresholdRatio float64
}

var _ Detector = (*FFTDetector)(nil)

// NewFFTDetector creates a new FFT-based pitch-class detector
func NewFFTDetector(cfg AnalyzerConfig) *FFTDetector {
	return &FFTDetector{
		minFrequency:   cfg.MinFrequency,
		maxFrequency:   cfg.MaxFrequency,
		thresholdRatio: cfg.ThresholdRatio,
	}
}

// DetectPitchClasses returns the deduplicated pitch classes of every
// significant in-band spectral component. Empty, silent or too-short buffers
// yield an empty set.
func (d *FFTDetector) DetectPitchClasses(samples []float64, sampleRate float64) PitchClassSet {
	classes := make(PitchClassSet)
	for _, freq := range d.DetectFrequencies(samples, sampleRate) {
		// InBand guarantees freq > 0, so conversion cannot fail
		class, err := PitchClassOf(freq)
		if err != nil {
			continue
		}
		classes.Add(class)
	}
	return classes
}

// DetectFrequencies returns the bin frequencies, ascending, whose magnitude
// exceeds the threshold and which lie inside the analysis band
func (d *FFTDetector) DetectFrequencies(samples []float64, sampleRate float64) []float64 {
	if sampleRate <= 0 {
		return nil
	}

	freqs, magnitudes := positiveSpectrum(samples, sampleRate)
	if len(magnitudes) == 0 {
		return nil
	}

	threshold := floats.Max(magnitudes) * d.thresholdRatio

	var out []float64
	for i, magnitude := range magnitudes {
		if magnitude > threshold && d.InBand(freqs[i]) {
			out = append(out, freqs[i])
		}
	}
	return out
}

// InBand reports whether freq lies in the inclusive analysis band
func (d *FFTDetector) InBand(freq float64) bool {
	return freq >= d.minFrequency && freq <= d.maxFrequency
}

// positiveSpectrum computes the FFT of samples and returns the center
// frequency and magnitude of each strictly positive-frequency bin.
//
// Bin k has frequency k*sampleRate/N; bins from N/2 upward carry the negative
// frequencies, so for even N the Nyquist bin is treated as negative.
func positiveSpectrum(samples []float64, sampleRate float64) ([]float64, []float64) {
	n := len(samples)
	last := (n - 1) / 2
	if last < 1 {
		return nil, nil
	}

	spectrum := fft.FFTReal(samples)

	binSizeHz := sampleRate / float64(n)
	freqs := make([]float64, last)
	magnitudes := make([]float64, last)
	for k := 1; k <= last; k++ {
		freqs[k-1] = float64(k) * binSizeHz
		magnitudes[k-1] = cmplx.Abs(spectrum[k])
	}
	return freqs, magnitudes
}
