// Package analysis wires spectral pitch-class detection to chord matching.
// Batch and live commands both feed audio buffers through a Pipeline.
package analysis

import (
	"fmt"
	"strings"

	"github.com/0xlemi/tunechord/internal/audio"
	"github.com/0xlemi/tunechord/internal/chord"
	"github.com/0xlemi/tunechord/internal/pitch"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of analyzing one buffer
type Result struct {
	PitchClasses []string // detected pitch classes, chromatic order
	Chords       []string // best-matching chords, table order
	Components   int      // significant in-band spectral bins
}

// Empty reports whether nothing was detected. It is a normal outcome.
func (r Result) Empty() bool {
	return len(r.PitchClasses) == 0
}

// Fields returns the result as structured log fields
func (r Result) Fields() logrus.Fields {
	return logrus.Fields{
		"notes":      r.PitchClasses,
		"chords":     r.Chords,
		"components": r.Components,
	}
}

// Format renders the result as two lines of text
func (r Result) Format() string {
	notes := "-"
	if len(r.PitchClasses) > 0 {
		notes = strings.Join(r.PitchClasses, " ")
	}
	chords := "-"
	if len(r.Chords) > 0 {
		chords = strings.Join(r.Chords, " ")
	}
	return fmt.Sprintf("notes:  %s\nchords: %s", notes, chords)
}

// FormatHuman renders the result with localized note and chord names
func (r Result) FormatHuman(locale pitch.Locale, table chord.Table) string {
	notes := make([]string, len(r.PitchClasses))
	for i, class := range r.PitchClasses {
		notes[i] = locale.PitchClassName(class)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "notes:  %s", strings.Join(notes, ", "))
	for _, name := range r.Chords {
		fmt.Fprintf(&b, "\n  %s", chord.FromName(name, table).HumanReadable(locale))
	}
	return b.String()
}

// Pipeline runs detection and matching. It holds no mutable state, so one
// Pipeline may serve several goroutines.
type Pipeline struct {
	detector *pitch.FFTDetector
	table    chord.Table
}

// NewPipeline creates a pipeline with the given analysis parameters and table
func NewPipeline(cfg pitch.AnalyzerConfig, table chord.Table) *Pipeline {
	return &Pipeline{
		detector: pitch.NewFFTDetector(cfg),
		table:    table,
	}
}

// Table returns the chord table used for matching
func (p *Pipeline) Table() chord.Table {
	return p.table
}

// Run analyzes samples taken at sampleRate
func (p *Pipeline) Run(samples []float64, sampleRate float64) Result {
	freqs := p.detector.DetectFrequencies(samples, sampleRate)

	detected := make(pitch.PitchClassSet)
	for _, f := range freqs {
		if class, err := pitch.PitchClassOf(f); err == nil {
			detected.Add(class)
		}
	}

	return Result{
		PitchClasses: detected.Sorted(),
		Chords:       chord.BestChords(detected, p.table),
		Components:   len(freqs),
	}
}

// RunBuffer analyzes an audio buffer; nil or empty buffers give an empty result
func (p *Pipeline) RunBuffer(buf *audio.AudioBuffer) Result {
	if buf == nil {
		return Result{PitchClasses: []string{}, Chords: []string{}}
	}
	return p.Run(buf.Samples, float64(buf.SampleRate))
}
