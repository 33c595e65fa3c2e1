package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0xlemi/tunechord/internal/analysis"
	"github.com/0xlemi/tunechord/internal/audio"
	"github.com/0xlemi/tunechord/internal/chord"
	"github.com/0xlemi/tunechord/internal/config"
	"github.com/0xlemi/tunechord/internal/pitch"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sines(n, sampleRate int, freqs ...float64) []float64 {
	samples := make([]float64, n)
	for _, f := range freqs {
		for i := range samples {
			samples[i] += 0.3 * math.Sin(2*math.Pi*f*float64(i)/float64(sampleRate))
		}
	}
	return samples
}

func writeWAV(t *testing.T, sampleRate int, samples []float64) string {
	t.Helper()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(s * 32767))
	}

	path := filepath.Join(t.TempDir(), "chord.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	*cfg = *config.Default()
	human = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestAnalyzeCommand(t *testing.T) {
	// A3, C♯4, E4
	path := writeWAV(t, 4096, sines(4096, 4096, 220, 277, 330))

	out := run(t, "analyze", "--chords", "triads", path)
	assert.Equal(t, "notes:  C♯ E A\nchords: A\n", out)
}

func TestAnalyzeCommandHuman(t *testing.T) {
	path := writeWAV(t, 4096, sines(4096, 4096, 220, 277, 330))

	out := run(t, "analyze", "--chords", "triads", "--locale", "en", "--human", path)
	assert.Equal(t, "notes:  C sharp, E, A\n  A major: A 4, C sharp 4, E 4\n", out)
}

func TestAnalyzeCommandSilence(t *testing.T) {
	path := writeWAV(t, 44100, make([]float64, 4410))

	out := run(t, "analyze", path)
	assert.Equal(t, "notes:  -\nchords: -\n", out)
}

func TestNoteCommand(t *testing.T) {
	out := run(t, "note", "--locale", "en", "440", "C♯3")
	assert.Equal(t, "A4\tA\t440.00 Hz\tA 4\nC♯3\tC♯\t138.59 Hz\tC sharp 3\n", out)
}

func TestNoteCommandRejectsNonPositive(t *testing.T) {
	*cfg = *config.Default()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"note", "0"})
	assert.ErrorIs(t, rootCmd.Execute(), pitch.ErrInvalidFrequency)
}

func TestChordsCommand(t *testing.T) {
	out := run(t, "chords", "--chords", "triads")
	assert.Contains(t, out, "C       C E G\n")
	assert.Contains(t, out, "Bm      B D F♯\n")
}

func TestPollLoop(t *testing.T) {
	const sampleRate = 40960
	source := &audio.AudioBuffer{Samples: sines(8192, sampleRate, 440), SampleRate: sampleRate}

	capturer, err := audio.NewFileCapturer(source, 8192, 4096, true)
	require.NoError(t, err)
	require.NoError(t, capturer.Start())
	defer capturer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipeline := analysis.NewPipeline(pitch.DefaultAnalyzerConfig(), chord.Standard())

	var got analysis.Result
	var db float64
	pollLoop(ctx, capturer, pipeline, 4096, 20*time.Millisecond, func(res analysis.Result, _ float64, level float64) {
		got = res
		db = level
		cancel()
	})

	assert.Equal(t, []string{"A"}, got.PitchClasses)
	assert.Contains(t, got.Chords, "A")
	assert.Less(t, db, 0.0)
}

func TestGetAudioLevel(t *testing.T) {
	rms, db := getAudioLevel(nil)
	assert.Zero(t, rms)
	assert.Equal(t, -100.0, db)

	rms, db = getAudioLevel([]float64{0.5, -0.5, 0.5, -0.5})
	assert.InDelta(t, 0.5, rms, 1e-12)
	assert.InDelta(t, -6.0206, db, 1e-3)

	_, db = getAudioLevel(make([]float64, 16))
	assert.Equal(t, -100.0, db)
}
