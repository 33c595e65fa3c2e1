package audio

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWAV(t *testing.T, sampleRate, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	require.NoError(t, enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())
	return path
}

func TestDecodeWAVMono(t *testing.T) {
	path := writeWAV(t, 8000, 1, []int{0, 16384, -16384, -32768})

	buf, err := DecodeWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 8000, buf.SampleRate)
	assert.Equal(t, []float64{0, 0.5, -0.5, -1}, buf.Samples)
}

func TestDecodeWAVAveragesChannels(t *testing.T) {
	path := writeWAV(t, 44100, 2, []int{16384, 0, -16384, -16384, 8192, 24576})

	buf, err := DecodeWAV(path)
	require.NoError(t, err)
	assert.Equal(t, 44100, buf.SampleRate)
	assert.Equal(t, []float64{0.25, -0.5, 0.5}, buf.Samples)
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a RIFF file"), 0o644))

	_, err := DecodeWAV(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = DecodeWAV(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
