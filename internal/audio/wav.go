package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

// DecodeWAV decodes a WAV file into mono samples normalized to [-1, 1)
func DecodeWAV(path string) (*AudioBuffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	buf, err := DecodeWAVReader(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, nil
}

// DecodeWAVReader decodes WAV data; channels are averaged into mono
func DecodeWAVReader(r io.ReadSeeker) (*AudioBuffer, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, ErrUnsupportedFormat
	}

	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if pcm.Format == nil || pcm.Format.NumChannels < 1 || pcm.Format.SampleRate <= 0 {
		return nil, ErrUnsupportedFormat
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth < 8 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	channels := pcm.Format.NumChannels
	scale := float64(int64(1) << (bitDepth - 1))
	offset := 0.0
	if bitDepth == 8 {
		// 8-bit PCM is unsigned
		offset = scale
	}

	mono := make([]float64, len(pcm.Data)/channels)
	for i := range mono {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += (float64(pcm.Data[i*channels+ch]) - offset) / scale
		}
		mono[i] = sum / float64(channels)
	}

	return &AudioBuffer{Samples: mono, SampleRate: pcm.Format.SampleRate}, nil
}
