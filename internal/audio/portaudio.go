package audio

import (
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioCapturer captures the default input device into a ring buffer
type PortAudioCapturer struct {
	mu              sync.Mutex
	isCapturing     bool
	stream          *portaudio.Stream
	ring            *Ring
	framesPerBuffer int
	sampleRate      int
	channels        int

	// the callback must not take mu: Stop holds it while the stream drains
	gainMutex     sync.Mutex
	amplification float64 // Audio signal amplification factor
}

// NewPortAudioCapturer creates a new audio capturer using PortAudio. The ring
// keeps the latest capacity mono samples.
func NewPortAudioCapturer(capacity, framesPerBuffer, sampleRate, channels int) (*PortAudioCapturer, error) {
	// Initialize PortAudio
	err := portaudio.Initialize()
	if err != nil {
		return nil, err
	}

	if channels < 1 {
		channels = 1
	}

	capturer := &PortAudioCapturer{
		ring:            NewRing(capacity),
		framesPerBuffer: framesPerBuffer,
		sampleRate:      sampleRate,
		channels:        channels,
		amplification:   1.0,
	}

	return capturer, nil
}

// Start begins audio capture
func (c *PortAudioCapturer) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isCapturing {
		return ErrAlreadyCapturing
	}

	// Open default input stream
	var err error
	c.stream, err = portaudio.OpenDefaultStream(
		c.channels, // input channels
		0,          // output channels (we don't need output)
		float64(c.sampleRate),
		c.framesPerBuffer,
		c.processAudio, // callback function
	)
	if err != nil {
		return err
	}

	// Start the stream
	err = c.stream.Start()
	if err != nil {
		c.stream.Close()
		return err
	}

	c.isCapturing = true
	return nil
}

// Stop ends audio capture and releases PortAudio
func (c *PortAudioCapturer) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isCapturing {
		return ErrNotCapturing
	}

	// Stop and close the stream
	err := c.stream.Stop()
	if err != nil {
		return err
	}

	err = c.stream.Close()
	if err != nil {
		return err
	}

	// Terminate PortAudio
	err = portaudio.Terminate()
	if err != nil {
		return err
	}

	c.isCapturing = false
	return nil
}

// processAudio is the stream callback; it runs on the PortAudio thread
func (c *PortAudioCapturer) processAudio(in []float32) {
	c.ring.Write(downmix(in, c.channels, c.gain()))
}

func (c *PortAudioCapturer) gain() float64 {
	c.gainMutex.Lock()
	defer c.gainMutex.Unlock()
	return c.amplification
}

// downmix averages interleaved channels into mono and applies gain
func downmix(in []float32, channels int, gain float64) []float64 {
	mono := make([]float64, len(in)/channels)
	for i := range mono {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(in[i*channels+ch])
		}
		mono[i] = sum / float64(channels) * gain
	}
	return mono
}

// Window returns the most recent n samples
func (c *PortAudioCapturer) Window(n int) (*AudioBuffer, error) {
	if !c.IsCapturing() {
		return nil, ErrNotCapturing
	}
	return window(c.ring, n, c.sampleRate)
}

// IsCapturing returns true if currently capturing audio
func (c *PortAudioCapturer) IsCapturing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isCapturing
}

// SetAmplification sets the audio amplification factor
func (c *PortAudioCapturer) SetAmplification(factor float64) {
	c.gainMutex.Lock()
	defer c.gainMutex.Unlock()

	// Ensure amplification is positive
	if factor < 0.1 {
		factor = 0.1
	}

	c.amplification = factor
}
