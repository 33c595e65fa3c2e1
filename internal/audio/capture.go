package audio

import (
	"errors"
	"sync"
	"time"
)

// Errors
var (
	ErrEmptyBuffer       = errors.New("empty audio buffer")
	ErrAlreadyCapturing  = errors.New("audio capture already started")
	ErrNotCapturing      = errors.New("audio capture not started")
	ErrNotEnoughSamples  = errors.New("not enough samples captured yet")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// AudioBuffer represents a buffer of mono audio samples
type AudioBuffer struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the length of the buffer in time
func (b *AudioBuffer) Duration() time.Duration {
	if b == nil || b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(b.Samples)) * time.Second / time.Duration(b.SampleRate)
}

// Capturer defines the interface for audio capture
type Capturer interface {
	// Start begins audio capture
	Start() error

	// Stop ends audio capture
	Stop() error

	// Window returns a copy of the most recent n captured samples
	Window(n int) (*AudioBuffer, error)

	// IsCapturing returns true if currently capturing audio
	IsCapturing() bool
}

// window snapshots the newest n samples of ring
func window(ring *Ring, n, sampleRate int) (*AudioBuffer, error) {
	if ring.Len() < n {
		return nil, ErrNotEnoughSamples
	}
	return &AudioBuffer{Samples: ring.Latest(n), SampleRate: sampleRate}, nil
}

// FileCapturer replays a decoded buffer into a ring at real-time pace, as if
// it were coming from an input device
type FileCapturer struct {
	source          *AudioBuffer
	ring            *Ring
	framesPerBuffer int
	loop            bool

	mu          sync.Mutex
	isCapturing bool
	done        chan struct{}
	wg          sync.WaitGroup
}

// NewFileCapturer creates a capturer replaying source in chunks of
// framesPerBuffer samples into a ring of the given capacity
func NewFileCapturer(source *AudioBuffer, capacity, framesPerBuffer int, loop bool) (*FileCapturer, error) {
	if source == nil || len(source.Samples) == 0 || source.SampleRate <= 0 {
		return nil, ErrEmptyBuffer
	}
	if framesPerBuffer < 1 {
		framesPerBuffer = 1
	}
	return &FileCapturer{
		source:          source,
		ring:            NewRing(capacity),
		framesPerBuffer: framesPerBuffer,
		loop:            loop,
	}, nil
}

// Start begins replaying
func (c *FileCapturer) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isCapturing {
		return ErrAlreadyCapturing
	}

	c.done = make(chan struct{})
	c.isCapturing = true
	c.wg.Add(1)
	go c.run(c.done)
	return nil
}

func (c *FileCapturer) run(done <-chan struct{}) {
	defer c.wg.Done()

	interval := time.Duration(c.framesPerBuffer) * time.Second / time.Duration(c.source.SampleRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	pos := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		end := min(pos+c.framesPerBuffer, len(c.source.Samples))
		c.ring.Write(c.source.Samples[pos:end])
		pos = end

		if pos >= len(c.source.Samples) {
			if !c.loop {
				return
			}
			pos = 0
		}
	}
}

// Stop ends replaying
func (c *FileCapturer) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isCapturing {
		return ErrNotCapturing
	}

	close(c.done)
	c.wg.Wait()
	c.isCapturing = false
	return nil
}

// Window returns the most recent n samples
func (c *FileCapturer) Window(n int) (*AudioBuffer, error) {
	if !c.IsCapturing() {
		return nil, ErrNotCapturing
	}
	return window(c.ring, n, c.source.SampleRate)
}

// IsCapturing returns true if currently replaying
func (c *FileCapturer) IsCapturing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isCapturing
}
