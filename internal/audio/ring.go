package audio

import "sync"

// Ring is a fixed-capacity circular buffer of samples. When full, writes
// overwrite the oldest samples. It is safe for one writer (the capture
// callback) and one reader (the polling loop) running concurrently.
type Ring struct {
	mu       sync.Mutex
	buffer   []float64
	writePos int
	count    int
}

// NewRing creates a ring buffer holding at most capacity samples
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{buffer: make([]float64, capacity)}
}

// Write appends samples, silently dropping the oldest ones beyond capacity
func (r *Ring) Write(samples []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	size := len(r.buffer)
	if len(samples) > size {
		samples = samples[len(samples)-size:]
	}

	for _, sample := range samples {
		r.buffer[r.writePos] = sample
		r.writePos = (r.writePos + 1) % size
	}

	r.count += len(samples)
	if r.count > size {
		r.count = size
	}
}

// Latest returns a copy of the newest n samples, oldest first. Fewer are
// returned when the ring holds less than n.
func (r *Ring) Latest(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n > r.count {
		n = r.count
	}
	if n <= 0 {
		return []float64{}
	}

	size := len(r.buffer)
	out := make([]float64, n)
	start := (r.writePos - n + size) % size
	for i := range out {
		out[i] = r.buffer[(start+i)%size]
	}
	return out
}

// Len returns the number of samples currently held
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Cap returns the ring capacity
func (r *Ring) Cap() int {
	return len(r.buffer)
}

// Reset empties the ring
func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writePos = 0
	r.count = 0
}
