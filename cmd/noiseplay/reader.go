package main

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cwbudde/algo-cvnoise/dsp/engine"
)

const bytesPerSample = 4

// tickReader renders engine ticks as mono float32 little-endian PCM.
// Each tick is held for a fixed number of samples and mapped from
// [0, full scale] to [-1, 1]. Events and Read are serialized.
type tickReader struct {
	mu        sync.Mutex
	e         *engine.Engine
	channel   int
	hold      int
	remaining int
	current   float32
}

func newTickReader(e *engine.Engine, channel, hold int) *tickReader {
	return &tickReader{e: e, channel: channel, hold: max(hold, 1)}
}

func (r *tickReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(p) / bytesPerSample
	for i := range n {
		if r.remaining == 0 {
			r.current = r.sample(r.e.Tick())
			r.remaining = r.hold
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(r.current))
		r.remaining--
	}
	return n * bytesPerSample, nil
}

func (r *tickReader) sample(f engine.Frame) float32 {
	fs := r.e.FullScale()
	return float32(2*float64(f[r.channel])/float64(fs) - 1)
}

// Move applies one encoder move of delta detents.
func (r *tickReader) Move(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.e.OnEncoderMove(delta)
}

// Press applies one button press.
func (r *tickReader) Press() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.e.OnButtonPress()
}

// Restart resets the engine parameters.
func (r *tickReader) Restart() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.e.Start()
	r.remaining = 0
}

func (r *tickReader) Params() engine.Params {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.e.Params()
}

func (r *tickReader) Ticks() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.e.Ticks()
}
