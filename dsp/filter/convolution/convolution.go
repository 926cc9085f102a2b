// Package convolution provides a fixed-window filter with a kernel slot for
// raw unsigned noise samples.
//
// The filter carries a 128-tap kernel, but the kernel is not applied yet:
// Process returns the per-term mean of the whole 128-slot window, identical to
// an average.MovingAverage of size 128 with capacity wrap. SetKernel stores
// taps for inspection only.
package convolution

import (
	"fmt"

	"github.com/cwbudde/algo-cvnoise/internal/ring"
)

// Taps is the window and kernel length.
const Taps = ring.Capacity

// Convolution is a 128-slot window filter with an unapplied kernel.
type Convolution struct {
	buf    ring.Buffer
	kernel [Taps]uint64
}

// New constructs a convolution filter with an all-zero kernel.
func New() *Convolution {
	return &Convolution{}
}

// Kernel returns a copy of the stored kernel.
func (c *Convolution) Kernel() [Taps]uint64 { return c.kernel }

// SetKernel stores taps. len(taps) must not exceed Taps; missing taps are zero.
func (c *Convolution) SetKernel(taps []uint64) error {
	if len(taps) > Taps {
		return fmt.Errorf("convolution: kernel length must be <= %d: %d", Taps, len(taps))
	}
	c.kernel = [Taps]uint64{}
	copy(c.kernel[:], taps)
	return nil
}

// Process writes v and returns the window output.
func (c *Convolution) Process(v uint64) uint64 {
	c.buf.Write(v, Taps)
	return c.buf.TermMean(Taps)
}

// ProcessInPlace filters buf in place.
func (c *Convolution) ProcessInPlace(buf []uint64) {
	for i := range buf {
		buf[i] = c.Process(buf[i])
	}
}

// Reset clears the window. The kernel is kept.
func (c *Convolution) Reset() { c.buf.Reset() }
