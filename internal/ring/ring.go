// Package ring holds the fixed-capacity sample store behind the window filters.
package ring

// Capacity is the number of slots in every Buffer.
const Capacity = 128

// Buffer is a circular store of raw samples with a write cursor.
type Buffer struct {
	slots  [Capacity]uint64
	cursor int
}

// Write stores v at the cursor and advances the cursor modulo span. Spans
// outside [1, Capacity] are pinned to that range, so the cursor never leaves
// the buffer even if span shrinks below the current cursor.
func (b *Buffer) Write(v uint64, span int) {
	span = clampSpan(span)
	b.slots[b.cursor] = v
	b.cursor = (b.cursor + 1) % span
}

// Cursor returns the index of the next write.
func (b *Buffer) Cursor() int { return b.cursor }

// At returns the sample in slot i.
func (b *Buffer) At(i int) uint64 { return b.slots[i] }

// TermMean returns the sum of slot/n over the first n slots. Each term is
// truncated before summing, so the result never exceeds the largest slot.
func (b *Buffer) TermMean(n int) uint64 {
	n = clampSpan(n)
	div := uint64(n)

	var sum uint64
	for _, v := range b.slots[:n] {
		sum += v / div
	}
	return sum
}

// Fill sets every slot to v without moving the cursor.
func (b *Buffer) Fill(v uint64) {
	for i := range b.slots {
		b.slots[i] = v
	}
}

// Reset clears all slots and rewinds the cursor.
func (b *Buffer) Reset() {
	b.slots = [Capacity]uint64{}
	b.cursor = 0
}

func clampSpan(span int) int {
	if span < 1 {
		return 1
	}
	if span > Capacity {
		return Capacity
	}
	return span
}
