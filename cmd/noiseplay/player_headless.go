//go:build headless

package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"
)

// play writes src to stdout in real time until ctx is done.
func play(ctx context.Context, sampleRate int, src io.Reader) error {
	const period = 20 * time.Millisecond

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	samples := max(sampleRate*int(period/time.Millisecond)/1000, 1)
	buf := make([]byte, samples*bytesPerSample)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := io.ReadFull(src, buf)
			if err != nil {
				return err
			}
			if _, err := w.Write(buf[:n]); err != nil {
				return err
			}
		}
	}
}
