//go:build !headless

package main

import (
	"context"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

// play streams src to the default audio device until ctx is done.
func play(ctx context.Context, sampleRate int, src io.Reader) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   40 * time.Millisecond,
	}

	otoCtx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready

	player := otoCtx.NewPlayer(src)
	player.Play()
	<-ctx.Done()
	player.Pause()
	return player.Close()
}
