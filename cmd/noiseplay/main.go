// Command noiseplay auditions one output channel of the noise engine
// through the default audio device.
//
// Each control tick is held for -hold audio samples. Encoder and button
// events are read from stdin, one per line:
//
//	+ / -      one encoder detent up or down
//	+N / -N    N detents in a single move
//	b          button press (toggles the ladder edit mode)
//	s          restart the engine with default parameters
//
// Build with -tags headless to write raw float32 PCM to stdout instead.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
	"github.com/cwbudde/algo-cvnoise/dsp/engine"
	"github.com/cwbudde/algo-cvnoise/dsp/noise"
)

func main() {
	gen := flag.String("gen", "lcg32", "generator: lfsr32, lcg32, xorshift32, xorshift64")
	shaperName := flag.String("shaper", "average", "channel 1 shaper: average, exponential, ladder, convolution, seek")
	channel := flag.Int("channel", 1, "output channel to play (0 = raw, 1 = shaped)")
	rate := flag.Int("rate", 48000, "audio sample rate in Hz")
	hold := flag.Int("hold", 3, "audio samples per control tick")
	duration := flag.Duration("duration", 0, "stop after this long (0 = until interrupted)")
	encoder := flag.Int("encoder", 0, "encoder detents applied at start")
	press := flag.Int("press", 0, "button presses applied at start")
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	kind, err := noise.ParseKind(*gen)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	shaper, err := engine.ParseShaper(*shaperName)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}
	if *channel < 0 || *channel >= engine.Channels {
		log.Fatalf("error: channel must be 0 or 1, got %d\n", *channel)
	}
	if *rate <= 0 || *hold <= 0 {
		log.Fatalf("error: rate and hold must be positive\n")
	}

	e, err := engine.New(
		engine.WithPrimary(kind, kind.DefaultSeed()),
		engine.WithSecondary(kind, kind.DefaultSeed()),
		engine.WithSeekSource(kind, kind.DefaultSeed()),
		engine.WithShaper(shaper),
		engine.WithControlConfig(core.ApplyControlOptions(
			core.WithTickRate(float64(*rate)/float64(*hold)),
		)),
	)
	if err != nil {
		log.Fatalf("error: %v\n", err)
	}

	src := newTickReader(e, *channel, *hold)
	for range *press {
		src.Press()
	}
	src.Move(*encoder)
	log.Printf("playing %s/%s channel %d at %d Hz (%.1f ticks/s)\n",
		kind, shaper, *channel, *rate, float64(*rate)/float64(*hold))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		select {
		case sig := <-signalCh:
			log.Printf("Caught signal %s: shutting down...\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return play(ctx, *rate, src)
	})
	g.Go(func() error {
		return receiveCommands(ctx, os.Stdin, src)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("error: %v\n", err)
	}

	p := src.Params()
	log.Printf("stopped after %d ticks (mode=%d slope=%d size=%d exp=%.2f ladder=%.2f/%.2f)\n",
		src.Ticks(), p.Mode, p.Slope, p.AverageSize, p.ExpCoefficient, p.LadderCoefficient, p.LadderResonance)
}

// receiveCommands applies encoder and button events read line by line
// until ctx is done or r is exhausted.
func receiveCommands(ctx context.Context, r io.Reader, src *tickReader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.Printf("error while reading commands: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				// stdin closed; keep playing until stopped
				<-ctx.Done()
				return nil
			}
			cmd, err := parseCommand(line)
			if err != nil {
				log.Printf("%v", err)
				continue
			}
			cmd.apply(src)
		}
	}
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("noiseplay: "+format, args...)
}
