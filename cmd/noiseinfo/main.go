// Command noiseinfo renders the noise engine and prints statistics of both
// output channels for generator/shaper combinations.
//
// Usage:
//
//	noiseinfo [flags] [generator[/shaper] ...]
//
// Without arguments it analyzes every combination.
//
// Examples:
//
//	noiseinfo lcg32/average
//	noiseinfo -ticks 65536 xorshift32
//	noiseinfo -encoder 20 -mode 1 lcg32/ladder
//	noiseinfo -list
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
	"github.com/cwbudde/algo-cvnoise/dsp/engine"
	"github.com/cwbudde/algo-cvnoise/dsp/noise"
	"github.com/cwbudde/algo-cvnoise/dsp/window"
	"github.com/cwbudde/algo-cvnoise/measure/color"
	"github.com/cwbudde/algo-cvnoise/measure/stream"
)

type combo struct {
	kind   noise.Kind
	shaper engine.Shaper
}

func (c combo) String() string { return c.kind.String() + "/" + c.shaper.String() }

type settings struct {
	ticks   int
	fftSize int
	window  window.Type
	seed    uint64
	encoder int
	presses int
	control core.ControlConfig
}

type report struct {
	combo
	channel [engine.Channels]stream.Stats
	color   [engine.Channels]color.Result
}

func (s settings) validate() error {
	if s.fftSize <= 0 {
		return fmt.Errorf("fft size must be positive: %d", s.fftSize)
	}
	if s.ticks < s.fftSize {
		return fmt.Errorf("ticks (%d) must be at least the fft size (%d)", s.ticks, s.fftSize)
	}
	return nil
}

func main() {
	ticks := flag.Int("ticks", 16384, "number of ticks to render")
	fftSize := flag.Int("fft", 256, "analysis frame length (power of two)")
	windowName := flag.String("window", "hann", "analysis window: rectangular, hann, hamming, blackman, blackman-harris, flattop")
	seed := flag.Uint64("seed", engine.DefaultSeed, "seed for every generator")
	fullScale := flag.Int("fullscale", core.FullScale5V, "output code for full scale (4608 = 3V, 7680 = 5V)")
	tickRate := flag.Float64("tickrate", core.DefaultTickRate, "control tick rate in Hz")
	encoder := flag.Int("encoder", 0, "encoder detents applied before rendering (negative turns down)")
	mode := flag.Int("mode", 0, "button presses applied before the encoder")
	list := flag.Bool("list", false, "list generator and shaper names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: noiseinfo [flags] [generator[/shaper] ...]\n\n")
		fmt.Fprintf(os.Stderr, "Renders the noise engine and prints per-channel statistics.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, analyzes every generator/shaper combination.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  noiseinfo lcg32/average\n")
		fmt.Fprintf(os.Stderr, "  noiseinfo -ticks 65536 xorshift32\n")
		fmt.Fprintf(os.Stderr, "  noiseinfo -encoder 20 -mode 1 lcg32/ladder\n")
	}
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	if *list {
		printList()
		return
	}

	combos, err := resolveCombos(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	win, err := window.ParseType(*windowName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := settings{
		ticks:   *ticks,
		fftSize: *fftSize,
		window:  win,
		seed:    *seed,
		encoder: *encoder,
		presses: *mode,
		control: core.ApplyControlOptions(core.WithTickRate(*tickRate), core.WithFullScale(*fullScale)),
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	reports, err := analyzeAll(context.Background(), combos, cfg)
	if err != nil {
		log.Fatalf("error: %v", err)
	}

	printReports(reports, cfg)
}

func printList() {
	fmt.Println("generators:")
	for _, k := range noise.Kinds() {
		fmt.Printf("  %s\n", k)
	}
	fmt.Println("shapers:")
	for _, s := range engine.Shapers() {
		fmt.Printf("  %s\n", s)
	}
	fmt.Println("windows:")
	for _, w := range window.Types() {
		fmt.Printf("  %s\n", w)
	}
}

func resolveCombos(args []string) ([]combo, error) {
	if len(args) == 0 {
		args = make([]string, 0, len(noise.Kinds()))
		for _, k := range noise.Kinds() {
			args = append(args, k.String())
		}
	}

	var out []combo
	for _, arg := range args {
		genName, shaperName, hasShaper := strings.Cut(arg, "/")

		kind, err := noise.ParseKind(genName)
		if err != nil {
			return nil, err
		}

		if !hasShaper {
			for _, s := range engine.Shapers() {
				out = append(out, combo{kind: kind, shaper: s})
			}
			continue
		}

		shaper, err := engine.ParseShaper(shaperName)
		if err != nil {
			return nil, err
		}
		out = append(out, combo{kind: kind, shaper: shaper})
	}
	return out, nil
}

func analyzeAll(ctx context.Context, combos []combo, cfg settings) ([]report, error) {
	reports := make([]report, len(combos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, c := range combos {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := analyze(c, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", c, err)
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func analyze(c combo, cfg settings) (report, error) {
	if err := cfg.validate(); err != nil {
		return report{}, err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = c.kind.DefaultSeed()
	}

	e, err := engine.New(
		engine.WithPrimary(c.kind, seed),
		engine.WithSecondary(c.kind, seed),
		engine.WithSeekSource(c.kind, seed),
		engine.WithShaper(c.shaper),
		engine.WithControlConfig(cfg.control),
	)
	if err != nil {
		return report{}, err
	}

	for range cfg.presses {
		e.OnButtonPress()
	}
	step := 1
	if cfg.encoder < 0 {
		step = -1
	}
	for range abs(cfg.encoder) {
		e.OnEncoderMove(step)
	}

	frames := make([]engine.Frame, cfg.ticks)
	e.Render(frames)

	analyzer, err := color.NewAnalyzer(cfg.fftSize, core.WithTickRate(cfg.control.TickRate))
	if err != nil {
		return report{}, err
	}
	if err := analyzer.SetWindow(cfg.window); err != nil {
		return report{}, err
	}

	r := report{combo: c}
	codes := make([]int, len(frames))
	samples := make([]float64, len(frames))
	for ch := range engine.Channels {
		for i, f := range frames {
			codes[i] = f[ch]
		}
		stream.Normalize(samples, codes, cfg.control.FullScale)
		r.channel[ch] = stream.Calculate(samples)

		if r.color[ch], err = analyzer.Analyze(samples); err != nil {
			return report{}, err
		}
	}
	return r, nil
}

func printReports(reports []report, cfg settings) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Combination\tCh\tMean\tStdDev\tRange\tReversals/1k\tHolds/1k\tSlope [dB/oct]\tCentroid [Hz]\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----------\t--\t----\t------\t-----\t------------\t--------\t--------------\t-------------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	perK := 1000 / float64(max(cfg.ticks, 1))
	for _, r := range reports {
		for ch := range engine.Channels {
			s := r.channel[ch]
			c := r.color[ch]
			if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.1f\t%.1f\t%.2f\t%.1f\n",
				r.combo,
				ch,
				s.Mean,
				s.StdDev,
				s.Range,
				float64(s.Reversals)*perK,
				float64(s.Holds)*perK,
				c.SlopeDBPerOctave,
				c.CentroidHz,
			); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
				return
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
