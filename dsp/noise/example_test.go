package noise_test

import (
	"fmt"

	"github.com/cwbudde/algo-cvnoise/dsp/noise"
)

func ExampleNewSource() {
	for _, kind := range noise.Kinds() {
		src, err := noise.NewSource(kind, 1)
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s %d bits: %d\n", kind, src.Bits(), src.Next())
	}

	// Output:
	// lfsr32 32 bits: 2147483746
	// lcg32 32 bits: 1103947680
	// xorshift32 32 bits: 270369
	// xorshift64 64 bits: 1082269761
}

func ExampleTargetSeek() {
	ts, err := noise.NewTargetSeek(noise.NewLCG32Default())
	if err != nil {
		panic(err)
	}

	if err := ts.SetState(noise.TargetSeekState{Value: 10, Target: 0, Direction: -1, Slope: 4}); err != nil {
		panic(err)
	}

	for range 3 {
		fmt.Print(ts.Next(), " ")
	}
	fmt.Println(ts.State().Direction)

	// Output:
	// 6 2 0 1
}
