package average_test

import (
	"fmt"

	"github.com/cwbudde/algo-cvnoise/dsp/filter/average"
)

func ExampleMovingAverage_Process() {
	m, err := average.New(average.WithSize(4))
	if err != nil {
		panic(err)
	}

	for _, v := range []uint64{5, 5, 5, 5} {
		fmt.Print(m.Process(v), " ")
	}
	fmt.Println()

	// Output:
	// 1 2 3 4
}
