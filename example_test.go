package timeit_test

import (
	"fmt"

	"github.com/feather-lang/timeit"
)

func Example() {
	bench := timeit.New()
	bench.Configure(3, 2, false)

	calls := 0
	f := bench.Wrap(func(x int) int {
		calls++
		return x * 2
	})

	out := f.Call(21)
	fmt.Println(out[0], calls, len(f.Timings()))
	// Output: 42 7 3
}

func ExampleBenchmarker_Disable() {
	bench := timeit.New()
	bench.Disable()

	calls := 0
	f := bench.Wrap(func() { calls++ })
	f.Call()

	fmt.Println(calls, f.Measured())
	// Output: 1 false
}

func ExampleBenchmarker_Wrap_errors() {
	bench := timeit.New()

	f := bench.Wrap(func(d int) (int, error) {
		if d == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return 10 / d, nil
	})

	out := f.Call(0)
	fmt.Println(out[0], out[1])
	// Output: 0 division by zero
}
