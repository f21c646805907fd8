package timeit

import "time"

// Measure times a single invocation of fn and returns the elapsed wall-clock
// time. It is the quick, configuration-free counterpart to wrapping: no
// trials, no recording, no policy.
//
//	elapsed := timeit.Measure(func() { sort.Strings(data) })
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
