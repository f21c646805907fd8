// Package timeit measures the execution time of Go functions.
//
// # Overview
//
// timeit is a small wall-clock microbenchmarking aid in the spirit of
// Python's timeit module. It provides:
//
//   - A wrapper that times repeated invocations of any function
//   - Configurable trial and call counts, with warmup trials
//   - Optional garbage collector suppression during measurement
//   - Per-trial timings and their minimum, recorded on the wrapper
//   - A default, process-wide benchmarker for quick use
//
// When measuring performance, usually only the lowest time is of interest:
// variance between trials is far more likely to come from scheduling than
// from the measured code, so the minimum is the most honest summary value.
//
// # Quick Start
//
//	import "github.com/feather-lang/timeit"
//
//	func main() {
//	    timeit.BasicConfig(timeit.WithTrials(5), timeit.WithCalls(100))
//
//	    f := timeit.Wrap(fib)
//	    out := f.Call(25)
//
//	    fmt.Println(out[0])      // fib(25), exactly what fib(25) returns
//	    fmt.Println(f.MinTime()) // fastest of the 5 trials
//	    fmt.Println(f.Timings()) // all 5 trial durations
//	}
//
// # Measuring
//
// [Wrap] accepts any function and returns a [Func] whose Call method has the
// same calling convention as the original: arguments are passed through and
// the original results are returned. Each Call performs the configured
// trials, records the results on the Func, then invokes the function one
// final time and returns that call's results. A function with side effects
// is therefore executed warmup*calls + trials*calls + 1 times per Call;
// measured functions should be idempotent or the caller must accept this.
//
// One-off measurements that need no configuration can use [Measure]:
//
//	elapsed := timeit.Measure(func() { sort.Strings(data) })
//
// # Configuring
//
// The package-level functions operate on a single default [Benchmarker].
// [BasicConfig] reconfigures it partially, keeping current values for any
// option not supplied:
//
//	timeit.BasicConfig(timeit.WithTrials(10))       // calls, GC unchanged
//	timeit.BasicConfig(timeit.WithGCDisabled(true)) // trials unchanged
//
// [Disable] turns every wrapper created from the default benchmarker into a
// plain pass-through with no timing overhead; [Enable] turns measurement
// back on. Previously recorded timings are never discarded by disabling.
//
// For independent benchmarking profiles, create separate instances with
// [New]; each owns its configuration:
//
//	quick := timeit.New()
//	quick.Configure(3, 10, false)
//
//	thorough := timeit.New()
//	thorough.Configure(50, 1000, true)
//
// # Garbage Collection
//
// Configuring with GC disabled suppresses the collector for the duration of
// one Call's trials and restores the previous setting afterwards, even if
// the measured function panics. This shows more accurately how much CPU time
// the function itself consumes, but note the suppression is process-wide
// while it lasts.
//
// # Concurrency
//
// A Benchmarker and the Funcs created from it are not safe for concurrent
// use from multiple goroutines. Timings and configuration are unsynchronized
// by design; callers sharing them across goroutines must provide their own
// locking.
package timeit
