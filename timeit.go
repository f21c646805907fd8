package timeit

import "fmt"

// Benchmarker holds a measurement policy: how many trials to run, how many
// calls make up one trial, whether the garbage collector is suppressed while
// measuring, and whether measurement is enabled at all.
//
// Create one with [New] and hand functions to [Benchmarker.Wrap]. Multiple
// independent benchmarkers can coexist, one per benchmarking profile; each
// owns its configuration. A Benchmarker is not safe for concurrent use from
// multiple goroutines.
//
//	bench := timeit.New()
//	bench.Configure(5, 100, false)
//	f := bench.Wrap(parse)
type Benchmarker struct {
	disabled bool
	trials   int // timed trials per Call
	calls    int // invocations per trial
	noGC     bool
	warmup   int // unrecorded trials before the timed ones
}

// New creates a Benchmarker with the default policy: enabled, one trial of
// one call, garbage collector left running, no warmup.
func New() *Benchmarker {
	return &Benchmarker{trials: 1, calls: 1}
}

// Enable turns measurement on for wrappers created from this benchmarker.
// Idempotent.
func (b *Benchmarker) Enable() { b.disabled = false }

// Disable turns measurement off: subsequent calls to wrappers created from
// this benchmarker invoke the wrapped function exactly once and pass its
// results straight through, with no timing overhead and no mutation of
// previously recorded timings. Idempotent.
func (b *Benchmarker) Disable() { b.disabled = true }

// Enabled reports whether measurement is currently enabled.
func (b *Benchmarker) Enabled() bool { return !b.disabled }

// Configure atomically replaces the measurement policy and re-enables
// measurement. trials is the number of timed trials per Call and calls the
// number of back-to-back invocations within one trial; both must be at
// least 1. disableGC suppresses the garbage collector for the duration of
// the trials.
//
// On error the policy is left unchanged. Warmup trials are a separate
// setting and are not touched; see [Benchmarker.SetWarmup].
func (b *Benchmarker) Configure(trials, calls int, disableGC bool) error {
	if trials < 1 {
		return fmt.Errorf("Configure: trials must be at least 1, got %d", trials)
	}
	if calls < 1 {
		return fmt.Errorf("Configure: calls per trial must be at least 1, got %d", calls)
	}
	b.disabled = false
	b.trials = trials
	b.calls = calls
	b.noGC = disableGC
	return nil
}

// SetWarmup sets the number of unrecorded warmup trials run before the timed
// trials of each Call. Warmup trials invoke the wrapped function the same
// number of times as a timed trial but contribute nothing to the recorded
// timings. The default is 0.
func (b *Benchmarker) SetWarmup(n int) error {
	if n < 0 {
		return fmt.Errorf("SetWarmup: warmup trials must not be negative, got %d", n)
	}
	b.warmup = n
	return nil
}

// Trials returns the configured number of timed trials per Call.
func (b *Benchmarker) Trials() int { return b.trials }

// Calls returns the configured number of invocations per trial.
func (b *Benchmarker) Calls() int { return b.calls }

// GCDisabled reports whether the garbage collector is suppressed while
// measuring.
func (b *Benchmarker) GCDisabled() bool { return b.noGC }

// WarmupTrials returns the configured number of warmup trials.
func (b *Benchmarker) WarmupTrials() int { return b.warmup }
