package timeit

import "fmt"

// root is the process-wide default benchmarker used by the package-level
// functions. It is created enabled, with one trial of one call.
var root = New()

// Default returns the process-wide default benchmarker, for callers that
// want to pass it around or read its configuration directly.
func Default() *Benchmarker { return root }

// Option adjusts one field of a benchmarker's policy. Options are applied by
// [BasicConfig]; fields with no option supplied keep their current values.
type Option func(*Benchmarker)

// WithTrials sets the number of timed trials per Call.
func WithTrials(n int) Option {
	return func(b *Benchmarker) { b.trials = n }
}

// WithCalls sets the number of back-to-back invocations within one trial.
func WithCalls(n int) Option {
	return func(b *Benchmarker) { b.calls = n }
}

// WithGCDisabled sets whether the garbage collector is suppressed for the
// duration of a Call's trials.
func WithGCDisabled(disabled bool) Option {
	return func(b *Benchmarker) { b.noGC = disabled }
}

// WithWarmup sets the number of unrecorded warmup trials run before the
// timed trials.
func WithWarmup(n int) Option {
	return func(b *Benchmarker) { b.warmup = n }
}

// BasicConfig reconfigures the default benchmarker and re-enables
// measurement. Only the fields named by the given options change; everything
// else keeps its current value, so partial reconfiguration is safe:
//
//	timeit.BasicConfig(timeit.WithTrials(5)) // calls, GC, warmup unchanged
//
// Validation happens before anything is applied; on error the default
// benchmarker is left untouched.
func BasicConfig(opts ...Option) error {
	cfg := *root
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.warmup < 0 {
		return fmt.Errorf("BasicConfig: warmup trials must not be negative, got %d", cfg.warmup)
	}
	if err := root.Configure(cfg.trials, cfg.calls, cfg.noGC); err != nil {
		return err
	}
	root.warmup = cfg.warmup
	return nil
}

// Enable turns measurement on for the default benchmarker.
func Enable() { root.Enable() }

// Disable turns measurement off for the default benchmarker.
func Disable() { root.Disable() }

// Wrap wraps fn for measurement under the default benchmarker's policy.
// See [Benchmarker.Wrap].
func Wrap(fn any) *Func { return root.Wrap(fn) }
