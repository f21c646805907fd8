package timeit

import (
	"fmt"
	"reflect"
	"runtime/debug"
	"time"
)

// Func is a measured wrapper around a Go function, created with
// [Benchmarker.Wrap]. Calling it through [Func.Call] behaves like calling
// the original function, and additionally records how long the configured
// trials took. The recorded timings belong to this Func alone and are
// overwritten by each measured Call.
type Func struct {
	bench   *Benchmarker
	fn      reflect.Value
	timings []time.Duration
	min     time.Duration
}

// Wrap wraps fn for measurement under b's policy. fn may have any signature,
// including variadic; arguments given to [Func.Call] are passed through
// unchanged. Wrap panics if fn is not a function.
//
//	f := bench.Wrap(strconv.Atoi)
//	out := f.Call("42")
//	n, err := out[0].(int), out[1]
func (b *Benchmarker) Wrap(fn any) *Func {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("Wrap: expected function, got %T", fn))
	}
	return &Func{bench: b, fn: v}
}

// Call invokes the wrapped function with args and returns its results, the
// way a direct call would. If the owning benchmarker is enabled, Call first
// runs the configured warmup and timed trials, records the per-trial
// durations on the Func, and then performs one final invocation whose
// results are returned. If the benchmarker is disabled, the function is
// invoked exactly once and nothing is recorded.
//
// A panic from the wrapped function propagates unchanged; in that case the
// garbage collector state is still restored and the timings from the last
// successful Call, if any, are retained unchanged. An error returned by the
// wrapped function is an ordinary result value, not a failure: it is timed
// and passed through like any other result.
//
// Call panics if args do not match the wrapped function's parameters.
func (f *Func) Call(args ...any) []any {
	in := f.inputs(args)
	if f.bench.disabled {
		return results(f.fn.Call(in))
	}
	timings := f.measure(in)
	f.timings = timings
	f.min = minDuration(timings)
	return results(f.fn.Call(in))
}

// Timings returns the per-trial durations recorded by the most recent
// measured Call, in trial order, or nil if no measurement has completed.
// The slice is overwritten conceptually, not appended to: its length always
// matches the trial count configured at the time of that Call.
func (f *Func) Timings() []time.Duration { return f.timings }

// MinTime returns the smallest recorded trial duration, the single most
// relevant summary value. It is zero until a measured Call completes.
func (f *Func) MinTime() time.Duration { return f.min }

// Measured reports whether this Func has completed at least one measured
// Call.
func (f *Func) Measured() bool { return f.timings != nil }

// measure runs the warmup and timed trials and returns the timed durations.
// Garbage collector suppression is scoped to this method so the previous
// setting is restored on every exit path, including a panic from the
// measured function.
func (f *Func) measure(in []reflect.Value) []time.Duration {
	b := f.bench
	if b.noGC {
		old := debug.SetGCPercent(-1)
		defer debug.SetGCPercent(old)
	}
	for i := 0; i < b.warmup; i++ {
		f.trial(in)
	}
	timings := make([]time.Duration, 0, b.trials)
	for i := 0; i < b.trials; i++ {
		timings = append(timings, f.trial(in))
	}
	return timings
}

// trial times one block of back-to-back invocations. The duration covers the
// whole block, not a single call.
func (f *Func) trial(in []reflect.Value) time.Duration {
	start := time.Now()
	for i := 0; i < f.bench.calls; i++ {
		f.fn.Call(in)
	}
	return time.Since(start)
}

// inputs converts args to reflect values for the wrapped function, checking
// arity up front so mismatches fail with a clear message rather than deep
// inside a trial.
func (f *Func) inputs(args []any) []reflect.Value {
	t := f.fn.Type()
	numIn := t.NumIn()
	if t.IsVariadic() {
		if len(args) < numIn-1 {
			panic(fmt.Sprintf("Call: wrong number of arguments: expected at least %d, got %d", numIn-1, len(args)))
		}
	} else if len(args) != numIn {
		panic(fmt.Sprintf("Call: wrong number of arguments: expected %d, got %d", numIn, len(args)))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			// Untyped nil needs the parameter's type to become a value.
			var paramType reflect.Type
			if t.IsVariadic() && i >= numIn-1 {
				paramType = t.In(numIn - 1).Elem()
			} else {
				paramType = t.In(i)
			}
			in[i] = reflect.Zero(paramType)
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	return in
}

// results unpacks reflect call results into plain values.
func results(out []reflect.Value) []any {
	if len(out) == 0 {
		return nil
	}
	vals := make([]any, len(out))
	for i, v := range out {
		vals[i] = v.Interface()
	}
	return vals
}

func minDuration(timings []time.Duration) time.Duration {
	min := timings[0]
	for _, t := range timings[1:] {
		if t < min {
			min = t
		}
	}
	return min
}
