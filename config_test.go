package timeit_test

import (
	"testing"

	"github.com/feather-lang/timeit"
)

// resetDefault restores the default benchmarker's factory policy after a
// test that reconfigures it.
func resetDefault(t *testing.T) {
	t.Cleanup(func() {
		if err := timeit.BasicConfig(
			timeit.WithTrials(1),
			timeit.WithCalls(1),
			timeit.WithGCDisabled(false),
			timeit.WithWarmup(0),
		); err != nil {
			t.Fatalf("resetting default benchmarker failed: %v", err)
		}
	})
}

func TestBasicConfigPartial(t *testing.T) {
	resetDefault(t)

	if err := timeit.BasicConfig(timeit.WithCalls(4)); err != nil {
		t.Fatalf("BasicConfig failed: %v", err)
	}
	if err := timeit.BasicConfig(timeit.WithTrials(5)); err != nil {
		t.Fatalf("BasicConfig failed: %v", err)
	}

	bench := timeit.Default()
	if bench.Trials() != 5 {
		t.Errorf("expected 5 trials, got %d", bench.Trials())
	}
	if bench.Calls() != 4 {
		t.Errorf("expected calls per trial to survive partial reconfiguration, got %d", bench.Calls())
	}
	if bench.GCDisabled() {
		t.Error("expected GC suppression to survive partial reconfiguration as false")
	}
}

func TestBasicConfigReenables(t *testing.T) {
	resetDefault(t)

	timeit.Disable()
	if err := timeit.BasicConfig(timeit.WithTrials(2)); err != nil {
		t.Fatalf("BasicConfig failed: %v", err)
	}
	if !timeit.Default().Enabled() {
		t.Error("expected BasicConfig to re-enable measurement")
	}
}

func TestBasicConfigValidation(t *testing.T) {
	resetDefault(t)

	if err := timeit.BasicConfig(timeit.WithTrials(0)); err == nil {
		t.Error("expected error for zero trials")
	}
	if err := timeit.BasicConfig(timeit.WithCalls(-1)); err == nil {
		t.Error("expected error for negative calls")
	}
	if err := timeit.BasicConfig(timeit.WithWarmup(-1)); err == nil {
		t.Error("expected error for negative warmup")
	}

	// A failed BasicConfig must leave the default policy untouched.
	bench := timeit.Default()
	if bench.Trials() != 1 || bench.Calls() != 1 || bench.WarmupTrials() != 0 {
		t.Errorf("expected policy unchanged, got trials=%d calls=%d warmup=%d",
			bench.Trials(), bench.Calls(), bench.WarmupTrials())
	}
}

func TestPackageLevelWrap(t *testing.T) {
	resetDefault(t)

	if err := timeit.BasicConfig(timeit.WithTrials(2), timeit.WithCalls(3)); err != nil {
		t.Fatalf("BasicConfig failed: %v", err)
	}

	calls := 0
	f := timeit.Wrap(func() { calls++ })
	f.Call()

	if calls != 7 {
		t.Errorf("expected 7 invocations, got %d", calls)
	}
	if len(f.Timings()) != 2 {
		t.Errorf("expected 2 timings, got %d", len(f.Timings()))
	}
}

func TestPackageLevelEnableDisable(t *testing.T) {
	resetDefault(t)

	timeit.Disable()
	calls := 0
	f := timeit.Wrap(func() { calls++ })
	f.Call()
	if calls != 1 {
		t.Errorf("expected 1 invocation while disabled, got %d", calls)
	}

	timeit.Enable()
	f.Call()
	if !f.Measured() {
		t.Error("expected measurement after re-enabling")
	}
}
