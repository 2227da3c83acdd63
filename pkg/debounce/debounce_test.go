package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTrigger_FiresAfterDelay(t *testing.T) {
	d := New(20 * time.Millisecond)
	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("expected 1 firing, got %d", got)
	}
}

func TestTrigger_SupersededTriggerNeverFires(t *testing.T) {
	d := New(40 * time.Millisecond)
	var first, second atomic.Int32
	d.Trigger(func() { first.Add(1) })
	time.Sleep(10 * time.Millisecond)
	d.Trigger(func() { second.Add(1) })

	time.Sleep(100 * time.Millisecond)
	if first.Load() != 0 {
		t.Error("superseded trigger must not fire")
	}
	if second.Load() != 1 {
		t.Errorf("expected latest trigger to fire once, got %d", second.Load())
	}
}

func TestStop_CancelsPending(t *testing.T) {
	d := New(20 * time.Millisecond)
	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("stopped trigger must not fire")
	}
}

func TestTrigger_ReusableAfterFiring(t *testing.T) {
	d := New(10 * time.Millisecond)
	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	time.Sleep(40 * time.Millisecond)
	d.Trigger(func() { fired.Add(1) })
	time.Sleep(40 * time.Millisecond)

	if got := fired.Load(); got != 2 {
		t.Errorf("expected 2 firings, got %d", got)
	}
}
