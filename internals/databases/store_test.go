package database

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchdogFiresWhenHeld(t *testing.T) {
	fired := make(chan time.Duration, 1)
	stop := armWatchdog(10*time.Millisecond, func(held time.Duration) { fired <- held })
	defer stop()

	select {
	case held := <-fired:
		if held < 10*time.Millisecond {
			t.Fatalf("expected held >= 10ms, got %s", held)
		}
	case <-time.After(time.Second):
		t.Fatal("watchdog did not fire")
	}
}

func TestWatchdogDisarmedOnRelease(t *testing.T) {
	var calls int32
	stop := armWatchdog(30*time.Millisecond, func(time.Duration) { atomic.AddInt32(&calls, 1) })
	stop()
	stop()

	time.Sleep(60 * time.Millisecond)
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("watchdog fired after release")
	}
}

func TestWatchdogDisabled(t *testing.T) {
	stop := armWatchdog(0, func(time.Duration) { t.Fatal("should not fire") })
	stop()
}

func TestStoreUsesCustomHeldHook(t *testing.T) {
	var got time.Duration
	s := &Store{Watchdog: time.Second, onHeld: func(d time.Duration) { got = d }}
	s.heldHook()(2 * time.Second)
	if got != 2*time.Second {
		t.Fatalf("custom hook not used")
	}
}
