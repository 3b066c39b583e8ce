package core

import (
	"testing"
	"time"
)

func TestFixedStepCountsOwedTicks(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	if got := fs.Due(4); got != 1 {
		t.Fatalf("first Due = %d, want the pre-charged tick", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Due(4); got != 0 {
		t.Fatalf("half a tick gave %d", got)
	}
	clock = clock.Add(260 * time.Millisecond)
	if got := fs.Due(4); got != 3 {
		t.Fatalf("310ms gave %d ticks, want 3", got)
	}
	clock = clock.Add(90 * time.Millisecond)
	if got := fs.Due(4); got != 1 {
		t.Fatalf("leftover 10ms + 90ms gave %d ticks, want 1", got)
	}
	if got := fs.StepSeconds(); got != 0.1 {
		t.Fatalf("StepSeconds = %f, want 0.1", got)
	}
}

func TestFixedStepDropsStall(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }
	fs.Due(4)

	clock = clock.Add(10 * time.Second)
	if got := fs.Due(4); got != 4 {
		t.Fatalf("stall replayed %d ticks, want the cap of 4", got)
	}
	if got := fs.Due(4); got != 0 {
		t.Fatalf("dropped ticks came back: %d", got)
	}
}
