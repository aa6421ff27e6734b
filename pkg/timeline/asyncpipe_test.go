package timeline

import "testing"

func TestEngineStateExhaustSettlesWithNoActivity(t *testing.T) {
	eng := newEngineState()
	if err := eng.exhaust(); err != nil {
		t.Fatalf("exhaust() with no activity should settle immediately, got %v", err)
	}
}

func TestEngineStateExhaustSettlesAfterBumps(t *testing.T) {
	eng := newEngineState()
	eng.bump()
	eng.bump()
	if err := eng.exhaust(); err != nil {
		t.Fatalf("exhaust() should settle once bumps stop, got %v", err)
	}
}

func TestEngineStateExhaustReportsUnboundedActivity(t *testing.T) {
	eng := newEngineState()
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				eng.bump()
			}
		}
	}()
	defer func() {
		close(stop)
		<-done
	}()
	if err := eng.exhaust(); err == nil {
		t.Fatal("expected exhaust() to report an error under unbounded activity")
	}
}

func TestEngineStateBumpWrapsAround(t *testing.T) {
	eng := newEngineState()
	eng.counter.Store(1_000_001)
	eng.bump()
	if got := eng.counter.Load(); got != 0 {
		t.Errorf("counter after wraparound bump = %d, want 0", got)
	}
}
