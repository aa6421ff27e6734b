package timeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// MaxAsyncIterations bounds exhaustAsyncPipe's spin: if the mutation
// counter hasn't settled within this many rounds, something is generating
// unbounded async work and we give up rather than hang forever.
const MaxAsyncIterations = 100

// engineState is the concurrency domain shared by one Player and every
// Timeline/Entity it owns. It plays the role of the cooperative
// single-threaded scheduler: instruction closures run on their own
// goroutines but only ever touch shared state while holding mu, and
// yield it back (via exhaust) whenever the driving frame loop needs the
// rest of the tree to make progress.
type engineState struct {
	mu      sync.Mutex
	counter atomic.Int64
}

func newEngineState() *engineState { return &engineState{} }

// bump records a structural mutation (AddEntity/RemoveEntity). exhaust
// watches this counter to know when pending work on other goroutines has
// settled.
func (eng *engineState) bump() {
	if eng.counter.Add(1) > 1_000_000 {
		eng.counter.Store(0)
	}
}

// exhaust must be called with mu NOT held: it releases the floor so other
// goroutines (instruction closures resuming from an awaited release
// signal) can run, then waits for two consecutive stable readings of the
// mutation counter before returning.
func (eng *engineState) exhaust() error {
	last := eng.counter.Load()
	stable := 0
	for i := 0; i < MaxAsyncIterations; i++ {
		runtime.Gosched()
		cur := eng.counter.Load()
		if cur == last {
			stable++
			if stable >= 2 {
				return nil
			}
		} else {
			stable = 0
			last = cur
		}
	}
	return fmt.Errorf("timeline: async pipe did not settle within %d iterations", MaxAsyncIterations)
}
