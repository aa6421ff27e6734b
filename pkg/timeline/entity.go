// Package timeline implements the recursive, bidirectional, marker-indexed
// timeline scheduler: Entity, Marker, Timeline, PlayerEntity, and Player.
// It discovers an animation's structure by executing user instructions on
// demand, interleaving that discovery with rendering so forward/backward
// seek, variable speed, and nested players stay consistent.
package timeline

// FrameMS is the duration of one frame at unit speed, matching
// pkg/animation.FrameMS.
const FrameMS = 16

// Entity is a time-bounded participant in a timeline: a Tween group, a
// Delay, a nested Timeline, or a PlayerEntity. Only types in this package
// implement it — base() is unexported so the set is closed.
type Entity interface {
	base() *entityBase
	DisplayFrame(time, targetTime int64, forward bool)
	GetNextMarkerPosition(time int64, forward bool) int64
}

// Parent is implemented by whatever owns an Entity's running-list slot —
// a Timeline for ordinary children, a PlayerEntity for its wrapped
// sub-timeline.
type Parent interface {
	RemoveEntity(e Entity)
	CheckState()
}

// entityBase holds the fields and default behavior common to every
// Entity. Concrete types embed *entityBase and override DisplayFrame
// (and, for containers, GetNextMarkerPosition) where their semantics differ.
type entityBase struct {
	self Entity
	name string

	parent Parent
	eng    *engineState
	next   Entity

	delay   int64
	release int64
	// duration is -1 until known (PlayerEntity's wrapped timeline case).
	duration int64

	startTime        int64
	delayedStartTime int64
	doneTime         int64
	delayedEndTime   int64
	endTime          int64

	isRunning       bool
	startRegistered bool
	endRegistered   bool
	done            bool
	released        bool
	releaseFired    bool

	attached  bool
	releaseCb func()
}

func newEntityBase(name string, delay, duration, release int64) *entityBase {
	return &entityBase{
		name:     name,
		delay:    delay,
		duration: duration,
		release:  release,
	}
}

// setSelf records the concrete Entity value that wraps this base, so
// CheckDoneAndRelease can hand the right value to parent.RemoveEntity.
func (e *entityBase) setSelf(self Entity) { e.self = self }

// Attach binds e to parent at most once; subsequent calls are no-ops.
func (e *entityBase) Attach(parent Parent, eng *engineState) {
	if e.attached {
		return
	}
	e.attached = true
	e.parent = parent
	e.eng = eng
}

// Init computes the derived time points. If duration is still unknown
// (-1), only startTime/delayedStartTime are defined; Init is called again
// once duration becomes known (the PlayerEntity path).
func (e *entityBase) Init(startTime int64) {
	if e.delay < 0 {
		e.delay = 0
	}
	e.startTime = startTime
	e.delayedStartTime = startTime + e.delay
	if e.duration < 0 {
		return
	}
	if e.release < -e.duration {
		e.release = -e.duration
	}
	e.doneTime = e.delayedStartTime + e.duration
	e.delayedEndTime = e.doneTime + e.release
	e.endTime = max64(e.doneTime, e.delayedEndTime)
}

// GetNextMarkerPosition implements the leaf-entity policy: the next
// delayedStartTime/doneTime/delayedEndTime candidate strictly past time.
// Timeline and PlayerEntity override this with their own container logic.
func (e *entityBase) GetNextMarkerPosition(time int64, forward bool) int64 {
	if forward {
		var candidates []int64
		if !e.releaseFired {
			if e.release <= 0 {
				candidates = []int64{e.delayedStartTime, e.delayedEndTime, e.doneTime}
			} else {
				candidates = []int64{e.delayedStartTime, e.doneTime, e.delayedEndTime}
			}
		} else {
			candidates = []int64{e.delayedStartTime, e.doneTime}
		}
		for _, c := range candidates {
			if c > time {
				return c
			}
		}
		return -1
	}
	for _, c := range []int64{e.doneTime, e.delayedStartTime} {
		if c < time {
			return c
		}
	}
	return -1
}

// CheckDoneAndRelease marks the entity done when time reaches doneTime,
// requests removal once time reaches the boundary in the direction of
// travel, and fires the release callback exactly once at delayedEndTime.
func (e *entityBase) CheckDoneAndRelease(time int64, forward bool) {
	if time == e.doneTime {
		e.done = true
	}
	if e.done {
		if forward && time == e.endTime {
			e.requestRemoval()
		} else if !forward && time == e.startTime {
			e.requestRemoval()
		}
	}
	if time == e.delayedEndTime && !e.releaseFired {
		e.releaseFired = true
		e.released = true
		if e.releaseCb != nil {
			e.releaseCb()
		}
	}
}

func (e *entityBase) requestRemoval() {
	if e.parent != nil && e.self != nil {
		e.parent.RemoveEntity(e.self)
	}
}

// NextEntity/SetNextEntity implement the running list's singly-linked
// sibling pointer.
func (e *entityBase) NextEntity() Entity     { return e.next }
func (e *entityBase) SetNextEntity(n Entity) { e.next = n }

func (e *entityBase) Name() string     { return e.name }
func (e *entityBase) IsRunning() bool  { return e.isRunning }
func (e *entityBase) Done() bool       { return e.done }
func (e *entityBase) Released() bool   { return e.released }
func (e *entityBase) StartTime() int64 { return e.startTime }
func (e *entityBase) EndTime() int64   { return e.endTime }

// defaultDisplayFrame is the Entity.DisplayFrame default: just check
// done/release. Delay's DisplayFrame delegates to it unmodified.
func (e *entityBase) defaultDisplayFrame(time, targetTime int64, forward bool) {
	e.CheckDoneAndRelease(time, forward)
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
