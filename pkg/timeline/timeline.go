package timeline

import (
	"fmt"
	"math/rand"

	"github.com/framewright/timeline/pkg/dom"
	"github.com/framewright/timeline/pkg/tlerrors"
)

// Timeline is the container entity: it runs a user instruction function,
// records a marker index of its children's start/end events, and seeks
// forward and backward across them.
type Timeline struct {
	*entityBase

	instruction InstructionFunc
	settings    *Settings
	adapter     dom.Adapter
	doc         *dom.Document
	scope       *dom.Element

	markerHead, markerTail, cursor *Marker
	running                        runningList

	currentTime    int64
	lastTargetTime int64
	lastForward    bool
	lastTargetSet  bool
	moveTarget     int64
	localEndTime   int64
	currentForward bool

	tlFunctionCalled   bool
	tlFunctionComplete bool

	doneCb func(localDuration int64)
}

// newTimeline constructs a Timeline that is not yet attached to any
// parent; the caller wires doc/settings/adapter/eng and calls Attach.
func newTimeline(name string, fn InstructionFunc, delay, release int64) *Timeline {
	tl := &Timeline{
		entityBase:   newEntityBase(name, delay, unsetDuration, release),
		instruction:  fn,
		currentTime:  -1,
		localEndTime: -1,
	}
	tl.setSelf(tl)
	return tl
}

func (tl *Timeline) base() *entityBase { return tl.entityBase }

// inheritFrom copies the settings reference, selector scope, adapter, and
// document from parent; the engine is bound separately by Attach.
func (tl *Timeline) inheritFrom(parent *Timeline) {
	tl.settings = parent.settings
	tl.scope = parent.scope
	tl.adapter = parent.adapter
	tl.doc = parent.doc
}

// NewRootTimeline constructs the top-level timeline a Player drives. It
// owns the root of the settings chain and the document the DSL's
// Select/SelectAll operate against.
func NewRootTimeline(name string, fn InstructionFunc, doc *dom.Document) *Timeline {
	tl := newTimeline(name, fn, 0, 0)
	tl.settings = NewSettings(nil)
	tl.adapter = dom.DefaultAdapter{}
	tl.doc = doc
	if doc != nil {
		tl.scope = doc.Root
	}
	return tl
}

// --- marker index -----------------------------------------------------

func (tl *Timeline) createMarker(time int64, hint *Marker) *Marker {
	cur := hint
	if cur == nil {
		cur = tl.markerHead
	}
	if cur == nil {
		m := &Marker{Time: time}
		tl.markerHead, tl.markerTail, tl.cursor = m, m, m
		return m
	}
	if time < cur.Time {
		for cur.Prev != nil && cur.Prev.Time > time {
			cur = cur.Prev
		}
		if cur.Time == time {
			tl.cursor = cur
			return cur
		}
		if cur.Prev != nil && cur.Prev.Time == time {
			tl.cursor = cur.Prev
			return cur.Prev
		}
		m := &Marker{Time: time, Next: cur, Prev: cur.Prev}
		if cur.Prev != nil {
			cur.Prev.Next = m
		} else {
			tl.markerHead = m
		}
		cur.Prev = m
		tl.cursor = m
		return m
	}
	if time > cur.Time {
		for cur.Next != nil && cur.Next.Time < time {
			cur = cur.Next
		}
		if cur.Time == time {
			tl.cursor = cur
			return cur
		}
		if cur.Next != nil && cur.Next.Time == time {
			tl.cursor = cur.Next
			return cur.Next
		}
		m := &Marker{Time: time, Prev: cur, Next: cur.Next}
		if cur.Next != nil {
			cur.Next.Prev = m
		} else {
			tl.markerTail = m
		}
		cur.Next = m
		tl.cursor = m
		return m
	}
	tl.cursor = cur
	return cur
}

func (tl *Timeline) getMarker(time int64) *Marker {
	cur := tl.cursor
	if cur == nil {
		cur = tl.markerHead
	}
	if cur == nil {
		return nil
	}
	if time < cur.Time {
		for cur != nil && cur.Time > time {
			cur = cur.Prev
		}
	} else {
		for cur != nil && cur.Time < time {
			cur = cur.Next
		}
	}
	if cur != nil && cur.Time == time {
		tl.cursor = cur
		return cur
	}
	return nil
}

// nearestMarker returns the nearest marker strictly past time in the
// given direction, advancing tl.cursor opportunistically.
func (tl *Timeline) nearestMarker(time int64, forward bool) *Marker {
	cur := tl.cursor
	if cur == nil {
		cur = tl.markerHead
	}
	if cur == nil {
		return nil
	}
	if forward {
		for cur != nil && cur.Time <= time {
			tl.cursor = cur
			cur = cur.Next
		}
		return cur
	}
	for cur != nil && cur.Time >= time {
		tl.cursor = cur
		cur = cur.Prev
	}
	return cur
}

// --- registration -------------------------------------------------------

// AddEntity registers e's start marker on first run, splices it into the
// running list, and displays its first frame.
func (tl *Timeline) AddEntity(e Entity) {
	b := e.base()
	if !b.startRegistered {
		b.Init(tl.currentTime)
		m := tl.createMarker(tl.currentTime, tl.cursor)
		m.StartEntities = append(m.StartEntities, e)
		b.startRegistered = true
	}
	tl.running.append(e)
	b.isRunning = true
	e.DisplayFrame(tl.currentTime, tl.lastTargetTime, tl.lastForward)
	tl.eng.bump()
}

// RemoveEntity records e's end marker and splices it out of the running
// list; end-registration only happens on forward traversal.
func (tl *Timeline) RemoveEntity(e Entity) {
	b := e.base()
	if tl.currentForward {
		if !b.endRegistered {
			m := tl.createMarker(tl.currentTime, tl.cursor)
			m.EndEntities = append(m.EndEntities, e)
			b.endRegistered = true
		}
	}
	if b.isRunning {
		tl.running.remove(e)
		b.isRunning = false
	}
	tl.eng.bump()
}

// loadEntities splices in/out entities the marker at time records.
func (tl *Timeline) loadEntities(time int64, forward bool) {
	m := tl.getMarker(time)
	if m == nil {
		return
	}
	starts, ends := m.StartEntities, m.EndEntities
	if !forward {
		starts, ends = ends, starts
	}
	for i := len(starts) - 1; i >= 0; i-- {
		if e := starts[i]; !e.base().isRunning {
			tl.AddEntity(e)
		}
	}
	for i := len(ends) - 1; i >= 0; i-- {
		if e := ends[i]; e.base().isRunning {
			tl.RemoveEntity(e)
		}
	}
}

// --- frame display & completion ----------------------------------------

// DisplayFrame runs the instruction function on first call, then on every
// subsequent call propagates the frame to running children, splices in/out
// entities at the marker for time, and checks for completion.
func (tl *Timeline) DisplayFrame(time, targetTime int64, forward bool) {
	tl.currentForward = forward
	tl.currentTime = time
	tl.lastTargetTime = targetTime
	tl.lastForward = forward
	if !tl.tlFunctionCalled {
		tl.tlFunctionCalled = true
		tl.runInstruction()
		return
	}
	tl.running.forEach(func(e Entity) {
		e.DisplayFrame(time, targetTime, forward)
	})
	tl.loadEntities(time, forward)
	tl.CheckState()
}

// runInstruction invokes the user instruction function on its own
// goroutine. The closure runs without holding tl.eng.mu — it only touches
// shared state through API methods, each of which locks for its own
// mutation — so DisplayFrame's caller (who does hold the lock) can keep
// making progress elsewhere in the tree while the closure runs or blocks
// on an awaited Group.
func (tl *Timeline) runInstruction() {
	eng := tl.eng
	go func() {
		err := tl.instruction(tl)
		eng.mu.Lock()
		tl.tlFunctionComplete = true
		eng.bump()
		if err != nil {
			tlerrors.Report(&tlerrors.TimelineError{
				Op: "Timeline.instruction", Kind: tlerrors.KindUnknown, Err: err, Target: tl.name,
			})
		}
		tl.CheckState()
		eng.mu.Unlock()
	}()
}

// CheckState fires the release callback once every running child has
// released, and the done callback once the running list is empty. When a
// scan finds no running children and no start still to be loaded at the
// current marker, it removes this timeline from its parent.
func (tl *Timeline) CheckState() {
	if !(tl.tlFunctionComplete && tl.lastForward) {
		return
	}
	allReleased := true
	count := 0
	tl.running.forEach(func(e Entity) {
		count++
		if !e.base().released {
			allReleased = false
		}
	})
	if allReleased && !tl.released {
		tl.released = true
		if tl.releaseCb != nil {
			tl.releaseCb()
		}
	}
	if count == 0 && !tl.done {
		tl.done = true
		if tl.doneCb != nil {
			tl.doneCb(tl.lastTargetTime)
		}
	}
	pending := false
	if m := tl.getMarker(tl.currentTime); m != nil {
		for _, e := range m.StartEntities {
			if !e.base().isRunning {
				pending = true
			}
		}
	}
	if allReleased && count == 0 && !pending && tl.parent != nil {
		tl.parent.RemoveEntity(tl.self)
		tl.parent.CheckState()
	}
}

// GetNextMarkerPosition is the container override: the nearest of every
// running child's own next marker and this timeline's own marker index,
// in the given direction.
func (tl *Timeline) GetNextMarkerPosition(time int64, forward bool) int64 {
	if absInt64(time-tl.currentTime) == FrameMS {
		return time
	}
	result := int64(-1)
	consider := func(v int64) {
		if v < 0 {
			return
		}
		if result < 0 {
			result = v
			return
		}
		if forward && v < result {
			result = v
		} else if !forward && v > result {
			result = v
		}
	}
	tl.running.forEach(func(e Entity) {
		consider(e.GetNextMarkerPosition(time, forward))
	})
	if m := tl.nearestMarker(time, forward); m != nil {
		consider(m.Time)
	}
	return result
}

// --- seeking -------------------------------------------------------------

// Move is the top-level entry point for seeking to timeTarget: it owns
// the engine lock for the duration of the walk, releasing it around each
// exhaust drain so instruction goroutines can run.
func (tl *Timeline) Move(timeTarget int64) error {
	return tl.advance(timeTarget, true)
}

// seekChild advances a timeline that is itself driven from inside an
// already-locked DisplayFrame call (PlayerEntity's wrapped sub-timeline).
// It must not attempt to lock tl.eng.mu again.
func (tl *Timeline) seekChild(timeTarget int64) error {
	return tl.advance(timeTarget, false)
}

func (tl *Timeline) advance(timeTarget int64, yield bool) error {
	if timeTarget == tl.currentTime {
		return nil
	}
	forward := timeTarget > tl.currentTime
	tl.moveTarget = timeTarget

	// Capture the reversal once, against the *previous* call's direction,
	// then immediately publish this call's own direction/target. Deriving
	// `forward != tl.lastForward` fresh on every loop iteration would keep
	// reading the stale previous-call direction for the whole walk (it was
	// otherwise only written after the loop), replaying every marker the
	// walk crosses instead of just the true reversal boundary at the start.
	reversed := tl.lastTargetSet && forward != tl.lastForward
	tl.lastTargetTime = timeTarget
	tl.lastForward = forward
	tl.lastTargetSet = true

	if yield {
		tl.eng.mu.Lock()
	}
	first := true
	for tl.currentTime != tl.moveTarget {
		var nextTarget int64
		if tl.currentTime < 0 {
			nextTarget = max64(0, tl.startTime)
		} else {
			if first && reversed {
				if m := tl.getMarker(tl.currentTime); m != nil {
					tl.currentForward = forward
					tl.DisplayFrame(tl.currentTime, tl.currentTime, forward)
					if err := tl.yieldPoint(yield); err != nil {
						return err
					}
				}
			}
			nextTarget = tl.GetNextMarkerPosition(tl.currentTime, forward)
			if nextTarget == -1 || nextTarget == tl.currentTime {
				tl.localEndTime = tl.currentTime
				tl.moveTarget = tl.currentTime
				if yield {
					tl.eng.mu.Unlock()
				}
				return nil
			}
			if forward && nextTarget > timeTarget {
				nextTarget = timeTarget
			}
			if !forward && nextTarget < timeTarget {
				nextTarget = timeTarget
			}
		}
		tl.currentForward = forward
		tl.DisplayFrame(nextTarget, timeTarget, forward)
		tl.currentTime = nextTarget
		first = false
		if err := tl.yieldPoint(yield); err != nil {
			return err
		}
	}
	if yield {
		tl.eng.mu.Unlock()
	}
	return nil
}

func (tl *Timeline) yieldPoint(yield bool) error {
	if !yield {
		return nil
	}
	tl.eng.mu.Unlock()
	err := tl.eng.exhaust()
	tl.eng.mu.Lock()
	if err != nil {
		tlerrors.Report(&tlerrors.TimelineError{Op: "Timeline.move", Kind: tlerrors.KindAsyncPipe, Err: err})
		return err
	}
	return nil
}

// --- Anim API ------------------------------------------------------------

var _ API = (*Timeline)(nil)

func (tl *Timeline) newChild(name string, fn InstructionFunc, delayMS, releaseMS int64) *Timeline {
	speed := tl.settings.resolveSpeed()
	delay := adjustDuration(delayMS, speed)
	release := adjustDuration(releaseMS, speed)
	child := newTimeline(name, fn, delay, release)
	child.inheritFrom(tl)
	child.Attach(tl, tl.eng)
	return child
}

// Animate creates and attaches a TweenGroup; the returned Signal fires
// when the group releases.
func (tl *Timeline) Animate(params AnimateParams) Signal {
	if params.Target.Element == nil && !params.Target.IsFunction() {
		tlerrors.Report(&tlerrors.TimelineError{Op: "Timeline.Animate", Kind: tlerrors.KindUnresolvedSelector, Err: fmt.Errorf("target did not resolve")})
		return closedSignal()
	}
	g := newTweenGroup("tween", params, tl.settings, tl.adapter)
	sig := make(chan struct{})
	g.releaseCb = func() { close(sig) }
	tl.eng.mu.Lock()
	g.Attach(tl, tl.eng)
	tl.AddEntity(g)
	tl.eng.mu.Unlock()
	return sig
}

// Set is Animate with duration forced to zero.
func (tl *Timeline) Set(params AnimateParams) Signal {
	zero := int64(0)
	params.Duration = &zero
	return tl.Animate(params)
}

// Delay attaches a Delay entity for ms milliseconds.
func (tl *Timeline) Delay(ms int64) Signal {
	speed := tl.settings.resolveSpeed()
	d := newDelay(adjustDuration(ms, speed))
	sig := make(chan struct{})
	d.releaseCb = func() { close(sig) }
	tl.eng.mu.Lock()
	d.Attach(tl, tl.eng)
	tl.AddEntity(d)
	tl.eng.mu.Unlock()
	return sig
}

// Group attaches a sub-Timeline running fn and blocks until it releases.
func (tl *Timeline) Group(name string, fn InstructionFunc) Signal {
	child := tl.newChild(name, fn, 0, 0)
	sig := make(chan struct{})
	child.releaseCb = func() { close(sig) }
	tl.eng.mu.Lock()
	tl.AddEntity(child)
	tl.eng.mu.Unlock()
	<-sig
	return closedSignal()
}

// Sequence runs each instruction as a nested group, one after another.
func (tl *Timeline) Sequence(fns ...InstructionFunc) Signal {
	return tl.Group("sequence", func(api API) error {
		for i, fn := range fns {
			api.Group(fmt.Sprintf("seq-%d", i), fn)
		}
		return nil
	})
}

// Parallelize runs each instruction as a concurrently-awaited group.
func (tl *Timeline) Parallelize(fns ...InstructionFunc) Signal {
	return tl.Group("parallel", func(api API) error {
		done := make(chan struct{}, len(fns))
		for i, fn := range fns {
			i, fn := i, fn
			go func() {
				api.Group(fmt.Sprintf("par-%d", i), fn)
				done <- struct{}{}
			}()
		}
		for range fns {
			<-done
		}
		return nil
	})
}

// Iterate resolves selector against this timeline's scope and runs fn once
// per matched element, as concurrently-awaited groups — each closure
// receives its own resolved element rather than a bare index.
func (tl *Timeline) Iterate(selector string, fn func(el *dom.Element, index int) InstructionFunc) Signal {
	elements := tl.SelectAll(selector)
	fns := make([]InstructionFunc, len(elements))
	for i, el := range elements {
		fns[i] = fn(el, i)
	}
	return tl.Parallelize(fns...)
}

// Repeat runs fn times times in sequence.
func (tl *Timeline) Repeat(times int, fn InstructionFunc) Signal {
	fns := make([]InstructionFunc, times)
	for i := range fns {
		fns[i] = fn
	}
	return tl.Sequence(fns...)
}

// Play attaches a PlayerEntity wrapping a fresh sub-timeline running fn.
func (tl *Timeline) Play(params PlayParams, fn InstructionFunc) Signal {
	pe := newPlayerEntity(tl, params, fn)
	sig := make(chan struct{})
	pe.releaseCb = func() { close(sig) }
	tl.eng.mu.Lock()
	pe.Attach(tl, tl.eng)
	tl.AddEntity(pe)
	tl.eng.mu.Unlock()
	return sig
}

// Defaults creates a new settings layer chained to the current one,
// scoped to this timeline and any children attached afterward.
func (tl *Timeline) Defaults(params SettingsParams) API {
	s := NewSettings(tl.settings)
	params.apply(s)
	tl.eng.mu.Lock()
	tl.settings = s
	tl.eng.mu.Unlock()
	return tl
}

// Select resolves selector against this timeline's scope.
func (tl *Timeline) Select(selector string) (*dom.Element, bool) {
	if tl.doc == nil {
		return nil, false
	}
	return tl.doc.QuerySelector(selector, tl.scope)
}

// SelectAll resolves every match for selector within this timeline's scope.
func (tl *Timeline) SelectAll(selector string) []*dom.Element {
	if tl.doc == nil {
		return nil
	}
	return tl.doc.QuerySelectorAll(selector, tl.scope)
}

// Random returns a uniformly distributed float64 in [min, max).
func (tl *Timeline) Random(min, max float64) float64 {
	return min + randFloat64()*(max-min)
}

var randFloat64 = rand.Float64

// MarkerSnapshot is a read-only view of one marker index entry, exported
// for diagnostics (cmd/animctl's trace command) — marker ordering is
// subtle enough to deserve an inspectable dump.
type MarkerSnapshot struct {
	Time          int64
	StartEntities []string
	EndEntities   []string
}

// Markers walks the marker index in time order and returns a snapshot of
// each marker's position and the names of the entities it starts/ends.
func (tl *Timeline) Markers() []MarkerSnapshot {
	tl.eng.mu.Lock()
	defer tl.eng.mu.Unlock()
	var out []MarkerSnapshot
	for m := tl.markerHead; m != nil; m = m.Next {
		snap := MarkerSnapshot{Time: m.Time}
		for _, e := range m.StartEntities {
			snap.StartEntities = append(snap.StartEntities, e.base().name)
		}
		for _, e := range m.EndEntities {
			snap.EndEntities = append(snap.EndEntities, e.base().name)
		}
		out = append(out, snap)
	}
	return out
}
