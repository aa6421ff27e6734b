package timeline

// PlayerEntity wraps a fresh sub-timeline with playback semantics —
// times, alternate, speed, backSpeed — on top of the ordinary Entity
// delay/release. Its duration is unknown until the wrapped timeline
// first reports its own local length via doneCb.
type PlayerEntity struct {
	*entityBase

	child     *Timeline
	times     int
	alternate bool
	speed     float64
	backSpeed float64

	d1, d2, cycleLength int64
}

func newPlayerEntity(parent *Timeline, params PlayParams, fn InstructionFunc) *PlayerEntity {
	times := params.Times
	speed := params.Speed
	if speed <= 0 {
		speed = defaultSpeed
	}
	backSpeed := params.BackSpeed
	if backSpeed <= 0 {
		backSpeed = defaultBackSpeed
	}
	delay := adjustDuration(params.Delay, 1)
	release := adjustDuration(params.Release, 1)

	duration := unsetDuration
	if times <= 0 {
		// A PlayerEntity with times=0 behaves like a zero-duration Delay —
		// no child timeline is ever driven.
		duration = 0
	}

	pe := &PlayerEntity{
		entityBase: newEntityBase("play", delay, duration, release),
		times:      times,
		alternate:  params.Alternate,
		speed:      speed,
		backSpeed:  backSpeed,
	}
	pe.setSelf(pe)

	if times > 0 {
		child := newTimeline("play-child", fn, 0, 0)
		child.inheritFrom(parent)
		pe.child = child
	}
	return pe
}

func (p *PlayerEntity) base() *entityBase { return p.entityBase }

// Attach binds the PlayerEntity to its parent and, if it wraps a live
// child, binds the child to the PlayerEntity in turn (the PlayerEntity is
// the child's Parent).
func (p *PlayerEntity) Attach(parent Parent, eng *engineState) {
	p.entityBase.Attach(parent, eng)
	if p.child != nil {
		p.child.Attach(p, eng)
		p.child.doneCb = p.onChildDone
	}
}

// RemoveEntity/CheckState satisfy Parent for the wrapped child. The
// child's own completion bookkeeping is entirely internal — reported
// once through doneCb — so there is nothing further to do here.
func (p *PlayerEntity) RemoveEntity(Entity) {}
func (p *PlayerEntity) CheckState()         {}

// onChildDone implements duration discovery: only the wrapped timeline's
// first doneCb matters.
func (p *PlayerEntity) onChildDone(localDuration int64) {
	if p.duration >= 0 {
		return
	}
	p.d1 = truncDiv(localDuration, p.speed)
	if p.alternate {
		p.d2 = truncDiv(localDuration, p.backSpeed)
	}
	p.cycleLength = p.d1 + p.d2
	if p.cycleLength <= 0 {
		p.cycleLength = 1
	}
	p.duration = (p.d1 + p.d2) * int64(p.times)
	p.Init(p.startTime)
}

func truncDiv(ms int64, speed float64) int64 {
	if speed <= 0 {
		speed = 1
	}
	return int64(float64(ms) / speed)
}

// mapChildSeek maps t, a position within one cycle already resolved for
// the boundary edge case, onto the wrapped child's own local seek target.
func (p *PlayerEntity) mapChildSeek(t int64) (childLocal int64, forward bool) {
	if t <= p.d1 {
		return int64(float64(t) * p.speed), true
	}
	return int64(float64(p.cycleLength-t) * p.backSpeed), false
}

// cyclePosition resolves an outer-scale time into (cycleIndex, t),
// including the "t == 0 but time != delayedStartTime" boundary edge that
// renders the final backward frame of the prior cycle.
func (p *PlayerEntity) cyclePosition(time int64) (cycleIndex, t int64) {
	relTime := time - p.delayedStartTime
	if relTime < 0 {
		relTime = 0
	}
	cycleIndex = relTime / p.cycleLength
	t = relTime % p.cycleLength
	if t == 0 && time != p.delayedStartTime {
		t = p.cycleLength
	}
	return cycleIndex, t
}

// DisplayFrame drives the wrapped child to the frame its playback
// parameters map time onto, then runs the ordinary entity completion
// check once duration is known; while duration is unknown the entity
// isn't done/released-eligible yet, so CheckDoneAndRelease is skipped
// rather than comparing against not-yet-computed time points.
func (p *PlayerEntity) DisplayFrame(time, targetTime int64, forward bool) {
	if p.child != nil {
		var childLocal int64
		if p.duration < 0 {
			relTime := time - p.delayedStartTime
			if relTime < 0 {
				relTime = 0
			}
			childLocal = int64(float64(relTime) * p.speed)
		} else {
			_, t := p.cyclePosition(time)
			childLocal, _ = p.mapChildSeek(t)
		}
		p.child.seekChild(childLocal)
	}
	if p.duration >= 0 {
		p.CheckDoneAndRelease(time, forward)
	}
}

// GetNextMarkerPosition mirrors the seek mapping to ask the wrapped child
// for its own next marker, maps the answer back into outer time, and
// reconciles with this entity's own delayedStartTime/doneTime/
// delayedEndTime candidates by nearness.
func (p *PlayerEntity) GetNextMarkerPosition(time int64, forward bool) int64 {
	if p.child == nil {
		return p.entityBase.GetNextMarkerPosition(time, forward)
	}
	if p.duration < 0 {
		relTime := time - p.delayedStartTime
		if relTime < 0 {
			relTime = 0
		}
		childLocal := int64(float64(relTime) * p.speed)
		childNext := p.child.GetNextMarkerPosition(childLocal, true)
		if childNext < 0 {
			if forward && p.delayedStartTime > time {
				return p.delayedStartTime
			}
			return -1
		}
		outer := p.delayedStartTime + int64(float64(childNext)/p.speed)
		if forward && outer > time {
			return outer
		}
		if !forward && outer < time {
			return outer
		}
		return -1
	}

	own := p.entityBase.GetNextMarkerPosition(time, forward)
	child := p.childMarkerCandidate(time, forward)
	if own < 0 {
		return child
	}
	if child < 0 {
		return own
	}
	if forward {
		if child < own {
			return child
		}
		return own
	}
	if child > own {
		return child
	}
	return own
}

func (p *PlayerEntity) childMarkerCandidate(time int64, forward bool) int64 {
	cycleIndex, t := p.cyclePosition(time)
	childLocal, childForward := p.mapChildSeek(t)
	childNext := p.child.GetNextMarkerPosition(childLocal, childForward)
	if childNext < 0 {
		return -1
	}
	var outerT int64
	if childForward {
		outerT = int64(float64(childNext) / p.speed)
	} else {
		outerT = p.cycleLength - int64(float64(childNext)/p.backSpeed)
	}
	outer := p.delayedStartTime + cycleIndex*p.cycleLength + outerT
	if forward && outer > time {
		return outer
	}
	if !forward && outer < time {
		return outer
	}
	return -1
}
