package timeline

import "testing"

func TestEntityBaseInitDerivesTimePoints(t *testing.T) {
	e := newEntityBase("e", 10, 100, 20)
	e.Init(1000)
	if e.delayedStartTime != 1010 {
		t.Errorf("delayedStartTime = %d, want 1010", e.delayedStartTime)
	}
	if e.doneTime != 1110 {
		t.Errorf("doneTime = %d, want 1110", e.doneTime)
	}
	if e.delayedEndTime != 1130 {
		t.Errorf("delayedEndTime = %d, want 1130", e.delayedEndTime)
	}
	if e.endTime != 1130 {
		t.Errorf("endTime = %d, want 1130", e.endTime)
	}
	if e.delayedStartTime > e.delayedEndTime || e.delayedEndTime > e.endTime {
		t.Errorf("ordering invariant violated: %d <= %d <= %d", e.delayedStartTime, e.delayedEndTime, e.endTime)
	}
	if e.delayedStartTime > e.doneTime || e.doneTime > e.endTime {
		t.Errorf("ordering invariant violated: %d <= %d <= %d", e.delayedStartTime, e.doneTime, e.endTime)
	}
}

func TestEntityBaseInitNegativeReleaseClampedToDuration(t *testing.T) {
	e := newEntityBase("e", 0, 100, -1000)
	e.Init(0)
	if e.release != -100 {
		t.Errorf("release = %d, want clamped to -100", e.release)
	}
	if e.delayedEndTime != 0 {
		t.Errorf("delayedEndTime = %d, want 0 (doneTime + clamped release)", e.delayedEndTime)
	}
	if e.endTime != e.doneTime {
		t.Errorf("endTime = %d, want max(doneTime, delayedEndTime) = doneTime = %d", e.endTime, e.doneTime)
	}
}

func TestEntityBaseDurationUnknownLeavesDoneTimeZero(t *testing.T) {
	e := newEntityBase("e", 0, unsetDuration, 0)
	e.Init(500)
	if e.delayedStartTime != 500 {
		t.Errorf("delayedStartTime = %d, want 500", e.delayedStartTime)
	}
	if e.doneTime != 0 || e.endTime != 0 {
		t.Errorf("doneTime/endTime should stay at zero value while duration is unknown, got %d/%d", e.doneTime, e.endTime)
	}
}

func TestCheckDoneAndReleaseMarksDoneAndFiresReleaseOnce(t *testing.T) {
	e := newEntityBase("e", 0, 100, 0)
	e.setSelf(&Delay{entityBase: e})
	e.Init(0)
	fired := 0
	e.releaseCb = func() { fired++ }

	e.CheckDoneAndRelease(100, true)
	if !e.done {
		t.Error("expected done at doneTime")
	}
	if !e.released || fired != 1 {
		t.Errorf("expected release to fire exactly once, fired=%d", fired)
	}

	e.CheckDoneAndRelease(100, true)
	if fired != 1 {
		t.Errorf("releaseCb fired again: %d", fired)
	}
}

func TestGetNextMarkerPositionLeafForwardOrdersByReleaseSign(t *testing.T) {
	// release > 0: delayedEndTime sits after doneTime, so doneTime is next.
	e := newEntityBase("e", 0, 100, 50)
	e.Init(0)
	if got := e.GetNextMarkerPosition(0, true); got != e.doneTime {
		t.Errorf("next after 0 = %d, want doneTime %d", got, e.doneTime)
	}
	if got := e.GetNextMarkerPosition(e.doneTime, true); got != e.delayedEndTime {
		t.Errorf("next after doneTime = %d, want delayedEndTime %d", got, e.delayedEndTime)
	}
}

func TestGetNextMarkerPositionLeafBackward(t *testing.T) {
	e := newEntityBase("e", 10, 100, 0)
	e.Init(0)
	if got := e.GetNextMarkerPosition(e.doneTime+1, false); got != e.doneTime {
		t.Errorf("backward next = %d, want doneTime %d", got, e.doneTime)
	}
	if got := e.GetNextMarkerPosition(e.delayedStartTime+1, false); got != e.delayedStartTime {
		t.Errorf("backward next = %d, want delayedStartTime %d", got, e.delayedStartTime)
	}
	if got := e.GetNextMarkerPosition(e.delayedStartTime, false); got != -1 {
		t.Errorf("backward next at delayedStartTime = %d, want -1 (no more markers)", got)
	}
}
