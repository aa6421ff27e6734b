package timeline

import (
	"github.com/framewright/timeline/pkg/dom"
	"github.com/framewright/timeline/pkg/tlerrors"
)

// tween binds one property name on a TweenGroup's shared target to an
// interpolator and an easing.
type tween struct {
	prop   string
	kind   dom.PropertyKind
	interp dom.Interpolator
	easing EasingFunc
	valid  bool
}

// TweenGroup is the leaf entity produced by Timeline.Animate/Set: every
// property spec in one call shares a target, a duration/delay/release,
// and commits in a single pass — one release signal per call, not a releaseCb per individual property.
type TweenGroup struct {
	*entityBase

	target     dom.Target
	tweens     []*tween
	elasticity float64
	apply      ApplyFunc
}

// newTweenGroup resolves params against settings, builds one tween per
// property spec, and returns an unattached TweenGroup ready for
// Timeline.AddEntity.
func newTweenGroup(name string, params AnimateParams, settings *Settings, adapter dom.Adapter) *TweenGroup {
	speed := settings.resolveSpeed()
	if params.Speed != nil {
		speed = *params.Speed
	}
	durationMS := settings.resolveDuration()
	if params.Duration != nil {
		durationMS = *params.Duration
	}
	delayMS := settings.resolveDelay()
	if params.Delay != nil {
		delayMS = *params.Delay
	}
	releaseMS := settings.resolveRelease()
	if params.Release != nil {
		releaseMS = *params.Release
	}
	elasticity := settings.resolveElasticity()
	if params.Elasticity != nil {
		elasticity = *params.Elasticity
	}
	easing := settings.resolveEasing()
	if params.Easing != nil {
		easing = params.Easing
	}

	duration := adjustDuration(durationMS, speed)
	delay := adjustDuration(delayMS, speed)
	release := adjustDuration(releaseMS, speed)

	apply := params.Apply
	if apply == nil {
		apply = DefaultApply(adapter)
	}

	g := &TweenGroup{
		entityBase: newEntityBase(name, delay, duration, release),
		target:     params.Target,
		elasticity: elasticity,
		apply:      apply,
	}
	g.setSelf(g)

	for prop, spec := range params.Properties {
		g.tweens = append(g.tweens, buildTween(params.Target, prop, spec, easing, adapter))
	}
	return g
}

// adjustDuration quantizes a millisecond timing input to frame units at
// the given speed.
func adjustDuration(ms int64, speed float64) int64 {
	if speed <= 0 {
		speed = 1
	}
	frames := roundHalfAwayFromZero(float64(ms) / speed / float64(FrameMS))
	return frames * FrameMS
}

func roundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(v + 0.5)
	}
	return -int64(-v + 0.5)
}

func buildTween(target dom.Target, prop string, spec PropertySpec, easing EasingFunc, adapter dom.Adapter) *tween {
	kind := dom.ProbeKind(target, prop)
	if kind == dom.KindInvalid {
		return &tween{prop: prop, kind: kind, easing: easing, valid: false}
	}
	from := ""
	if spec.From != nil {
		from = *spec.From
	} else if !target.IsFunction() {
		v, err := adapter.GetValue(target, prop, kind)
		if err == nil {
			from = v
		}
	}
	interp, err := dom.CreateInterpolator(from, spec.To, dom.Options{
		FromIsDOM: spec.From == nil,
		PropName:  prop,
		Kind:      kind,
	})
	if err != nil {
		tlerrors.Report(&tlerrors.TimelineError{
			Op: "Timeline.Animate", Kind: tlerrors.KindInvalidProperty, Err: err, Target: prop,
		})
		return &tween{prop: prop, kind: kind, easing: easing, valid: false}
	}
	return &tween{prop: prop, kind: kind, interp: interp, easing: easing, valid: true}
}

func (g *TweenGroup) base() *entityBase { return g.entityBase }

// DisplayFrame implements the frame-commit algorithm: decide whether this
// frame lands on a committable progression, then commit it.
func (g *TweenGroup) DisplayFrame(time, targetTime int64, forward bool) {
	if time >= g.delayedStartTime && time <= g.endTime {
		if progression, ok := g.selectProgression(time, targetTime, forward); ok {
			g.commit(progression)
		}
	}
	g.CheckDoneAndRelease(time, forward)
}

func (g *TweenGroup) selectProgression(time, targetTime int64, forward bool) (int64, bool) {
	switch {
	case time == targetTime && time <= g.doneTime:
		return time - g.delayedStartTime, true
	case forward && targetTime >= g.doneTime && time == g.doneTime:
		return time - g.delayedStartTime, true
	case !forward && targetTime <= g.delayedStartTime && time == g.delayedStartTime:
		return 0, true
	default:
		return 0, false
	}
}

func (g *TweenGroup) commit(progressionMS int64) {
	values := make(map[string]string, len(g.tweens))
	kinds := make(map[string]dom.PropertyKind, len(g.tweens))
	t := 0.0
	if g.duration > 0 {
		t = float64(progressionMS) / float64(g.duration)
	}
	for _, tw := range g.tweens {
		if !tw.valid {
			continue
		}
		eased := tw.easing(t, g.elasticity)
		values[tw.prop] = tw.interp.GetValue(eased)
		kinds[tw.prop] = tw.kind
	}
	if len(values) == 0 {
		return
	}
	if err := g.apply(g.target, values, kinds); err != nil {
		tlerrors.Report(&tlerrors.TimelineError{
			Op: "TweenGroup.commit", Kind: tlerrors.KindUnsupportedWrite, Err: err,
		})
	}
}

// GetNextMarkerPosition uses the default entityBase policy — TweenGroup
// is a leaf, not a container.
