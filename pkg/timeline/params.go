package timeline

import "github.com/framewright/timeline/pkg/dom"

// PropertySpec is one entry of an AnimateParams property map: either a
// scalar destination (the origin is read live from the target) or an
// explicit [from, to] pair.
type PropertySpec struct {
	From *string
	To   string
}

// Value builds a PropertySpec whose origin is read live from the target.
func Value(to string) PropertySpec { return PropertySpec{To: to} }

// FromTo builds a PropertySpec with an explicit origin.
func FromTo(from, to string) PropertySpec {
	f := from
	return PropertySpec{From: &f, To: to}
}

// AnimateParams is the argument to Timeline.Animate/Set. Target, Easing,
// Duration, Delay, Release, Elasticity, Speed are the recognized control
// keys; everything in Properties is a property spec.
type AnimateParams struct {
	Target     dom.Target
	Easing     EasingFunc
	Duration   *int64
	Delay      *int64
	Release    *int64
	Elasticity *float64
	Speed      *float64
	Apply      ApplyFunc
	Properties map[string]PropertySpec
}

// PlayParams configures Timeline.Play's PlayerEntity.
type PlayParams struct {
	Times     int
	Alternate bool
	Speed     float64
	BackSpeed float64
	Delay     int64
	Release   int64
}

// InstructionFunc is the body an Animate/Group/Play caller supplies; it
// receives the API the timeline exposes to discover structure. Signal is
// unused by instructions directly but kept for symmetry with the return
// type of the API calls they make.
type InstructionFunc func(api API) error

// Signal fires (closes) when the entity it names is released, standing in
// for the promise that resolves when the entity it names releases.
type Signal <-chan struct{}

func closedSignal() Signal {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// API is the DSL every instruction closure runs against — the set of
// methods that make up the Anim API.
type API interface {
	Animate(params AnimateParams) Signal
	Set(params AnimateParams) Signal
	Delay(ms int64) Signal
	Group(name string, fn InstructionFunc) Signal
	Sequence(fns ...InstructionFunc) Signal
	Parallelize(fns ...InstructionFunc) Signal
	Iterate(selector string, fn func(el *dom.Element, index int) InstructionFunc) Signal
	Repeat(times int, fn InstructionFunc) Signal
	Play(params PlayParams, fn InstructionFunc) Signal
	Defaults(params SettingsParams) API
	Select(selector string) (*dom.Element, bool)
	SelectAll(selector string) []*dom.Element
	Random(min, max float64) float64
}

// SettingsParams overrides a subset of the inherited Settings chain
// at once, the way Timeline.Defaults does.
type SettingsParams struct {
	Easing     EasingFunc
	Duration   *int64
	Delay      *int64
	Release    *int64
	Elasticity *float64
	Speed      *float64
	BackSpeed  *float64
}

func (p SettingsParams) apply(s *Settings) {
	if p.Easing != nil {
		s.Easing = p.Easing
	}
	s.Duration = p.Duration
	s.Delay = p.Delay
	s.Release = p.Release
	s.Elasticity = p.Elasticity
	s.Speed = p.Speed
	s.BackSpeed = p.BackSpeed
}

// ApplyFunc commits a TweenGroup's computed per-frame values to target,
// either by dispatching each through a dom.Adapter (DefaultApply) or via
// a caller-supplied strategy — only the DOM-backed path is exercised by
// current callers, so that is what newTweenGroup defaults to.
type ApplyFunc func(target dom.Target, values map[string]string, kinds map[string]dom.PropertyKind) error

// DefaultApply dispatches each committed value through adapter according
// to its recorded PropertyKind, or — for function targets — gathers them
// into a single map and invokes the target function once per frame.
func DefaultApply(adapter dom.Adapter) ApplyFunc {
	return func(target dom.Target, values map[string]string, kinds map[string]dom.PropertyKind) error {
		if target.IsFunction() {
			props := make(map[string]any, len(values))
			for k, v := range values {
				props[k] = v
			}
			target.Func(props)
			return nil
		}
		var firstErr error
		for prop, val := range values {
			if err := adapter.SetValue(target, prop, kinds[prop], val); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
}
