package timeline

import "github.com/framewright/timeline/pkg/animation"

// EasingFunc maps a progression in [0, 1] and an elasticity parameter to
// an eased progression. Most user-supplied easings (e.g. linear) ignore
// elasticity; the default (easeOutElastic) uses it directly.
type EasingFunc func(progression, elasticity float64) float64

// Ease adapts a plain animation curve (the kind pkg/animation already
// exposes) into an EasingFunc that ignores elasticity.
func Ease(curve func(float64) float64) EasingFunc {
	return func(progression, _ float64) float64 { return curve(progression) }
}

// DefaultEasing is easeOutElastic parameterized by the settings chain's
// resolved elasticity, matching the fixed default record.
func DefaultEasing(progression, elasticity float64) float64 {
	return animation.EaseOutElastic(elasticity)(progression)
}

const (
	defaultDurationMS = int64(1000)
	defaultDelayMS    = int64(0)
	defaultReleaseMS  = int64(0)
	defaultElasticity = 0.5
	defaultSpeed      = 1.0
	defaultBackSpeed  = 1.0
	unsetDuration     = int64(-1)
	unsetInt          = int64(-1)
)

// Settings is an explicit parent-chain of overridable animation defaults,
// resolved in favor of an explicit chain over emulating a prototype chain
// (see DESIGN.md).
// Each field is a pointer so "unset" is distinguishable from "set to the
// zero value"; lookups walk up through parent until a value is found, and
// fall back to the fixed default record at the root.
type Settings struct {
	Easing     EasingFunc
	Duration   *int64
	Delay      *int64
	Release    *int64
	Elasticity *float64
	Speed      *float64
	BackSpeed  *float64

	parent *Settings
}

// NewSettings creates an empty settings layer chained to parent (nil for
// the root layer, which resolves to the fixed defaults).
func NewSettings(parent *Settings) *Settings {
	return &Settings{parent: parent}
}

func (s *Settings) resolveDuration() int64 {
	for c := s; c != nil; c = c.parent {
		if c.Duration != nil {
			return *c.Duration
		}
	}
	return defaultDurationMS
}

func (s *Settings) resolveDelay() int64 {
	for c := s; c != nil; c = c.parent {
		if c.Delay != nil {
			return *c.Delay
		}
	}
	return defaultDelayMS
}

func (s *Settings) resolveRelease() int64 {
	for c := s; c != nil; c = c.parent {
		if c.Release != nil {
			return *c.Release
		}
	}
	return defaultReleaseMS
}

func (s *Settings) resolveElasticity() float64 {
	for c := s; c != nil; c = c.parent {
		if c.Elasticity != nil {
			return *c.Elasticity
		}
	}
	return defaultElasticity
}

func (s *Settings) resolveSpeed() float64 {
	for c := s; c != nil; c = c.parent {
		if c.Speed != nil {
			return *c.Speed
		}
	}
	return defaultSpeed
}

func (s *Settings) resolveBackSpeed() float64 {
	for c := s; c != nil; c = c.parent {
		if c.BackSpeed != nil {
			return *c.BackSpeed
		}
	}
	return defaultBackSpeed
}

func (s *Settings) resolveEasing() EasingFunc {
	for c := s; c != nil; c = c.parent {
		if c.Easing != nil {
			return c.Easing
		}
	}
	return DefaultEasing
}

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }
