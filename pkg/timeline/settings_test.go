package timeline

import "testing"

func TestSettingsResolveFallsBackToDefaults(t *testing.T) {
	s := NewSettings(nil)
	if got := s.resolveDuration(); got != defaultDurationMS {
		t.Errorf("resolveDuration() = %d, want default %d", got, defaultDurationMS)
	}
	if got := s.resolveSpeed(); got != defaultSpeed {
		t.Errorf("resolveSpeed() = %v, want default %v", got, defaultSpeed)
	}
}

func TestSettingsResolveWalksParentChain(t *testing.T) {
	root := NewSettings(nil)
	root.Duration = i64(500)
	child := NewSettings(root)
	grandchild := NewSettings(child)

	if got := grandchild.resolveDuration(); got != 500 {
		t.Errorf("grandchild.resolveDuration() = %d, want inherited 500", got)
	}

	child.Duration = i64(250)
	if got := grandchild.resolveDuration(); got != 250 {
		t.Errorf("grandchild.resolveDuration() = %d, want nearer override 250", got)
	}
}

func TestSettingsResolveEasingPrefersOwnOverParent(t *testing.T) {
	root := NewSettings(nil)
	called := false
	root.Easing = func(p, e float64) float64 { called = true; return p }
	child := NewSettings(root)

	easing := child.resolveEasing()
	easing(0.5, 0)
	if !called {
		t.Error("expected child to inherit parent's easing")
	}

	own := false
	child.Easing = func(p, e float64) float64 { own = true; return p }
	child.resolveEasing()(0.5, 0)
	if !own {
		t.Error("expected child's own easing to take precedence")
	}
}
