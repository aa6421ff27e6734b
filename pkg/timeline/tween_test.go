package timeline

import (
	"testing"

	"github.com/framewright/timeline/pkg/dom"
)

func TestAdjustDurationQuantizesToFrameMS(t *testing.T) {
	if got := adjustDuration(300, 1); got != 304 {
		t.Errorf("adjustDuration(300,1) = %d, want 304", got)
	}
	if got := adjustDuration(0, 1); got != 0 {
		t.Errorf("adjustDuration(0,1) = %d, want 0", got)
	}
	if got := adjustDuration(320, 2); got != 160 {
		t.Errorf("adjustDuration(320,2) = %d, want 160", got)
	}
	if got := adjustDuration(16, 1); got != 16 {
		t.Errorf("adjustDuration(16,1) = %d, want 16 (already aligned)", got)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	if got := roundHalfAwayFromZero(2.5); got != 3 {
		t.Errorf("round(2.5) = %d, want 3", got)
	}
	if got := roundHalfAwayFromZero(-2.5); got != -3 {
		t.Errorf("round(-2.5) = %d, want -3", got)
	}
	if got := roundHalfAwayFromZero(2.4); got != 2 {
		t.Errorf("round(2.4) = %d, want 2", got)
	}
}

func TestBuildTweenUnequalNonNumericValuesFallBackToInstant(t *testing.T) {
	el := dom.NewElement("div", "x")
	tw := buildTween(dom.ElementTarget(el), "display", FromTo("block", "flex"), Ease(linear), dom.DefaultAdapter{})
	if !tw.valid {
		t.Fatal("expected the instant-fallback interpolator to build, never an invalid tween for a css prop")
	}
}

func TestBuildTweenReadsLiveValueWhenFromUnset(t *testing.T) {
	el := dom.NewElement("div", "x")
	el.Style["opacity"] = "0.2"
	tw := buildTween(dom.ElementTarget(el), "opacity", Value("1"), Ease(linear), dom.DefaultAdapter{})
	if !tw.valid {
		t.Fatal("expected a valid numeric interpolator")
	}
	if got := tw.interp.GetValue(0); got != "0.2" {
		t.Errorf("GetValue(0) = %q, want the live style value 0.2", got)
	}
}

func TestTweenGroupCommitAppliesEasedValuesToTarget(t *testing.T) {
	el := dom.NewElement("div", "x")
	el.Style["opacity"] = "0"
	dur := int64(160)
	g := newTweenGroup("tween", AnimateParams{
		Target:   dom.ElementTarget(el),
		Duration: &dur,
		Easing:   Ease(linear),
		Properties: map[string]PropertySpec{
			"opacity": FromTo("0", "1"),
		},
	}, NewSettings(nil), dom.DefaultAdapter{})

	g.commit(0)
	if el.Style["opacity"] != "0" {
		t.Errorf("opacity at progression 0 = %q, want 0", el.Style["opacity"])
	}
	g.commit(g.duration)
	if el.Style["opacity"] != "1" {
		t.Errorf("opacity at progression duration = %q, want 1", el.Style["opacity"])
	}
}

func linear(p float64) float64 { return p }
