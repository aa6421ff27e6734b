package dom

import "testing"

func TestNumericInterpolator(t *testing.T) {
	interp, err := CreateInterpolator("0px", "16px", Options{PropName: "left", Kind: KindCSS})
	if err != nil {
		t.Fatal(err)
	}
	if got := interp.GetValue(0); got != "0px" {
		t.Errorf("GetValue(0) = %q, want 0px", got)
	}
	if got := interp.GetValue(1); got != "16px" {
		t.Errorf("GetValue(1) = %q, want 16px", got)
	}
	if got := interp.GetValue(0.5); got != "8px" {
		t.Errorf("GetValue(0.5) = %q, want 8px", got)
	}
}

func TestColorInterpolator(t *testing.T) {
	interp, err := CreateInterpolator("#000000", "#ffffff", Options{PropName: "color", Kind: KindCSS})
	if err != nil {
		t.Fatal(err)
	}
	if got := interp.GetValue(0); got != "#000000" {
		t.Errorf("GetValue(0) = %q, want #000000", got)
	}
	if got := interp.GetValue(1); got != "#ffffff" {
		t.Errorf("GetValue(1) = %q, want #ffffff", got)
	}
}

func TestTokenArrayInterpolator(t *testing.T) {
	interp, err := CreateInterpolator("0px 0px 4px #000000", "2px 2px 8px #333333", Options{PropName: "boxShadow", Kind: KindCSS})
	if err != nil {
		t.Fatal(err)
	}
	got := interp.GetValue(1)
	want := "2px 2px 8px #333333"
	if got != want {
		t.Errorf("GetValue(1) = %q, want %q", got, want)
	}
}

func TestConstantInterpolator(t *testing.T) {
	interp, err := CreateInterpolator("none", "none", Options{PropName: "display", Kind: KindCSS})
	if err != nil {
		t.Fatal(err)
	}
	if got := interp.GetValue(0.5); got != "none" {
		t.Errorf("GetValue(0.5) = %q, want none", got)
	}
}

func TestInstantInterpolatorFallback(t *testing.T) {
	interp, err := CreateInterpolator("block", "flex", Options{PropName: "display", Kind: KindCSS})
	if err != nil {
		t.Fatal(err)
	}
	if got := interp.GetValue(0.99); got != "block" {
		t.Errorf("GetValue(0.99) = %q, want block (not yet committed)", got)
	}
	if got := interp.GetValue(1); got != "flex" {
		t.Errorf("GetValue(1) = %q, want flex", got)
	}
}

func TestProbeKind(t *testing.T) {
	el := NewElement("div", "x")
	el.Attributes["data-x"] = "1"
	if got := ProbeKind(ElementTarget(el), "data-x"); got != KindAttribute {
		t.Errorf("ProbeKind(data-x) = %v, want attribute", got)
	}
	if got := ProbeKind(ElementTarget(el), "translateX"); got != KindTransform {
		t.Errorf("ProbeKind(translateX) = %v, want transform", got)
	}
	if got := ProbeKind(ElementTarget(el), "left"); got != KindCSS {
		t.Errorf("ProbeKind(left) = %v, want css", got)
	}
	called := false
	fn := FunctionTarget(func(map[string]any) { called = true })
	if got := ProbeKind(fn, "anything"); got != KindFunction {
		t.Errorf("ProbeKind(function target) = %v, want function", got)
	}
	_ = called
}
