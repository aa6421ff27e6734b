package dom

import "testing"

func TestDefaultAdapterCSS(t *testing.T) {
	el := NewElement("div", "a")
	var adapter DefaultAdapter
	if err := adapter.SetValue(ElementTarget(el), "left", KindCSS, "10px"); err != nil {
		t.Fatal(err)
	}
	got, err := adapter.GetValue(ElementTarget(el), "left", KindCSS)
	if err != nil {
		t.Fatal(err)
	}
	if got != "10px" {
		t.Errorf("GetValue = %q, want 10px", got)
	}
}

func TestDefaultAdapterTransformPreservesSiblings(t *testing.T) {
	el := NewElement("div", "a")
	var adapter DefaultAdapter
	adapter.SetValue(ElementTarget(el), "translateX", KindTransform, "10px")
	adapter.SetValue(ElementTarget(el), "scale", KindTransform, "1.2")
	adapter.SetValue(ElementTarget(el), "translateX", KindTransform, "20px")

	if got := el.Transform.String(); got != "translateX(20px) scale(1.2)" {
		t.Errorf("transform = %q", got)
	}
}

func TestDefaultAdapterFunctionTargetErrors(t *testing.T) {
	var adapter DefaultAdapter
	ft := FunctionTarget(func(map[string]any) {})
	if err := adapter.SetValue(ft, "x", KindCSS, "1"); err == nil {
		t.Error("expected error writing css on a function target")
	}
}

func TestDefaultAdapterUnsupportedKind(t *testing.T) {
	el := NewElement("div", "a")
	var adapter DefaultAdapter
	if err := adapter.SetValue(ElementTarget(el), "x", KindInvalid, "1"); err == nil {
		t.Error("expected error for unsupported write kind")
	}
}
