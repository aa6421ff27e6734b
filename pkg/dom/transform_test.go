package dom

import "testing"

func TestTransformChainPreservesOrder(t *testing.T) {
	tc := NewTransformChain()
	tc.Set("translateX", "10px")
	tc.Set("scale", "1.2")
	tc.Set("translateX", "20px") // update in place, order unchanged

	got := tc.String()
	want := "translateX(20px) scale(1.2)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseTransformRoundTrip(t *testing.T) {
	src := "translateX(10px) rotate(45deg) scale(1.5)"
	tc := ParseTransform(src)
	if got := tc.String(); got != src {
		t.Errorf("round trip = %q, want %q", got, src)
	}
	v, ok := tc.Get("rotate")
	if !ok || v != "45deg" {
		t.Errorf("Get(rotate) = %q, %v", v, ok)
	}
}

func TestIsTransformFunction(t *testing.T) {
	if !IsTransformFunction("translateX") {
		t.Error("translateX should be a transform function")
	}
	if IsTransformFunction("left") {
		t.Error("left should not be a transform function")
	}
}
