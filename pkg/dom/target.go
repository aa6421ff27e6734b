package dom

// PropertyKind classifies a property into one of the animation types
// the engine recognizes: function, attribute, transform, css, or invalid.
type PropertyKind int

const (
	// KindInvalid marks a property that could not be classified or parsed;
	// the tween that carries it contributes no frames.
	KindInvalid PropertyKind = iota
	// KindFunction routes the value to a target function instead of the DOM.
	KindFunction
	// KindAttribute writes through an element's attribute map.
	KindAttribute
	// KindTransform writes one component of the element's transform chain.
	KindTransform
	// KindCSS writes through an element's inline style map (the default).
	KindCSS
)

func (k PropertyKind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindAttribute:
		return "attribute"
	case KindTransform:
		return "transform"
	case KindCSS:
		return "css"
	default:
		return "invalid"
	}
}

// FuncTarget receives committed {property: value} pairs directly, bypassing
// the DOM entirely.
type FuncTarget func(props map[string]any)

// Target is either a resolved DOM *Element or a FuncTarget. A Tween's target
// never changes over its lifetime.
type Target struct {
	Element *Element
	Func    FuncTarget
}

// ElementTarget wraps an element as a Target.
func ElementTarget(e *Element) Target { return Target{Element: e} }

// FunctionTarget wraps a callback as a Target.
func FunctionTarget(f FuncTarget) Target { return Target{Func: f} }

// IsFunction reports whether this target dispatches to a callback rather
// than an element.
func (t Target) IsFunction() bool { return t.Func != nil }

// ProbeKind classifies prop on target by probing in order: function
// target, then DOM attribute, then known transform function, defaulting
// to css.
func ProbeKind(target Target, prop string) PropertyKind {
	if target.IsFunction() {
		return KindFunction
	}
	if target.Element == nil {
		return KindInvalid
	}
	if target.Element.HasAttribute(prop) {
		return KindAttribute
	}
	if IsTransformFunction(prop) {
		return KindTransform
	}
	return KindCSS
}
