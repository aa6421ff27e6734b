package dom

import "fmt"

// Adapter reads and writes a property on a target, dispatching by
// PropertyKind. DefaultAdapter is the only implementation current callers
// need; it is still an interface so embedders (real browser/mobile views)
// can supply their own.
type Adapter interface {
	GetValue(target Target, prop string, kind PropertyKind) (string, error)
	SetValue(target Target, prop string, kind PropertyKind, value string) error
}

// DefaultAdapter implements Adapter against the headless [Element] model.
type DefaultAdapter struct{}

// GetValue reads the live value of prop from target, used to resolve a
// tween's origin when the caller didn't supply an explicit [from, to] pair.
func (DefaultAdapter) GetValue(target Target, prop string, kind PropertyKind) (string, error) {
	if target.Element == nil {
		return "", fmt.Errorf("dom: GetValue called on a function target")
	}
	switch kind {
	case KindAttribute:
		return target.Element.Attributes[prop], nil
	case KindTransform:
		v, _ := target.Element.Transform.Get(prop)
		return v, nil
	case KindCSS:
		return target.Element.Style[prop], nil
	default:
		return "", fmt.Errorf("dom: unsupported read kind %s for property %q", kind, prop)
	}
}

// SetValue commits value to target's prop according to kind. Unsupported
// kinds write nothing and return an error.
func (DefaultAdapter) SetValue(target Target, prop string, kind PropertyKind, value string) error {
	switch kind {
	case KindAttribute:
		if target.Element == nil {
			return fmt.Errorf("dom: SetValue(attribute) called on a function target")
		}
		target.Element.Attributes[prop] = value
		return nil
	case KindTransform:
		if target.Element == nil {
			return fmt.Errorf("dom: SetValue(transform) called on a function target")
		}
		target.Element.Transform.Set(prop, value)
		return nil
	case KindCSS:
		if target.Element == nil {
			return fmt.Errorf("dom: SetValue(css) called on a function target")
		}
		target.Element.Style[prop] = value
		return nil
	default:
		return fmt.Errorf("dom: unsupported write kind %s for property %q", kind, prop)
	}
}
