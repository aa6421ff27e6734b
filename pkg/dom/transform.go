package dom

import (
	"fmt"
	"strings"
)

// transformFunctions is the set of property names treated as CSS transform
// components rather than plain style properties.
var transformFunctions = map[string]bool{
	"translateX": true, "translateY": true, "translateZ": true,
	"scale": true, "scaleX": true, "scaleY": true, "scaleZ": true,
	"rotate": true, "rotateX": true, "rotateY": true, "rotateZ": true,
	"skew": true, "skewX": true, "skewY": true,
}

// IsTransformFunction reports whether name is a known transform component.
func IsTransformFunction(name string) bool {
	return transformFunctions[name]
}

// TransformChain is an ordered name->args map mirroring a CSS element's
// `transform` property: updating one function preserves the others and their
// relative order.
type TransformChain struct {
	order []string
	args  map[string]string
}

// NewTransformChain creates an empty transform chain.
func NewTransformChain() *TransformChain {
	return &TransformChain{args: make(map[string]string)}
}

// Get returns the raw argument string for a transform function, e.g. "10px"
// for translateX, or "" if the function is not present.
func (t *TransformChain) Get(name string) (string, bool) {
	v, ok := t.args[name]
	return v, ok
}

// Set updates (or appends) a transform function's argument string,
// preserving the position of functions already present.
func (t *TransformChain) Set(name, args string) {
	if _, exists := t.args[name]; !exists {
		t.order = append(t.order, name)
	}
	t.args[name] = args
}

// String serializes the chain back into a CSS transform value, e.g.
// "translateX(10px) scale(1.2)".
func (t *TransformChain) String() string {
	parts := make([]string, 0, len(t.order))
	for _, name := range t.order {
		parts = append(parts, fmt.Sprintf("%s(%s)", name, t.args[name]))
	}
	return strings.Join(parts, " ")
}

// ParseTransform parses a serialized transform string (as produced by
// String) back into a chain, preserving function order.
func ParseTransform(s string) *TransformChain {
	tc := NewTransformChain()
	s = strings.TrimSpace(s)
	for len(s) > 0 {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			break
		}
		name := strings.TrimSpace(s[:open])
		close := strings.IndexByte(s[open:], ')')
		if close < 0 {
			break
		}
		close += open
		args := s[open+1 : close]
		tc.Set(name, args)
		s = strings.TrimSpace(s[close+1:])
	}
	return tc
}
