// Package dom provides a headless, in-memory stand-in for the browser DOM
// that the timeline engine mutates: elements with attributes, inline style,
// and a transform-function chain, plus CSS-selector-lite lookup. It plays
// the role of a read/write adapter and animation target — real
// browser/mobile embedders can implement the same [Adapter] interface
// against their own native views, or use a function [Target].
package dom

import "strings"

// Element is a single node in the headless DOM tree.
type Element struct {
	ID         string
	Tag        string
	Classes    []string
	Attributes map[string]string
	Style      map[string]string
	Transform  *TransformChain

	parent   *Element
	children []*Element
}

// NewElement creates an element with the given tag and id.
func NewElement(tag, id string) *Element {
	return &Element{
		Tag:        tag,
		ID:         id,
		Attributes: make(map[string]string),
		Style:      make(map[string]string),
		Transform:  NewTransformChain(),
	}
}

// AppendChild attaches child as the last child of e.
func (e *Element) AppendChild(child *Element) {
	child.parent = e
	e.children = append(e.children, child)
}

// Parent returns the element's parent, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's direct children.
func (e *Element) Children() []*Element { return e.children }

// HasClass reports whether e carries the given class.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// HasAttribute reports whether name is present in e's attribute set.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attributes[name]
	return ok
}

// walk visits e and all descendants in depth-first, pre-order.
func (e *Element) walk(visit func(*Element) bool) bool {
	if !visit(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}

// Document owns the root of an element tree and is the entry point for
// selector queries scoped to the whole tree.
type Document struct {
	Root *Element
}

// NewDocument creates a document with an empty root element.
func NewDocument() *Document {
	return &Document{Root: NewElement("document", "")}
}

// QuerySelector returns the first element matching selector within scope
// (or the whole document when scope is nil), or false if none matches.
//
// Supported selectors: "#id", ".class", a bare tag name, and "*" (any
// element). This is intentionally small — enough to exercise
// Timeline.Select/SelectAll without a real browser (§ Domain Stack).
func (d *Document) QuerySelector(selector string, scope *Element) (*Element, bool) {
	root := scope
	if root == nil {
		root = d.Root
	}
	match := compileSelector(selector)
	var found *Element
	root.walk(func(e *Element) bool {
		if e == root {
			// The scope root itself is never a match candidate, matching
			// querySelector's documented behavior of searching descendants.
			return true
		}
		if match(e) {
			found = e
			return false
		}
		return true
	})
	return found, found != nil
}

// QuerySelectorAll returns every element matching selector within scope, in
// document order.
func (d *Document) QuerySelectorAll(selector string, scope *Element) []*Element {
	root := scope
	if root == nil {
		root = d.Root
	}
	match := compileSelector(selector)
	var found []*Element
	root.walk(func(e *Element) bool {
		if e != root && match(e) {
			found = append(found, e)
		}
		return true
	})
	return found
}

func compileSelector(selector string) func(*Element) bool {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "*":
		return func(*Element) bool { return true }
	case strings.HasPrefix(selector, "#"):
		id := selector[1:]
		return func(e *Element) bool { return e.ID == id }
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		return func(e *Element) bool { return e.HasClass(class) }
	default:
		return func(e *Element) bool { return e.Tag == selector }
	}
}
