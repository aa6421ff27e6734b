package dom

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// sceneNode mirrors the YAML shape of a scene file, adapted from the
// teacher's mobile-project config loader (cmd/drift/internal/config) which
// used the same gopkg.in/yaml.v3 dependency to decode a declarative tree.
type sceneNode struct {
	ID         string            `yaml:"id"`
	Tag        string            `yaml:"tag"`
	Class      []string          `yaml:"class"`
	Attributes map[string]string `yaml:"attributes"`
	Style      map[string]string `yaml:"style"`
	Transform  string            `yaml:"transform"`
	Children   []sceneNode       `yaml:"children"`
}

type sceneFile struct {
	Root sceneNode `yaml:"root"`
}

// LoadScene decodes a YAML scene description into a headless [Document].
// This exists so the engine can be exercised and tested without a browser:
// a scene file declares a starting element tree the way a test fixture or a
// demo script would.
func LoadScene(r io.Reader) (*Document, error) {
	var sf sceneFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("dom: decode scene: %w", err)
	}
	doc := NewDocument()
	doc.Root = buildElement(sf.Root)
	return doc, nil
}

func buildElement(n sceneNode) *Element {
	e := NewElement(n.Tag, n.ID)
	e.Classes = n.Class
	for k, v := range n.Attributes {
		e.Attributes[k] = v
	}
	for k, v := range n.Style {
		e.Style[k] = v
	}
	if n.Transform != "" {
		e.Transform = ParseTransform(n.Transform)
	}
	for _, c := range n.Children {
		e.AppendChild(buildElement(c))
	}
	return e
}
