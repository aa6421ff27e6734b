package dom

import "testing"

func buildTestDoc() *Document {
	doc := NewDocument()
	a := NewElement("div", "a")
	a.Classes = []string{"box", "red"}
	b := NewElement("span", "b")
	b.Classes = []string{"box"}
	doc.Root.AppendChild(a)
	a.AppendChild(b)
	return doc
}

func TestQuerySelectorByID(t *testing.T) {
	doc := buildTestDoc()
	e, ok := doc.QuerySelector("#b", nil)
	if !ok || e.ID != "b" {
		t.Fatalf("QuerySelector(#b) = %v, %v", e, ok)
	}
}

func TestQuerySelectorAllByClass(t *testing.T) {
	doc := buildTestDoc()
	all := doc.QuerySelectorAll(".box", nil)
	if len(all) != 2 {
		t.Fatalf("len(QuerySelectorAll(.box)) = %d, want 2", len(all))
	}
}

func TestQuerySelectorScoped(t *testing.T) {
	doc := buildTestDoc()
	a, _ := doc.QuerySelector("#a", nil)
	all := doc.QuerySelectorAll(".box", a)
	if len(all) != 1 {
		t.Fatalf("scoped QuerySelectorAll(.box) = %d, want 1 (only descendants of #a)", len(all))
	}
}

func TestQuerySelectorNoMatch(t *testing.T) {
	doc := buildTestDoc()
	_, ok := doc.QuerySelector("#missing", nil)
	if ok {
		t.Error("expected no match for #missing")
	}
}
