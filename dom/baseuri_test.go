package dom

import (
	"testing"
)

func TestBaseURIFromAbsoluteXMLBase(t *testing.T) {
	root := mustElement(t, "", "root")
	root.AddAttribute(XMLNamespace, "xml:base", "http://example.org/dir/")
	child := mustElement(t, "", "child")
	root.AsNode().AppendChild(child.AsNode())

	doc := NewDocument()
	doc.AsNode().AppendChild(root.AsNode())

	base, err := child.AsNode().BaseURI()
	if err != nil {
		t.Fatalf("BaseURI failed: %v", err)
	}
	if base != "http://example.org/dir/" {
		t.Errorf("Expected 'http://example.org/dir/', got %q", base)
	}
}

func TestBaseURIRelativeResolvesAgainstAncestor(t *testing.T) {
	doc := NewDocument()
	doc.SetURI("http://example.org/a/doc.xml")
	root := mustElement(t, "", "root")
	doc.AsNode().AppendChild(root.AsNode())
	mid := mustElement(t, "", "mid")
	mid.AddAttribute(XMLNamespace, "xml:base", "sub/")
	root.AsNode().AppendChild(mid.AsNode())
	leaf := mustElement(t, "", "leaf")
	mid.AsNode().AppendChild(leaf.AsNode())

	base, err := leaf.AsNode().BaseURI()
	if err != nil {
		t.Fatalf("BaseURI failed: %v", err)
	}
	if base != "http://example.org/a/sub/" {
		t.Errorf("Expected 'http://example.org/a/sub/', got %q", base)
	}
}

func TestBaseURIDocumentFallback(t *testing.T) {
	doc := NewDocument()
	doc.SetURI("http://example.org/doc.xml")
	root := mustElement(t, "", "root")
	doc.AsNode().AppendChild(root.AsNode())

	base, err := root.AsNode().BaseURI()
	if err != nil {
		t.Fatalf("BaseURI failed: %v", err)
	}
	if base != "http://example.org/doc.xml" {
		t.Errorf("Expected the document URI, got %q", base)
	}
}

func TestBaseURINoneEstablished(t *testing.T) {
	root := mustElement(t, "", "root")
	child := mustElement(t, "", "child")
	root.AsNode().AppendChild(child.AsNode())

	base, err := child.AsNode().BaseURI()
	if err != nil {
		t.Fatalf("BaseURI failed: %v", err)
	}
	if base != "" {
		t.Errorf("Expected no base URI, got %q", base)
	}

	// A relative document URI cannot serve as a base either.
	doc := NewDocument()
	doc.SetURI("relative/doc.xml")
	doc.AsNode().AppendChild(root.AsNode())
	base, err = child.AsNode().BaseURI()
	if err != nil {
		t.Fatalf("BaseURI failed: %v", err)
	}
	if base != "" {
		t.Errorf("Expected no base URI for a relative document URI, got %q", base)
	}
}
