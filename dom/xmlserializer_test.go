package dom

import (
	"strings"
	"testing"
)

func TestSerializeElementStoredOrder(t *testing.T) {
	el := mustElement(t, "urn:example", "p:root")
	el.AddNamespace("p", "urn:example")
	el.AddNamespace("", "urn:default")
	el.AddAttribute("", "b", "2")
	el.AddAttribute("", "a", "1")

	got, err := SerializeToXML(el.AsNode())
	if err != nil {
		t.Fatalf("SerializeToXML failed: %v", err)
	}
	want := `<p:root xmlns:p="urn:example" xmlns="urn:default" b="2" a="1"/>`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSerializeMixedContent(t *testing.T) {
	root := mustElement(t, "", "root")
	root.AsNode().AppendChild(NewText("a < b & c").AsNode())
	child := mustElement(t, "", "child")
	child.AddAttribute("", "q", `say "hi"`)
	root.AsNode().AppendChild(child.AsNode())
	root.AsNode().AppendChild(NewComment("remark").AsNode())
	pi, _ := NewProcessingInstruction("target", "data")
	root.AsNode().AppendChild(pi.AsNode())

	got, err := SerializeToXML(root.AsNode())
	if err != nil {
		t.Fatalf("SerializeToXML failed: %v", err)
	}
	want := `<root>a &lt; b &amp; c<child q="say &quot;hi&quot;"/><!--remark--><?target data?></root>`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSerializeDocumentDeclaration(t *testing.T) {
	doc := NewDocument()
	doc.AsNode().AppendChild(mustElement(t, "", "root").AsNode())

	var sb strings.Builder
	if err := Serialize(&sb, doc.AsNode(), ""); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	want := "<?xml version=\"1.0\"?>\n<root/>"
	if sb.String() != want {
		t.Errorf("Expected %q, got %q", want, sb.String())
	}
}

func TestSerializeEncodedOutput(t *testing.T) {
	doc := NewDocument()
	root := mustElement(t, "", "root")
	root.AsNode().AppendChild(NewText("héllo").AsNode())
	doc.AsNode().AppendChild(root.AsNode())

	var sb strings.Builder
	if err := Serialize(&sb, doc.AsNode(), "iso-8859-1"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, `encoding="iso-8859-1"`) {
		t.Errorf("declaration should name the encoding, got %q", out)
	}
	if !strings.Contains(out, "h\xe9llo") {
		t.Errorf("text should be re-encoded to Latin-1, got %q", out)
	}
}

func TestSerializeUnknownEncoding(t *testing.T) {
	el := mustElement(t, "", "root")
	var sb strings.Builder
	err := Serialize(&sb, el.AsNode(), "no-such-charset")
	if err == nil {
		t.Fatal("expected an error for an unknown encoding")
	}
	if domErr, ok := err.(*DOMError); !ok || domErr.Name != "NotSupportedError" {
		t.Errorf("Expected NotSupportedError, got %v", err)
	}
}

func TestSerializeStandaloneAttrRejected(t *testing.T) {
	attr, _ := NewAttr("", "id", "a1")
	if _, err := SerializeToXML(attr.AsNode()); err == nil {
		t.Error("attributes have no standalone markup")
	}
	ns, _ := NewNamespace("p", "urn:p")
	if _, err := SerializeToXML(ns.AsNode()); err == nil {
		t.Error("namespace declarations have no standalone markup")
	}
}
