package xml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorillas/amara/dom"
)

func TestParseSimpleDocument(t *testing.T) {
	doc, err := ParseString(`<root id="a1"><child>text</child></root>`)
	require.NoError(t, err)

	root := doc.DocumentElement()
	require.NotNil(t, root)
	assert.Equal(t, "root", root.QualifiedName())
	assert.Equal(t, "", root.NamespaceURI())
	require.NotNil(t, root.GetAttribute("", "id"))
	assert.Equal(t, "a1", root.GetAttribute("", "id").Value())

	require.Equal(t, 1, root.AsNode().ChildCount())
	child := root.AsNode().Child(0).AsElement()
	require.NotNil(t, child)
	assert.Equal(t, "child", child.LocalName())
	require.Equal(t, 1, child.AsNode().ChildCount())
	assert.Equal(t, dom.TextNode, child.AsNode().Child(0).NodeType())
}

func TestParseRecoversPrefixes(t *testing.T) {
	doc, err := ParseString(
		`<p:root xmlns:p="urn:a" xmlns:q="urn:b" q:attr="v"><p:child/></p:root>`)
	require.NoError(t, err)

	root := doc.DocumentElement()
	assert.Equal(t, "p:root", root.QualifiedName())
	assert.Equal(t, "urn:a", root.NamespaceURI())

	attr := root.GetAttribute("urn:b", "attr")
	require.NotNil(t, attr)
	assert.Equal(t, "q:attr", attr.QualifiedName())

	assert.Equal(t, 2, root.Namespaces().Len())
	assert.Equal(t, "p", root.Namespaces().Item(0).Prefix())
	assert.Equal(t, "urn:a", root.Namespaces().Item(0).URI())

	child := root.AsNode().Child(0).AsElement()
	assert.Equal(t, "p:child", child.QualifiedName())
	assert.Equal(t, 0, child.Namespaces().Len())
}

func TestParseDefaultNamespace(t *testing.T) {
	doc, err := ParseString(`<root xmlns="urn:d" attr="v"><inner xmlns=""/></root>`)
	require.NoError(t, err)

	root := doc.DocumentElement()
	assert.Equal(t, "root", root.QualifiedName())
	assert.Equal(t, "urn:d", root.NamespaceURI())

	// An unprefixed attribute is in no namespace even under a default.
	attr := root.GetAttribute("", "attr")
	require.NotNil(t, attr)
	assert.Equal(t, "attr", attr.QualifiedName())

	inner := root.AsNode().Child(0).AsElement()
	assert.Equal(t, "", inner.NamespaceURI())
	ns := inner.Namespaces().Get("")
	require.NotNil(t, ns)
	assert.Equal(t, "", ns.URI())
}

func TestParseXMLPrefix(t *testing.T) {
	doc, err := ParseString(`<root xml:base="http://example.org/"/>`)
	require.NoError(t, err)

	attr := doc.DocumentElement().GetAttribute(dom.XMLNamespace, "base")
	require.NotNil(t, attr)
	assert.Equal(t, "xml:base", attr.QualifiedName())

	base, err := doc.DocumentElement().AsNode().BaseURI()
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/", base)
}

func TestParseCommentAndProcessingInstruction(t *testing.T) {
	doc, err := ParseString(`<?xml version="1.0"?><?style sheet?><root><!--note--></root>`)
	require.NoError(t, err)

	docNode := doc.AsNode()
	require.Equal(t, 2, docNode.ChildCount())
	assert.Equal(t, dom.ProcessingInstructionNode, docNode.Child(0).NodeType())
	pi := (*dom.ProcessingInstruction)(docNode.Child(0))
	assert.Equal(t, "style", pi.Target())
	assert.Equal(t, "sheet", pi.Data())

	root := doc.DocumentElement()
	require.Equal(t, 1, root.AsNode().ChildCount())
	assert.Equal(t, dom.CommentNode, root.AsNode().Child(0).NodeType())
}

func TestParseRoundTrip(t *testing.T) {
	src := `<p:root xmlns:p="urn:a" xmlns="urn:d" p:attr="v"><p:child>x &amp; y</p:child></p:root>`
	doc, err := ParseString(src)
	require.NoError(t, err)

	out, err := dom.SerializeToXML(doc.AsNode())
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestParseDeclaredCharset(t *testing.T) {
	latin1 := "<?xml version=\"1.0\" encoding=\"iso-8859-1\"?><root>h\xe9llo</root>"
	doc, err := Parse(strings.NewReader(latin1))
	require.NoError(t, err)

	root := doc.DocumentElement()
	require.Equal(t, 1, root.AsNode().ChildCount())
	text := (*dom.Text)(root.AsNode().Child(0))
	assert.Equal(t, "héllo", text.Data())
}

func TestParseErrors(t *testing.T) {
	_, err := ParseString(`<root>`)
	assert.Error(t, err)

	_, err = ParseString(`stray text`)
	assert.Error(t, err)

	_, err = ParseString(`<a></b>`)
	assert.Error(t, err)
}
