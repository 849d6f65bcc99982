package xpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorillas/amara/dom"
)

func buildTree(t *testing.T) (*dom.Document, *dom.Element, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument()
	root, err := dom.NewElement("urn:a", "p:root")
	require.NoError(t, err)
	require.NoError(t, doc.AsNode().AppendChild(root.AsNode()))
	_, err = root.AddNamespace("p", "urn:a")
	require.NoError(t, err)
	child, err := dom.NewElement("", "child")
	require.NoError(t, err)
	require.NoError(t, root.AsNode().AppendChild(child.AsNode()))
	return doc, root, child
}

func TestNewContextSeedsNamespaces(t *testing.T) {
	_, _, child := buildTree(t)

	ctx, err := NewContext(child.AsNode())
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.Position)
	assert.Equal(t, 1, ctx.Size)
	assert.Equal(t, "urn:a", ctx.Namespaces["p"])
	assert.Equal(t, dom.XMLNamespace, ctx.Namespaces["xml"])
}

func TestNewContextNonElement(t *testing.T) {
	doc, _, _ := buildTree(t)

	ctx, err := NewContext(doc.AsNode())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"xml": dom.XMLNamespace}, ctx.Namespaces)

	_, err = NewContext(nil)
	require.Error(t, err)
	xpErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, ErrorNoContext, xpErr.Code)
}

func TestContextClone(t *testing.T) {
	_, root, _ := buildTree(t)
	ctx, err := NewContext(root.AsNode())
	require.NoError(t, err)

	fork := ctx.Clone()
	fork.Position = 3
	fork.Size = 7
	assert.Equal(t, 1, ctx.Position)
	assert.Equal(t, 1, ctx.Size)

	// Namespace and variable tables are shared between forks.
	fork.Variables[ExpandedName{LocalName: "v"}] = 42
	assert.Equal(t, 42, ctx.Variables[ExpandedName{LocalName: "v"}])
}

func TestSortDocumentOrder(t *testing.T) {
	doc, root, child := buildTree(t)
	text := dom.NewText("x")
	require.NoError(t, child.AsNode().AppendChild(text.AsNode()))

	nodes := []*dom.Node{text.AsNode(), doc.AsNode(), child.AsNode(), root.AsNode()}
	SortDocumentOrder(nodes)

	want := []*dom.Node{doc.AsNode(), root.AsNode(), child.AsNode(), text.AsNode()}
	assert.Equal(t, want, nodes)
}

func TestUniq(t *testing.T) {
	_, root, child := buildTree(t)

	nodes := []*dom.Node{child.AsNode(), root.AsNode(), child.AsNode(), root.AsNode()}
	nodes = Uniq(nodes)

	require.Len(t, nodes, 2)
	assert.Same(t, root.AsNode(), nodes[0])
	assert.Same(t, child.AsNode(), nodes[1])
}
