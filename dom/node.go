package dom

import (
	"fmt"
	"unsafe"
)

// Node is the primary datatype of the document model. Every node kind —
// Document, Element, Attr, Namespace, Text, Comment, ProcessingInstruction —
// shares this representation and is navigated through it.
//
// Identity is pointer identity: two *Node values refer to the same node iff
// they are equal, and a *Node may be used directly as a map key.
type Node struct {
	nodeType NodeType

	// parent is a non-owning back-reference to the Container holding this
	// node, or to the Element owning it for Attr and Namespace nodes.
	// nil for a root.
	parent *Node

	// children is the ordered child list for container nodes (Document,
	// Element). Order is insertion order and is the authoritative document
	// order among siblings.
	children []*Node

	// Kind-specific data (only the one matching nodeType is non-nil).
	elementData   *elementData
	attrData      *attrData
	namespaceData *namespaceData
	documentData  *documentData
	textData      *string
	commentData   *string
	piData        *piData
}

// elementData holds data specific to Element nodes.
type elementData struct {
	namespaceURI string
	qname        string
	localName    string
	attributes   *AttributeMap // lazily created
	namespaces   *NamespaceMap // lazily created
}

// attrData holds data specific to Attr nodes.
type attrData struct {
	namespaceURI string
	qname        string
	localName    string
	value        string
}

// namespaceData holds data specific to Namespace nodes. An empty prefix is
// the default-namespace binding; an empty uri is an explicit unbinding.
type namespaceData struct {
	prefix string
	uri    string
}

// documentData holds data specific to Document nodes.
type documentData struct {
	documentURI   string
	creationIndex uint64
}

// piData holds data specific to ProcessingInstruction nodes.
type piData struct {
	target string
	data   string
}

// NodeType returns the kind of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// ParentNode returns the node owning this node, or nil for a root. For Attr
// and Namespace nodes this is the owning Element.
func (n *Node) ParentNode() *Node {
	return n.parent
}

// ParentElement returns the parent as an Element, or nil if the parent is
// absent or not an element.
func (n *Node) ParentElement() *Element {
	if n.parent != nil && n.parent.nodeType == ElementNode {
		return (*Element)(n.parent)
	}
	return nil
}

// AsElement returns the node viewed as an Element, or nil if the node is
// not an element.
func (n *Node) AsElement() *Element {
	if n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// AsDocument returns the node viewed as a Document, or nil if the node is
// not a document.
func (n *Node) AsDocument() *Document {
	if n.nodeType != DocumentNode {
		return nil
	}
	return (*Document)(n)
}

// AsAttr returns the node viewed as an Attr, or nil if the node is not an
// attribute.
func (n *Node) AsAttr() *Attr {
	if n.nodeType != AttributeNode {
		return nil
	}
	return (*Attr)(n)
}

// AsNamespace returns the node viewed as a Namespace, or nil if the node is
// not a namespace declaration.
func (n *Node) AsNamespace() *Namespace {
	if n.nodeType != NamespaceNode {
		return nil
	}
	return (*Namespace)(n)
}

// Root returns the Document at the top of this node's parent chain, or nil
// if the tree is not rooted in a Document.
func (n *Node) Root() *Document {
	node := n
	for node.nodeType != DocumentNode {
		node = node.parent
		if node == nil {
			return nil
		}
	}
	return (*Document)(node)
}

// rootAndDepth walks the parent chain to the top of the tree, returning the
// root node and the number of steps taken.
func (n *Node) rootAndDepth() (*Node, int) {
	root, depth := n, 0
	for root.parent != nil {
		root = root.parent
		depth++
	}
	return root, depth
}

// Hash returns a hash derived from the node's identity. It is stable for
// the lifetime of the node.
func (n *Node) Hash() uint64 {
	return uint64(uintptr(unsafe.Pointer(n)))
}

// IsContainer returns true if the node kind carries an ordered child list.
func (n *Node) IsContainer() bool {
	return n.nodeType == DocumentNode || n.nodeType == ElementNode
}

// PrecedingSibling returns the child ordered immediately before this node in
// its parent's child list, or nil if this node is a root or the first child.
// A node whose parent does not list it among its children is an internal
// state violation and reported as an InvalidStateError.
func (n *Node) PrecedingSibling() (*Node, error) {
	parent := n.parent
	if parent == nil {
		return nil, nil
	}
	for index, node := range parent.children {
		if node == n {
			if index == 0 {
				return nil, nil
			}
			return parent.children[index-1], nil
		}
	}
	return nil, ErrInvalidState("lost from parent")
}

// FollowingSibling returns the child ordered immediately after this node in
// its parent's child list, or nil if this node is a root or the last child.
func (n *Node) FollowingSibling() (*Node, error) {
	parent := n.parent
	if parent == nil {
		return nil, nil
	}
	for index, node := range parent.children {
		if node == n {
			if index == len(parent.children)-1 {
				return nil, nil
			}
			return parent.children[index+1], nil
		}
	}
	return nil, ErrInvalidState("lost from parent")
}

// String returns a short description of the node for debugging.
func (n *Node) String() string {
	switch n.nodeType {
	case ElementNode:
		return fmt.Sprintf("<Element %s at %p>", n.elementData.qname, n)
	case AttributeNode:
		return fmt.Sprintf("<Attr %s at %p>", n.attrData.qname, n)
	case NamespaceNode:
		return fmt.Sprintf("<Namespace %q at %p>", n.namespaceData.prefix, n)
	default:
		return fmt.Sprintf("<%s at %p>", n.nodeType, n)
	}
}
