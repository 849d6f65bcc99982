// Package dom provides an in-memory XML document object model: a tree of
// typed nodes supporting identity-preserving mutation, parent-aware
// navigation, in-scope namespace resolution, and a total ordering of nodes
// consistent with document order.
package dom

// NodeType discriminates the kind of a Node.
type NodeType uint16

const (
	// ElementNode represents an Element node.
	ElementNode NodeType = 1
	// AttributeNode represents an Attr node.
	AttributeNode NodeType = 2
	// TextNode represents a Text node.
	TextNode NodeType = 3
	// ProcessingInstructionNode represents a ProcessingInstruction node.
	ProcessingInstructionNode NodeType = 7
	// CommentNode represents a Comment node.
	CommentNode NodeType = 8
	// DocumentNode represents a Document node.
	DocumentNode NodeType = 9
	// NamespaceNode represents a Namespace declaration node.
	NamespaceNode NodeType = 13
)

// String returns the string representation of the NodeType.
func (nt NodeType) String() string {
	switch nt {
	case ElementNode:
		return "ELEMENT_NODE"
	case AttributeNode:
		return "ATTRIBUTE_NODE"
	case TextNode:
		return "TEXT_NODE"
	case ProcessingInstructionNode:
		return "PROCESSING_INSTRUCTION_NODE"
	case CommentNode:
		return "COMMENT_NODE"
	case DocumentNode:
		return "DOCUMENT_NODE"
	case NamespaceNode:
		return "NAMESPACE_NODE"
	default:
		return "UNKNOWN_NODE"
	}
}

// XMLNamespace is the namespace URI bound to the "xml" prefix. The binding
// is implicit and always in scope regardless of document content.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// XMLNSNamespace is the namespace URI of namespace declaration attributes.
const XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
