package dom

// Clone returns a copy of this node, detached from any parent. When deep is
// true the whole subtree is copied; element clones always carry copies of
// their attributes and namespace declarations. The copy is rebuilt from the
// original's parts without re-running construction validation, so a clone
// of a valid node is always possible.
func (n *Node) Clone(deep bool) *Node {
	switch n.nodeType {
	case DocumentNode:
		// A copy is a new document with its own creation index.
		doc := NewDocument()
		doc.SetURI((*Document)(n).URI())
		clone := doc.AsNode()
		if deep {
			n.cloneChildrenInto(clone)
		}
		return clone

	case ElementNode:
		data := n.elementData
		el := restoreElement(data.namespaceURI, data.qname, data.localName)
		if data.namespaces != nil {
			for _, ns := range data.namespaces.bindings {
				el.Namespaces().Set(restoreNamespace(ns.Prefix(), ns.URI()))
			}
		}
		if data.attributes != nil {
			for _, attr := range data.attributes.attrs {
				d := attr.AsNode().attrData
				el.Attributes().Set(restoreAttr(d.namespaceURI, d.qname, d.localName, d.value))
			}
		}
		clone := el.AsNode()
		if deep {
			n.cloneChildrenInto(clone)
		}
		return clone

	case AttributeNode:
		d := n.attrData
		return restoreAttr(d.namespaceURI, d.qname, d.localName, d.value).AsNode()

	case NamespaceNode:
		return restoreNamespace(n.namespaceData.prefix, n.namespaceData.uri).AsNode()

	case TextNode:
		return NewText(*n.textData).AsNode()

	case CommentNode:
		return NewComment(*n.commentData).AsNode()

	case ProcessingInstructionNode:
		node := &Node{
			nodeType: ProcessingInstructionNode,
			piData:   &piData{target: n.piData.target, data: n.piData.data},
		}
		return node

	default:
		return nil
	}
}

func (n *Node) cloneChildrenInto(clone *Node) {
	for _, child := range n.children {
		childClone := child.Clone(true)
		childClone.parent = clone
		clone.children = append(clone.children, childClone)
	}
}
