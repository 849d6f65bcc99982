package dom

// Container operations: ordered, exclusive ownership of child nodes.
// Document and Element nodes are containers; every child holds a back
// reference to its container and appears exactly once in the child list.

// ChildCount returns the number of children of a container node, or 0 for
// non-container nodes.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at the given index, or nil if the index is out of
// bounds.
func (n *Node) Child(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Children returns a snapshot of the ordered child list. Mutating the
// returned slice does not affect the tree.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	return children
}

// XMLChildren is an alias for Children matching the document model's
// navigation naming.
func (n *Node) XMLChildren() []*Node {
	return n.Children()
}

// AppendChild adds a node to the end of this node's child list. If the
// child currently belongs to another container it is detached first, so a
// node is never listed by two parents.
func (n *Node) AppendChild(child *Node) error {
	return n.InsertChild(len(n.children), child)
}

// InsertChild inserts a node into the child list at the given index.
// Index len(children) appends.
func (n *Node) InsertChild(index int, child *Node) error {
	if err := n.validateChild(child); err != nil {
		return err
	}
	if index < 0 || index > len(n.children) {
		return ErrIndexSize("child index out of range")
	}
	if child.parent != nil {
		// Detaching may shift our own indices when re-inserting within the
		// same parent, so recompute the bound afterwards.
		if err := child.parent.RemoveChild(child); err != nil {
			return err
		}
		if index > len(n.children) {
			index = len(n.children)
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	return nil
}

// RemoveChild removes a node from this node's child list and clears its
// parent back-reference.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil {
		return ErrNotFound("the node to be removed is nil")
	}
	if child.parent != n {
		return ErrNotFound("the node to be removed is not a child of this node")
	}
	for index, node := range n.children {
		if node == child {
			n.children = append(n.children[:index], n.children[index+1:]...)
			child.parent = nil
			return nil
		}
	}
	return ErrInvalidState("lost from parent")
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) (*Node, error) {
	if index < 0 || index >= len(n.children) {
		return nil, ErrIndexSize("child index out of range")
	}
	child := n.children[index]
	n.children = append(n.children[:index], n.children[index+1:]...)
	child.parent = nil
	return child, nil
}

// IndexOf returns the position of the given node in this node's child list,
// or -1 if it is not a child.
func (n *Node) IndexOf(child *Node) int {
	for index, node := range n.children {
		if node == child {
			return index
		}
	}
	return -1
}

// validateChild checks that this node may hold children and that the
// candidate is a legal child kind.
func (n *Node) validateChild(child *Node) error {
	if !n.IsContainer() {
		return ErrHierarchyRequest("node cannot have children")
	}
	if child == nil {
		return ErrHierarchyRequest("child is nil")
	}
	switch child.nodeType {
	case AttributeNode, NamespaceNode:
		return ErrHierarchyRequest("attribute and namespace nodes are owned through element maps, not child lists")
	case DocumentNode:
		return ErrHierarchyRequest("a document cannot be a child")
	}
	// Ancestor cycle check: inserting an ancestor of the container would
	// disconnect the tree from itself.
	for node := n; node != nil; node = node.parent {
		if node == child {
			return ErrHierarchyRequest("the new child contains this node")
		}
	}
	return nil
}
