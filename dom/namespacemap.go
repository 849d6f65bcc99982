package dom

// NamespaceMap is an ordered collection of namespace declarations owned by
// one element, keyed by prefix (the empty prefix keys the default-namespace
// binding). Iteration order is insertion order; replacing the entry at an
// existing prefix keeps its position.
type NamespaceMap struct {
	owner    *Element
	bindings []*Namespace
}

// Len returns the number of declarations in the map.
func (m *NamespaceMap) Len() int {
	return len(m.bindings)
}

// Item returns the declaration at the given position, or nil if out of
// bounds.
func (m *NamespaceMap) Item(index int) *Namespace {
	if index < 0 || index >= len(m.bindings) {
		return nil
	}
	return m.bindings[index]
}

// Items returns a snapshot of the declarations in insertion order.
func (m *NamespaceMap) Items() []*Namespace {
	items := make([]*Namespace, len(m.bindings))
	copy(items, m.bindings)
	return items
}

// Get returns the declaration for the given prefix, or nil if the prefix is
// not declared in this map. The reference is non-owning.
func (m *NamespaceMap) Get(prefix string) *Namespace {
	for _, ns := range m.bindings {
		if ns.Prefix() == prefix {
			return ns
		}
	}
	return nil
}

// URI returns the URI declared for the prefix, and whether the prefix is
// present in the map.
func (m *NamespaceMap) URI(prefix string) (string, bool) {
	if ns := m.Get(prefix); ns != nil {
		return ns.URI(), true
	}
	return "", false
}

// Set inserts the declaration, replacing any entry for the same prefix in
// place. The evicted declaration, if any, is returned with its owner
// reference cleared.
func (m *NamespaceMap) Set(ns *Namespace) *Namespace {
	if ns == nil {
		return nil
	}
	m.adopt(ns.AsNode())
	for i, existing := range m.bindings {
		if existing == ns {
			return nil
		}
		if existing.Prefix() == ns.Prefix() {
			m.bindings[i] = ns
			existing.AsNode().parent = nil
			return existing
		}
	}
	m.bindings = append(m.bindings, ns)
	return nil
}

// Remove removes and returns the declaration for the given prefix, clearing
// its owner reference. Returns nil if the prefix is not declared.
func (m *NamespaceMap) Remove(prefix string) *Namespace {
	for i, ns := range m.bindings {
		if ns.Prefix() == prefix {
			m.bindings = append(m.bindings[:i], m.bindings[i+1:]...)
			ns.AsNode().parent = nil
			return ns
		}
	}
	return nil
}

// removeNode detaches the exact node from the map, if present.
func (m *NamespaceMap) removeNode(node *Node) {
	for i, ns := range m.bindings {
		if ns.AsNode() == node {
			m.bindings = append(m.bindings[:i], m.bindings[i+1:]...)
			node.parent = nil
			return
		}
	}
}

// adopt transfers ownership of the node to this map's element, detaching it
// from a previous owner's map first.
func (m *NamespaceMap) adopt(node *Node) {
	if owner := node.ParentElement(); owner != nil && owner != m.owner {
		if prior := owner.AsNode().elementData.namespaces; prior != nil {
			prior.removeNode(node)
		}
	}
	if m.owner != nil {
		node.parent = m.owner.AsNode()
	}
}
