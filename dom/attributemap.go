package dom

// AttributeMap is an ordered collection of attributes owned by one element,
// keyed by (namespace URI, local name). Iteration order is insertion order;
// replacing the entry at an existing key keeps its position.
type AttributeMap struct {
	owner *Element
	attrs []*Attr
}

// Len returns the number of attributes in the map.
func (m *AttributeMap) Len() int {
	return len(m.attrs)
}

// Item returns the attribute at the given position, or nil if out of
// bounds.
func (m *AttributeMap) Item(index int) *Attr {
	if index < 0 || index >= len(m.attrs) {
		return nil
	}
	return m.attrs[index]
}

// Items returns a snapshot of the attributes in insertion order.
func (m *AttributeMap) Items() []*Attr {
	items := make([]*Attr, len(m.attrs))
	copy(items, m.attrs)
	return items
}

// Get returns the attribute with the given namespace URI and local name, or
// nil if not present. The reference is non-owning.
func (m *AttributeMap) Get(namespaceURI, localName string) *Attr {
	for _, attr := range m.attrs {
		if attr.NamespaceURI() == namespaceURI && attr.LocalName() == localName {
			return attr
		}
	}
	return nil
}

// Set inserts the attribute, replacing any entry at the same key in place.
// The evicted attribute, if any, is returned with its owner reference
// cleared. The incoming attribute is detached from any previous owner and
// re-owned by this map's element.
func (m *AttributeMap) Set(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	m.adopt(attr.AsNode())
	for i, existing := range m.attrs {
		if existing == attr {
			return nil
		}
		if existing.NamespaceURI() == attr.NamespaceURI() && existing.LocalName() == attr.LocalName() {
			m.attrs[i] = attr
			existing.AsNode().parent = nil
			return existing
		}
	}
	m.attrs = append(m.attrs, attr)
	return nil
}

// Remove removes and returns the attribute with the given key, clearing its
// owner reference. Returns nil if no attribute matches.
func (m *AttributeMap) Remove(namespaceURI, localName string) *Attr {
	for i, attr := range m.attrs {
		if attr.NamespaceURI() == namespaceURI && attr.LocalName() == localName {
			m.attrs = append(m.attrs[:i], m.attrs[i+1:]...)
			attr.AsNode().parent = nil
			return attr
		}
	}
	return nil
}

// removeNode detaches the exact node from the map, if present.
func (m *AttributeMap) removeNode(node *Node) {
	for i, attr := range m.attrs {
		if attr.AsNode() == node {
			m.attrs = append(m.attrs[:i], m.attrs[i+1:]...)
			node.parent = nil
			return
		}
	}
}

// adopt transfers ownership of the node to this map's element, detaching it
// from a previous owner's map first so the node is never listed twice.
func (m *AttributeMap) adopt(node *Node) {
	if owner := node.ParentElement(); owner != nil && owner != m.owner {
		if prior := owner.AsNode().elementData.attributes; prior != nil {
			prior.removeNode(node)
		}
	}
	if m.owner != nil {
		node.parent = m.owner.AsNode()
	}
}
