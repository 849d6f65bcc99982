package dom

// Element represents an element in an XML document: a container node with a
// namespace name, an attribute map and a namespace declaration map.
type Element Node

// NewElement creates an Element with the given namespace URI and qualified
// name. An empty namespaceURI means no namespace, in which case the
// qualified name must not carry a prefix.
func NewElement(namespaceURI, qualifiedName string) (*Element, error) {
	if !IsQName(qualifiedName) {
		return nil, ErrInvalidCharacter("invalid qualified name: " + qualifiedName)
	}
	prefix, localName := SplitQName(qualifiedName)
	if prefix != "" && namespaceURI == "" {
		return nil, ErrNamespace("if you have a prefix in your qname you must have a non-null namespace")
	}
	return restoreElement(namespaceURI, qualifiedName, localName), nil
}

// RestoreElement rebuilds an Element from previously captured parts without
// re-running construction validation. It is the reconstruction entry point
// for deserializers; namespaces, attributes and children are reattached
// through the element's maps and child list.
func RestoreElement(namespaceURI, qualifiedName string) *Element {
	_, localName := SplitQName(qualifiedName)
	return restoreElement(namespaceURI, qualifiedName, localName)
}

func restoreElement(namespaceURI, qualifiedName, localName string) *Element {
	node := &Node{
		nodeType: ElementNode,
		elementData: &elementData{
			namespaceURI: namespaceURI,
			qname:        qualifiedName,
			localName:    localName,
		},
	}
	return (*Element)(node)
}

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// checkState verifies the element's required fields are initialized before
// an operation that depends on them proceeds with partial state.
func (e *Element) checkState() error {
	n := e.AsNode()
	if n.nodeType != ElementNode || n.elementData == nil ||
		n.elementData.qname == "" || n.elementData.localName == "" {
		return ErrInvalidState("element in inconsistent state")
	}
	return nil
}

// NamespaceURI returns the namespace URI of the element, or "" when the
// element is in no namespace.
func (e *Element) NamespaceURI() string {
	return e.AsNode().elementData.namespaceURI
}

// QualifiedName returns the element name as written, "prefix:local" when a
// prefix is set.
func (e *Element) QualifiedName() string {
	return e.AsNode().elementData.qname
}

// LocalName returns the local part of the element name.
func (e *Element) LocalName() string {
	return e.AsNode().elementData.localName
}

// ExpandedName returns the (namespace URI, local name) pair identifying the
// element.
func (e *Element) ExpandedName() (namespaceURI, localName string) {
	data := e.AsNode().elementData
	return data.namespaceURI, data.localName
}

// Prefix returns the namespace prefix of the element, derived from the
// qualified name.
func (e *Element) Prefix() string {
	prefix, _ := SplitQName(e.AsNode().elementData.qname)
	return prefix
}

// SetPrefix changes the element's prefix, recomputing the qualified name as
// "prefix:local" (or the bare local name when prefix is empty). The
// namespace URI and local name are unchanged.
func (e *Element) SetPrefix(prefix string) error {
	data := e.AsNode().elementData
	if prefix == "" {
		data.qname = data.localName
		return nil
	}
	if !IsNCName(prefix) {
		return ErrInvalidCharacter("invalid prefix: " + prefix)
	}
	if data.namespaceURI == "" {
		return ErrNamespace("if you have a prefix in your qname you must have a non-null namespace")
	}
	data.qname = prefix + ":" + data.localName
	return nil
}

// Attributes returns the element's attribute map, creating it lazily so
// repeated lookups on attribute-free elements are idempotent.
func (e *Element) Attributes() *AttributeMap {
	data := e.AsNode().elementData
	if data.attributes == nil {
		data.attributes = &AttributeMap{owner: e}
	}
	return data.attributes
}

// Namespaces returns the element's declared namespace map, creating it
// lazily.
func (e *Element) Namespaces() *NamespaceMap {
	data := e.AsNode().elementData
	if data.namespaces == nil {
		data.namespaces = &NamespaceMap{owner: e}
	}
	return data.namespaces
}

// GetAttribute returns the attribute with the given namespace URI and local
// name, or nil if the element has no such attribute. The returned reference
// is non-owning; the attribute remains owned by the element.
func (e *Element) GetAttribute(namespaceURI, localName string) *Attr {
	return e.Attributes().Get(namespaceURI, localName)
}

// SetAttribute inserts the attribute into the element's attribute map,
// keyed by (namespace URI, local name). A prior attribute at the same key
// is evicted and its owner reference cleared; the new attribute's owner
// becomes this element. An attribute owned by another element is detached
// from it first.
func (e *Element) SetAttribute(attr *Attr) error {
	if err := e.checkState(); err != nil {
		return err
	}
	if attr == nil || attr.AsNode().nodeType != AttributeNode {
		return ErrInvalidState("not an attribute node")
	}
	e.Attributes().Set(attr)
	return nil
}

// AddAttribute constructs a new attribute from the given namespace URI,
// qualified name and value, and inserts it into the element's attribute
// map with this element as owner.
func (e *Element) AddAttribute(namespaceURI, qualifiedName, value string) (*Attr, error) {
	if err := e.checkState(); err != nil {
		return nil, err
	}
	attr, err := NewAttr(namespaceURI, qualifiedName, value)
	if err != nil {
		return nil, err
	}
	e.Attributes().Set(attr)
	return attr, nil
}

// AddNamespace constructs a namespace binding for the given prefix and URI
// and inserts it into the element's namespace map, keyed by prefix. An
// empty prefix declares the default namespace.
func (e *Element) AddNamespace(prefix, uri string) (*Namespace, error) {
	if err := e.checkState(); err != nil {
		return nil, err
	}
	ns, err := NewNamespace(prefix, uri)
	if err != nil {
		return nil, err
	}
	e.Namespaces().Set(ns)
	return ns, nil
}

// InScopeNamespaces returns the full set of namespace bindings visible at
// this element: its own declarations and those of its ancestor elements,
// with the innermost declaration for a prefix winning. The "xml" prefix is
// always bound to XMLNamespace whether or not it was declared.
//
// A default-namespace declaration with an empty URI unbinds the default
// namespace: it contributes no binding and shadows any outer default. An
// empty-URI declaration for a named prefix is not treated as an unbinding;
// only default-namespace unbinding is supported.
//
// The returned map is freshly built and owns fresh binding nodes; mutating
// it does not affect any element's declarations.
func (e *Element) InScopeNamespaces() *NamespaceMap {
	inscope := &NamespaceMap{}
	inscope.bindings = append(inscope.bindings, restoreNamespace("xml", XMLNamespace))
	seen := map[string]bool{"xml": true}

	for node := e.AsNode(); node != nil && node.nodeType == ElementNode; node = node.parent {
		declared := node.elementData.namespaces
		if declared == nil {
			continue
		}
		for _, ns := range declared.bindings {
			prefix := ns.Prefix()
			if seen[prefix] {
				// An inner declaration for this prefix already decided it.
				continue
			}
			seen[prefix] = true
			if ns.URI() == "" && prefix == "" {
				// Default namespace unbinding: no binding in scope, and
				// outer defaults stay shadowed.
				continue
			}
			inscope.bindings = append(inscope.bindings, restoreNamespace(prefix, ns.URI()))
		}
	}
	return inscope
}
