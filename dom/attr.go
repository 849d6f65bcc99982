package dom

// Attr represents an attribute of an Element. An attribute is exclusively
// owned by at most one element at a time, through the element's
// AttributeMap; its parent back-reference is that element or nil.
type Attr Node

// NewAttr creates an attribute with the given namespace URI, qualified name
// and value. An empty namespaceURI means no namespace, in which case the
// qualified name must not carry a prefix.
func NewAttr(namespaceURI, qualifiedName, value string) (*Attr, error) {
	if !IsQName(qualifiedName) {
		return nil, ErrInvalidCharacter("invalid qualified name: " + qualifiedName)
	}
	prefix, localName := SplitQName(qualifiedName)
	if prefix != "" && namespaceURI == "" {
		return nil, ErrNamespace("if you have a prefix in your qname you must have a non-null namespace")
	}
	return restoreAttr(namespaceURI, qualifiedName, localName, value), nil
}

// RestoreAttr rebuilds an attribute without re-running construction
// validation. It is the reconstruction entry point for deserializers.
func RestoreAttr(namespaceURI, qualifiedName, value string) *Attr {
	_, localName := SplitQName(qualifiedName)
	return restoreAttr(namespaceURI, qualifiedName, localName, value)
}

func restoreAttr(namespaceURI, qualifiedName, localName, value string) *Attr {
	node := &Node{
		nodeType: AttributeNode,
		attrData: &attrData{
			namespaceURI: namespaceURI,
			qname:        qualifiedName,
			localName:    localName,
			value:        value,
		},
	}
	return (*Attr)(node)
}

// AsNode returns the underlying Node.
func (a *Attr) AsNode() *Node {
	return (*Node)(a)
}

// NamespaceURI returns the namespace URI of the attribute, or "" when the
// attribute is in no namespace.
func (a *Attr) NamespaceURI() string {
	return a.AsNode().attrData.namespaceURI
}

// QualifiedName returns the attribute name as written.
func (a *Attr) QualifiedName() string {
	return a.AsNode().attrData.qname
}

// LocalName returns the local part of the attribute name.
func (a *Attr) LocalName() string {
	return a.AsNode().attrData.localName
}

// Prefix returns the namespace prefix of the attribute, derived from the
// qualified name.
func (a *Attr) Prefix() string {
	prefix, _ := SplitQName(a.AsNode().attrData.qname)
	return prefix
}

// Value returns the attribute value.
func (a *Attr) Value() string {
	return a.AsNode().attrData.value
}

// SetValue sets the attribute value.
func (a *Attr) SetValue(value string) {
	a.AsNode().attrData.value = value
}

// OwnerElement returns the element owning this attribute, or nil if the
// attribute is detached.
func (a *Attr) OwnerElement() *Element {
	return a.AsNode().ParentElement()
}
