package dom

// Namespace represents a namespace declaration: a (prefix, URI) pair owned
// by at most one element through its NamespaceMap. An empty prefix is the
// default-namespace binding; an empty URI is an explicit unbinding.
type Namespace Node

// NewNamespace creates a namespace binding for the given prefix and URI.
// A non-empty prefix must be a valid NCName and requires a non-empty URI.
func NewNamespace(prefix, uri string) (*Namespace, error) {
	if prefix != "" {
		if !IsNCName(prefix) {
			return nil, ErrInvalidCharacter("invalid prefix: " + prefix)
		}
		if uri == "" {
			return nil, ErrNamespace("only the default namespace may be unbound")
		}
	}
	return restoreNamespace(prefix, uri), nil
}

// RestoreNamespace rebuilds a namespace binding without re-running
// construction validation.
func RestoreNamespace(prefix, uri string) *Namespace {
	return restoreNamespace(prefix, uri)
}

func restoreNamespace(prefix, uri string) *Namespace {
	node := &Node{
		nodeType:      NamespaceNode,
		namespaceData: &namespaceData{prefix: prefix, uri: uri},
	}
	return (*Namespace)(node)
}

// AsNode returns the underlying Node.
func (ns *Namespace) AsNode() *Node {
	return (*Node)(ns)
}

// Prefix returns the declared prefix, "" for the default namespace.
func (ns *Namespace) Prefix() string {
	return ns.AsNode().namespaceData.prefix
}

// URI returns the declared namespace URI.
func (ns *Namespace) URI() string {
	return ns.AsNode().namespaceData.uri
}

// OwnerElement returns the element owning this declaration, or nil if the
// binding is detached.
func (ns *Namespace) OwnerElement() *Element {
	return ns.AsNode().ParentElement()
}
