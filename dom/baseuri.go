package dom

import "github.com/lmorillas/amara/iri"

// BaseURI computes the node's base URI according to XML Base: the nearest
// xml:base attribute on the node or its ancestor elements, absolutized
// against the base URI of the declaring element's parent when relative,
// falling back to the document URI when that is absolute. Returns "" when
// no absolute base can be established.
func (n *Node) BaseURI() (string, error) {
	node := n
	for node.parent != nil {
		if node.nodeType == ElementNode {
			if attr := (*Element)(node).GetAttribute(XMLNamespace, "base"); attr != nil {
				base := attr.Value()
				if iri.IsAbsolute(base) {
					return base, nil
				}
				// Relative xml:base resolves against the base URI in effect
				// where it was declared.
				parentBase, err := node.parent.BaseURI()
				if err != nil || parentBase == "" {
					return parentBase, err
				}
				return iri.Absolutize(base, parentBase)
			}
		}
		node = node.parent
	}
	if node.nodeType == DocumentNode {
		if base := (*Document)(node).URI(); iri.IsAbsolute(base) {
			return base, nil
		}
	}
	return "", nil
}
