package dom

import "sync/atomic"

// documentCounter assigns each Document a process-wide creation index used
// to order nodes belonging to different documents. The increment is atomic
// so multi-threaded hosts need no extra coordination for construction; all
// other tree state assumes external synchronization.
var documentCounter atomic.Uint64

// Document represents an XML document: the container at the root of a tree.
type Document Node

// NewDocument creates an empty Document. Documents created earlier sort
// before documents created later in document-order comparisons.
func NewDocument() *Document {
	node := &Node{
		nodeType: DocumentNode,
		documentData: &documentData{
			creationIndex: documentCounter.Add(1),
		},
	}
	return (*Document)(node)
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// CreationIndex returns the document's position in process-wide creation
// order.
func (d *Document) CreationIndex() uint64 {
	return d.AsNode().documentData.creationIndex
}

// URI returns the document URI, used as the outermost base URI.
func (d *Document) URI() string {
	return d.AsNode().documentData.documentURI
}

// SetURI sets the document URI.
func (d *Document) SetURI(uri string) {
	d.AsNode().documentData.documentURI = uri
}

// DocumentElement returns the first element child of the document, or nil.
func (d *Document) DocumentElement() *Element {
	for _, child := range d.AsNode().children {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}
