// Package xpath exposes the document model as an evaluation context for
// query engines. It supplies the context state and node-set ordering
// primitives an XPath evaluator needs — parent-aware navigation, in-scope
// namespaces, and document-order comparison all come from the dom package.
package xpath

import (
	"fmt"

	"github.com/lmorillas/amara/dom"
)

// ErrorCode classifies XPath processing errors.
type ErrorCode int

const (
	// ErrorInternal is an internal or otherwise unexpected error.
	ErrorInternal ErrorCode = 1
	// ErrorNoContext means an expression was evaluated without a context node.
	ErrorNoContext ErrorCode = 30
)

// Error is an XPath processing error.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("XPathError(%d): %s", e.Code, e.Message)
}

// ExpandedName identifies a variable by namespace URI and local name.
type ExpandedName struct {
	NamespaceURI string
	LocalName    string
}

// Context is the evaluation state for an XPath expression: a context node,
// its position and size within the current node set, the prefix bindings
// visible to the expression, and any variable bindings.
type Context struct {
	Node      *dom.Node
	Position  int
	Size      int
	Namespaces map[string]string
	Variables  map[ExpandedName]interface{}
}

// NewContext creates an evaluation context over the given node with
// position and size 1. When the node is an element, its in-scope namespace
// bindings seed the context's prefix table; otherwise only the implicit
// "xml" binding is present.
func NewContext(node *dom.Node) (*Context, error) {
	if node == nil {
		return nil, &Error{Code: ErrorNoContext, Message: "an XPath expression requires a context node"}
	}
	namespaces := map[string]string{"xml": dom.XMLNamespace}
	if el := node.AsElement(); el != nil {
		for _, ns := range el.InScopeNamespaces().Items() {
			namespaces[ns.Prefix()] = ns.URI()
		}
	}
	return &Context{
		Node:       node,
		Position:   1,
		Size:       1,
		Namespaces: namespaces,
		Variables:  map[ExpandedName]interface{}{},
	}, nil
}

// Clone returns a copy of the context sharing the namespace and variable
// tables. Evaluators fork the context per step without disturbing the
// caller's position and size.
func (c *Context) Clone() *Context {
	clone := *c
	return &clone
}
