// Package xml builds document trees from XML text. It drives an
// encoding/xml token stream into the dom package's node constructors,
// recovering the prefixes and namespace declarations the token stream
// resolves away so qualified names round-trip through serialization.
package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/lmorillas/amara/dom"
)

// Parse reads an XML document from r and returns its tree. Documents in
// encodings other than UTF-8 are decoded according to their declared
// charset label.
func Parse(r io.Reader) (*dom.Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	p := &parser{doc: dom.NewDocument()}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := p.handle(tok); err != nil {
			return nil, err
		}
	}
	if len(p.stack) != 0 {
		return nil, fmt.Errorf("xml: unclosed element %s", p.stack[len(p.stack)-1].QualifiedName())
	}
	return p.doc, nil
}

// ParseString parses an XML document held in a string.
func ParseString(s string) (*dom.Document, error) {
	return Parse(strings.NewReader(s))
}

// decl is one xmlns declaration in source order.
type decl struct {
	prefix string
	uri    string
}

type parser struct {
	doc    *dom.Document
	stack  []*dom.Element
	frames [][]decl // one frame of declarations per open element
}

func (p *parser) handle(tok xml.Token) error {
	switch t := tok.(type) {
	case xml.StartElement:
		return p.startElement(t)
	case xml.EndElement:
		p.stack = p.stack[:len(p.stack)-1]
		p.frames = p.frames[:len(p.frames)-1]
		return nil
	case xml.CharData:
		if len(p.stack) == 0 {
			if strings.TrimSpace(string(t)) == "" {
				return nil
			}
			return fmt.Errorf("xml: text outside document element")
		}
		return p.append(dom.NewText(string(t)).AsNode())
	case xml.Comment:
		return p.append(dom.NewComment(string(t)).AsNode())
	case xml.ProcInst:
		if t.Target == "xml" {
			// The XML declaration is not part of the tree.
			return nil
		}
		pi, err := dom.NewProcessingInstruction(t.Target, string(t.Inst))
		if err != nil {
			return err
		}
		return p.append(pi.AsNode())
	case xml.Directive:
		// DOCTYPE and other directives are out of scope.
		return nil
	default:
		return nil
	}
}

func (p *parser) startElement(tok xml.StartElement) error {
	var frame []decl
	for _, a := range tok.Attr {
		switch {
		case a.Name.Space == "xmlns":
			frame = append(frame, decl{prefix: a.Name.Local, uri: a.Value})
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			frame = append(frame, decl{prefix: "", uri: a.Value})
		}
	}
	p.frames = append(p.frames, frame)

	namespaceURI, qname, err := p.qualify(tok.Name, false)
	if err != nil {
		return err
	}
	el := dom.RestoreElement(namespaceURI, qname)
	for _, d := range frame {
		el.Namespaces().Set(dom.RestoreNamespace(d.prefix, d.uri))
	}
	for _, a := range tok.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attrNS, attrQName, err := p.qualify(a.Name, true)
		if err != nil {
			return err
		}
		el.Attributes().Set(dom.RestoreAttr(attrNS, attrQName, a.Value))
	}

	if err := p.append(el.AsNode()); err != nil {
		return err
	}
	p.stack = append(p.stack, el)
	return nil
}

// qualify rebuilds the (namespace URI, qualified name) pair for a token
// name whose prefix the decoder has replaced with the resolved URI. The
// innermost declaration for the URI decides the prefix; attributes never
// take the default namespace.
func (p *parser) qualify(name xml.Name, isAttr bool) (namespaceURI, qname string, err error) {
	switch name.Space {
	case "":
		return "", name.Local, nil
	case "xml", dom.XMLNamespace:
		return dom.XMLNamespace, "xml:" + name.Local, nil
	}
	prefix, ok := p.lookupPrefix(name.Space, isAttr)
	if !ok {
		return "", "", fmt.Errorf("xml: no declaration in scope for namespace %q", name.Space)
	}
	if prefix == "" {
		return name.Space, name.Local, nil
	}
	return name.Space, prefix + ":" + name.Local, nil
}

// lookupPrefix finds the innermost prefix declared for the URI. When isAttr
// is true the default (empty) prefix is skipped.
func (p *parser) lookupPrefix(uri string, isAttr bool) (string, bool) {
	for i := len(p.frames) - 1; i >= 0; i-- {
		frame := p.frames[i]
		for j := len(frame) - 1; j >= 0; j-- {
			d := frame[j]
			if d.uri != uri {
				continue
			}
			if isAttr && d.prefix == "" {
				continue
			}
			return d.prefix, true
		}
	}
	return "", false
}

func (p *parser) append(node *dom.Node) error {
	if len(p.stack) == 0 {
		return p.doc.AsNode().AppendChild(node)
	}
	return p.stack[len(p.stack)-1].AsNode().AppendChild(node)
}
