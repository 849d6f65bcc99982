package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// SerializeToXML serializes a node to an XML string. Declared namespaces
// and attributes are written in stored (insertion) order. Attr and
// Namespace nodes have no markup of their own and cannot be serialized
// standalone.
func SerializeToXML(node *Node) (string, error) {
	var sb strings.Builder
	if err := serializeNode(&sb, node); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Serialize writes the node as XML to w. When encoding names a character
// set other than UTF-8, the output is re-encoded through the registered
// IANA encoding and the XML declaration names it. Document nodes always get
// an XML declaration.
func Serialize(w io.Writer, node *Node, encoding string) error {
	out := w
	declared := ""
	if encoding != "" && !strings.EqualFold(encoding, "utf-8") {
		enc, err := ianaindex.IANA.Encoding(encoding)
		if err != nil || enc == nil {
			return ErrNotSupported(fmt.Sprintf("unknown output encoding %q", encoding))
		}
		out = transform.NewWriter(w, enc.NewEncoder())
		declared = encoding
	}
	if node.nodeType == DocumentNode {
		decl := `<?xml version="1.0"?>` + "\n"
		if declared != "" {
			decl = fmt.Sprintf("<?xml version=\"1.0\" encoding=%q?>\n", declared)
		}
		if _, err := io.WriteString(out, decl); err != nil {
			return err
		}
	}
	var sb strings.Builder
	if err := serializeNode(&sb, node); err != nil {
		return err
	}
	if _, err := io.WriteString(out, sb.String()); err != nil {
		return err
	}
	if closer, ok := out.(io.Closer); ok && out != w {
		return closer.Close()
	}
	return nil
}

func serializeNode(sb *strings.Builder, node *Node) error {
	switch node.nodeType {
	case DocumentNode:
		for _, child := range node.children {
			if err := serializeNode(sb, child); err != nil {
				return err
			}
		}
		return nil

	case ElementNode:
		return serializeElement(sb, (*Element)(node))

	case TextNode:
		sb.WriteString(escapeText(*node.textData))
		return nil

	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(*node.commentData)
		sb.WriteString("-->")
		return nil

	case ProcessingInstructionNode:
		sb.WriteString("<?")
		sb.WriteString(node.piData.target)
		if node.piData.data != "" {
			sb.WriteString(" ")
			sb.WriteString(node.piData.data)
		}
		sb.WriteString("?>")
		return nil

	default:
		return ErrNotSupported("node kind " + node.nodeType.String() + " cannot be serialized standalone")
	}
}

func serializeElement(sb *strings.Builder, el *Element) error {
	node := el.AsNode()
	qname := el.QualifiedName()
	sb.WriteString("<")
	sb.WriteString(qname)

	if declared := node.elementData.namespaces; declared != nil {
		for _, ns := range declared.bindings {
			if ns.Prefix() == "" {
				sb.WriteString(` xmlns="`)
			} else {
				sb.WriteString(" xmlns:")
				sb.WriteString(ns.Prefix())
				sb.WriteString(`="`)
			}
			sb.WriteString(escapeAttr(ns.URI()))
			sb.WriteString(`"`)
		}
	}
	if attrs := node.elementData.attributes; attrs != nil {
		for _, attr := range attrs.attrs {
			sb.WriteString(" ")
			sb.WriteString(attr.QualifiedName())
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(attr.Value()))
			sb.WriteString(`"`)
		}
	}

	if len(node.children) == 0 {
		sb.WriteString("/>")
		return nil
	}
	sb.WriteString(">")
	for _, child := range node.children {
		if err := serializeNode(sb, child); err != nil {
			return err
		}
	}
	sb.WriteString("</")
	sb.WriteString(qname)
	sb.WriteString(">")
	return nil
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var attrEscaper = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;",
	"\t", "&#x9;", "\n", "&#xA;", "\r", "&#xD;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
