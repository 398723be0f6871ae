package dom

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

// https://html.spec.whatwg.org/#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// rawTextElements hold text that is serialized without escaping.
var rawTextElements = map[string]bool{
	"style": true, "script": true, "xmp": true, "iframe": true,
	"noembed": true, "noframes": true, "plaintext": true, "noscript": true,
}

// SerializeFragment renders the children of n as HTML.
// https://html.spec.whatwg.org/#serialising-html-fragments
func SerializeFragment(n *Node) string {
	var sb strings.Builder
	for _, child := range n.ChildNodes {
		serializeNode(&sb, child)
	}
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	switch n.NodeType {
	case ElementNode:
		sb.WriteString("<" + n.NodeName)
		for _, name := range n.Attributes.SortedNames() {
			sb.WriteString(" " + name + "=\"" + escapeString(n.Attributes.Attrs[name], true) + "\"")
		}
		sb.WriteString(">")
		if voidElements[n.NodeName] {
			return
		}
		sb.WriteString(SerializeFragment(n))
		sb.WriteString("</" + n.NodeName + ">")
	case TextNode:
		if n.ParentNode != nil && rawTextElements[n.ParentNode.NodeName] {
			sb.WriteString(n.Text.Data)
		} else {
			sb.WriteString(escapeString(n.Text.Data, false))
		}
	case CommentNode:
		sb.WriteString("<!--" + n.Comment.Data + "-->")
	case ProcessingInstructionNode:
		sb.WriteString("<?" + n.ProcessingInstruction.Target + " " + n.ProcessingInstruction.Data + ">")
	case DocumentTypeNode:
		sb.WriteString("<!DOCTYPE " + n.DocumentType.Name + ">")
	case DocumentNode, DocumentFragmentNode:
		sb.WriteString(SerializeFragment(n))
	}
}

// InnerHTML renders the node's children as markup.
func (n *Node) InnerHTML() string {
	return SerializeFragment(n)
}

// OuterHTML renders the node itself as markup.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

// SetInnerHTML replaces the node's children with the parsed markup. Only
// parent-capable nodes accept content; markup the parser rejects leaves the
// node untouched.
func (n *Node) SetInnerHTML(markup string) {
	if !IsParentCapable(n) {
		return
	}
	nodes, err := ParseFragment(markup, n)
	if err != nil {
		logrus.Debugf("dom: set inner html: %v", err)
		return
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	for _, child := range nodes {
		n.AppendChild(child)
	}
}
