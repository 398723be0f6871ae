package dom

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses markup into nodes owned by the context's document.
// Parsing is inert: nothing in the markup is ever executed. The fragment is
// parsed in body scope, matching how hosts parse markup handed to a
// collection.
func ParseFragment(markup string, context *Node) ([]*Node, error) {
	scope := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	parsed, err := html.ParseFragment(strings.NewReader(markup), scope)
	if err != nil {
		return nil, errors.Wrap(err, "parse fragment")
	}

	var od *Node
	if context != nil {
		od = context.ownerDocumentNode()
	}
	nodes := make([]*Node, 0, len(parsed))
	for _, hn := range parsed {
		if n := convert(hn, od); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, nil
}

// convert maps a parsed html.Node subtree onto the dom node model.
func convert(hn *html.Node, od *Node) *Node {
	var n *Node
	switch hn.Type {
	case html.ElementNode:
		n = NewElement(od, hn.Data)
		for _, attr := range hn.Attr {
			n.SetAttribute(attr.Key, attr.Val)
		}
	case html.TextNode:
		n = NewText(od, hn.Data)
	case html.CommentNode:
		n = NewComment(od, hn.Data)
	case html.DoctypeNode:
		n = NewDocType(od, hn.Data, "", "")
	default:
		return nil
	}
	for child := hn.FirstChild; child != nil; child = child.NextSibling {
		if converted := convert(child, od); converted != nil {
			n.AppendChild(converted)
		}
	}
	return n
}
