package css

import (
	"strings"

	"github.com/sirupsen/logrus"

	"domq/dom"
)

// Matches reports whether the element node n matches any selector in the
// group. Non-element nodes never match.
func Matches(n *dom.Node, list SelectorList) bool {
	if n == nil || n.NodeType != dom.ElementNode {
		return false
	}
	for _, sel := range list {
		last := len(sel.Parts) - 1
		if last < 0 {
			continue
		}
		if matchFrom(n, sel, last) {
			return true
		}
	}
	return false
}

// MatchString parses and matches in one step. Selectors the parser rejects
// match nothing.
func MatchString(n *dom.Node, selector string) bool {
	list, err := Parse(selector)
	if err != nil {
		logrus.Debugf("css: %v", err)
		return false
	}
	return Matches(n, list)
}

// matchFrom matches the selector right to left, walking the tree according
// to the combinator at each step.
func matchFrom(n *dom.Node, sel Selector, index int) bool {
	if n == nil || index < 0 || n.NodeType != dom.ElementNode {
		return false
	}
	part := sel.Parts[index]
	if !matchSimple(n, part.Simple) {
		return false
	}
	if index == 0 {
		return true
	}
	next := index - 1
	switch part.Combinator {
	case CombinatorDescendant:
		for parent := n.ParentNode; parent != nil; parent = parent.ParentNode {
			if matchFrom(parent, sel, next) {
				return true
			}
		}
		return false
	case CombinatorChild:
		return matchFrom(n.ParentNode, sel, next)
	case CombinatorAdjacentSibling:
		return matchFrom(prevElementSibling(n), sel, next)
	case CombinatorGeneralSibling:
		for sibling := prevElementSibling(n); sibling != nil; sibling = prevElementSibling(sibling) {
			if matchFrom(sibling, sel, next) {
				return true
			}
		}
		return false
	case CombinatorNone:
		return true
	}
	return false
}

func prevElementSibling(n *dom.Node) *dom.Node {
	for sibling := n.PreviousSibling; sibling != nil; sibling = sibling.PreviousSibling {
		if sibling.NodeType == dom.ElementNode {
			return sibling
		}
	}
	return nil
}

func matchSimple(n *dom.Node, simple Simple) bool {
	if simple.Tag != "" && simple.Tag != "*" && n.NodeName != simple.Tag {
		return false
	}
	if simple.ID != "" && n.GetAttribute("id") != simple.ID {
		return false
	}
	for _, class := range simple.Classes {
		if !n.ClassList.Contains(class) {
			return false
		}
	}
	for _, attr := range simple.Attrs {
		if !matchAttr(n, attr) {
			return false
		}
	}
	return true
}

func matchAttr(n *dom.Node, sel AttrSelector) bool {
	value := n.GetAttribute(sel.Name)
	found := n.HasAttribute(sel.Name)

	switch sel.Operator {
	case "":
		return found
	case "=":
		return found && value == sel.Value
	case "~=":
		if !found {
			return false
		}
		for _, word := range strings.Fields(value) {
			if word == sel.Value {
				return true
			}
		}
		return false
	case "|=":
		return found && (value == sel.Value || strings.HasPrefix(value, sel.Value+"-"))
	case "^=":
		return found && strings.HasPrefix(value, sel.Value)
	case "$=":
		return found && strings.HasSuffix(value, sel.Value)
	case "*=":
		return found && strings.Contains(value, sel.Value)
	}
	return false
}

// QueryAll returns the descendants of root matching selector, in document
// order. The root itself is excluded.
func QueryAll(root *dom.Node, selector string) []*dom.Node {
	list, err := Parse(selector)
	if err != nil {
		logrus.Debugf("css: %v", err)
		return nil
	}
	var matched []*dom.Node
	var walk func(n *dom.Node)
	walk = func(n *dom.Node) {
		for _, child := range n.ChildNodes {
			if Matches(child, list) {
				matched = append(matched, child)
			}
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return matched
}

// Closest returns the nearest of n and its ancestors matching selector, or
// nil.
func Closest(n *dom.Node, selector string) *dom.Node {
	list, err := Parse(selector)
	if err != nil {
		logrus.Debugf("css: %v", err)
		return nil
	}
	for i := n; i != nil; i = i.ParentNode {
		if Matches(i, list) {
			return i
		}
	}
	return nil
}
