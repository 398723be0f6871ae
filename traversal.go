package domq

import (
	"domq/css"
	"domq/dom"
)

// Children projects the element children of every parent-capable member. The
// optional selector narrows the result.
func (c *Collection) Children(selector ...string) *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		if !dom.IsParentCapable(n) {
			continue
		}
		for _, child := range n.ChildNodes {
			if child.NodeType == dom.ElementNode {
				out.push(child)
			}
		}
	}
	return out.narrow(selector)
}

// Parent projects the parent of every node member.
func (c *Collection) Parent(selector ...string) *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		if n.ParentNode != nil {
			out.push(n.ParentNode)
		}
	}
	return out.narrow(selector)
}

// Next projects each element member's next element sibling.
func (c *Collection) Next(selector ...string) *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		for sibling := n.NextSibling; sibling != nil; sibling = sibling.NextSibling {
			if sibling.NodeType == dom.ElementNode {
				out.push(sibling)
				break
			}
		}
	}
	return out.narrow(selector)
}

// Prev projects each element member's previous element sibling.
func (c *Collection) Prev(selector ...string) *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		for sibling := n.PreviousSibling; sibling != nil; sibling = sibling.PreviousSibling {
			if sibling.NodeType == dom.ElementNode {
				out.push(sibling)
				break
			}
		}
	}
	return out.narrow(selector)
}

// Closest projects, for every element member, the nearest of itself and its
// ancestors matching selector.
func (c *Collection) Closest(selector string) *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		if !dom.IsElement(n) {
			continue
		}
		if match := css.Closest(n, selector); match != nil {
			out.push(match)
		}
	}
	return out
}

// Find projects the descendants of every parent-capable member matching
// selector, in document order per member.
func (c *Collection) Find(selector string) *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		if !dom.IsParentCapable(n) {
			continue
		}
		for _, match := range css.QueryAll(n, selector) {
			out.push(match)
		}
	}
	return out
}

// Clone projects deep clones of every node member. Window members have no
// clone and are skipped.
func (c *Collection) Clone() *Collection {
	out := c.newLike()
	for _, n := range c.nodes() {
		out.push(n.CloneNode(true))
	}
	return out
}

// narrow applies the optional trailing selector filter of the traversal
// projections.
func (c *Collection) narrow(selector []string) *Collection {
	if len(selector) == 0 || selector[0] == "" {
		return c
	}
	return c.Filter(selector[0])
}
