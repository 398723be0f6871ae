package domq

import (
	"github.com/sirupsen/logrus"

	"domq/dom"
)

// materialize turns variadic content into concrete nodes. Each string input
// becomes one fresh text node per call; node inputs pass through by
// reference, not yet cloned.
func (c *Collection) materialize(content []any) []*dom.Node {
	doc := c.document()
	out := make([]*dom.Node, 0, len(content))
	for _, item := range content {
		switch v := item.(type) {
		case string:
			out = append(out, dom.NewText(doc, v))
		case *dom.Node:
			if v != nil {
				out = append(out, v)
			}
		default:
			logrus.Debugf("domq: unsupported content type %T", item)
		}
	}
	return out
}

// distribute fans the content nodes out across the targets, visiting them in
// reverse order so repeated inserts before a fixed sibling keep the targets'
// relative order. The first target visited receives the original nodes;
// every later target receives deep clones, since a node cannot live under
// two parents at once.
func distribute(targets []*dom.Node, content []*dom.Node, insert func(target *dom.Node, nodes []*dom.Node)) {
	for i := len(targets) - 1; i >= 0; i-- {
		nodes := content
		if i != len(targets)-1 {
			nodes = make([]*dom.Node, len(content))
			for j, n := range content {
				nodes[j] = n.CloneNode(true)
			}
		}
		insert(targets[i], nodes)
	}
}

// childCapableWithParent filters members down to nodes that can be inserted
// relative to: child-capable and currently attached to a parent.
func (c *Collection) childCapableWithParent() []*dom.Node {
	var out []*dom.Node
	for _, n := range c.nodes() {
		if dom.IsChildCapable(n) && n.ParentNode != nil {
			out = append(out, n)
		}
	}
	return out
}

func (c *Collection) parentCapable() []*dom.Node {
	var out []*dom.Node
	for _, n := range c.nodes() {
		if dom.IsParentCapable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Before inserts content immediately before every eligible member and
// returns the receiver. Membership is unchanged.
func (c *Collection) Before(content ...any) *Collection {
	nodes := c.materialize(content)
	distribute(c.childCapableWithParent(), nodes, func(target *dom.Node, nodes []*dom.Node) {
		for _, n := range nodes {
			target.ParentNode.InsertBefore(n, target)
		}
	})
	return c
}

// After inserts content immediately after every eligible member.
func (c *Collection) After(content ...any) *Collection {
	nodes := c.materialize(content)
	distribute(c.childCapableWithParent(), nodes, func(target *dom.Node, nodes []*dom.Node) {
		ref := target.NextSibling
		for _, n := range nodes {
			target.ParentNode.InsertBefore(n, ref)
		}
	})
	return c
}

// Prepend inserts content as the first children of every parent-capable
// member.
func (c *Collection) Prepend(content ...any) *Collection {
	nodes := c.materialize(content)
	distribute(c.parentCapable(), nodes, func(target *dom.Node, nodes []*dom.Node) {
		ref := target.FirstChild
		for _, n := range nodes {
			target.InsertBefore(n, ref)
		}
	})
	return c
}

// Append inserts content as the last children of every parent-capable
// member.
func (c *Collection) Append(content ...any) *Collection {
	nodes := c.materialize(content)
	distribute(c.parentCapable(), nodes, func(target *dom.Node, nodes []*dom.Node) {
		for _, n := range nodes {
			target.AppendChild(n)
		}
	})
	return c
}

// ReplaceWith inserts content before every eligible member, then detaches
// the member itself: replacement by composition.
func (c *Collection) ReplaceWith(content ...any) *Collection {
	targets := c.childCapableWithParent()
	c.Before(content...)
	for _, target := range targets {
		target.Remove()
	}
	return c
}

// Remove detaches every attached node member from its parent. The
// collection's membership is unchanged.
func (c *Collection) Remove() *Collection {
	for _, n := range c.nodes() {
		n.Remove()
	}
	return c
}

// Empty drops all children of every parent-capable member.
func (c *Collection) Empty() *Collection {
	for _, n := range c.parentCapable() {
		for n.FirstChild != nil {
			n.RemoveChild(n.FirstChild)
		}
	}
	return c
}
