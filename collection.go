package domq

import "domq/dom"

// Collection is an ordered, de-duplicated sequence of Items. Methods either
// mutate members in place and return the receiver, or project into a new
// Collection and leave the receiver untouched; each method documents which.
//
// A Collection is not safe for concurrent use.
type Collection struct {
	f     *Factory
	items []dom.Item
}

// push appends items in order, silently dropping non-Items and anything
// already present by reference identity.
func (c *Collection) push(items ...dom.Item) *Collection {
	for _, it := range items {
		if !dom.IsItem(it) {
			continue
		}
		if c.indexOf(it) != -1 {
			continue
		}
		c.items = append(c.items, it)
	}
	return c
}

func (c *Collection) indexOf(it dom.Item) int {
	for i := range c.items {
		if c.items[i] == it {
			return i
		}
	}
	return -1
}

// newLike returns an empty collection sharing the receiver's factory.
func (c *Collection) newLike() *Collection {
	return &Collection{f: c.f}
}

// Length returns the number of members.
func (c *Collection) Length() int {
	return len(c.items)
}

// Get returns the i-th member, or nil out of range.
func (c *Collection) Get(i int) dom.Item {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i]
}

// Items returns a copy of the member list.
func (c *Collection) Items() []dom.Item {
	out := make([]dom.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Each calls fn for every member in order and returns the receiver.
func (c *Collection) Each(fn func(item dom.Item, i int)) *Collection {
	for i, it := range c.items {
		fn(it, i)
	}
	return c
}

// Eq projects the i-th member into a new collection; out of range is empty.
func (c *Collection) Eq(i int) *Collection {
	out := c.newLike()
	if it := c.Get(i); it != nil {
		out.push(it)
	}
	return out
}

// First projects the first member.
func (c *Collection) First() *Collection {
	return c.Eq(0)
}

// Last projects the last member.
func (c *Collection) Last() *Collection {
	return c.Eq(len(c.items) - 1)
}

// nodes returns the members that are tree nodes, in order.
func (c *Collection) nodes() []*dom.Node {
	var out []*dom.Node
	for _, it := range c.items {
		if n := dom.AsNode(it); n != nil {
			out = append(out, n)
		}
	}
	return out
}

// document resolves the document governing this collection: the owner
// document of the first node member, else the factory's document.
func (c *Collection) document() *dom.Node {
	for _, it := range c.items {
		if n := dom.AsNode(it); n != nil {
			if dom.IsDocument(n) {
				return n
			}
			if n.OwnerDocument != nil {
				return n.OwnerDocument
			}
		}
	}
	if c.f != nil {
		return c.f.doc
	}
	return nil
}
