package domq

import (
	"github.com/sirupsen/logrus"

	"domq/css"
	"domq/dom"
)

// matches resolves the polymorphic matcher argument of Filter, Not and Is.
// The forms, in dispatch order: a selector string (element members only), a
// predicate func(item, index, collection), an item list (slice or
// Collection, matched by reference membership), and a single Item (matched
// by reference equality).
func (c *Collection) matches(it dom.Item, i int, matcher any) bool {
	switch m := matcher.(type) {
	case string:
		n := dom.AsNode(it)
		return dom.IsElement(n) && css.MatchString(n, m)
	case func(dom.Item, int, *Collection) bool:
		return m(it, i, c)
	case []dom.Item:
		for _, candidate := range m {
			if candidate == it {
				return true
			}
		}
		return false
	case []*dom.Node:
		for _, candidate := range m {
			if dom.Item(candidate) == it {
				return true
			}
		}
		return false
	case *Collection:
		return m.indexOf(it) != -1
	case dom.Item:
		return m == it
	}
	logrus.Debugf("domq: unsupported matcher type %T", matcher)
	return false
}

// Filter projects the members satisfying matcher, preserving order.
func (c *Collection) Filter(matcher any) *Collection {
	out := c.newLike()
	for i, it := range c.items {
		if c.matches(it, i, matcher) {
			out.push(it)
		}
	}
	return out
}

// Not projects the members failing matcher; the exact negation of Filter.
func (c *Collection) Not(matcher any) *Collection {
	out := c.newLike()
	for i, it := range c.items {
		if !c.matches(it, i, matcher) {
			out.push(it)
		}
	}
	return out
}

// Is reports whether any member satisfies matcher, short-circuiting.
func (c *Collection) Is(matcher any) bool {
	for i, it := range c.items {
		if c.matches(it, i, matcher) {
			return true
		}
	}
	return false
}
