// Package domq is a chainable collection type over dom nodes: jQuery-style
// construction by selector or markup, traversal, filtering, class and
// attribute accessors, event binding and content insertion.
//
// The entry point is an explicit factory bound to a document:
//
//	doc := dom.NewDocument()
//	q := domq.New(doc)
//	q.Query("p.note").AddClass("highlight")
//
// There is no global registration; callers construct a Factory at their
// composition root and pass it around.
package domq

import (
	"regexp"

	"github.com/sirupsen/logrus"

	"domq/dom"
)

// htmlFragmentRe decides whether a string argument is markup rather than a
// selector: optional whitespace, '<', at least one character, '>', optional
// whitespace.
var htmlFragmentRe = regexp.MustCompile(`(?s)^\s*<.+>\s*$`)

// Factory builds collections against a default document.
type Factory struct {
	doc *dom.Node
}

// New returns a factory bound to doc. A nil doc gets a fresh scaffolded
// document.
func New(doc *dom.Node) *Factory {
	if doc == nil {
		doc = dom.NewDocument()
	}
	return &Factory{doc: doc}
}

// Document returns the factory's default document node.
func (f *Factory) Document() *dom.Node {
	return f.doc
}

// Query is the selector-dispatch constructor. The selector may be nil, a
// markup string, a selector string, a single Item, a slice of Items or nodes,
// or another Collection. The optional context scopes selector queries and
// fragment parsing; it defaults to the factory's document and is resolved
// through this same dispatch when it is itself a string, Item or list.
//
// A markup-looking string whose context is not a document falls through to
// selector querying against that context.
func (f *Factory) Query(selector any, context ...any) *Collection {
	c := &Collection{f: f}
	switch sel := selector.(type) {
	case nil:
		return c
	case string:
		if htmlFragmentRe.MatchString(sel) {
			scope := f.doc
			if len(context) > 0 {
				if !dom.IsDocument(context[0]) {
					return f.resolveContext(context).Find(sel)
				}
				scope = dom.AsNode(context[0])
			}
			nodes, err := dom.ParseFragment(sel, scope)
			if err != nil {
				logrus.Debugf("domq: %v", err)
				return c
			}
			for _, n := range nodes {
				c.push(n)
			}
			return c
		}
		return f.resolveContext(context).Find(sel)
	case *Collection:
		c.push(sel.items...)
	case []dom.Item:
		c.push(sel...)
	case []*dom.Node:
		for _, n := range sel {
			c.push(n)
		}
	case dom.Item:
		c.push(sel)
	default:
		// Documented precondition: other shapes are unsupported.
		logrus.Debugf("domq: unsupported selector type %T", selector)
	}
	return c
}

// resolveContext turns the variadic context argument into a collection of
// query roots, defaulting to the factory's document.
func (f *Factory) resolveContext(context []any) *Collection {
	if len(context) == 0 || context[0] == nil {
		c := &Collection{f: f}
		c.push(f.doc)
		return c
	}
	return f.Query(context[0])
}
