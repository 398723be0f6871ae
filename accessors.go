package domq

import (
	"strings"

	"domq/dom"
)

// Attr returns the named attribute of the first element member, or "" when
// no member is an element.
func (c *Collection) Attr(name string) string {
	for _, n := range c.nodes() {
		if dom.IsElement(n) {
			return n.GetAttribute(name)
		}
	}
	return ""
}

// SetAttr sets the named attribute on every element member and returns the
// receiver.
func (c *Collection) SetAttr(name, value string) *Collection {
	for _, n := range c.nodes() {
		n.SetAttribute(name, value)
	}
	return c
}

// RemoveAttr drops the named attribute from every element member.
func (c *Collection) RemoveAttr(name string) *Collection {
	for _, n := range c.nodes() {
		n.RemoveAttribute(name)
	}
	return c
}

// Data returns the data-* value for key from the first element member.
func (c *Collection) Data(key string) string {
	for _, n := range c.nodes() {
		if dom.IsElement(n) {
			return n.Dataset(key)
		}
	}
	return ""
}

// SetData sets the data-* value for key on every element member.
func (c *Collection) SetData(key, value string) *Collection {
	for _, n := range c.nodes() {
		n.SetDataset(key, value)
	}
	return c
}

// Text returns the text content of the first node member, or "".
func (c *Collection) Text() string {
	for _, n := range c.nodes() {
		return n.TextContent()
	}
	return ""
}

// SetText replaces every node member's content with a text node holding s.
func (c *Collection) SetText(s string) *Collection {
	for _, n := range c.nodes() {
		n.SetTextContent(s)
	}
	return c
}

// Html returns the inner markup of the first element member, or "".
func (c *Collection) Html() string {
	for _, n := range c.nodes() {
		if dom.IsElement(n) {
			return n.InnerHTML()
		}
	}
	return ""
}

// SetHtml replaces every parent-capable member's children with the parsed
// markup.
func (c *Collection) SetHtml(markup string) *Collection {
	for _, n := range c.nodes() {
		n.SetInnerHTML(markup)
	}
	return c
}

// AddClass adds the given class names, space-separated names allowed, to
// every element member.
func (c *Collection) AddClass(names ...string) *Collection {
	tokens := splitClassNames(names)
	for _, n := range c.nodes() {
		if dom.IsElement(n) {
			n.ClassList.Add(tokens...)
		}
	}
	return c
}

// RemoveClass removes the given class names from every element member. With
// no arguments the class attribute is dropped entirely.
func (c *Collection) RemoveClass(names ...string) *Collection {
	tokens := splitClassNames(names)
	for _, n := range c.nodes() {
		if !dom.IsElement(n) {
			continue
		}
		if len(tokens) == 0 {
			n.RemoveAttribute("class")
			continue
		}
		n.ClassList.Remove(tokens...)
	}
	return c
}

// ToggleClass flips membership of the given class names on every element
// member.
func (c *Collection) ToggleClass(names ...string) *Collection {
	tokens := splitClassNames(names)
	for _, n := range c.nodes() {
		if !dom.IsElement(n) {
			continue
		}
		for _, token := range tokens {
			n.ClassList.Toggle(token)
		}
	}
	return c
}

// HasClass reports whether any element member carries the class,
// short-circuiting.
func (c *Collection) HasClass(name string) bool {
	for _, n := range c.nodes() {
		if dom.IsElement(n) && n.ClassList.Contains(name) {
			return true
		}
	}
	return false
}

func splitClassNames(names []string) []string {
	var tokens []string
	for _, name := range names {
		tokens = append(tokens, strings.Fields(name)...)
	}
	return tokens
}
