package dom

import (
	"sort"
	"strings"
)

// Element is the variant payload of an element node.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	TagName    string
	Attributes *NamedNodeMap
	ClassList  *DOMTokenList
}

// https://dom.spec.whatwg.org/#interface-namednodemap
type NamedNodeMap struct {
	Attrs map[string]string
}

func NewNamedNodeMap() *NamedNodeMap {
	return &NamedNodeMap{Attrs: map[string]string{}}
}

func (m *NamedNodeMap) Length() int {
	return len(m.Attrs)
}

func (m *NamedNodeMap) GetNamedItem(name string) (string, bool) {
	v, ok := m.Attrs[name]
	return v, ok
}

func (m *NamedNodeMap) SetNamedItem(name, value string) {
	m.Attrs[name] = value
}

func (m *NamedNodeMap) RemoveNamedItem(name string) {
	delete(m.Attrs, name)
}

// SortedNames returns the attribute names in a stable order for
// serialization.
func (m *NamedNodeMap) SortedNames() []string {
	names := make([]string, 0, len(m.Attrs))
	for name := range m.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAttribute returns the named attribute, or "" for absent attributes and
// non-element nodes.
func (n *Node) GetAttribute(name string) string {
	if n.NodeType != ElementNode {
		return ""
	}
	v, _ := n.Attributes.GetNamedItem(strings.ToLower(name))
	return v
}

func (n *Node) HasAttribute(name string) bool {
	if n.NodeType != ElementNode {
		return false
	}
	_, ok := n.Attributes.GetNamedItem(strings.ToLower(name))
	return ok
}

// SetAttribute sets the named attribute. Non-element nodes are left alone.
func (n *Node) SetAttribute(name, value string) {
	if n.NodeType != ElementNode {
		return
	}
	n.Attributes.SetNamedItem(strings.ToLower(name), value)
}

func (n *Node) RemoveAttribute(name string) {
	if n.NodeType != ElementNode {
		return
	}
	n.Attributes.RemoveNamedItem(strings.ToLower(name))
}

// Dataset reads the data-* attribute for key.
func (n *Node) Dataset(key string) string {
	return n.GetAttribute("data-" + key)
}

// SetDataset writes the data-* attribute for key.
func (n *Node) SetDataset(key, value string) {
	n.SetAttribute("data-"+key, value)
}

// DOMTokenList is the class attribute viewed as an ordered token set.
// https://dom.spec.whatwg.org/#interface-domtokenlist
type DOMTokenList struct {
	owner *Node
}

func (l *DOMTokenList) Tokens() []string {
	return strings.Fields(l.owner.GetAttribute("class"))
}

func (l *DOMTokenList) Contains(token string) bool {
	for _, t := range l.Tokens() {
		if t == token {
			return true
		}
	}
	return false
}

func (l *DOMTokenList) Add(tokens ...string) {
	current := l.Tokens()
	for _, token := range tokens {
		if token == "" {
			continue
		}
		present := false
		for _, t := range current {
			if t == token {
				present = true
				break
			}
		}
		if !present {
			current = append(current, token)
		}
	}
	l.write(current)
}

func (l *DOMTokenList) Remove(tokens ...string) {
	current := l.Tokens()
	kept := current[:0]
	for _, t := range current {
		drop := false
		for _, token := range tokens {
			if t == token {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, t)
		}
	}
	l.write(kept)
}

// Toggle flips token membership and reports whether the token is present
// afterwards.
func (l *DOMTokenList) Toggle(token string) bool {
	if l.Contains(token) {
		l.Remove(token)
		return false
	}
	l.Add(token)
	return true
}

func (l *DOMTokenList) write(tokens []string) {
	l.owner.SetAttribute("class", strings.Join(tokens, " "))
}
