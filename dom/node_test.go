package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(n *Node) []string {
	var names []string
	for _, child := range n.ChildNodes {
		names = append(names, child.NodeName)
	}
	return names
}

func TestAppendChildLinksSiblings(t *testing.T) {
	doc := NewDocumentNode()
	parent := NewElement(doc, "ul")
	a := NewElement(doc, "li")
	b := NewElement(doc, "li")

	parent.AppendChild(a)
	parent.AppendChild(b)

	assert.Equal(t, parent, a.ParentNode)
	assert.Equal(t, parent, b.ParentNode)
	assert.Equal(t, a, parent.FirstChild)
	assert.Equal(t, b, parent.LastChild)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PreviousSibling)
	assert.Nil(t, b.NextSibling)
	assert.Len(t, parent.ChildNodes, 2)
}

func TestAppendChildMovesNodeBetweenParents(t *testing.T) {
	doc := NewDocumentNode()
	first := NewElement(doc, "div")
	second := NewElement(doc, "div")
	child := NewElement(doc, "span")

	first.AppendChild(child)
	second.AppendChild(child)

	assert.Equal(t, second, child.ParentNode)
	assert.Empty(t, first.ChildNodes)
	assert.Nil(t, first.FirstChild)
	assert.Nil(t, first.LastChild)
}

func TestAppendChildRefusesCycle(t *testing.T) {
	doc := NewDocumentNode()
	outer := NewElement(doc, "div")
	inner := NewElement(doc, "div")
	outer.AppendChild(inner)

	assert.Nil(t, inner.AppendChild(outer))
	assert.Nil(t, outer.AppendChild(outer))
	assert.Equal(t, outer, inner.ParentNode)
}

func TestInsertBefore(t *testing.T) {
	tests := []struct {
		name     string
		refIndex int // index of the reference child, -1 for nil
		expected []string
	}{
		{"before first", 0, []string{"em", "a", "b"}},
		{"before second", 1, []string{"a", "em", "b"}},
		{"nil reference appends", -1, []string{"a", "b", "em"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := NewDocumentNode()
			parent := NewElement(doc, "p")
			parent.AppendChild(NewElement(doc, "a"))
			parent.AppendChild(NewElement(doc, "b"))

			var ref *Node
			if tt.refIndex >= 0 {
				ref = parent.ChildNodes[tt.refIndex]
			}
			inserted := parent.InsertBefore(NewElement(doc, "em"), ref)

			require.NotNil(t, inserted)
			assert.Equal(t, tt.expected, childNames(parent))
			assert.Equal(t, parent, inserted.ParentNode)

			// Sibling links have to agree with ChildNodes order.
			for i, child := range parent.ChildNodes {
				if i == 0 {
					assert.Nil(t, child.PreviousSibling)
				} else {
					assert.Equal(t, parent.ChildNodes[i-1], child.PreviousSibling)
				}
				if i == len(parent.ChildNodes)-1 {
					assert.Nil(t, child.NextSibling)
				} else {
					assert.Equal(t, parent.ChildNodes[i+1], child.NextSibling)
				}
			}
		})
	}
}

func TestRemoveChild(t *testing.T) {
	doc := NewDocumentNode()
	parent := NewElement(doc, "p")
	a := NewElement(doc, "a")
	b := NewElement(doc, "b")
	c := NewElement(doc, "i")
	parent.AppendChild(a)
	parent.AppendChild(b)
	parent.AppendChild(c)

	removed := parent.RemoveChild(b)

	assert.Equal(t, b, removed)
	assert.Equal(t, []string{"a", "i"}, childNames(parent))
	assert.Nil(t, b.ParentNode)
	assert.Nil(t, b.PreviousSibling)
	assert.Nil(t, b.NextSibling)
	assert.Equal(t, c, a.NextSibling)
	assert.Equal(t, a, c.PreviousSibling)

	assert.Nil(t, parent.RemoveChild(b), "removing a non-child returns nil")
}

func TestRemoveChildUpdatesFirstAndLast(t *testing.T) {
	doc := NewDocumentNode()
	parent := NewElement(doc, "p")
	only := NewElement(doc, "a")
	parent.AppendChild(only)

	parent.RemoveChild(only)

	assert.Nil(t, parent.FirstChild)
	assert.Nil(t, parent.LastChild)
	assert.Empty(t, parent.ChildNodes)
}

func TestCloneNodeShallow(t *testing.T) {
	doc := NewDocumentNode()
	parent := NewElement(doc, "div")
	n := NewElement(doc, "a")
	n.SetAttribute("href", "/home")
	parent.AppendChild(n)
	n.AppendChild(NewText(doc, "home"))

	clone := n.CloneNode(false)

	assert.NotSame(t, n, clone)
	assert.Equal(t, "a", clone.NodeName)
	assert.Equal(t, "/home", clone.GetAttribute("href"))
	assert.Nil(t, clone.ParentNode, "clones start detached")
	assert.Nil(t, clone.PreviousSibling)
	assert.Nil(t, clone.NextSibling)
	assert.Empty(t, clone.ChildNodes)
}

func TestCloneNodeDeep(t *testing.T) {
	doc := NewDocumentNode()
	n := NewElement(doc, "ul")
	li := NewElement(doc, "li")
	li.AppendChild(NewText(doc, "item"))
	n.AppendChild(li)

	clone := n.CloneNode(true)

	require.Len(t, clone.ChildNodes, 1)
	assert.NotSame(t, li, clone.ChildNodes[0])
	assert.Equal(t, "item", clone.TextContent())

	// Mutating the clone leaves the original alone.
	clone.ChildNodes[0].SetTextContent("changed")
	assert.Equal(t, "item", n.TextContent())
}

func TestCloneTextKeepsValue(t *testing.T) {
	doc := NewDocumentNode()
	text := NewText(doc, "hello")

	clone := text.CloneNode(true)

	assert.NotSame(t, text, clone)
	assert.Equal(t, "hello", clone.Text.Data)
}

func TestTextContent(t *testing.T) {
	doc := NewDocumentNode()
	div := NewElement(doc, "div")
	div.AppendChild(NewText(doc, "a"))
	span := NewElement(doc, "span")
	span.AppendChild(NewText(doc, "b"))
	div.AppendChild(span)
	div.AppendChild(NewComment(doc, "not text"))

	assert.Equal(t, "ab", div.TextContent())
}

func TestSetTextContentReplacesChildren(t *testing.T) {
	doc := NewDocumentNode()
	div := NewElement(doc, "div")
	div.AppendChild(NewElement(doc, "span"))
	div.AppendChild(NewText(doc, "old"))

	div.SetTextContent("new")

	require.Len(t, div.ChildNodes, 1)
	assert.Equal(t, TextNode, div.ChildNodes[0].NodeType)
	assert.Equal(t, "new", div.TextContent())
}

func TestContainsAndRoot(t *testing.T) {
	doc := NewDocumentNode()
	outer := NewElement(doc, "div")
	inner := NewElement(doc, "span")
	outer.AppendChild(inner)
	doc.AppendChild(outer)

	assert.True(t, outer.Contains(inner))
	assert.True(t, outer.Contains(outer))
	assert.False(t, inner.Contains(outer))
	assert.Equal(t, doc, inner.Root())
}
