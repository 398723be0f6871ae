package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	doc := NewDocument()
	element := NewElement(doc, "div")
	text := NewText(doc, "x")
	comment := NewComment(doc, "c")
	doctype := NewDocType(doc, "html", "", "")
	fragment := NewFragment(doc)
	window := doc.Window()

	var nilNode *Node
	var nilWindow *Window

	tests := []struct {
		name      string
		value     any
		item      bool
		node      bool
		elem      bool
		document  bool
		parentCap bool
		childCap  bool
	}{
		{"nil", nil, false, false, false, false, false, false},
		{"typed nil node", nilNode, false, false, false, false, false, false},
		{"typed nil window", nilWindow, false, false, false, false, false, false},
		{"unrelated value", 42, false, false, false, false, false, false},
		{"string", "div", false, false, false, false, false, false},
		{"element", element, true, true, true, false, true, true},
		{"text", text, true, true, false, false, false, true},
		{"comment", comment, true, true, false, false, false, true},
		{"doctype", doctype, true, true, false, false, false, true},
		{"fragment", fragment, true, true, false, false, true, false},
		{"document", doc, true, true, false, true, true, false},
		{"window", window, true, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.item, IsItem(tt.value), "IsItem")
			assert.Equal(t, tt.node, IsNode(tt.value), "IsNode")
			assert.Equal(t, tt.elem, IsElement(tt.value), "IsElement")
			assert.Equal(t, tt.document, IsDocument(tt.value), "IsDocument")
			assert.Equal(t, tt.parentCap, IsParentCapable(tt.value), "IsParentCapable")
			assert.Equal(t, tt.childCap, IsChildCapable(tt.value), "IsChildCapable")
		})
	}
}

func TestAsNode(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, doc, AsNode(doc))
	assert.Nil(t, AsNode(doc.Window()))
	assert.Nil(t, AsNode(nil))
	assert.Nil(t, AsNode("div"))
}
