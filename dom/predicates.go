package dom

// Item is anything a collection can hold: a value with the event-target
// capability. The implementations are sealed to nodes and windows, which
// keeps capability checks a matter of looking at a discriminant instead of
// probing for members.
type Item interface {
	AddEventListener(eventType string, fn Listener)
	AddEventListenerOnce(eventType string, fn Listener)
	RemoveEventListener(eventType string, fn Listener)
	DispatchEvent(e *Event) bool
}

// AsNode returns v as a node, or nil when v is not one.
func AsNode(v any) *Node {
	if n, ok := v.(*Node); ok && n != nil {
		return n
	}
	return nil
}

// IsItem reports whether v can register event listeners. This is the
// broadest capability; it covers window-like values as well as nodes. Nil is
// never an Item.
func IsItem(v any) bool {
	switch it := v.(type) {
	case *Node:
		return it != nil
	case *Window:
		return it != nil
	}
	return false
}

// IsNode reports whether v is a tree node of any type.
func IsNode(v any) bool {
	n := AsNode(v)
	return n != nil && n.NodeType != 0
}

// IsElement reports whether v is an element node.
func IsElement(v any) bool {
	n := AsNode(v)
	return n != nil && n.NodeType == ElementNode
}

// IsDocument reports whether v is a document node.
func IsDocument(v any) bool {
	n := AsNode(v)
	return n != nil && n.NodeType == DocumentNode
}

// IsParentCapable reports whether v can hold children.
func IsParentCapable(v any) bool {
	n := AsNode(v)
	if n == nil {
		return false
	}
	switch n.NodeType {
	case ElementNode, DocumentNode, DocumentFragmentNode:
		return true
	}
	return false
}

// IsChildCapable reports whether v can live under a parent.
func IsChildCapable(v any) bool {
	n := AsNode(v)
	if n == nil {
		return false
	}
	switch n.NodeType {
	case ElementNode, TextNode, CDATASectionNode, ProcessingInstructionNode, CommentNode, DocumentTypeNode:
		return true
	}
	return false
}
