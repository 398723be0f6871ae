package dom

import "strings"

// NodeType is the discriminant for the variant a Node carries.
type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType        NodeType
	NodeName        string
	OwnerDocument   *Node
	ParentNode      *Node
	FirstChild      *Node
	LastChild       *Node
	PreviousSibling *Node
	NextSibling     *Node
	ChildNodes      NodeList

	eventTarget

	// Node variants
	*Element
	*Text
	*Comment
	*ProcessingInstruction
	*Document
	*DocumentType
	*DocumentFragment
}

// NewElement returns an element node owned by od.
func NewElement(od *Node, name string) *Node {
	name = strings.ToLower(name)
	n := &Node{
		NodeType:      ElementNode,
		NodeName:      name,
		OwnerDocument: od,
		Element: &Element{
			TagName:    name,
			Attributes: NewNamedNodeMap(),
		},
	}
	n.Element.ClassList = &DOMTokenList{owner: n}
	return n
}

// NewText returns a text node with its Data section filled.
func NewText(od *Node, data string) *Node {
	return &Node{
		NodeType:      TextNode,
		NodeName:      "#text",
		OwnerDocument: od,
		Text: &Text{
			CharacterData: &CharacterData{Data: data},
		},
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(od *Node, data string) *Node {
	return &Node{
		NodeType:      CommentNode,
		NodeName:      "#comment",
		OwnerDocument: od,
		Comment: &Comment{
			CharacterData: &CharacterData{Data: data},
		},
	}
}

// NewDocType returns a doctype node.
func NewDocType(od *Node, name, pub, sys string) *Node {
	return &Node{
		NodeType:      DocumentTypeNode,
		NodeName:      name,
		OwnerDocument: od,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

// NewFragment returns an empty document fragment owned by od.
func NewFragment(od *Node) *Node {
	return &Node{
		NodeType:         DocumentFragmentNode,
		NodeName:         "#document-fragment",
		OwnerDocument:    od,
		DocumentFragment: &DocumentFragment{},
	}
}

func (n *Node) HasChildNodes() bool {
	return len(n.ChildNodes) > 0
}

// AppendChild detaches on from its current parent, if any, and appends it as
// the last child of n.
// https://dom.whatwg.org/#concept-node-append
func (n *Node) AppendChild(on *Node) *Node {
	if on == nil || on.Contains(n) {
		return nil
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	if n.LastChild != nil {
		on.PreviousSibling = n.LastChild
		n.LastChild.NextSibling = on
	} else {
		n.FirstChild = on
	}
	on.NextSibling = nil
	on.ParentNode = n
	n.LastChild = on
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// InsertBefore inserts on into n's children immediately before child. A nil
// child appends. A child that is not one of n's children also appends rather
// than failing.
func (n *Node) InsertBefore(on, child *Node) *Node {
	if on == nil || on.Contains(n) {
		return nil
	}
	if child == nil {
		return n.AppendChild(on)
	}
	if on.ParentNode != nil {
		on.ParentNode.RemoveChild(on)
	}
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return n.AppendChild(on)
	}
	n.ChildNodes.WedgeIn(i, on)
	on.ParentNode = n
	on.NextSibling = child
	on.PreviousSibling = child.PreviousSibling
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = on
	} else {
		n.FirstChild = on
	}
	child.PreviousSibling = on
	return on
}

// RemoveChild unlinks child from n and returns it, or nil when child is not
// one of n's children.
func (n *Node) RemoveChild(child *Node) *Node {
	i := n.ChildNodes.Contains(child)
	if i == -1 {
		return nil
	}
	n.ChildNodes.Remove(i)
	if child.PreviousSibling != nil {
		child.PreviousSibling.NextSibling = child.NextSibling
	} else {
		n.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PreviousSibling = child.PreviousSibling
	} else {
		n.LastChild = child.PreviousSibling
	}
	child.ParentNode = nil
	child.PreviousSibling = nil
	child.NextSibling = nil
	return child
}

// Remove detaches n from its parent. A parentless node is left alone.
func (n *Node) Remove() {
	if n.ParentNode != nil {
		n.ParentNode.RemoveChild(n)
	}
}

// CloneNode copies n. The copy has no parent and no siblings; a deep clone
// also copies the whole subtree.
// https://dom.whatwg.org/#concept-node-clone
func (n *Node) CloneNode(deep bool) *Node {
	var copied *Node
	switch n.NodeType {
	case ElementNode:
		copied = NewElement(n.OwnerDocument, n.NodeName)
		for k, v := range n.Attributes.Attrs {
			copied.Attributes.Attrs[k] = v
		}
	case TextNode:
		copied = NewText(n.OwnerDocument, n.Text.Data)
	case CommentNode:
		copied = NewComment(n.OwnerDocument, n.Comment.Data)
	case ProcessingInstructionNode:
		copied = &Node{
			NodeType:      ProcessingInstructionNode,
			NodeName:      n.NodeName,
			OwnerDocument: n.OwnerDocument,
			ProcessingInstruction: &ProcessingInstruction{
				CharacterData: &CharacterData{Data: n.ProcessingInstruction.Data},
				Target:        n.ProcessingInstruction.Target,
			},
		}
	case DocumentTypeNode:
		copied = NewDocType(n.OwnerDocument, n.DocumentType.Name, n.PublicID, n.SystemID)
	case DocumentFragmentNode:
		copied = NewFragment(n.OwnerDocument)
	case DocumentNode:
		copied = NewDocumentNode()
		copied.Document.ContentType = n.Document.ContentType
	default:
		copied = &Node{NodeType: n.NodeType, NodeName: n.NodeName, OwnerDocument: n.OwnerDocument}
	}

	if deep {
		for _, child := range n.ChildNodes {
			copied.AppendChild(child.CloneNode(true))
		}
	}
	return copied
}

// Contains reports whether on is n or a descendant of n.
func (n *Node) Contains(on *Node) bool {
	for i := on; i != nil; i = i.ParentNode {
		if i == n {
			return true
		}
	}
	return false
}

// Root walks to the topmost ancestor of n.
func (n *Node) Root() *Node {
	var prev *Node
	for i := n; i != nil; i = i.ParentNode {
		prev = i
	}
	return prev
}

// TextContent returns the node's character data, or for container nodes the
// concatenated data of every descendant text node.
func (n *Node) TextContent() string {
	switch n.NodeType {
	case TextNode:
		return n.Text.Data
	case CommentNode:
		return n.Comment.Data
	case ProcessingInstructionNode:
		return n.ProcessingInstruction.Data
	case ElementNode, DocumentNode, DocumentFragmentNode:
		var sb strings.Builder
		for _, child := range n.ChildNodes {
			sb.WriteString(child.TextContent())
		}
		return sb.String()
	}
	return ""
}

// SetTextContent replaces the node's content with a single text node, or the
// character data itself for data-carrying nodes.
func (n *Node) SetTextContent(data string) {
	switch n.NodeType {
	case TextNode:
		n.Text.Data = data
	case CommentNode:
		n.Comment.Data = data
	case ProcessingInstructionNode:
		n.ProcessingInstruction.Data = data
	case ElementNode, DocumentFragmentNode:
		for n.FirstChild != nil {
			n.RemoveChild(n.FirstChild)
		}
		n.AppendChild(NewText(n.OwnerDocument, data))
	}
}

// ownerDocumentNode resolves the document node governing n.
func (n *Node) ownerDocumentNode() *Node {
	if n == nil {
		return nil
	}
	if n.NodeType == DocumentNode {
		return n
	}
	return n.OwnerDocument
}
