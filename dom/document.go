package dom

// ReadyState tracks how far a document has loaded.
type ReadyState string

const (
	ReadyStateLoading     ReadyState = "loading"
	ReadyStateInteractive ReadyState = "interactive"
	ReadyStateComplete    ReadyState = "complete"
)

// Document is the variant payload of a document node. It owns the state that
// is per-document rather than per-node.
// https://dom.spec.whatwg.org/#interface-document
type Document struct {
	ContentType string
	ReadyState  ReadyState

	window   *Window
	schedule func(func())
}

// Window is the window-like Item paired with a document. It registers and
// receives events but is not part of the node tree.
type Window struct {
	eventTarget

	document *Node
}

// Document returns the document node the window belongs to.
func (w *Window) Document() *Node {
	return w.document
}

// DispatchEvent runs the window's listeners. Window events do not propagate
// further.
func (w *Window) DispatchEvent(e *Event) bool {
	if e == nil {
		return true
	}
	if e.Target == nil {
		e.Target = w
	}
	w.invoke(e, w)
	e.CurrentTarget = nil
	return !e.defaultPrevented
}

// NewDocumentNode returns a bare document node with no children.
func NewDocumentNode() *Node {
	n := &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
		Document: &Document{
			ContentType: "text/html",
			ReadyState:  ReadyStateLoading,
			schedule:    func(fn func()) { go fn() },
		},
	}
	n.Document.window = &Window{document: n}
	return n
}

// NewDocument returns a loading document scaffolded with html, head and body
// elements.
func NewDocument() *Node {
	doc := NewDocumentNode()
	root := NewElement(doc, "html")
	doc.AppendChild(root)
	root.AppendChild(NewElement(doc, "head"))
	root.AppendChild(NewElement(doc, "body"))
	return doc
}

// Window returns the window paired with the node's document, if any.
func (n *Node) Window() *Window {
	doc := n.ownerDocumentNode()
	if doc == nil || doc.Document == nil {
		return nil
	}
	return doc.Document.window
}

// CreateElement returns a new element owned by n's document.
func (n *Node) CreateElement(name string) *Node {
	return NewElement(n.ownerDocumentNode(), name)
}

// CreateTextNode returns a new text node owned by n's document.
func (n *Node) CreateTextNode(data string) *Node {
	return NewText(n.ownerDocumentNode(), data)
}

// CreateComment returns a new comment node owned by n's document.
func (n *Node) CreateComment(data string) *Node {
	return NewComment(n.ownerDocumentNode(), data)
}

// DocumentElement returns the document's root element.
func (n *Node) DocumentElement() *Node {
	doc := n.ownerDocumentNode()
	if doc == nil {
		return nil
	}
	for _, child := range doc.ChildNodes {
		if child.NodeType == ElementNode {
			return child
		}
	}
	return nil
}

// Body returns the document's body element, if present.
func (n *Node) Body() *Node {
	root := n.DocumentElement()
	if root == nil {
		return nil
	}
	for _, child := range root.ChildNodes {
		if child.NodeType == ElementNode && child.NodeName == "body" {
			return child
		}
	}
	return nil
}

// Defer schedules fn on a future turn, never synchronously. The zero
// scheduler runs fn on a fresh goroutine; SetScheduler swaps it out for hosts
// that pump their own loop.
func (n *Node) Defer(fn func()) {
	doc := n.ownerDocumentNode()
	if doc == nil || doc.Document == nil || fn == nil {
		return
	}
	doc.Document.schedule(fn)
}

// SetScheduler replaces the document's deferral hook.
func (n *Node) SetScheduler(schedule func(func())) {
	doc := n.ownerDocumentNode()
	if doc == nil || doc.Document == nil || schedule == nil {
		return
	}
	doc.Document.schedule = schedule
}

// FinishLoad moves a loading document to complete, firing readystatechange,
// DOMContentLoaded and the window load event in host order. Calling it again
// is a no-op.
func (n *Node) FinishLoad() {
	doc := n.ownerDocumentNode()
	if doc == nil || doc.Document == nil || doc.Document.ReadyState != ReadyStateLoading {
		return
	}
	doc.Document.ReadyState = ReadyStateInteractive
	doc.DispatchEvent(&Event{Type: EventReadyStateChange})
	doc.DispatchEvent(&Event{Type: EventDOMContentLoaded, Bubbles: true})
	doc.Document.ReadyState = ReadyStateComplete
	doc.DispatchEvent(&Event{Type: EventReadyStateChange})
	if w := doc.Document.window; w != nil {
		w.DispatchEvent(&Event{Type: EventLoad})
	}
}
