package dom

// https://dom.whatwg.org/#nodelist
type NodeList []*Node

// Contains returns the index of n by reference identity, or -1.
func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) *Node {
	if i < 0 {
		return nil
	}
	if i >= len(*h) {
		return nil
	}
	node := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return node
}

func (h *NodeList) WedgeIn(i int, n *Node) {
	if i < 0 {
		return
	}
	if i >= len(*h) {
		*h = append(*h, n)
		return
	}
	*h = append((*h)[:i+1], (*h)[i:]...)
	(*h)[i] = n
}
