package linkedlist

// Node holds one value and owns the link to its successor.
type Node[T any] struct {
	Value T
	next  *Node[T]
}

// Next returns the successor, or nil at the tail.
func (node *Node[T]) Next() *Node[T] {
	return node.next
}

// Match is a single find result: the 0-based position and the node found there.
type Match[T any] struct {
	Index int
	Node  *Node[T]
}
