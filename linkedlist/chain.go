package linkedlist

import (
	"fmt"
	"io"
	"iter"
	"os"
)

// chain is the node layout shared by both list variants. Traversal that does
// not depend on ordering lives here.
type chain[T any] struct {
	head *Node[T]
}

// Head returns the first node, or nil for an empty list.
func (c *chain[T]) Head() *Node[T] {
	return c.head
}

// Length counts nodes by walking the chain.
func (c *chain[T]) Length() int {
	count := 0
	for ref := c.head; ref != nil; ref = ref.next {
		count++
	}
	return count
}

// All yields every 0-based index and value from head to tail.
func (c *chain[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for ref := c.head; ref != nil; ref = ref.next {
			if !yield(index, ref.Value) {
				return
			}
			index++
		}
	}
}

// Values copies the list contents into a slice.
func (c *chain[T]) Values() []T {
	values := []T{}
	for ref := c.head; ref != nil; ref = ref.next {
		values = append(values, ref.Value)
	}
	return values
}

// Print writes the list to stdout, one line per node.
func (c *chain[T]) Print() {
	_ = c.Fprint(os.Stdout)
}

// Fprint writes "List item <n>: <value>" for every node, counting from 1.
func (c *chain[T]) Fprint(w io.Writer) error {
	counter := 0
	for ref := c.head; ref != nil; ref = ref.next {
		counter++
		if _, err := fmt.Fprintf(w, "List item %d: %v\n", counter, ref.Value); err != nil {
			return err
		}
	}
	return nil
}

func (c *chain[T]) find(matches func(T) bool) []Match[T] {
	found := []Match[T]{}
	index := 0
	for ref := c.head; ref != nil; ref = ref.next {
		if matches(ref.Value) {
			found = append(found, Match[T]{Index: index, Node: ref})
		}
		index++
	}
	return found
}

// deleteAll unlinks every node whose value matches. Leading matches collapse
// the head, then the remainder is scanned with a trailing reference.
func (c *chain[T]) deleteAll(matches func(T) bool) error {
	if c.head == nil {
		return ErrEmptyList
	}
	for c.head != nil && matches(c.head.Value) {
		c.head = c.head.next
	}
	if c.head == nil {
		return nil
	}
	ref := c.head
	for ref.next != nil {
		if matches(ref.next.Value) {
			ref.next = ref.next.next
		} else {
			ref = ref.next
		}
	}
	return nil
}

// insertAfter links a new node after prev, or at the head when prev is nil.
func (c *chain[T]) insertAfter(prev *Node[T], value T) *Node[T] {
	node := &Node[T]{Value: value}
	if prev == nil {
		node.next = c.head
		c.head = node
		return node
	}
	node.next = prev.next
	prev.next = node
	return node
}

func (c *chain[T]) tail() *Node[T] {
	if c.head == nil {
		return nil
	}
	ref := c.head
	for ref.next != nil {
		ref = ref.next
	}
	return ref
}
