package linkedlist

import "reflect"

// SinglyLinkedList is an unordered list. New nodes are appended at the tail.
type SinglyLinkedList[T comparable] struct {
	chain[T]
}

// NewSingly returns a list holding items in the order given.
func NewSingly[T comparable](items ...T) *SinglyLinkedList[T] {
	list := &SinglyLinkedList[T]{}
	for _, item := range items {
		list.Insert(item)
	}
	return list
}

// Insert appends value after the current tail.
func (list *SinglyLinkedList[T]) Insert(value T) {
	list.insertAfter(list.tail(), value)
}

// Delete removes every node equal to value.
func (list *SinglyLinkedList[T]) Delete(value T) error {
	return list.deleteAll(func(v T) bool { return equal(v, value) })
}

// Find returns the index and node of every element equal to value.
func (list *SinglyLinkedList[T]) Find(value T) []Match[T] {
	return list.find(func(v T) bool { return equal(v, value) })
}

// equal is == that reports false instead of panicking when T is an interface
// holding a map, slice or func.
func equal[T comparable](a T, b T) bool {
	x, y := any(a), any(b)
	if x == nil || y == nil {
		return x == y
	}
	if !reflect.ValueOf(x).Comparable() || !reflect.ValueOf(y).Comparable() {
		return false
	}
	return a == b
}
