package linkedlist

import (
	"io"
	"iter"
)

// List is the capability set shared by both variants. Insert is left out
// because only the ordered list can fail on insert.
type List[T any] interface {
	Delete(value T) error
	Find(value T) []Match[T]
	Length() int
	Head() *Node[T]
	All() iter.Seq2[int, T]
	Print()
	Fprint(w io.Writer) error
}

var (
	_ List[any] = &SinglyLinkedList[any]{}
	_ List[any] = &OrderedSinglyLinkedList{}
)
