// Package linkedlist provides singly linked list containers: SinglyLinkedList,
// which appends at the tail, and OrderedSinglyLinkedList, which places every
// new item according to a comparable value taken from the item itself or from
// a Key.
//
// The containers are not safe for concurrent use. Guard a shared list with a
// mutex held around every call.
package linkedlist
