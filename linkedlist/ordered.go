package linkedlist

import (
	"fmt"
	"reflect"
)

// OrderedSinglyLinkedList keeps its items sorted on insert. Items with equal
// values stay in insertion order.
type OrderedSinglyLinkedList struct {
	chain[any]
	ascending bool
	key       Key
	kind      Kind
	itemType  reflect.Type
}

// NewOrdered builds an ordered list. A nil items slice yields an empty list
// whose kind and key are fixed by the first insert. A non-nil batch is
// validated in full before any node is created, so a failing batch leaves
// nothing behind.
func NewOrdered(items []any, key Key, reverse bool) (*OrderedSinglyLinkedList, error) {
	list := &OrderedSinglyLinkedList{
		ascending: !reverse,
		key:       key,
	}
	if items == nil {
		return list, nil
	}

	kind, err := Classify(items)
	if err != nil {
		return nil, err
	}
	if kind == KindStructured && key == nil {
		return nil, fmt.Errorf("%w: batch of %T", ErrMissingKey, items[0])
	}

	values := make([]any, len(items))
	for i, item := range items {
		values[i], err = extract(kind, key, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if i > 0 {
			if _, err = Compare(values[0], values[i]); err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
	}

	list.kind = kind
	list.itemType = reflect.TypeOf(items[0])
	for i, item := range items {
		if err = list.place(item, values[i]); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return list, nil
}

func (list *OrderedSinglyLinkedList) Kind() Kind {
	return list.kind
}

func (list *OrderedSinglyLinkedList) Ascending() bool {
	return list.ascending
}

func (list *OrderedSinglyLinkedList) Key() Key {
	return list.key
}

// ValueOf returns what item is ordered and searched by in this list.
func (list *OrderedSinglyLinkedList) ValueOf(item any) (any, error) {
	if list.kind == KindUnknown {
		return extract(KindOf(item), list.key, item)
	}
	return extract(list.kind, list.key, item)
}

// Insert places item after every node whose value does not follow it.
func (list *OrderedSinglyLinkedList) Insert(item any) error {
	return list.InsertKeyed(item, nil)
}

// InsertKeyed is Insert with a key. The key is adopted only when it is the
// first thing to fix the list's key; afterwards only the identical FieldKey is
// accepted.
func (list *OrderedSinglyLinkedList) InsertKeyed(item any, key Key) error {
	kind := KindOf(item)
	if kind == KindUnknown {
		return fmt.Errorf("%w: nil item", ErrKindMismatch)
	}

	if list.kind == KindUnknown {
		activeKey := list.key
		if key != nil {
			if activeKey != nil && !sameKey(activeKey, key) {
				return ErrKeyConflict
			}
			activeKey = key
		}
		value, err := extract(kind, activeKey, item)
		if err != nil {
			return err
		}
		list.kind = kind
		list.key = activeKey
		list.itemType = reflect.TypeOf(item)
		return list.place(item, value)
	}

	if kind != list.kind {
		return fmt.Errorf("%w: %T is %v, list is %v", ErrKindMismatch, item, kind, list.kind)
	}
	if kind == KindStructured && reflect.TypeOf(item) != list.itemType {
		return fmt.Errorf("%w: %T, list holds %v", ErrKindMismatch, item, list.itemType)
	}
	if key != nil && !sameKey(list.key, key) {
		return ErrKeyConflict
	}
	value, err := extract(list.kind, list.key, item)
	if err != nil {
		return err
	}
	return list.place(item, value)
}

// Delete removes every node whose value equals value.
func (list *OrderedSinglyLinkedList) Delete(value any) error {
	return list.deleteAll(list.equals(value))
}

// Find returns every node whose value equals value. For structured lists the
// value is compared against the key, not the whole item.
func (list *OrderedSinglyLinkedList) Find(value any) []Match[any] {
	return list.find(list.equals(value))
}

func (list *OrderedSinglyLinkedList) equals(value any) func(any) bool {
	return func(item any) bool {
		itemValue, err := extract(list.kind, list.key, item)
		if err != nil {
			return false
		}
		c, err := Compare(itemValue, value)
		return err == nil && c == 0
	}
}

// place links item at its sorted position. The chain is only modified once
// the position is known, so a comparison error leaves it untouched.
func (list *OrderedSinglyLinkedList) place(item any, value any) error {
	if list.head == nil {
		list.insertAfter(nil, item)
		return nil
	}
	first, err := list.precedes(value, list.head.Value)
	if err != nil {
		return err
	}
	if first {
		list.insertAfter(nil, item)
		return nil
	}
	ref := list.head
	for ref.next != nil {
		before, err := list.precedes(value, ref.next.Value)
		if err != nil {
			return err
		}
		if before {
			break
		}
		ref = ref.next
	}
	list.insertAfter(ref, item)
	return nil
}

// precedes applies the strict comparator for the list's direction.
func (list *OrderedSinglyLinkedList) precedes(value any, item any) (bool, error) {
	itemValue, err := extract(list.kind, list.key, item)
	if err != nil {
		return false, err
	}
	c, err := Compare(value, itemValue)
	if err != nil {
		return false, err
	}
	if list.ascending {
		return c < 0, nil
	}
	return c > 0, nil
}

// extract is the value accessor: numbers normalize to float64, strings are
// used as they are, and structured items go through the key.
func extract(kind Kind, key Key, item any) (any, error) {
	switch kind {
	case KindNumeric:
		value, _ := toFloat(item)
		return value, nil
	case KindTextual:
		return item, nil
	}
	if key == nil {
		return nil, fmt.Errorf("%w: %T", ErrMissingKey, item)
	}
	return key.Value(item)
}
