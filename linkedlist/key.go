package linkedlist

import "fmt"

// Key extracts the comparable value used to order and search structured items.
type Key interface {
	Value(item any) (any, error)
}

// Fielder is implemented by structured items that expose named fields.
type Fielder interface {
	Field(name string) (any, bool)
}

// FieldKey selects a named field through Fielder.
type FieldKey string

func (key FieldKey) Value(item any) (any, error) {
	fielder, ok := item.(Fielder)
	if !ok {
		return nil, fmt.Errorf("%w: %T does not expose field %q", ErrKeyNotFound, item, string(key))
	}
	value, found := fielder.Field(string(key))
	if !found {
		return nil, fmt.Errorf("%w: %T has no field %q", ErrKeyNotFound, item, string(key))
	}
	return value, nil
}

// KeyFunc adapts a plain function to Key.
type KeyFunc func(item any) (any, error)

func (f KeyFunc) Value(item any) (any, error) {
	return f(item)
}

// Record is a structured item backed by a map, as produced by decoding JSON
// objects or CSV rows.
type Record map[string]any

func (record Record) Field(name string) (any, bool) {
	value, found := record[name]
	return value, found
}

// sameKey reports whether b may be supplied again once a is fixed. Only equal
// field keys qualify; functions cannot be compared.
func sameKey(a Key, b Key) bool {
	fa, ok := a.(FieldKey)
	if !ok {
		return false
	}
	fb, ok := b.(FieldKey)
	return ok && fa == fb
}
