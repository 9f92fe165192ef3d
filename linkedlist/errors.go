package linkedlist

import "errors"

var (
	ErrEmptyList              = errors.New("list is empty")
	ErrHeterogeneousBatch     = errors.New("batch mixes incompatible item kinds")
	ErrMissingKey             = errors.New("structured items require a key")
	ErrKeyNotFound            = errors.New("key does not name a field of the item")
	ErrInvalidConstructionArg = errors.New("items must be a non-empty sequence")
	ErrKindMismatch           = errors.New("item kind does not match the list")
	ErrKeyConflict            = errors.New("key conflicts with the key fixed for the list")
	ErrIncomparable           = errors.New("values cannot be compared")
)
