package linkedlist

import (
	"fmt"
	"reflect"
)

// Kind classifies the items held by an ordered list. It is fixed by the first
// batch or the first insert and never changes afterwards.
type Kind int

const (
	KindUnknown Kind = iota
	KindNumeric
	KindTextual
	KindStructured
)

func (kind Kind) String() string {
	switch kind {
	case KindNumeric:
		return "numeric"
	case KindTextual:
		return "textual"
	case KindStructured:
		return "structured"
	}
	return "unknown"
}

// KindOf classifies a single item. Nil has no kind.
func KindOf(item any) Kind {
	if item == nil {
		return KindUnknown
	}
	if _, ok := toFloat(item); ok {
		return KindNumeric
	}
	if _, ok := item.(string); ok {
		return KindTextual
	}
	return KindStructured
}

// Classify returns the kind shared by all items. Integers, floats and bools
// mix freely as numeric; structured items must all have the same concrete type.
func Classify(items []any) (Kind, error) {
	if len(items) == 0 {
		return KindUnknown, ErrInvalidConstructionArg
	}
	kind := KindOf(items[0])
	if kind == KindUnknown {
		return KindUnknown, fmt.Errorf("%w: item 0 is nil", ErrHeterogeneousBatch)
	}
	itemType := reflect.TypeOf(items[0])
	for i, item := range items[1:] {
		if KindOf(item) != kind {
			return KindUnknown, fmt.Errorf("%w: item %d is %T, expected %v", ErrHeterogeneousBatch, i+1, item, kind)
		}
		if kind == KindStructured && reflect.TypeOf(item) != itemType {
			return KindUnknown, fmt.Errorf("%w: item %d is %T, expected %v", ErrHeterogeneousBatch, i+1, item, itemType)
		}
	}
	return kind, nil
}

// toFloat normalizes numeric items. Booleans count as the integers 0 and 1.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
